package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"userpanel/config"
	"userpanel/database"
	"userpanel/logger"
	"userpanel/web/entity"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger.InitLogger(logging.ERROR)
	t.Setenv("UP_DB_FOLDER", t.TempDir())
	require.NoError(t, database.InitDB(config.GetDBPath()))
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
	})

	server := NewServer()
	engine, err := server.initRouter()
	require.NoError(t, err)
	return engine
}

func postForm(engine *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func get(engine *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) entity.Msg {
	t.Helper()
	var msg entity.Msg
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	return msg
}

func TestLoginLogoutFlow(t *testing.T) {
	engine := setupEngine(t)

	// wrong password: identical failure message, no cookie session
	w := postForm(engine, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	msg := decodeMsg(t, w)
	assert.False(t, msg.Success)
	assert.Equal(t, "invalid username or password", msg.Msg)

	// unknown user: same message
	w = postForm(engine, "/login", url.Values{
		"username": {"nobody"},
		"password": {"admin123"},
	}, nil)
	assert.Equal(t, "invalid username or password", decodeMsg(t, w).Msg)

	// successful login sets the session cookie
	w = postForm(engine, "/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	msg = decodeMsg(t, w)
	assert.True(t, msg.Success)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// authenticated page loads
	w = get(engine, "/user/list", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")

	// logout redirects and invalidates the server-side session
	w = get(engine, "/logout", cookies)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	w = get(engine, "/user/list", cookies)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestUnauthenticatedRedirect(t *testing.T) {
	engine := setupEngine(t)

	w := get(engine, "/user/list", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRegisterAndLogin(t *testing.T) {
	engine := setupEngine(t)

	w := postForm(engine, "/register", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
		"password": {"secret1"},
	}, nil)
	assert.True(t, decodeMsg(t, w).Success)

	// duplicate username is rejected with a field-specific message
	w = postForm(engine, "/register", url.Values{
		"username": {"alice"},
		"email":    {"other@x.com"},
		"password": {"pw"},
	}, nil)
	msg := decodeMsg(t, w)
	assert.False(t, msg.Success)
	assert.Equal(t, "username already in use", msg.Msg)

	// registration does not log in; the new credentials do
	w = postForm(engine, "/login", url.Values{
		"username": {"alice"},
		"password": {"secret1"},
	}, nil)
	assert.True(t, decodeMsg(t, w).Success)
}

func TestUserCrudOverHTTP(t *testing.T) {
	engine := setupEngine(t)

	w := postForm(engine, "/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	require.True(t, decodeMsg(t, w).Success)
	cookies := w.Result().Cookies()

	// create
	w = postForm(engine, "/user/create", url.Values{
		"username": {"bob"},
		"email":    {"b@x.com"},
		"password": {"pw"},
	}, cookies)
	msg := decodeMsg(t, w)
	require.True(t, msg.Success)

	// detail page
	w = get(engine, "/user/2", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b@x.com")

	// edit with empty password keeps the old one working
	w = postForm(engine, "/user/2/edit", url.Values{
		"username": {"bob2"},
		"email":    {"b2@x.com"},
		"password": {""},
	}, cookies)
	assert.True(t, decodeMsg(t, w).Success)

	w = postForm(engine, "/login", url.Values{
		"username": {"bob2"},
		"password": {"pw"},
	}, nil)
	assert.True(t, decodeMsg(t, w).Success)

	// delete, then delete again reports not found
	w = postForm(engine, "/user/2/delete", url.Values{}, cookies)
	assert.True(t, decodeMsg(t, w).Success)

	w = postForm(engine, "/user/2/delete", url.Values{}, cookies)
	msg = decodeMsg(t, w)
	assert.False(t, msg.Success)
	assert.Equal(t, "account not found", msg.Msg)

	w = get(engine, "/user/2", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLegacyAuthPathRedirect(t *testing.T) {
	engine := setupEngine(t)

	w := get(engine, "/auth/login", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
