package controller

import (
	"net/http"

	"userpanel/logger"
	"userpanel/web/service"
	"userpanel/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the index page and the login, logout and
// registration routes.
type IndexController struct {
	BaseController

	serverService service.ServerService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
}

// index shows the landing page with the registered-account count and basic
// host status.
func (a *IndexController) index(c *gin.Context) {
	count, err := a.userService.CountUsers()
	if err != nil {
		logger.Warning("count users failed:", err)
	}
	html(c, "index.html", "User Panel", gin.H{
		"userCount": count,
		"status":    a.serverService.GetStatus(),
		"loggedIn":  a.isLoggedIn(c),
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if a.isLoggedIn(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"user/list")
		return
	}
	html(c, "login.html", "Login", nil)
}

// login authenticates the submitted credentials and starts a session. The
// failure message is identical for an unknown username and a wrong
// password.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username is required")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password is required")
		return
	}

	account, err := a.userService.CheckUser(form.Username, form.Password)
	if err == service.ErrInvalidCredentials {
		logger.Warningf("failed login attempt for %q, IP: %s", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "invalid username or password")
		return
	} else if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	token := a.sessionService.StartSession(account.Id)
	if err := session.SetToken(c, token); err != nil {
		a.sessionService.EndSession(token)
		jsonMsg(c, "login", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", account.Username, getRemoteIp(c))
	jsonMsg(c, "login successful", nil)
}

// logout ends the server-side session, clears the cookie and redirects to
// the index page. Logging out without a session is a no-op.
func (a *IndexController) logout(c *gin.Context) {
	token := session.GetToken(c)
	if accountId, ok := a.sessionService.ResolveSession(token); ok {
		if account, err := a.userService.GetUser(accountId); err == nil {
			logger.Infof("%s logged out successfully", account.Username)
		}
	}
	a.sessionService.EndSession(token)
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a new account. Registration does not log the new
// account in; the caller is pointed at the login page.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" || form.Email == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "username, email and password are required")
		return
	}

	_, err := a.userService.CreateUser(form.Username, form.Email, form.Password)
	if service.IsConflict(err) {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "register", err)
		return
	}

	jsonMsg(c, "registration successful, please log in", nil)
}

func (a *IndexController) isLoggedIn(c *gin.Context) bool {
	_, ok := a.sessionService.ResolveSession(session.GetToken(c))
	return ok
}
