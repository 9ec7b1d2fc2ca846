// Package session is the gin glue for the login cookie. The cookie stores
// only the opaque session token; resolving it to an account happens in the
// service layer.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionToken = "SESSION_TOKEN"

// SetToken stores the session token in the cookie.
func SetToken(c *gin.Context, token string) error {
	s := sessions.Default(c)
	s.Set(sessionToken, token)
	return s.Save()
}

// GetToken returns the session token from the cookie, or "" if absent.
func GetToken(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(sessionToken); obj != nil {
		if token, ok := obj.(string); ok {
			return token
		}
	}
	return ""
}

// ClearSession drops the cookie contents and expires it.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
