// Package controller provides the HTTP request handlers of the panel:
// authentication pages and the user management area.
package controller

import (
	"net/http"

	"userpanel/database/model"
	"userpanel/web/service"
	"userpanel/web/session"

	"github.com/gin-gonic/gin"
)

const ctxLoginAccount = "login_account"

// BaseController provides common functionality for all controllers,
// including the login check middleware.
type BaseController struct {
	sessionService service.SessionService
	userService    service.UserService
}

// checkLogin resolves the session cookie to an account and aborts the
// request when no valid session exists. A session whose account has been
// deleted underneath it is treated as logged out.
func (a *BaseController) checkLogin(c *gin.Context) {
	token := session.GetToken(c)
	accountId, ok := a.sessionService.ResolveSession(token)
	if ok {
		account, err := a.userService.GetUser(accountId)
		if err == nil {
			c.Set(ctxLoginAccount, account)
			c.Next()
			return
		}
		a.sessionService.EndSession(token)
	}

	if isAjax(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
	} else {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
	}
	c.Abort()
}

// loginAccount returns the account attached by checkLogin, or nil on
// routes outside the authenticated group.
func loginAccount(c *gin.Context) *model.Account {
	if obj, ok := c.Get(ctxLoginAccount); ok {
		if account, ok := obj.(*model.Account); ok {
			return account
		}
	}
	return nil
}
