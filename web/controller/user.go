package controller

import (
	"net/http"
	"strconv"

	"userpanel/logger"
	"userpanel/web/service"

	"github.com/gin-gonic/gin"
)

// UserForm represents the create/edit request structure. On edit an empty
// password keeps the stored one.
type UserForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserController handles the authenticated user management area.
type UserController struct {
	BaseController
}

// NewUserController creates a new UserController and initializes its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/user")
	g.Use(a.checkLogin)

	g.GET("/list", a.list)
	g.GET("/create", a.createPage)
	g.POST("/create", a.create)
	g.GET("/:id", a.detail)
	g.GET("/:id/edit", a.editPage)
	g.POST("/:id/edit", a.edit)
	g.POST("/:id/delete", a.delete)
}

func (a *UserController) list(c *gin.Context) {
	users, err := a.userService.ListUsers()
	if err != nil {
		jsonMsg(c, "list users", err)
		return
	}
	html(c, "user_list.html", "Users", gin.H{
		"users":        users,
		"loginAccount": loginAccount(c),
	})
}

func (a *UserController) createPage(c *gin.Context) {
	html(c, "user_form.html", "Create User", gin.H{
		"action": c.GetString("base_path") + "user/create",
	})
}

// create adds a new account through the same validation path as public
// registration.
func (a *UserController) create(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" || form.Email == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "username, email and password are required")
		return
	}

	user, err := a.userService.CreateUser(form.Username, form.Email, form.Password)
	if service.IsConflict(err) {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "create user", err)
		return
	}

	logger.Infof("user %s created by %s", user.Username, loginAccount(c).Username)
	jsonObj(c, user, nil)
}

func (a *UserController) detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	user, err := a.userService.GetUser(id)
	if err == service.ErrNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		jsonMsg(c, "get user", err)
		return
	}
	html(c, "user_detail.html", "User "+user.Username, gin.H{
		"user": user,
	})
}

func (a *UserController) editPage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	user, err := a.userService.GetUser(id)
	if err == service.ErrNotFound {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		jsonMsg(c, "get user", err)
		return
	}
	html(c, "user_form.html", "Edit User", gin.H{
		"user":   user,
		"action": c.GetString("base_path") + "user/" + strconv.Itoa(user.Id) + "/edit",
	})
}

func (a *UserController) edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, "account not found")
		return
	}
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" || form.Email == "" {
		pureJsonMsg(c, http.StatusOK, false, "username and email are required")
		return
	}

	user, err := a.userService.UpdateUser(id, form.Username, form.Email, form.Password)
	if err == service.ErrNotFound {
		pureJsonMsg(c, http.StatusOK, false, "account not found")
		return
	} else if service.IsConflict(err) {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "update user", err)
		return
	}

	jsonObj(c, user, nil)
}

// delete removes an account and ends any live sessions bound to it, so a
// deleted account cannot keep an authenticated cookie alive.
func (a *UserController) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusOK, false, "account not found")
		return
	}

	if err := a.userService.DeleteUser(id); err != nil {
		if err == service.ErrNotFound {
			pureJsonMsg(c, http.StatusOK, false, "account not found")
		} else {
			jsonMsg(c, "delete user", err)
		}
		return
	}
	a.sessionService.EndSessionsFor(id)

	logger.Infof("user id %d deleted by %s", id, loginAccount(c).Username)
	jsonMsg(c, "user deleted", nil)
}
