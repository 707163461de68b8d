package controller

import (
	"net/http"
	"strconv"

	"debatab/auth"
	"debatab/config"
	"debatab/repository"
	"debatab/service"
	"debatab/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: service.NewUserService(db),
	}
}

func setupUserController(db *gorm.DB) []RouteInfo {
	e := NewUserController(db)
	basePath := "/users"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler(), Authenticated: true},
		{Method: "GET", Path: "/self", HandlerFunc: e.getUserHandler(), Authenticated: true},
		{Method: "GET", Path: "", HandlerFunc: e.getAllUsersHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "POST", Path: "", HandlerFunc: e.createUserHandler(), Authenticated: true, RequiredSuperuser: true},
		{Method: "PATCH", Path: "/:user_id/permissions", HandlerFunc: e.setPermissionsHandler(), Authenticated: true, RequiredSuperuser: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id Login
// @Description Authenticates a user by username and password and sets the auth cookie
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Router /users/login [post]
func (e *UserController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.Login(login.Username, login.Password)
		if err != nil {
			c.JSON(401, gin.H{"error": err.Error()})
			return
		}
		token, err := auth.CreateToken(user)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("auth", token, 60*60*24*7, "/", config.Env().PublicDomain, false, true)
		c.JSON(200, LoginResponse{User: toUserResponse(user), Token: token})
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 204
// @Router /users/logout [post]
func (e *UserController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie("auth", "", -1, "/", config.Env().PublicDomain, false, true)
		c.JSON(204, nil)
	}
}

// @id GetUser
// @Description Fetches the authenticated user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} User
// @Router /users/self [get]
func (e *UserController) getUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := getUser(c)
		if user == nil {
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

// @id GetAllUsers
// @Description Fetches all users
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} User
// @Router /users [get]
func (e *UserController) getAllUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := e.userService.GetAllUsers()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, utils.Map(users, toUserResponse))
	}
}

// @id CreateUser
// @Description Creates a user with a password login
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UserCreate true "User to create"
// @Success 201 {object} User
// @Router /users [post]
func (e *UserController) createUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCreate UserCreate
		if err := c.BindJSON(&userCreate); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.CreateUser(userCreate.Username, userCreate.Password, userCreate.Email)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, toUserResponse(user))
	}
}

// @id SetPermissions
// @Description Replaces a user's permissions for one tournament
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User Id"
// @Param grants body PermissionsUpdate true "Permissions for the tournament"
// @Success 200 {object} User
// @Router /users/{user_id}/permissions [patch]
func (e *UserController) setPermissionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, err := strconv.Atoi(c.Param("user_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		var update PermissionsUpdate
		if err := c.BindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		user, err := e.userService.SetPermissions(userId, update.TournamentId, update.Permissions)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UserCreate struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
}

type PermissionsUpdate struct {
	TournamentId int                     `json:"tournament_id" binding:"required"`
	Permissions  []repository.Permission `json:"permissions"`
}

type PermissionGrant struct {
	TournamentId int    `json:"tournament_id"`
	Permission   string `json:"permission"`
}

type User struct {
	Id          int               `json:"id"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	DiscordName string            `json:"discord_name"`
	IsSuperuser bool              `json:"is_superuser"`
	Permissions []PermissionGrant `json:"permissions"`
}

func toUserResponse(user *repository.User) *User {
	response := &User{
		Id:          user.Id,
		Username:    user.Username,
		Email:       user.Email,
		DiscordName: user.DiscordName,
		IsSuperuser: user.IsSuperuser,
		Permissions: make([]PermissionGrant, 0, len(user.Permissions)),
	}
	for _, grant := range user.Permissions {
		response.Permissions = append(response.Permissions, PermissionGrant{
			TournamentId: grant.TournamentId,
			Permission:   string(grant.Permission),
		})
	}
	return response
}
