package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contactbook-backend/internal/requestdata"
	"github.com/yungbote/contactbook-backend/internal/services"
	"github.com/yungbote/contactbook-backend/internal/types"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) Register(c *gin.Context) {
	var req types.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	resp, err := uh.userService.Register(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (uh *UserHandler) Login(c *gin.Context) {
	var req types.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	resp, err := uh.userService.Login(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (uh *UserHandler) GetCurrent(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	RespondData(c, types.ToUserResponse(user))
}

func (uh *UserHandler) UpdateCurrent(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}
	resp, err := uh.userService.Update(c.Request.Context(), user, &req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, resp)
}

func (uh *UserHandler) Logout(c *gin.Context) {
	user := requestdata.GetUser(c.Request.Context())
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
		return
	}
	if err := uh.userService.Logout(c.Request.Context(), user); err != nil {
		RespondError(c, err)
		return
	}
	RespondData(c, true)
}
