package httpHandler

import (
	"net/http"

	"diet-server/handlers"
	"diet-server/logging"
	"diet-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
	cookie  handlers.SessionCookie
	log     logging.Logger
}

func NewUserHandler(useCase *usecases.UserUseCase, cookie handlers.SessionCookie, log logging.Logger) *UserHandler {
	return &UserHandler{useCase: useCase, cookie: cookie, log: log}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /users and starts a session for the new user.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, token, err := h.useCase.Register(c.Request.Context(), usecases.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.cookie.Set(c, token)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
