package httpHandler

import (
	"net/http"

	"diet-server/handlers"
	"diet-server/logging"
	"diet-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	useCase *usecases.UserUseCase
	cookie  handlers.SessionCookie
	log     logging.Logger
}

func NewLoginHandler(useCase *usecases.UserUseCase, cookie handlers.SessionCookie, log logging.Logger) *LoginHandler {
	return &LoginHandler{useCase: useCase, cookie: cookie, log: log}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /sessions. It issues a new session token, which
// replaces whatever token the user had before.
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, token, err := h.useCase.Login(c.Request.Context(), usecases.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.cookie.Set(c, token)
	c.JSON(http.StatusOK, gin.H{"user": user})
}
