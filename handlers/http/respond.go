package httpHandler

import (
	"errors"
	"net/http"

	"diet-server/handlers"
	"diet-server/logging"
	"diet-server/usecases"

	"github.com/gin-gonic/gin"
)

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request",
		"details": err.Error(),
	})
}

// respondError maps use case errors onto status codes. Unknown errors are
// logged and hidden from the client.
func respondError(c *gin.Context, log logging.Logger, err error) {
	switch {
	case errors.Is(err, usecases.ErrInvalidInput):
		badRequest(c, err)
	case errors.Is(err, usecases.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": usecases.ErrSubjectNotFound.Error()})
	case errors.Is(err, usecases.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": usecases.ErrUsernameTaken.Error()})
	case errors.Is(err, usecases.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": usecases.ErrMealNotFound.Error()})
	default:
		handlers.RequestLogger(c, log).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
