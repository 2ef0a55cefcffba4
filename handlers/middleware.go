package handlers

import (
	"context"
	"net/http"
	"time"

	"diet-server/logging"
	"diet-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey = "request_id"
	ownerIDKey   = "ownerID"
)

// SessionResolver turns a session token into an owner id. ok is false when
// the token matches nobody.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (ownerID string, ok bool, err error)
}

// RequireSession guards owner-scoped routes. A missing cookie and an unknown
// token fail the same way, with usecases.ErrSubjectNotFound.
func RequireSession(resolver SessionResolver, cookie SessionCookie, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok, err := resolver.Resolve(c.Request.Context(), cookie.Token(c))
		if err != nil {
			RequestLogger(c, log).Errorf("resolve session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": usecases.ErrSubjectNotFound.Error()})
			return
		}
		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

// OwnerID returns the owner resolved by RequireSession.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}

// RequestID ensures every request has a correlation id.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// AccessLog writes one line per request.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		RequestLogger(c, log).Infof("%s %s %d %s", c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// RequestLogger returns log tagged with the request id.
func RequestLogger(c *gin.Context, log logging.Logger) logging.Logger {
	return log.With(requestIDKey, c.GetString(requestIDKey))
}
