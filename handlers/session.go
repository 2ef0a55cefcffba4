package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookie describes the cookie that carries the session token.
// MaxAge is advisory for the client; the server never expires tokens.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Set writes token into the session cookie.
func (s SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, int(s.MaxAge.Seconds()), "/", "", s.Secure, true)
}

// Token reads the session token from the request; empty when absent.
func (s SessionCookie) Token(c *gin.Context) string {
	token, err := c.Cookie(s.Name)
	if err != nil {
		return ""
	}
	return token
}
