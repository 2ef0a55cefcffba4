package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"diet-server/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	owners map[string]string
	err    error
	calls  []string
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (string, bool, error) {
	f.calls = append(f.calls, token)
	if f.err != nil {
		return "", false, f.err
	}
	if token == "" {
		return "", false, nil
	}
	owner, ok := f.owners[token]
	return owner, ok, nil
}

var testCookie = SessionCookie{Name: "sessionId", MaxAge: time.Hour}

func guardedRouter(resolver SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/private", RequireSession(resolver, testCookie, logging.Nop()), func(c *gin.Context) {
		c.String(http.StatusOK, OwnerID(c))
	})
	return r
}

func get(r http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireSession_KnownToken(t *testing.T) {
	resolver := &fakeResolver{owners: map[string]string{"tok": "owner-1"}}
	rec := get(guardedRouter(resolver), &http.Cookie{Name: "sessionId", Value: "tok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "owner-1", rec.Body.String())
	assert.Equal(t, []string{"tok"}, resolver.calls)
}

func TestRequireSession_Rejections(t *testing.T) {
	resolver := &fakeResolver{owners: map[string]string{"tok": "owner-1"}}
	r := guardedRouter(resolver)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"other cookie", &http.Cookie{Name: "theme", Value: "tok"}},
		{"empty token", &http.Cookie{Name: "sessionId", Value: ""}},
		{"unknown token", &http.Cookie{Name: "sessionId", Value: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, tt.cookie)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())
		})
	}
}

func TestRequireSession_StoreError(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("db down")}
	rec := get(guardedRouter(resolver), &http.Cookie{Name: "sessionId", Value: "tok"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestRequestID(t *testing.T) {
	r := guardedRouter(&fakeResolver{})

	rec := get(r, nil)
	generated := rec.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestSessionCookie_Set(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	testCookie.Set(c, "tok")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sessionId", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}
