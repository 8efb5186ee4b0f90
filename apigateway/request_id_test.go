package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	route := gin.New()
	route.Use(RequestID())
	route.GET("/", func(c *gin.Context) {
		seen = RequestIDFromCtx(c)
		c.Status(http.StatusOK)
	})
	return route, &seen
}

func TestRequestIDGenerated(t *testing.T) {
	route, seen := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	route.ServeHTTP(w, req)

	assert.NotEmpty(t, *seen)
	assert.Equal(t, *seen, w.Header().Get(RequestIDHeader))
}

func TestRequestIDHonorsCaller(t *testing.T) {
	route, seen := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "caller-supplied-id")
	route.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", *seen)
	assert.Equal(t, "caller-supplied-id", w.Header().Get(RequestIDHeader))
}
