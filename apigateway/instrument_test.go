package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentationSurvivesReRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// building two engines must not panic on duplicate collectors
	for i := 0; i < 2; i++ {
		route := gin.New()
		route.Use(Instrumentation())
		route.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		route.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCountSearchAfterInstrumentation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	route := gin.New()
	route.Use(Instrumentation())
	_ = route

	// must not panic once the collectors exist
	CountSearch("ok")
	CountSearch("not_found")
}
