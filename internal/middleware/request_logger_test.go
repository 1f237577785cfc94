package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antera/antera-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func loggerTestRouter() *gin.Engine {
	logger.InitStructured("test")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	loggerTestRouter().ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	if len(id) != 8 {
		t.Errorf("expected a generated 8-char request id, got %q", id)
	}
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	loggerTestRouter().ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "trace-42" {
		t.Errorf("expected header to round-trip, got %q", got)
	}
}
