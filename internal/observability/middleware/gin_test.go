package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPanicRecoveryGin(t *testing.T) {
	r := gin.New()
	r.Use(PanicRecoveryGin())
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestGin_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Gin(GinConfig{
		SkipPaths:  []string{"/health"},
		Module:     "test",
		TracerName: "test",
	}))

	var reached bool
	r.GET("/ok", func(c *gin.Context) {
		reached = true
		c.Status(http.StatusTeapot)
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, tt := range []struct {
		path string
		want int
	}{
		{path: "/ok", want: http.StatusTeapot},
		{path: "/health", want: http.StatusOK},
		{path: "/missing", want: http.StatusNotFound},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if w.Code != tt.want {
			t.Errorf("GET %s status = %d, want %d", tt.path, w.Code, tt.want)
		}
	}

	if !reached {
		t.Error("handler was not reached")
	}
}
