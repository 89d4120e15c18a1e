package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates an ID when none supplied", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			assert.NotEmpty(t, GetRequestID(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("honors an incoming X-Request-ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			assert.Equal(t, "caller-supplied", GetRequestID(c))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "caller-supplied")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "caller-supplied", w.Header().Get(RequestIDHeader))
	})
}

func TestRequireJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(RequireJSON())
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		router.POST("/things", ok)
		router.PUT("/things", ok)
		router.GET("/things", ok)
		router.DELETE("/things", ok)
		return router
	}

	t.Run("rejects POST without JSON content type", func(t *testing.T) {
		router := newRouter()
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("x=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_UNSUPPORTED_MEDIA_TYPE")
	})

	t.Run("rejects PUT with missing content type", func(t *testing.T) {
		router := newRouter()
		req := httptest.NewRequest(http.MethodPut, "/things", strings.NewReader("{}"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("accepts POST with application/json", func(t *testing.T) {
		router := newRouter()
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accepts charset parameter", func(t *testing.T) {
		router := newRouter()
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ignores GET and DELETE", func(t *testing.T) {
		router := newRouter()
		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(method, "/things", nil))
			assert.Equal(t, http.StatusOK, w.Code, method)
		}
	})
}
