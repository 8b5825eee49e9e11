package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/apperror"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newErrorRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(logger), Recovery())
	r.GET("/plain", func(c *gin.Context) {
		c.Error(errors.New("dial tcp: connection refused"))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Error(apperror.NotFound("Product not found"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "already done")
		c.Error(errors.New("late failure"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})
	return r
}

func TestErrorHandler_PlainErrorIs500WithDefaultMessage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newErrorRouter(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestErrorHandler_UsesErrorStatusAndMessage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newErrorRouter(zap.New(core))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", w.Body.String())
	assert.Zero(t, logs.Len())
}

func TestErrorHandler_DoesNotOverwriteWrittenResponse(t *testing.T) {
	r := newErrorRouter(zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "already done", w.Body.String())
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	r := newErrorRouter(zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong", w.Body.String())
}

func TestErrorHandler_PassesThroughSuccess(t *testing.T) {
	r := newErrorRouter(zap.NewNop())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}
