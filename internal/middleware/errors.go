package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/h4ks-com/farmstand/internal/apperror"
	"go.uber.org/zap"
)

// ErrorHandler is the fallback for every route. Once the chain has run it
// reports the last error attached to the context as a plain-text response
// carrying the error's status and message, or 500 "Something went wrong".
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := apperror.Resolve(err)

		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if c.Writer.Written() {
			return
		}

		c.String(status, message)
	}
}

// Recovery turns a panic into an error for ErrorHandler to report.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
