package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is the application-level error. It renders as
// {"message": ..., <Payload fields>} with StatusCode, 400 when unset.
type APIError struct {
	Message    string
	StatusCode int
	Payload    map[string]any
}

func NewAPIError(message string, status int) *APIError {
	return &APIError{Message: message, StatusCode: status}
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusBadRequest
	}
	return e.StatusCode
}

func (e *APIError) ToMap() gin.H {
	out := gin.H{}
	for k, v := range e.Payload {
		out[k] = v
	}
	out["message"] = e.Message
	return out
}

// msg writes the handler-level validation reply.
func msg(c *gin.Context, status int, text string) {
	c.JSON(status, gin.H{"msg": text})
}

// ErrorHandler turns errors attached with c.Error into JSON. APIErrors keep
// their status; anything else is logged and answered with a bare 500.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status(), apiErr.ToMap())
			return
		}

		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"message": http.StatusText(http.StatusInternalServerError)})
	}
}

// Recovery answers panics the same way as unhandled errors.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": http.StatusText(http.StatusInternalServerError)})
	})
}
