package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/foodies/backend/internal/apperrors"
	"github.com/pageza/foodies/backend/internal/types"
)

// ErrorHandler renders the last error pushed with c.Error as {"message": ...}.
// Errors that are not HTTPErrors become 500 and are logged.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		httpErr, ok := apperrors.As(last.Err)
		if !ok {
			log.Error("request failed",
				zap.Error(last.Err),
				zap.String("request_id", c.GetString(ContextRequestID)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			httpErr = apperrors.Internal("")
		} else if httpErr.Status >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(last.Err), zap.String("request_id", c.GetString(ContextRequestID)))
		}

		c.JSON(httpErr.Status, types.MessageResponse{Message: httpErr.Message})
	}
}
