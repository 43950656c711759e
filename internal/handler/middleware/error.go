package middleware

import (
	"log/slog"
	"net/http"

	"pawsalon/internal/handler/httperr"
	"pawsalon/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders the latest public error response unless the handler
// already wrote it, and logs the cause of every 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		resp, cause := httperr.Internal(), c.Errors.Last().Err
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if r, ok := err.Meta.(httperr.Response); ok {
				resp, cause = r, err.Err
				break
			}
		}

		if resp.Status >= http.StatusInternalServerError {
			logInternal(c, cause)
		}
		if !c.Writer.Written() {
			c.JSON(resp.Status, resp)
		}
	}
}

// logInternal keeps the cause of a 500 in the logs; clients only see the
// generic body.
func logInternal(c *gin.Context, err error) {
	slog.Error("internal error",
		"request_id", GetRequestID(c),
		"route", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, stackLinesLogged))
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"error", err,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
			}
		}()
		c.Next()
	}
}
