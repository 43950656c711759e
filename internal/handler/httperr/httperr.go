package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeSlotConflict      = "SLOT_CONFLICT"
	CodeDuplicateEntry    = "DUPLICATE_ENTRY"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL_ERROR"

	InternalMessage = "Internal server error"
)

type Response struct {
	Status        int    `json:"-"`
	Error         string `json:"error"`
	Code          string `json:"code"`
	Details       any    `json:"details,omitempty"`
	ExistingEntry any    `json:"existingEntry,omitempty"`
}

func Internal() Response {
	return Response{Status: http.StatusInternalServerError, Error: InternalMessage, Code: CodeInternal}
}

// preserves original error for logging middleware
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
