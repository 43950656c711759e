package api

import (
	"net/http"

	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/handler/httperr"
	"pawsalon/internal/handler/validation"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"
	"pawsalon/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var notFoundSentinels = []error{
	commands.ErrAppointmentNotFound,
	commands.ErrWaitlistEntryNotFound,
	queries.ErrAppointmentNotFound,
	queries.ErrWaitlistEntryNotFound,
	shared.ErrServiceNotFound,
	shared.ErrAddonNotFound,
	shared.ErrCustomerNotFound,
	shared.ErrPetNotFound,
}

// respondError maps a use-case error to the wire taxonomy. Only the code and
// a stable message leave the process; 5xx causes go to the request log.
func respondError(c *gin.Context, err error) {
	httperr.AbortWithError(c, err, toResponse(err))
}

func toResponse(err error) httperr.Response {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return httperr.Response{
			Status:  http.StatusBadRequest,
			Error:   "Invalid request",
			Code:    httperr.CodeValidation,
			Details: errs.Fields(err),
		}

	case errs.Is(err, commands.ErrSlotConflict):
		return conflict(commands.ErrSlotConflict, httperr.CodeSlotConflict)

	case errs.Is(err, commands.ErrEmailExists):
		return conflict(commands.ErrEmailExists, httperr.CodeEmailExists)

	case errs.Is(err, commands.ErrDuplicateEntry):
		resp := conflict(commands.ErrDuplicateEntry, httperr.CodeDuplicateEntry)
		var dup *commands.DuplicateEntryError
		if errs.As(err, &dup) && dup.Entry != nil {
			resp.ExistingEntry = resdto.FromWaitlistEntry(dup.Entry, dup.Position)
		}
		return resp

	case errs.Is(err, commands.ErrInvalidTransition):
		return conflict(commands.ErrInvalidTransition, httperr.CodeInvalidTransition)

	case errs.Is(err, errs.ErrNotFound):
		msg := "Resource not found"
		for _, sentinel := range notFoundSentinels {
			if errs.Is(err, sentinel) {
				msg = sentinel.Error()
				break
			}
		}
		return httperr.Response{Status: http.StatusNotFound, Error: msg, Code: httperr.CodeNotFound}

	case errs.Is(err, errs.ErrConflict):
		return httperr.Response{Status: http.StatusConflict, Error: "Request conflicts with current state", Code: httperr.CodeConflict}

	default:
		return httperr.Internal()
	}
}

func conflict(sentinel error, code string) httperr.Response {
	return httperr.Response{Status: http.StatusConflict, Error: sentinel.Error(), Code: code}
}

func respondBindError(c *gin.Context, err error) {
	respondError(c, validation.Translate(err))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errs.Invalid("id", "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}
