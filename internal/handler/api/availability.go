package api

import (
	"net/http"

	reqdto "pawsalon/internal/handler/dto/request"
	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: q}
}

// @Summary Get availability
// @Description List bookable start times for a service on a date, with waitlist counts for taken slots
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param serviceId query string true "Service ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.queries.GetAvailability(c.Request.Context(), queries.AvailabilityRequest{
		Date:      q.Date,
		ServiceID: q.ServiceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromAvailabilityView(view)
	if err != nil {
		respondError(c, errs.Wrap(err, "availability response"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
