package api

import (
	"net/http"

	reqdto "pawsalon/internal/handler/dto/request"
	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	waitlist commands.WaitlistCommands
	queries  queries.AppointmentQueries
}

func NewWaitlistHandler(cmds commands.WaitlistCommands, q queries.AppointmentQueries) *WaitlistHandler {
	return &WaitlistHandler{waitlist: cmds, queries: q}
}

// @Summary Join waitlist
// @Description Queue for a fully booked date. One active entry per customer and date.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.JoinWaitlistResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.waitlist.JoinWaitlist(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromJoinWaitlistResult(result))
}

// @Summary Get waitlist entry
// @Tags waitlist
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Success 200 {object} resdto.WaitlistEntryResponse
// @Failure 404 {object} httperr.Response
// @Router /waitlist/{id} [get]
func (h *WaitlistHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetWaitlistEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromWaitlistEntryView(view)
	if err != nil {
		respondError(c, errs.Wrap(err, "waitlist entry response"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel waitlist entry
// @Tags waitlist
// @Param id path string true "Waitlist entry ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /waitlist/{id} [delete]
func (h *WaitlistHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.waitlist.CancelWaitlistEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
