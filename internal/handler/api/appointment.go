package api

import (
	"net/http"
	"time"

	reqdto "pawsalon/internal/handler/dto/request"
	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	booking commands.BookingCommands
	status  commands.StatusCommands
	queries queries.AppointmentQueries
	loc     *time.Location
}

func NewAppointmentHandler(
	booking commands.BookingCommands,
	status commands.StatusCommands,
	q queries.AppointmentQueries,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		booking: booking,
		status:  status,
		queries: q,
		loc:     loc,
	}
}

// @Summary Create appointment
// @Description Book a slot for an existing or guest customer. Concurrent requests for one slot yield one success and SLOT_CONFLICT for the rest.
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.CreateAppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.booking.CreateAppointment(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateAppointmentResult(result, h.loc))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := resdto.FromAppointmentView(view)
	if err != nil {
		respondError(c, errs.Wrap(err, "appointment response"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Change appointment status
// @Description Apply one lifecycle transition (pending, confirmed, checked_in, in_progress, completed, cancelled, no_show)
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.status.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusChange(result))
}
