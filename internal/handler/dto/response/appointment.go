package response

import (
	"time"

	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateAppointmentResponse struct {
	Success       bool      `json:"success"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Reference     string    `json:"reference"`
	ScheduledAt   time.Time `json:"scheduledAt"`
}

type AppointmentResponse struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      uuid.UUID   `json:"customerId"`
	PetID           uuid.UUID   `json:"petId"`
	ServiceID       uuid.UUID   `json:"serviceId"`
	ScheduledAt     time.Time   `json:"scheduledAt"`
	DurationMinutes int         `json:"durationMinutes"`
	AddonIDs        []uuid.UUID `json:"addonIds"`
	TotalPriceCents int64       `json:"totalPriceCents"`
	Status          string      `json:"status"`
	Reference       string      `json:"reference"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type StatusChangeResponse struct {
	AppointmentID  uuid.UUID `json:"appointmentId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromCreateAppointmentResult(r *commands.CreateAppointmentResult, loc *time.Location) CreateAppointmentResponse {
	return CreateAppointmentResponse{
		Success:       true,
		AppointmentID: r.AppointmentID,
		Reference:     r.Reference,
		ScheduledAt:   r.ScheduledAt.In(loc),
	}
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromStatusChange(r *commands.StatusChangeResult) StatusChangeResponse {
	return StatusChangeResponse{
		AppointmentID:  r.AppointmentID,
		PreviousStatus: r.PreviousStatus.String(),
		Status:         r.Status.String(),
		UpdatedAt:      r.UpdatedAt,
	}
}
