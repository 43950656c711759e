package request

import (
	"pawsalon/internal/usecase/commands"

	"github.com/google/uuid"
)

type JoinWaitlistRequest struct {
	CustomerID     uuid.UUID `json:"customerId" binding:"required"`
	PetID          uuid.UUID `json:"petId" binding:"required"`
	ServiceID      uuid.UUID `json:"serviceId" binding:"required"`
	RequestedDate  string    `json:"requestedDate" binding:"required,calendar_date"`
	TimePreference string    `json:"timePreference" binding:"required,time_preference"`
}

func (r JoinWaitlistRequest) ToCommand() commands.JoinWaitlistRequest {
	return commands.JoinWaitlistRequest{
		CustomerID:     r.CustomerID,
		PetID:          r.PetID,
		ServiceID:      r.ServiceID,
		RequestedDate:  r.RequestedDate,
		TimePreference: r.TimePreference,
	}
}

type AvailabilityQuery struct {
	Date      string `form:"date" binding:"required,calendar_date"`
	ServiceID string `form:"serviceId" binding:"required,uuid"`
}
