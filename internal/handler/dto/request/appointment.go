package request

import (
	"strings"
	"time"

	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateAppointmentRequest carries exactly one of customerId/guestInfo and
// one of petId/newPet; the pairing rules are enforced by the booking use case.
type CreateAppointmentRequest struct {
	CustomerID      *uuid.UUID     `json:"customerId,omitempty"`
	Guest           *GuestCustomer `json:"guestInfo,omitempty"`
	PetID           *uuid.UUID     `json:"petId,omitempty"`
	NewPet          *NewPet        `json:"newPet,omitempty"`
	ServiceID       uuid.UUID      `json:"serviceId" binding:"required"`
	ScheduledAt     time.Time      `json:"scheduledAt" binding:"required"`
	DurationMinutes int            `json:"durationMinutes" binding:"required,gt=0,max=480"`
	AddonIDs        []uuid.UUID    `json:"addonIds,omitempty"`
	TotalPriceCents int64          `json:"totalPriceCents" binding:"required,gt=0"`
	Notes           string         `json:"notes,omitempty" binding:"max=2000"`
}

type GuestCustomer struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone,omitempty"`
}

type NewPet struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species" binding:"required"`
	Breed   string `json:"breed,omitempty"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	cmd := commands.CreateAppointmentRequest{
		CustomerID:      r.CustomerID,
		PetID:           r.PetID,
		ServiceID:       r.ServiceID,
		ScheduledAt:     r.ScheduledAt,
		DurationMinutes: r.DurationMinutes,
		AddonIDs:        r.AddonIDs,
		TotalPriceCents: r.TotalPriceCents,
		Notes:           strings.TrimSpace(r.Notes),
	}
	if r.Guest != nil {
		cmd.Guest = &shared.GuestCustomer{
			Email:     strings.TrimSpace(r.Guest.Email),
			FirstName: strings.TrimSpace(r.Guest.FirstName),
			LastName:  strings.TrimSpace(r.Guest.LastName),
			Phone:     strings.TrimSpace(r.Guest.Phone),
		}
	}
	if r.NewPet != nil {
		cmd.NewPet = &shared.NewPet{
			Name:    strings.TrimSpace(r.NewPet.Name),
			Species: strings.TrimSpace(r.NewPet.Species),
			Breed:   strings.TrimSpace(r.NewPet.Breed),
		}
	}
	return cmd
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
