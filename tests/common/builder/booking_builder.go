//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	reqdto "pawsalon/internal/handler/dto/request"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID      *uuid.UUID
	Guest           *shared.GuestCustomer
	PetID           *uuid.UUID
	NewPet          *shared.NewPet
	ServiceID       uuid.UUID
	ScheduledAt     time.Time
	DurationMinutes int
	AddonIDs        []uuid.UUID
	TotalPriceCents int64
	Notes           string
}

// NewBookingBuilder defaults to a guest booking a new dog for a 60 minute groom.
func NewBookingBuilder(serviceID uuid.UUID, scheduledAt time.Time) *BookingBuilder {
	return &BookingBuilder{
		Guest: &shared.GuestCustomer{
			Email:     "guest@example.com",
			FirstName: "Jamie",
			LastName:  "Rivera",
			Phone:     "555-0100",
		},
		NewPet: &shared.NewPet{
			Name:    "Biscuit",
			Species: "dog",
			Breed:   "Beagle",
		},
		ServiceID:       serviceID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 60,
		TotalPriceCents: 6500,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// WithGuestN gives each concurrent caller a distinct guest.
func (b *BookingBuilder) WithGuestN(n int) *BookingBuilder {
	g := *b.Guest
	g.Email = fmt.Sprintf("guest%d@example.com", n)
	b.Guest = &g
	return b
}

func (b *BookingBuilder) WithCustomer(customerID, petID uuid.UUID) *BookingBuilder {
	b.CustomerID = &customerID
	b.Guest = nil
	b.PetID = &petID
	b.NewPet = nil
	return b
}

// Build methods
func (b *BookingBuilder) BuildCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		CustomerID:      b.CustomerID,
		Guest:           b.Guest,
		PetID:           b.PetID,
		NewPet:          b.NewPet,
		ServiceID:       b.ServiceID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		AddonIDs:        b.AddonIDs,
		TotalPriceCents: b.TotalPriceCents,
		Notes:           b.Notes,
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateAppointmentRequest {
	req := reqdto.CreateAppointmentRequest{
		CustomerID:      b.CustomerID,
		PetID:           b.PetID,
		ServiceID:       b.ServiceID,
		ScheduledAt:     b.ScheduledAt,
		DurationMinutes: b.DurationMinutes,
		AddonIDs:        b.AddonIDs,
		TotalPriceCents: b.TotalPriceCents,
		Notes:           b.Notes,
	}
	if b.Guest != nil {
		req.Guest = &reqdto.GuestCustomer{
			Email:     b.Guest.Email,
			FirstName: b.Guest.FirstName,
			LastName:  b.Guest.LastName,
			Phone:     b.Guest.Phone,
		}
	}
	if b.NewPet != nil {
		req.NewPet = &reqdto.NewPet{
			Name:    b.NewPet.Name,
			Species: b.NewPet.Species,
			Breed:   b.NewPet.Breed,
		}
	}
	return req
}
