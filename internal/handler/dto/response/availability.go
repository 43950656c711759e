package response

import (
	"pawsalon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Time          string `json:"time"`
	Available     bool   `json:"available"`
	WaitlistCount *int   `json:"waitlistCount,omitempty"`
}

type AvailabilityResponse struct {
	Date            string         `json:"date"`
	ServiceID       uuid.UUID      `json:"serviceId"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	resp := AvailabilityResponse{Slots: []SlotResponse{}}
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	if resp.Slots == nil {
		resp.Slots = []SlotResponse{}
	}
	return &resp, nil
}
