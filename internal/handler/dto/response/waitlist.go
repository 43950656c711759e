package response

import (
	"time"

	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type JoinWaitlistResponse struct {
	Success    bool      `json:"success"`
	WaitlistID uuid.UUID `json:"waitlistId"`
	Position   int       `json:"position"`
}

type WaitlistEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	PetID          uuid.UUID `json:"petId"`
	ServiceID      uuid.UUID `json:"serviceId"`
	RequestedDate  string    `json:"requestedDate"`
	TimePreference string    `json:"timePreference"`
	Status         string    `json:"status"`
	Position       int       `json:"position,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromJoinWaitlistResult(r *commands.JoinWaitlistResult) JoinWaitlistResponse {
	return JoinWaitlistResponse{
		Success:    true,
		WaitlistID: r.Entry.ID(),
		Position:   r.Position,
	}
}

func FromWaitlistEntryView(v *queries.WaitlistEntryView) (*WaitlistEntryResponse, error) {
	var resp WaitlistEntryResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FromWaitlistEntry renders the entry that blocked a duplicate join.
func FromWaitlistEntry(e *waitlist.Entry, position int) *WaitlistEntryResponse {
	v := queries.NewWaitlistEntryView(e, position)
	return &WaitlistEntryResponse{
		ID:             v.ID,
		CustomerID:     v.CustomerID,
		PetID:          v.PetID,
		ServiceID:      v.ServiceID,
		RequestedDate:  v.RequestedDate,
		TimePreference: v.TimePreference,
		Status:         v.Status,
		Position:       v.Position,
		CreatedAt:      v.CreatedAt,
	}
}
