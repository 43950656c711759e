package shared

import (
	"context"
	"strings"
	"time"

	"pawsalon/internal/domain/schedule"
	"pawsalon/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmailRegistered  = errs.New("email belongs to a registered account")
	ErrCustomerNotFound = errs.New("customer not found")
	ErrPetNotFound      = errs.New("pet not found")
	ErrCustomerRemoved  = errs.New("customer was removed before the pet could be attached")
	ErrServiceNotFound  = errs.New("service not found")
	ErrAddonNotFound    = errs.New("addon not found")
)

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	BasePriceCents  int64
	Active          bool
}

func (s ServiceSnapshot) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

type AddonSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Active     bool
}

// Catalog is the settings/service collaborator. Unknown ids yield an infra
// NOT_FOUND error; a weekday without configured hours is closed.
type Catalog interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	AddonsByIDs(ctx context.Context, ids []uuid.UUID) ([]AddonSnapshot, error)
	BusinessHours(ctx context.Context, weekday time.Weekday) (schedule.BusinessHours, error)
}

// NormalizeEmail is the lookup key for guest customers.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type GuestCustomer struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type NewPet struct {
	Name    string
	Species string
	Breed   string
}

// Resolved reports an identity row and whether this call created it, so the
// caller knows what to compensate.
type Resolved struct {
	ID      uuid.UUID
	Created bool
}

// IdentityResolver is the customer/pet collaborator. Rows it creates are
// committed immediately and must be removed with the Delete methods if the
// booking that needed them fails.
type IdentityResolver interface {
	// ResolveCustomer returns ErrCustomerNotFound for an unknown id and
	// ErrEmailRegistered when the guest email belongs to a registered account.
	ResolveCustomer(ctx context.Context, customerID *uuid.UUID, guest *GuestCustomer) (Resolved, error)
	// ResolvePet returns ErrPetNotFound when the pet is unknown or owned by another
	// customer, and ErrCustomerRemoved when a new pet's owner no longer exists.
	ResolvePet(ctx context.Context, customerID uuid.UUID, petID *uuid.UUID, pet *NewPet) (Resolved, error)
	// DeleteCustomer removes a guest customer only while no pet, appointment or
	// waitlist entry refers to it. A customer still in use is kept without error.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	DeletePet(ctx context.Context, id uuid.UUID) error
}
