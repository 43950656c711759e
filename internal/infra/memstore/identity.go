package memstore

import (
	"context"

	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

func (s *Store) Identity() shared.IdentityResolver {
	return (*identity)(s)
}

type identity Store

func (r *identity) ResolveCustomer(ctx context.Context, customerID *uuid.UUID, guest *shared.GuestCustomer) (shared.Resolved, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customerID != nil {
		if _, ok := r.customers[*customerID]; !ok {
			return shared.Resolved{}, shared.ErrCustomerNotFound
		}
		return shared.Resolved{ID: *customerID}, nil
	}

	email := shared.NormalizeEmail(guest.Email)
	for _, c := range r.customers {
		if c.Email != email {
			continue
		}
		if !c.IsGuest {
			return shared.Resolved{}, shared.ErrEmailRegistered
		}
		return shared.Resolved{ID: c.ID}, nil
	}

	id := uuid.New()
	r.customers[id] = customerRecord{
		ID:        id,
		Email:     email,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Phone:     guest.Phone,
		IsGuest:   true,
	}
	return shared.Resolved{ID: id, Created: true}, nil
}

func (r *identity) ResolvePet(ctx context.Context, customerID uuid.UUID, petID *uuid.UUID, pet *shared.NewPet) (shared.Resolved, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if petID != nil {
		p, ok := r.pets[*petID]
		if !ok || p.CustomerID != customerID {
			return shared.Resolved{}, shared.ErrPetNotFound
		}
		return shared.Resolved{ID: p.ID}, nil
	}
	if _, ok := r.customers[customerID]; !ok {
		return shared.Resolved{}, shared.ErrCustomerRemoved
	}

	id := uuid.New()
	r.pets[id] = petRecord{
		ID:         id,
		CustomerID: customerID,
		Name:       pet.Name,
		Species:    pet.Species,
		Breed:      pet.Breed,
	}
	return shared.Resolved{ID: id, Created: true}, nil
}

func (r *identity) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[id]; !ok || !c.IsGuest || r.customerInUse(id) {
		return nil
	}
	delete(r.customers, id)
	return nil
}

// customerInUse expects r.mu to be held.
func (r *identity) customerInUse(id uuid.UUID) bool {
	for _, p := range r.pets {
		if p.CustomerID == id {
			return true
		}
	}
	for _, a := range r.appointments {
		if a.CustomerID == id {
			return true
		}
	}
	for _, e := range r.entries {
		if e.CustomerID == id {
			return true
		}
	}
	return false
}

func (r *identity) DeletePet(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pets, id)
	return nil
}
