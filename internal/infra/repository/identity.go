package repository

import (
	"context"
	"log/slog"

	"pawsalon/internal/infra"
	sqlc "pawsalon/internal/infra/sqlc/generated"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/pkg/pgconv"
	"pawsalon/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdentityQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetCustomerByIDRow, error)
	GetCustomerByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.GetCustomerByEmailRow, error)
	CreateGuestCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateGuestCustomerParams) (uuid.UUID, error)
	DeleteUnusedGuestCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	GetPetByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPetByIDRow, error)
	CreatePet(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePetParams) (uuid.UUID, error)
	DeletePet(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

// IdentityRepository runs outside the booking transaction: customers and pets
// it creates are committed at once and removed again by the booking's
// compensation step if the appointment is not made. Guest rows are shared by
// email, so a customer is only removed once nothing refers to it.
type IdentityRepository struct {
	queries IdentityQueries
	db      sqlc.DBTX
}

func NewIdentityRepository(queries IdentityQueries, db sqlc.DBTX) *IdentityRepository {
	return &IdentityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdentityRepository) ResolveCustomer(ctx context.Context, customerID *uuid.UUID, guest *shared.GuestCustomer) (shared.Resolved, error) {
	if customerID != nil {
		row, err := r.queries.GetCustomerByID(ctx, r.db, *customerID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return shared.Resolved{}, shared.ErrCustomerNotFound
			}
			return shared.Resolved{}, infra.WrapRepoErr("failed to find customer by ID", err)
		}
		return shared.Resolved{ID: row.ID}, nil
	}

	email := shared.NormalizeEmail(guest.Email)
	if resolved, found, err := r.existingGuest(ctx, email); err != nil || found {
		return resolved, err
	}

	id, err := r.queries.CreateGuestCustomer(ctx, r.db, sqlc.CreateGuestCustomerParams{
		Email:     email,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Phone:     pgconv.OptionalText(guest.Phone),
	})
	if err == nil {
		return shared.Resolved{ID: id, Created: true}, nil
	}
	if !pgconv.IsNoRows(err) {
		return shared.Resolved{}, infra.WrapRepoErr("failed to create guest customer", err)
	}

	// another request inserted the same email between our lookup and insert
	resolved, found, err := r.existingGuest(ctx, email)
	if err != nil {
		return shared.Resolved{}, err
	}
	if !found {
		return shared.Resolved{}, infra.NewRepoErr(infra.KindDBFailure, "guest customer vanished after conflict")
	}
	return resolved, nil
}

func (r *IdentityRepository) existingGuest(ctx context.Context, email string) (shared.Resolved, bool, error) {
	row, err := r.queries.GetCustomerByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.Resolved{}, false, nil
		}
		return shared.Resolved{}, false, infra.WrapRepoErr("failed to find customer by email", err)
	}
	if !row.IsGuest {
		return shared.Resolved{}, true, errs.Wrapf(shared.ErrEmailRegistered, "email %s", email)
	}
	return shared.Resolved{ID: row.ID}, true, nil
}

func (r *IdentityRepository) ResolvePet(ctx context.Context, customerID uuid.UUID, petID *uuid.UUID, pet *shared.NewPet) (shared.Resolved, error) {
	if petID != nil {
		row, err := r.queries.GetPetByID(ctx, r.db, *petID)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return shared.Resolved{}, shared.ErrPetNotFound
			}
			return shared.Resolved{}, infra.WrapRepoErr("failed to find pet by ID", err)
		}
		if row.CustomerID != customerID {
			return shared.Resolved{}, shared.ErrPetNotFound
		}
		return shared.Resolved{ID: row.ID}, nil
	}

	id, err := r.queries.CreatePet(ctx, r.db, sqlc.CreatePetParams{
		CustomerID: customerID,
		Name:       pet.Name,
		Species:    pet.Species,
		Breed:      pgconv.OptionalText(pet.Breed),
	})
	if err != nil {
		err = infra.WrapRepoErr("failed to create pet", err)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			// a failed booking removed the guest we fetched
			return shared.Resolved{}, errs.Mark(err, shared.ErrCustomerRemoved)
		}
		return shared.Resolved{}, err
	}
	return shared.Resolved{ID: id, Created: true}, nil
}

// DeleteCustomer checks for references in the same statement; a pet inserted
// concurrently surfaces as a foreign key violation, which also keeps the row.
func (r *IdentityRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.queries.DeleteUnusedGuestCustomer(ctx, r.db, id)
	if err != nil {
		err = infra.WrapRepoErr("failed to delete customer", err)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			slog.Info("guest customer kept, referenced by another booking", "customer_id", id.String())
			return nil
		}
		return err
	}
	if deleted == 0 {
		slog.Info("guest customer kept, still in use", "customer_id", id.String())
	}
	return nil
}

func (r *IdentityRepository) DeletePet(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeletePet(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	return nil
}
