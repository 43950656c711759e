package commands

import (
	"fmt"

	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/pkg/errs"
)

var (
	ErrSlotConflict          = errs.New("requested slot is no longer available")
	ErrDuplicateEntry        = errs.New("customer already has an active waitlist entry for this date")
	ErrEmailExists           = errs.New("email belongs to a registered account, sign in to book")
	ErrInvalidTransition     = errs.New("appointment status transition not allowed")
	ErrAppointmentNotFound   = errs.New("appointment not found")
	ErrWaitlistEntryNotFound = errs.New("waitlist entry not found")
	ErrReferenceExhausted    = errs.New("could not allocate a unique booking reference")
)

// DuplicateEntryError carries the entry that already holds the (customer, date) pair.
type DuplicateEntryError struct {
	Entry    *waitlist.Entry
	Position int
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("active waitlist entry %s already exists for %s", e.Entry.ID(), e.Entry.RequestedDate())
}

func duplicateEntry(existing *waitlist.Entry, position int) error {
	err := errs.Mark(&DuplicateEntryError{Entry: existing, Position: position}, ErrDuplicateEntry)
	return errs.Conflict(err)
}
