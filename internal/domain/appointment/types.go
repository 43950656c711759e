package appointment

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// forward lists the single non-abort successor of each non-terminal status.
var forward = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusCheckedIn,
	StatusCheckedIn:  StatusInProgress,
	StatusInProgress: StatusCompleted,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// OccupiesSlot reports whether the appointment still holds its interval.
// Completed visits keep their slot; cancelled and no-show ones release it.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled && s != StatusNoShow
}

func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == StatusCancelled || next == StatusNoShow {
		return true
	}
	return forward[s] == next
}

// ReleasedStatuses are excluded from conflict checks.
func ReleasedStatuses() []Status {
	return []Status{StatusCancelled, StatusNoShow}
}
