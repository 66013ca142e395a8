package booking

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	// StatusPending is part of the stored vocabulary but nothing transitions into or out of it.
	StatusPending Status = "PENDING"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusPending:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s. Confirmed -> Cancelled is the only edge.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusConfirmed && next == StatusCancelled
}
