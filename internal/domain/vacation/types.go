package vacation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusProcessed Status = "PROCESSED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusProcessed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDenied || s == StatusProcessed
}

// DeductionOutcome records what the external balance system did for a
// processed request.
type DeductionOutcome string

const (
	DeductionNone    DeductionOutcome = "NONE"
	DeductionSuccess DeductionOutcome = "SUCCESS"
	DeductionFailed  DeductionOutcome = "FAILED"
)

func (o DeductionOutcome) String() string {
	return string(o)
}
