package integration

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("invalid integration type")

// Type identifies which external system an endpoint belongs to. Balance
// fetches and deductions go against the same logical system and share one
// endpoint type.
type Type string

const (
	TypeVacationBalance Type = "VACATION_BALANCE"
	TypeHolidayAPI      Type = "HOLIDAY_API"
)

func NewType(value string) (Type, error) {
	t := Type(value)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeVacationBalance, TypeHolidayAPI:
		return true
	default:
		return false
	}
}

type State string

const (
	StateConfigured State = "CONFIGURED"
	StateDisabled   State = "DISABLED"
)

func (s State) String() string {
	return string(s)
}

// Endpoint is collaborator-owned configuration, read-only to the lifecycle
// core. "No active endpoint of the required type" is a first-class outcome
// for callers, not an error.
type Endpoint struct {
	ID          uuid.UUID
	Type        Type
	State       State
	EndpointURL string
	AuthToken   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
