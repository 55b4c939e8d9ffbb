package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type VacationRequestView struct {
	ID               uuid.UUID  `json:"id"`
	EmployeeID       uuid.UUID  `json:"employee_id"`
	EmployeeName     string     `json:"employee_name"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	NumberOfDays     int32      `json:"number_of_days"`
	Status           string     `json:"status"`
	RequestCode      string     `json:"request_code"`
	ManagerNote      *string    `json:"manager_note,omitempty"`
	HRNote           *string    `json:"hr_note,omitempty"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	DeductionOutcome string     `json:"deduction_outcome"`
}

type HolidayView struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

type BalanceSummary struct {
	Official    *decimal.Decimal `json:"official_balance"`
	Tentative   *decimal.Decimal `json:"tentative_balance"`
	Unavailable bool             `json:"unavailable"`
	Message     string           `json:"message,omitempty"`
}

type DashboardView struct {
	Balance     BalanceSummary        `json:"balance"`
	MyVacations []VacationRequestView `json:"my_vacations"`
	Holidays    []HolidayView         `json:"holidays"`
}

type PendingRequestItem struct {
	Request VacationRequestView `json:"request"`
	Balance BalanceSummary      `json:"balance"`
}

type ManagerRequestDetail struct {
	Request  VacationRequestView `json:"request"`
	Balance  BalanceSummary      `json:"balance"`
	Holidays []HolidayView       `json:"holidays"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type IntegrationEndpointView struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	State       string    `json:"state"`
	EndpointURL string    `json:"endpoint_url"`
	HasToken    bool      `json:"has_token"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Read-side store ports
type VacationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VacationRequestView, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]VacationRequestView, error)
	FindOverlappingForUser(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]VacationRequestView, error)
	FindPending(ctx context.Context) ([]VacationRequestView, error)
	FindApprovedUnprocessed(ctx context.Context) ([]VacationRequestView, error)
}

type HolidayReadStore interface {
	FindForRange(ctx context.Context, start, end time.Time) ([]HolidayView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
