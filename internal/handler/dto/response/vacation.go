package response

import (
	"time"

	"leaveflow/internal/usecase/balance"
	"leaveflow/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type VacationRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	EmployeeID       uuid.UUID  `json:"employee_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	NumberOfDays     int        `json:"number_of_days"`
	Status           string     `json:"status"`
	RequestCode      string     `json:"request_code"`
	ManagerNote      string     `json:"manager_note,omitempty"`
	HRNote           string     `json:"hr_note,omitempty"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	DeductionOutcome string     `json:"deduction_outcome"`
}

type BalanceResponse struct {
	Official    *decimal.Decimal `json:"official_balance"`
	Tentative   *decimal.Decimal `json:"tentative_balance"`
	Unavailable bool             `json:"unavailable"`
	Message     string           `json:"message,omitempty"`
}

type LifecycleResponse struct {
	Request *VacationRequestResponse `json:"request,omitempty"`
	Balance *BalanceResponse         `json:"balance,omitempty"`
}

func FromLifecycleResult(result *commands.LifecycleResult) *LifecycleResponse {
	resp := &LifecycleResponse{}
	if result.Request != nil {
		var req VacationRequestResponse
		_ = copier.Copy(&req, result.Request)
		resp.Request = &req
	}
	if result.Balance != nil {
		resp.Balance = fromComputation(result.Balance)
	}
	return resp
}

func fromComputation(comp *balance.Computation) *BalanceResponse {
	return &BalanceResponse{
		Official:    comp.Official,
		Tentative:   comp.Tentative,
		Unavailable: comp.Unavailable,
		Message:     comp.Message,
	}
}
