package request

import "time"

const dateLayout = "2006-01-02"

type SubmitVacationRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

// Dates parses the bound date strings; binding already guarantees the layout.
func (r *SubmitVacationRequest) Dates() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(dateLayout, r.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type DecisionRequest struct {
	Note string `json:"note" binding:"omitempty,max=500"`
}
