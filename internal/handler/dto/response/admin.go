package response

import "leaveflow/internal/usecase/commands"

type HolidayImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func FromHolidayImportResult(result *commands.HolidayImportResult) *HolidayImportResponse {
	return &HolidayImportResponse{
		Imported: result.Imported,
		Skipped:  result.Skipped,
	}
}
