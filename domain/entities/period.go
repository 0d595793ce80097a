package entities

// PeriodLog is one logged cycle. Logs are keyed by start date, so re-logging
// the same start date overwrites the earlier entry.
type PeriodLog struct {
	UserID    string   `json:"userId" validate:"required"`
	StartDate string   `json:"startDate" validate:"required"`
	EndDate   string   `json:"endDate,omitempty"`
	Flow      string   `json:"flow,omitempty"`
	Symptoms  []string `json:"symptoms,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}
