// Package dto defines data transfer objects for API requests and responses.
package dto

// SendMonthlyReportRequest represents the request body for queueing monthly
// report emails.
type SendMonthlyReportRequest struct {
	Year  int `json:"year" binding:"required,min=1970"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// SendMonthlyReportResponse represents the outcome of a report queueing run.
type SendMonthlyReportResponse struct {
	Queued int `json:"queued"`
	Failed int `json:"failed"`
}
