package dto

// ── billing module DTOs ──

// CreateBillingMonthRequest opens a billing month for an enrollment.
type CreateBillingMonthRequest struct {
	EnrollmentID string `json:"enrollment_id" binding:"required,uuid"`
	Year         int    `json:"year"          binding:"required,min=2020,max=2100"`
	Month        int    `json:"month"         binding:"required,min=1,max=12"`
}

// AddBillingEntryRequest logs hours within a billing month.
type AddBillingEntryRequest struct {
	EntryDate string  `json:"entry_date" binding:"required"` // "2026-09-01"
	Hours     float64 `json:"hours"      binding:"required,gt=0,max=24"`
	Note      string  `json:"note"       binding:"omitempty,max=500"`
}

// BillingMonthListRequest filters billing months.
type BillingMonthListRequest struct {
	EnrollmentID string `form:"enrollment_id" binding:"omitempty,uuid"`
	TutorID      string `form:"tutor_id"      binding:"omitempty,uuid"`
	Year         int    `form:"year"          binding:"omitempty,min=2020,max=2100"`
	Month        int    `form:"month"         binding:"omitempty,min=1,max=12"`
}

// BillingEntryResponse is one logged lesson.
type BillingEntryResponse struct {
	ID        string  `json:"id"`
	EntryDate string  `json:"entry_date"`
	Hours     float64 `json:"hours"`
	Note      string  `json:"note,omitempty"`
}

// BillingMonthResponse is a billing month with its derived totals.
type BillingMonthResponse struct {
	ID           string                 `json:"id"`
	EnrollmentID string                 `json:"enrollment_id"`
	TutorName    string                 `json:"tutor_name,omitempty"`
	StudentName  string                 `json:"student_name,omitempty"`
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	IsClosed     bool                   `json:"is_closed"`
	HourlyRate   float64                `json:"hourly_rate"`
	TotalHours   float64                `json:"total_hours"`
	TotalAmount  float64                `json:"total_amount"`
	Entries      []BillingEntryResponse `json:"entries,omitempty"`
}
