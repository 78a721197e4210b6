package dto

// ── enrollment module DTOs ──

// CreateEnrollmentRequest assigns a student to a tutor for one subject.
type CreateEnrollmentRequest struct {
	TutorID    string  `json:"tutor_id"    binding:"required,uuid"`
	StudentID  string  `json:"student_id"  binding:"required,uuid"`
	SubjectID  string  `json:"subject_id"  binding:"required,max=30"`
	LevelID    string  `json:"level_id"    binding:"required,max=30"`
	HourlyRate float64 `json:"hourly_rate" binding:"omitempty,min=0"`
}

// UpdateEnrollmentRequest updates an assignment. Nil means unchanged.
type UpdateEnrollmentRequest struct {
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,min=0"`
	IsActive   *bool    `json:"is_active"`
}

// EnrollmentListRequest filters the enrollment listing.
type EnrollmentListRequest struct {
	TutorID   string `form:"tutor_id"   binding:"omitempty,uuid"`
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,max=30"`
}

// EnrollmentResponse is the assignment shape.
type EnrollmentResponse struct {
	ID          string           `json:"id"`
	TutorID     string           `json:"tutor_id"`
	TutorName   string           `json:"tutor_name,omitempty"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name,omitempty"`
	Subject     CatalogEntry     `json:"subject"`
	Level       CatalogEntry     `json:"level"`
	HourlyRate  float64          `json:"hourly_rate"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   string           `json:"created_at"`
}

// CatalogEntry is a subject or level reference resolved against the static
// booking catalog; Name is empty when the id is unknown.
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
