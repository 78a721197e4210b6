package dto

// ── student module DTOs ──

// CreateStudentRequest adds a pupil.
type CreateStudentRequest struct {
	FirstName   string  `json:"first_name"   binding:"required,min=2,max=100"`
	LastName    string  `json:"last_name"    binding:"required,min=2,max=100"`
	SchoolClass string  `json:"school_class" binding:"omitempty,max=30"`
	ParentID    *string `json:"parent_id"    binding:"omitempty,uuid"`
}

// UpdateStudentRequest updates a pupil. Nil means unchanged.
type UpdateStudentRequest struct {
	FirstName   *string `json:"first_name"   binding:"omitempty,min=2,max=100"`
	LastName    *string `json:"last_name"    binding:"omitempty,min=2,max=100"`
	SchoolClass *string `json:"school_class" binding:"omitempty,max=30"`
	ParentID    *string `json:"parent_id"    binding:"omitempty,uuid"`
}

// StudentListRequest filters the student listing.
type StudentListRequest struct {
	Search   string `form:"search"    binding:"omitempty,max=100"`
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// StudentResponse is the pupil shape.
type StudentResponse struct {
	ID          string       `json:"id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	SchoolClass string       `json:"school_class,omitempty"`
	ParentID    *string      `json:"parent_id,omitempty"`
	Parent      *ParentBrief `json:"parent,omitempty"`
	CreatedAt   string       `json:"created_at"`
}
