package dto

// ── parent module DTOs ──

// CreateParentRequest adds a guardian.
type CreateParentRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=100"`
	LastName  string `json:"last_name"  binding:"required,min=2,max=100"`
	Email     string `json:"email"      binding:"omitempty,email"`
	Phone     string `json:"phone"      binding:"omitempty,max=30"`
}

// UpdateParentRequest updates a guardian. Nil means unchanged.
type UpdateParentRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=2,max=100"`
	Email     *string `json:"email"      binding:"omitempty,email"`
	Phone     *string `json:"phone"      binding:"omitempty,max=30"`
}

// ParentResponse is the guardian shape.
type ParentResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ParentBrief is the compact guardian shape embedded in student responses.
type ParentBrief struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}
