package dto

// ── user module DTOs ──

// UserListRequest filters the user listing.
type UserListRequest struct {
	Role     string `form:"role"      binding:"omitempty,oneof=admin tutor pending"`
	Search   string `form:"search"    binding:"omitempty,max=100"`
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// UpdateUserRequest updates profile fields. Nil means unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone"      binding:"omitempty,max=30"`
}

// UserResponse is the public account shape.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
