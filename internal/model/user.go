package model

// User roles. Registrations start as pending until an admin approves them.
const (
	RoleAdmin   = "admin"
	RoleTutor   = "tutor"
	RolePending = "pending"
)

// User is an account: an admin, a tutor, or a pending registration.
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName    string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Phone        string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	Role         string `gorm:"type:varchar(20);not null;default:'pending'"    json:"role"`
	SoftDeleteModel
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
