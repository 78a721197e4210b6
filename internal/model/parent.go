package model

// Parent is a guardian record linked to one or more students.
type Parent struct {
	ParentID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"parent_id"`
	FirstName string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Email     string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	Phone     string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	BaseModel

	Students []Student `gorm:"foreignKey:ParentID;references:ParentID" json:"students,omitempty"`
}

// TableName sets the table name.
func (Parent) TableName() string { return "parents" }
