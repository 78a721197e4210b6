package model

// Student is a pupil record.
type Student struct {
	StudentID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	FirstName   string  `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName    string  `gorm:"type:varchar(100);not null"                     json:"last_name"`
	SchoolClass string  `gorm:"type:varchar(30)"                               json:"school_class,omitempty"`
	ParentID    *string `gorm:"type:uuid"                                      json:"parent_id,omitempty"`
	SoftDeleteModel

	Parent *Parent `gorm:"foreignKey:ParentID;references:ParentID" json:"parent,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
