package model

// Enrollment assigns a student to a tutor for one subject and level.
// SubjectID and LevelID reference the static booking catalog, not a table.
type Enrollment struct {
	EnrollmentID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	TutorID      string  `gorm:"type:uuid;not null"                             json:"tutor_id"`
	StudentID    string  `gorm:"type:uuid;not null"                             json:"student_id"`
	SubjectID    string  `gorm:"type:varchar(30);not null"                      json:"subject_id"`
	LevelID      string  `gorm:"type:varchar(30);not null"                      json:"level_id"`
	HourlyRate   float64 `gorm:"type:numeric(8,2);not null;default:0"           json:"hourly_rate"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Tutor   *User    `gorm:"foreignKey:TutorID;references:UserID"      json:"tutor,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (Enrollment) TableName() string { return "enrollments" }
