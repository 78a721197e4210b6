package model

import "time"

// BillingMonth groups the tutoring hours of one enrollment for one
// calendar month. Amounts are derived: hours x the enrollment's rate.
type BillingMonth struct {
	BillingMonthID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"billing_month_id"`
	EnrollmentID   string `gorm:"type:uuid;not null"                             json:"enrollment_id"`
	Year           int    `gorm:"type:smallint;not null"                         json:"year"`
	Month          int    `gorm:"type:smallint;not null"                         json:"month"`
	IsClosed       bool   `gorm:"not null;default:false"                         json:"is_closed"`
	BaseModel

	Enrollment *Enrollment    `gorm:"foreignKey:EnrollmentID;references:EnrollmentID"     json:"enrollment,omitempty"`
	Entries    []BillingEntry `gorm:"foreignKey:BillingMonthID;references:BillingMonthID" json:"entries,omitempty"`
}

// TableName sets the table name.
func (BillingMonth) TableName() string { return "billing_months" }

// BillingEntry is one logged lesson's hours within a billing month.
type BillingEntry struct {
	BillingEntryID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"billing_entry_id"`
	BillingMonthID string    `gorm:"type:uuid;not null"                             json:"billing_month_id"`
	EntryDate      time.Time `gorm:"type:date;not null"                             json:"entry_date"`
	Hours          float64   `gorm:"type:numeric(5,2);not null"                     json:"hours"`
	Note           string    `gorm:"type:text"                                      json:"note,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (BillingEntry) TableName() string { return "billing_entries" }
