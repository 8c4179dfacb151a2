package models

import "time"

// Admin log actions recorded for administrative mutations.
const (
	AdminActionRegisterStudent = "Register Student"
	AdminActionRegisterTeacher = "Register Teacher"
	AdminActionDeleteStudent   = "Delete Student"
)

// AdminLog is an append-only record of an administrative action.
type AdminLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	Details   string    `gorm:"size:512;not null" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
