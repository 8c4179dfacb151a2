package models

import "time"

// Student is a registered learner that can log in to mark attendance.
type Student struct {
	StudentID    string     `gorm:"column:student_id;primaryKey;size:10" json:"student_id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Age          int        `gorm:"not null" json:"age"`
	ClassName    string     `gorm:"size:8;not null" json:"class_name"`
	PasswordHash string     `gorm:"size:64;not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}
