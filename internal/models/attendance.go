package models

import "time"

// AttendanceStatusPresent is the status written for every recorded login.
const AttendanceStatusPresent = "Present"

// AttendanceRecord is a timestamped proof-of-presence event tied to one
// student login. Name and class are denormalized copies taken at login time.
type AttendanceRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID string    `gorm:"column:student_id;size:10;not null;index" json:"student_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ClassName string    `gorm:"size:8;not null" json:"class_name"`
	LoginTime time.Time `gorm:"not null" json:"login_time"`
	Status    string    `gorm:"size:16;not null" json:"status"`
}
