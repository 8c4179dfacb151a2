package models

import "time"

// Teacher is a staff member that can review attendance records.
type Teacher struct {
	TeacherID    string    `gorm:"column:teacher_id;primaryKey;size:10" json:"teacher_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	PasswordHash string    `gorm:"size:64;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
