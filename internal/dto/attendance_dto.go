package dto

import (
	"time"

	"github.com/kjschool/attendance/internal/models"
)

// AttendanceResponse serializes one attendance record for tabular display.
type AttendanceResponse struct {
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	ClassName string    `json:"class_name"`
	LoginTime time.Time `json:"login_time"`
	Status    string    `json:"status"`
}

// NewAttendanceResponse converts an attendance record into a DTO.
func NewAttendanceResponse(record models.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		StudentID: record.StudentID,
		Name:      record.Name,
		ClassName: record.ClassName,
		LoginTime: record.LoginTime,
		Status:    record.Status,
	}
}
