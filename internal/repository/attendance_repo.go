package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
)

// AttendanceRepository records and queries proof-of-presence events.
type AttendanceRepository interface {
	RecordLogin(ctx context.Context, student models.Student, loginTime time.Time) error
	ForDate(ctx context.Context, day time.Time) ([]models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// RecordLogin inserts one "Present" attendance row and stamps the student's
// last_login in a single transaction. Every successful login produces a new
// row; repeat logins on the same day are not merged.
func (r *attendanceRepository) RecordLogin(ctx context.Context, student models.Student, loginTime time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.Student{}).
			Where("student_id = ?", student.StudentID).
			Update("last_login", loginTime)
		if update.Error != nil {
			return update.Error
		}

		record := models.AttendanceRecord{
			StudentID: student.StudentID,
			Name:      student.Name,
			ClassName: student.ClassName,
			LoginTime: loginTime,
			Status:    models.AttendanceStatusPresent,
		}

		return tx.Create(&record).Error
	})
}

// ForDate returns every record whose login_time falls on the calendar date of
// day, most recent first.
func (r *attendanceRepository) ForDate(ctx context.Context, day time.Time) ([]models.AttendanceRecord, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var records []models.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("login_time >= ? AND login_time < ?", start, end).
		Order("login_time DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
