package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
)

// StudentRepository provides access to student records. Admin mutations
// commit together with their admin log entry or not at all.
type StudentRepository interface {
	Register(ctx context.Context, student *models.Student, logDetails string) error
	GetByID(ctx context.Context, studentID string) (models.Student, error)
	FindByCredentials(ctx context.Context, studentID, name string, age int, className, passwordHash string) (models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Delete(ctx context.Context, studentID, logDetails string) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Register inserts the student and its "Register Student" admin log entry in
// one transaction.
func (r *studentRepository) Register(ctx context.Context, student *models.Student, logDetails string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			return err
		}

		return NewAdminLogRepository(tx).Append(ctx, models.AdminActionRegisterStudent, logDetails)
	})
}

func (r *studentRepository) GetByID(ctx context.Context, studentID string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

// FindByCredentials performs the exact five-field match used for student
// logins. Any mismatch surfaces as gorm.ErrRecordNotFound so the caller
// cannot tell which field was wrong.
func (r *studentRepository) FindByCredentials(ctx context.Context, studentID, name string, age int, className, passwordHash string) (models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND name = ? AND age = ? AND class_name = ? AND password_hash = ?",
			studentID, name, age, className, passwordHash).
		First(&student).Error
	if err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

// Delete removes the student, every attendance row referencing it and writes
// the "Delete Student" admin log entry in one transaction.
func (r *studentRepository) Delete(ctx context.Context, studentID, logDetails string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Student{}, "student_id = ?", studentID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Delete(&models.AttendanceRecord{}, "student_id = ?", studentID).Error; err != nil {
			return err
		}

		return NewAdminLogRepository(tx).Append(ctx, models.AdminActionDeleteStudent, logDetails)
	})
}
