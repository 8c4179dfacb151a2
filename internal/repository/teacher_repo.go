package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
)

// TeacherRepository provides access to teacher records. Registration commits
// together with its admin log entry or not at all.
type TeacherRepository interface {
	Register(ctx context.Context, teacher *models.Teacher, logDetails string) error
	GetByID(ctx context.Context, teacherID string) (models.Teacher, error)
	FindByCredentials(ctx context.Context, teacherID, name, passwordHash string) (models.Teacher, error)
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository constructs a teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

// Register inserts the teacher and its "Register Teacher" admin log entry in
// one transaction.
func (r *teacherRepository) Register(ctx context.Context, teacher *models.Teacher, logDetails string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(teacher).Error; err != nil {
			return err
		}

		return NewAdminLogRepository(tx).Append(ctx, models.AdminActionRegisterTeacher, logDetails)
	})
}

func (r *teacherRepository) GetByID(ctx context.Context, teacherID string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}

// FindByCredentials performs the exact three-field match used for teacher
// logins.
func (r *teacherRepository) FindByCredentials(ctx context.Context, teacherID, name, passwordHash string) (models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND name = ? AND password_hash = ?", teacherID, name, passwordHash).
		First(&teacher).Error
	if err != nil {
		return models.Teacher{}, err
	}

	return teacher, nil
}
