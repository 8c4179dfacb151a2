package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/dto"
	"github.com/kjschool/attendance/internal/models"
	"github.com/kjschool/attendance/internal/repository"
	"github.com/kjschool/attendance/internal/security"
)

// AdminService covers the administrator's registration and student
// management use cases. Every mutation commits atomically with one admin
// log entry.
type AdminService interface {
	RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (dto.StudentResponse, error)
	RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) (dto.TeacherResponse, error)
	DeleteStudent(ctx context.Context, studentID string) error
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
}

type adminService struct {
	students  repository.StudentRepository
	teachers  repository.TeacherRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAdminService constructs the admin service.
func NewAdminService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		students:  students,
		teachers:  teachers,
		validator: validate,
		logger:    logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (dto.StudentResponse, error) {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.Name = strings.TrimSpace(req.Name)
	req.Age = strings.TrimSpace(req.Age)
	req.ClassName = strings.TrimSpace(req.ClassName)
	req.Password = strings.TrimSpace(req.Password)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn().Str("student_id", req.StudentID).Msg("student registration rejected by validation")
		return dto.StudentResponse{}, err
	}

	if _, err := s.students.GetByID(ctx, req.StudentID); err == nil {
		s.logger.Warn().Str("student_id", req.StudentID).Msg("failed registration: student ID exists")
		return dto.StudentResponse{}, ErrDuplicateID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.StudentResponse{}, err
	}

	age, _ := strconv.Atoi(req.Age)
	student := models.Student{
		StudentID:    req.StudentID,
		Name:         req.Name,
		Age:          age,
		ClassName:    req.ClassName,
		PasswordHash: security.HashPassword(req.Password),
	}

	if err := s.students.Register(ctx, &student, fmt.Sprintf("Registered student %s", student.StudentID)); err != nil {
		s.logger.Error().Err(err).Str("student_id", req.StudentID).Msg("student registration failed")
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Str("student_id", student.StudentID).Msg("student registered")

	return dto.NewStudentResponse(student), nil
}

func (s *adminService) RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) (dto.TeacherResponse, error) {
	req.TeacherID = strings.TrimSpace(req.TeacherID)
	req.Name = strings.TrimSpace(req.Name)
	req.Password = strings.TrimSpace(req.Password)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn().Str("teacher_id", req.TeacherID).Msg("teacher registration rejected by validation")
		return dto.TeacherResponse{}, err
	}

	if _, err := s.teachers.GetByID(ctx, req.TeacherID); err == nil {
		s.logger.Warn().Str("teacher_id", req.TeacherID).Msg("failed registration: teacher ID exists")
		return dto.TeacherResponse{}, ErrDuplicateID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TeacherResponse{}, err
	}

	teacher := models.Teacher{
		TeacherID:    req.TeacherID,
		Name:         req.Name,
		PasswordHash: security.HashPassword(req.Password),
	}

	if err := s.teachers.Register(ctx, &teacher, fmt.Sprintf("Registered teacher %s", teacher.TeacherID)); err != nil {
		s.logger.Error().Err(err).Str("teacher_id", req.TeacherID).Msg("teacher registration failed")
		return dto.TeacherResponse{}, err
	}

	s.logger.Info().Str("teacher_id", teacher.TeacherID).Msg("teacher registered")

	return dto.NewTeacherResponse(teacher), nil
}

// DeleteStudent removes the student, its attendance rows and writes one
// admin log entry, all in the same transaction.
func (s *adminService) DeleteStudent(ctx context.Context, studentID string) error {
	studentID = strings.TrimSpace(studentID)

	if err := s.students.Delete(ctx, studentID, fmt.Sprintf("Deleted student %s", studentID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error().Err(err).Str("student_id", studentID).Msg("student deletion failed")
		return err
	}

	s.logger.Info().Str("student_id", studentID).Msg("student deleted")

	return nil
}

func (s *adminService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("student listing failed")
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}

	return responses, nil
}
