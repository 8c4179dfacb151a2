package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/dto"
	"github.com/kjschool/attendance/internal/repository"
	"github.com/kjschool/attendance/internal/security"
)

// AuthService verifies credentials for the three login types. A successful
// student login records attendance as a side effect.
type AuthService interface {
	StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (dto.StudentResponse, error)
	TeacherLogin(ctx context.Context, req dto.TeacherLoginRequest) (dto.TeacherResponse, error)
	AdminLogin(password string) error
}

type authService struct {
	students   repository.StudentRepository
	teachers   repository.TeacherRepository
	attendance repository.AttendanceRepository
	validator  *validator.Validate
	adminHash  string
	logger     zerolog.Logger
}

// NewAuthService constructs the authentication service. adminHash is the
// configured administrator password digest.
func NewAuthService(
	students repository.StudentRepository,
	teachers repository.TeacherRepository,
	attendance repository.AttendanceRepository,
	validate *validator.Validate,
	adminHash string,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		students:   students,
		teachers:   teachers,
		attendance: attendance,
		validator:  validate,
		adminHash:  adminHash,
		logger:     logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) StudentLogin(ctx context.Context, req dto.StudentLoginRequest) (dto.StudentResponse, error) {
	req = trimStudentLogin(req)
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn().Str("student_id", req.StudentID).Msg("student login rejected by validation")
		return dto.StudentResponse{}, err
	}

	// Validation guarantees the age field parses.
	age, _ := strconv.Atoi(req.Age)

	student, err := s.students.FindByCredentials(ctx, req.StudentID, req.Name, age, req.ClassName, security.HashPassword(req.Password))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("student_id", req.StudentID).Msg("failed student login attempt")
			return dto.StudentResponse{}, ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("student_id", req.StudentID).Msg("student login lookup failed")
		return dto.StudentResponse{}, err
	}

	now := time.Now()
	if err := s.attendance.RecordLogin(ctx, student, now); err != nil {
		s.logger.Error().Err(err).Str("student_id", student.StudentID).Msg("failed to record attendance")
		return dto.StudentResponse{}, err
	}

	student.LastLogin = &now
	s.logger.Info().Str("student_id", student.StudentID).Str("name", student.Name).Msg("successful student login")

	return dto.NewStudentResponse(student), nil
}

func (s *authService) TeacherLogin(ctx context.Context, req dto.TeacherLoginRequest) (dto.TeacherResponse, error) {
	req = trimTeacherLogin(req)
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn().Str("teacher_id", req.TeacherID).Msg("teacher login rejected by validation")
		return dto.TeacherResponse{}, err
	}

	teacher, err := s.teachers.FindByCredentials(ctx, req.TeacherID, req.Name, security.HashPassword(req.Password))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().Str("teacher_id", req.TeacherID).Msg("failed teacher login attempt")
			return dto.TeacherResponse{}, ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("teacher_id", req.TeacherID).Msg("teacher login lookup failed")
		return dto.TeacherResponse{}, err
	}

	s.logger.Info().Str("teacher_id", teacher.TeacherID).Str("name", teacher.Name).Msg("successful teacher login")

	return dto.NewTeacherResponse(teacher), nil
}

// AdminLogin compares the digest of password against the configured admin
// password hash.
func (s *authService) AdminLogin(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		s.logger.Warn().Msg("admin login attempt with missing password")
		return ErrInvalidCredentials
	}

	digest := security.HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(s.adminHash)) != 1 {
		s.logger.Warn().Msg("failed admin login attempt")
		return ErrInvalidCredentials
	}

	s.logger.Info().Msg("successful admin login")
	return nil
}

func trimStudentLogin(req dto.StudentLoginRequest) dto.StudentLoginRequest {
	req.StudentID = strings.TrimSpace(req.StudentID)
	req.Name = strings.TrimSpace(req.Name)
	req.Age = strings.TrimSpace(req.Age)
	req.ClassName = strings.TrimSpace(req.ClassName)
	req.Password = strings.TrimSpace(req.Password)
	return req
}

func trimTeacherLogin(req dto.TeacherLoginRequest) dto.TeacherLoginRequest {
	req.TeacherID = strings.TrimSpace(req.TeacherID)
	req.Name = strings.TrimSpace(req.Name)
	req.Password = strings.TrimSpace(req.Password)
	return req
}
