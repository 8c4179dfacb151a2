package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/kjschool/attendance/internal/dto"
	"github.com/kjschool/attendance/internal/repository"
)

// AttendanceService exposes read access to recorded attendance.
type AttendanceService interface {
	ForDate(ctx context.Context, day time.Time) ([]dto.AttendanceResponse, error)
	Today(ctx context.Context) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	attendance repository.AttendanceRepository
	logger     zerolog.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(attendance repository.AttendanceRepository, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		attendance: attendance,
		logger:     logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) ForDate(ctx context.Context, day time.Time) ([]dto.AttendanceResponse, error) {
	records, err := s.attendance.ForDate(ctx, day)
	if err != nil {
		s.logger.Error().Err(err).Str("date", day.Format("2006-01-02")).Msg("attendance query failed")
		return nil, err
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.NewAttendanceResponse(record))
	}

	s.logger.Info().Str("date", day.Format("2006-01-02")).Int("records", len(responses)).Msg("attendance viewed")

	return responses, nil
}

func (s *attendanceService) Today(ctx context.Context) ([]dto.AttendanceResponse, error) {
	return s.ForDate(ctx, time.Now())
}
