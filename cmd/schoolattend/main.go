package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kjschool/attendance/internal/cli"
	"github.com/kjschool/attendance/internal/config"
	"github.com/kjschool/attendance/internal/database"
	"github.com/kjschool/attendance/internal/repository"
	"github.com/kjschool/attendance/internal/service"
	"github.com/kjschool/attendance/internal/validation"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns the process lifecycle so every deferred close executes before a
// fatal exit.
func run() error {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load(bootLogger)

	logFile, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := zerolog.New(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stderr},
		logFile,
	)).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open database")
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := database.Close(db); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close database")
		} else {
			logger.Info().Msg("database connection closed")
		}
	}()

	if err := database.Migrate(db); err != nil {
		logger.Error().Err(err).Msg("database setup failed")
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Info().Msg("database tables initialized")

	validate := validation.New(cfg.MinAge, cfg.MaxAge)

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	authService := service.NewAuthService(studentRepo, teacherRepo, attendanceRepo, validate, cfg.AdminPasswordHash, logger)
	adminService := service.NewAdminService(studentRepo, teacherRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, logger)

	app := cli.New(cfg, authService, adminService, attendanceService, logger, os.Stdin, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("session ended with error")
	}
	logger.Info().Msg("application terminated")

	return nil
}
