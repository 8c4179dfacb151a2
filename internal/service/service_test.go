package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
	"github.com/kjschool/attendance/internal/repository"
	"github.com/kjschool/attendance/internal/security"
	"github.com/kjschool/attendance/internal/validation"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Teacher{},
		&models.AttendanceRecord{},
		&models.AdminLog{},
	))
	return db
}

type testEnv struct {
	db         *gorm.DB
	auth       AuthService
	admin      AdminService
	attendance AttendanceService
}

func setupServices(t *testing.T) testEnv {
	t.Helper()
	db := setupTestDB(t)
	validate := validation.New(validation.DefaultMinAge, validation.DefaultMaxAge)

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	return testEnv{
		db:         db,
		auth:       NewAuthService(studentRepo, teacherRepo, attendanceRepo, validate, security.HashPassword("admin123"), zerolog.Nop()),
		admin:      NewAdminService(studentRepo, teacherRepo, validate, zerolog.Nop()),
		attendance: NewAttendanceService(attendanceRepo, zerolog.Nop()),
	}
}

func seedStudent(t *testing.T, db *gorm.DB, password string) models.Student {
	t.Helper()
	student := models.Student{
		StudentID:    "KJ20240001",
		Name:         "Ada Lovelace",
		Age:          13,
		ClassName:    "8B",
		PasswordHash: security.HashPassword(password),
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func attendanceCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.AttendanceRecord{}).Count(&count).Error)
	return count
}

func adminLogEntries(t *testing.T, db *gorm.DB) []models.AdminLog {
	t.Helper()
	var entries []models.AdminLog
	require.NoError(t, db.Order("id ASC").Find(&entries).Error)
	return entries
}

var testCtx = context.Background()
