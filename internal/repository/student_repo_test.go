package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
	"github.com/kjschool/attendance/internal/security"
)

func TestStudentRepositoryFindByCredentials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	hash := security.HashPassword("pass123")
	require.NoError(t, db.Create(&models.Student{
		StudentID:    "KJ20240001",
		Name:         "Ada Lovelace",
		Age:          13,
		ClassName:    "8B",
		PasswordHash: hash,
	}).Error)

	student, err := repo.FindByCredentials(ctx, "KJ20240001", "Ada Lovelace", 13, "8B", hash)
	require.NoError(t, err)
	require.Equal(t, "KJ20240001", student.StudentID)

	mismatches := []struct {
		name string
		call func() (models.Student, error)
	}{
		{"wrong id", func() (models.Student, error) {
			return repo.FindByCredentials(ctx, "KJ20240002", "Ada Lovelace", 13, "8B", hash)
		}},
		{"wrong name", func() (models.Student, error) {
			return repo.FindByCredentials(ctx, "KJ20240001", "Ada Byron", 13, "8B", hash)
		}},
		{"wrong age", func() (models.Student, error) {
			return repo.FindByCredentials(ctx, "KJ20240001", "Ada Lovelace", 14, "8B", hash)
		}},
		{"wrong class", func() (models.Student, error) {
			return repo.FindByCredentials(ctx, "KJ20240001", "Ada Lovelace", 13, "8A", hash)
		}},
		{"wrong password", func() (models.Student, error) {
			return repo.FindByCredentials(ctx, "KJ20240001", "Ada Lovelace", 13, "8B", security.HashPassword("other"))
		}},
	}

	for _, tc := range mismatches {
		_, err := tc.call()
		require.True(t, errors.Is(err, gorm.ErrRecordNotFound), tc.name)
	}
}

func TestStudentRepositoryRegisterWritesLogInSameTransaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	student := models.Student{StudentID: "KJ20240001", Name: "Ada Lovelace", Age: 13, ClassName: "8B", PasswordHash: "x"}
	require.NoError(t, repo.Register(ctx, &student, "Registered student KJ20240001"))

	var entries []models.AdminLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, models.AdminActionRegisterStudent, entries[0].Action)
	require.Equal(t, "Registered student KJ20240001", entries[0].Details)

	// With the log append failing, the whole registration must roll back.
	require.NoError(t, db.Migrator().DropTable(&models.AdminLog{}))

	second := models.Student{StudentID: "KJ20240002", Name: "Mary Shelley", Age: 14, ClassName: "9A", PasswordHash: "x"}
	require.Error(t, repo.Register(ctx, &second, "Registered student KJ20240002"))

	_, err := repo.GetByID(ctx, "KJ20240002")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound), "student row must not survive a failed log append")
}

func TestStudentRepositoryListOrdersByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Student{StudentID: "KJ20240002", Name: "Zoe West", Age: 12, ClassName: "7A", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.Student{StudentID: "KJ20240001", Name: "Amy North", Age: 12, ClassName: "7A", PasswordHash: "x"}).Error)

	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "Amy North", students[0].Name)
	require.Equal(t, "Zoe West", students[1].Name)
}

func TestStudentRepositoryDeleteCascadesAttendance(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Student{StudentID: "KJ20240001", Name: "Ada Lovelace", Age: 13, ClassName: "8B", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.Student{StudentID: "KJ20240002", Name: "Mary Shelley", Age: 14, ClassName: "9A", PasswordHash: "x"}).Error)

	now := time.Now()
	for _, studentID := range []string{"KJ20240001", "KJ20240001", "KJ20240002"} {
		require.NoError(t, db.Create(&models.AttendanceRecord{
			StudentID: studentID,
			Name:      "n",
			ClassName: "c",
			LoginTime: now,
			Status:    models.AttendanceStatusPresent,
		}).Error)
	}

	require.NoError(t, repo.Delete(ctx, "KJ20240001", "Deleted student KJ20240001"))

	_, err := repo.GetByID(ctx, "KJ20240001")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var count int64
	require.NoError(t, db.Model(&models.AttendanceRecord{}).Where("student_id = ?", "KJ20240001").Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, db.Model(&models.AttendanceRecord{}).Where("student_id = ?", "KJ20240002").Count(&count).Error)
	require.Equal(t, int64(1), count, "other students' attendance must survive")

	var entries []models.AdminLog
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, models.AdminActionDeleteStudent, entries[0].Action)

	err = repo.Delete(ctx, "KJ20240001", "Deleted student KJ20240001")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1, "a failed delete must not log")
}

func TestStudentRepositoryDeleteRollsBackWhenLogInsertFails(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStudentRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Student{StudentID: "KJ20240001", Name: "Ada Lovelace", Age: 13, ClassName: "8B", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&models.AttendanceRecord{
		StudentID: "KJ20240001",
		Name:      "Ada Lovelace",
		ClassName: "8B",
		LoginTime: time.Now(),
		Status:    models.AttendanceStatusPresent,
	}).Error)

	require.NoError(t, db.Migrator().DropTable(&models.AdminLog{}))

	require.Error(t, repo.Delete(ctx, "KJ20240001", "Deleted student KJ20240001"))

	_, err := repo.GetByID(ctx, "KJ20240001")
	require.NoError(t, err, "student row must survive a failed log append")

	var count int64
	require.NoError(t, db.Model(&models.AttendanceRecord{}).Where("student_id = ?", "KJ20240001").Count(&count).Error)
	require.Equal(t, int64(1), count, "attendance rows must survive a failed log append")
}
