package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kjschool/attendance/internal/models"
)

// AdminLogRepository persists the append-only trail of administrative
// mutations. The trail is write-only from the application's point of view.
type AdminLogRepository interface {
	Append(ctx context.Context, action, details string) error
}

type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository constructs an admin log repository.
func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Append(ctx context.Context, action, details string) error {
	entry := models.AdminLog{Action: action, Details: details}
	return r.db.WithContext(ctx).Create(&entry).Error
}
