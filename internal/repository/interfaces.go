package repository

import (
	"context"
	"time"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// EntryRepository defines the interface for journal entry data access.
// The analytics engine never talks to storage directly; it consumes entry
// lists handed to it by callers of this interface.
type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Entry, error)
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}
