package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noahsafar/sentiscore-sub000/internal/models"
)

// MemoryEntryRepository is an in-memory EntryRepository. It is the default
// backend for development and tests; production deployments use the
// Supabase-backed repository instead.
type MemoryEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]models.Entry
}

// NewMemoryEntryRepository returns an empty in-memory repository.
func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{entries: make(map[string]models.Entry)}
}

func (r *MemoryEntryRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.entries[stored.ID] = stored
	return &stored, nil
}

func (r *MemoryEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.entries[id]; ok {
		return &entry, nil
	}
	return nil, nil
}

func (r *MemoryEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.userEntriesLocked(userID)

	// newest first for listing
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	if offset > 0 {
		if offset >= len(result) {
			return []models.Entry{}, nil
		}
		result = result[offset:]
	}
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (r *MemoryEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Entry
	for _, entry := range r.userEntriesLocked(userID) {
		if entry.Date.Before(startDate) || entry.Date.After(endDate) {
			continue
		}
		result = append(result, entry)
	}

	// oldest first for trend analysis
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (r *MemoryEntryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

func (r *MemoryEntryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.userEntriesLocked(userID))), nil
}

func (r *MemoryEntryRepository) userEntriesLocked(userID string) []models.Entry {
	var result []models.Entry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result
}
