package repositories

import (
	"WardShift/cache"
	"WardShift/database"
	"WardShift/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	ActivityLogCacheExpiry = 1 * time.Hour

	activityLogsCacheKey = "activity_logs_cache"
)

// ActivityLogWriter appends audit entries. Satisfied by ActivityLogRepository.
type ActivityLogWriter interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
}

type ActivityLogRepository struct {
	cache *cache.Cache
}

func NewActivityLogRepository(cache *cache.Cache) *ActivityLogRepository {
	return &ActivityLogRepository{cache: cache}
}

// Create appends one audit entry with a server-assigned ID.
func (r *ActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	nextID, err := nextSequenceID("LG", "activity_log_id_seq")
	if err != nil {
		return err
	}
	entry.ID = nextID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if err := database.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return r.DeleteAllCache(ctx)
}

// createTx appends an entry inside a caller-owned transaction.
func (r *ActivityLogRepository) createTx(tx *gorm.DB, entry *models.ActivityLog) error {
	if entry.ID == "" {
		nextID, err := nextSequenceID("LG", "activity_log_id_seq")
		if err != nil {
			return err
		}
		entry.ID = nextID
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}
	return nil
}

// GetAll returns the audit trail, most recent first.
func (r *ActivityLogRepository) GetAll(ctx context.Context) ([]models.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedLogs, err := r.cache.Get(ctx, activityLogsCacheKey)
	if err == nil && cachedLogs != "" {
		var entries []models.ActivityLog
		if err := json.Unmarshal([]byte(cachedLogs), &entries); err == nil {
			return entries, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get activity logs from cache: %v", err)
	}

	var entries []models.ActivityLog
	if err := database.DB.Order("timestamp DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal activity logs: %w", err)
	}
	if err := r.cache.Set(ctx, activityLogsCacheKey, entriesJSON, ActivityLogCacheExpiry); err != nil {
		log.Printf("Failed to set activity logs in cache: %v", err)
	}

	return entries, nil
}

// DeleteAllCache invalidates the audit trail cache.
func (r *ActivityLogRepository) DeleteAllCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, activityLogsCacheKey)
}
