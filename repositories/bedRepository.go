package repositories

import (
	"WardShift/cache"
	"WardShift/database"
	"WardShift/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	BedCacheExpiry = 1 * time.Hour

	bedStatusCacheKey = "bed_status_cache"
)

type BedRepository struct {
	cache *cache.Cache
}

func NewBedRepository(cache *cache.Cache) *BedRepository {
	return &BedRepository{cache: cache}
}

// Upsert replaces the department's bed status wholesale.
func (r *BedRepository) Upsert(ctx context.Context, status *models.BedStatus) error {
	lockKey := fmt.Sprintf("bed_lock:%s", status.Department)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "department"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_beds", "occupied_beds", "free_beds"}),
	}).Create(status).Error
	if err != nil {
		return fmt.Errorf("failed to upsert bed status: %w", err)
	}
	return r.cache.DeleteAll(ctx, bedStatusCacheKey)
}

// GetByDepartment returns the stored status, or nil when the department has
// never been configured.
func (r *BedRepository) GetByDepartment(ctx context.Context, department string) (*models.BedStatus, error) {
	var status models.BedStatus
	err := database.DB.First(&status, "department = ?", department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bed status: %w", err)
	}
	return &status, nil
}

// GetAll returns every stored bed status.
func (r *BedRepository) GetAll(ctx context.Context) ([]models.BedStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedStatuses, err := r.cache.Get(ctx, bedStatusCacheKey)
	if err == nil && cachedStatuses != "" {
		var statuses []models.BedStatus
		if err := json.Unmarshal([]byte(cachedStatuses), &statuses); err == nil {
			return statuses, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get bed statuses from cache: %v", err)
	}

	var statuses []models.BedStatus
	if err := database.DB.Find(&statuses).Error; err != nil {
		return nil, fmt.Errorf("failed to get bed statuses: %w", err)
	}

	statusesJSON, err := json.Marshal(statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bed statuses: %w", err)
	}
	if err := r.cache.Set(ctx, bedStatusCacheKey, statusesJSON, BedCacheExpiry); err != nil {
		log.Printf("Failed to set bed statuses in cache: %v", err)
	}

	return statuses, nil
}
