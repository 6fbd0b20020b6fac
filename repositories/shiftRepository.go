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
)

const (
	ShiftCacheExpiry = 24 * time.Hour

	activeShiftCacheKey = "active_shift_cache"
	activeShiftLockKey  = "shift_lock:active"
)

// ErrShiftAlreadyActive is returned when a shift is started while another
// one is still active.
var ErrShiftAlreadyActive = errors.New("a shift is already active")

// ShiftRepository persists the shift session lifecycle.
type ShiftRepository interface {
	GetActive(ctx context.Context) (*models.ShiftSession, error)
	Create(ctx context.Context, shift *models.ShiftSession) error
	Save(ctx context.Context, shift *models.ShiftSession) error
	Deactivate(ctx context.Context, id string) error
}

type shiftRepository struct {
	cache *cache.Cache
}

func NewShiftRepository(cache *cache.Cache) ShiftRepository {
	return &shiftRepository{cache: cache}
}

// GetActive returns the currently active shift, or nil when none is open.
func (r *shiftRepository) GetActive(ctx context.Context) (*models.ShiftSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedShift, err := r.cache.Get(ctx, activeShiftCacheKey)
	if err == nil && cachedShift != "" {
		var shift models.ShiftSession
		if err := json.Unmarshal([]byte(cachedShift), &shift); err == nil {
			return &shift, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get active shift from cache: %v", err)
	}

	var shift models.ShiftSession
	err = database.DB.Where("is_active = ?", true).First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active shift: %w", err)
	}

	shiftJSON, err := json.Marshal(shift)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shift: %w", err)
	}
	if err := r.cache.Set(ctx, activeShiftCacheKey, shiftJSON, ShiftCacheExpiry); err != nil {
		log.Printf("Failed to set active shift in cache: %v", err)
	}

	return &shift, nil
}

// Create opens a new shift. At most one shift may be active at a time; the
// check and insert run under a distributed lock so concurrent starts cannot
// both succeed.
func (r *shiftRepository) Create(ctx context.Context, shift *models.ShiftSession) error {
	lockValue, err := acquireLock(ctx, activeShiftLockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, activeShiftLockKey, lockValue)

	var count int64
	if err := database.DB.Model(&models.ShiftSession{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for active shift: %w", err)
	}
	if count > 0 {
		return ErrShiftAlreadyActive
	}

	nextID, err := nextSequenceID("SH", "shift_id_seq")
	if err != nil {
		return err
	}
	shift.ID = nextID

	if err := database.DB.Create(shift).Error; err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}
	return r.cache.Delete(ctx, activeShiftCacheKey)
}

// Save persists membership and note changes to an existing shift.
func (r *shiftRepository) Save(ctx context.Context, shift *models.ShiftSession) error {
	if err := database.DB.Save(shift).Error; err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return r.cache.Delete(ctx, activeShiftCacheKey)
}

// Deactivate ends a shift. The row is kept but leaves the active state; no
// end-time transition is recorded.
func (r *shiftRepository) Deactivate(ctx context.Context, id string) error {
	err := database.DB.Model(&models.ShiftSession{}).
		Where("id = ?", id).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate shift: %w", err)
	}
	return r.cache.Delete(ctx, activeShiftCacheKey)
}
