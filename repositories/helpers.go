package repositories

import (
	"WardShift/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockMaxRetries = 3
	lockRetryDelay = 2 * time.Second
	lockExpiry     = 10 * time.Second
)

// nextSequenceID obtains the next server-assigned identifier from a Postgres
// sequence, formatted as PREFIX-000001.
func nextSequenceID(prefix, sequence string) (string, error) {
	var nextID string
	query := fmt.Sprintf("SELECT '%s-' || LPAD(nextval('%s')::TEXT, 6, '0')", prefix, sequence)
	if err := database.DB.Raw(query).Scan(&nextID).Error; err != nil {
		return "", fmt.Errorf("failed to obtain next value from %s: %w", sequence, err)
	}
	return nextID, nil
}

// acquireLock takes the named distributed lock, retrying on contention.
// It returns the lock value needed to release.
func acquireLock(ctx context.Context, lockKey string) (string, error) {
	lockValue := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = database.NewLock(ctx, lockKey, lockValue, lockExpiry)
		if err == nil && locked {
			return lockValue, nil
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	return "", fmt.Errorf("failed to acquire lock %s after retries", lockKey)
}

// releaseLock releases a lock taken with acquireLock. Release failures are
// logged rather than surfaced; the lock expires on its own.
func releaseLock(ctx context.Context, lockKey, lockValue string) {
	if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
		log.Printf("Failed to release lock %s: %v", lockKey, err)
	}
}
