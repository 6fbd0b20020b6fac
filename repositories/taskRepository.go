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
	TaskCacheExpiry = 24 * time.Hour

	tasksCacheKey = "tasks_cache"
)

type TaskRepository struct {
	cache *cache.Cache
}

func NewTaskRepository(cache *cache.Cache) *TaskRepository {
	return &TaskRepository{cache: cache}
}

// Create inserts a task with a server-assigned ID. Used for manual and
// auto-generated tasks alike.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	nextID, err := nextSequenceID("TK", "task_id_seq")
	if err != nil {
		return err
	}
	task.ID = nextID

	if err := database.DB.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return r.DeleteAllCache(ctx)
}

// CreateBatch inserts a set of auto-generated tasks in one transaction.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range tasks {
			if err := r.createTx(tx, &tasks[i]); err != nil {
				return err
			}
		}
		return r.DeleteAllCache(ctx)
	})
}

// createTx inserts a task inside a caller-owned transaction, assigning an ID
// if the caller has not already done so.
func (r *TaskRepository) createTx(tx *gorm.DB, task *models.Task) error {
	if task.ID == "" {
		nextID, err := nextSequenceID("TK", "task_id_seq")
		if err != nil {
			return err
		}
		task.ID = nextID
	}
	if err := tx.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getTaskCacheKey(id)
	cachedTask, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedTask != "" {
		var task models.Task
		if err := json.Unmarshal([]byte(cachedTask), &task); err == nil {
			return &task, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get task from cache: %v", err)
	}

	var task models.Task
	err = database.DB.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	taskJSON, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal task: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, taskJSON, TaskCacheExpiry); err != nil {
		log.Printf("Failed to set task in cache: %v", err)
	}

	return &task, nil
}

// GetAll returns every task ordered by due time.
func (r *TaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedTasks, err := r.cache.Get(ctx, tasksCacheKey)
	if err == nil && cachedTasks != "" {
		var tasks []models.Task
		if err := json.Unmarshal([]byte(cachedTasks), &tasks); err == nil {
			return tasks, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get tasks from cache: %v", err)
	}

	var tasks []models.Task
	if err := database.DB.Order("due_time ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all tasks: %w", err)
	}

	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := r.cache.Set(ctx, tasksCacheKey, tasksJSON, TaskCacheExpiry); err != nil {
		log.Printf("Failed to set tasks in cache: %v", err)
	}

	return tasks, nil
}

// Update replaces a task by id.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	lockKey := fmt.Sprintf("task_lock:%s", task.ID)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	err = database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "patient_id", "patient_name", "due_time",
			"priority", "completed",
		}),
	}).Save(task).Error
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getTaskCacheKey(task.ID)); err != nil {
		return fmt.Errorf("failed to delete task cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, tasksCacheKey)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	if err := database.DB.Delete(&models.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getTaskCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete task cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, tasksCacheKey)
}

// DeleteAllCache invalidates the task list cache.
func (r *TaskRepository) DeleteAllCache(ctx context.Context) error {
	return r.cache.DeleteAll(ctx, tasksCacheKey)
}

func (r *TaskRepository) getTaskCacheKey(taskID string) string {
	return fmt.Sprintf("task_cache:%s", taskID)
}
