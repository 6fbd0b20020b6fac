package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"WardShift/utils"
	"context"
	"fmt"
	"log"
	"time"
)

type TaskService struct {
	tasks *repositories.TaskRepository
	logs  *repositories.ActivityLogRepository
}

func NewTaskService(tasks *repositories.TaskRepository, logs *repositories.ActivityLogRepository) *TaskService {
	return &TaskService{tasks: tasks, logs: logs}
}

func (s *TaskService) Create(ctx context.Context, task *models.Task, actor string) error {
	if err := utils.ValidateTask(task); err != nil {
		return err
	}
	task.AddedBy = actor
	task.AutoGenerated = false

	if err := s.tasks.Create(ctx, task); err != nil {
		return err
	}

	s.logActivity(ctx, models.EventTaskAdded,
		fmt.Sprintf("Added task: %s", task.Title), actor, task.ID)
	return nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.tasks.GetAll(ctx)
}

// Update writes the task and logs either a completion or a plain update
// depending on whether the completed flag flipped on.
func (s *TaskService) Update(ctx context.Context, task *models.Task, actor string) error {
	if err := utils.ValidateTask(task); err != nil {
		return err
	}

	existing, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}

	if task.Completed && (existing == nil || !existing.Completed) {
		s.logActivity(ctx, models.EventTaskCompleted,
			fmt.Sprintf("Completed task: %s", task.Title), actor, task.ID)
	} else {
		s.logActivity(ctx, models.EventTaskUpdated,
			fmt.Sprintf("Updated task: %s", task.Title), actor, task.ID)
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id, actor string) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	description := fmt.Sprintf("Deleted task %s", id)
	if task != nil {
		description = fmt.Sprintf("Deleted task: %s", task.Title)
	}
	s.logActivity(ctx, models.EventTaskDeleted, description, actor, id)
	return nil
}

func (s *TaskService) logActivity(ctx context.Context, eventType, description, actor, relatedID string) {
	entry := &models.ActivityLog{
		Type:        eventType,
		Description: description,
		User:        actor,
		Timestamp:   time.Now(),
		RelatedID:   relatedID,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.Printf("Failed to record activity log entry: %v", err)
	}
}
