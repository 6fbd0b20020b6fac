package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
)

var ErrUnknownDepartment = errors.New("unknown department")

type BedService struct {
	beds *repositories.BedRepository
	logs *repositories.ActivityLogRepository
}

func NewBedService(beds *repositories.BedRepository, logs *repositories.ActivityLogRepository) *BedService {
	return &BedService{beds: beds, logs: logs}
}

// BuildBedStatus normalizes a raw free-bed entry against the department's
// capacity. The coronary unit is tracked as a single aggregate, so its free
// count is folded into the male slot and the female slot is forced to zero.
// Negative inputs clamp to zero and occupancy never exceeds capacity.
func BuildBedStatus(department string, free models.FreeBedSplit) (models.BedStatus, error) {
	totalBeds, ok := models.DepartmentBedCounts[department]
	if !ok {
		return models.BedStatus{}, ErrUnknownDepartment
	}

	if models.IsCoronaryUnit(department) {
		free = models.FreeBedSplit{Male: max(0, free.Male+free.Female), Female: 0}
	} else {
		free = models.FreeBedSplit{Male: max(0, free.Male), Female: max(0, free.Female)}
	}

	return models.BedStatus{
		Department:   department,
		TotalBeds:    totalBeds,
		OccupiedBeds: max(0, totalBeds-free.Total()),
		FreeBeds:     datatypes.NewJSONType(free),
	}, nil
}

// DefaultBedStatus is the status reported for a department that has never
// been updated: every bed occupied.
func DefaultBedStatus(department string) models.BedStatus {
	return models.BedStatus{
		Department:   department,
		TotalBeds:    models.DepartmentBedCounts[department],
		OccupiedBeds: models.DepartmentBedCounts[department],
		FreeBeds:     datatypes.NewJSONType(models.FreeBedSplit{}),
	}
}

// Update replaces the stored occupancy for one department.
func (s *BedService) Update(ctx context.Context, department string, free models.FreeBedSplit, actor string) (*models.BedStatus, error) {
	status, err := BuildBedStatus(department, free)
	if err != nil {
		return nil, err
	}

	if err := s.beds.Upsert(ctx, &status); err != nil {
		return nil, err
	}

	split := status.FreeBeds.Data()
	var description string
	if models.IsCoronaryUnit(department) {
		description = fmt.Sprintf("Updated bed status for %s: %d free beds (no gender tracking)",
			department, split.Male)
	} else {
		description = fmt.Sprintf("Updated bed status for %s: %d male, %d female free beds",
			department, split.Male, split.Female)
	}
	s.logActivity(ctx, description, actor, department)

	return &status, nil
}

// Statuses returns one entry per department in display order, filling in the
// all-occupied default for departments that have never been updated.
func (s *BedService) Statuses(ctx context.Context) ([]models.BedStatus, error) {
	stored, err := s.beds.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byDepartment := make(map[string]models.BedStatus, len(stored))
	for _, status := range stored {
		byDepartment[status.Department] = status
	}

	statuses := make([]models.BedStatus, 0, len(models.Departments))
	for _, department := range models.Departments {
		if status, ok := byDepartment[department]; ok {
			statuses = append(statuses, status)
		} else {
			statuses = append(statuses, DefaultBedStatus(department))
		}
	}
	return statuses, nil
}

func (s *BedService) logActivity(ctx context.Context, description, actor, relatedID string) {
	entry := &models.ActivityLog{
		Type:        models.EventBedUpdated,
		Description: description,
		User:        actor,
		Timestamp:   time.Now(),
		RelatedID:   relatedID,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.Printf("Failed to record activity log entry: %v", err)
	}
}
