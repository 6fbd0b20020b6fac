package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

type ShiftService struct {
	shifts repositories.ShiftRepository
	logs   repositories.ActivityLogWriter
}

func NewShiftService(shifts repositories.ShiftRepository, logs repositories.ActivityLogWriter) *ShiftService {
	return &ShiftService{shifts: shifts, logs: logs}
}

// Start opens a new shift session with the actor as its first team member.
// When a session is already active the call is a no-op: the active session
// is returned unchanged with created false.
func (s *ShiftService) Start(ctx context.Context, actor, notes string) (*models.ShiftSession, bool, error) {
	active, err := s.shifts.GetActive(ctx)
	if err != nil {
		return nil, false, err
	}
	if active != nil {
		return active, false, nil
	}

	shift := &models.ShiftSession{
		UserName:    actor,
		StartTime:   time.Now(),
		IsActive:    true,
		TeamMembers: []string{actor},
		Notes:       notes,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		if errors.Is(err, repositories.ErrShiftAlreadyActive) {
			active, err := s.shifts.GetActive(ctx)
			return active, false, err
		}
		return nil, false, err
	}

	s.logActivity(ctx, models.EventShiftStarted, "Started shift", actor, shift.ID)
	return shift, true, nil
}

// Current returns the active shift session, or nil when no shift is open.
func (s *ShiftService) Current(ctx context.Context) (*models.ShiftSession, error) {
	return s.shifts.GetActive(ctx)
}

// End closes the shift identified by shiftID. The call is a no-op unless
// that shift is the currently active one.
func (s *ShiftService) End(ctx context.Context, shiftID, actor string) error {
	active, err := s.shifts.GetActive(ctx)
	if err != nil {
		return err
	}
	if active == nil || active.ID != shiftID {
		return nil
	}

	if err := s.shifts.Deactivate(ctx, shiftID); err != nil {
		return err
	}

	s.logActivity(ctx, models.EventShiftEnded, "Ended shift", actor, shiftID)
	return nil
}

// Join adds the actor to the active shift's team. Membership behaves as a
// set, so joining twice does not duplicate the entry or log a second event.
func (s *ShiftService) Join(ctx context.Context, shiftID, actor string) (*models.ShiftSession, error) {
	active, err := s.shifts.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil || active.ID != shiftID {
		return active, nil
	}
	if active.HasMember(actor) {
		return active, nil
	}

	active.AddMember(actor)
	if err := s.shifts.Save(ctx, active); err != nil {
		return nil, err
	}

	s.logActivity(ctx, models.EventShiftJoined,
		fmt.Sprintf("%s joined the shift", actor), actor, shiftID)
	return active, nil
}

// Leave removes the actor from the active shift's team.
func (s *ShiftService) Leave(ctx context.Context, shiftID, actor string) (*models.ShiftSession, error) {
	active, err := s.shifts.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil || active.ID != shiftID {
		return active, nil
	}
	if !active.HasMember(actor) {
		return active, nil
	}

	active.RemoveMember(actor)
	if err := s.shifts.Save(ctx, active); err != nil {
		return nil, err
	}

	s.logActivity(ctx, models.EventShiftLeft,
		fmt.Sprintf("%s left the shift", actor), actor, shiftID)
	return active, nil
}

func (s *ShiftService) logActivity(ctx context.Context, eventType, description, actor, relatedID string) {
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
