package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockShiftRepository struct {
	mock.Mock
}

func (m *mockShiftRepository) GetActive(ctx context.Context) (*models.ShiftSession, error) {
	args := m.Called(ctx)
	shift, _ := args.Get(0).(*models.ShiftSession)
	return shift, args.Error(1)
}

func (m *mockShiftRepository) Create(ctx context.Context, shift *models.ShiftSession) error {
	args := m.Called(ctx, shift)
	if args.Error(0) == nil {
		shift.ID = "SH-000001"
	}
	return args.Error(0)
}

func (m *mockShiftRepository) Save(ctx context.Context, shift *models.ShiftSession) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *mockShiftRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockLogWriter struct {
	mock.Mock
}

func (m *mockLogWriter) Create(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func activeShift() *models.ShiftSession {
	return &models.ShiftSession{
		ID:          "SH-000001",
		UserName:    "Dr. Elira Kola",
		StartTime:   time.Now().Add(-time.Hour),
		IsActive:    true,
		TeamMembers: []string{"Dr. Elira Kola"},
	}
}

func TestStartShiftOpensSession(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	repo.On("GetActive", mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	logs.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.ActivityLog) bool {
		return entry.Type == models.EventShiftStarted && entry.Description == "Started shift"
	})).Return(nil)

	service := NewShiftService(repo, logs)
	shift, created, err := service.Start(context.Background(), "Dr. Elira Kola", "qetë")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.True(t, shift.IsActive)
	assert.Equal(t, []string{"Dr. Elira Kola"}, []string(shift.TeamMembers))
	assert.Equal(t, "qetë", shift.Notes)
	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestStartShiftWhileActiveIsNoOp(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	existing := activeShift()
	repo.On("GetActive", mock.Anything).Return(existing, nil)

	service := NewShiftService(repo, logs)
	shift, created, err := service.Start(context.Background(), "Dr. Agim Leka", "")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, shift)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStartShiftLosingRaceReturnsWinner(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	winner := activeShift()
	repo.On("GetActive", mock.Anything).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("failed to create shift: %w", repositories.ErrShiftAlreadyActive))
	repo.On("GetActive", mock.Anything).Return(winner, nil).Once()

	service := NewShiftService(repo, logs)
	shift, created, err := service.Start(context.Background(), "Dr. Agim Leka", "")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winner, shift)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEndShiftMismatchedIDIsNoOp(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	repo.On("GetActive", mock.Anything).Return(activeShift(), nil)

	service := NewShiftService(repo, logs)
	err := service.End(context.Background(), "SH-000099", "Dr. Elira Kola")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEndActiveShift(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	repo.On("GetActive", mock.Anything).Return(activeShift(), nil)
	repo.On("Deactivate", mock.Anything, "SH-000001").Return(nil)
	logs.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.ActivityLog) bool {
		return entry.Type == models.EventShiftEnded
	})).Return(nil)

	service := NewShiftService(repo, logs)
	err := service.End(context.Background(), "SH-000001", "Dr. Elira Kola")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestJoinShiftAddsMember(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	repo.On("GetActive", mock.Anything).Return(activeShift(), nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	logs.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.ActivityLog) bool {
		return entry.Type == models.EventShiftJoined && entry.Description == "Dr. Agim Leka joined the shift"
	})).Return(nil)

	service := NewShiftService(repo, logs)
	shift, err := service.Join(context.Background(), "SH-000001", "Dr. Agim Leka")

	assert.NoError(t, err)
	assert.True(t, shift.HasMember("Dr. Agim Leka"))
	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestJoinShiftIdempotent(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	repo.On("GetActive", mock.Anything).Return(activeShift(), nil)

	service := NewShiftService(repo, logs)
	shift, err := service.Join(context.Background(), "SH-000001", "Dr. Elira Kola")

	assert.NoError(t, err)
	assert.Equal(t, []string{"Dr. Elira Kola"}, []string(shift.TeamMembers))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeaveShiftRemovesMember(t *testing.T) {
	repo := new(mockShiftRepository)
	logs := new(mockLogWriter)
	shift := activeShift()
	shift.AddMember("Dr. Agim Leka")
	repo.On("GetActive", mock.Anything).Return(shift, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	logs.On("Create", mock.Anything, mock.MatchedBy(func(entry *models.ActivityLog) bool {
		return entry.Type == models.EventShiftLeft
	})).Return(nil)

	service := NewShiftService(repo, logs)
	updated, err := service.Leave(context.Background(), "SH-000001", "Dr. Agim Leka")

	assert.NoError(t, err)
	assert.False(t, updated.HasMember("Dr. Agim Leka"))
	assert.True(t, updated.HasMember("Dr. Elira Kola"))
	repo.AssertExpectations(t)
}
