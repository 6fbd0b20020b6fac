package services

import (
	"WardShift/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBedStatusGenderTracked(t *testing.T) {
	status, err := BuildBedStatus("Gjysmëintensivi", models.FreeBedSplit{Male: 3, Female: 4})
	assert.NoError(t, err)

	assert.Equal(t, 10, status.TotalBeds)
	assert.Equal(t, 3, status.OccupiedBeds)
	split := status.FreeBeds.Data()
	assert.Equal(t, 3, split.Male)
	assert.Equal(t, 4, split.Female)
}

func TestBuildBedStatusCoronaryUnitAggregates(t *testing.T) {
	status, err := BuildBedStatus(models.CoronaryUnit, models.FreeBedSplit{Male: 5})
	assert.NoError(t, err)

	assert.Equal(t, 10, status.TotalBeds)
	assert.Equal(t, 5, status.OccupiedBeds)
	split := status.FreeBeds.Data()
	assert.Equal(t, 5, split.Male)
	assert.Equal(t, 0, split.Female)
}

func TestBuildBedStatusClampsOverCapacity(t *testing.T) {
	status, err := BuildBedStatus("Emergjenca", models.FreeBedSplit{Male: 10, Female: 10})
	assert.NoError(t, err)
	assert.Equal(t, 0, status.OccupiedBeds)
}

func TestBuildBedStatusClampsNegativeInput(t *testing.T) {
	status, err := BuildBedStatus("Kardiologjia", models.FreeBedSplit{Male: -2, Female: 1})
	assert.NoError(t, err)

	split := status.FreeBeds.Data()
	assert.Equal(t, 0, split.Male)
	assert.Equal(t, 1, split.Female)
	assert.Equal(t, 23, status.OccupiedBeds)
}

func TestBuildBedStatusUnknownDepartment(t *testing.T) {
	_, err := BuildBedStatus("Radiologjia", models.FreeBedSplit{})
	assert.ErrorIs(t, err, ErrUnknownDepartment)
}

func TestDefaultBedStatusFullyOccupied(t *testing.T) {
	for _, department := range models.Departments {
		status := DefaultBedStatus(department)
		assert.Equal(t, models.DepartmentBedCounts[department], status.TotalBeds)
		assert.Equal(t, status.TotalBeds, status.OccupiedBeds)
		assert.Equal(t, 0, status.FreeBeds.Data().Total())
	}
}
