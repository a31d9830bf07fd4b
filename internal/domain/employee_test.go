package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextEmployeeOrderID(t *testing.T) {
	tests := []struct {
		name   string
		lastID string
		want   string
	}{
		{"no previous order", "", "EMP001"},
		{"sequential", "EMP001", "EMP002"},
		{"double digits", "EMP041", "EMP042"},
		{"widens past 999", "EMP999", "EMP1000"},
		{"unparsable suffix restarts from one", "EMPxyz", "EMP001"},
		{"foreign prefix restarts from one", "ORD005", "EMP001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextEmployeeOrderID(tt.lastID))
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	assert.Equal(t, "Manager", NormalizePosition("Manager"))
	assert.Equal(t, "Senior Manager", NormalizePosition("Senior Manager"))
	assert.Equal(t, PositionEmployee, NormalizePosition("CEO"))
	assert.Equal(t, PositionEmployee, NormalizePosition(""))
}

func TestEmployeeStatuses(t *testing.T) {
	assert.True(t, IsValidEmployeeStatus(StatusMovedToStitching))
	assert.True(t, IsValidEmployeeStatus(StatusPending))
	assert.True(t, IsValidEmployeeStatus(StatusReady))
	assert.False(t, IsValidEmployeeStatus("Bogus"))

	// the employee enumeration is the civil one plus Moved to Stitching
	assert.Len(t, EmployeeStatuses(), len(CivilStatuses())+1)
	assert.False(t, IsValidCivilStatus(StatusMovedToStitching))
}

func TestFallbackEmployeeOrderID(t *testing.T) {
	now := time.UnixMilli(1742211234567)
	assert.Equal(t, "EMP234567", FallbackEmployeeOrderID(now))
}
