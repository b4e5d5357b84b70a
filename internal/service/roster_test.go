package service

import (
	"testing"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAttendance(t *testing.T) {
	shiftID := uuid.New()

	t.Run("one present row per member", func(t *testing.T) {
		positionA, positionB := uuid.New(), uuid.New()
		members := []models.Employee{
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Ana", BasePositionID: &positionA},
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Luis", BasePositionID: &positionB},
		}

		records, err := BuildAttendance(members, shiftID)
		require.NoError(t, err)
		require.Len(t, records, 2)

		for i, record := range records {
			assert.Equal(t, shiftID, record.ShiftID)
			assert.Equal(t, members[i].ID, record.ScheduledEmployeeID)
			assert.Equal(t, members[i].ID, record.ActualEmployeeID)
			assert.Equal(t, *members[i].BasePositionID, record.PositionID)
			assert.Equal(t, models.AttendanceStatusPresent, record.Status)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		records, err := BuildAttendance(nil, shiftID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("member without base position", func(t *testing.T) {
		members := []models.Employee{{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Pedro", BadgeID: "B-7"}}

		_, err := BuildAttendance(members, shiftID)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "Pedro")
	})
}
