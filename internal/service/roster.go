package service

import (
	"fmt"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"

	"github.com/google/uuid"
)

// BuildAttendance derives the initial attendance sheet of a shift from the
// members of its scheduled group. Every member is scheduled and present on
// their base position.
func BuildAttendance(members []models.Employee, shiftID uuid.UUID) ([]models.ShiftAttendance, error) {
	records := make([]models.ShiftAttendance, 0, len(members))
	for _, member := range members {
		if member.BasePositionID == nil {
			return nil, apperrors.NewValidationError("base_position_id",
				fmt.Sprintf("employee %s (%s) has no base position", member.FullName, member.BadgeID))
		}
		records = append(records, models.ShiftAttendance{
			ShiftID:             shiftID,
			ScheduledEmployeeID: member.ID,
			ActualEmployeeID:    member.ID,
			PositionID:          *member.BasePositionID,
			Status:              models.AttendanceStatusPresent,
		})
	}
	return records, nil
}
