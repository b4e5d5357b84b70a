package service

import (
	"testing"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidation(t *testing.T) {
	v := NewValidator()
	absent := models.AttendanceStatusAbsent
	bogus := models.AttendanceStatus("ON_LEAVE")

	tests := []struct {
		name    string
		request interface{}
		valid   bool
	}{
		{"known role", &CreateUserRequest{Username: "ops", FullName: "Ops", BadgeID: "B-1", Password: "longenough", Role: models.UserRoleOpsManager}, true},
		{"unknown role", &CreateUserRequest{Username: "ops", FullName: "Ops", BadgeID: "B-1", Password: "longenough", Role: "ADMIN"}, false},
		{"attendance status omitted", &UpdateAttendanceRequest{}, true},
		{"known attendance status", &UpdateAttendanceRequest{Status: &absent}, true},
		{"unknown attendance status", &UpdateAttendanceRequest{Status: &bogus}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.request)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(validationError(err)))
			assert.Contains(t, validationError(err).Error(), "'enum'")
		})
	}
}
