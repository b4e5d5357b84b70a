package logger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStandard(t *testing.T) *test.Hook {
	hook := test.NewLocal(logrus.StandardLogger())
	t.Cleanup(hook.Reset)
	return hook
}

func TestWithContextTagsOperator(t *testing.T) {
	hook := captureStandard(t)
	ctx := context.WithValue(context.Background(), usernameKey, "lmendez")
	ctx = context.WithValue(ctx, roleKey, "SHIFT_SUPERINTENDENT")
	ctx = context.WithValue(ctx, requestIDKey, "req-1")

	WithContext(ctx).WithComponent("handover").Info("Shift handed over")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Shift handed over", entry.Message)
	assert.Equal(t, "lmendez", entry.Data["user"])
	assert.Equal(t, "SHIFT_SUPERINTENDENT", entry.Data["role"])
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "handover", entry.Data["component"])
}

func TestWithContextAnonymous(t *testing.T) {
	hook := captureStandard(t)

	WithContext(context.Background()).Warn("rejected")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "unknown", entry.Data["user"])
	assert.NotContains(t, entry.Data, "request_id")
	assert.NotContains(t, entry.Data, "role")
}

func TestWithShiftAndFields(t *testing.T) {
	hook := captureStandard(t)
	shiftID := uuid.New()

	New().WithShift(shiftID).WithFields(map[string]interface{}{"kind": "events"}).Error("append failed")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, shiftID, entry.Data["shift_id"])
	assert.Equal(t, "events", entry.Data["kind"])
}
