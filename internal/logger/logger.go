// Package logger tags logrus entries with the operator, role and request that produced them.
package logger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Context keys written by the auth and request id middlewares
const (
	usernameKey  = "username"
	roleKey      = "role"
	requestIDKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a logger on the standard logrus logger
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext creates a logger tagged with the operator and request found in ctx.
// Handlers pass the gin context, whose Value lookup reads the keys set on it.
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{"user": "unknown"}

	if username, ok := ctx.Value(usernameKey).(string); ok && username != "" {
		fields["user"] = username
	}
	if role := ctx.Value(roleKey); role != nil {
		fields["role"] = role
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		fields["request_id"] = requestID
	}

	return &Logger{Entry: logrus.StandardLogger().WithFields(fields)}
}

// WithComponent tags entries with the subsystem emitting them
func (l *Logger) WithComponent(name string) *Logger {
	return l.WithField("component", name)
}

// WithShift tags entries with the shift they concern
func (l *Logger) WithShift(shiftID uuid.UUID) *Logger {
	return l.WithField("shift_id", shiftID)
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}
