package service

import (
	"context"
	"fmt"
	"time"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LogKind names one of the append-only shift logs. The value is also the URL segment of its endpoint.
type LogKind string

const (
	LogKindEquipmentStatus     LogKind = "equipment-status"
	LogKindEvents              LogKind = "events"
	LogKindTaskLogs            LogKind = "task-logs"
	LogKindNovelties           LogKind = "novelties"
	LogKindRamps               LogKind = "ramps"
	LogKindTankReadings        LogKind = "tank-readings"
	LogKindOperationalReadings LogKind = "operational-readings"
)

// LogKinds lists every shift log kind
var LogKinds = []LogKind{
	LogKindEquipmentStatus,
	LogKindEvents,
	LogKindTaskLogs,
	LogKindNovelties,
	LogKindRamps,
	LogKindTankReadings,
	LogKindOperationalReadings,
}

// LogPayload is the client supplied body of a shift log entry
type LogPayload interface {
	Kind() LogKind
}

// EquipmentStatusLogRequest records a change of equipment availability
type EquipmentStatusLogRequest struct {
	EquipmentID uuid.UUID              `json:"equipment_id" validate:"required"`
	Status      models.EquipmentStatus `json:"status" validate:"required,enum"`
	Reason      string                 `json:"reason"`
	Timestamp   *time.Time             `json:"timestamp,omitempty"`
}

// EventLogRequest records an operational event
type EventLogRequest struct {
	EventType   models.EventType `json:"event_type" validate:"required,oneof=PROTECTION_TRIP FORCED_OUTAGE LOAD_REDUCTION UNIT_SYNCHRONIZATION UNIT_SHUTDOWN ROUTINE_TEST OTHER"`
	Description string           `json:"description" validate:"required"`
	Timestamp   *time.Time       `json:"timestamp,omitempty"`
}

// TaskLogRequest records the completion of a scheduled task
type TaskLogRequest struct {
	ScheduledTaskID uuid.UUID  `json:"scheduled_task_id" validate:"required"`
	CompletionTime  *time.Time `json:"completion_time,omitempty"`
	Notes           string     `json:"notes"`
}

// NoveltyLogRequest records a note for the next shift
type NoveltyLogRequest struct {
	NoveltyType models.NoveltyType `json:"novelty_type" validate:"required,oneof=GENERAL SPECIAL_INSTRUCTION SAFETY_INCIDENT ENVIRONMENTAL_INCIDENT"`
	Description string             `json:"description" validate:"required"`
	Timestamp   *time.Time         `json:"timestamp,omitempty"`
}

// GenerationRampRequest records a load change. Rate and compliance are computed by the server.
type GenerationRampRequest struct {
	GridOperatorName    string    `json:"grid_operator_name" validate:"max=200"`
	StartTime           time.Time `json:"start_time" validate:"required"`
	EndTime             time.Time `json:"end_time" validate:"required"`
	InitialLoadMW       float64   `json:"initial_load_mw" validate:"gte=0"`
	FinalLoadMW         float64   `json:"final_load_mw" validate:"gte=0"`
	TargetRateMWPerMin  float64   `json:"target_rate_mw_per_min"`
	NonComplianceReason string    `json:"non_compliance_reason"`
}

// TankReadingRequest records a tank level
type TankReadingRequest struct {
	TankID           uuid.UUID  `json:"tank_id" validate:"required"`
	LevelLiters      float64    `json:"level_liters" validate:"gte=0"`
	ReadingTimestamp *time.Time `json:"reading_timestamp,omitempty"`
}

// OperationalReadingRequest records the value of a process parameter on a unit
type OperationalReadingRequest struct {
	ParameterID uuid.UUID  `json:"parameter_id" validate:"required"`
	EquipmentID uuid.UUID  `json:"equipment_id" validate:"required"`
	Value       float64    `json:"value"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

func (*EquipmentStatusLogRequest) Kind() LogKind { return LogKindEquipmentStatus }
func (*EventLogRequest) Kind() LogKind { return LogKindEvents }
func (*TaskLogRequest) Kind() LogKind { return LogKindTaskLogs }
func (*NoveltyLogRequest) Kind() LogKind { return LogKindNovelties }
func (*GenerationRampRequest) Kind() LogKind { return LogKindRamps }
func (*TankReadingRequest) Kind() LogKind { return LogKindTankReadings }
func (*OperationalReadingRequest) Kind() LogKind { return LogKindOperationalReadings }

// NewLogPayload returns an empty payload for kind, ready to be bound from a request body
func NewLogPayload(kind LogKind) (LogPayload, bool) {
	switch kind {
	case LogKindEquipmentStatus:
		return &EquipmentStatusLogRequest{}, true
	case LogKindEvents:
		return &EventLogRequest{}, true
	case LogKindTaskLogs:
		return &TaskLogRequest{}, true
	case LogKindNovelties:
		return &NoveltyLogRequest{}, true
	case LogKindRamps:
		return &GenerationRampRequest{}, true
	case LogKindTankReadings:
		return &TankReadingRequest{}, true
	case LogKindOperationalReadings:
		return &OperationalReadingRequest{}, true
	}
	return nil, false
}

// ShiftLogService appends to and reads the per-shift logs
type ShiftLogService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	clock     clock.Clock
	validator *validator.Validate
}

// NewShiftLogService creates a new shift log service
func NewShiftLogService(repos *repository.Repositories, tx repository.TransactorInterface, clk clock.Clock, validator *validator.Validate) *ShiftLogService {
	return &ShiftLogService{
		repos:     repos,
		tx:        tx,
		clock:     clk,
		validator: validator,
	}
}

// AppendLog appends an entry to one of the logs of an open shift held by the actor.
// The shift row is share-locked so the shift cannot close while the entry is written.
func (s *ShiftLogService) AppendLog(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID, payload LogPayload) (interface{}, error) {
	if payload == nil {
		return nil, apperrors.NewValidationError("body", "log entry is required")
	}
	if err := s.validator.Struct(payload); err != nil {
		return nil, validationError(err)
	}

	var entry interface{}
	err := s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		shift, err := repos.Shifts.GetByIDForShare(ctx, shiftID)
		if err != nil {
			return lookupError(err, apperrors.ErrShiftNotFound, "shift")
		}
		if err := requireHolder(shift, actorID); err != nil {
			return err
		}

		entry, err = s.append(ctx, repos, shift.ID, actorID, payload)
		return err
	})
	if err != nil {
		return nil, txError(fmt.Sprintf("append %s", payload.Kind()), err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id": shiftID,
		"kind":     payload.Kind(),
	}).Debug("Shift log entry appended")

	return entry, nil
}

func (s *ShiftLogService) append(ctx context.Context, repos *repository.Repositories, shiftID, userID uuid.UUID, payload LogPayload) (interface{}, error) {
	now := s.clock.Now()

	switch p := payload.(type) {
	case *EquipmentStatusLogRequest:
		if _, err := repos.Equipment.GetByID(ctx, p.EquipmentID); err != nil {
			return nil, lookupError(err, apperrors.ErrEquipmentNotFound, "equipment")
		}
		entry := &models.EquipmentStatusLog{
			ShiftID:     shiftID,
			UserID:      userID,
			EquipmentID: p.EquipmentID,
			Status:      p.Status,
			Reason:      p.Reason,
			Timestamp:   timestampOr(p.Timestamp, now),
		}
		if err := repos.ShiftLogs.CreateEquipmentStatusLog(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create equipment status log: %w", err)
		}
		// Equipment.Status caches the latest logged status
		if err := repos.Equipment.UpdateStatus(ctx, p.EquipmentID, p.Status, p.Reason); err != nil {
			return nil, fmt.Errorf("failed to update equipment status: %w", err)
		}
		return entry, nil

	case *EventLogRequest:
		entry := &models.EventLog{
			ShiftID:     shiftID,
			EventType:   p.EventType,
			Description: p.Description,
			Timestamp:   timestampOr(p.Timestamp, now),
		}
		if err := repos.ShiftLogs.CreateEventLog(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create event log: %w", err)
		}
		return entry, nil

	case *TaskLogRequest:
		if _, err := repos.Tasks.GetByID(ctx, p.ScheduledTaskID); err != nil {
			return nil, lookupError(err, apperrors.ErrScheduledTaskNotFound, "scheduled task")
		}
		entry := &models.TaskLog{
			ShiftID:         shiftID,
			UserID:          userID,
			ScheduledTaskID: p.ScheduledTaskID,
			CompletionTime:  timestampOr(p.CompletionTime, now),
			Notes:           p.Notes,
		}
		if err := repos.ShiftLogs.CreateTaskLog(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create task log: %w", err)
		}
		return entry, nil

	case *NoveltyLogRequest:
		entry := &models.NoveltyLog{
			ShiftID:     shiftID,
			UserID:      userID,
			NoveltyType: p.NoveltyType,
			Description: p.Description,
			Timestamp:   timestampOr(p.Timestamp, now),
		}
		if err := repos.ShiftLogs.CreateNoveltyLog(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create novelty log: %w", err)
		}
		return entry, nil

	case *GenerationRampRequest:
		result, err := ComputeRamp(p.StartTime, p.EndTime, p.InitialLoadMW, p.FinalLoadMW, p.TargetRateMWPerMin)
		if err != nil {
			return nil, err
		}
		entry := &models.GenerationRamp{
			ShiftID:             shiftID,
			UserID:              userID,
			GridOperatorName:    p.GridOperatorName,
			StartTime:           p.StartTime,
			EndTime:             p.EndTime,
			InitialLoadMW:       p.InitialLoadMW,
			FinalLoadMW:         p.FinalLoadMW,
			TargetRateMWPerMin:  p.TargetRateMWPerMin,
			ActualRateMWPerMin:  result.ActualRateMWPerMin,
			IsCompliant:         result.IsCompliant,
			NonComplianceReason: p.NonComplianceReason,
		}
		if err := repos.ShiftLogs.CreateGenerationRamp(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create generation ramp: %w", err)
		}
		return entry, nil

	case *TankReadingRequest:
		if _, err := repos.Tanks.GetByID(ctx, p.TankID); err != nil {
			return nil, lookupError(err, apperrors.ErrTankNotFound, "tank")
		}
		entry := &models.TankReading{
			ShiftID:          shiftID,
			UserID:           userID,
			TankID:           p.TankID,
			LevelLiters:      p.LevelLiters,
			ReadingTimestamp: timestampOr(p.ReadingTimestamp, now),
		}
		if err := repos.ShiftLogs.CreateTankReading(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create tank reading: %w", err)
		}
		return entry, nil

	case *OperationalReadingRequest:
		if _, err := repos.Parameters.GetByID(ctx, p.ParameterID); err != nil {
			return nil, lookupError(err, apperrors.ErrOperationalParameterNotFound, "operational parameter")
		}
		if _, err := repos.Equipment.GetByID(ctx, p.EquipmentID); err != nil {
			return nil, lookupError(err, apperrors.ErrEquipmentNotFound, "equipment")
		}
		entry := &models.OperationalReading{
			ShiftID:     shiftID,
			UserID:      userID,
			ParameterID: p.ParameterID,
			EquipmentID: p.EquipmentID,
			Value:       p.Value,
			Timestamp:   timestampOr(p.Timestamp, now),
		}
		if err := repos.ShiftLogs.CreateOperationalReading(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create operational reading: %w", err)
		}
		return entry, nil
	}

	return nil, apperrors.NewValidationError("kind", fmt.Sprintf("unsupported log kind %q", payload.Kind()))
}

// ListLogs returns the entries of one log of a shift, oldest first
func (s *ShiftLogService) ListLogs(ctx context.Context, shiftID uuid.UUID, kind LogKind) (interface{}, error) {
	if _, err := s.repos.Shifts.GetByID(ctx, shiftID); err != nil {
		return nil, lookupError(err, apperrors.ErrShiftNotFound, "shift")
	}

	logs := s.repos.ShiftLogs
	var (
		entries interface{}
		err     error
	)
	switch kind {
	case LogKindEquipmentStatus:
		entries, err = logs.ListEquipmentStatusLogs(ctx, shiftID)
	case LogKindEvents:
		entries, err = logs.ListEventLogs(ctx, shiftID)
	case LogKindTaskLogs:
		entries, err = logs.ListTaskLogs(ctx, shiftID)
	case LogKindNovelties:
		entries, err = logs.ListNoveltyLogs(ctx, shiftID)
	case LogKindRamps:
		entries, err = logs.ListGenerationRamps(ctx, shiftID)
	case LogKindTankReadings:
		entries, err = logs.ListTankReadings(ctx, shiftID)
	case LogKindOperationalReadings:
		entries, err = logs.ListOperationalReadings(ctx, shiftID)
	default:
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("unsupported log kind %q", kind))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return entries, nil
}

func timestampOr(t *time.Time, fallback time.Time) time.Time {
	if t == nil || t.IsZero() {
		return fallback
	}
	return *t
}
