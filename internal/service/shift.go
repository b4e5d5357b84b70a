package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles the lifecycle of shifts and their attendance sheets
type ShiftService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	clock     clock.Clock
	calendar  *Calendar
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repos *repository.Repositories, tx repository.TransactorInterface, clk clock.Clock, calendar *Calendar, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repos:     repos,
		tx:        tx,
		clock:     clk,
		calendar:  calendar,
		validator: validator,
	}
}

// OpenShiftRequest represents the request to start a shift without a handover
type OpenShiftRequest struct {
	GroupID uuid.UUID `json:"group_id" validate:"required"`
}

// AssignGroupRequest represents the request to re-target an open shift to another group
type AssignGroupRequest struct {
	GroupID uuid.UUID `json:"group_id" validate:"required"`
}

// UpdateAttendanceRequest is a partial update of one attendance row.
// Nil fields are left unchanged.
type UpdateAttendanceRequest struct {
	Status           *models.AttendanceStatus `json:"status,omitempty" validate:"omitempty,enum"`
	ActualEmployeeID *uuid.UUID               `json:"actual_employee_id,omitempty"`
	PositionID       *uuid.UUID               `json:"position_id,omitempty"`
}

func (r *UpdateAttendanceRequest) apply(record *models.ShiftAttendance) {
	if r.Status != nil {
		record.Status = *r.Status
	}
	if r.ActualEmployeeID != nil {
		record.ActualEmployeeID = *r.ActualEmployeeID
	}
	if r.PositionID != nil {
		record.PositionID = *r.PositionID
	}
}

// ShiftResponse represents a shift without its logs
type ShiftResponse struct {
	ID               uuid.UUID          `json:"id"`
	StartTime        time.Time          `json:"start_time"`
	EndTime          *time.Time         `json:"end_time,omitempty"`
	Status           models.ShiftStatus `json:"status"`
	OutgoingHolderID *uuid.UUID         `json:"outgoing_holder_id,omitempty"`
	IncomingHolderID uuid.UUID          `json:"incoming_holder_id"`
	ScheduledGroupID uuid.UUID          `json:"scheduled_group_id"`
	OperationalDate  string             `json:"operational_date"`
	Designator       int                `json:"designator"`
}

// ShiftDetailResponse represents a shift with its attendance sheet and every log
type ShiftDetailResponse struct {
	ShiftResponse
	Attendance          []models.ShiftAttendance    `json:"attendance"`
	EquipmentStatusLogs []models.EquipmentStatusLog `json:"equipment_status_logs"`
	EventLogs           []models.EventLog           `json:"event_logs"`
	TaskLogs            []models.TaskLog            `json:"task_logs"`
	NoveltyLogs         []models.NoveltyLog         `json:"novelty_logs"`
	GenerationRamps     []models.GenerationRamp     `json:"generation_ramps"`
	TankReadings        []models.TankReading        `json:"tank_readings"`
	OperationalReadings []models.OperationalReading `json:"operational_readings"`
}

// OpenShift starts a shift held by the actor for the given group and builds its attendance sheet
func (s *ShiftService) OpenShift(ctx context.Context, actorID uuid.UUID, req *OpenShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var opened *models.Shift
	err := s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		group, err := repos.Groups.GetByID(ctx, req.GroupID)
		if err != nil {
			return lookupError(err, apperrors.ErrGroupNotFound, "shift group")
		}

		if _, err := repos.Shifts.GetOpen(ctx); err == nil {
			return apperrors.ErrShiftAlreadyOpen
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check open shift: %w", err)
		}

		now := s.clock.Now()
		shift := newOpenShift(s.calendar, now, actorID, group.ID)
		if err := repos.Shifts.Create(ctx, shift); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrShiftAlreadyOpen
			}
			return fmt.Errorf("failed to create shift: %w", err)
		}

		if err := buildRoster(ctx, repos, shift.ID, group.ID); err != nil {
			return err
		}
		opened = shift
		return nil
	})
	if err != nil {
		return nil, txError("open shift", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id": opened.ID,
		"group_id": opened.ScheduledGroupID,
	}).Info("Shift opened")

	return toShiftResponse(opened), nil
}

// CloseShift closes an open shift held by the actor
func (s *ShiftService) CloseShift(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID) (*ShiftResponse, error) {
	var closed *models.Shift
	err := s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		shift, err := repos.Shifts.GetByIDForUpdate(ctx, shiftID)
		if err != nil {
			return lookupError(err, apperrors.ErrShiftNotFound, "shift")
		}
		if err := requireHolder(shift, actorID); err != nil {
			return err
		}

		now := s.clock.Now()
		ok, err := repos.Shifts.Close(ctx, shift.ID, actorID, now)
		if err != nil {
			return fmt.Errorf("failed to close shift: %w", err)
		}
		if !ok {
			return apperrors.ErrShiftClosed
		}

		shift.Status = models.ShiftStatusClosed
		shift.EndTime = &now
		shift.OutgoingHolderID = &actorID
		closed = shift
		return nil
	})
	if err != nil {
		return nil, txError("close shift", err)
	}

	logger.WithContext(ctx).WithShift(closed.ID).Info("Shift closed")
	return toShiftResponse(closed), nil
}

// GetShift retrieves a shift by ID
func (s *ShiftService) GetShift(ctx context.Context, shiftID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repos.Shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrShiftNotFound, "shift")
	}
	return toShiftResponse(shift), nil
}

// GetShiftDetails retrieves a shift with its attendance sheet and all logs
func (s *ShiftService) GetShiftDetails(ctx context.Context, shiftID uuid.UUID) (*ShiftDetailResponse, error) {
	shift, err := s.repos.Shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrShiftNotFound, "shift")
	}
	return loadShiftDetails(ctx, s.repos, shift)
}

// GetActiveShiftForUser retrieves the open shift held by the user
func (s *ShiftService) GetActiveShiftForUser(ctx context.Context, userID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repos.Shifts.GetOpenByHolder(ctx, userID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrActiveShiftNotFound, "active shift")
	}
	return toShiftResponse(shift), nil
}

// AssignGroup re-targets an open shift to another group and regenerates its attendance sheet
func (s *ShiftService) AssignGroup(ctx context.Context, shiftID uuid.UUID, actorID uuid.UUID, req *AssignGroupRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var updated *models.Shift
	err := s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		shift, err := repos.Shifts.GetByIDForUpdate(ctx, shiftID)
		if err != nil {
			return lookupError(err, apperrors.ErrShiftNotFound, "shift")
		}
		if err := requireHolder(shift, actorID); err != nil {
			return err
		}

		group, err := repos.Groups.GetByID(ctx, req.GroupID)
		if err != nil {
			return lookupError(err, apperrors.ErrGroupNotFound, "shift group")
		}

		if err := repos.Shifts.UpdateGroup(ctx, shift.ID, group.ID); err != nil {
			return fmt.Errorf("failed to update shift group: %w", err)
		}
		if err := repos.Attendance.DeleteByShiftID(ctx, shift.ID); err != nil {
			return fmt.Errorf("failed to clear attendance: %w", err)
		}
		if err := buildRoster(ctx, repos, shift.ID, group.ID); err != nil {
			return err
		}

		shift.ScheduledGroupID = group.ID
		updated = shift
		return nil
	})
	if err != nil {
		return nil, txError("assign group", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"shift_id": updated.ID,
		"group_id": updated.ScheduledGroupID,
	}).Info("Shift group reassigned")

	return toShiftResponse(updated), nil
}

// ListAttendance retrieves the attendance sheet of a shift
func (s *ShiftService) ListAttendance(ctx context.Context, shiftID uuid.UUID) ([]models.ShiftAttendance, error) {
	if _, err := s.repos.Shifts.GetByID(ctx, shiftID); err != nil {
		return nil, lookupError(err, apperrors.ErrShiftNotFound, "shift")
	}

	records, err := s.repos.Attendance.GetByShiftID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// UpdateAttendance patches one attendance row of an open shift held by the actor
func (s *ShiftService) UpdateAttendance(ctx context.Context, attendanceID uuid.UUID, actorID uuid.UUID, req *UpdateAttendanceRequest) (*models.ShiftAttendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var record *models.ShiftAttendance
	err := s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		var err error
		record, err = repos.Attendance.GetByID(ctx, attendanceID)
		if err != nil {
			return lookupError(err, apperrors.ErrAttendanceNotFound, "attendance record")
		}

		shift, err := repos.Shifts.GetByIDForShare(ctx, record.ShiftID)
		if err != nil {
			return lookupError(err, apperrors.ErrShiftNotFound, "shift")
		}
		if err := requireHolder(shift, actorID); err != nil {
			return err
		}

		if req.ActualEmployeeID != nil {
			if _, err := repos.Employees.GetByID(ctx, *req.ActualEmployeeID); err != nil {
				return lookupError(err, apperrors.ErrEmployeeNotFound, "employee")
			}
		}
		if req.PositionID != nil {
			if _, err := repos.Positions.GetByID(ctx, *req.PositionID); err != nil {
				return lookupError(err, apperrors.ErrPositionNotFound, "position")
			}
		}

		req.apply(record)
		if err := repos.Attendance.Update(ctx, record); err != nil {
			return fmt.Errorf("failed to update attendance: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, txError("update attendance", err)
	}
	return record, nil
}

// newOpenShift builds an OPEN shift starting at start, dated by the calendar slot
func newOpenShift(calendar *Calendar, start time.Time, holderID, groupID uuid.UUID) *models.Shift {
	date, designator := calendar.Slot(start)
	return &models.Shift{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		StartTime:        start,
		Status:           models.ShiftStatusOpen,
		IncomingHolderID: holderID,
		ScheduledGroupID: groupID,
		OperationalDate:  date,
		Designator:       designator,
	}
}

// requireHolder rejects mutations of a closed shift or by anyone but its holder
func requireHolder(shift *models.Shift, actorID uuid.UUID) error {
	if !shift.IsOpen() {
		return apperrors.ErrShiftClosed
	}
	if shift.IncomingHolderID != actorID {
		return apperrors.ErrNotShiftHolder
	}
	return nil
}

// buildRoster snapshots the members of groupID into the attendance sheet of shiftID
func buildRoster(ctx context.Context, repos *repository.Repositories, shiftID, groupID uuid.UUID) error {
	members, err := repos.Groups.GetMembers(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to load group members: %w", err)
	}

	records, err := BuildAttendance(members, shiftID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	if err := repos.Attendance.CreateBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func loadShiftDetails(ctx context.Context, repos *repository.Repositories, shift *models.Shift) (*ShiftDetailResponse, error) {
	detail := &ShiftDetailResponse{ShiftResponse: *toShiftResponse(shift)}
	var err error

	if detail.Attendance, err = repos.Attendance.GetByShiftID(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if detail.EquipmentStatusLogs, err = repos.ShiftLogs.ListEquipmentStatusLogs(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list equipment status logs: %w", err)
	}
	if detail.EventLogs, err = repos.ShiftLogs.ListEventLogs(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}
	if detail.TaskLogs, err = repos.ShiftLogs.ListTaskLogs(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	if detail.NoveltyLogs, err = repos.ShiftLogs.ListNoveltyLogs(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list novelty logs: %w", err)
	}
	if detail.GenerationRamps, err = repos.ShiftLogs.ListGenerationRamps(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list generation ramps: %w", err)
	}
	if detail.TankReadings, err = repos.ShiftLogs.ListTankReadings(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list tank readings: %w", err)
	}
	if detail.OperationalReadings, err = repos.ShiftLogs.ListOperationalReadings(ctx, shift.ID); err != nil {
		return nil, fmt.Errorf("failed to list operational readings: %w", err)
	}

	return detail, nil
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:               shift.ID,
		StartTime:        shift.StartTime,
		EndTime:          shift.EndTime,
		Status:           shift.Status,
		OutgoingHolderID: shift.OutgoingHolderID,
		IncomingHolderID: shift.IncomingHolderID,
		ScheduledGroupID: shift.ScheduledGroupID,
		OperationalDate:  shift.OperationalDate.Format("2006-01-02"),
		Designator:       shift.Designator,
	}
}
