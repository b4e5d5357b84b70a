package service

import (
	"context"
	"fmt"

	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService serves the archive of closed shifts
type ReportService struct {
	repos *repository.Repositories
}

// NewReportService creates a new report service
func NewReportService(repos *repository.Repositories) *ReportService {
	return &ReportService{repos: repos}
}

// ListClosedShifts retrieves every closed shift, most recent first
func (s *ReportService) ListClosedShifts(ctx context.Context) ([]ShiftResponse, error) {
	shifts, err := s.repos.Shifts.GetClosed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i])
	}
	return responses, nil
}

// GetReport retrieves a closed shift with all of its logs. Open shifts have no report yet.
func (s *ReportService) GetReport(ctx context.Context, shiftID uuid.UUID) (*ShiftDetailResponse, error) {
	shift, err := s.repos.Shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrReportNotFound, "shift")
	}
	if shift.IsOpen() {
		return nil, apperrors.ErrReportNotFound
	}
	return loadShiftDetails(ctx, s.repos, shift)
}
