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

// LicenseService handles work licenses
type LicenseService struct {
	repo      repository.LicenseRepositoryInterface
	clock     clock.Clock
	validator *validator.Validate
}

// NewLicenseService creates a new license service
func NewLicenseService(repo repository.LicenseRepositoryInterface, clk clock.Clock, validator *validator.Validate) *LicenseService {
	return &LicenseService{
		repo:      repo,
		clock:     clk,
		validator: validator,
	}
}

// CreateLicenseRequest represents the request to grant a license
type CreateLicenseRequest struct {
	LicenseNumber string     `json:"license_number" validate:"required,max=50"`
	AffectedUnit  string     `json:"affected_unit" validate:"required,max=100"`
	Description   string     `json:"description"`
	StartTime     *time.Time `json:"start_time,omitempty"`
}

// CreateLicense grants an ACTIVE license
func (s *LicenseService) CreateLicense(ctx context.Context, actorID uuid.UUID, req *CreateLicenseRequest) (*models.License, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	license := &models.License{
		LicenseNumber:   req.LicenseNumber,
		AffectedUnit:    req.AffectedUnit,
		Description:     req.Description,
		Status:          models.LicenseStatusActive,
		StartTime:       timestampOr(req.StartTime, s.clock.Now()),
		CreatedByUserID: actorID,
	}
	if err := s.repo.Create(ctx, license); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLicenseExists
		}
		return nil, fmt.Errorf("failed to create license: %w", err)
	}
	return license, nil
}

// GetLicense retrieves a license by ID
func (s *LicenseService) GetLicense(ctx context.Context, id uuid.UUID) (*models.License, error) {
	license, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrLicenseNotFound, "license")
	}
	return license, nil
}

// ListLicenses retrieves licenses, optionally only those in status
func (s *LicenseService) ListLicenses(ctx context.Context, status *models.LicenseStatus) ([]models.License, error) {
	var (
		licenses []models.License
		err      error
	)
	if status != nil {
		licenses, err = s.repo.GetByStatus(ctx, *status)
	} else {
		licenses, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	return licenses, nil
}

// CloseLicense moves an ACTIVE license to CLOSED
func (s *LicenseService) CloseLicense(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*models.License, error) {
	license, err := s.GetLicense(ctx, id)
	if err != nil {
		return nil, err
	}
	if license.Status == models.LicenseStatusClosed {
		return nil, apperrors.ErrLicenseClosed
	}

	now := s.clock.Now()
	ok, err := s.repo.Close(ctx, license.ID, actorID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to close license: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrLicenseClosed
	}

	license.Status = models.LicenseStatusClosed
	license.EndTime = &now
	license.ClosedByUserID = &actorID

	logger.WithContext(ctx).WithField("license_number", license.LicenseNumber).Info("License closed")
	return license, nil
}
