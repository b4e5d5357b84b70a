package service

import (
	"context"
	"errors"
	"fmt"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HandoverService closes the open shift and opens the next one after both
// operators confirm their credentials
type HandoverService struct {
	repos       *repository.Repositories
	tx          repository.TransactorInterface
	credentials CredentialVerifier
	clock       clock.Clock
	calendar    *Calendar
	validator   *validator.Validate
}

// NewHandoverService creates a new handover service
func NewHandoverService(repos *repository.Repositories, tx repository.TransactorInterface, credentials CredentialVerifier, clk clock.Clock, calendar *Calendar, validator *validator.Validate) *HandoverService {
	return &HandoverService{
		repos:       repos,
		tx:          tx,
		credentials: credentials,
		clock:       clk,
		calendar:    calendar,
		validator:   validator,
	}
}

// HandoverRequest carries the digital handshake of the outgoing and incoming operators
type HandoverRequest struct {
	OutgoingPassword string    `json:"outgoing_password" validate:"required"`
	IncomingUsername string    `json:"incoming_username" validate:"required"`
	IncomingPassword string    `json:"incoming_password" validate:"required"`
	ShiftToCloseID   uuid.UUID `json:"shift_to_close_id" validate:"required"`
	NextGroupID      uuid.UUID `json:"next_group_id" validate:"required"`
}

// Handover verifies both operators, then closes the shift held by the outgoing
// operator and opens the next one with a fresh attendance sheet. Either all of
// it happens or none of it does.
func (s *HandoverService) Handover(ctx context.Context, outgoingUserID uuid.UUID, req *HandoverRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	log := logger.WithContext(ctx).WithComponent("handover")

	// Digital handshake
	outgoing, err := s.repos.Users.GetByID(ctx, outgoingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidOutgoingCredentials
		}
		return nil, fmt.Errorf("failed to get outgoing user: %w", err)
	}
	if !s.credentials.Verify(req.OutgoingPassword, outgoing.PasswordHash) {
		log.Warn("Handover rejected: outgoing credentials")
		return nil, apperrors.ErrInvalidOutgoingCredentials
	}

	incoming, err := s.repos.Users.GetByUsername(ctx, req.IncomingUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidIncomingCredentials
		}
		return nil, fmt.Errorf("failed to get incoming user: %w", err)
	}
	if !s.credentials.Verify(req.IncomingPassword, incoming.PasswordHash) {
		log.Warn("Handover rejected: incoming credentials")
		return nil, apperrors.ErrInvalidIncomingCredentials
	}

	shift, err := s.repos.Shifts.GetByID(ctx, req.ShiftToCloseID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrShiftNotFound, "shift")
	}
	if err := requireHolder(shift, outgoing.ID); err != nil {
		return nil, err
	}

	group, err := s.repos.Groups.GetByID(ctx, req.NextGroupID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGroupNotFound, "shift group")
	}

	var next *models.Shift
	err = s.tx.Transaction(ctx, func(repos *repository.Repositories) error {
		locked, err := repos.Shifts.GetByIDForUpdate(ctx, shift.ID)
		if err != nil {
			return fmt.Errorf("failed to lock shift: %w", err)
		}
		// The shift may have been closed or handed over since it was read
		if err := requireHolder(locked, outgoing.ID); err != nil {
			return err
		}

		now := s.clock.Now()
		ok, err := repos.Shifts.Close(ctx, locked.ID, outgoing.ID, now)
		if err != nil {
			return fmt.Errorf("failed to close shift: %w", err)
		}
		if !ok {
			return apperrors.ErrShiftClosed
		}

		opened := newOpenShift(s.calendar, now, incoming.ID, group.ID)
		if err := repos.Shifts.Create(ctx, opened); err != nil {
			return fmt.Errorf("failed to create next shift: %w", err)
		}

		if err := buildRoster(ctx, repos, opened.ID, group.ID); err != nil {
			return err
		}
		next = opened
		return nil
	})
	if err != nil {
		if apperrors.IsInvalidState(err) || apperrors.IsForbidden(err) {
			return nil, err
		}
		log.WithShift(shift.ID).Errorf("Handover rolled back: %v", err)
		return nil, apperrors.NewTransactionError("handover", err)
	}

	log.WithFields(map[string]interface{}{
		"closed_shift_id": shift.ID,
		"opened_shift_id": next.ID,
		"incoming_user":   incoming.Username,
		"group_id":        group.ID,
	}).Info("Shift handed over")

	return toShiftResponse(next), nil
}
