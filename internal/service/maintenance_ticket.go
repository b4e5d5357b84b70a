package service

import (
	"context"
	"fmt"

	"control-room-backend/internal/clock"
	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaintenanceTicketService handles fault reports and planned maintenance
type MaintenanceTicketService struct {
	tickets   repository.MaintenanceTicketRepositoryInterface
	equipment repository.EquipmentRepositoryInterface
	clock     clock.Clock
	validator *validator.Validate
}

// NewMaintenanceTicketService creates a new maintenance ticket service
func NewMaintenanceTicketService(tickets repository.MaintenanceTicketRepositoryInterface, equipment repository.EquipmentRepositoryInterface, clk clock.Clock, validator *validator.Validate) *MaintenanceTicketService {
	return &MaintenanceTicketService{
		tickets:   tickets,
		equipment: equipment,
		clock:     clk,
		validator: validator,
	}
}

// CreateTicketRequest represents the request to open a maintenance ticket
type CreateTicketRequest struct {
	EquipmentID uuid.UUID         `json:"equipment_id" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Impact      string            `json:"impact"`
	TicketType  models.TicketType `json:"ticket_type" validate:"required,oneof=FAULT_REPORT PLANNED_MAINTENANCE"`
}

// UpdateTicketRequest is a partial update of a ticket
type UpdateTicketRequest struct {
	Description *string              `json:"description,omitempty" validate:"omitempty,min=1"`
	Impact      *string              `json:"impact,omitempty"`
	Status      *models.TicketStatus `json:"status,omitempty" validate:"omitempty,enum"`
}

func (r *UpdateTicketRequest) apply(ticket *models.MaintenanceTicket) {
	if r.Description != nil {
		ticket.Description = *r.Description
	}
	if r.Impact != nil {
		ticket.Impact = *r.Impact
	}
	if r.Status != nil {
		ticket.Status = *r.Status
	}
}

// CreateTicket opens a ticket on existing equipment
func (s *MaintenanceTicketService) CreateTicket(ctx context.Context, actorID uuid.UUID, req *CreateTicketRequest) (*models.MaintenanceTicket, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.equipment.GetByID(ctx, req.EquipmentID); err != nil {
		return nil, lookupError(err, apperrors.ErrEquipmentNotFound, "equipment")
	}

	ticket := &models.MaintenanceTicket{
		EquipmentID:     req.EquipmentID,
		Description:     req.Description,
		Impact:          req.Impact,
		TicketType:      req.TicketType,
		Status:          models.TicketStatusOpen,
		CreatedByUserID: actorID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create maintenance ticket: %w", err)
	}
	return ticket, nil
}

// GetTicket retrieves a ticket by ID
func (s *MaintenanceTicketService) GetTicket(ctx context.Context, id uuid.UUID) (*models.MaintenanceTicket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMaintenanceTicketNotFound, "maintenance ticket")
	}
	return ticket, nil
}

// ListTickets retrieves all tickets, newest first
func (s *MaintenanceTicketService) ListTickets(ctx context.Context) ([]models.MaintenanceTicket, error) {
	tickets, err := s.tickets.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance tickets: %w", err)
	}
	return tickets, nil
}

// UpdateTicket applies a partial update. Moving to COMPLETED stamps completed_at;
// reopening clears it.
func (s *MaintenanceTicketService) UpdateTicket(ctx context.Context, id uuid.UUID, req *UpdateTicketRequest) (*models.MaintenanceTicket, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ticket, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCompleted := ticket.Status == models.TicketStatusCompleted
	req.apply(ticket)
	switch {
	case ticket.Status == models.TicketStatusCompleted && !wasCompleted:
		now := s.clock.Now()
		ticket.CompletedAt = &now
	case ticket.Status != models.TicketStatusCompleted:
		ticket.CompletedAt = nil
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update maintenance ticket: %w", err)
	}
	return ticket, nil
}
