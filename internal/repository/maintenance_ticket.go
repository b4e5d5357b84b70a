package repository

import (
	"context"

	"control-room-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaintenanceTicketRepository handles database operations for maintenance tickets
type MaintenanceTicketRepository struct {
	db *gorm.DB
}

// NewMaintenanceTicketRepository creates a new maintenance ticket repository
func NewMaintenanceTicketRepository(db *gorm.DB) *MaintenanceTicketRepository {
	return &MaintenanceTicketRepository{db: db}
}

// Create creates a new ticket
func (r *MaintenanceTicketRepository) Create(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ticket).Error
}

// GetByID retrieves a ticket by ID
func (r *MaintenanceTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetAll retrieves all tickets, newest first
func (r *MaintenanceTicketRepository) GetAll(ctx context.Context) ([]models.MaintenanceTicket, error) {
	var tickets []models.MaintenanceTicket
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tickets).Error
	return tickets, err
}

// Update persists all fields of a ticket
func (r *MaintenanceTicketRepository) Update(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(ticket).Error
}
