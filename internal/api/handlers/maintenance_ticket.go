package handlers

import (
	"net/http"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceTicketHandler handles HTTP requests for maintenance tickets
type MaintenanceTicketHandler struct {
	service service.MaintenanceTicketServiceInterface
}

// NewMaintenanceTicketHandler creates a new maintenance ticket handler
func NewMaintenanceTicketHandler(service service.MaintenanceTicketServiceInterface) *MaintenanceTicketHandler {
	return &MaintenanceTicketHandler{service: service}
}

// CreateTicket opens a maintenance ticket
// @Summary Create maintenance ticket
// @Tags maintenance-tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket data"
// @Success 201 {object} models.MaintenanceTicket "Created ticket"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /maintenance-tickets [post]
func (h *MaintenanceTicketHandler) CreateTicket(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.service.CreateTicket(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// ListTickets lists maintenance tickets
// @Summary List maintenance tickets
// @Tags maintenance-tickets
// @Produce json
// @Success 200 {array} models.MaintenanceTicket "Tickets"
// @Security BearerAuth
// @Router /maintenance-tickets [get]
func (h *MaintenanceTicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.service.ListTickets(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetTicket returns a maintenance ticket
// @Summary Get maintenance ticket by ID
// @Tags maintenance-tickets
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Success 200 {object} models.MaintenanceTicket "Ticket"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /maintenance-tickets/{id} [get]
func (h *MaintenanceTicketHandler) GetTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "ticket")
	if !ok {
		return
	}

	ticket, err := h.service.GetTicket(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// UpdateTicket applies a partial update to a maintenance ticket
// @Summary Update maintenance ticket
// @Description Moving a ticket to COMPLETED records the completion time
// @Tags maintenance-tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID (UUID)"
// @Param ticket body service.UpdateTicketRequest true "Fields to change"
// @Success 200 {object} models.MaintenanceTicket "Updated ticket"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Ticket not found"
// @Security BearerAuth
// @Router /maintenance-tickets/{id} [put]
func (h *MaintenanceTicketHandler) UpdateTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "ticket")
	if !ok {
		return
	}

	var req service.UpdateTicketRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.service.UpdateTicket(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
