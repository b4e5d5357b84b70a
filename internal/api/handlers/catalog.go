package handlers

import (
	"net/http"
	"strconv"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles HTTP requests for equipment, tanks, scheduled tasks and operational parameters
type CatalogHandler struct {
	service service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// activeOnly reads the optional active_only query flag
func activeOnly(c *gin.Context) (bool, bool) {
	raw := c.Query("active_only")
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid active_only flag"})
		return false, false
	}
	return v, true
}

// CreateEquipment registers equipment
// @Summary Create equipment
// @Tags catalog
// @Accept json
// @Produce json
// @Param equipment body service.CreateEquipmentRequest true "Equipment data"
// @Success 201 {object} models.Equipment "Created equipment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /equipment [post]
func (h *CatalogHandler) CreateEquipment(c *gin.Context) {
	var req service.CreateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	equipment, err := h.service.CreateEquipment(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, equipment)
}

// ListEquipment lists all equipment
// @Summary List equipment
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Equipment "Equipment"
// @Security BearerAuth
// @Router /equipment [get]
func (h *CatalogHandler) ListEquipment(c *gin.Context) {
	equipment, err := h.service.ListEquipment(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment returns equipment by ID
// @Summary Get equipment by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Success 200 {object} models.Equipment "Equipment"
// @Failure 400 {object} ErrorResponse "Invalid equipment ID"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *CatalogHandler) GetEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "equipment")
	if !ok {
		return
	}

	equipment, err := h.service.GetEquipment(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// UpdateEquipment applies a partial update to equipment
// @Summary Update equipment
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID (UUID)"
// @Param equipment body service.UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} models.Equipment "Updated equipment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *CatalogHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "equipment")
	if !ok {
		return
	}

	var req service.UpdateEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}

	equipment, err := h.service.UpdateEquipment(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// DeleteEquipment deletes equipment
// @Summary Delete equipment
// @Tags catalog
// @Param id path string true "Equipment ID (UUID)"
// @Success 204 "Equipment deleted"
// @Failure 404 {object} ErrorResponse "Equipment not found"
// @Failure 409 {object} ErrorResponse "Equipment is referenced"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *CatalogHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "equipment")
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTank registers a tank
// @Summary Create tank
// @Tags catalog
// @Accept json
// @Produce json
// @Param tank body service.CreateTankRequest true "Tank data"
// @Success 201 {object} models.Tank "Created tank"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Tank already exists"
// @Security BearerAuth
// @Router /tanks [post]
func (h *CatalogHandler) CreateTank(c *gin.Context) {
	var req service.CreateTankRequest
	if !bindJSON(c, &req) {
		return
	}

	tank, err := h.service.CreateTank(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tank)
}

// ListTanks lists all tanks
// @Summary List tanks
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Tank "Tanks"
// @Security BearerAuth
// @Router /tanks [get]
func (h *CatalogHandler) ListTanks(c *gin.Context) {
	tanks, err := h.service.ListTanks(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tanks)
}

// GetTank returns a tank by ID
// @Summary Get tank by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Tank ID (UUID)"
// @Success 200 {object} models.Tank "Tank"
// @Failure 404 {object} ErrorResponse "Tank not found"
// @Security BearerAuth
// @Router /tanks/{id} [get]
func (h *CatalogHandler) GetTank(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "tank")
	if !ok {
		return
	}

	tank, err := h.service.GetTank(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tank)
}

// UpdateTank applies a partial update to a tank
// @Summary Update tank
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Tank ID (UUID)"
// @Param tank body service.UpdateTankRequest true "Fields to change"
// @Success 200 {object} models.Tank "Updated tank"
// @Failure 404 {object} ErrorResponse "Tank not found"
// @Security BearerAuth
// @Router /tanks/{id} [put]
func (h *CatalogHandler) UpdateTank(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "tank")
	if !ok {
		return
	}

	var req service.UpdateTankRequest
	if !bindJSON(c, &req) {
		return
	}

	tank, err := h.service.UpdateTank(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tank)
}

// DeleteTank deletes a tank
// @Summary Delete tank
// @Tags catalog
// @Param id path string true "Tank ID (UUID)"
// @Success 204 "Tank deleted"
// @Failure 404 {object} ErrorResponse "Tank not found"
// @Failure 409 {object} ErrorResponse "Tank is referenced"
// @Security BearerAuth
// @Router /tanks/{id} [delete]
func (h *CatalogHandler) DeleteTank(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "tank")
	if !ok {
		return
	}

	if err := h.service.DeleteTank(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateScheduledTask creates a scheduled task
// @Summary Create scheduled task
// @Tags catalog
// @Accept json
// @Produce json
// @Param task body service.CreateScheduledTaskRequest true "Task data"
// @Success 201 {object} models.ScheduledTask "Created task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /scheduled-tasks [post]
func (h *CatalogHandler) CreateScheduledTask(c *gin.Context) {
	var req service.CreateScheduledTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.CreateScheduledTask(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListScheduledTasks lists scheduled tasks
// @Summary List scheduled tasks
// @Tags catalog
// @Produce json
// @Param active_only query bool false "Only active tasks"
// @Success 200 {array} models.ScheduledTask "Tasks"
// @Security BearerAuth
// @Router /scheduled-tasks [get]
func (h *CatalogHandler) ListScheduledTasks(c *gin.Context) {
	only, ok := activeOnly(c)
	if !ok {
		return
	}

	tasks, err := h.service.ListScheduledTasks(c, only)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateScheduledTask applies a partial update to a scheduled task
// @Summary Update scheduled task
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param task body service.UpdateScheduledTaskRequest true "Fields to change"
// @Success 200 {object} models.ScheduledTask "Updated task"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /scheduled-tasks/{id} [put]
func (h *CatalogHandler) UpdateScheduledTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "scheduled task")
	if !ok {
		return
	}

	var req service.UpdateScheduledTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.UpdateScheduledTask(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateOperationalParameter creates an operational parameter
// @Summary Create operational parameter
// @Tags catalog
// @Accept json
// @Produce json
// @Param parameter body service.CreateOperationalParameterRequest true "Parameter data"
// @Success 201 {object} models.OperationalParameter "Created parameter"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Parameter already exists"
// @Security BearerAuth
// @Router /operational-parameters [post]
func (h *CatalogHandler) CreateOperationalParameter(c *gin.Context) {
	var req service.CreateOperationalParameterRequest
	if !bindJSON(c, &req) {
		return
	}

	parameter, err := h.service.CreateOperationalParameter(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, parameter)
}

// ListOperationalParameters lists operational parameters
// @Summary List operational parameters
// @Tags catalog
// @Produce json
// @Param active_only query bool false "Only active parameters"
// @Success 200 {array} models.OperationalParameter "Parameters"
// @Security BearerAuth
// @Router /operational-parameters [get]
func (h *CatalogHandler) ListOperationalParameters(c *gin.Context) {
	only, ok := activeOnly(c)
	if !ok {
		return
	}

	parameters, err := h.service.ListOperationalParameters(c, only)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parameters)
}

// UpdateOperationalParameter applies a partial update to an operational parameter
// @Summary Update operational parameter
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Parameter ID (UUID)"
// @Param parameter body service.UpdateOperationalParameterRequest true "Fields to change"
// @Success 200 {object} models.OperationalParameter "Updated parameter"
// @Failure 404 {object} ErrorResponse "Parameter not found"
// @Security BearerAuth
// @Router /operational-parameters/{id} [put]
func (h *CatalogHandler) UpdateOperationalParameter(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "operational parameter")
	if !ok {
		return
	}

	var req service.UpdateOperationalParameterRequest
	if !bindJSON(c, &req) {
		return
	}

	parameter, err := h.service.UpdateOperationalParameter(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parameter)
}
