package handlers

import (
	"net/http"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonnelHandler handles HTTP requests for positions, employees and shift groups
type PersonnelHandler struct {
	service service.PersonnelServiceInterface
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(service service.PersonnelServiceInterface) *PersonnelHandler {
	return &PersonnelHandler{service: service}
}

// CreatePosition creates a new position
// @Summary Create a position
// @Tags personnel
// @Accept json
// @Produce json
// @Param position body service.CreatePositionRequest true "Position data"
// @Success 201 {object} models.Position "Created position"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Position already exists"
// @Security BearerAuth
// @Router /personnel/positions [post]
func (h *PersonnelHandler) CreatePosition(c *gin.Context) {
	var req service.CreatePositionRequest
	if !bindJSON(c, &req) {
		return
	}

	position, err := h.service.CreatePosition(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// ListPositions lists all positions
// @Summary List positions
// @Tags personnel
// @Produce json
// @Success 200 {array} models.Position "Positions"
// @Security BearerAuth
// @Router /personnel/positions [get]
func (h *PersonnelHandler) ListPositions(c *gin.Context) {
	positions, err := h.service.ListPositions(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, positions)
}

// CreateEmployee creates a new employee
// @Summary Create an employee
// @Tags personnel
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee "Created employee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Base position not found"
// @Failure 409 {object} ErrorResponse "Badge already in use"
// @Security BearerAuth
// @Router /personnel/employees [post]
func (h *PersonnelHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.service.CreateEmployee(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListEmployees lists all employees
// @Summary List employees
// @Tags personnel
// @Produce json
// @Success 200 {array} models.Employee "Employees"
// @Security BearerAuth
// @Router /personnel/employees [get]
func (h *PersonnelHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee applies a partial update to an employee
// @Summary Update an employee
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} models.Employee "Updated employee"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Employee or position not found"
// @Failure 409 {object} ErrorResponse "Badge already in use"
// @Security BearerAuth
// @Router /personnel/employees/{id} [put]
func (h *PersonnelHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "employee")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.service.UpdateEmployee(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateGroup creates a new shift group
// @Summary Create a shift group
// @Tags personnel
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Created group"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Group already exists"
// @Security BearerAuth
// @Router /personnel/groups [post]
func (h *PersonnelHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.service.CreateGroup(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListGroups lists all shift groups
// @Summary List shift groups
// @Tags personnel
// @Produce json
// @Success 200 {array} service.GroupResponse "Groups"
// @Security BearerAuth
// @Router /personnel/groups [get]
func (h *PersonnelHandler) ListGroups(c *gin.Context) {
	groups, err := h.service.ListGroups(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup returns a shift group with its members
// @Summary Get shift group by ID
// @Tags personnel
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupWithMembersResponse "Group with members"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /personnel/groups/{id} [get]
func (h *PersonnelHandler) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "group")
	if !ok {
		return
	}

	group, err := h.service.GetGroup(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a shift group
// @Summary Delete a shift group
// @Description Groups referenced by a shift cannot be deleted
// @Tags personnel
// @Param id path string true "Group ID (UUID)"
// @Success 204 "Group deleted"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group is referenced by shifts"
// @Security BearerAuth
// @Router /personnel/groups/{id} [delete]
func (h *PersonnelHandler) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "group")
	if !ok {
		return
	}

	if err := h.service.DeleteGroup(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember adds an employee to a shift group
// @Summary Add employee to group
// @Tags personnel
// @Param id path string true "Group ID (UUID)"
// @Param employee_id path string true "Employee ID (UUID)"
// @Success 204 "Member added"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Group or employee not found"
// @Failure 409 {object} ErrorResponse "Employee already in group"
// @Security BearerAuth
// @Router /personnel/groups/{id}/members/{employee_id} [post]
func (h *PersonnelHandler) AddMember(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id", "group")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id", "employee")
	if !ok {
		return
	}

	if err := h.service.AddEmployeeToGroup(c, groupID, employeeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember removes an employee from a shift group
// @Summary Remove employee from group
// @Tags personnel
// @Param id path string true "Group ID (UUID)"
// @Param employee_id path string true "Employee ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Group or membership not found"
// @Security BearerAuth
// @Router /personnel/groups/{id}/members/{employee_id} [delete]
func (h *PersonnelHandler) RemoveMember(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id", "group")
	if !ok {
		return
	}
	employeeID, ok := parseIDParam(c, "employee_id", "employee")
	if !ok {
		return
	}

	if err := h.service.RemoveEmployeeFromGroup(c, groupID, employeeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
