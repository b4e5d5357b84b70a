package handlers

import (
	"net/http"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for the shift lifecycle
type ShiftHandler struct {
	shifts   service.ShiftServiceInterface
	handover service.HandoverServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shifts service.ShiftServiceInterface, handover service.HandoverServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shifts:   shifts,
		handover: handover,
	}
}

// OpenShift opens a shift held by the caller
// @Summary Open a shift
// @Description Open a shift for a group. The caller becomes the shift holder and the attendance sheet is built from the group's members.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.OpenShiftRequest true "Group to staff the shift"
// @Success 201 {object} service.ShiftResponse "Shift opened"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Another shift is already open"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) OpenShift(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.OpenShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.shifts.OpenShift(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetActiveShift returns the open shift held by the caller
// @Summary Get my active shift
// @Description Get the open shift whose current holder is the caller
// @Tags shifts
// @Produce json
// @Success 200 {object} service.ShiftResponse "Active shift"
// @Failure 404 {object} ErrorResponse "Caller holds no open shift"
// @Security BearerAuth
// @Router /shifts/active/me [get]
func (h *ShiftHandler) GetActiveShift(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	shift, err := h.shifts.GetActiveShiftForUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// Handover closes the caller's shift and opens the next one for the incoming operator
// @Summary Hand over a shift
// @Description Both operators confirm their passwords. The closed shift and the new shift with its attendance sheet are committed together or not at all.
// @Tags shifts
// @Accept json
// @Produce json
// @Param handover body service.HandoverRequest true "Handshake and next group"
// @Success 201 {object} service.ShiftResponse "Newly opened shift"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Outgoing or incoming credentials are invalid"
// @Failure 403 {object} ErrorResponse "Caller is not the shift holder"
// @Failure 404 {object} ErrorResponse "Shift or group not found"
// @Failure 409 {object} ErrorResponse "Shift is already closed"
// @Failure 500 {object} ErrorResponse "Handover rolled back"
// @Security BearerAuth
// @Router /shifts/handover [post]
func (h *ShiftHandler) Handover(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.HandoverRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.handover.Handover(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift returns a shift with its attendance sheet and all of its logs
// @Summary Get shift by ID
// @Description Get a shift with its attendance sheet and every log
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftDetailResponse "Shift details"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "shift")
	if !ok {
		return
	}

	shift, err := h.shifts.GetShiftDetails(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CloseShift closes the caller's shift without opening a new one
// @Summary Close a shift
// @Description Close an open shift. Only the current holder may close it.
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Closed shift"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 403 {object} ErrorResponse "Caller is not the shift holder"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift is already closed"
// @Security BearerAuth
// @Router /shifts/{id}/close [put]
func (h *ShiftHandler) CloseShift(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "shift")
	if !ok {
		return
	}

	shift, err := h.shifts.CloseShift(c, id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// AssignGroup re-targets an open shift to another group and rebuilds its attendance sheet
// @Summary Assign group to shift
// @Description Replace the scheduled group of an open shift. The attendance sheet is rebuilt from the new group's members.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param group body service.AssignGroupRequest true "New group"
// @Success 200 {object} service.ShiftResponse "Updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not the shift holder"
// @Failure 404 {object} ErrorResponse "Shift or group not found"
// @Failure 409 {object} ErrorResponse "Shift is already closed"
// @Security BearerAuth
// @Router /shifts/{id}/assign-group [post]
func (h *ShiftHandler) AssignGroup(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "shift")
	if !ok {
		return
	}

	var req service.AssignGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.shifts.AssignGroup(c, id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListAttendance returns the attendance sheet of a shift
// @Summary List shift attendance
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {array} models.ShiftAttendance "Attendance sheet"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/attendance [get]
func (h *ShiftHandler) ListAttendance(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "shift")
	if !ok {
		return
	}

	records, err := h.shifts.ListAttendance(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateAttendance patches one attendance record of an open shift
// @Summary Update attendance record
// @Description Record an absence or a replacement. Only the holder of the open shift may change its sheet.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Attendance record ID (UUID)"
// @Param attendance body service.UpdateAttendanceRequest true "Fields to change"
// @Success 200 {object} models.ShiftAttendance "Updated record"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not the shift holder"
// @Failure 404 {object} ErrorResponse "Record, employee or position not found"
// @Failure 409 {object} ErrorResponse "Shift is already closed"
// @Security BearerAuth
// @Router /attendance/{id} [patch]
func (h *ShiftHandler) UpdateAttendance(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "attendance record")
	if !ok {
		return
	}

	var req service.UpdateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.shifts.UpdateAttendance(c, id, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
