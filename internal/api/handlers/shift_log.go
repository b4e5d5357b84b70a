package handlers

import (
	"net/http"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftLogHandler handles HTTP requests for the per-shift logs
type ShiftLogHandler struct {
	service service.ShiftLogServiceInterface
}

// NewShiftLogHandler creates a new shift log handler
func NewShiftLogHandler(service service.ShiftLogServiceInterface) *ShiftLogHandler {
	return &ShiftLogHandler{service: service}
}

// AppendLog returns the handler appending entries of kind to a shift
// @Summary Append a shift log entry
// @Description Append to one of the logs of an open shift. Only the current holder may write. The body shape depends on the log kind.
// @Tags shift-logs
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param kind path string true "Log kind" Enums(equipment-status, events, task-logs, novelties, ramps, tank-readings, operational-readings)
// @Param entry body object true "Log entry"
// @Success 201 {object} map[string]interface{} "Stored entry"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not the shift holder"
// @Failure 404 {object} ErrorResponse "Shift or referenced catalog entry not found"
// @Failure 409 {object} ErrorResponse "Shift is already closed"
// @Security BearerAuth
// @Router /shifts/{id}/{kind} [post]
func (h *ShiftLogHandler) AppendLog(kind service.LogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := actorID(c)
		if !ok {
			return
		}
		shiftID, ok := parseIDParam(c, "id", "shift")
		if !ok {
			return
		}

		payload, ok := service.NewLogPayload(kind)
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown log kind " + string(kind)})
			return
		}
		if !bindJSON(c, payload) {
			return
		}

		entry, err := h.service.AppendLog(c, shiftID, userID, payload)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// ListLogs returns the handler listing entries of kind for a shift
// @Summary List shift log entries
// @Description List one log of a shift, oldest first. Logs of closed shifts remain readable.
// @Tags shift-logs
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param kind path string true "Log kind" Enums(equipment-status, events, task-logs, novelties, ramps, tank-readings, operational-readings)
// @Success 200 {array} map[string]interface{} "Entries"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id}/{kind} [get]
func (h *ShiftLogHandler) ListLogs(kind service.LogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		shiftID, ok := parseIDParam(c, "id", "shift")
		if !ok {
			return
		}

		entries, err := h.service.ListLogs(c, shiftID, kind)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}
