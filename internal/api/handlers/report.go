package handlers

import (
	"net/http"

	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the closed shift archive
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// ListReports lists closed shifts
// @Summary List closed shifts
// @Tags reports
// @Produce json
// @Success 200 {array} service.ShiftResponse "Closed shifts, most recent first"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	shifts, err := h.service.ListClosedShifts(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// GetReport returns a closed shift with all of its logs
// @Summary Get closed shift report
// @Tags reports
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftDetailResponse "Report"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "No closed shift with this ID"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "shift")
	if !ok {
		return
	}

	report, err := h.service.GetReport(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
