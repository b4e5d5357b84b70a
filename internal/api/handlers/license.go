package handlers

import (
	"net/http"

	"control-room-backend/internal/database/models"
	"control-room-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LicenseHandler handles HTTP requests for work licenses
type LicenseHandler struct {
	service service.LicenseServiceInterface
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(service service.LicenseServiceInterface) *LicenseHandler {
	return &LicenseHandler{service: service}
}

// CreateLicense grants a work license
// @Summary Create license
// @Tags licenses
// @Accept json
// @Produce json
// @Param license body service.CreateLicenseRequest true "License data"
// @Success 201 {object} models.License "Created license"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "License number already in use"
// @Security BearerAuth
// @Router /licenses [post]
func (h *LicenseHandler) CreateLicense(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req service.CreateLicenseRequest
	if !bindJSON(c, &req) {
		return
	}

	license, err := h.service.CreateLicense(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, license)
}

// ListLicenses lists licenses
// @Summary List licenses
// @Tags licenses
// @Produce json
// @Param status query string false "Filter by status" Enums(ACTIVE, CLOSED)
// @Success 200 {array} models.License "Licenses"
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Security BearerAuth
// @Router /licenses [get]
func (h *LicenseHandler) ListLicenses(c *gin.Context) {
	var status *models.LicenseStatus
	if raw := c.Query("status"); raw != "" {
		s := models.LicenseStatus(raw)
		if s != models.LicenseStatusActive && s != models.LicenseStatusClosed {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid license status " + raw})
			return
		}
		status = &s
	}

	licenses, err := h.service.ListLicenses(c, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, licenses)
}

// GetLicense returns a license
// @Summary Get license by ID
// @Tags licenses
// @Produce json
// @Param id path string true "License ID (UUID)"
// @Success 200 {object} models.License "License"
// @Failure 404 {object} ErrorResponse "License not found"
// @Security BearerAuth
// @Router /licenses/{id} [get]
func (h *LicenseHandler) GetLicense(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "license")
	if !ok {
		return
	}

	license, err := h.service.GetLicense(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, license)
}

// CloseLicense closes an active license
// @Summary Close license
// @Tags licenses
// @Produce json
// @Param id path string true "License ID (UUID)"
// @Success 200 {object} models.License "Closed license"
// @Failure 404 {object} ErrorResponse "License not found"
// @Failure 409 {object} ErrorResponse "License is already closed"
// @Security BearerAuth
// @Router /licenses/{id}/close [put]
func (h *LicenseHandler) CloseLicense(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "license")
	if !ok {
		return
	}

	license, err := h.service.CloseLicense(c, id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, license)
}
