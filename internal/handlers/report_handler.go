package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greenloop/ewaste-rewards-backend/internal/models"
	"github.com/greenloop/ewaste-rewards-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// ReportHandler handles e-waste report HTTP requests
type ReportHandler struct {
	reportService *services.ReportService
	log           *logrus.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *services.ReportService, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		log:           log,
	}
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		DeviceType string `json:"deviceType" binding:"required"`
		Brand      string `json:"brand" binding:"required"`
		Model      string `json:"model" binding:"required"`
		Condition  string `json:"condition" binding:"required"`
		Location   string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.EWasteReport{
		DeviceType: req.DeviceType,
		Brand:      req.Brand,
		Model:      req.Model,
		Condition:  req.Condition,
		Location:   req.Location,
	}
	if err := h.reportService.CreateReport(c.Request.Context(), report, userID); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetMyReports handles GET /reports/my
func (h *ReportHandler) GetMyReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, limit := pagination(c)

	reports, err := h.reportService.GetReportsByUser(c.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetAllReports handles GET /admin/reports
func (h *ReportHandler) GetAllReports(c *gin.Context) {
	page, limit := pagination(c)
	status := c.Query("status")

	reports, err := h.reportService.GetAllReports(c.Request.Context(), status, page, limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReportByID handles GET /admin/reports/:id
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetReportByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateStatus handles PATCH /admin/reports/:id/status
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /admin/reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}
