package handlers

import (
	"net/http"

	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/gin-gonic/gin"
)

// dailyReportHandler handles HTTP requests related to daily reports.
type dailyReportHandler struct {
	reportService portssvc.DailyReportSvcFacade
}

func newDailyReportHandler(rs portssvc.DailyReportSvcFacade) *dailyReportHandler {
	return &dailyReportHandler{reportService: rs}
}

// RegisterDailyReportRoutes registers routes for the daily report lifecycle.
func RegisterDailyReportRoutes(rg *gin.RouterGroup, reportService portssvc.DailyReportSvcFacade) {
	h := newDailyReportHandler(reportService)

	reports := rg.Group("/daily-reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.GET("/:report_id", h.getReport)
		reports.POST("/:report_id/approve", h.approveReport)
		reports.POST("/:report_id/reject", h.rejectReport)
	}
}

// submitReport godoc
// @Summary Submit a daily report
// @Description Submits the end-of-day report for an agency and business date. Re-submission while pending updates the existing report.
// @Tags daily-reports
// @Accept json
// @Produce json
// @Param report body dto.SubmitDailyReportRequest true "Report details"
// @Success 201 {object} dto.SubmitDailyReportResponse
// @Success 200 {object} dto.SubmitDailyReportResponse "Existing pending report updated"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Report for this day already reviewed"
// @Security BearerAuth
// @Router /daily-reports [post]
func (h *dailyReportHandler) submitReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.SubmitDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	report, wasUpdated, err := h.reportService.SubmitDailyReport(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to submit daily report")
		return
	}

	status := http.StatusCreated
	if wasUpdated {
		status = http.StatusOK
	}
	c.JSON(status, dto.SubmitDailyReportResponse{
		Report:     dto.ToDailyReportResponse(report),
		WasUpdated: wasUpdated,
	})
}

// listReports godoc
// @Summary List daily reports
// @Description Lists daily reports visible to the caller, optionally bounded by from/to dates.
// @Tags daily-reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListDailyReportsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-reports [get]
func (h *dailyReportHandler) listReports(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	rng, err := parseDateRangeQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}

	reports, err := h.reportService.ListDailyReports(c.Request.Context(), caller, rng)
	if err != nil {
		respondWithError(c, err, "Failed to list daily reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDailyReportsResponse(reports))
}

// getReport godoc
// @Summary Get a daily report
// @Tags daily-reports
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-reports/{report_id} [get]
func (h *dailyReportHandler) getReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetDailyReportByID(c.Request.Context(), caller, c.Param("report_id"))
	if err != nil {
		respondWithError(c, err, "Failed to get daily report")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// approveReport godoc
// @Summary Approve a daily report
// @Description Moves a pending report to Approved. Reviewer roles only.
// @Tags daily-reports
// @Produce json
// @Param report_id path string true "Report ID"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Report already reviewed"
// @Security BearerAuth
// @Router /daily-reports/{report_id}/approve [post]
func (h *dailyReportHandler) approveReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	report, err := h.reportService.ApproveDailyReport(c.Request.Context(), caller, c.Param("report_id"))
	if err != nil {
		respondWithError(c, err, "Failed to approve daily report")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// rejectReport godoc
// @Summary Reject a daily report
// @Description Moves a pending report to Rejected with a mandatory reason.
// @Tags daily-reports
// @Accept json
// @Produce json
// @Param report_id path string true "Report ID"
// @Param rejection body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-reports/{report_id}/reject [post]
func (h *dailyReportHandler) rejectReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reportService.RejectDailyReport(c.Request.Context(), caller, c.Param("report_id"), req.Reason)
	if err != nil {
		respondWithError(c, err, "Failed to reject daily report")
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}
