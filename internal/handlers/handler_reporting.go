package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the cross-agency rollups.
type reportingHandler struct {
	aggregatorService portssvc.AggregatorSvcFacade
}

func newReportingHandler(as portssvc.AggregatorSvcFacade) *reportingHandler {
	return &reportingHandler{aggregatorService: as}
}

// registerReportingRoutes registers the aggregate report routes.
func registerReportingRoutes(rg *gin.RouterGroup, aggregatorService portssvc.AggregatorSvcFacade) {
	h := newReportingHandler(aggregatorService)

	reports := rg.Group("/reports")
	{
		reports.GET("/sales", h.salesReport)
		reports.GET("/aging", h.agingReport)
		reports.GET("/summary", h.summaryReport)
	}
}

// parseAgencyIDsQuery reads the optional agency_ids filter. Both repeated
// parameters and a single comma-separated value are accepted; nil means no
// explicit filter.
func parseAgencyIDsQuery(c *gin.Context) []string {
	var ids []string
	for _, raw := range c.QueryArray("agency_ids") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func parseGroupedQuery(c *gin.Context) (bool, error) {
	raw := c.Query("grouped")
	if raw == "" {
		return false, nil
	}
	grouped, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Join(apperrors.ErrValidation, errors.New("grouped must be a boolean"))
	}
	return grouped, nil
}

// salesReport godoc
// @Summary Cross-agency sales report
// @Description Aggregates invoice sales per agency and per day or month. The agency filter is intersected with the caller's read scope.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param grouping query string false "Bucket granularity: day or month" default(day)
// @Param grouped query bool false "Partition rows per agency with subtotals"
// @Param agency_ids query []string false "Restrict to these agencies"
// @Success 200 {object} dto.AggregateReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/sales [get]
func (h *reportingHandler) salesReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	rng, err := parseDateRangeQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}
	effective := domain.DateRange{To: time.Now()}
	if rng != nil {
		effective = *rng
	}

	grouping := domain.GroupByDay
	switch strings.ToLower(c.Query("grouping")) {
	case "", "day":
	case "month":
		grouping = domain.GroupByMonth
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "grouping must be day or month"})
		return
	}

	grouped, err := parseGroupedQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid grouped flag")
		return
	}

	report, err := h.aggregatorService.SalesReport(c.Request.Context(), caller, effective, parseAgencyIDsQuery(c), grouping, grouped)
	if err != nil {
		respondWithError(c, err, "Failed to build sales report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAggregateReportResponse(report))
}

// agingReport godoc
// @Summary Receivables aging report
// @Description Lists unpaid invoices past their due date as of a reference date, most overdue first.
// @Tags reports
// @Produce json
// @Param as_of query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param grouped query bool false "Partition rows per agency with subtotals"
// @Param agency_ids query []string false "Restrict to these agencies"
// @Success 200 {object} dto.AggregateReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/aging [get]
func (h *reportingHandler) agingReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	grouped, err := parseGroupedQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid grouped flag")
		return
	}

	report, err := h.aggregatorService.AgingReport(c.Request.Context(), caller, asOf, parseAgencyIDsQuery(c), grouped)
	if err != nil {
		respondWithError(c, err, "Failed to build aging report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAggregateReportResponse(report))
}

// summaryReport godoc
// @Summary Activity summary report
// @Description Rolls up operation sales and discounts per service plus booking volume per agency over a period.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param grouped query bool false "Partition rows per agency with subtotals"
// @Param agency_ids query []string false "Restrict to these agencies"
// @Success 200 {object} dto.AggregateReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summaryReport(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	rng, err := parseDateRangeQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}
	effective := domain.DateRange{To: time.Now()}
	if rng != nil {
		effective = *rng
	}

	grouped, err := parseGroupedQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid grouped flag")
		return
	}

	report, err := h.aggregatorService.SummaryReport(c.Request.Context(), caller, effective, parseAgencyIDsQuery(c), grouped)
	if err != nil {
		respondWithError(c, err, "Failed to build summary report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAggregateReportResponse(report))
}
