package handlers

import (
	"net/http"

	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/gin-gonic/gin"
)

// dailyOperationHandler handles HTTP requests for the service catalog and
// daily operations.
type dailyOperationHandler struct {
	operationService portssvc.DailyOperationSvcFacade
}

func newDailyOperationHandler(os portssvc.DailyOperationSvcFacade) *dailyOperationHandler {
	return &dailyOperationHandler{operationService: os}
}

// registerDailyOperationRoutes registers routes for services and daily operations.
func registerDailyOperationRoutes(rg *gin.RouterGroup, operationService portssvc.DailyOperationSvcFacade) {
	h := newDailyOperationHandler(operationService)

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
	}

	operations := rg.Group("/daily-operations")
	{
		operations.POST("", h.createOperation)
		operations.GET("", h.listOperations)
		operations.GET("/:operation_id", h.getOperation)
		operations.POST("/:operation_id/approve", h.approveOperation)
		operations.POST("/:operation_id/reject", h.rejectOperation)
	}
}

// createService godoc
// @Summary Create a service offering
// @Description Adds a priced service to the agency's catalog.
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [post]
func (h *dailyOperationHandler) createService(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	svc, err := h.operationService.CreateService(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

// listServices godoc
// @Summary List service offerings
// @Tags services
// @Produce json
// @Success 200 {object} dto.ListServicesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [get]
func (h *dailyOperationHandler) listServices(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	services, err := h.operationService.ListServices(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToListServicesResponse(services))
}

// createOperation godoc
// @Summary Create a daily operation
// @Description Records a service rendered to a client. A non-zero discount requires a reason and files a discount request for review.
// @Tags daily-operations
// @Accept json
// @Produce json
// @Param operation body dto.CreateOperationRequest true "Operation details"
// @Success 201 {object} dto.OperationResponse
// @Failure 400 {object} ErrorResponse "Invalid input or discount below price floor"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown service"
// @Security BearerAuth
// @Router /daily-operations [post]
func (h *dailyOperationHandler) createOperation(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	op, err := h.operationService.CreateDailyOperation(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create daily operation")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOperationResponse(op))
}

// listOperations godoc
// @Summary List daily operations
// @Tags daily-operations
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListOperationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-operations [get]
func (h *dailyOperationHandler) listOperations(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	rng, err := parseDateRangeQuery(c)
	if err != nil {
		respondWithError(c, err, "Invalid date range")
		return
	}

	ops, err := h.operationService.ListDailyOperations(c.Request.Context(), caller, rng)
	if err != nil {
		respondWithError(c, err, "Failed to list daily operations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOperationsResponse(ops))
}

// getOperation godoc
// @Summary Get a daily operation
// @Tags daily-operations
// @Produce json
// @Param operation_id path string true "Operation ID"
// @Success 200 {object} dto.OperationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-operations/{operation_id} [get]
func (h *dailyOperationHandler) getOperation(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	op, err := h.operationService.GetDailyOperationByID(c.Request.Context(), caller, c.Param("operation_id"))
	if err != nil {
		respondWithError(c, err, "Failed to get daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.ToOperationResponse(op))
}

// approveOperation godoc
// @Summary Approve a daily operation
// @Description Moves a pending operation and its discount request to Approved in one step.
// @Tags daily-operations
// @Produce json
// @Param operation_id path string true "Operation ID"
// @Success 200 {object} dto.OperationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Operation already reviewed"
// @Security BearerAuth
// @Router /daily-operations/{operation_id}/approve [post]
func (h *dailyOperationHandler) approveOperation(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	op, err := h.operationService.ApproveDailyOperation(c.Request.Context(), caller, c.Param("operation_id"))
	if err != nil {
		respondWithError(c, err, "Failed to approve daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.ToOperationResponse(op))
}

// rejectOperation godoc
// @Summary Reject a daily operation
// @Description Moves a pending operation and its discount request to Rejected with a mandatory reason.
// @Tags daily-operations
// @Accept json
// @Produce json
// @Param operation_id path string true "Operation ID"
// @Param rejection body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.OperationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /daily-operations/{operation_id}/reject [post]
func (h *dailyOperationHandler) rejectOperation(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	op, err := h.operationService.RejectDailyOperation(c.Request.Context(), caller, c.Param("operation_id"), req.Reason)
	if err != nil {
		respondWithError(c, err, "Failed to reject daily operation")
		return
	}
	c.JSON(http.StatusOK, dto.ToOperationResponse(op))
}
