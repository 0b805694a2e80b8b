package handlers

import (
	"net/http"

	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/gin-gonic/gin"
)

// agencyHandler handles HTTP requests related to agencies.
type agencyHandler struct {
	agencyService portssvc.AgencySvcFacade
}

func newAgencyHandler(as portssvc.AgencySvcFacade) *agencyHandler {
	return &agencyHandler{agencyService: as}
}

// registerAgencyRoutes registers routes related to agencies.
func registerAgencyRoutes(rg *gin.RouterGroup, agencyService portssvc.AgencySvcFacade) {
	h := newAgencyHandler(agencyService)

	agencies := rg.Group("/agencies")
	{
		agencies.POST("", h.createAgency)
		agencies.GET("", h.listAgencies)
		agencies.GET("/:agency_id", h.getAgency)
		agencies.PUT("/:agency_id", h.updateAgency)
		agencies.DELETE("/:agency_id", h.deleteAgency)
	}
}

// createAgency godoc
// @Summary Create a new agency
// @Description Creates a travel agency branch. Super admin only.
// @Tags agencies
// @Accept json
// @Produce json
// @Param agency body dto.CreateAgencyRequest true "Agency details"
// @Success 201 {object} dto.AgencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /agencies [post]
func (h *agencyHandler) createAgency(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	agency, err := h.agencyService.CreateAgency(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create agency")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAgencyResponse(agency))
}

// listAgencies godoc
// @Summary List agencies
// @Description Lists agencies visible to the caller (all for central roles, own for staff).
// @Tags agencies
// @Produce json
// @Success 200 {object} dto.ListAgenciesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /agencies [get]
func (h *agencyHandler) listAgencies(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	agencies, err := h.agencyService.ListAgencies(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list agencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAgenciesResponse(agencies))
}

// getAgency godoc
// @Summary Get an agency
// @Tags agencies
// @Produce json
// @Param agency_id path string true "Agency ID"
// @Success 200 {object} dto.AgencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /agencies/{agency_id} [get]
func (h *agencyHandler) getAgency(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	agency, err := h.agencyService.GetAgencyByID(c.Request.Context(), caller, c.Param("agency_id"))
	if err != nil {
		respondWithError(c, err, "Failed to get agency")
		return
	}
	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}

// updateAgency godoc
// @Summary Update an agency
// @Description Updates agency details. Super admin only.
// @Tags agencies
// @Accept json
// @Produce json
// @Param agency_id path string true "Agency ID"
// @Param agency body dto.UpdateAgencyRequest true "Fields to update"
// @Success 200 {object} dto.AgencyResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /agencies/{agency_id} [put]
func (h *agencyHandler) updateAgency(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	agency, err := h.agencyService.UpdateAgency(c.Request.Context(), caller, c.Param("agency_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update agency")
		return
	}
	c.JSON(http.StatusOK, dto.ToAgencyResponse(agency))
}

// deleteAgency godoc
// @Summary Delete an agency
// @Description Deletes an agency with no dependent records. Super admin only.
// @Tags agencies
// @Produce json
// @Param agency_id path string true "Agency ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /agencies/{agency_id} [delete]
func (h *agencyHandler) deleteAgency(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	if err := h.agencyService.DeleteAgency(c.Request.Context(), caller, c.Param("agency_id")); err != nil {
		respondWithError(c, err, "Failed to delete agency")
		return
	}
	c.Status(http.StatusNoContent)
}
