package handlers

import (
	"net/http"

	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/gin-gonic/gin"
)

// recordsHandler handles HTTP requests for the tenant-owned records:
// clients, suppliers, bookings, invoices and payments.
type recordsHandler struct {
	recordsService portssvc.RecordsSvcFacade
}

func newRecordsHandler(rs portssvc.RecordsSvcFacade) *recordsHandler {
	return &recordsHandler{recordsService: rs}
}

// registerRecordRoutes registers routes for the CRUD records and the dashboard.
func registerRecordRoutes(rg *gin.RouterGroup, recordsService portssvc.RecordsSvcFacade) {
	h := newRecordsHandler(recordsService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.PUT("/:client_id", h.updateClient)
		clients.DELETE("/:client_id", h.deleteClient)
	}

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.PUT("/:supplier_id", h.updateSupplier)
		suppliers.DELETE("/:supplier_id", h.deleteSupplier)
	}

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
	}

	rg.GET("/dashboard", h.dashboard)
}

// createClient godoc
// @Summary Create a client
// @Tags records
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func (h *recordsHandler) createClient(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.recordsService.CreateClient(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Tags records
// @Produce json
// @Success 200 {object} dto.ListClientsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *recordsHandler) listClients(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	clients, err := h.recordsService.ListClients(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// updateClient godoc
// @Summary Update a client
// @Tags records
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param client body dto.CreateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{client_id} [put]
func (h *recordsHandler) updateClient(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.recordsService.UpdateClient(c.Request.Context(), caller, c.Param("client_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Tags records
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Client has dependent records"
// @Security BearerAuth
// @Router /clients/{client_id} [delete]
func (h *recordsHandler) deleteClient(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	if err := h.recordsService.DeleteClient(c.Request.Context(), caller, c.Param("client_id")); err != nil {
		respondWithError(c, err, "Failed to delete client")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSupplier godoc
// @Summary Create a supplier
// @Tags records
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *recordsHandler) createSupplier(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.recordsService.CreateSupplier(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags records
// @Produce json
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *recordsHandler) listSuppliers(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	suppliers, err := h.recordsService.ListSuppliers(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags records
// @Accept json
// @Produce json
// @Param supplier_id path string true "Supplier ID"
// @Param supplier body dto.CreateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{supplier_id} [put]
func (h *recordsHandler) updateSupplier(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	supplier, err := h.recordsService.UpdateSupplier(c.Request.Context(), caller, c.Param("supplier_id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags records
// @Produce json
// @Param supplier_id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Supplier has dependent records"
// @Security BearerAuth
// @Router /suppliers/{supplier_id} [delete]
func (h *recordsHandler) deleteSupplier(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	if err := h.recordsService.DeleteSupplier(c.Request.Context(), caller, c.Param("supplier_id")); err != nil {
		respondWithError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}

// createBooking godoc
// @Summary Create a booking
// @Description Records a booking linking a client to a supplier.
// @Tags records
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown client or supplier"
// @Security BearerAuth
// @Router /bookings [post]
func (h *recordsHandler) createBooking(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.recordsService.CreateBooking(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Tags records
// @Produce json
// @Success 200 {object} dto.ListBookingsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *recordsHandler) listBookings(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	bookings, err := h.recordsService.ListBookings(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBookingsResponse(bookings))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Issues a numbered invoice. The TTC amount is derived from the HT amount and TVA rate.
// @Tags records
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown client"
// @Security BearerAuth
// @Router /invoices [post]
func (h *recordsHandler) createInvoice(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.recordsService.CreateInvoice(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags records
// @Produce json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *recordsHandler) listInvoices(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	invoices, err := h.recordsService.ListInvoices(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment against an invoice. The invoice flips to PAID once payments cover its TTC amount.
// @Tags records
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown invoice"
// @Security BearerAuth
// @Router /payments [post]
func (h *recordsHandler) createPayment(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, err := h.recordsService.CreatePayment(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Tags records
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [get]
func (h *recordsHandler) listPayments(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	payments, err := h.recordsService.ListPayments(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// dashboard godoc
// @Summary Dashboard snapshot
// @Description Returns today's income, unpaid invoice count, bookings over the last week and the latest approved cashbox balance, scoped to the caller.
// @Tags records
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *recordsHandler) dashboard(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	data, err := h.recordsService.Dashboard(c.Request.Context(), caller)
	if err != nil {
		respondWithError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}
