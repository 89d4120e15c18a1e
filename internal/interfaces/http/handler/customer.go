package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/crm/backend/internal/application/customer"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *appcustomer.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *appcustomer.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// parseID parses a path parameter that must be a positive integer ID.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Create a new customer record, optionally with nested addresses
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customer.CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      415 {object} dto.Response
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req appcustomer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err, "customer")
		return
	}

	resp, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/customers/%d", resp.CustomerID))
	h.Created(c, resp)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  List all customers, optionally filtered by a single attribute
// @Tags         customers
// @Produce      json
// @Param        nickname query string false "Filter by exact nickname"
// @Param        email query string false "Filter by exact email"
// @Param        birthday query string false "Filter by birthday (YYYY-MM-DD)"
// @Param        firstname query string false "Filter by first name (requires lastname)"
// @Param        lastname query string false "Filter by last name (requires firstname)"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter appcustomer.ListCustomersFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	resp, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get godoc
// @ID           getCustomer
// @Summary      Get customer by ID
// @Description  Retrieve a single customer with its addresses
// @Tags         customers
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	resp, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Description  Replace the state of an existing customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Param        request body customer.UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      415 {object} dto.Response
// @Router       /customers/{customerID} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req appcustomer.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err, "customer")
		return
	}

	resp, err := h.customerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Delete a customer and all of its addresses; deleting a missing customer still succeeds
// @Tags         customers
// @Param        customerID path int true "Customer ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response
// @Router       /customers/{customerID} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate godoc
// @ID           activateCustomer
// @Summary      Activate a customer
// @Description  Mark a customer as active
// @Tags         customers
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID}/activate [put]
func (h *CustomerHandler) Activate(c *gin.Context) {
	id, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	resp, err := h.customerService.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deactivate godoc
// @ID           deactivateCustomer
// @Summary      Deactivate a customer
// @Description  Mark a customer as inactive
// @Tags         customers
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID}/deactivate [delete]
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	resp, err := h.customerService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// RegisterRoutes registers customer routes on the given router group.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.POST("", h.Create)
		customers.GET(":customerID", h.Get)
		customers.PUT(":customerID", h.Update)
		customers.DELETE(":customerID", h.Delete)
		customers.PUT(":customerID/activate", h.Activate)
		customers.DELETE(":customerID/deactivate", h.Deactivate)
	}
}
