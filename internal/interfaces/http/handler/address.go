package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	appcustomer "github.com/crm/backend/internal/application/customer"
)

// AddressHandler handles address endpoints nested under a customer
type AddressHandler struct {
	BaseHandler
	addressService *appcustomer.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *appcustomer.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// Create godoc
// @ID           createAddress
// @Summary      Add an address to a customer
// @Description  Create a new address owned by the given customer
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Param        request body customer.CreateAddressRequest true "Address creation request"
// @Success      201 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      415 {object} dto.Response
// @Router       /customers/{customerID}/addresses [post]
func (h *AddressHandler) Create(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req appcustomer.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err, "address")
		return
	}

	resp, err := h.addressService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/customers/%d/addresses/%d", customerID, resp.AddressID))
	h.Created(c, resp)
}

// List godoc
// @ID           listAddresses
// @Summary      List a customer's addresses
// @Tags         addresses
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID}/addresses [get]
func (h *AddressHandler) List(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	resp, err := h.addressService.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Get godoc
// @ID           getAddress
// @Summary      Get a customer's address by ID
// @Tags         addresses
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Param        addressID path int true "Address ID"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID}/addresses/{addressID} [get]
func (h *AddressHandler) Get(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	addressID, ok := parseID(c, "addressID")
	if !ok {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	resp, err := h.addressService.Get(c.Request.Context(), customerID, addressID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update godoc
// @ID           updateAddress
// @Summary      Update a customer's address
// @Description  Replace the text of an address owned by the given customer
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        customerID path int true "Customer ID"
// @Param        addressID path int true "Address ID"
// @Param        request body customer.UpdateAddressRequest true "Address update request"
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      415 {object} dto.Response
// @Router       /customers/{customerID}/addresses/{addressID} [put]
func (h *AddressHandler) Update(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	addressID, ok := parseID(c, "addressID")
	if !ok {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	var req appcustomer.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err, "address")
		return
	}

	resp, err := h.addressService.Update(c.Request.Context(), customerID, addressID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @ID           deleteAddress
// @Summary      Delete a customer's address
// @Description  Delete an address owned by the given customer; deleting a missing address still succeeds
// @Tags         addresses
// @Param        customerID path int true "Customer ID"
// @Param        addressID path int true "Address ID"
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Router       /customers/{customerID}/addresses/{addressID} [delete]
func (h *AddressHandler) Delete(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}
	addressID, ok := parseID(c, "addressID")
	if !ok {
		h.BadRequest(c, "Invalid address ID format")
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), customerID, addressID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers address routes nested under /customers.
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	addresses := rg.Group("/customers/:customerID/addresses")
	{
		addresses.GET("", h.List)
		addresses.POST("", h.Create)
		addresses.GET(":addressID", h.Get)
		addresses.PUT(":addressID", h.Update)
		addresses.DELETE(":addressID", h.Delete)
	}
}
