package customer

import (
	"github.com/crm/backend/internal/domain/customer"
)

// CreateCustomerRequest is the wire payload for creating a customer.
// Every key is required; a missing or empty key fails validation with an
// error naming that key.
type CreateCustomerRequest struct {
	FirstName string                 `json:"first_name" binding:"required"`
	LastName  string                 `json:"last_name" binding:"required"`
	Nickname  string                 `json:"nickname" binding:"required"`
	Email     string                 `json:"email" binding:"required"`
	Password  string                 `json:"password" binding:"required"`
	Gender    string                 `json:"gender" binding:"required"`
	Birthday  string                 `json:"birthday" binding:"required"`
	IsActive  *bool                  `json:"is_active" binding:"required"`
	Addresses []NestedAddressRequest `json:"addresses" binding:"omitempty,dive"`
}

// NestedAddressRequest is an address embedded in a customer payload.
// The owning customer is implied by the parent, so only the text is taken;
// any client-supplied identity is ignored.
type NestedAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// UpdateCustomerRequest replaces the full field state of a customer.
// The update contract is full-state, not patch, so it mirrors create.
type UpdateCustomerRequest = CreateCustomerRequest

// CreateAddressRequest is the wire payload for creating an address under a
// customer. The customer_id key is required by the wire contract; ownership
// is taken from the URL path, and any supplied address_id is ignored.
type CreateAddressRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Address    string `json:"address" binding:"required"`
	AddressID  uint   `json:"address_id"`
}

// UpdateAddressRequest replaces the text of an existing address.
type UpdateAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// ListCustomersFilter holds the mutually exclusive list query parameters.
// Priority when several are supplied: nickname > email > birthday >
// firstname+lastname.
type ListCustomersFilter struct {
	Nickname  string `form:"nickname"`
	Email     string `form:"email"`
	Birthday  string `form:"birthday"`
	FirstName string `form:"firstname"`
	LastName  string `form:"lastname"`
}

// CustomerResponse is the serialized form of a customer.
type CustomerResponse struct {
	CustomerID uint              `json:"customer_id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Nickname   string            `json:"nickname"`
	Email      string            `json:"email"`
	Gender     string            `json:"gender"`
	Birthday   string            `json:"birthday"`
	Password   string            `json:"password"`
	IsActive   bool              `json:"is_active"`
	Addresses  []AddressResponse `json:"addresses"`
}

// AddressResponse is the serialized form of an address.
type AddressResponse struct {
	CustomerID uint   `json:"customer_id"`
	AddressID  uint   `json:"address_id"`
	Address    string `json:"address"`
}

// ToCustomerResponse serializes a customer. The stored email is validated
// again here so a value that went bad out of band fails exactly like a bad
// request would, instead of leaking through.
func ToCustomerResponse(c *customer.Customer) (*CustomerResponse, error) {
	if err := customer.ValidateEmail(c.Email); err != nil {
		return nil, err
	}

	addresses := make([]AddressResponse, len(c.Addresses))
	for i, a := range c.Addresses {
		addresses[i] = ToAddressResponse(&a)
	}

	return &CustomerResponse{
		CustomerID: c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Nickname:   c.Nickname,
		Email:      c.Email,
		Gender:     c.Gender.String(),
		Birthday:   c.Birthday.Format(customer.DateLayout),
		Password:   c.Password,
		IsActive:   c.IsActive,
		Addresses:  addresses,
	}, nil
}

// ToCustomerResponses serializes a slice of customers.
func ToCustomerResponses(customers []customer.Customer) ([]CustomerResponse, error) {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		r, err := ToCustomerResponse(&customers[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *r
	}
	return responses, nil
}

// ToAddressResponse serializes an address.
func ToAddressResponse(a *customer.Address) AddressResponse {
	return AddressResponse{
		CustomerID: a.CustomerID,
		AddressID:  a.ID,
		Address:    a.Text,
	}
}

// ToAddressResponses serializes a slice of addresses.
func ToAddressResponses(addresses []customer.Address) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses
}
