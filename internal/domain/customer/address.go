package customer

import (
	"time"

	"github.com/crm/backend/internal/domain/shared"
)

// maxAddressLen bounds the free-form address text.
const maxAddressLen = 255

// Address represents a postal address owned by a Customer.
// An address never outlives its parent: deleting the customer removes it.
type Address struct {
	shared.BaseEntity
	CustomerID uint
	Text       string
}

// NewAddress creates a new address for the given customer.
func NewAddress(customerID uint, text string) (*Address, error) {
	if err := validateAddressText(text); err != nil {
		return nil, err
	}
	return &Address{
		CustomerID: customerID,
		Text:       text,
	}, nil
}

// UpdateText replaces the address text.
func (a *Address) UpdateText(text string) error {
	if err := validateAddressText(text); err != nil {
		return err
	}
	a.Text = text
	a.UpdatedAt = time.Now()
	return nil
}

func validateAddressText(text string) error {
	if text == "" {
		return shared.NewDomainError("MISSING_FIELD", "Invalid address: missing address")
	}
	if len(text) > maxAddressLen {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 255 characters")
	}
	return nil
}
