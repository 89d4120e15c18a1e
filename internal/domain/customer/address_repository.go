package customer

import "context"

// AddressRepository defines persistence operations for Address records.
type AddressRepository interface {
	// Create inserts the address, ignoring any client-supplied identity,
	// and assigns the generated ID before returning.
	Create(ctx context.Context, a *Address) error

	// Update persists the current field state. Updating an address with no
	// identity is a validation error, never a silent no-op.
	Update(ctx context.Context, a *Address) error

	// Delete removes the address. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id uint) error

	// Get returns the address or ErrNotFound when absent.
	Get(ctx context.Context, id uint) (*Address, error)

	// FindByCustomerID returns all addresses owned by the customer.
	FindByCustomerID(ctx context.Context, customerID uint) ([]Address, error)

	// FindByCustomerAndAddressID returns the zero-or-one address matching
	// the composite key; nil without error when there is no match.
	FindByCustomerAndAddressID(ctx context.Context, customerID, addressID uint) (*Address, error)

	// UpdateTextByCustomerAndAddressID looks up by composite key and
	// rewrites the address text of the first match. Zero matches is a
	// validation error.
	UpdateTextByCustomerAndAddressID(ctx context.Context, customerID, addressID uint, text string) (*Address, error)
}
