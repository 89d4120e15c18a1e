package customer

import (
	"context"
	"time"
)

// CustomerRepository defines persistence operations for the Customer
// aggregate. Create assigns the identity synchronously; Delete removes the
// customer together with every owned address.
type CustomerRepository interface {
	// Create inserts the customer, ignoring any client-supplied identity,
	// and assigns the generated ID before returning. Owned addresses are
	// inserted in the same call.
	Create(ctx context.Context, c *Customer) error

	// Update persists the current field state of an already-identified
	// customer. Updating a customer that was never created is an error.
	Update(ctx context.Context, c *Customer) error

	// Delete removes the customer and all of its addresses.
	// Returns ErrNotFound when no such customer exists.
	Delete(ctx context.Context, id uint) error

	// Find returns the customer or nil when absent; absence is not an error.
	Find(ctx context.Context, id uint) (*Customer, error)

	// Get returns the customer or ErrNotFound when absent.
	Get(ctx context.Context, id uint) (*Customer, error)

	// All returns every customer; order is not guaranteed.
	All(ctx context.Context) ([]Customer, error)

	// Exact-match, case-sensitive lookups. Each returns a possibly-empty
	// slice, never an error for zero matches.
	FindByNickname(ctx context.Context, nickname string) ([]Customer, error)
	FindByEmail(ctx context.Context, email string) ([]Customer, error)
	FindByName(ctx context.Context, firstName, lastName string) ([]Customer, error)
	FindByBirthday(ctx context.Context, birthday time.Time) ([]Customer, error)
}
