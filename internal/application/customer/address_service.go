package customer

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// AddressService handles address operations nested under a customer.
// Every operation guards parent existence first, so an address operation
// against a nonexistent customer is always a clean not-found fault.
type AddressService struct {
	customerRepo customer.CustomerRepository
	addressRepo  customer.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(customerRepo customer.CustomerRepository, addressRepo customer.AddressRepository) *AddressService {
	return &AddressService{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
	}
}

// Create inserts a new address owned by the customer. Ownership comes from
// the path, not the payload; the store assigns the identity synchronously.
func (s *AddressService) Create(ctx context.Context, customerID uint, req CreateAddressRequest) (*AddressResponse, error) {
	if err := s.guardCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	a, err := customer.NewAddress(customerID, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	response := ToAddressResponse(a)
	return &response, nil
}

// List returns all addresses owned by the customer.
func (s *AddressService) List(ctx context.Context, customerID uint) ([]AddressResponse, error) {
	if err := s.guardCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(addresses), nil
}

// Get returns the single address matching the composite key.
func (s *AddressService) Get(ctx context.Context, customerID, addressID uint) (*AddressResponse, error) {
	if err := s.guardCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	a, err := s.addressRepo.FindByCustomerAndAddressID(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, shared.ErrNotFound
	}

	response := ToAddressResponse(a)
	return &response, nil
}

// Update rewrites the text of the address matching the composite key.
func (s *AddressService) Update(ctx context.Context, customerID, addressID uint, req UpdateAddressRequest) (*AddressResponse, error) {
	if err := s.guardCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	a, err := s.addressRepo.FindByCustomerAndAddressID(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, shared.ErrNotFound
	}

	if err := a.UpdateText(req.Address); err != nil {
		return nil, err
	}

	a, err = s.addressRepo.UpdateTextByCustomerAndAddressID(ctx, customerID, addressID, a.Text)
	if err != nil {
		return nil, err
	}

	response := ToAddressResponse(a)
	return &response, nil
}

// Delete removes the address. Deleting an address that is already gone is a
// no-op; only a missing parent customer is an error.
func (s *AddressService) Delete(ctx context.Context, customerID, addressID uint) error {
	if err := s.guardCustomer(ctx, customerID); err != nil {
		return err
	}

	a, err := s.addressRepo.FindByCustomerAndAddressID(ctx, customerID, addressID)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	err = s.addressRepo.Delete(ctx, a.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	return err
}

// guardCustomer verifies the parent customer exists before any child
// operation touches the store.
func (s *AddressService) guardCustomer(ctx context.Context, customerID uint) error {
	_, err := s.customerRepo.Get(ctx, customerID)
	return err
}
