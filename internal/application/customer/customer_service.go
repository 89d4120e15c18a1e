package customer

import (
	"context"
	"errors"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo customer.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create deserializes the payload into a new customer aggregate and
// persists it. The store assigns the identity before this returns.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.deserialize(req)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return ToCustomerResponse(c)
}

// Get retrieves a customer by ID; absent IDs surface as a not-found fault.
func (s *CustomerService) Get(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(c)
}

// List returns customers matching the first applicable filter.
// Filters are mutually exclusive: nickname wins over email, email over
// birthday, birthday over the firstname+lastname pair; with no filter the
// full collection is returned.
func (s *CustomerService) List(ctx context.Context, filter ListCustomersFilter) ([]CustomerResponse, error) {
	var (
		customers []customer.Customer
		err       error
	)

	switch {
	case filter.Nickname != "":
		customers, err = s.customerRepo.FindByNickname(ctx, filter.Nickname)
	case filter.Email != "":
		customers, err = s.customerRepo.FindByEmail(ctx, filter.Email)
	case filter.Birthday != "":
		birthday, parseErr := customer.ParseBirthday(filter.Birthday)
		if parseErr != nil {
			return nil, parseErr
		}
		customers, err = s.customerRepo.FindByBirthday(ctx, birthday)
	case filter.FirstName != "" && filter.LastName != "":
		customers, err = s.customerRepo.FindByName(ctx, filter.FirstName, filter.LastName)
	case filter.FirstName != "" || filter.LastName != "":
		return nil, shared.NewDomainError("INVALID_INPUT", "firstname and lastname must be supplied together")
	default:
		customers, err = s.customerRepo.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ToCustomerResponses(customers)
}

// Update replaces the full field state of an existing customer.
func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gender, err := customer.ParseGender(req.Gender)
	if err != nil {
		return nil, err
	}
	birthday, err := customer.ParseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	if err := c.Update(req.FirstName, req.LastName, req.Nickname, req.Email, req.Password, gender, birthday, *req.IsActive); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return ToCustomerResponse(c)
}

// Delete removes the customer and, through the aggregate, all of its
// addresses. Deleting an absent customer is a no-op: delete is idempotent.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	err := s.customerRepo.Delete(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	return err
}

// Activate sets is_active to true.
func (s *CustomerService) Activate(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Activate()

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c)
}

// Deactivate sets is_active to false.
func (s *CustomerService) Deactivate(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := s.customerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Deactivate()

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return ToCustomerResponse(c)
}

// deserialize builds a customer aggregate from the wire payload without
// persisting it. Field presence is checked by request binding; format and
// membership rules live in the domain.
func (s *CustomerService) deserialize(req CreateCustomerRequest) (*customer.Customer, error) {
	gender, err := customer.ParseGender(req.Gender)
	if err != nil {
		return nil, err
	}
	birthday, err := customer.ParseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(req.FirstName, req.LastName, req.Nickname, req.Email, req.Password, gender, birthday)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil && !*req.IsActive {
		c.Deactivate()
	}

	for _, a := range req.Addresses {
		if err := c.AddAddress(a.Address); err != nil {
			return nil, err
		}
	}

	return c, nil
}
