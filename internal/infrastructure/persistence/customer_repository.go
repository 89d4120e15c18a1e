package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts the customer together with its addresses. Any
// client-supplied identity is discarded; the database assigns IDs and they
// are copied back onto the domain entity before returning.
func (r *GormCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)
	model.ID = 0
	model.CreatedAt = time.Time{}
	model.UpdatedAt = time.Time{}
	for i := range model.Addresses {
		model.Addresses[i].ID = 0
		model.Addresses[i].CustomerID = 0
		model.Addresses[i].CreatedAt = time.Time{}
		model.Addresses[i].UpdatedAt = time.Time{}
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*c = *model.ToDomain()
	return nil
}

// Update persists the customer's own fields. Addresses are managed through
// the address repository and left untouched here.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if c.ID == 0 {
		return shared.NewDomainError("INVALID_ID", "Cannot update a customer that was never created")
	}

	model := models.CustomerModelFromDomain(c)
	model.Addresses = nil

	result := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"first_name": model.FirstName,
			"last_name":  model.LastName,
			"nickname":   model.Nickname,
			"email":      model.Email,
			"password":   model.Password,
			"gender":     model.Gender,
			"birthday":   model.Birthday,
			"is_active":  model.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the customer and all of its addresses in one transaction.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.AddressModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CustomerModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Find returns the customer or nil when absent; absence is not an error.
func (r *GormCustomerRepository) Find(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Get returns the customer or ErrNotFound when absent.
func (r *GormCustomerRepository) Get(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// All returns every customer
func (r *GormCustomerRepository) All(ctx context.Context) ([]customer.Customer, error) {
	return r.findWhere(r.db.WithContext(ctx))
}

// FindByNickname returns customers with exactly the given nickname
func (r *GormCustomerRepository) FindByNickname(ctx context.Context, nickname string) ([]customer.Customer, error) {
	return r.findWhere(r.db.WithContext(ctx).Where("nickname = ?", nickname))
}

// FindByEmail returns customers with exactly the given email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) ([]customer.Customer, error) {
	return r.findWhere(r.db.WithContext(ctx).Where("email = ?", email))
}

// FindByName returns customers matching both first and last name
func (r *GormCustomerRepository) FindByName(ctx context.Context, firstName, lastName string) ([]customer.Customer, error) {
	return r.findWhere(r.db.WithContext(ctx).Where("first_name = ? AND last_name = ?", firstName, lastName))
}

// FindByBirthday returns customers born on the given date
func (r *GormCustomerRepository) FindByBirthday(ctx context.Context, birthday time.Time) ([]customer.Customer, error) {
	return r.findWhere(r.db.WithContext(ctx).Where("birthday = ?", birthday))
}

func (r *GormCustomerRepository) findWhere(query *gorm.DB) ([]customer.Customer, error) {
	var customerModels []models.CustomerModel
	if err := query.Preload("Addresses").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]customer.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return customers, nil
}
