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

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Create inserts the address. Any client-supplied identity is discarded;
// the database assigns the ID and it is copied back before returning.
func (r *GormAddressRepository) Create(ctx context.Context, a *customer.Address) error {
	model := models.AddressModelFromDomain(a)
	model.ID = 0
	model.CreatedAt = time.Time{}
	model.UpdatedAt = time.Time{}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	*a = *model.ToDomain()
	return nil
}

// Update persists the current field state of an already-identified address.
func (r *GormAddressRepository) Update(ctx context.Context, a *customer.Address) error {
	if a.ID == 0 {
		return shared.NewDomainError("INVALID_ID", "Cannot update an address that was never created")
	}

	model := models.AddressModelFromDomain(a)
	result := r.db.WithContext(ctx).Model(&models.AddressModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"customer_id": model.CustomerID,
			"address":     model.Address,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the address. Returns ErrNotFound when absent.
func (r *GormAddressRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Get returns the address or ErrNotFound when absent.
func (r *GormAddressRepository) Get(ctx context.Context, id uint) (*customer.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomerID returns all addresses owned by the customer.
func (r *GormAddressRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]customer.Address, error) {
	var addressModels []models.AddressModel
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&addressModels).Error; err != nil {
		return nil, err
	}

	addresses := make([]customer.Address, len(addressModels))
	for i := range addressModels {
		addresses[i] = *addressModels[i].ToDomain()
	}
	return addresses, nil
}

// FindByCustomerAndAddressID returns the address matching the composite
// key, or nil without error when there is no match.
func (r *GormAddressRepository) FindByCustomerAndAddressID(ctx context.Context, customerID, addressID uint) (*customer.Address, error) {
	var model models.AddressModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND id = ?", customerID, addressID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// UpdateTextByCustomerAndAddressID rewrites the text of the address
// matching the composite key. Zero matches is a validation error.
func (r *GormAddressRepository) UpdateTextByCustomerAndAddressID(ctx context.Context, customerID, addressID uint, text string) (*customer.Address, error) {
	result := r.db.WithContext(ctx).Model(&models.AddressModel{}).
		Where("customer_id = ? AND id = ?", customerID, addressID).
		Update("address", text)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "No address matches the given customer and address IDs")
	}

	return r.FindByCustomerAndAddressID(ctx, customerID, addressID)
}
