package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory database with the full schema applied
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.CustomerModel{}, &models.AddressModel{}))
	return db
}

func newPersistedCustomer(t *testing.T, repo *GormCustomerRepository, nickname, email string) *customer.Customer {
	t.Helper()

	birthday, err := customer.ParseBirthday("1990-05-01")
	require.NoError(t, err)
	c, err := customer.NewCustomer("John", "Rofrano", nickname, email, "secret", customer.GenderMale, birthday)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestRepositoryIntegration_CreateAssignsIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	birthday, err := customer.ParseBirthday("1990-05-01")
	require.NoError(t, err)
	c, err := customer.NewCustomer("John", "Rofrano", "jr", "john@example.com", "secret", customer.GenderMale, birthday)
	require.NoError(t, err)
	require.NoError(t, c.AddAddress("123 Main Street"))
	require.NoError(t, c.AddAddress("456 Oak Avenue"))

	// Client-supplied identity must be discarded
	c.ID = 12345

	require.NoError(t, repo.Create(ctx, c))

	assert.NotEqual(t, uint(12345), c.ID)
	assert.NotZero(t, c.ID)
	require.Len(t, c.Addresses, 2)
	for _, a := range c.Addresses {
		assert.NotZero(t, a.ID)
		assert.Equal(t, c.ID, a.CustomerID)
	}

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got.Addresses, 2)
}

func TestRepositoryIntegration_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	customerRepo := NewGormCustomerRepository(db)
	addressRepo := NewGormAddressRepository(db)
	ctx := context.Background()

	c := newPersistedCustomer(t, customerRepo, "jr", "john@example.com")

	a, err := customer.NewAddress(c.ID, "123 Main Street")
	require.NoError(t, err)
	require.NoError(t, addressRepo.Create(ctx, a))

	require.NoError(t, customerRepo.Delete(ctx, c.ID))

	_, err = customerRepo.Get(ctx, c.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	orphans, err := addressRepo.FindByCustomerID(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// A second delete reports not found; idempotency lives in the service
	assert.ErrorIs(t, customerRepo.Delete(ctx, c.ID), shared.ErrNotFound)
}

func TestRepositoryIntegration_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	c := newPersistedCustomer(t, repo, "jr", "john@example.com")

	newBirthday, err := customer.ParseBirthday("1985-12-24")
	require.NoError(t, err)
	require.NoError(t, c.Update("Jane", "Rofrano", "jj", "jane@example.com", "secret", customer.GenderFemale, newBirthday, false))
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "jj", got.Nickname)
	assert.Equal(t, customer.GenderFemale, got.Gender)
	assert.False(t, got.IsActive)
	assert.Equal(t, "1985-12-24", got.Birthday.Format(customer.DateLayout))
}

func TestRepositoryIntegration_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	first := newPersistedCustomer(t, repo, "jr", "john@example.com")
	newPersistedCustomer(t, repo, "kate", "kate@example.com")

	t.Run("all", func(t *testing.T) {
		customers, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("by nickname is exact and case-sensitive", func(t *testing.T) {
		customers, err := repo.FindByNickname(ctx, "jr")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, first.ID, customers[0].ID)

		none, err := repo.FindByNickname(ctx, "JR")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("by email", func(t *testing.T) {
		customers, err := repo.FindByEmail(ctx, "kate@example.com")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "kate", customers[0].Nickname)
	})

	t.Run("by name requires both parts to match", func(t *testing.T) {
		customers, err := repo.FindByName(ctx, "John", "Rofrano")
		require.NoError(t, err)
		assert.Len(t, customers, 2)

		none, err := repo.FindByName(ctx, "John", "Doe")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("by birthday", func(t *testing.T) {
		birthday := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		customers, err := repo.FindByBirthday(ctx, birthday)
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})
}

func TestRepositoryIntegration_AddressComposite(t *testing.T) {
	db := newTestDB(t)
	customerRepo := NewGormCustomerRepository(db)
	addressRepo := NewGormAddressRepository(db)
	ctx := context.Background()

	owner := newPersistedCustomer(t, customerRepo, "jr", "john@example.com")
	other := newPersistedCustomer(t, customerRepo, "kate", "kate@example.com")

	a, err := customer.NewAddress(owner.ID, "123 Main Street")
	require.NoError(t, err)
	require.NoError(t, addressRepo.Create(ctx, a))

	t.Run("composite lookup respects ownership", func(t *testing.T) {
		found, err := addressRepo.FindByCustomerAndAddressID(ctx, owner.ID, a.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "123 Main Street", found.Text)

		// Same address ID under the wrong customer does not match
		miss, err := addressRepo.FindByCustomerAndAddressID(ctx, other.ID, a.ID)
		require.NoError(t, err)
		assert.Nil(t, miss)
	})

	t.Run("composite update rewrites text", func(t *testing.T) {
		updated, err := addressRepo.UpdateTextByCustomerAndAddressID(ctx, owner.ID, a.ID, "456 Oak Avenue")
		require.NoError(t, err)
		assert.Equal(t, "456 Oak Avenue", updated.Text)
	})

	t.Run("composite update with wrong owner fails", func(t *testing.T) {
		_, err := addressRepo.UpdateTextByCustomerAndAddressID(ctx, other.ID, a.ID, "789 Elm Street")
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ADDRESS", domainErr.Code)
	})
}
