package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/interfaces/http/dto"
)

func testAddress(t *testing.T) *customer.Address {
	t.Helper()
	a, err := customer.NewAddress(42, "123 Main Street")
	require.NoError(t, err)
	a.ID = 5
	return a
}

func addressPayload() map[string]any {
	return map[string]any{
		"customer_id": 42,
		"address":     "123 Main Street",
	}
}

func TestAddressHandler_Create(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("Create", mock.Anything, mock.AnythingOfType("*customer.Address")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*customer.Address).ID = 5
		}).
		Return(nil)

	w := doJSON(engine, http.MethodPost, "/api/v1/customers/42/addresses", addressPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/customers/42/addresses/5", w.Header().Get("Location"))
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(5), data["address_id"])
	assert.Equal(t, float64(42), data["customer_id"])
	assert.Equal(t, "123 Main Street", data["address"])
}

func TestAddressHandler_Create_CustomerMissing(t *testing.T) {
	engine, customerRepo, _ := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	w := doJSON(engine, http.MethodPost, "/api/v1/customers/99/addresses", addressPayload())

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestAddressHandler_Create_MissingAddressKey(t *testing.T) {
	engine, _, _ := newTestAPI()

	w := doJSON(engine, http.MethodPost, "/api/v1/customers/42/addresses", map[string]any{
		"customer_id": 42,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "Invalid address: missing address", resp.Error.Message)
}

func TestAddressHandler_List(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerID", mock.Anything, uint(42)).
		Return([]customer.Address{*testAddress(t)}, nil)

	w := doJSON(engine, http.MethodGet, "/api/v1/customers/42/addresses", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	items := resp.Data.([]any)
	require.Len(t, items, 1)
}

func TestAddressHandler_List_CustomerMissing(t *testing.T) {
	engine, customerRepo, _ := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	w := doJSON(engine, http.MethodGet, "/api/v1/customers/99/addresses", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_Get(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(5)).
		Return(testAddress(t), nil)

	w := doJSON(engine, http.MethodGet, "/api/v1/customers/42/addresses/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(5), data["address_id"])
}

func TestAddressHandler_Get_WrongOwner(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(8)).
		Return(nil, nil)

	w := doJSON(engine, http.MethodGet, "/api/v1/customers/42/addresses/8", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestAddressHandler_Get_BadAddressID(t *testing.T) {
	engine, _, _ := newTestAPI()

	w := doJSON(engine, http.MethodGet, "/api/v1/customers/42/addresses/xyz", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddressHandler_Update(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	updated := testAddress(t)
	require.NoError(t, updated.UpdateText("456 Oak Avenue"))

	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(5)).
		Return(testAddress(t), nil)
	addressRepo.On("UpdateTextByCustomerAndAddressID", mock.Anything, uint(42), uint(5), "456 Oak Avenue").
		Return(updated, nil)

	w := doJSON(engine, http.MethodPut, "/api/v1/customers/42/addresses/5", map[string]any{
		"address": "456 Oak Avenue",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "456 Oak Avenue", data["address"])
}

func TestAddressHandler_Update_AddressMissing(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(8)).
		Return(nil, nil)

	w := doJSON(engine, http.MethodPut, "/api/v1/customers/42/addresses/8", map[string]any{
		"address": "456 Oak Avenue",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_Delete(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(5)).
		Return(testAddress(t), nil)
	addressRepo.On("Delete", mock.Anything, uint(5)).Return(nil)

	w := doJSON(engine, http.MethodDelete, "/api/v1/customers/42/addresses/5", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddressHandler_Delete_MissingStillNoContent(t *testing.T) {
	engine, customerRepo, addressRepo := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(42)).Return(testCustomer(t), nil)
	addressRepo.On("FindByCustomerAndAddressID", mock.Anything, uint(42), uint(8)).
		Return(nil, nil)

	w := doJSON(engine, http.MethodDelete, "/api/v1/customers/42/addresses/8", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAddressHandler_Delete_CustomerMissing(t *testing.T) {
	engine, customerRepo, _ := newTestAPI()
	customerRepo.On("Get", mock.Anything, uint(99)).Return(nil, shared.ErrNotFound)

	w := doJSON(engine, http.MethodDelete, "/api/v1/customers/99/addresses/5", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
