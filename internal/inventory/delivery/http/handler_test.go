package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/internal/inventory/domain/mocks"
	"github.com/tair/sales-insights/internal/inventory/usecase/command"
	"github.com/tair/sales-insights/internal/inventory/usecase/query"
	"github.com/tair/sales-insights/pkg/respond"
)

func newTestRouter(repo *mocks.InventoryRepository) (*mux.Router, *InventoryHandler) {
	h := NewInventoryHandler(
		command.NewCreateInventoryHandler(repo),
		command.NewUpdateQuantityHandler(repo, nil),
		query.NewInventoryStatusHandler(repo),
		query.NewLowStockHandler(repo),
		query.NewGetInventoryHandler(repo),
		prometheus.NewRegistry(),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, h
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp respond.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestInventoryStatus(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindAll", mock.Anything).Return([]domain.Inventory{{ID: 1, ProductID: 1, Quantity: 50}}, nil)
	router, _ := newTestRouter(repo)

	w := serve(router, http.MethodGet, "/inventory/status", "")

	require.Equal(t, http.StatusOK, w.Code)
	var rows []domain.Inventory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)
	repo.AssertNotCalled(t, "FindFirstByProductID", mock.Anything, mock.Anything)
}

func TestLowStockAlerts_SetsGauge(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindBelow", mock.Anything, domain.LowStockThreshold).Return([]domain.Inventory{
		{ID: 1, ProductID: 1, Quantity: 2},
		{ID: 2, ProductID: 2, Quantity: 9},
	}, nil)
	router, h := newTestRouter(repo)

	w := serve(router, http.MethodGet, "/inventory/low-stock", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), testutil.ToFloat64(h.lowStockItems))
}

func TestGetInventory(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindFirstByProductID", mock.Anything, uint(1)).Return(&domain.Inventory{ID: 1, ProductID: 1, Quantity: 50}, nil)
	repo.On("FindFirstByProductID", mock.Anything, uint(2)).Return(nil, domain.ErrInventoryNotFound)
	router, _ := newTestRouter(repo)

	w := serve(router, http.MethodGet, "/inventory/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var inv domain.Inventory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 50, inv.Quantity)

	w = serve(router, http.MethodGet, "/inventory/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Inventory not found", errorMessage(t, w))
}

func TestUpdateQuantity_FromQuery(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("UpdateQuantity", mock.Anything, uint(1), 7).Return(&domain.Inventory{ID: 1, ProductID: 1, Quantity: 7}, nil)
	router, h := newTestRouter(repo)

	w := serve(router, http.MethodPost, "/inventory/1/update?quantity=7", "")

	require.Equal(t, http.StatusOK, w.Code)
	var inv domain.Inventory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 7, inv.Quantity)
	assert.Equal(t, float64(1), testutil.ToFloat64(h.quantityUpdates))
}

func TestUpdateQuantity_FromBody(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("UpdateQuantity", mock.Anything, uint(3), 0).Return(&domain.Inventory{ID: 3, ProductID: 3, Quantity: 0}, nil)
	router, _ := newTestRouter(repo)

	w := serve(router, http.MethodPost, "/inventory/3/update", `{"quantity":0}`)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateQuantity_UnknownProduct(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("UpdateQuantity", mock.Anything, uint(9), 1).Return(nil, domain.ErrProductNotFound)
	router, h := newTestRouter(repo)

	w := serve(router, http.MethodPost, "/inventory/9/update?quantity=1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", errorMessage(t, w))
	assert.Equal(t, float64(0), testutil.ToFloat64(h.quantityUpdates))
}

func TestUpdateQuantity_BadInput(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	router, _ := newTestRouter(repo)

	for _, tc := range []struct{ target, body string }{
		{"/inventory/1/update?quantity=lots", ""},
		{"/inventory/1/update", ""},
		{"/inventory/1/update", `{"qty":3}`},
		{"/inventory/1/update", `{`},
	} {
		w := serve(router, http.MethodPost, tc.target, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.target+" "+tc.body)
	}
	repo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestFixedInventoryPathsAreNotProductIDs(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("FindBelow", mock.Anything, mock.Anything).Return([]domain.Inventory{}, nil)
	router, _ := newTestRouter(repo)

	w := serve(router, http.MethodGet, "/inventory/low-stock", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	repo.AssertNotCalled(t, "FindFirstByProductID", mock.Anything, mock.Anything)
}

func TestCreateInventory(t *testing.T) {
	repo := new(mocks.InventoryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Inventory")).Return(nil)
	router, _ := newTestRouter(repo)

	w := serve(router, http.MethodPost, "/inventory", `{"product_id":1,"quantity":25}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodPost, "/inventory", `{"product_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
