package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/internal/inventory/usecase/command"
	"github.com/tair/sales-insights/internal/inventory/usecase/query"
	"github.com/tair/sales-insights/pkg/logger"
	"github.com/tair/sales-insights/pkg/respond"
)

const (
	msgInventoryNotFound = "Inventory not found"
	msgProductNotFound   = "Product not found"
)

// InventoryHandler handles HTTP requests for inventory
type InventoryHandler struct {
	createHandler         *command.CreateInventoryHandler
	updateQuantityHandler *command.UpdateQuantityHandler
	statusHandler         *query.InventoryStatusHandler
	lowStockHandler       *query.LowStockHandler
	getHandler            *query.GetInventoryHandler

	lowStockItems   prometheus.Gauge
	quantityUpdates prometheus.Counter
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	createHandler *command.CreateInventoryHandler,
	updateQuantityHandler *command.UpdateQuantityHandler,
	statusHandler *query.InventoryStatusHandler,
	lowStockHandler *query.LowStockHandler,
	getHandler *query.GetInventoryHandler,
	registerer prometheus.Registerer,
) *InventoryHandler {
	lowStockItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sales_insights_low_stock_items",
		Help: "Inventory rows below the low-stock threshold at the last check",
	})
	quantityUpdates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_insights_inventory_updates_total",
		Help: "Total number of inventory quantity overwrites",
	})
	registerer.MustRegister(lowStockItems, quantityUpdates)

	return &InventoryHandler{
		createHandler:         createHandler,
		updateQuantityHandler: updateQuantityHandler,
		statusHandler:         statusHandler,
		lowStockHandler:       lowStockHandler,
		getHandler:            getHandler,
		lowStockItems:         lowStockItems,
		quantityUpdates:       quantityUpdates,
	}
}

// RegisterRoutes registers all inventory routes. Fixed paths go before
// /inventory/{product_id}.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory", h.CreateInventory).Methods(http.MethodPost)
	router.HandleFunc("/inventory/status", h.InventoryStatus).Methods(http.MethodGet)
	router.HandleFunc("/inventory/low-stock", h.LowStockAlerts).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{product_id:[0-9]+}", h.GetInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{product_id:[0-9]+}/update", h.UpdateQuantity).Methods(http.MethodPost)
}

// InventoryStatus godoc
// @Summary List inventory
// @Description Every inventory row, unfiltered
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.Inventory
// @Failure 500 {object} respond.Response
// @Router /inventory/status [get]
func (h *InventoryHandler) InventoryStatus(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.statusHandler.Handle(r.Context(), query.InventoryStatusQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list inventory")
		respond.Error(w, http.StatusInternalServerError, "Failed to list inventory")
		return
	}

	respond.JSON(w, http.StatusOK, inventories)
}

// LowStockAlerts godoc
// @Summary Low stock alerts
// @Description Inventory rows with quantity below 10
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.Inventory
// @Failure 500 {object} respond.Response
// @Router /inventory/low-stock [get]
func (h *InventoryHandler) LowStockAlerts(w http.ResponseWriter, r *http.Request) {
	inventories, err := h.lowStockHandler.Handle(r.Context(), query.LowStockQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list low stock inventory")
		respond.Error(w, http.StatusInternalServerError, "Failed to list low stock inventory")
		return
	}

	h.lowStockItems.Set(float64(len(inventories)))
	if len(inventories) > 0 {
		logger.Warn(r.Context()).Int("count", len(inventories)).Msg("Low stock detected")
	}

	respond.JSON(w, http.StatusOK, inventories)
}

// GetInventory godoc
// @Summary Inventory of a product
// @Tags Inventory
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} domain.Inventory
// @Failure 400 {object} respond.Response
// @Failure 404 {object} respond.Response
// @Router /inventory/{product_id} [get]
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	inventory, err := h.getHandler.Handle(r.Context(), query.GetInventoryQuery{ProductID: productID})
	if err != nil {
		if errors.Is(err, domain.ErrInventoryNotFound) {
			respond.Error(w, http.StatusNotFound, msgInventoryNotFound)
			return
		}
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to get inventory")
		respond.Error(w, http.StatusInternalServerError, "Failed to get inventory")
		return
	}

	respond.JSON(w, http.StatusOK, inventory)
}

// UpdateQuantity godoc
// @Summary Overwrite inventory quantity
// @Description Quantity is read from the query string or a JSON body. last_updated is not changed.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param quantity query int false "New quantity"
// @Success 200 {object} domain.Inventory
// @Failure 400 {object} respond.Response
// @Failure 404 {object} respond.Response
// @Router /inventory/{product_id}/update [post]
func (h *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	quantity, err := quantityParam(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	inventory, err := h.updateQuantityHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, msgProductNotFound)
			return
		}
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to update quantity")
		respond.Error(w, http.StatusInternalServerError, "Failed to update quantity")
		return
	}

	logger.Info(r.Context()).
		Uint("product_id", productID).
		Int("quantity", inventory.Quantity).
		Bool("low_stock", inventory.IsLowStock()).
		Msg("Inventory quantity updated")

	h.quantityUpdates.Inc()

	respond.JSON(w, http.StatusOK, inventory)
}

// CreateInventory godoc
// @Summary Create inventory row
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity=int} true "Inventory data"
// @Success 201 {object} domain.Inventory
// @Failure 400 {object} respond.Response
// @Failure 404 {object} respond.Response
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID *uint `json:"product_id"`
		Quantity  *int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == nil || req.Quantity == nil {
		respond.Error(w, http.StatusBadRequest, "product_id and quantity are required")
		return
	}

	inventory, err := h.createHandler.Handle(r.Context(), command.CreateInventoryCommand{
		ProductID: *req.ProductID,
		Quantity:  *req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, msgProductNotFound)
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to create inventory")
		respond.Error(w, http.StatusInternalServerError, "Failed to create inventory")
		return
	}

	respond.JSON(w, http.StatusCreated, inventory)
}

func productIDParam(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["product_id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// quantityParam reads ?quantity= first and falls back to {"quantity": n}
func quantityParam(r *http.Request) (int, error) {
	if raw := r.URL.Query().Get("quantity"); raw != "" {
		quantity, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, errors.New("quantity must be an integer")
		}
		return quantity, nil
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return 0, errors.New("invalid request body")
	}
	if body.Quantity == nil {
		return 0, errors.New("quantity is required")
	}
	return *body.Quantity, nil
}
