package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/internal/product/usecase/command"
	"github.com/tair/sales-insights/internal/product/usecase/query"
	"github.com/tair/sales-insights/pkg/logger"
	"github.com/tair/sales-insights/pkg/respond"
)

// ProductHandler handles HTTP requests for the product catalog
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	listHandler   *query.ListProductsHandler

	repo          domain.ProductRepository
	totalProducts prometheus.Gauge
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	listHandler *query.ListProductsHandler,
	repo domain.ProductRepository,
	registerer prometheus.Registerer,
) *ProductHandler {
	totalProducts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sales_insights_total_products",
		Help: "Total number of products in the catalog",
	})
	registerer.MustRegister(totalProducts)

	return &ProductHandler{
		createHandler: createHandler,
		listHandler:   listHandler,
		repo:          repo,
		totalProducts: totalProducts,
	}
}

type createProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} respond.Response
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respond.Error(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respond.JSON(w, http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product
// @Description Category is not accepted here; new products are stored without one
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,stock_quantity=int} true "Product data"
// @Success 201 {object} domain.Product
// @Failure 400 {object} respond.Response
// @Failure 500 {object} respond.Response
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil || req.Description == nil || req.Price == nil || req.StockQuantity == nil {
		respond.Error(w, http.StatusBadRequest, "name, description, price and stock_quantity are required")
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:          *req.Name,
		Description:   *req.Description,
		Price:         *req.Price,
		StockQuantity: *req.StockQuantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create product")
		respond.Error(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	logger.Info(r.Context()).
		Uint("product_id", product.ID).
		Str("name", product.Name).
		Msg("Product created")

	h.updateProductsMetric(r)

	respond.JSON(w, http.StatusCreated, product)
}

// updateProductsMetric refreshes the catalog size gauge
func (h *ProductHandler) updateProductsMetric(r *http.Request) {
	count, err := h.repo.Count(r.Context())
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to refresh product gauge")
		return
	}
	h.totalProducts.Set(float64(count))
}
