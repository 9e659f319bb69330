package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/sales/usecase/command"
	"github.com/tair/sales-insights/internal/sales/usecase/query"
	"github.com/tair/sales-insights/pkg/cache"
	"github.com/tair/sales-insights/pkg/logger"
	"github.com/tair/sales-insights/pkg/respond"
)

const (
	msgNoSalesInPeriod = "No sales data for the given date range"
	msgSalesNotFound   = "Sales data not found"
	msgProductNotFound = "Product not found"
)

var bucketByPath = map[string]domain.Bucket{
	"daily":   domain.BucketDay,
	"weekly":  domain.BucketWeek,
	"monthly": domain.BucketMonth,
	"annual":  domain.BucketYear,
}

// SalesHandler handles HTTP requests for sales and revenue reports
type SalesHandler struct {
	recordHandler     *command.RecordSaleHandler
	byPeriodHandler   *query.SalesByPeriodHandler
	byProductHandler  *query.SalesByProductHandler
	comparisonHandler *query.RevenueComparisonHandler
	byBucketHandler   *query.RevenueByBucketHandler

	reportCache  *cache.ReportCache
	salesCounter prometheus.Counter
}

// NewSalesHandler creates a new sales handler. reportCache may be nil.
func NewSalesHandler(
	recordHandler *command.RecordSaleHandler,
	byPeriodHandler *query.SalesByPeriodHandler,
	byProductHandler *query.SalesByProductHandler,
	comparisonHandler *query.RevenueComparisonHandler,
	byBucketHandler *query.RevenueByBucketHandler,
	reportCache *cache.ReportCache,
	registerer prometheus.Registerer,
) *SalesHandler {
	salesCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sales_insights_sales_recorded_total",
		Help: "Total number of sales recorded through the API",
	})
	registerer.MustRegister(salesCounter)

	return &SalesHandler{
		recordHandler:     recordHandler,
		byPeriodHandler:   byPeriodHandler,
		byProductHandler:  byProductHandler,
		comparisonHandler: comparisonHandler,
		byBucketHandler:   byBucketHandler,
		reportCache:       reportCache,
		salesCounter:      salesCounter,
	}
}

type recordSaleRequest struct {
	ProductID    *uint            `json:"product_id"`
	QuantitySold *int             `json:"quantity_sold"`
	SaleDate     *string          `json:"sale_date"`
	TotalRevenue *decimal.Decimal `json:"total_revenue"`
}

// RegisterRoutes registers all sales routes. Fixed paths go before
// /sales/{product_id} so they are never read as an id.
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sales", h.RecordSale).Methods(http.MethodPost)

	router.Handle("/sales/period", h.cached(h.SalesByPeriod)).Methods(http.MethodGet)
	router.Handle("/sales/comparison", h.cached(h.RevenueComparison)).Methods(http.MethodGet)
	router.Handle("/sales/revenue/{bucket:daily|weekly|monthly|annual}", h.cached(h.RevenueByBucket)).Methods(http.MethodGet)
	router.Handle("/sales/{product_id:[0-9]+}", h.cached(h.SalesByProduct)).Methods(http.MethodGet)
}

func (h *SalesHandler) cached(fn http.HandlerFunc) http.Handler {
	return h.reportCache.Middleware(fn)
}

// RecordSale godoc
// @Summary Record a sale
// @Description total_revenue is stored as given; sale_date defaults to now
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity_sold=int,sale_date=string,total_revenue=number} true "Sale data"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} respond.Response
// @Failure 404 {object} respond.Response
// @Router /sales [post]
func (h *SalesHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req recordSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductID == nil || req.QuantitySold == nil || req.TotalRevenue == nil {
		respond.Error(w, http.StatusBadRequest, "product_id, quantity_sold and total_revenue are required")
		return
	}

	cmd := command.RecordSaleCommand{
		ProductID:    *req.ProductID,
		QuantitySold: *req.QuantitySold,
		TotalRevenue: *req.TotalRevenue,
	}
	if req.SaleDate != nil && *req.SaleDate != "" {
		saleDate, err := parseDate(*req.SaleDate)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "sale_date: "+err.Error())
			return
		}
		cmd.SaleDate = saleDate
	}

	sale, err := h.recordHandler.Handle(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, msgProductNotFound)
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to record sale")
		respond.Error(w, http.StatusInternalServerError, "Failed to record sale")
		return
	}

	logger.Info(r.Context()).
		Uint("sale_id", sale.ID).
		Uint("product_id", sale.ProductID).
		Int("quantity_sold", sale.QuantitySold).
		Msg("Sale recorded")

	h.salesCounter.Inc()

	respond.JSON(w, http.StatusCreated, sale)
}

// SalesByPeriod godoc
// @Summary Sales in a date range
// @Description Both bounds are inclusive
// @Tags Sales
// @Produce json
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Success 200 {array} domain.Sale
// @Failure 400 {object} respond.Response
// @Failure 404 {object} respond.Response
// @Router /sales/period [get]
func (h *SalesHandler) SalesByPeriod(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	start, err := parseDateParam(values, "start_date")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDateParam(values, "end_date")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := h.byPeriodHandler.Handle(r.Context(), query.SalesByPeriodQuery{Start: start, End: end})
	if err != nil {
		if errors.Is(err, domain.ErrNoSalesInPeriod) {
			respond.Error(w, http.StatusNotFound, msgNoSalesInPeriod)
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to list sales by period")
		respond.Error(w, http.StatusInternalServerError, "Failed to list sales")
		return
	}

	respond.JSON(w, http.StatusOK, sales)
}

// SalesByProduct godoc
// @Summary Sales of one product
// @Tags Sales
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {array} domain.Sale
// @Failure 404 {object} respond.Response
// @Router /sales/{product_id} [get]
func (h *SalesHandler) SalesByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseUint(mux.Vars(r)["product_id"], 10, 32)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	sales, err := h.byProductHandler.Handle(r.Context(), query.SalesByProductQuery{ProductID: uint(productID)})
	if err != nil {
		if errors.Is(err, domain.ErrSalesNotFound) {
			respond.Error(w, http.StatusNotFound, msgSalesNotFound)
			return
		}
		logger.Error(r.Context()).Err(err).Uint64("product_id", productID).Msg("Failed to list sales by product")
		respond.Error(w, http.StatusInternalServerError, "Failed to list sales")
		return
	}

	respond.JSON(w, http.StatusOK, sales)
}

// RevenueComparison godoc
// @Summary Revenue per category in a date range
// @Tags Revenue
// @Produce json
// @Param start_date query string true "Start date"
// @Param end_date query string true "End date"
// @Param category query string false "Category filter"
// @Success 200 {array} domain.CategoryRevenue
// @Failure 400 {object} respond.Response
// @Router /sales/comparison [get]
func (h *SalesHandler) RevenueComparison(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	start, err := parseDateParam(values, "start_date")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDateParam(values, "end_date")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.comparisonHandler.Handle(r.Context(), query.RevenueComparisonQuery{
		Start:    start,
		End:      end,
		Category: values.Get("category"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compare revenue")
		respond.Error(w, http.StatusInternalServerError, "Failed to compare revenue")
		return
	}

	respond.JSON(w, http.StatusOK, rows)
}

// RevenueByBucket godoc
// @Summary Revenue grouped by day, week, month or year
// @Tags Revenue
// @Produce json
// @Param bucket path string true "Bucket" Enums(daily, weekly, monthly, annual)
// @Success 200 {array} domain.RevenuePoint
// @Router /sales/revenue/{bucket} [get]
func (h *SalesHandler) RevenueByBucket(w http.ResponseWriter, r *http.Request) {
	bucket, ok := bucketByPath[mux.Vars(r)["bucket"]]
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Unknown revenue bucket")
		return
	}

	points, err := h.byBucketHandler.Handle(r.Context(), query.RevenueByBucketQuery{Bucket: bucket})
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("bucket", string(bucket)).Msg("Failed to sum revenue")
		respond.Error(w, http.StatusInternalServerError, "Failed to sum revenue")
		return
	}

	respond.JSON(w, http.StatusOK, points)
}
