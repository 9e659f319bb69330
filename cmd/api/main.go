package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/sales-insights/docs"
	"github.com/tair/sales-insights/internal/config"
	"github.com/tair/sales-insights/internal/health"
	"github.com/tair/sales-insights/internal/inventory"
	inventorydomain "github.com/tair/sales-insights/internal/inventory/domain"
	"github.com/tair/sales-insights/internal/product"
	productdomain "github.com/tair/sales-insights/internal/product/domain"
	"github.com/tair/sales-insights/internal/sales"
	"github.com/tair/sales-insights/internal/sales/delivery/events"
	salesdomain "github.com/tair/sales-insights/internal/sales/domain"
	"github.com/tair/sales-insights/internal/seed"
	"github.com/tair/sales-insights/kafka"
	"github.com/tair/sales-insights/pkg/cache"
	"github.com/tair/sales-insights/pkg/database"
	"github.com/tair/sales-insights/pkg/logger"
	"github.com/tair/sales-insights/pkg/middleware"
	"github.com/tair/sales-insights/pkg/tracing"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthCheckInterval = 15 * time.Second
)

func main() {
	cfg := config.LoadConfig()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("db_driver", cfg.Database.DriverName()).
		Msg("Starting sales insights service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize tracer
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(tracing.Config{
			ServiceName:    cfg.ServiceName,
			JaegerEndpoint: cfg.JaegerEndpoint,
		})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	} else {
		tracing.InstallPropagator()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&productdomain.Product{}, &salesdomain.Sale{}, &inventorydomain.Inventory{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	if cfg.SeedDemoData {
		seeder := seed.NewSeeder(
			product.ProvideProductRepository(db),
			sales.ProvideSaleRepository(db),
			inventory.ProvideInventoryRepository(db),
		)
		if _, err := seeder.Run(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	reportCache := newReportCache(ctx, cfg)

	// Kafka is optional; the interface stays nil when no brokers are set
	var publisher inventorydomain.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to create Kafka publisher, inventory events disabled")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	registerer := prometheus.DefaultRegisterer

	// Initialize handlers with Wire DI
	productHandler, err := product.InitializeHTTPHandler(db, registerer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	salesModule, err := sales.InitializeModule(db, reportCache, registerer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sales handler")
	}
	inventoryHandler, err := inventory.InitializeHTTPHandler(db, publisher, registerer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	var consumer *kafka.Consumer
	if len(cfg.KafkaBrokers) > 0 {
		consumer, err = kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicSalesSubmitted})
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer, sale ingestion disabled")
		} else {
			consumer.RegisterHandler(kafka.EventTypeSaleSubmitted, events.NewSaleSubmittedHandler(salesModule.RecordSale))
			consumer.Start(ctx)
		}
	}

	checker := health.NewDatabaseChecker(db)

	// Setup router
	router := mux.NewRouter()
	middlewareConfig := middleware.DefaultConfig(cfg.RequestTimeout, middleware.NewMetrics(registerer))
	middleware.Register(router, middlewareConfig)

	productHandler.RegisterRoutes(router)
	salesModule.HTTP.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	health.NewHandler(checker, cfg.ServiceName).RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTPPort
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           middleware.CORS(middlewareConfig, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	grpcServer := startGRPCServer(ctx, checker, cfg, registerer)

	<-ctx.Done()

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.Shutdown()

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka consumer")
		}
	}

	logger.Logger.Info().Msg("Server stopped")
}

// newReportCache connects to Redis when configured. A nil cache disables
// report caching.
func newReportCache(ctx context.Context, cfg *config.Config) *cache.ReportCache {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unavailable, report cache disabled")
		_ = client.Close()
		return nil
	}

	logger.Logger.Info().
		Str("addr", cfg.RedisAddr).
		Dur("ttl", cfg.ReportCacheTTL).
		Msg("Report cache enabled")

	return cache.NewReportCache(client, cfg.ReportCacheTTL)
}

func startGRPCServer(ctx context.Context, checker health.Checker, cfg *config.Config, registerer prometheus.Registerer) *health.GRPCServer {
	server := health.NewGRPCServer(checker, cfg.ServiceName, registerer)
	go server.Watch(ctx, healthCheckInterval)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to listen on gRPC port")
	}

	go func() {
		logger.Logger.Info().Str("port", cfg.GRPCPort).Msg("gRPC server started")
		if err := server.Server.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	return server
}
