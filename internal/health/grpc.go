package health

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/sales-insights/pkg/logger"
)

// GRPCServer exposes grpc.health.v1.Health and mirrors the database checker
// into its serving status
type GRPCServer struct {
	Server  *grpc.Server
	health  *health.Server
	checker Checker
	service string
}

// NewGRPCServer builds the gRPC server with tracing, metrics and logging
// interceptors, the health service and reflection
func NewGRPCServer(checker Checker, serviceName string, registerer prometheus.Registerer) *GRPCServer {
	interceptors := NewInterceptors(registerer)

	server := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			interceptors.Metrics,
			interceptors.Logging,
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &GRPCServer{
		Server:  server,
		health:  healthServer,
		checker: checker,
		service: serviceName,
	}
}

// Refresh runs the checker once and publishes the result for both the
// overall server ("") and the named service
func (s *GRPCServer) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.checker.Check(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Health check failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(s.service, status)
	return status
}

// Watch refreshes the serving status every interval until ctx is done
func (s *GRPCServer) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		s.Refresh(checkCtx)
		cancel()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown marks every service NOT_SERVING and stops the server gracefully
func (s *GRPCServer) Shutdown() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}
