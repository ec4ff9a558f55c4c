package grpcapi

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer exposes grpc.health.v1.Health for the named service.
type HealthServer struct {
	server  *grpc.Server
	health  *health.Server
	service string
	logger  *slog.Logger
}

func NewHealthServer(service string, logger *slog.Logger) *HealthServer {
	server := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(server, h)

	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		server:  server,
		health:  h,
		service: service,
		logger:  logger,
	}
}

// Serve blocks until Stop is called.
func (s *HealthServer) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.logger.Info("gRPC health server started", "addr", addr, "service", s.service)
	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server stopped: %w", err)
	}
	return nil
}

// Stop flips every service to NOT_SERVING and drains open calls.
func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.logger.Info("gRPC health server stopped")
}
