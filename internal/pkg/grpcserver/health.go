package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// HealthServer отдает grpc.health.v1.Health для оркестратора.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log logger.Logger) *HealthServer {
	server := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(server, healthSrv)
	reflection.Register(server)

	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthSrv,
	}
}

// Serve блокирует до GracefulStop.
func (s *HealthServer) Serve(ctx context.Context, port string) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen grpc port %s: %w", port, err)
	}

	s.log.With(logger.NewField("port", port)).Info("gRPC health server starting")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

func (s *HealthServer) SetServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown переводит в NOT_SERVING и останавливает сервер.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
