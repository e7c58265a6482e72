package grpchealth

import (
	"errors"
	"fmt"
	"net"
	"time"

	"loadhive/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

type serverLogger interface {
	Info(msg string, fields ...logger.Field)
}

// Server exposes the standard grpc.health.v1 protocol for the process.
// The empty service name reports the whole process.
type Server struct {
	log      serverLogger
	server   *grpc.Server
	health   *health.Server
	services []string
}

func New(log serverLogger, services ...string) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	all := append([]string{""}, services...)
	for _, name := range all {
		healthServer.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		log:      log,
		server:   server,
		health:   healthServer,
		services: all,
	}
}

// Serve blocks until the listener fails or Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting", logger.NewField("addr", lis.Addr().String()))

	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// Drain flips every service to NOT_SERVING so load balancers stop routing.
func (s *Server) Drain() {
	for _, name := range s.services {
		s.health.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
