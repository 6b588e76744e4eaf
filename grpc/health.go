// Package grpc exposes the bot's liveness over the standard gRPC health protocol.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service reported alongside the overall status.
const ServiceName = "hangman.Bot"

type HealthServer struct {
	log    *slog.Logger
	server *grpc.Server
	health *health.Server
}

// NewHealthServer starts NOT_SERVING until SetServing is called.
func NewHealthServer(log *slog.Logger) *HealthServer {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	h := &HealthServer{log: log, server: server, health: healthServer}
	h.SetServing(false)
	return h
}

func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// ListenAndServe blocks until ctx is canceled or the server fails.
func (h *HealthServer) ListenAndServe(ctx context.Context, address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return h.Serve(ctx, listener)
}

func (h *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		h.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		if err := h.server.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		h.health.Shutdown()
		h.server.GracefulStop()
		h.log.Info("gRPC health server stopped")
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}
