// Package gateway binds every capability to the single RPC listener and
// dials outbound connections through the same interceptor chain, so the
// server and client sides of the wire share one abstraction.
package gateway

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/hipstershop/storefront/internal/tracing"
)

// Capability pairs a service descriptor with its handler implementation.
// The full set is resolved once at startup; dispatch after that is the
// grpc server's method table, not a per-call lookup.
type Capability struct {
	Desc *grpc.ServiceDesc
	Impl any
}

type Server struct {
	grpc *grpc.Server
	log  *slog.Logger
}

func NewServer(log *slog.Logger, caps ...Capability) *Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(tracing.UnaryServerInterceptor()),
	)
	for _, c := range caps {
		srv.RegisterService(c.Desc, c.Impl)
	}
	return &Server{grpc: srv, log: log}
}

// Serve blocks on the listener. The bind itself happens in main and is
// fatal there; nothing can be served without it.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info("grpc starting", slog.String("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Shutdown races GracefulStop against the context so a hung stream cannot
// stall process exit.
func (s *Server) Shutdown(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.log.Warn("graceful stop timeout, forcing stop")
		s.grpc.Stop()
	case <-stopped:
	}
}

// ShutdownTimeout bounds how long Shutdown waits for in-flight RPCs.
const ShutdownTimeout = 10 * time.Second
