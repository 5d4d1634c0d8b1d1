package grpc

import (
	"context"
	"log/slog"

	"github.com/hipstershop/storefront/api/rpc"
	"github.com/hipstershop/storefront/internal/registration/app"
	"github.com/hipstershop/storefront/internal/registration/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Server implements RegistrationService. Unlike the other capabilities it
// reports datastore failure through the Success field with an OK transport
// status; the HTTP front-end inspects the field. Kept that way because the
// cross-protocol consumers depend on it.
type Server struct {
	rpc.UnimplementedRegistrationServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_email", req.Email))

	err := s.svc.Register(ctx, domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "user insert failed", slog.Any("err", err))
		return &rpc.RegisterResponse{Success: false, Message: "Error saving data"}, nil
	}

	return &rpc.RegisterResponse{Success: true, Message: "Registration successful"}, nil
}
