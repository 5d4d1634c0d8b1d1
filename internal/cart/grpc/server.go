package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hipstershop/storefront/api/rpc"
	"github.com/hipstershop/storefront/internal/cart/app"
	"github.com/hipstershop/storefront/internal/cart/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	rpc.UnimplementedCartServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) AddItem(ctx context.Context, req *rpc.AddItemRequest) (*rpc.Empty, error) {
	if req.Item == nil {
		return nil, status.Error(codes.InvalidArgument, "missing item")
	}

	annotateUser(ctx, req.UserID)

	err := s.svc.AddItem(ctx, domain.CartItem{
		UserID:    req.UserID,
		ProductID: req.Item.ProductID,
		Quantity:  req.Item.Quantity,
	})
	if err != nil {
		return nil, s.mapErr(ctx, "AddItem", err)
	}

	return &rpc.Empty{}, nil
}

func (s *Server) GetCart(ctx context.Context, req *rpc.GetCartRequest) (*rpc.Cart, error) {
	annotateUser(ctx, req.UserID)

	items, err := s.svc.GetCart(ctx, req.UserID)
	if err != nil {
		return nil, s.mapErr(ctx, "GetCart", err)
	}

	out := make([]*rpc.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, &rpc.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &rpc.Cart{UserID: req.UserID, Items: out}, nil
}

func (s *Server) EmptyCart(ctx context.Context, req *rpc.EmptyCartRequest) (*rpc.Empty, error) {
	annotateUser(ctx, req.UserID)

	if err := s.svc.EmptyCart(ctx, req.UserID); err != nil {
		return nil, s.mapErr(ctx, "EmptyCart", err)
	}

	return &rpc.Empty{}, nil
}

// mapErr translates datastore outcomes to RPC statuses. The cause is logged
// here and never echoed to the caller.
func (s *Server) mapErr(ctx context.Context, method string, err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.log.ErrorContext(ctx, "cart handler failed", slog.String("method", method), slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}

func annotateUser(ctx context.Context, userID string) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.user_id", userID))
}
