package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hipstershop/storefront/api/rpc"
	"github.com/hipstershop/storefront/internal/catalog/app"
	"github.com/hipstershop/storefront/internal/catalog/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	rpc.UnimplementedProductCatalogServiceServer
	svc *app.Service
	log *slog.Logger
}

func NewServer(svc *app.Service, log *slog.Logger) *Server {
	return &Server{svc: svc, log: log}
}

func (s *Server) ListProducts(ctx context.Context, _ *rpc.Empty) (*rpc.ListProductsResponse, error) {
	products, err := s.svc.ListProducts(ctx)
	if err != nil {
		return nil, s.mapErr(ctx, "ListProducts", err)
	}
	return &rpc.ListProductsResponse{Products: toProtoList(products)}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *rpc.GetProductRequest) (*rpc.Product, error) {
	p, err := s.svc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, s.mapErr(ctx, "GetProduct", err)
	}
	return toProto(p), nil
}

func (s *Server) SearchProducts(ctx context.Context, req *rpc.SearchProductsRequest) (*rpc.SearchProductsResponse, error) {
	products, err := s.svc.SearchProducts(ctx, req.Query)
	if err != nil {
		return nil, s.mapErr(ctx, "SearchProducts", err)
	}
	return &rpc.SearchProductsResponse{Results: toProtoList(products)}, nil
}

func (s *Server) mapErr(ctx context.Context, method string, err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	s.log.ErrorContext(ctx, "catalog handler failed", slog.String("method", method), slog.Any("err", err))
	return status.Error(codes.Internal, "internal error")
}

func toProtoList(products []domain.Product) []*rpc.Product {
	out := make([]*rpc.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return out
}

func toProto(p domain.Product) *rpc.Product {
	return &rpc.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Picture:     p.Picture,
		PriceUSD: &rpc.Money{
			CurrencyCode: p.PriceUSD.CurrencyCode,
			Units:        p.PriceUSD.Units,
			Nanos:        p.PriceUSD.Nanos,
		},
		Categories: p.Categories,
	}
}
