package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hipstershop/storefront/api/rpc"
	"github.com/hipstershop/storefront/internal/cart/app"
	"github.com/hipstershop/storefront/internal/cart/domain"
)

type stubRepo struct {
	items []domain.CartItem
	err   error
}

func (r *stubRepo) Upsert(ctx context.Context, item domain.CartItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, item)
	return nil
}

func (r *stubRepo) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return r.items, r.err
}

func (r *stubRepo) Clear(ctx context.Context, userID string) error {
	return r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddItemRequiresItem(t *testing.T) {
	srv := NewServer(app.NewService(&stubRepo{}), testLogger())

	_, err := srv.AddItem(context.Background(), &rpc.AddItemRequest{UserID: "u1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAddItemRoundTrip(t *testing.T) {
	repo := &stubRepo{}
	srv := NewServer(app.NewService(repo), testLogger())

	_, err := srv.AddItem(context.Background(), &rpc.AddItemRequest{
		UserID: "u1",
		Item:   &rpc.CartItem{ProductID: "p1", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	cart, err := srv.GetCart(context.Background(), &rpc.GetCartRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != "p1" || cart.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", cart)
	}
	if cart.UserID != "u1" {
		t.Fatalf("expected user id echoed, got %q", cart.UserID)
	}
}

func TestDatastoreFailureMapsToInternal(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection reset")}
	srv := NewServer(app.NewService(repo), testLogger())

	t.Run("GetCart", func(t *testing.T) {
		_, err := srv.GetCart(context.Background(), &rpc.GetCartRequest{UserID: "u1"})
		st, ok := status.FromError(err)
		if !ok || st.Code() != codes.Internal {
			t.Fatalf("expected Internal, got %v", err)
		}
		// The underlying cause must not leak to the caller.
		if st.Message() != "internal error" {
			t.Fatalf("expected generic message, got %q", st.Message())
		}
	})

	t.Run("EmptyCart", func(t *testing.T) {
		_, err := srv.EmptyCart(context.Background(), &rpc.EmptyCartRequest{UserID: "u1"})
		if status.Code(err) != codes.Internal {
			t.Fatalf("expected Internal, got %v", err)
		}
	})
}
