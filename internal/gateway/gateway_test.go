package gateway

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/hipstershop/storefront/api/rpc"
)

type fakeRegServer struct {
	rpc.UnimplementedRegistrationServiceServer
}

func (fakeRegServer) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	if req.Email == "" {
		return &rpc.RegisterResponse{Success: false, Message: "Error saving data"}, nil
	}
	return &rpc.RegisterResponse{Success: true, Message: "Registration successful"}, nil
}

type fakeCartServer struct {
	rpc.UnimplementedCartServiceServer
}

func (fakeCartServer) GetCart(ctx context.Context, req *rpc.GetCartRequest) (*rpc.Cart, error) {
	if req.UserID == "missing" {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &rpc.Cart{
		UserID: req.UserID,
		Items:  []*rpc.CartItem{{ProductID: "p1", Quantity: 2}},
	}, nil
}

// startGateway serves the given capabilities over an in-memory listener
// and dials back through the real client path, codec included.
func startGateway(t *testing.T, caps ...Capability) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)), caps...)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	})

	conn, err := Dial("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestRegisterRoundTrip(t *testing.T) {
	conn := startGateway(t, Capability{Desc: &rpc.RegistrationService_ServiceDesc, Impl: fakeRegServer{}})
	client := rpc.NewRegistrationServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("success", func(t *testing.T) {
		resp, err := client.Register(ctx, &rpc.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "p"})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if !resp.Success || resp.Message != "Registration successful" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("business failure keeps OK transport status", func(t *testing.T) {
		resp, err := client.Register(ctx, &rpc.RegisterRequest{Name: "Ann"})
		if err != nil {
			t.Fatalf("expected OK status, got %v", err)
		}
		if resp.Success {
			t.Fatal("expected Success=false")
		}
	})
}

func TestStatusCodesCrossTheWire(t *testing.T) {
	conn := startGateway(t, Capability{Desc: &rpc.CartService_ServiceDesc, Impl: fakeCartServer{}})
	client := rpc.NewCartServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("payload decodes", func(t *testing.T) {
		cart, err := client.GetCart(ctx, &rpc.GetCartRequest{UserID: "u1"})
		if err != nil {
			t.Fatalf("GetCart failed: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].ProductID != "p1" {
			t.Fatalf("unexpected cart: %+v", cart)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := client.GetCart(ctx, &rpc.GetCartRequest{UserID: "missing"})
		if status.Code(err) != codes.NotFound {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("unregistered capability -> Unimplemented", func(t *testing.T) {
		_, err := rpc.NewAdServiceClient(conn).GetAds(ctx, &rpc.AdRequest{})
		if status.Code(err) != codes.Unimplemented {
			t.Fatalf("expected Unimplemented, got %v", err)
		}
	})
}
