package frontend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hipstershop/storefront/api/rpc"
)

type fakeRegClient struct {
	resp *rpc.RegisterResponse
	err  error
	got  *rpc.RegisterRequest
}

func (c *fakeRegClient) Register(ctx context.Context, in *rpc.RegisterRequest, opts ...grpc.CallOption) (*rpc.RegisterResponse, error) {
	c.got = in
	return c.resp, c.err
}

func newTestMux(client rpc.RegistrationServiceClient) *http.ServeMux {
	mux := http.NewServeMux()
	New(client, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	return mux
}

func postRegister(t *testing.T, mux *http.ServeMux, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestIndexRendersForm(t *testing.T) {
	mux := newTestMux(&fakeRegClient{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/register"`) {
		t.Fatal("expected registration form in body")
	}
}

func TestRegisterSuccess(t *testing.T) {
	client := &fakeRegClient{resp: &rpc.RegisterResponse{Success: true, Message: "Registration successful"}}
	mux := newTestMux(client)

	w := postRegister(t, mux, url.Values{
		"name":     {"Ann"},
		"email":    {"ann@x.com"},
		"password": {"p"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Registration successful" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
	if client.got == nil || client.got.Email != "ann@x.com" || client.got.Password != "p" {
		t.Fatalf("unexpected rpc request: %+v", client.got)
	}
}

func TestRegisterBusinessFailure(t *testing.T) {
	// Transport OK, Success false: still a 500 at the HTTP boundary.
	client := &fakeRegClient{resp: &rpc.RegisterResponse{Success: false, Message: "Error saving data"}}
	mux := newTestMux(client)

	w := postRegister(t, mux, url.Values{"name": {"Ann"}})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != "Error saving data" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestRegisterTransportFailure(t *testing.T) {
	client := &fakeRegClient{err: status.Error(codes.Unavailable, "connection refused")}
	mux := newTestMux(client)

	w := postRegister(t, mux, url.Values{"name": {"Ann"}})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != "Error saving data" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}
