// Package frontend is the thin HTML face of the gateway: it renders the
// registration form and proxies the submission over the RPC boundary.
package frontend

import (
	"html/template"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/status"

	"github.com/hipstershop/storefront/api/rpc"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Hipster Shop</title></head>
<body>
  <h1>Create an account</h1>
  <form action="/register" method="POST">
    <label>Name <input type="text" name="name"></label><br>
    <label>Email <input type="email" name="email"></label><br>
    <label>Password <input type="password" name="password"></label><br>
    <button type="submit">Register</button>
  </form>
</body>
</html>
`

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type Handler struct {
	reg rpc.RegistrationServiceClient
	log *slog.Logger
}

func New(reg rpc.RegistrationServiceClient, log *slog.Logger) *Handler {
	return &Handler{reg: reg, log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("POST /register", h.register)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, nil); err != nil {
		h.log.Error("render index failed", slog.Any("err", err))
	}
}

// register issues exactly one outbound RPC per request; no retries. A
// transport failure and a business failure both surface as the same 500 to
// the browser, matching the shop's original behaviour.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("storefront-frontend").Start(r.Context(), "POST /register",
		trace.WithSpanKind(trace.SpanKindServer),
	)
	defer span.End()

	resp, err := h.reg.Register(ctx, &rpc.RegisterRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	})

	switch {
	case err != nil:
		st, _ := status.FromError(err)
		span.SetStatus(otelcodes.Error, st.Message())
		h.log.ErrorContext(ctx, "register rpc failed", slog.Any("err", err))
		writeText(w, http.StatusInternalServerError, "Error saving data")
	case !resp.Success:
		span.SetStatus(otelcodes.Error, resp.Message)
		h.log.WarnContext(ctx, "registration rejected", slog.String("message", resp.Message))
		writeText(w, http.StatusInternalServerError, "Error saving data")
	default:
		span.SetStatus(otelcodes.Ok, "")
		writeText(w, http.StatusOK, "Registration successful")
	}
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
