package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hipstershop/storefront/api/rpc"
	cartapp "github.com/hipstershop/storefront/internal/cart/app"
	cartgrpc "github.com/hipstershop/storefront/internal/cart/grpc"
	cartpg "github.com/hipstershop/storefront/internal/cart/infra/postgres"
	catalogapp "github.com/hipstershop/storefront/internal/catalog/app"
	cataloggrpc "github.com/hipstershop/storefront/internal/catalog/grpc"
	catalogpg "github.com/hipstershop/storefront/internal/catalog/infra/postgres"
	"github.com/hipstershop/storefront/internal/frontend"
	"github.com/hipstershop/storefront/internal/gateway"
	"github.com/hipstershop/storefront/internal/health"
	regapp "github.com/hipstershop/storefront/internal/registration/app"
	reggrpc "github.com/hipstershop/storefront/internal/registration/grpc"
	regpg "github.com/hipstershop/storefront/internal/registration/infra/postgres"
	"github.com/hipstershop/storefront/internal/stubs"
	"github.com/hipstershop/storefront/internal/tracing"
	"github.com/hipstershop/storefront/pkg/config"
	"github.com/hipstershop/storefront/pkg/logger"
	"github.com/hipstershop/storefront/pkg/metrics"
	"github.com/hipstershop/storefront/pkg/postgres"
	"github.com/hipstershop/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	tp, err := tracing.NewProvider(ctx, cfg.OTLPEndpoint, "storefront")
	if err != nil {
		log.Error("tracer provider init failed", slog.Any("err", err))
		os.Exit(1)
	}

	store, err := postgres.Open(postgres.Config{
		Host: cfg.PostgresHost,
		Port: cfg.PostgresPort,
		User: cfg.PostgresUser,
		Pass: cfg.PostgresPass,
		DB:   cfg.PostgresDB,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer store.Close()

	// Startup connectivity is checked once and only logged; the listeners
	// still bind so /health can report the degraded state.
	if err := store.Ping(ctx); err != nil {
		log.Error("postgres unreachable at startup", slog.Any("err", err))
	} else {
		log.Info("connected to postgres")
	}

	sup := health.NewSupervisor(store, cfg.DBProbeInterval, log)
	go sup.Run(ctx)

	// Capabilities
	cartSvc := cartapp.NewService(cartpg.NewCartRepo(store))
	catalogSvc := catalogapp.NewService(catalogpg.NewProductRepo(store))
	regSvc := regapp.NewService(regpg.NewUserRepo(store))

	rpcServer := gateway.NewServer(log,
		gateway.Capability{Desc: &rpc.CartService_ServiceDesc, Impl: cartgrpc.NewServer(cartSvc, log)},
		gateway.Capability{Desc: &rpc.ProductCatalogService_ServiceDesc, Impl: cataloggrpc.NewServer(catalogSvc, log)},
		gateway.Capability{Desc: &rpc.RegistrationService_ServiceDesc, Impl: reggrpc.NewServer(regSvc, log)},
		gateway.Capability{Desc: &rpc.ShippingService_ServiceDesc, Impl: stubs.ShippingServer{}},
		gateway.Capability{Desc: &rpc.CurrencyService_ServiceDesc, Impl: stubs.CurrencyServer{}},
		gateway.Capability{Desc: &rpc.PaymentService_ServiceDesc, Impl: stubs.PaymentServer{}},
		gateway.Capability{Desc: &rpc.EmailService_ServiceDesc, Impl: stubs.EmailServer{}},
		gateway.Capability{Desc: &rpc.CheckoutService_ServiceDesc, Impl: stubs.CheckoutServer{}},
		gateway.Capability{Desc: &rpc.AdService_ServiceDesc, Impl: stubs.AdServer{}},
	)

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	// The front-end reaches Registration through the gateway as a client,
	// over the same listener the inbound calls use.
	conn, err := gateway.Dial(fmt.Sprintf("localhost:%d", cfg.GRPCPort))
	if err != nil {
		log.Error("dial failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer conn.Close()

	mux := http.NewServeMux()
	frontend.New(rpc.NewRegistrationServiceClient(conn), log).Register(mux)
	mux.Handle("GET /health", sup.Handler())
	mux.Handle("GET /metrics", metrics.Handler())

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           metrics.InstrumentHandler(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var g errgroup.Group
	g.Go(func() error {
		return rpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cancel()
			return err
		}
		return nil
	})

	<-ctx.Done()
	log.Info("shutdown requested")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), gateway.ShutdownTimeout)
	defer stopCancel()

	if err := httpServer.Shutdown(stopCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}
	rpcServer.Shutdown(stopCtx)

	if err := g.Wait(); err != nil {
		log.Error("listener error", slog.Any("err", err))
	}

	if err := tp.Shutdown(stopCtx); err != nil {
		log.Error("tracer shutdown error", slog.Any("err", err))
	}
	log.Info("bye")
}
