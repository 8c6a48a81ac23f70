package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/engagementpb"
	"github.com/QuangTung97/promo-engagement/pkg/grpclib"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func registerGRPCGateway(ctx context.Context, mux *runtime.ServeMux, endpoint string, opts []grpc.DialOption) {
	err := engagementpb.RegisterEngagementServiceHandlerFromEndpoint(ctx, mux, endpoint, opts)
	if err != nil {
		panic(err)
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	zap.ReplaceGlobals(logger)

	tracerProvider, shutdown := otellib.InitOtel("engagement-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
			grpc_zap.PayloadUnaryServerInterceptor(logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	db := conf.MySQL.MustConnect(logger)

	e := newEngine(conf, db, prometheus.DefaultRegisterer)
	defer e.close()

	engagementpb.RegisterEngagementServiceServer(grpcServer, engagement.NewServer(e.service))

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	startHTTPAndGRPCServers(conf, grpcServer)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		startSchedulerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func payloadLogDecider(_ context.Context, fullMethod string, _ interface{}) bool {
	return fullMethod != engagementpb.MethodGetAssignment
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the gRPC and HTTP gateway server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func newHTTPHandler(ctx context.Context, conf config.Config) http.Handler {
	gwMux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{}),
	)
	registerGRPCGateway(ctx, gwMux, conf.Server.GRPC.String(), []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	})

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	httpMux.Handle("/", gwMux)
	return httpMux
}

// startHTTPAndGRPCServers blocks until SIGINT/SIGTERM or until one of the servers fails
func startHTTPAndGRPCServers(conf config.Config, grpcServer *grpc.Server) {
	logger := zap.L()
	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           newHTTPHandler(ctx, conf),
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
	if err != nil {
		logger.Fatal("listen gRPC", zap.Error(err))
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		if err := grpcServer.Serve(listener); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}
	logger.Info("shutdown gRPC and HTTP servers successfully")
}
