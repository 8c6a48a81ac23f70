package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/pkg/otellib"
	"github.com/QuangTung97/promo-engagement/pkg/sweeplock"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const sweepLockKey = "engagement:sweep-lock"

type scheduler struct {
	service  engagement.IService
	locker   *sweeplock.Locker
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

func (s *scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick runs one sweep and one reconcile pass while holding the lock, other replicas skip
func (s *scheduler) tick(ctx context.Context) {
	lease, ok, err := s.locker.TryAcquire(ctx, sweepLockKey)
	if err != nil {
		s.logger.Error("acquire sweep lock", zap.Error(err))
		return
	}
	if !ok {
		s.logger.Debug("sweep lock held by another replica")
		return
	}
	defer func() {
		if err := lease.Release(context.Background()); err != nil {
			s.logger.Warn("release sweep lock", zap.Error(err))
		}
	}()

	ctx = otellib.ToContext(ctx, s.logger)

	sweepCtx, cancelSweep := context.WithTimeout(ctx, s.timeout)
	_, err = s.service.Sweep(sweepCtx)
	cancelSweep()
	if err != nil {
		s.logger.Error("sweep", zap.Error(err))
		return
	}

	if err := lease.Extend(ctx); err != nil {
		s.logger.Warn("extend sweep lock", zap.Error(err))
		return
	}

	// the extended lease covers a full timeout again
	reconcileCtx, cancelReconcile := context.WithTimeout(ctx, s.timeout)
	defer cancelReconcile()

	if _, err := s.service.Reconcile(reconcileCtx); err != nil {
		s.logger.Error("reconcile", zap.Error(err))
	}
}

func startScheduler(metricsAddr string) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	zap.ReplaceGlobals(logger)

	db := conf.MySQL.MustConnect(logger)

	rdb, err := sweeplock.Connect(context.Background(), conf.Redis)
	if err != nil {
		logger.Fatal("connect redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	e := newEngine(conf, db, prometheus.DefaultRegisterer)
	defer e.close()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		err := http.ListenAndServe(metricsAddr, mux)
		if err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &scheduler{
		service:  e.service,
		locker:   sweeplock.New(rdb, conf.Engine.LockTTL),
		interval: conf.Engine.SweepInterval,
		timeout:  conf.Engine.LockTTL,
		logger:   logger,
	}

	logger.Info("scheduler started",
		zap.Duration("interval", s.interval), zap.Duration("lockTTL", conf.Engine.LockTTL))
	s.run(ctx)
	logger.Info("scheduler stopped")
}

func startSchedulerCommand() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "run the resend/expiry sweep and reward reconciliation loop",
		Run: func(cmd *cobra.Command, args []string) {
			startScheduler(metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":10089", "listen address of the /metrics endpoint")
	return cmd
}
