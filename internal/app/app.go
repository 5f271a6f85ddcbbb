package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/seat_ledger/internal/adapter/handler"
	"github.com/srgjo27/seat_ledger/internal/adapter/publisher"
	"github.com/srgjo27/seat_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/seat_ledger/internal/core/ports"
	"github.com/srgjo27/seat_ledger/internal/core/services"
	"github.com/srgjo27/seat_ledger/internal/platform/config"
	"github.com/srgjo27/seat_ledger/internal/platform/database"
	"github.com/srgjo27/seat_ledger/internal/platform/metrics"
)

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	server  *http.Server
	closers []func() error
}

type stores struct {
	catalog  ports.CatalogRepository
	ledger   ports.LedgerRepository
	txm      ports.TxManager
	bookings ports.BookingRepository
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	st, err := a.openStores(ctx)
	if err != nil {
		a.close()
		return nil, err
	}

	opts := []services.Option{services.WithLogger(log)}

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, services.WithMetrics(metrics.NewRecorder(reg)))
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	if cfg.Redis.Enabled {
		client, err := a.openRedis(ctx)
		if err != nil {
			a.close()
			return nil, err
		}
		opts = append(opts, services.WithSeatEvents(publisher.NewSeatPublisher(client)))
	}

	if cfg.AMQP.URL != "" {
		pub, err := publisher.DialBookingPublisher(cfg.AMQP.URL, cfg.AMQP.BookingQueue)
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, pub.Close)
		opts = append(opts, services.WithBookingEvents(pub))
		log.Info("booking events enabled", "queue", cfg.AMQP.BookingQueue)
	}

	h := handler.New(
		services.NewSeatService(st.catalog, st.ledger, st.txm, cfg.LockTTL, opts...),
		services.NewBookingService(st.catalog, st.ledger, st.txm, st.bookings, opts...),
		services.NewCatalogService(st.catalog, opts...),
		log,
	)

	a.server = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.NewRouter(h, log, metricsHandler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return a, nil
}

func (a *App) openStores(ctx context.Context) (stores, error) {
	if a.cfg.StoreDriver == config.DriverMemory {
		a.log.Warn("using in-memory store, data is lost on exit")
		store := memory.NewStore(memory.DemoCatalog(time.Now()))
		return stores{catalog: store, ledger: store, txm: store, bookings: store}, nil
	}

	db, err := database.NewPostgresDB(ctx, a.cfg.Database, a.log)
	if err != nil {
		return stores{}, err
	}
	a.closers = append(a.closers, db.Close)

	if err := database.Migrate(db); err != nil {
		return stores{}, err
	}

	return postgresStores(db), nil
}

func postgresStores(db *sql.DB) stores {
	return stores{
		catalog:  postgres.NewCatalogRepository(db),
		ledger:   postgres.NewLedgerRepository(db),
		txm:      postgres.NewTxManager(db),
		bookings: postgres.NewBookingRepository(db),
	}
}

func (a *App) openRedis(ctx context.Context) (*redis.Client, error) {
	a.log.Info("connecting to redis", "addr", a.cfg.Redis.Addr)

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	a.log.Info("redis connected")
	return client, nil
}

// Run serves until SIGINT/SIGTERM or until the server fails.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", "addr", a.server.Addr, "env", a.cfg.Env, "lock_ttl", a.cfg.LockTTL)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.close()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)
	a.close()

	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.log.Info("server exited")
	return nil
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close resource", "error", err)
		}
	}
	a.closers = nil
}

// Exit logs err and terminates the process.
func Exit(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
