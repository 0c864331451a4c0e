package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/handlers"
	"github.com/GlebRadaev/suilottery/internal/journal"
	"github.com/GlebRadaev/suilottery/internal/mirror"
	"github.com/GlebRadaev/suilottery/internal/pg"
	"github.com/GlebRadaev/suilottery/internal/service"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/clients"
	"github.com/GlebRadaev/suilottery/pkg/logger"
)

const (
	journalWorkers  = 4
	shutdownTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	journal journal.Store
	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.openJournal(ctx); err != nil {
		return err
	}

	keystore, err := wallet.LoadKeystore(cfg.Keystore)
	if err != nil {
		zap.L().Error("load keystore failed: ", zap.Error(err))
		return fmt.Errorf("can't load keystore: %w", err)
	}

	client := clients.NewHTTPClient(cfg.HTTPTimeout)
	gateway := chain.New(cfg, client)
	session := wallet.New(cfg, keystore, gateway)

	a.srv = service.New(cfg, session, gateway, mirror.New(cfg, client), a.journal)
	a.api = handlers.New(cfg, a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.Int("accounts", len(keystore.Addresses())),
		zap.String("package", cfg.PackageID),
	)
	return nil
}

// openJournal connects the operation journal, or installs a no-op one when
// no database is configured.
func (a *Application) openJournal(ctx context.Context) error {
	if a.cfg.Database == "" {
		zap.L().Info("operation journal disabled: no database configured")
		a.journal = journal.Nop{}
		return nil
	}

	pool, err := pg.Connect(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	writer := journal.NewWriter(journal.New(pg.New(pool)), journalWorkers)
	a.journal = writer
	// The writer drains before the pool goes away.
	a.closers = append(a.closers, writer.Close, pool.Close)
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := g.Wait(); err != nil {
			a.errCh <- err
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for _, closeFn := range a.closers {
		closeFn()
	}

	return appErr
}
