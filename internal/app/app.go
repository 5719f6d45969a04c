package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/syahmibakri/karya-admin/internal/config"
	"github.com/syahmibakri/karya-admin/internal/events"
	"github.com/syahmibakri/karya-admin/internal/handlers"
	"github.com/syahmibakri/karya-admin/internal/notify"
	"github.com/syahmibakri/karya-admin/internal/pg"
	"github.com/syahmibakri/karya-admin/internal/repo"
	"github.com/syahmibakri/karya-admin/internal/service"
	"github.com/syahmibakri/karya-admin/pkg/filesign"
	"github.com/syahmibakri/karya-admin/pkg/logger"
	"github.com/syahmibakri/karya-admin/pkg/mailer"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	listener    *notify.Listener
	broadcaster *notify.Broadcaster

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	signer := filesign.New(cfg.FileSignSecret, cfg.FileBaseURL)

	// Concrete constructors may return nil when their backend is not
	// configured; assign through a local so the interface stays nil too.
	var mail mailer.Mailer
	if m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword); m != nil {
		mail = m
	}
	var publisher events.Publisher
	if p := events.NewKafkaPublisher(cfg); p != nil {
		publisher = p
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, signer, mail, publisher)
	a.broadcaster = notify.NewBroadcaster()
	a.api = handlers.New(a.srv, a.broadcaster)
	a.listener = notify.New(pool)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startChangeListener(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startChangeListener(ctx context.Context) {
	a.listener.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		for table := range a.listener.Events() {
			zap.L().Debug("table changed, broadcasting", zap.String("table", table))
			a.broadcaster.Notify()
		}
	}()
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

	return appErr
}
