package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Raghuramreddyu/House-Rental-System/internal/config"
	"github.com/Raghuramreddyu/House-Rental-System/internal/handler"
	"github.com/Raghuramreddyu/House-Rental-System/internal/metrics"
	"github.com/Raghuramreddyu/House-Rental-System/internal/middleware"
	"github.com/Raghuramreddyu/House-Rental-System/internal/notification"
	"github.com/Raghuramreddyu/House-Rental-System/internal/repository"
	"github.com/Raghuramreddyu/House-Rental-System/internal/router"
	"github.com/Raghuramreddyu/House-Rental-System/internal/service"
	"github.com/Raghuramreddyu/House-Rental-System/internal/storage"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *mongo.Database
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HouseBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := repository.Connect(context.Background(), a.cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := repository.EnsureIndexes(context.Background(), db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("uri", a.cfg.Mongo.URI),
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	houseRepo := repository.NewHouseRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)

	imageStore, err := storage.NewDiskImageStore(a.cfg.Storage.UploadsDir)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	authService := service.NewAuthService(userRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	houseService := service.NewHouseService(houseRepo, imageStore, a.cfg.Storage.MaxImages, a.log)
	bookingService := service.NewBookingService(bookingRepo, houseRepo, userRepo, n, a.log)

	metrics.Register()

	h := handler.NewHandler(authService, houseService, bookingService, a.cfg.Storage.BaseURL)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(authService),
		a.cfg.Storage.UploadsDir,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Client().Disconnect(shutdownCtx); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
