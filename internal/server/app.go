// Package server wires the vineauth components together: configuration,
// PostgreSQL storage and migrations, the SMTP notifier, the user service and
// the HTTP server. It also handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/vineauth/internal/logging"
	"github.com/dmitrijs2005/vineauth/internal/server/config"
	"github.com/dmitrijs2005/vineauth/internal/server/notify"
	"github.com/dmitrijs2005/vineauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vineauth/internal/server/rest"
	"github.com/dmitrijs2005/vineauth/internal/server/services"
	"github.com/dmitrijs2005/vineauth/internal/timex"
)

var openDB = repomanager.OpenDB

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sender := notify.NewSMTPSender(notify.SMTPConfig{
		Host:     c.MailHost,
		Port:     c.MailPort,
		User:     c.MailUser,
		Password: c.MailPassword,
		From:     c.MailFrom,
	})
	notifier := notify.NewResetNotifier(sender, c.ResetRecipientOverride)

	us := services.NewUserService(db, rm, c, notifier, logger)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx, drainCtx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config, app.logger, app.userService)

	if err := s.Serve(ctx, drainCtx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or ctx is cancelled, then
// drains HTTP requests, waits for outstanding password resets and closes the
// database. Draining and waiting share one ShutdownTimeout budget.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	graceCtx, cancelGrace := timex.GraceContext(ctx, app.config.ShutdownTimeout)
	defer cancelGrace()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, graceCtx, cancelFunc)
	}()

	wg.Wait()

	app.shutdown(ctx, graceCtx)
}

func (app *App) shutdown(ctx, graceCtx context.Context) {
	if err := app.userService.Shutdown(graceCtx); err != nil {
		app.logger.Warn(ctx, "password resets cancelled at shutdown", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
