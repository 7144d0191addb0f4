package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"gcsfake"
	"gcsfake/config"
	"gcsfake/internal/infrastructure/broker"
	"gcsfake/internal/infrastructure/fixture"
	"gcsfake/internal/presentation/handler"
	"gcsfake/pkg/fakegcs"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running gcsfake", "version", gcsfake.StringVersion())

	var opts []fakegcs.Option
	if cfg.NotificationsEnabled() {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		opts = append(opts, fakegcs.WithNotifier(broker.NewPublisher(brokerClient, cfg.PublisherConfig)))
	}

	client := fakegcs.NewClient(opts...)
	for _, b := range cfg.Storage.Buckets {
		if _, err := client.Bucket(b.Name); err != nil {
			ExitOnError(err)
		}
		client.SetPermissions(b.Name, b.Permissions)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Storage.FixtureDir != "" {
		if _, err := fixture.Load(ctx, cfg.Storage.FixtureDir, client, cfg.Storage.Workers); err != nil {
			ExitOnError(err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))

	handler.NewHandlers(client, cfg.Server.Address).Register(e)

	go func() {
		if err := e.Start(cfg.Server.Bind); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down gcsfake")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
}
