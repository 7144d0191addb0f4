package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dezh-tech/immortal/pkg/logger"

	"gcsfake/config"
	"gcsfake/internal/infrastructure/broker"
)

const eventsConsumer = "gcsfake-events"

// HandleEvents prints the object notifications of a running server until
// interrupted.
func HandleEvents(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	if !cfg.NotificationsEnabled() {
		ExitOnError(errors.New("BROKER_URI is not set"))
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := broker.NewReceiver(client).Messages(ctx, eventsConsumer)
	if err != nil {
		ExitOnError(err)
	}

	for msg := range messages {
		event, err := msg.Event()
		if err != nil {
			logger.Error("invalid notification", "body", msg.Body(), "err", err)
		} else {
			fmt.Printf("%s gs://%s/%s generation=%d size=%d\n", //nolint
				event.EventType, event.Bucket, event.Name, event.Generation, event.Size)
		}

		if err := msg.Ack(); err != nil {
			logger.Error("ack failed", "err", err)
		}
	}
}
