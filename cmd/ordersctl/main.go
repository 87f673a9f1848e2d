package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/sms-order-service/internal/catalog"
	"github.com/SergeyBogomolovv/sms-order-service/internal/cli"
	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/internal/notify"
	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
	"github.com/SergeyBogomolovv/sms-order-service/internal/repo"
	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/cache"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	root := cli.NewRootCmd(func(ctx context.Context) (cli.Deps, error) {
		conf := config.New()
		if err := conf.Validate(); err != nil {
			return cli.Deps{}, fmt.Errorf("invalid config: %w", err)
		}

		// Логи сервисов не смешиваются с выводом команд
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

		cat, err := catalog.Load(conf.CatalogFile)
		if err != nil {
			return cli.Deps{}, err
		}

		store, err := repo.Open(ctx, logger, conf.Store)
		if err != nil {
			return cli.Deps{}, err
		}
		closers = append(closers, store)

		var notifier service.Notifier = notify.Nop{}
		if conf.Kafka.Enabled() {
			publisher := notify.NewKafkaPublisher(logger, conf.Kafka)
			closers = append(closers, publisher)
			notifier = publisher
		}

		smshub := provider.NewClient(logger, conf.Provider, nil)
		return cli.Deps{
			Query:   service.NewQueryService(store, cat),
			Orders:  service.NewOrderService(logger, store, smshub, cat, notifier),
			Balance: service.NewBalanceService(logger, smshub, cache.NewLRUCache[string](1, 0)),
		}, nil
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	godotenv.Load()
}
