package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/sms-order-service/docs"
	"github.com/SergeyBogomolovv/sms-order-service/internal/app"
	"github.com/SergeyBogomolovv/sms-order-service/internal/catalog"
	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/internal/handler"
	"github.com/SergeyBogomolovv/sms-order-service/internal/notify"
	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
	"github.com/SergeyBogomolovv/sms-order-service/internal/repo"
	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/cache"

	"github.com/joho/godotenv"
)

// @title           SMS Order Service API
// @version         1.0
// @description     Аренда номеров для приема SMS через провайдера
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cat, err := catalog.Load(conf.CatalogFile)
	panicIfErr("failed to load catalog", err)

	store, err := repo.Open(ctx, logger, conf.Store)
	panicIfErr("failed to open order store", err)

	smshub := provider.NewClient(logger, conf.Provider, nil)
	balanceCache := cache.NewLRUCache[string](1, conf.Cache.BalanceTTL)

	hub := notify.NewHub(logger)
	notifiers := notify.Multi{hub}

	app := app.New(logger, conf)
	// Закрываются в обратном порядке, хранилище последним
	app.SetClosers(store)

	if conf.Kafka.Enabled() {
		publisher := notify.NewKafkaPublisher(logger, conf.Kafka)
		notifiers = append(notifiers, publisher)
		app.SetClosers(publisher)
		logger.Info("kafka publishing enabled", slog.String("topic", conf.Kafka.Topic))
	}

	orderService := service.NewOrderService(logger, store, smshub, cat, notifiers)
	queryService := service.NewQueryService(store, cat)
	balanceService := service.NewBalanceService(logger, smshub, balanceCache)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, orderService, queryService, balanceService, cat)

	app.SetHTTPHandlers(httpHandler)
	app.Mount("/ws/orders", hub.ServeWS)
	app.SetStarters(balanceCache, hub)

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.Errors():
		logger.Error("application failed", slog.Any("error", err))
	}

	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
