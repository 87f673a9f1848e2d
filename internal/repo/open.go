package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/internal/database"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/trm"
)

type Store interface {
	Append(ctx context.Context, o entities.Order) error
	LoadAll(ctx context.Context) ([]entities.Order, error)
	Get(ctx context.Context, id string) (entities.Order, error)
	UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
	Close() error
}

// Open открывает хранилище заказов выбранного типа.
func Open(ctx context.Context, logger *slog.Logger, cfg config.Store) (Store, error) {
	if cfg.Driver == config.StoreFile {
		return NewFileRepo(logger, cfg.FilePath)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Driver, err)
	}

	r := NewSQLRepo(db, trm.NewManager(db))
	if err := r.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("order store connected", slog.String("store", cfg.Driver))
	return r, nil
}
