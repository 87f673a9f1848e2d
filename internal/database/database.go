package database

import (
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var pingRetry = utils.RetryConfig{
	InitialDelay: 200 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
	MaxDelay:     2 * time.Second,
}

// New открывает базу для выбранного драйвера хранилища.
func New(cfg config.Store) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.StorePostgres:
		return NewPostgres(cfg.Postgres)
	case config.StoreSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func NewPostgres(cfg config.Postgres) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// База может подниматься одновременно с сервисом
	if err = utils.Retry(pingRetry, db.Ping); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

// NewSQLite открывает встроенную базу. Одно соединение, чтобы
// запись не упиралась в блокировки файла.
func NewSQLite(path string) (*sqlx.DB, error) {
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}
