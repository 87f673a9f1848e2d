package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var orderColumns = []string{"id", "number", "service", "country", "status", "created_at", "sms"}

// seq задает порядок вставки, id уникален
var schema = map[string]string{
	"postgres": `CREATE TABLE IF NOT EXISTS orders (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL UNIQUE,
		number     TEXT NOT NULL,
		service    TEXT NOT NULL,
		country    TEXT NOT NULL,
		status     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		sms        TEXT NOT NULL DEFAULT ''
	)`,
	"sqlite": `CREATE TABLE IF NOT EXISTS orders (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		number     TEXT NOT NULL,
		service    TEXT NOT NULL,
		country    TEXT NOT NULL,
		status     TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		sms        TEXT NOT NULL DEFAULT ''
	)`,
}

type sqlRepo struct {
	db        *sqlx.DB
	qb        sq.StatementBuilderType
	txManager trm.Manager
	driver    string
}

func NewSQLRepo(db *sqlx.DB, txManager trm.Manager) *sqlRepo {
	qb := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if db.DriverName() == "postgres" {
		qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &sqlRepo{
		db:        db,
		qb:        qb,
		txManager: txManager,
		driver:    db.DriverName(),
	}
}

// Migrate создает таблицу заказов, если ее нет.
func (r *sqlRepo) Migrate(ctx context.Context) error {
	ddl, ok := schema[r.driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", r.driver)
	}
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}
	return nil
}

func (r *sqlRepo) Append(ctx context.Context, o entities.Order) error {
	return r.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := r.Get(ctx, o.ID)
		if err == nil {
			return fmt.Errorf("%w: %s", entities.ErrDuplicateOrder, o.ID)
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return err
		}

		query, args := r.qb.Insert("orders").
			Columns(orderColumns...).
			Values(o.ID, o.Number, o.Service, o.Country, string(o.Status), o.CreatedAt, o.SMS).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", entities.ErrDuplicateOrder, o.ID)
			}
			return fmt.Errorf("%w: failed to save order: %v", entities.ErrWrite, err)
		}
		return nil
	})
}

func (r *sqlRepo) LoadAll(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("seq").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o))
	}
	return result, nil
}

func (r *sqlRepo) Get(ctx context.Context, id string) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})

	// Внутри транзакции postgres блокирует строку до конца обновления
	if r.driver == "postgres" && trm.ExtractTx(ctx) != nil {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *sqlRepo) UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	var updated entities.Order
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := upd.Check(current); err != nil {
			return err
		}
		updated = upd.Apply(current)

		query, args := r.qb.Update("orders").
			Set("status", string(updated.Status)).
			Set("sms", updated.SMS).
			Where(sq.Eq{"id": id}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: failed to update order: %v", entities.ErrWrite, err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func (r *sqlRepo) Close() error {
	return r.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *sqlRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *sqlRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *sqlRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
