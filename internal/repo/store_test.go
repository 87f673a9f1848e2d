package repo_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/database"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/repo"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type orderStore interface {
	Append(ctx context.Context, o entities.Order) error
	LoadAll(ctx context.Context) ([]entities.Order, error)
	Get(ctx context.Context, id string) (entities.Order, error)
	UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
	Close() error
}

var stores = map[string]func(t *testing.T) orderStore{
	"file": func(t *testing.T) orderStore {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		r, err := repo.NewFileRepo(logger, filepath.Join(t.TempDir(), "orders.txt"))
		require.NoError(t, err)
		t.Cleanup(func() { r.Close() })
		return r
	},
	"sqlite": func(t *testing.T) orderStore {
		db, err := database.NewSQLite(filepath.Join(t.TempDir(), "orders.db"))
		require.NoError(t, err)
		r := repo.NewSQLRepo(db, trm.NewManager(db))
		require.NoError(t, r.Migrate(context.Background()))
		t.Cleanup(func() { r.Close() })
		return r
	},
}

func newOrder(id string) entities.Order {
	return entities.Order{
		ID:        id,
		Number:    "7900" + id,
		Service:   "tg",
		Country:   "0",
		Status:    entities.StatusWaiting,
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func assertSameOrders(t *testing.T, want, got []entities.Order) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "created_at of %s", want[i].ID)
		got[i].CreatedAt = want[i].CreatedAt
	}
	assert.Equal(t, want, got)
}

func TestStore_AppendAndLoad(t *testing.T) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			before, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, before)

			first, second := newOrder("1"), newOrder("2")
			require.NoError(t, s.Append(ctx, first))

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assertSameOrders(t, []entities.Order{first}, loaded)

			require.NoError(t, s.Append(ctx, second))

			loaded, err = s.LoadAll(ctx)
			require.NoError(t, err)
			assertSameOrders(t, []entities.Order{first, second}, loaded)
		})
	}
}

func TestStore_AppendDuplicate(t *testing.T) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			require.NoError(t, s.Append(ctx, newOrder("1")))
			err := s.Append(ctx, newOrder("1"))
			assert.ErrorIs(t, err, entities.ErrDuplicateOrder)

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assert.Len(t, loaded, 1)
		})
	}
}

func TestStore_UpdateFields(t *testing.T) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			require.NoError(t, s.Append(ctx, newOrder("1")))
			require.NoError(t, s.Append(ctx, newOrder("2")))

			updated, err := s.UpdateFields(ctx, "1", entities.SetSMS("1234"))
			require.NoError(t, err)
			assert.Equal(t, "1234", updated.SMS)
			assert.Equal(t, entities.StatusWaiting, updated.Status)

			updated, err = s.UpdateFields(ctx, "2", entities.SetStatus(entities.StatusCanceled))
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCanceled, updated.Status)

			want1 := newOrder("1")
			want1.SMS = "1234"
			want2 := newOrder("2")
			want2.Status = entities.StatusCanceled

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assertSameOrders(t, []entities.Order{want1, want2}, loaded)

			got, err := s.Get(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, "1234", got.SMS)
		})
	}
}

func TestStore_UpdateIfOpen(t *testing.T) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			require.NoError(t, s.Append(ctx, newOrder("1")))

			_, err := s.UpdateFields(ctx, "1", entities.SetStatus(entities.StatusDeleted))
			require.NoError(t, err)

			_, err = s.UpdateFields(ctx, "1", entities.SetStatus(entities.StatusWaiting).IfOpen())
			assert.ErrorIs(t, err, entities.ErrOrderFinalized)
			_, err = s.UpdateFields(ctx, "1", entities.SetSMS("1234").IfOpen())
			assert.ErrorIs(t, err, entities.ErrOrderFinalized)

			got, err := s.Get(ctx, "1")
			require.NoError(t, err)
			assert.Equal(t, entities.StatusDeleted, got.Status)
			assert.Empty(t, got.SMS)

			// Удаление и таймаут безусловны
			updated, err := s.UpdateFields(ctx, "1", entities.SetStatus(entities.StatusTimeout))
			require.NoError(t, err)
			assert.Equal(t, entities.StatusTimeout, updated.Status)
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			require.NoError(t, s.Append(ctx, newOrder("1")))

			_, err := s.Get(ctx, "404")
			assert.ErrorIs(t, err, entities.ErrOrderNotFound)

			_, err = s.UpdateFields(ctx, "404", entities.SetStatus(entities.StatusDeleted))
			assert.ErrorIs(t, err, entities.ErrOrderNotFound)

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assertSameOrders(t, []entities.Order{newOrder("1")}, loaded)
		})
	}
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	const n = 20

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			for i := range n {
				require.NoError(t, s.Append(ctx, newOrder(fmt.Sprint(i))))
			}

			var g errgroup.Group
			for i := range n {
				g.Go(func() error {
					_, err := s.UpdateFields(ctx, fmt.Sprint(i), entities.SetSMS(fmt.Sprintf("sms-%d", i)))
					return err
				})
			}
			require.NoError(t, g.Wait())

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			require.Len(t, loaded, n)
			for i, o := range loaded {
				assert.Equal(t, fmt.Sprint(i), o.ID)
				assert.Equal(t, fmt.Sprintf("sms-%d", i), o.SMS)
			}
		})
	}
}

func TestStore_ConcurrentAppendAndRead(t *testing.T) {
	const n = 20

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			var wg sync.WaitGroup
			for i := range n {
				wg.Add(2)
				go func() {
					defer wg.Done()
					assert.NoError(t, s.Append(ctx, newOrder(fmt.Sprint(i))))
				}()
				go func() {
					defer wg.Done()
					_, err := s.LoadAll(ctx)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			loaded, err := s.LoadAll(ctx)
			require.NoError(t, err)
			assert.Len(t, loaded, n)
		})
	}
}
