package service_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/sms-order-service/internal/catalog"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/notify"
	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
	"github.com/SergeyBogomolovv/sms-order-service/internal/repo"
	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider отвечает через функции, которые тест подменяет по ходу.
type stubProvider struct {
	getStatus func(ctx context.Context, id string) provider.Response
	setStatus func(ctx context.Context, id string, status provider.ActivationStatus) provider.Response
}

func (p *stubProvider) GetNumber(context.Context, string, string) provider.Response {
	return provider.Unavailable{}
}

func (p *stubProvider) GetStatus(ctx context.Context, id string) provider.Response {
	return p.getStatus(ctx, id)
}

func (p *stubProvider) SetStatus(ctx context.Context, id string, status provider.ActivationStatus) provider.Response {
	return p.setStatus(ctx, id, status)
}

func newFileBackedService(t *testing.T, p *stubProvider) (service.OrderStore, interface {
	PollStatus(ctx context.Context, id string) (service.StatusReport, error)
	CancelOrder(ctx context.Context, id string) error
	RequestAgain(ctx context.Context, id string) (string, error)
	RemoveOrder(ctx context.Context, id string) error
	MarkTimeout(ctx context.Context, id string) error
}) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := repo.NewFileRepo(logger, filepath.Join(t.TempDir(), "orders.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Append(context.Background(), waitingOrder("1")))
	return store, service.NewOrderService(logger, store, p, catalog.Default(), notify.Nop{})
}

func TestOrderService_FinalizedDuringProviderCall(t *testing.T) {
	t.Run("request again does not revive removed order", func(t *testing.T) {
		p := &stubProvider{}
		store, svc := newFileBackedService(t, p)
		p.setStatus = func(ctx context.Context, id string, _ provider.ActivationStatus) provider.Response {
			require.NoError(t, svc.RemoveOrder(ctx, id))
			return provider.Ready{}
		}

		_, err := svc.RequestAgain(context.Background(), "1")
		assert.ErrorIs(t, err, entities.ErrOrderFinalized)

		order, err := store.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDeleted, order.Status)
	})

	t.Run("cancel does not overwrite timeout", func(t *testing.T) {
		p := &stubProvider{}
		store, svc := newFileBackedService(t, p)
		p.setStatus = func(ctx context.Context, id string, _ provider.ActivationStatus) provider.Response {
			require.NoError(t, svc.MarkTimeout(ctx, id))
			return provider.Cancel{}
		}

		assert.ErrorIs(t, svc.CancelOrder(context.Background(), "1"), entities.ErrOrderFinalized)

		order, err := store.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusTimeout, order.Status)
	})

	t.Run("sms is not stored on removed order", func(t *testing.T) {
		p := &stubProvider{}
		store, svc := newFileBackedService(t, p)
		p.getStatus = func(ctx context.Context, id string) provider.Response {
			require.NoError(t, svc.RemoveOrder(ctx, id))
			return provider.StatusOK{SMS: "1234"}
		}

		_, err := svc.PollStatus(context.Background(), "1")
		assert.ErrorIs(t, err, entities.ErrOrderFinalized)

		order, err := store.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDeleted, order.Status)
		assert.Empty(t, order.SMS)
	})

	t.Run("remove after cancel is allowed", func(t *testing.T) {
		p := &stubProvider{}
		store, svc := newFileBackedService(t, p)
		p.setStatus = func(context.Context, string, provider.ActivationStatus) provider.Response {
			return provider.Cancel{}
		}

		require.NoError(t, svc.CancelOrder(context.Background(), "1"))
		require.NoError(t, svc.RemoveOrder(context.Background(), "1"))

		order, err := store.Get(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDeleted, order.Status)
	})
}
