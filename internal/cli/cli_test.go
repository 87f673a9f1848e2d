package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/cli"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeps struct {
	active   []service.OrderView
	history  []service.OrderView
	balance  string
	timedOut []string
	err      error
}

func (f *fakeDeps) ActiveOrders(context.Context) ([]service.OrderView, error) { return f.active, f.err }

func (f *fakeDeps) HistoryOrders(context.Context) ([]service.OrderView, error) {
	return f.history, f.err
}

func (f *fakeDeps) Balance(context.Context) (string, error) { return f.balance, f.err }

func (f *fakeDeps) MarkTimeout(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.timedOut = append(f.timedOut, id)
	return nil
}

func execute(t *testing.T, f *fakeDeps, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd(func(context.Context) (cli.Deps, error) {
		return cli.Deps{Query: f, Orders: f, Balance: f}, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func view(id string, status entities.Status) service.OrderView {
	return service.OrderView{
		Order: entities.Order{
			ID: id, Number: "447911123456", Service: "tg", Country: "0", Status: status,
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), SMS: "1234",
		},
		ServiceName:     "Telegram",
		CountryName:     "Russia",
		NumberFormatted: "+44 7911 123456",
	}
}

func TestOrdersCommand(t *testing.T) {
	f := &fakeDeps{active: []service.OrderView{view("1", entities.StatusWaiting)}}

	out, err := execute(t, f, "orders")
	require.NoError(t, err)
	assert.Contains(t, out, "+44 7911 123456")
	assert.Contains(t, out, "Telegram")
	assert.Contains(t, out, "1 order(s)")
}

func TestHistoryCommand_JSON(t *testing.T) {
	f := &fakeDeps{history: []service.OrderView{view("2", entities.StatusTimeout)}}

	out, err := execute(t, f, "history", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"2","number":"447911123456","service":"tg","country":"0",
		"status":"TIMEOUT","created_at":"2025-03-01T12:00:00Z","sms":"1234"}]`, out)
}

func TestBalanceCommand(t *testing.T) {
	out, err := execute(t, &fakeDeps{balance: "12.34"}, "balance")
	require.NoError(t, err)
	assert.Equal(t, "12.34\n", out)

	_, err = execute(t, &fakeDeps{err: entities.ErrProviderUnavailable}, "balance")
	assert.ErrorIs(t, err, entities.ErrProviderUnavailable)
}

func TestTimeoutCommand(t *testing.T) {
	f := &fakeDeps{}
	out, err := execute(t, f, "timeout", "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"42"}, f.timedOut)
	assert.Contains(t, out, "order 42 marked as TIMEOUT")

	_, err = execute(t, f, "timeout")
	assert.Error(t, err)

	_, err = execute(t, &fakeDeps{err: entities.ErrOrderNotFound}, "timeout", "7")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestDepsError(t *testing.T) {
	root := cli.NewRootCmd(func(context.Context) (cli.Deps, error) {
		return cli.Deps{}, errors.New("invalid config")
	})
	root.SetArgs([]string{"orders"})
	root.SetOut(&bytes.Buffer{})
	assert.EqualError(t, root.Execute(), "invalid config")
}
