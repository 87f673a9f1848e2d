package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
	"golang.org/x/sync/singleflight"
)

const balanceKey = "balance"

type BalanceProvider interface {
	GetBalance(ctx context.Context) provider.Response
}

type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
}

type balanceService struct {
	logger   *slog.Logger
	provider BalanceProvider
	cache    Cache
	group    singleflight.Group
}

func NewBalanceService(logger *slog.Logger, provider BalanceProvider, cache Cache) *balanceService {
	return &balanceService{
		logger:   logger.With(slog.String("service", "balance")),
		provider: provider,
		cache:    cache,
	}
}

// Balance возвращает баланс аккаунта. Одновременные запросы схлопываются в один
// вызов провайдера, успешный ответ кешируется.
func (s *balanceService) Balance(ctx context.Context) (balance string, err error) {
	defer func() { observe("balance", err) }()

	if v, ok := s.cache.Get(balanceKey); ok {
		return v, nil
	}

	v, err, shared := s.group.Do(balanceKey, func() (any, error) {
		if v, ok := s.cache.Get(balanceKey); ok {
			return v, nil
		}
		switch resp := s.provider.GetBalance(ctx).(type) {
		case provider.Balance:
			s.cache.Set(balanceKey, resp.Amount)
			return resp.Amount, nil
		case provider.Unavailable:
			return "", entities.ErrProviderUnavailable
		default:
			return "", &entities.ProviderError{Action: "balance", Response: provider.Text(resp)}
		}
	})
	if err != nil {
		return "", err
	}
	if shared {
		s.logger.DebugContext(ctx, "balance request shared")
	}
	return v.(string), nil
}
