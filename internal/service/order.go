package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
)

type OrderStore interface {
	Append(ctx context.Context, o entities.Order) error
	LoadAll(ctx context.Context) ([]entities.Order, error)
	Get(ctx context.Context, id string) (entities.Order, error)
	UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error)
}

type Provider interface {
	GetNumber(ctx context.Context, service, country string) provider.Response
	GetStatus(ctx context.Context, id string) provider.Response
	SetStatus(ctx context.Context, id string, status provider.ActivationStatus) provider.Response
}

// Notifier получает события о заказах после записи в хранилище.
type Notifier interface {
	Notify(ctx context.Context, event entities.OrderEvent)
}

type Catalog interface {
	HasService(code string) bool
	HasCountry(code string) bool
}

// StatusReport результат опроса статуса. Status может быть сырым ответом провайдера.
type StatusReport struct {
	Status entities.Status
	SMS    string
}

type orderService struct {
	logger   *slog.Logger
	store    OrderStore
	provider Provider
	catalog  Catalog
	notifier Notifier
	now      func() time.Time
}

func NewOrderService(logger *slog.Logger, store OrderStore, provider Provider, catalog Catalog, notifier Notifier) *orderService {
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		store:    store,
		provider: provider,
		catalog:  catalog,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, service, country string) (order entities.Order, err error) {
	defer func() { observe("create", err) }()

	if !s.catalog.HasService(service) {
		return entities.Order{}, entities.ErrInvalidService
	}
	if !s.catalog.HasCountry(country) {
		return entities.Order{}, entities.ErrInvalidCountry
	}

	switch resp := s.provider.GetNumber(ctx, service, country).(type) {
	case provider.NumberAllocated:
		order = entities.Order{
			ID:        resp.ID,
			Number:    resp.Number,
			Service:   service,
			Country:   country,
			Status:    entities.StatusWaiting,
			CreatedAt: s.now().UTC(),
		}
	case provider.Unavailable:
		return entities.Order{}, entities.ErrProviderUnavailable
	default:
		return entities.Order{}, &entities.ProviderError{Action: "create", Response: strings.TrimSpace(provider.Text(resp))}
	}

	if err := s.store.Append(ctx, order); err != nil {
		// Номер уже арендован у провайдера, поэтому без записи его нельзя потерять молча
		s.logger.ErrorContext(ctx, "failed to save allocated order",
			slog.String("order_id", order.ID),
			slog.String("number", order.Number),
			slog.Any("error", err),
		)
		return entities.Order{}, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.DebugContext(ctx, "order created", slog.String("order_id", order.ID), slog.String("number", order.Number))
	s.notify(ctx, entities.EventCreated, order)
	return order, nil
}

// PollStatus запрашивает статус у провайдера. При STATUS_OK сохраняется только
// sms, статус заказа в хранилище не меняется.
func (s *orderService) PollStatus(ctx context.Context, id string) (report StatusReport, err error) {
	defer func() { observe("poll", err) }()

	order, err := s.openOrder(ctx, id)
	if err != nil {
		return StatusReport{}, err
	}

	switch resp := s.provider.GetStatus(ctx, id).(type) {
	case provider.StatusOK:
		if order.SMS != resp.SMS {
			updated, err := s.store.UpdateFields(ctx, id, entities.SetSMS(resp.SMS).IfOpen())
			if err != nil {
				return StatusReport{}, fmt.Errorf("failed to save sms: %w", err)
			}
			s.notify(ctx, entities.EventSMSReceived, updated)
		}
		return StatusReport{Status: entities.StatusCompleted, SMS: resp.SMS}, nil
	case provider.Unavailable:
		return StatusReport{Status: entities.StatusUnknown}, nil
	default:
		return StatusReport{Status: entities.Status(provider.Text(resp))}, nil
	}
}

func (s *orderService) CancelOrder(ctx context.Context, id string) (err error) {
	defer func() { observe("cancel", err) }()

	if _, err := s.openOrder(ctx, id); err != nil {
		return err
	}

	switch resp := s.provider.SetStatus(ctx, id, provider.ActivationCancel).(type) {
	case provider.Cancel:
		return s.transition(ctx, id, entities.SetStatus(entities.StatusCanceled).IfOpen(), entities.EventCanceled)
	case provider.Unavailable:
		return entities.ErrProviderUnavailable
	default:
		return &entities.ProviderError{Action: "cancel", Response: provider.Text(resp)}
	}
}

// RequestAgain просит провайдера прислать еще одно SMS на тот же номер.
func (s *orderService) RequestAgain(ctx context.Context, id string) (message string, err error) {
	defer func() { observe("request_again", err) }()

	if _, err := s.openOrder(ctx, id); err != nil {
		return "", err
	}

	resp := s.provider.SetStatus(ctx, id, provider.ActivationRetry)
	switch resp.(type) {
	case provider.Ready, provider.RetryGet:
		if err := s.transition(ctx, id, entities.SetStatus(entities.StatusWaiting).IfOpen(), entities.EventRetried); err != nil {
			return "", err
		}
		return strings.ToUpper(strings.TrimSpace(provider.Text(resp))), nil
	case provider.Unavailable:
		return "", entities.ErrProviderUnavailable
	default:
		return "", &entities.ProviderError{
			Action:   "request_again",
			Response: strings.ToUpper(strings.TrimSpace(provider.Text(resp))),
		}
	}
}

func (s *orderService) RemoveOrder(ctx context.Context, id string) (err error) {
	defer func() { observe("remove", err) }()
	return s.transition(ctx, id, entities.SetStatus(entities.StatusDeleted), entities.EventRemoved)
}

func (s *orderService) MarkTimeout(ctx context.Context, id string) (err error) {
	defer func() { observe("timeout", err) }()
	return s.transition(ctx, id, entities.SetStatus(entities.StatusTimeout), entities.EventTimedOut)
}

// openOrder возвращает заказ, с которым еще можно работать через провайдера.
// Пока идет запрос к провайдеру, заказ могут закрыть, поэтому запись
// после ответа тоже идет с условием IfOpen.
func (s *orderService) openOrder(ctx context.Context, id string) (entities.Order, error) {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status.IsFinal() {
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrOrderFinalized, order.Status)
	}
	return order, nil
}

func (s *orderService) transition(ctx context.Context, id string, upd entities.OrderUpdate, event entities.EventType) error {
	status := *upd.Status
	updated, err := s.store.UpdateFields(ctx, id, upd)
	if err != nil {
		if !errors.Is(err, entities.ErrOrderNotFound) && !errors.Is(err, entities.ErrOrderFinalized) {
			s.logger.ErrorContext(ctx, "failed to update order status",
				slog.String("order_id", id),
				slog.String("status", string(status)),
				slog.Any("error", err),
			)
		}
		return err
	}

	s.logger.DebugContext(ctx, "order status changed", slog.String("order_id", id), slog.String("status", string(status)))
	s.notify(ctx, event, updated)
	return nil
}

func (s *orderService) notify(ctx context.Context, t entities.EventType, o entities.Order) {
	s.notifier.Notify(ctx, entities.NewOrderEvent(t, o))
}
