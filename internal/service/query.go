package service

import (
	"context"
	"strings"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/nyaruka/phonenumbers"
)

type OrderLister interface {
	LoadAll(ctx context.Context) ([]entities.Order, error)
}

type CatalogNames interface {
	ServiceName(code string) string
	CountryName(code string) string
}

// OrderView заказ с человекочитаемыми названиями для клиентов.
type OrderView struct {
	entities.Order
	ServiceName     string
	CountryName     string
	NumberFormatted string
}

type queryService struct {
	store   OrderLister
	catalog CatalogNames
}

func NewQueryService(store OrderLister, catalog CatalogNames) *queryService {
	return &queryService{store: store, catalog: catalog}
}

func (s *queryService) ActiveOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := Partition(orders)
	return s.project(active), nil
}

func (s *queryService) HistoryOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	_, history := Partition(orders)
	return s.project(history), nil
}

// Partition делит заказы на активные и историю с сохранением порядка.
// Любой статус кроме WAITING и COMPLETED попадает в историю.
func Partition(orders []entities.Order) (active, history []entities.Order) {
	active = make([]entities.Order, 0, len(orders))
	history = make([]entities.Order, 0)
	for _, o := range orders {
		if o.Status.IsActive() {
			active = append(active, o)
		} else {
			history = append(history, o)
		}
	}
	return active, history
}

func (s *queryService) View(o entities.Order) OrderView {
	return OrderView{
		Order:           o,
		ServiceName:     s.catalog.ServiceName(o.Service),
		CountryName:     s.catalog.CountryName(o.Country),
		NumberFormatted: FormatNumber(o.Number),
	}
}

func (s *queryService) project(orders []entities.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, s.View(o))
	}
	return views
}

// FormatNumber форматирует номер в международном виде, если его удается разобрать.
func FormatNumber(number string) string {
	parsed, err := phonenumbers.Parse("+"+strings.TrimPrefix(number, "+"), "")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return number
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}
