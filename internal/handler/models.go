package handler

import (
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
)

// Order заказ номера
type Order struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	NumberFormatted string    `json:"number_formatted"`
	Service         string    `json:"service"`
	ServiceName     string    `json:"service_name"`
	Country         string    `json:"country"`
	CountryName     string    `json:"country_name"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	SMS             string    `json:"sms"`
}

// CreateOrderRequest запрос на аренду номера
type CreateOrderRequest struct {
	Service string `json:"service" validate:"required,max=16,alphanum"`
	Country string `json:"country" validate:"required,max=8,numeric"`
}

// SuccessResponse ответ без данных
type SuccessResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BalanceResponse баланс аккаунта
type BalanceResponse struct {
	Success bool   `json:"success"`
	Balance string `json:"balance"`
}

// OrdersResponse список заказов
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

// OrderResponse созданный заказ
type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// StatusResponse статус заказа у провайдера
type StatusResponse struct {
	Status string `json:"status"`
	SMS    string `json:"sms,omitempty"`
	Error  string `json:"error,omitempty"`
}

// MessageResponse ответ провайдера на повторный запрос SMS
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status string `json:"status"`
}

func OrderViewToJSON(v service.OrderView) Order {
	return Order{
		ID:              v.ID,
		Number:          v.Number,
		NumberFormatted: v.NumberFormatted,
		Service:         v.Service,
		ServiceName:     v.ServiceName,
		Country:         v.Country,
		CountryName:     v.CountryName,
		Status:          string(v.Status),
		CreatedAt:       v.CreatedAt,
		SMS:             v.SMS,
	}
}

func OrderViewsToJSON(views []service.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, OrderViewToJSON(v))
	}
	return orders
}
