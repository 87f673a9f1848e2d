package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/internal/service"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderLifecycle interface {
	CreateOrder(ctx context.Context, service, country string) (entities.Order, error)
	PollStatus(ctx context.Context, id string) (service.StatusReport, error)
	CancelOrder(ctx context.Context, id string) error
	RequestAgain(ctx context.Context, id string) (string, error)
	RemoveOrder(ctx context.Context, id string) error
	MarkTimeout(ctx context.Context, id string) error
}

type OrderQuerier interface {
	ActiveOrders(ctx context.Context) ([]service.OrderView, error)
	HistoryOrders(ctx context.Context) ([]service.OrderView, error)
	View(o entities.Order) service.OrderView
}

type BalanceGetter interface {
	Balance(ctx context.Context) (string, error)
}

type Catalog interface {
	Services() map[string]string
	Countries() map[string]string
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	lifecycle OrderLifecycle
	query     OrderQuerier
	balance   BalanceGetter
	catalog   Catalog
}

func NewHTTPHandler(logger *slog.Logger, lifecycle OrderLifecycle, query OrderQuerier, balance BalanceGetter, catalog Catalog) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		lifecycle: lifecycle,
		query:     query,
		balance:   balance,
		catalog:   catalog,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.Services)
		r.Get("/countries", h.Countries)
		r.Get("/balance", h.Balance)
		r.Get("/orders", h.ActiveOrders)
		r.Get("/history", h.History)
		r.Post("/create", h.CreateOrder)
		r.Get("/status/{order_id}", h.Status)
		r.Post("/cancel/{order_id}", h.Cancel)
		r.Post("/request_again/{order_id}", h.RequestAgain)
		r.Post("/remove_order/{order_id}", h.RemoveOrder)
		r.Post("/timeout/{order_id}", h.Timeout)
	})
}

// Health
// @Summary      Проверка состояния
// @Tags         system
// @Success      200  {object}  HealthResponse
// @Router       /healthz [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// Services
// @Summary      Каталог сервисов
// @Description  Коды сервисов провайдера и их названия
// @Tags         catalog
// @Success      200  {object}  map[string]string
// @Router       /api/services [get]
func (h *HTTPHandler) Services(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Services(), http.StatusOK)
}

// Countries
// @Summary      Каталог стран
// @Description  Коды стран провайдера и их названия
// @Tags         catalog
// @Success      200  {object}  map[string]string
// @Router       /api/countries [get]
func (h *HTTPHandler) Countries(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Countries(), http.StatusOK)
}

// Balance
// @Summary      Баланс аккаунта
// @Tags         account
// @Success      200  {object}  BalanceResponse
// @Router       /api/balance [get]
func (h *HTTPHandler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.balance.Balance(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "failed to get balance", slog.Any("error", err))
		h.writeError(w, r, "Failed to get balance")
		return
	}
	utils.WriteJSON(w, BalanceResponse{Success: true, Balance: balance}, http.StatusOK)
}

// ActiveOrders
// @Summary      Активные заказы
// @Description  Заказы в статусах WAITING и COMPLETED в порядке создания
// @Tags         orders
// @Success      200  {object}  OrdersResponse
// @Router       /api/orders [get]
func (h *HTTPHandler) ActiveOrders(w http.ResponseWriter, r *http.Request) {
	h.writeOrders(w, r, h.query.ActiveOrders)
}

// History
// @Summary      История заказов
// @Description  Все заказы не в статусах WAITING и COMPLETED в порядке создания
// @Tags         orders
// @Success      200  {object}  OrdersResponse
// @Router       /api/history [get]
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	h.writeOrders(w, r, h.query.HistoryOrders)
}

func (h *HTTPHandler) writeOrders(w http.ResponseWriter, r *http.Request, load func(context.Context) ([]service.OrderView, error)) {
	views, err := load(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to load orders", slog.Any("error", err))
		h.writeError(w, r, "Failed to load orders")
		return
	}
	utils.WriteJSON(w, OrdersResponse{Success: true, Orders: OrderViewsToJSON(views)}, http.StatusOK)
}

// CreateOrder
// @Summary      Арендовать номер
// @Description  Проверяет сервис и страну по каталогу и запрашивает номер у провайдера
// @Tags         orders
// @Accept       json
// @Param        request  body      CreateOrderRequest  true  "Сервис и страна"
// @Success      200      {object}  OrderResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Некорректный JSON"
// @Router       /api/create [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && ve[0].Field() == "Country" {
			h.writeError(w, r, "Invalid country")
			return
		}
		h.writeError(w, r, "Invalid service")
		return
	}

	order, err := h.lifecycle.CreateOrder(ctx, req.Service, req.Country)
	if err != nil {
		h.writeError(w, r, h.createErrorMessage(ctx, err))
		return
	}

	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderViewToJSON(h.query.View(order))}, http.StatusOK)
}

func (h *HTTPHandler) createErrorMessage(ctx context.Context, err error) string {
	var providerErr *entities.ProviderError
	switch {
	case errors.Is(err, entities.ErrInvalidService):
		return "Invalid service"
	case errors.Is(err, entities.ErrInvalidCountry):
		return "Invalid country"
	case errors.As(err, &providerErr) && providerErr.Response != "":
		return providerErr.Response
	case errors.Is(err, entities.ErrProviderUnavailable), errors.As(err, &providerErr):
		return "Failed to create order"
	default:
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		return "Failed to save order"
	}
}

// Status
// @Summary      Статус заказа
// @Description  Опрашивает провайдера. При получении SMS сохраняет код, статус заказа не меняется
// @Tags         orders
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200       {object}  StatusResponse
// @Router       /api/status/{order_id} [get]
func (h *HTTPHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "order_id")

	report, err := h.lifecycle.PollStatus(ctx, id)
	if err != nil {
		observeFailure(r)
		utils.WriteJSON(w, StatusResponse{
			Status: string(entities.StatusUnknown),
			Error:  h.orderErrorMessage(ctx, id, err),
		}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, StatusResponse{Status: string(report.Status), SMS: report.SMS}, http.StatusOK)
}

// Cancel
// @Summary      Отменить заказ
// @Tags         orders
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200       {object}  SuccessResponse
// @Router       /api/cancel/{order_id} [post]
func (h *HTTPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, h.lifecycle.CancelOrder)
}

// RequestAgain
// @Summary      Запросить SMS повторно
// @Tags         orders
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200       {object}  MessageResponse
// @Router       /api/request_again/{order_id} [post]
func (h *HTTPHandler) RequestAgain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "order_id")

	message, err := h.lifecycle.RequestAgain(ctx, id)
	if err != nil {
		var providerErr *entities.ProviderError
		switch {
		case errors.Is(err, entities.ErrProviderUnavailable):
			h.writeError(w, r, "No response from API")
		case errors.As(err, &providerErr):
			h.writeError(w, r, providerErr.Response)
		default:
			h.writeError(w, r, h.orderErrorMessage(ctx, id, err))
		}
		return
	}

	utils.WriteJSON(w, MessageResponse{Success: true, Message: message}, http.StatusOK)
}

// RemoveOrder
// @Summary      Удалить заказ
// @Description  Переводит заказ в статус DELETED без обращения к провайдеру
// @Tags         orders
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200       {object}  SuccessResponse
// @Router       /api/remove_order/{order_id} [post]
func (h *HTTPHandler) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, h.lifecycle.RemoveOrder)
}

// Timeout
// @Summary      Отметить истечение времени
// @Description  Переводит заказ в статус TIMEOUT без обращения к провайдеру
// @Tags         orders
// @Param        order_id  path      string  true  "ID заказа"
// @Success      200       {object}  SuccessResponse
// @Router       /api/timeout/{order_id} [post]
func (h *HTTPHandler) Timeout(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, h.lifecycle.MarkTimeout)
}

func (h *HTTPHandler) writeSuccess(w http.ResponseWriter, r *http.Request, action func(context.Context, string) error) {
	ctx := r.Context()
	id := chi.URLParam(r, "order_id")

	if err := action(ctx, id); err != nil {
		observeFailure(r)
		utils.WriteJSON(w, SuccessResponse{Error: h.orderErrorMessage(ctx, id, err)}, http.StatusOK)
		return
	}
	utils.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *HTTPHandler) orderErrorMessage(ctx context.Context, id string, err error) string {
	var providerErr *entities.ProviderError
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, entities.ErrOrderFinalized):
		return "order already finalized"
	case errors.Is(err, entities.ErrProviderUnavailable):
		return "No response from API"
	case errors.As(err, &providerErr):
		return providerErr.Response
	default:
		h.logger.ErrorContext(ctx, "failed to update order", slog.String("order_id", id), slog.Any("error", err))
		return "failed to update order"
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, message string) {
	observeFailure(r)
	utils.WriteError(w, message, http.StatusOK)
}
