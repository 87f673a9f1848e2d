package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/config"
	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
)

type Action string

const (
	ActionGetBalance Action = "getBalance"
	ActionGetNumber  Action = "getNumber"
	ActionGetStatus  Action = "getStatus"
	ActionSetStatus  Action = "setStatus"
)

// ActivationStatus код для setStatus.
type ActivationStatus int

const (
	ActivationRetry  ActivationStatus = 3
	ActivationCancel ActivationStatus = 8
)

const maxBodySize = 1 << 20

type Client struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient создает клиент провайдера. Если httpClient nil, используется
// клиент с таймаутом из конфига.
func NewClient(logger *slog.Logger, cfg config.Provider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		logger:     logger.With(slog.String("provider", "smshub")),
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// Call выполняет запрос и возвращает тело ответа без разбора.
// Любая ошибка транспорта или не-2xx статус дают ErrProviderUnavailable.
func (c *Client) Call(ctx context.Context, action Action, params url.Values) (string, error) {
	start := time.Now()
	body, err := c.call(ctx, action, params)

	outcome := "ok"
	if err != nil {
		outcome = "unavailable"
		c.logger.WarnContext(ctx, "provider call failed", slog.String("action", string(action)), slog.Any("error", err))
	}
	providerRequestsTotal.WithLabelValues(string(action), outcome).Inc()
	providerRequestDuration.WithLabelValues(string(action)).Observe(time.Since(start).Seconds())

	return body, err
}

func (c *Client) call(ctx context.Context, action Action, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base url: %v", entities.ErrProviderUnavailable, err)
	}

	q := u.Query()
	for k, v := range params {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)
	q.Set("action", string(action))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", entities.ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: send request: %v", entities.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", entities.ErrProviderUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", entities.ErrProviderUnavailable, err)
	}

	c.logger.DebugContext(ctx, "provider response", slog.String("action", string(action)), slog.String("body", string(data)))
	return string(data), nil
}

func (c *Client) do(ctx context.Context, action Action, params url.Values) Response {
	raw, err := c.Call(ctx, action, params)
	if err != nil {
		return Unavailable{Err: err}
	}
	return Decode(raw)
}

func (c *Client) GetBalance(ctx context.Context) Response {
	return c.do(ctx, ActionGetBalance, nil)
}

func (c *Client) GetNumber(ctx context.Context, service, country string) Response {
	return c.do(ctx, ActionGetNumber, url.Values{
		"service": {service},
		"country": {country},
	})
}

func (c *Client) GetStatus(ctx context.Context, id string) Response {
	return c.do(ctx, ActionGetStatus, url.Values{"id": {id}})
}

func (c *Client) SetStatus(ctx context.Context, id string, status ActivationStatus) Response {
	return c.do(ctx, ActionSetStatus, url.Values{
		"id":     {id},
		"status": {strconv.Itoa(int(status))},
	})
}
