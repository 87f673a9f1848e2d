package entities

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
	StatusDeleted   Status = "DELETED"
	StatusTimeout   Status = "TIMEOUT"

	// Только для ответа на опрос статуса, в хранилище не попадает
	StatusUnknown Status = "UNKNOWN"
)

// IsActive сообщает, попадает ли заказ в список активных.
func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusCompleted
}

// IsFinal сообщает, что из статуса нет переходов по запросу к провайдеру.
func (s Status) IsFinal() bool {
	switch s {
	case StatusCanceled, StatusDeleted, StatusTimeout:
		return true
	}
	return false
}

type Order struct {
	ID        string
	Number    string
	Service   string
	Country   string
	Status    Status
	CreatedAt time.Time
	SMS       string
}

// OrderUpdate частичное обновление заказа, nil поля не меняются.
type OrderUpdate struct {
	Status *Status
	SMS    *string

	// OnlyOpen запрещает менять заказ, уже перешедший в финальный статус.
	// Хранилище проверяет это в той же критической секции, что и запись.
	OnlyOpen bool
}

// IfOpen возвращает копию обновления, которое применяется только к открытому заказу.
func (u OrderUpdate) IfOpen() OrderUpdate {
	u.OnlyOpen = true
	return u
}

func (u OrderUpdate) Check(o Order) error {
	if u.OnlyOpen && o.Status.IsFinal() {
		return fmt.Errorf("%w: %s", ErrOrderFinalized, o.Status)
	}
	return nil
}

func (u OrderUpdate) Apply(o Order) Order {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.SMS != nil {
		o.SMS = *u.SMS
	}
	return o
}

func SetStatus(s Status) OrderUpdate {
	return OrderUpdate{Status: &s}
}

func SetSMS(sms string) OrderUpdate {
	return OrderUpdate{SMS: &sms}
}

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrDuplicateOrder      = errors.New("order already exists")
	ErrInvalidService      = errors.New("invalid service")
	ErrInvalidCountry      = errors.New("invalid country")
	ErrOrderFinalized      = errors.New("order is already finalized")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrCorruptRecord       = errors.New("corrupt order record")
	ErrInvalidRecord       = errors.New("order record can not be encoded")
	ErrWrite               = errors.New("failed to write orders")
	ErrStoreLocked         = errors.New("orders file is locked by another process")
)

// ProviderError неожиданный ответ провайдера на операцию.
type ProviderError struct {
	Action   string
	Response string
}

func (e *ProviderError) Error() string {
	if e.Response == "" {
		return fmt.Sprintf("provider rejected %s", e.Action)
	}
	return fmt.Sprintf("provider rejected %s: %s", e.Action, e.Response)
}
