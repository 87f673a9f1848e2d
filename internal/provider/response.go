package provider

import (
	"strings"
)

// Response разобранный ответ провайдера. Реализации перечислены ниже,
// других вариантов нет.
type Response interface {
	isResponse()
}

// Raw в вариантах хранит ответ как он пришел, если разбор его нормализует.

type Balance struct {
	Amount string
	Raw    string
}

type NumberAllocated struct {
	ID     string
	Number string
	Raw    string
}

type StatusOK struct {
	SMS string
}

type Cancel struct{}

type Ready struct {
	Raw string
}

type RetryGet struct {
	Raw string
}

// Opaque любой нераспознанный ответ, текст сохраняется как есть.
type Opaque struct {
	Text string
}

// Unavailable провайдер не ответил или ответил пустым телом.
type Unavailable struct {
	Err error
}

func (Balance) isResponse()         {}
func (NumberAllocated) isResponse() {}
func (StatusOK) isResponse()        {}
func (Cancel) isResponse()          {}
func (Ready) isResponse()           {}
func (RetryGet) isResponse()        {}
func (Opaque) isResponse()          {}
func (Unavailable) isResponse()     {}

const (
	prefixBalance  = "ACCESS_BALANCE:"
	prefixNumber   = "ACCESS_NUMBER:"
	prefixStatusOK = "STATUS_OK:"

	tokenCancel   = "ACCESS_CANCEL"
	tokenReady    = "ACCESS_READY"
	tokenRetryGet = "ACCESS_RETRY_GET"
)

// Decode разбирает текстовый ответ провайдера.
func Decode(raw string) Response {
	if raw == "" {
		return Unavailable{}
	}

	switch {
	case strings.HasPrefix(raw, prefixBalance):
		parts := strings.Split(raw, ":")
		return Balance{Amount: strings.TrimSpace(parts[1]), Raw: raw}

	case strings.HasPrefix(raw, prefixNumber):
		parts := strings.Split(strings.TrimSpace(raw), ":")
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return Opaque{Text: raw}
		}
		return NumberAllocated{ID: parts[1], Number: parts[2], Raw: raw}

	case strings.HasPrefix(raw, prefixStatusOK):
		return StatusOK{SMS: strings.TrimRight(raw[len(prefixStatusOK):], "\r\n")}

	case raw == tokenCancel:
		return Cancel{}
	}

	clean := strings.TrimSpace(raw)
	switch {
	case strings.EqualFold(clean, tokenReady):
		return Ready{Raw: raw}
	case strings.EqualFold(clean, tokenRetryGet):
		return RetryGet{Raw: raw}
	}

	return Opaque{Text: raw}
}
