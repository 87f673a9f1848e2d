package provider_test

import (
	"testing"

	"github.com/SergeyBogomolovv/sms-order-service/internal/provider"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want provider.Response
	}{
		{name: "empty", raw: "", want: provider.Unavailable{}},
		{name: "balance", raw: "ACCESS_BALANCE:123.45", want: provider.Balance{Amount: "123.45", Raw: "ACCESS_BALANCE:123.45"}},
		{name: "number", raw: "ACCESS_NUMBER:12345:79001234567", want: provider.NumberAllocated{ID: "12345", Number: "79001234567", Raw: "ACCESS_NUMBER:12345:79001234567"}},
		{name: "number with newline", raw: "ACCESS_NUMBER:12345:79001234567\n", want: provider.NumberAllocated{ID: "12345", Number: "79001234567", Raw: "ACCESS_NUMBER:12345:79001234567\n"}},
		{name: "number missing part", raw: "ACCESS_NUMBER:12345", want: provider.Opaque{Text: "ACCESS_NUMBER:12345"}},
		{name: "number extra part", raw: "ACCESS_NUMBER:1:2:3", want: provider.Opaque{Text: "ACCESS_NUMBER:1:2:3"}},
		{name: "status ok", raw: "STATUS_OK:1234", want: provider.StatusOK{SMS: "1234"}},
		{name: "status ok keeps colons", raw: "STATUS_OK:code: 12:34", want: provider.StatusOK{SMS: "code: 12:34"}},
		{name: "status ok empty", raw: "STATUS_OK:", want: provider.StatusOK{SMS: ""}},
		{name: "cancel", raw: "ACCESS_CANCEL", want: provider.Cancel{}},
		{name: "cancel is case sensitive", raw: "access_cancel", want: provider.Opaque{Text: "access_cancel"}},
		{name: "ready", raw: "ACCESS_READY", want: provider.Ready{Raw: "ACCESS_READY"}},
		{name: "ready lowercase with spaces", raw: "  access_ready\n", want: provider.Ready{Raw: "  access_ready\n"}},
		{name: "retry get", raw: "Access_Retry_Get", want: provider.RetryGet{Raw: "Access_Retry_Get"}},
		{name: "wait code", raw: "STATUS_WAIT_CODE", want: provider.Opaque{Text: "STATUS_WAIT_CODE"}},
		{name: "no numbers", raw: "NO_NUMBERS", want: provider.Opaque{Text: "NO_NUMBERS"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, provider.Decode(tc.raw))
		})
	}
}

func TestText(t *testing.T) {
	testCases := []struct {
		name string
		resp provider.Response
		want string
	}{
		{name: "decoded ready keeps raw", resp: provider.Decode("access_ready\n"), want: "access_ready\n"},
		{name: "decoded balance keeps raw", resp: provider.Decode("ACCESS_BALANCE: 5"), want: "ACCESS_BALANCE: 5"},
		{name: "built ready", resp: provider.Ready{}, want: "ACCESS_READY"},
		{name: "built retry", resp: provider.RetryGet{}, want: "ACCESS_RETRY_GET"},
		{name: "built number", resp: provider.NumberAllocated{ID: "1", Number: "2"}, want: "ACCESS_NUMBER:1:2"},
		{name: "cancel", resp: provider.Cancel{}, want: "ACCESS_CANCEL"},
		{name: "opaque", resp: provider.Opaque{Text: "STATUS_WAIT_CODE"}, want: "STATUS_WAIT_CODE"},
		{name: "unavailable", resp: provider.Unavailable{}, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, provider.Text(tc.resp))
		})
	}
}
