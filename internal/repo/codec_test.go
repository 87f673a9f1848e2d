package repo

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOrder(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		order   entities.Order
		want    string
		wantErr error
	}{
		{
			name: "new order",
			order: entities.Order{
				ID: "12345", Number: "79001234567", Service: "tg", Country: "0",
				Status: entities.StatusWaiting, CreatedAt: createdAt,
			},
			want: "12345,79001234567,tg,0,WAITING,2025-03-01T12:30:00Z,\n",
		},
		{
			name: "sms with commas and newline",
			order: entities.Order{
				ID: "1", Number: "2", Service: "wa", Country: "6",
				Status: entities.StatusWaiting, CreatedAt: createdAt, SMS: "code 12,34\nbye",
			},
			want: "1,2,wa,6,WAITING,2025-03-01T12:30:00Z,code 12,34 bye\n",
		},
		{
			name: "comma in number",
			order: entities.Order{
				ID: "1", Number: "2,3", Service: "wa", Country: "6",
				Status: entities.StatusWaiting, CreatedAt: createdAt,
			},
			wantErr: entities.ErrInvalidRecord,
		},
		{
			name:    "empty id",
			order:   entities.Order{Number: "2", Service: "wa", Country: "6", Status: entities.StatusWaiting, CreatedAt: createdAt},
			wantErr: entities.ErrInvalidRecord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := encodeOrder(tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeOrder(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    entities.Order
		wantErr error
	}{
		{
			name: "seven fields",
			line: "12345,79001234567,tg,0,WAITING,2025-03-01T12:30:00Z,1234",
			want: entities.Order{
				ID: "12345", Number: "79001234567", Service: "tg", Country: "0",
				Status: entities.StatusWaiting, CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), SMS: "1234",
			},
		},
		{
			name: "six fields default sms",
			line: "12345,79001234567,tg,0,CANCELED,2025-03-01T12:30:00Z",
			want: entities.Order{
				ID: "12345", Number: "79001234567", Service: "tg", Country: "0",
				Status: entities.StatusCanceled, CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "sms keeps commas",
			line: "1,2,wa,6,WAITING,2025-03-01T12:30:00Z,a,b,c",
			want: entities.Order{
				ID: "1", Number: "2", Service: "wa", Country: "6",
				Status: entities.StatusWaiting, CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), SMS: "a,b,c",
			},
		},
		{
			name: "legacy timestamp",
			line: "1,2,wa,6,TIMEOUT,2024-11-05T08:15:42.123456,",
			want: entities.Order{
				ID: "1", Number: "2", Service: "wa", Country: "6",
				Status: entities.StatusTimeout, CreatedAt: time.Date(2024, 11, 5, 8, 15, 42, 123456000, time.Local),
			},
		},
		{
			name:    "five fields",
			line:    "1,2,wa,6,WAITING",
			wantErr: entities.ErrCorruptRecord,
		},
		{
			name:    "bad timestamp",
			line:    "1,2,wa,6,WAITING,yesterday,",
			wantErr: entities.ErrCorruptRecord,
		},
		{
			name:    "empty number",
			line:    "2,,tg,0,WAITING,2024-05-01T10:00:00.123456,",
			wantErr: entities.ErrCorruptRecord,
		},
		{
			name:    "empty country",
			line:    "2,628,tg,,WAITING,2024-05-01T10:00:00.123456,",
			wantErr: entities.ErrCorruptRecord,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeOrder(tc.line)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.CreatedAt.Equal(got.CreatedAt), "created_at %s != %s", tc.want.CreatedAt, got.CreatedAt)
			got.CreatedAt = tc.want.CreatedAt
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	order := entities.Order{
		ID: "98765", Number: "6281234567890", Service: "go", Country: "6",
		Status: entities.StatusCompleted, CreatedAt: time.Now().UTC(), SMS: "G-123456 is your code",
	}

	line, err := encodeOrder(order)
	require.NoError(t, err)

	got, err := decodeOrder(line[:len(line)-1])
	require.NoError(t, err)
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
	got.CreatedAt = order.CreatedAt
	assert.Equal(t, order, got)
}
