package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublisher_Notify(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(discardLogger(), w)

	event := entities.NewOrderEvent(entities.EventSMSReceived, entities.Order{
		ID: "42", Status: entities.StatusWaiting, SMS: "1234",
	})
	p.Notify(context.Background(), event)

	require.Len(t, w.messages, 1)
	assert.Equal(t, "42", string(w.messages[0].Key))

	var got entities.OrderEvent
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, entities.EventSMSReceived, got.Type)
	assert.Equal(t, "1234", got.SMS)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteErrorIsNotFatal(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(discardLogger(), w)

	assert.NotPanics(t, func() {
		p.Notify(context.Background(), entities.NewOrderEvent(entities.EventCreated, entities.Order{ID: "1"}))
	})
	assert.Empty(t, w.messages)
}

type recorder struct {
	events []entities.OrderEvent
}

func (r *recorder) Notify(_ context.Context, e entities.OrderEvent) {
	r.events = append(r.events, e)
}

func TestMulti(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, Nop{}, b}

	m.Notify(context.Background(), entities.NewOrderEvent(entities.EventCanceled, entities.Order{ID: "7"}))

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, "7", a.events[0].OrderID)
	assert.Equal(t, a.events[0], b.events[0])
}
