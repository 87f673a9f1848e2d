package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/segmentio/kafka-go"
)

// Читает события заказов из топика и печатает их, удобно при локальной отладке публикации.
func main() {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{"localhost:9092"},
		Topic:       "sms-orders",
		GroupID:     "sms-orders-tail",
		StartOffset: kafka.LastOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Println("failed to read message:", err)
			continue
		}

		var event entities.OrderEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Println("invalid event:", string(msg.Value))
			continue
		}
		log.Printf("%s order=%s status=%s sms=%q partition=%d offset=%d",
			event.Type, event.OrderID, event.Status, event.SMS, msg.Partition, msg.Offset)
	}
}
