package repo

import (
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
)

type Order struct {
	ID        string    `db:"id"`
	Number    string    `db:"number"`
	Service   string    `db:"service"`
	Country   string    `db:"country"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	SMS       string    `db:"sms"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:        o.ID,
		Number:    o.Number,
		Service:   o.Service,
		Country:   o.Country,
		Status:    entities.Status(o.Status),
		CreatedAt: o.CreatedAt,
		SMS:       o.SMS,
	}
}
