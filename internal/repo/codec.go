package repo

import (
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
)

// Формат строки: id,number,service,country,status,created_at,sms
// sms всегда последнее поле и может содержать запятые.
const (
	fieldCount    = 7
	minFieldCount = 6
)

// Старые записи писались без часового пояса
const legacyTimeLayout = "2006-01-02T15:04:05"

var smsFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func encodeOrder(o entities.Order) (string, error) {
	fields := []string{
		o.ID,
		o.Number,
		o.Service,
		o.Country,
		string(o.Status),
		o.CreatedAt.Format(time.RFC3339Nano),
	}
	for _, f := range fields {
		if f == "" || strings.ContainsAny(f, ",\r\n") {
			return "", fmt.Errorf("%w: bad field %q in order %q", entities.ErrInvalidRecord, f, o.ID)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f)
		b.WriteByte(',')
	}
	b.WriteString(smsFlattener.Replace(o.SMS))
	b.WriteByte('\n')
	return b.String(), nil
}

func decodeOrder(line string) (entities.Order, error) {
	parts := strings.SplitN(line, ",", fieldCount)
	if len(parts) < minFieldCount {
		return entities.Order{}, fmt.Errorf("%w: expected at least %d fields, got %d", entities.ErrCorruptRecord, minFieldCount, len(parts))
	}

	createdAt, err := parseTime(parts[5])
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: created_at %q", entities.ErrCorruptRecord, parts[5])
	}

	order := entities.Order{
		ID:        parts[0],
		Number:    parts[1],
		Service:   parts[2],
		Country:   parts[3],
		Status:    entities.Status(parts[4]),
		CreatedAt: createdAt,
	}
	if len(parts) == fieldCount {
		order.SMS = parts[6]
	}
	// Пустые поля encodeOrder не пишет, иначе запись не переживет перезапись файла
	for i, name := range []string{"id", "number", "service", "country", "status"} {
		if parts[i] == "" {
			return entities.Order{}, fmt.Errorf("%w: empty %s", entities.ErrCorruptRecord, name)
		}
	}
	return order, nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(legacyTimeLayout, s, time.Local)
}
