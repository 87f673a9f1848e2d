package repo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
	"github.com/SergeyBogomolovv/sms-order-service/pkg/utils"

	"github.com/gofrs/flock"
)

const maxLineSize = 1 << 20

// Перезапуск сервиса может пересечься с остановкой старого процесса
var lockRetry = utils.RetryConfig{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     200 * time.Millisecond,
}

var errLockFailed = errors.New("failed to lock orders file")

// fileRepo хранит заказы в текстовом файле, по строке на заказ.
// Файл читается один раз при открытии, дальше чтения идут из памяти.
// Все записи проходят под одним мьютексом. Между процессами файл
// защищен блокировкой <path>.lock, второй процесс открыть его не сможет.
type fileRepo struct {
	logger *slog.Logger
	path   string
	lock   *flock.Flock

	mu     sync.RWMutex
	orders []entities.Order
	index  map[string]int

	// файл не заканчивается переводом строки
	danglingLine bool
}

func NewFileRepo(logger *slog.Logger, path string) (*fileRepo, error) {
	r := &fileRepo{
		logger: logger.With(slog.String("store", "file")),
		path:   path,
		lock:   flock.New(path + ".lock"),
		index:  make(map[string]int),
	}
	if err := r.acquire(); err != nil {
		return nil, err
	}
	if err := r.load(); err != nil {
		r.lock.Unlock()
		return nil, err
	}
	r.logger.Info("orders loaded", slog.String("path", path), slog.Int("count", len(r.orders)))
	return r, nil
}

func (r *fileRepo) acquire() error {
	return utils.Retry(lockRetry, func() error {
		ok, err := r.lock.TryLock()
		if err != nil {
			return fmt.Errorf("%w: %v", errLockFailed, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrStoreLocked, r.lock.Path())
		}
		return nil
	}, errLockFailed)
}

func (r *fileRepo) load() error {
	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open orders file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		order, err := decodeOrder(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", r.path, lineNo, err)
		}
		if _, ok := r.index[order.ID]; ok {
			return fmt.Errorf("%s:%d: %w: duplicate id %q", r.path, lineNo, entities.ErrCorruptRecord, order.ID)
		}
		r.index[order.ID] = len(r.orders)
		r.orders = append(r.orders, order)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read orders file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat orders file: %w", err)
	}
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("failed to read orders file: %w", err)
		}
		r.danglingLine = last[0] != '\n'
	}
	return nil
}

func (r *fileRepo) Append(ctx context.Context, o entities.Order) error {
	line, err := encodeOrder(o)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[o.ID]; ok {
		return fmt.Errorf("%w: %s", entities.ErrDuplicateOrder, o.ID)
	}

	if r.danglingLine {
		line = "\n" + line
	}
	if err := appendLine(r.path, line); err != nil {
		// Строка могла записаться частично, следующая запись начнется с новой строки
		r.danglingLine = true
		r.logger.ErrorContext(ctx, "failed to append order", slog.String("order_id", o.ID), slog.Any("error", err))
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}

	r.danglingLine = false
	r.index[o.ID] = len(r.orders)
	r.orders = append(r.orders, o)
	return nil
}

func (r *fileRepo) LoadAll(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.orders), nil
}

func (r *fileRepo) Get(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.orders[i], nil
}

// UpdateFields переписывает файл целиком через временный файл и rename,
// так что на диске всегда либо старое, либо новое состояние.
func (r *fileRepo) UpdateFields(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	if err := upd.Check(r.orders[i]); err != nil {
		return entities.Order{}, err
	}

	next := slices.Clone(r.orders)
	next[i] = upd.Apply(next[i])

	if err := r.rewrite(next); err != nil {
		r.logger.ErrorContext(ctx, "failed to rewrite orders", slog.String("order_id", id), slog.Any("error", err))
		return entities.Order{}, err
	}

	r.orders = next
	r.danglingLine = false
	return next[i], nil
}

func (r *fileRepo) rewrite(orders []entities.Order) error {
	var b strings.Builder
	for _, o := range orders {
		line, err := encodeOrder(o)
		if err != nil {
			return err
		}
		b.WriteString(line)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".orders-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrWrite, err)
	}
	return nil
}

func (r *fileRepo) Close() error {
	return r.lock.Unlock()
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
