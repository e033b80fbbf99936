package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// SearchDebouncer откладывает поиск: в пределах окна delay выполняется
// только последний введенный запрос. Нулевая задержка отключает откладывание.
type SearchDebouncer struct {
	delay  time.Duration
	search func(ctx context.Context, term string) error
	log    *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewSearchDebouncer(delay time.Duration, search func(ctx context.Context, term string) error, log *slog.Logger) *SearchDebouncer {
	return &SearchDebouncer{
		delay:  delay,
		search: search,
		log:    log.With("component", "search"),
	}
}

// Changed сообщает о новом тексте поиска
func (d *SearchDebouncer) Changed(ctx context.Context, term string) error {
	if d.delay <= 0 {
		return d.search(ctx, term)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := d.seq == seq
		d.mu.Unlock()
		if !current {
			return
		}

		if err := d.search(ctx, term); err != nil {
			d.log.Warn("Отложенный поиск завершился ошибкой", "term", term, "error", err)
		}
	})
	return nil
}

// Stop отменяет ожидающий поиск
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
