package usecase

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Debouncer схлопывает всплески событий изменения данных в один вызов
// обработчика. Первое событие взводит таймер; всё, что приходит внутри
// окна, сгорает в том же срабатывании.
type Debouncer struct {
	window  time.Duration
	handler func()
	logger  *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending int
}

// NewDebouncer создает дебаунсер с заданным окном
func NewDebouncer(window time.Duration, handler func(), logger *zap.Logger) *Debouncer {
	return &Debouncer{
		window:  window,
		handler: handler,
		logger:  logger,
	}
}

// Trigger регистрирует событие. Обработчик будет вызван один раз
// по истечении окна с момента первого незакрытого события.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending++
	if d.timer != nil {
		return
	}

	d.timer = time.AfterFunc(d.window, d.fire)
}

// Flush немедленно вызывает обработчик, если есть накопленные события
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.fire()
}

// Stop отменяет отложенный вызов без срабатывания
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = 0
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	count := d.pending
	d.pending = 0
	d.timer = nil
	d.mu.Unlock()

	if count == 0 {
		return
	}

	d.logger.Debug("Debounced change events", zap.Int("coalesced", count))
	d.handler()
}
