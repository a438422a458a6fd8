package completion

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval период проверки по умолчанию
const DefaultInterval = time.Hour

// BookingCompleter переводит прошедшие Approved бронирования в Completed
type BookingCompleter interface {
	AdvanceCompleted(ctx context.Context, today time.Time) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker периодически завершает прошедшие бронирования
type Worker struct {
	completer    BookingCompleter
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWorker создает воркер; нулевой interval заменяется на DefaultInterval
func NewWorker(completer BookingCompleter, interval time.Duration, timeProvider TimeProvider, logger Logger) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Worker{
		completer:    completer,
		interval:     interval,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start запускает фоновую задачу; повторный вызов ничего не делает
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	w.logger.Info("CompletionWorker: started, interval=%s", w.interval)
	go w.run(ctx, w.stopCh, w.doneCh)
}

// Stop останавливает задачу и дожидается ее завершения
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
	w.logger.Info("CompletionWorker: stopped")
}

// RunOnce выполняет один проход
func (w *Worker) RunOnce(ctx context.Context) int {
	count, err := w.completer.AdvanceCompleted(ctx, w.timeProvider.Now())
	if err != nil {
		w.logger.Error("CompletionWorker: failed to complete bookings: %v", err)
		return count
	}
	if count > 0 {
		w.logger.Info("CompletionWorker: %d bookings completed", count)
	}
	return count
}

func (w *Worker) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// Первый запуск сразу при старте
	w.RunOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.RunOnce(ctx)
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
