package service

import (
	"sync"
	"time"

	"xrpl-payment-portal/internal/core/ports"
)

// TickerScheduler runs each task on its own goroutine driven by a time.Ticker.
// A tick that takes longer than the interval delays the next one; ticks of
// one task never overlap.
type TickerScheduler struct{}

// NewTickerScheduler creates a TickerScheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every implements ports.Scheduler.
func (TickerScheduler) Every(interval time.Duration, fn func()) ports.Task {
	t := &tickerTask{stop: make(chan struct{})}
	go t.run(interval, fn)
	return t
}

type tickerTask struct {
	once sync.Once
	stop chan struct{}
}

func (t *tickerTask) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			// Cancel may race with a ready tick; stop wins.
			select {
			case <-t.stop:
				return
			default:
			}
			fn()
		}
	}
}

// Cancel stops the task. Safe to call more than once.
func (t *tickerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}
