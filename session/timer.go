package session

import (
	"sync"
	"time"
)

// Countdown is a single cancellable tick source. A session owns exactly one
// and stops it on every exit from InProgress, so a stray tick can never
// re-trigger submission after completion.
type Countdown struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func newCountdown(interval time.Duration, tick func()) *Countdown {
	c := &Countdown{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-c.ticker.C:
				tick()
			case <-c.done:
				return
			}
		}
	}()

	return c
}

// Stop cancels the countdown. Safe to call more than once.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
