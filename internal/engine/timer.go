package engine

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// timerSlot is a single-slot scheduler: arming it cancels whatever was armed
// before, so at most one callback per slot is ever pending. Cancellation is
// unconditional and silent.
//
// Callers must hold the engine mutex for arm and cancel. The fired callback
// re-acquires that mutex before running, and a callback that fired for a
// superseded arm is dropped by the generation check once it gets the lock.
// That check is what keeps a stale round expiry from landing in a later round.
type timerSlot struct {
	clock clockwork.Clock
	mu    *sync.Mutex
	gen   uint64
	timer clockwork.Timer
}

func newTimerSlot(clock clockwork.Clock, mu *sync.Mutex) *timerSlot {
	return &timerSlot{clock: clock, mu: mu}
}

func (that *timerSlot) arm(d time.Duration, fn func()) {
	that.cancel()

	gen := that.gen
	that.timer = that.clock.AfterFunc(d, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if gen != that.gen {
			return
		}
		that.timer = nil

		fn()
	})
}

func (that *timerSlot) cancel() {
	that.gen++
	if that.timer != nil {
		that.timer.Stop()
		that.timer = nil
	}
}

func (that *timerSlot) pending() bool {
	return that.timer != nil
}
