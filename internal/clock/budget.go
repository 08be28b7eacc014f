package clock

import (
	"context"
	"sync"
	"time"
)

// Keeps track of the time that passes between `Budget.Resume()`
// and `Budget.Pause()` calls, like a chess clock for one player.
//
// Once the summary running time reaches the limit, `onExpire`
// is called exactly once and the budget stays expired.
//
// Budget is safe for concurrent use.
type Budget struct {
	mu sync.Mutex

	limit     time.Duration
	spent     time.Duration
	resumedAt time.Time
	running   bool
	expired   bool
	closed    bool

	// Bumped on every Resume so that a timer armed by an
	// earlier Resume can't expire a later run.
	generation uint64
	timer      *time.Timer
	onExpire   func()
}

// Creates Budget with given limit and onExpire.
//
// Created Budget is in PAUSED state.
func NewBudget(limit time.Duration, onExpire func()) *Budget {
	return &Budget{
		limit:    limit,
		onExpire: onExpire,
	}
}

func (b *Budget) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running || b.expired || b.closed {
		return
	}

	b.running = true
	b.resumedAt = time.Now()
	b.generation++

	gen := b.generation
	b.timer = time.AfterFunc(b.limit-b.spent, func() {
		b.expire(gen)
	})
}

func (b *Budget) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	b.timer.Stop()
	b.running = false
	b.spent = min(b.limit, b.spent+time.Since(b.resumedAt))
}

func (b *Budget) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.generation || !b.running || b.closed {
		b.mu.Unlock()
		return
	}

	b.running = false
	b.expired = true
	b.spent = b.limit
	b.mu.Unlock()

	if b.onExpire != nil {
		b.onExpire()
	}
}

func (b *Budget) Spent() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	spent := b.spent
	if b.running {
		spent += time.Since(b.resumedAt)
	}
	return min(b.limit, spent)
}

func (b *Budget) Remaining() time.Duration {
	return b.limit - b.Spent()
}

func (b *Budget) Expired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.expired
}

// Stops the budget for good; onExpire will not be called afterwards.
// Safe to call more than once.
func (b *Budget) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	if b.running {
		b.timer.Stop()
		b.spent = min(b.limit, b.spent+time.Since(b.resumedAt))
		b.running = false
	}
}

// Creates context and budget bound together.
//
// When the budget is exhausted, context is cancelled
// with `cause` cause.
//
// When the parent context is cancelled, budget is closed.
func NewBudgetContext(parent context.Context, limit time.Duration, cause error) (context.Context, *Budget) {
	ctx, cancel := context.WithCancelCause(parent)
	b := NewBudget(limit, func() {
		cancel(cause)
	})

	context.AfterFunc(ctx, b.Close)

	return ctx, b
}
