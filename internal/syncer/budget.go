package syncer

import "sync"

// budget is the run-wide candidate allowance shared by all dealer loops.
type budget struct {
	mu        sync.Mutex
	left      int
	unbounded bool
}

func newBudget(limit int) *budget {
	return &budget{
		left:      limit,
		unbounded: limit <= 0,
	}
}

// claim takes one slot from the budget. It returns false when the budget
// is spent.
func (b *budget) claim() bool {
	if b.unbounded {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.left <= 0 {
		return false
	}
	b.left--

	return true
}

// exhausted reports whether the budget is spent.
func (b *budget) exhausted() bool {
	if b.unbounded {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.left <= 0
}
