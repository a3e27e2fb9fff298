package usage

import "sync"

// Ledger accumulates estimated token usage per API key for the lifetime of
// the process. Nothing is persisted and entries are never evicted; the
// counts reset on restart.
type Ledger struct {
	mu     sync.Mutex
	totals map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{totals: make(map[string]int)}
}

// Record adds tokens to the key's running total, starting from zero for an
// unseen key. Safe for concurrent handlers.
func (l *Ledger) Record(apiKey string, tokens int) {
	l.mu.Lock()
	l.totals[apiKey] += tokens
	l.mu.Unlock()
}

// Used returns the current total for the key, zero if unseen.
func (l *Ledger) Used(apiKey string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals[apiKey]
}
