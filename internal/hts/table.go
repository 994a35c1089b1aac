package hts

import (
	"strings"
	"sync"

	"moogship/internal/domain"
)

// Table is an in-memory HS code → duty rate table. Lookups favor recall over
// speed: the curated source data and its upstream document spell codes
// inconsistently, so a miss on the stored key is retried in progressively
// looser forms. Append-only; entries are never replaced or evicted.
type Table struct {
	mu      sync.RWMutex
	name    string
	entries map[string]domain.HTSEntry
}

// NewTable builds a Table keyed by each entry's HSCode.
func NewTable(name string, entries []domain.HTSEntry) *Table {
	m := make(map[string]domain.HTSEntry, len(entries))
	for i := range entries {
		m[entries[i].HSCode] = entries[i]
	}
	return &Table{name: name, entries: m}
}

// Name returns the table's identifying name.
func (t *Table) Name() string { return t.name }

// Len returns the number of stored entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Lookup resolves code against the table in three tiers: exact match,
// match after normalization, then a digit-only comparison against every
// stored key. Returns nil on a total miss; never fails.
func (t *Table) Lookup(code string) *domain.HTSEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e, ok := t.entries[code]; ok {
		return &e
	}
	if e, ok := t.entries[Normalize(code)]; ok {
		return &e
	}

	// Linear scan fallback: the tables hold low thousands of entries at
	// most, so recall is worth more than lookup speed here. A query carrying
	// extra trailing statistical digits still matches its stored parent key;
	// the longest key wins when several are prefixes of the query.
	digits := digitsOnly(code)
	if digits == "" {
		return nil
	}
	var best *domain.HTSEntry
	bestLen := 0
	for key, e := range t.entries {
		kd := digitsOnly(key)
		if kd == digits {
			e := e
			return &e
		}
		if len(kd) >= 6 && len(kd) > bestLen && strings.HasPrefix(digits, kd) {
			e := e
			best = &e
			bestLen = len(kd)
		}
	}
	return best
}

// Put appends an entry resolved by a later stage so repeat lookups
// short-circuit here. First write wins; re-putting the same code is a no-op,
// which keeps concurrent duplicate appends benign.
func (t *Table) Put(e domain.HTSEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[e.HSCode]; ok {
		return
	}
	t.entries[e.HSCode] = e
}
