package server

import (
	"sort"
	"strings"
	"sync"

	"github.com/tomz197/snake/internal/loop/config"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	seq      uint64 // Submission order, used for deterministic tie-break
}

// Board keeps the best finished scores of the process lifetime.
// Safe for concurrent use.
type Board struct {
	mu      sync.RWMutex
	entries []TopScoreEntry // Sorted best first
	limit   int
	nextSeq uint64
}

// NewBoard creates a board holding at most limit entries.
func NewBoard(limit int) *Board {
	if limit < 1 {
		limit = 1
	}
	return &Board{limit: limit}
}

// Submit records a finished score. Zero scores are ignored. Returns true
// if the score made it onto the board.
func (b *Board) Submit(username string, score int) bool {
	if score <= 0 {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entry := TopScoreEntry{
		Username: normalizeUsername(username),
		Score:    score,
		seq:      b.nextSeq,
	}
	b.nextSeq++

	// Equal scores keep submission order, so the earlier one stays ahead.
	idx := sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Score < entry.Score
	})
	if idx >= b.limit {
		return false
	}

	b.entries = append(b.entries, TopScoreEntry{})
	copy(b.entries[idx+1:], b.entries[idx:])
	b.entries[idx] = entry
	if len(b.entries) > b.limit {
		b.entries = b.entries[:b.limit]
	}
	return true
}

// Top returns up to n best entries, best first.
func (b *Board) Top(n int) []TopScoreEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if n > len(b.entries) {
		n = len(b.entries)
	}
	if n <= 0 {
		return nil
	}
	out := make([]TopScoreEntry, n)
	copy(out, b.entries[:n])
	return out
}

// Best returns the highest recorded score, or 0.
func (b *Board) Best() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}

func normalizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "anonymous"
	}
	if r := []rune(name); len(r) > config.MaxUsernameLength {
		name = string(r[:config.MaxUsernameLength])
	}
	return name
}
