package core

import (
	"strconv"
	"sync"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for entry dates.
const DateLayout = "2006-01-02"

// Values used for every entry produced by NextEntry.
const (
	PlaceholderImageURL = "assets/images/placeholder.png"
	RecordedStatus      = "Improving"
	baseScore           = 85
	scoreSpan           = 15
)

// Metrics holds per-symptom severity, each on an informal 0-100 scale.
type Metrics struct {
	Redness      int
	Inflammation int
	Scaling      int
	Texture      int
}

// ProgressEntry is one weekly skin-condition record.
type ProgressEntry struct {
	Week     string    // "Week N"; not enforced unique beyond append order
	Date     time.Time // calendar date; time of day is ignored
	ImageURL string    // opaque path to a static asset, never checked
	Status   string    // free-text severity word (Bad, Poor, Improving, ...)
	Score    int       // 0-100
	Metrics  Metrics
}

// HistoryStore holds the ordered progress history for the process lifetime.
// Entries are only ever appended; there is no edit, delete or reorder.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []ProgressEntry
}

// NewHistoryStore constructs a store that owns a copy of seed.
func NewHistoryStore(seed []ProgressEntry) *HistoryStore {
	return &HistoryStore{
		entries: append([]ProgressEntry(nil), seed...),
	}
}

// List returns every entry in insertion order. The slice is a copy.
func (s *HistoryStore) List() []ProgressEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ProgressEntry(nil), s.entries...)
}

// Len returns the number of entries currently held.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Append adds e to the end of the history and returns it unchanged.
// It always succeeds.
func (s *HistoryStore) Append(e ProgressEntry) ProgressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return e
}

// RecordNext derives the next entry from the current length and appends it,
// all under one write lock.
func (s *HistoryStore) RecordNext(now time.Time) ProgressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := NextEntry(len(s.entries), now)
	s.entries = append(s.entries, e)
	return e
}

// NextEntry builds the entry that follows a history of length n.
func NextEntry(n int, now time.Time) ProgressEntry {
	y, m, d := now.Date()
	return ProgressEntry{
		Week:     "Week " + strconv.Itoa(n+1),
		Date:     time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		ImageURL: PlaceholderImageURL,
		Status:   RecordedStatus,
		Score:    baseScore + n%scoreSpan,
		Metrics: Metrics{
			Redness:      10,
			Inflammation: 10,
			Scaling:      5,
			Texture:      92,
		},
	}
}
