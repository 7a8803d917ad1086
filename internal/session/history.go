package session

import "github.com/xaenox/career-guide/internal/models"

// HistoryStore is an append-only, insertion-ordered log of completed
// advice requests. Entries are copied in and out; the store is the sole
// owner of its backing slice. It is not safe for concurrent use on its
// own — callers hold the owning session's lock.
type HistoryStore struct {
	entries []models.HistoryEntry
}

// Append adds an entry at the end of the log.
func (h *HistoryStore) Append(entry models.HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Latest returns the most recently appended entry.
func (h *HistoryStore) Latest() (models.HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return models.HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Entry returns the entry at the given insertion-order index.
func (h *HistoryStore) Entry(i int) (models.HistoryEntry, bool) {
	if i < 0 || i >= len(h.entries) {
		return models.HistoryEntry{}, false
	}
	return h.entries[i], true
}

// All returns a copy of the log in insertion order.
func (h *HistoryStore) All() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of entries.
func (h *HistoryStore) Len() int {
	return len(h.entries)
}
