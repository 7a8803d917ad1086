package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/career-guide/internal/models"
	"go.uber.org/zap"
)

func entry(i int) models.HistoryEntry {
	return models.HistoryEntry{
		Name:      fmt.Sprintf("User %d", i),
		Timestamp: fmt.Sprintf("0%d Mar 2026 18:0%d", i, i),
		Advice:    fmt.Sprintf("## Path %d", i),
	}
}

func TestHistoryStoreEmpty(t *testing.T) {
	h := &HistoryStore{}
	assert.Equal(t, 0, h.Len())
	_, ok := h.Latest()
	assert.False(t, ok)
	_, ok = h.Entry(0)
	assert.False(t, ok)
	assert.Empty(t, h.All())
}

func TestHistoryStoreOrdering(t *testing.T) {
	h := &HistoryStore{}
	const n = 5
	for i := 0; i < n; i++ {
		h.Append(entry(i))
	}

	assert.Equal(t, n, h.Len())

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, entry(n-1), latest)

	all := h.All()
	require.Len(t, all, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, entry(i), all[i])
	}
}

func TestHistoryStoreAllReturnsCopy(t *testing.T) {
	h := &HistoryStore{}
	h.Append(entry(0))

	all := h.All()
	all[0].Name = "mutated"

	got, ok := h.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "User 0", got.Name)
}

func TestManagerGetCreatesOnce(t *testing.T) {
	m := NewManager(time.Hour, zap.NewNop())
	defer m.Close()

	a := m.Get("session-a")
	b := m.Get("session-b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, m.Len())

	// Same ID yields the same state; histories stay isolated.
	a.History.Append(entry(1))
	again := m.Get("session-a")
	assert.Same(t, a, again)
	assert.Equal(t, 1, again.History.Len())
	assert.Equal(t, 0, b.History.Len())
}

func TestManagerSweep(t *testing.T) {
	m := NewManager(time.Minute, zap.NewNop())
	defer m.Close()

	st := m.Get("stale")
	st.lastSeen = time.Now().Add(-2 * time.Minute)
	m.Get("fresh")

	m.sweep(time.Now())
	assert.Equal(t, 1, m.Len())
	assert.Same(t, m.Get("fresh"), m.Get("fresh"))
}
