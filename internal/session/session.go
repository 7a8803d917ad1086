// Package session holds per-browser-session state: the advice history
// and the throttle bookkeeping. Sessions live in memory only and are
// discarded when idle past their TTL or when the process exits.
package session

import (
	"sync"
	"time"

	"github.com/xaenox/career-guide/internal/throttle"
	"go.uber.org/zap"
)

// State is the mutable state of one session. Handlers lock it for the
// duration of an interaction so overlapping requests from a misbehaving
// client cannot interleave.
type State struct {
	sync.Mutex

	ID       string
	History  *HistoryStore
	Throttle throttle.State

	// ErrorFlag marks a session that just hit an unexpected advisor
	// failure. Set when the failure is handled, cleared once the error
	// panel has been rendered.
	ErrorFlag bool

	lastSeen time.Time
}

// Manager owns all live sessions, keyed by session ID. Lookups create
// missing sessions; an idle sweep discards sessions untouched for the
// configured TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
	ttl      time.Duration
	logger   *zap.Logger
	done     chan struct{}
}

// NewManager creates a session manager and starts its idle sweep.
func NewManager(ttl time.Duration, logger *zap.Logger) *Manager {
	m := &Manager{
		sessions: make(map[string]*State),
		ttl:      ttl,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Get returns the session with the given ID, creating it if needed, and
// refreshes its idle timer.
func (m *Manager) Get(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		st = &State{
			ID:      id,
			History: &HistoryStore{},
		}
		m.sessions[id] = st
		m.logger.Info("Session created", zap.String("session_id", id))
	}
	st.lastSeen = time.Now()
	return st
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the idle sweep.
func (m *Manager) Close() error {
	close(m.done)
	return nil
}

func (m *Manager) sweepLoop() {
	interval := m.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep(time.Now())
		}
	}
}

// sweep discards sessions idle longer than the TTL.
func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, st := range m.sessions {
		if now.Sub(st.lastSeen) > m.ttl {
			delete(m.sessions, id)
			m.logger.Info("Session expired", zap.String("session_id", id))
		}
	}
}
