// Package session isolates per-session state. Each interactive session owns
// an independent ledger and dashboard summary; session identity is the unit
// of isolation, never a process-wide singleton.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"finmaster/internal/core"
	"finmaster/internal/dashboard"
	"finmaster/internal/ledger"
)

// Session holds everything scoped to one interactive session: the live
// ledger of entries recorded this session and the summary of the most
// recently uploaded dataset. Both die with the session.
type Session struct {
	ID     string
	Ledger *ledger.Ledger

	mu       sync.Mutex
	summary  *dashboard.Summary
	fileName string
}

// SetDashboard replaces the session's dashboard summary. The previous
// dataset, if any, is discarded.
func (s *Session) SetDashboard(fileName string, sum *dashboard.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileName = fileName
	s.summary = sum
}

// Dashboard returns the current summary and the name of the file it came
// from. A nil summary means nothing has been uploaded yet.
func (s *Session) Dashboard() (string, *dashboard.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileName, s.summary
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry maps session ids to sessions and expires sessions that have been
// idle longer than the TTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	tax      core.Taxonomy
	ttl      time.Duration

	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

// NewRegistry creates a registry whose sessions validate ledger writes
// against tax, and starts the background sweep of idle sessions.
func NewRegistry(tax core.Taxonomy, ttl time.Duration) *Registry {
	r := &Registry{
		sessions:    make(map[string]*entry),
		tax:         tax,
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}
	go r.startCleanup()
	return r
}

// Create starts a new session with a fresh, empty ledger.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:     uuid.NewString(),
		Ledger: ledger.New(r.tax),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = &entry{session: s, lastSeen: time.Now()}
	return s
}

// Get returns the session with the given id, refreshing its idle timer.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.session, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Stop shuts down the idle-session sweeper.
func (r *Registry) Stop() {
	r.shutdownOnce.Do(func() {
		close(r.stopCleanup)
	})
}

func (r *Registry) startCleanup() {
	interval := r.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.expireIdle()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *Registry) expireIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-r.ttl)
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}
