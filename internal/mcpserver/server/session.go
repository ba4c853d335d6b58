package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned for unknown or expired session IDs
var ErrSessionNotFound = errors.New("session not found")

// MCPSession represents an active MCP client connection
type MCPSession struct {
	ID              string
	ProtocolVersion string // negotiated during initialize
	ClientName      string
	CreatedAt       time.Time
	LastSeen        time.Time
}

// SessionManager manages MCP sessions for stateful transport mode
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*MCPSession // sessionID -> session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionManager creates a new session manager and starts expiring idle
// sessions in the background until Close is called
func NewSessionManager(ttl time.Duration) *SessionManager {
	mgr := &SessionManager{
		sessions: make(map[string]*MCPSession),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go mgr.cleanupLoop(5 * time.Minute)

	return mgr
}

// CreateSession creates a new MCP session
func (sm *SessionManager) CreateSession(protocolVersion, clientName string) *MCPSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	session := &MCPSession{
		ID:              uuid.New().String(),
		ProtocolVersion: protocolVersion,
		ClientName:      clientName,
		CreatedAt:       now,
		LastSeen:        now,
	}

	sm.sessions[session.ID] = session

	log.Debug().
		Str("sessionId", session.ID).
		Str("client", clientName).
		Msg("Created MCP session")

	return session
}

// GetSession retrieves a copy of a live session by ID
func (sm *SessionManager) GetSession(sessionID string) (MCPSession, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists || sm.expired(session, sm.now()) {
		return MCPSession{}, ErrSessionNotFound
	}

	return *session, nil
}

// Touch marks a session as active, failing when it is unknown or expired
func (sm *SessionManager) Touch(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	session, exists := sm.sessions[sessionID]
	if !exists || sm.expired(session, now) {
		return ErrSessionNotFound
	}
	session.LastSeen = now
	return nil
}

// DeleteSession removes a session, reporting whether it existed
func (sm *SessionManager) DeleteSession(sessionID string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	_, exists := sm.sessions[sessionID]
	delete(sm.sessions, sessionID)

	log.Debug().
		Str("sessionId", sessionID).
		Bool("existed", exists).
		Msg("Deleted MCP session")

	return exists
}

// Count returns the number of sessions held, including expired ones not yet swept
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Close stops the background cleanup
func (sm *SessionManager) Close() {
	sm.stopOnce.Do(func() { close(sm.stop) })
}

func (sm *SessionManager) expired(session *MCPSession, now time.Time) bool {
	return now.Sub(session.LastSeen) > sm.ttl
}

// removeExpired deletes idle sessions and returns how many were removed
func (sm *SessionManager) removeExpired() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	expired := 0
	for id, session := range sm.sessions {
		if sm.expired(session, now) {
			delete(sm.sessions, id)
			expired++
		}
	}
	return expired
}

func (sm *SessionManager) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-sm.stop:
			return
		case <-ticker.C:
			if expired := sm.removeExpired(); expired > 0 {
				log.Info().
					Int("count", expired).
					Msg("Cleaned up expired MCP sessions")
			}
		}
	}
}
