package service

import (
	"sync"

	"userpanel/util/random"
)

const sessionTokenLength = 40

// sessionStore is the authoritative token -> account id table, shared by
// all SessionService values. Entries live until ended or process exit;
// there is currently no expiry policy.
var sessionStore = struct {
	sync.RWMutex
	sessions map[string]int
}{
	sessions: make(map[string]int),
}

// SessionService manages server-side login sessions. The cookie only
// transports the opaque token; the binding lives here.
type SessionService struct{}

// StartSession issues a fresh token bound to accountId. Existing sessions
// for the same account stay valid.
func (s *SessionService) StartSession(accountId int) string {
	token := random.Seq(sessionTokenLength)
	sessionStore.Lock()
	sessionStore.sessions[token] = accountId
	sessionStore.Unlock()
	return token
}

// ResolveSession returns the account id bound to token, if any.
func (s *SessionService) ResolveSession(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	sessionStore.RLock()
	id, ok := sessionStore.sessions[token]
	sessionStore.RUnlock()
	return id, ok
}

// EndSession removes the binding for token. Ending an unknown or already
// ended session is a no-op.
func (s *SessionService) EndSession(token string) {
	sessionStore.Lock()
	delete(sessionStore.sessions, token)
	sessionStore.Unlock()
}

// EndSessionsFor removes every session bound to accountId, so tokens of a
// deleted account stop resolving.
func (s *SessionService) EndSessionsFor(accountId int) {
	sessionStore.Lock()
	for token, id := range sessionStore.sessions {
		if id == accountId {
			delete(sessionStore.sessions, token)
		}
	}
	sessionStore.Unlock()
}

// CountSessions returns the number of live sessions.
func (s *SessionService) CountSessions() int {
	sessionStore.RLock()
	defer sessionStore.RUnlock()
	return len(sessionStore.sessions)
}
