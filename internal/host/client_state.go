package host

import (
	"sync"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports"
)

// ClientState holds what the client currently knows about the logged-in
// character.
type ClientState struct {
	mu        sync.RWMutex
	id        domain.SessionID
	character *domain.Character
}

var _ ports.SessionSource = (*ClientState)(nil)

func NewClientState() *ClientState {
	return &ClientState{}
}

func (s *ClientState) SetLogin(id domain.SessionID, character *domain.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = id
	s.character = nil
	if character != nil {
		c := *character
		s.character = &c
	}
}

func (s *ClientState) Clear() {
	s.SetLogin(domain.NoSession, nil)
}

func (s *ClientState) SessionID() domain.SessionID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.id
}

func (s *ClientState) Character() (domain.Character, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.character == nil {
		return domain.Character{}, false
	}
	return *s.character, true
}
