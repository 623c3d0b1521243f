package chat

import (
	"sync"

	"foodchat/internal/dialogue"
)

// session holds one conversation's state. Its mutex serializes turns: a
// turn's mutation completes before the next turn of the same session is
// processed, while different sessions proceed in parallel.
type session struct {
	mu    sync.Mutex
	state *dialogue.ConversationState
}

// sessionRegistry maps session IDs to their conversation state
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
	}
}

// get returns the session for id, creating it on first use
func (r *sessionRegistry) get(id string) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &session{state: dialogue.NewConversationState()}
		r.sessions[id] = s
	}
	return s
}

// count returns the number of known sessions
func (r *sessionRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
