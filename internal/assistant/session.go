package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/google/uuid"
)

// Session is the conversational surface exposed to the host application. It
// holds the append-only transcript and serializes requests: while one is in
// flight, further sends fail with ErrBusy instead of queueing.
type Session struct {
	handler Handler
	id      Identity
	now     func() time.Time

	mu       sync.Mutex
	busy     bool
	messages []domain.ConversationMessage
}

// NewSession creates a session for the given caller identity.
func NewSession(handler Handler, id Identity) *Session {
	return &Session{
		handler: handler,
		id:      id,
		now:     time.Now,
	}
}

// SendMessage handles one user message: the user message and the assistant's
// answer are appended to the transcript and the Reply (text plus optional
// navigation route) is returned. No error category ends the session; a
// rejected send simply leaves the transcript untouched.
func (s *Session) SendMessage(ctx context.Context, text string) (Reply, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Reply{}, ErrBusy
	}
	s.busy = true
	s.append(domain.MessageUser, text)
	s.mu.Unlock()

	reply := s.handler.Handle(ctx, s.id, text)

	s.mu.Lock()
	s.append(domain.MessageAssistant, reply.Text)
	s.busy = false
	s.mu.Unlock()

	return reply, nil
}

// append adds a transcript entry. Callers must hold s.mu.
func (s *Session) append(role domain.MessageRole, content string) {
	s.messages = append(s.messages, domain.ConversationMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	})
}

// Messages returns a copy of the transcript in insertion order.
func (s *Session) Messages() []domain.ConversationMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ConversationMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ClearMessages empties the transcript. The session stays usable.
func (s *Session) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Role returns the caller's role.
func (s *Session) Role() domain.Role {
	return s.id.Role
}

// IsBusy reports whether a request is currently in flight.
func (s *Session) IsBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
