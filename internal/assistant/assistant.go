// Package assistant is the conversational core of the portal: it classifies
// a message, enforces the visibility policy, computes or fetches the answer,
// and appends the exchange to the session transcript.
package assistant

import (
	"context"
	"errors"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// ErrBusy reports that the session already has a request in flight. The
// caller may retry once the current request resolves.
var ErrBusy = errors.New("a request is already in flight")

// Identity is the authenticated caller. It is assigned by the auth layer and
// immutable for the life of a session.
type Identity struct {
	UserKey int64
	Role    domain.Role
}

// Reply is the outcome of one handled message: answer text, and optionally a
// navigation route the host application should follow. The assistant never
// performs navigation itself.
type Reply struct {
	Text  string
	Route string
}

// Handler turns one classified-and-gated message into a Reply. It never
// returns an error: every failure is converted to user-visible text at the
// handler boundary.
type Handler interface {
	Handle(ctx context.Context, id Identity, text string) Reply
}
