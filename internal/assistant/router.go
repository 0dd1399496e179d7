package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/devakitechdata/nexus-analytics/internal/dataset"
	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/devakitechdata/nexus-analytics/internal/gate"
	"github.com/devakitechdata/nexus-analytics/internal/intent"
	"github.com/devakitechdata/nexus-analytics/internal/repository"
)

const (
	loginMessage     = "Please log in to use the assistant."
	loadingMessage   = "The analytics dataset is still loading. Please try again in a moment."
	apologyMessage   = "Sorry, something went wrong handling that request. Please try again."
	generalResponse  = "I can answer questions about alumni engagement, employers, and events. Try asking for specific figures, or say \"help\" to see what I can do."
	greetingResponse = "Hello! Ask me about alumni engagement, employers, or events."
)

// Router is the response dispatcher: classify, gate, route to the caller's
// role family, format. Requests flow Idle -> Classifying -> Gating ->
// (Denied | Computing) -> Formatting; the returned Reply is the terminal
// state either way.
type Router struct {
	cache    *dataset.Cache
	profiles repository.ProfileRepo
	subs     repository.SubmissionRepo
	events   repository.EventRepo
	observer ChatObserver
	now      func() time.Time
}

// NewRouter wires the dispatcher to its collaborators. A nil observer is
// replaced with the no-op observer.
func NewRouter(
	cache *dataset.Cache,
	profiles repository.ProfileRepo,
	subs repository.SubmissionRepo,
	events repository.EventRepo,
	observer ChatObserver,
) *Router {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Router{
		cache:    cache,
		profiles: profiles,
		subs:     subs,
		events:   events,
		observer: observer,
		now:      time.Now,
	}
}

// Handle processes one message. Denied and unauthenticated requests return
// before any collaborator is touched; collaborator failures are converted to
// user-visible text here and never propagate.
func (r *Router) Handle(ctx context.Context, id Identity, text string) Reply {
	start := r.now()

	if !id.Role.Authenticated() {
		r.observe(ctx, ChatEvent{Role: id.Role, Duration: r.now().Sub(start)})
		return Reply{Text: loginMessage}
	}

	classified := intent.Classify(text)
	scope := gate.RequiredScope(classified)

	if !gate.IsAllowed(scope, id.Role) {
		r.observe(ctx, ChatEvent{
			Role: id.Role, Intent: classified, Scope: scope,
			Allowed: false, Duration: r.now().Sub(start),
		})
		return Reply{Text: gate.RestrictedMessage(id.Role)}
	}

	reply, err := r.dispatch(ctx, id, classified, text)
	r.observe(ctx, ChatEvent{
		Role: id.Role, Intent: classified, Scope: scope,
		Allowed: true, Duration: r.now().Sub(start), Err: err,
	})
	if err != nil {
		if errors.Is(err, dataset.ErrUnavailable) {
			return Reply{Text: loadingMessage}
		}
		return Reply{Text: apologyMessage}
	}
	return reply
}

func (r *Router) dispatch(ctx context.Context, id Identity, classified domain.Intent, text string) (Reply, error) {
	switch id.Role {
	case domain.RoleAdmin:
		return r.adminAnswer(ctx, id, classified, text)
	case domain.RoleAlumni:
		return r.alumniAnswer(ctx, id, classified, text)
	case domain.RoleEmployer:
		return r.employerAnswer(ctx, id, classified, text)
	}
	return Reply{Text: loginMessage}, nil
}

func (r *Router) observe(ctx context.Context, event ChatEvent) {
	r.observer.ObserveChat(ctx, event)
}
