package assistant

import (
	"context"
	"sync"
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedHandler blocks until released, to hold a request in flight.
type scriptedHandler struct {
	reply   Reply
	release chan struct{}
	started chan struct{}
}

func (h *scriptedHandler) Handle(ctx context.Context, id Identity, text string) Reply {
	if h.started != nil {
		close(h.started)
	}
	if h.release != nil {
		<-h.release
	}
	return h.reply
}

func TestSendMessage_AppendsUserAndAssistantMessages(t *testing.T) {
	handler := &scriptedHandler{reply: Reply{Text: "We have 10 alumni in the network."}}
	session := NewSession(handler, Identity{UserKey: 1, Role: domain.RoleAdmin})

	reply, err := session.SendMessage(context.Background(), "how many alumni do we have")
	require.NoError(t, err)
	assert.Equal(t, "We have 10 alumni in the network.", reply.Text)

	messages := session.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, domain.MessageUser, messages[0].Role)
	assert.Equal(t, "how many alumni do we have", messages[0].Content)
	assert.Equal(t, domain.MessageAssistant, messages[1].Role)
	assert.Equal(t, reply.Text, messages[1].Content)
	assert.NotEmpty(t, messages[0].ID)
}

func TestSendMessage_RejectsWhileBusy(t *testing.T) {
	handler := &scriptedHandler{
		reply:   Reply{Text: "done"},
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	session := NewSession(handler, Identity{UserKey: 1, Role: domain.RoleAdmin})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := session.SendMessage(context.Background(), "first")
		assert.NoError(t, err)
	}()

	<-handler.started
	assert.True(t, session.IsBusy())

	_, err := session.SendMessage(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy, "a second send while in flight is rejected, not queued")

	close(handler.release)
	wg.Wait()

	assert.False(t, session.IsBusy())
	messages := session.Messages()
	require.Len(t, messages, 2, "the rejected send left no transcript entries")
	assert.Equal(t, "first", messages[0].Content)
}

func TestSession_RemainsUsableAfterRejection(t *testing.T) {
	handler := &scriptedHandler{reply: Reply{Text: "ok"}}
	session := NewSession(handler, Identity{UserKey: 1, Role: domain.RoleAlumni})
	ctx := context.Background()

	_, err := session.SendMessage(ctx, "one")
	require.NoError(t, err)
	_, err = session.SendMessage(ctx, "two")
	require.NoError(t, err)

	assert.Len(t, session.Messages(), 4)
}

func TestClearMessages(t *testing.T) {
	handler := &scriptedHandler{reply: Reply{Text: "ok"}}
	session := NewSession(handler, Identity{UserKey: 1, Role: domain.RoleAlumni})

	_, err := session.SendMessage(context.Background(), "one")
	require.NoError(t, err)
	require.NotEmpty(t, session.Messages())

	session.ClearMessages()
	assert.Empty(t, session.Messages())
	assert.Equal(t, domain.RoleAlumni, session.Role(), "identity survives a clear")
}

func TestMessages_ReturnsCopy(t *testing.T) {
	handler := &scriptedHandler{reply: Reply{Text: "ok"}}
	session := NewSession(handler, Identity{UserKey: 1, Role: domain.RoleAdmin})

	_, err := session.SendMessage(context.Background(), "one")
	require.NoError(t, err)

	snapshot := session.Messages()
	snapshot[0].Content = "mutated"
	assert.Equal(t, "one", session.Messages()[0].Content, "transcript is append-only")
}
