package domain

import "time"

// MessageRole distinguishes the two sides of the transcript.
type MessageRole string

const (
	MessageUser      MessageRole = "user"
	MessageAssistant MessageRole = "assistant"
)

// ConversationMessage is one immutable transcript entry. Messages are only
// appended; ordering is insertion order.
type ConversationMessage struct {
	ID        string
	Role      MessageRole
	Content   string
	Timestamp time.Time
}
