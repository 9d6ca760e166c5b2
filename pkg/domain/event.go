package domain

import "time"

// EventType is a chat UI event reported by the host
type EventType string

// supported host events
const (
	EventMessageRendered   EventType = "message_rendered"
	EventMessageEdited     EventType = "message_edited"
	EventChatChanged       EventType = "chat_changed"
	EventExpressionUpdated EventType = "expression_updated"
)

// Valid reports whether the event type is known
func (t EventType) Valid() bool {
	switch t {
	case EventMessageRendered, EventMessageEdited, EventChatChanged, EventExpressionUpdated:
		return true
	}
	return false
}

// Event is a host UI event. Text is plain message text unless HTML is set, then it is
// the rendered message markup. Expression is set only for expression_updated.
type Event struct {
	Type       EventType `json:"type"`
	ChatID     string    `json:"chat_id,omitempty"`
	MessageID  string    `json:"message_id,omitempty"`
	Text       string    `json:"text,omitempty"`
	HTML       bool      `json:"html,omitempty"`
	IsUser     bool      `json:"is_user,omitempty"`
	Character  string    `json:"character,omitempty"`
	Expression string    `json:"expression,omitempty"`
}

// Message identifies a chat message an avatar presentation belongs to
type Message struct {
	ChatID    string
	MessageID string
	Character string
	IsUser    bool
}

// Assignment is the expression last applied to a message
type Assignment struct {
	ChatID     string    `json:"chat_id" db:"chat_id"`
	MessageID  string    `json:"message_id" db:"message_id"`
	Character  string    `json:"character" db:"character"`
	IsUser     bool      `json:"is_user" db:"is_user"`
	Expression string    `json:"expression" db:"expression"`
	Source     string    `json:"source" db:"source"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// SourceExternal marks expressions supplied by the host's expressions plugin
const SourceExternal = "external"

// Presentation describes the avatar overlay the host should apply to a message.
// Remove means drop any overlay and restore the original avatar at full opacity.
type Presentation struct {
	ChatID          string  `json:"chat_id"`
	MessageID       string  `json:"message_id"`
	Expression      string  `json:"expression"`
	Source          string  `json:"source"`
	ImageURL        string  `json:"image_url,omitempty"`
	Alt             string  `json:"alt,omitempty"`
	MaxHeight       int     `json:"max_height,omitempty"`
	OriginalOpacity float64 `json:"original_opacity"`
	Responsive      bool    `json:"responsive"`
	Remove          bool    `json:"remove,omitempty"`
}
