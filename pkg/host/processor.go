// Package host processes chat events coming from the host front-end and turns them
// into avatar presentations.
package host

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

//go:generate moq -out mocks/settings_provider.go -pkg mocks -skip-ensure -fmt goimports . SettingsProvider
//go:generate moq -out mocks/assignment_store.go -pkg mocks -skip-ensure -fmt goimports . AssignmentStore
//go:generate moq -out mocks/expression_source.go -pkg mocks -skip-ensure -fmt goimports . ExpressionSource

// SettingsProvider gives access to live settings and catalog
type SettingsProvider interface {
	Settings() domain.Settings
	Catalog() *expression.Catalog
}

// AssignmentStore keeps expressions picked for messages
type AssignmentStore interface {
	SetAssignment(ctx context.Context, a domain.Assignment) error
	GetAssignment(ctx context.Context, chatID, messageID string) (*domain.Assignment, error)
	ListAssignments(ctx context.Context, chatID string) ([]domain.Assignment, error)
	DeleteChat(ctx context.Context, chatID string) (int64, error)
}

// ExpressionSource knows expressions set for messages by another plugin
type ExpressionSource interface {
	Expression(ctx context.Context, chatID, messageID string) (string, bool)
}

// Presenter builds the avatar overlay for a message
type Presenter interface {
	Present(ctx context.Context, msg domain.Message, expression, source string, s domain.Settings) domain.Presentation
}

// Processor handles host events
type Processor struct {
	settings  SettingsProvider
	store     AssignmentStore
	source    ExpressionSource
	presenter Presenter
	policy    *bluemonday.Policy

	mu          sync.RWMutex
	currentChat string
}

// Config holds Processor dependencies, Source is optional
type Config struct {
	Settings  SettingsProvider
	Store     AssignmentStore
	Source    ExpressionSource
	Presenter Presenter
}

// NewProcessor makes a processor
func NewProcessor(cfg Config) *Processor {
	return &Processor{
		settings:  cfg.Settings,
		store:     cfg.Store,
		source:    cfg.Source,
		presenter: cfg.Presenter,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Handle processes a single event. It returns nil presentation if the event needs no avatar change.
func (p *Processor) Handle(ctx context.Context, ev domain.Event) (*domain.Presentation, error) {
	if !ev.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidEvent, ev.Type)
	}

	if ev.Type == domain.EventChatChanged {
		chatID := p.switchChat(ev.ChatID)
		lgr.Printf("[DEBUG] chat changed to %s", chatID)
		return nil, nil
	}

	s := p.settings.Settings()
	if !s.Enabled {
		return nil, nil
	}
	if ev.IsUser && !s.ApplyToUser {
		return nil, nil
	}

	chatID := ev.ChatID
	if chatID == "" {
		chatID = p.CurrentChat()
	}

	var expr, source string
	switch ev.Type {
	case domain.EventExpressionUpdated:
		expr = expression.NormalizeName(ev.Expression)
		if ev.MessageID == "" || expr == "" {
			return nil, nil
		}
		source = domain.SourceExternal
	default:
		if ev.MessageID == "" {
			return nil, fmt.Errorf("%w: message id is required", domain.ErrInvalidEvent)
		}
		expr, source = p.pick(ctx, chatID, ev, s)
	}

	msg := domain.Message{ChatID: chatID, MessageID: ev.MessageID, Character: ev.Character, IsUser: ev.IsUser}
	res := p.presenter.Present(ctx, msg, expr, source, s)
	if res.Remove {
		return &res, nil
	}

	err := p.store.SetAssignment(ctx, domain.Assignment{
		ChatID:     chatID,
		MessageID:  ev.MessageID,
		Character:  ev.Character,
		IsUser:     ev.IsUser,
		Expression: expr,
		Source:     source,
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("save assignment: %w", err)
	}
	lgr.Printf("[DEBUG] message %s/%s shows %s (%s)", chatID, ev.MessageID, expr, source)
	return &res, nil
}

// Presentation rebuilds the overlay of a message from its stored expression using current settings
func (p *Processor) Presentation(ctx context.Context, chatID, messageID string) (*domain.Presentation, error) {
	a, err := p.store.GetAssignment(ctx, chatID, messageID)
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	msg := domain.Message{ChatID: a.ChatID, MessageID: a.MessageID, Character: a.Character, IsUser: a.IsUser}
	res := p.presenter.Present(ctx, msg, a.Expression, a.Source, p.settings.Settings())
	return &res, nil
}

// Assignments lists stored expressions of a chat
func (p *Processor) Assignments(ctx context.Context, chatID string) ([]domain.Assignment, error) {
	res, err := p.store.ListAssignments(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return res, nil
}

// ClearChat drops stored expressions of a chat
func (p *Processor) ClearChat(ctx context.Context, chatID string) (int64, error) {
	n, err := p.store.DeleteChat(ctx, chatID)
	if err != nil {
		return 0, fmt.Errorf("clear chat %s: %w", chatID, err)
	}
	lgr.Printf("[INFO] cleared %d assignments of chat %s", n, chatID)
	return n, nil
}

// CurrentChat returns the chat set by the last chat_changed event
func (p *Processor) CurrentChat() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentChat
}

// Classify explains the expression picked for plain text with live catalog and settings
func (p *Processor) Classify(text string) expression.Result {
	return expression.Explain(text, p.settings.Catalog(), p.settings.Settings().DefaultExpression)
}

// pick returns the expression for a rendered message, the other plugin's choice wins over classification
func (p *Processor) pick(ctx context.Context, chatID string, ev domain.Event, s domain.Settings) (expr, source string) {
	if p.source != nil {
		if e, ok := p.source.Expression(ctx, chatID, ev.MessageID); ok && strings.TrimSpace(e) != "" {
			return expression.NormalizeName(e), domain.SourceExternal
		}
	}
	text := ev.Text
	if ev.HTML {
		text = p.plainText(text)
	}
	res := expression.Explain(text, p.settings.Catalog(), s.DefaultExpression)
	return res.Category, string(res.Source)
}

// plainText strips markup from rendered message html
func (p *Processor) plainText(markup string) string {
	return html.UnescapeString(p.policy.Sanitize(markup))
}

func (p *Processor) switchChat(chatID string) string {
	if chatID == "" {
		chatID = uuid.NewString()
	}
	p.mu.Lock()
	p.currentChat = chatID
	p.mu.Unlock()
	return chatID
}
