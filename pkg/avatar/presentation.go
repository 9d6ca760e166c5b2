// Package avatar turns a classified message into a declarative avatar overlay for the host to apply.
package avatar

import (
	"context"
	"log"

	"github.com/umputun/expravatar/pkg/domain"
)

// Prober checks whether an expression image is available
type Prober interface {
	Exists(ctx context.Context, path string) bool
}

// Builder resolves expression images and builds presentations
type Builder struct {
	resolver Resolver
	prober   Prober
}

// NewBuilder makes a builder. A nil prober assumes every image exists.
func NewBuilder(resolver Resolver, prober Prober) *Builder {
	return &Builder{resolver: resolver, prober: prober}
}

// Present builds the overlay for msg showing the given expression
func (b *Builder) Present(ctx context.Context, msg domain.Message, expression, source string, s domain.Settings) domain.Presentation {
	path := b.resolver.Path(msg.Character, expression)
	exists := true
	if b.prober != nil {
		exists = b.prober.Exists(ctx, path)
	}
	if !exists {
		log.Printf("[WARN] expression image unavailable: %s", path)
	}
	return Build(msg, expression, source, s, path, exists)
}

// Build makes the overlay description for msg. If the image does not exist the overlay is removed
// and the original avatar gets its full opacity back.
func Build(msg domain.Message, expression, source string, s domain.Settings, imageURL string, exists bool) domain.Presentation {
	s = s.Normalize()
	res := domain.Presentation{
		ChatID:     msg.ChatID,
		MessageID:  msg.MessageID,
		Expression: expression,
		Source:     source,
		Responsive: s.MobileSupport,
	}

	if !exists {
		res.Remove = true
		res.OriginalOpacity = 1
		return res
	}

	res.ImageURL = imageURL
	res.Alt = expression
	res.MaxHeight = s.AvatarHeight
	res.OriginalOpacity = 0
	if s.KeepOriginalAvatar {
		res.OriginalOpacity = s.OriginalAvatarOpacity
	}
	return res
}
