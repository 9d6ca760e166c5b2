package avatar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/expravatar/pkg/domain"
)

type proberFunc func(ctx context.Context, path string) bool

func (f proberFunc) Exists(ctx context.Context, path string) bool { return f(ctx, path) }

func TestBuild(t *testing.T) {
	msg := domain.Message{ChatID: "chat", MessageID: "7", Character: "Seraphina"}

	t.Run("keep original avatar", func(t *testing.T) {
		s := domain.DefaultSettings()
		p := Build(msg, "happy", "keyword", s, "assets/happy.png", true)
		assert.Equal(t, domain.Presentation{
			ChatID: "chat", MessageID: "7", Expression: "happy", Source: "keyword",
			ImageURL: "assets/happy.png", Alt: "happy", MaxHeight: 160,
			OriginalOpacity: 0.5, Responsive: true,
		}, p)
	})

	t.Run("hide original avatar", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.KeepOriginalAvatar = false
		s.MobileSupport = false
		s.AvatarHeight = 240
		p := Build(msg, "sad", "tag", s, "assets/sad.png", true)
		assert.InDelta(t, 0, p.OriginalOpacity, 0.0001)
		assert.Equal(t, 240, p.MaxHeight)
		assert.False(t, p.Responsive)
		assert.False(t, p.Remove)
	})

	t.Run("missing image removes overlay", func(t *testing.T) {
		p := Build(msg, "smug", "tag", domain.DefaultSettings(), "assets/smug.png", false)
		assert.True(t, p.Remove)
		assert.InDelta(t, 1, p.OriginalOpacity, 0.0001)
		assert.Empty(t, p.ImageURL)
		assert.Zero(t, p.MaxHeight)
		assert.Equal(t, "smug", p.Expression)
	})

	t.Run("settings normalized", func(t *testing.T) {
		s := domain.Settings{KeepOriginalAvatar: true, OriginalAvatarOpacity: 3, AvatarHeight: 9999}
		p := Build(msg, "happy", "keyword", s, "x.png", true)
		assert.InDelta(t, 1, p.OriginalOpacity, 0.0001)
		assert.Equal(t, domain.MaxAvatarHeight, p.MaxHeight)
	})
}

func TestBuilder_Present(t *testing.T) {
	msg := domain.Message{ChatID: "chat", MessageID: "1", Character: "Sera"}
	resolver := Resolver{Template: "characters/{character}/{expression}.{ext}", Ext: "png"}

	t.Run("image exists", func(t *testing.T) {
		var probed string
		b := NewBuilder(resolver, proberFunc(func(_ context.Context, path string) bool {
			probed = path
			return true
		}))
		p := b.Present(context.Background(), msg, "happy", "tag", domain.DefaultSettings())
		assert.Equal(t, "characters/Sera/happy.png", probed)
		assert.Equal(t, "characters/Sera/happy.png", p.ImageURL)
		assert.False(t, p.Remove)
	})

	t.Run("image missing", func(t *testing.T) {
		b := NewBuilder(resolver, proberFunc(func(context.Context, string) bool { return false }))
		p := b.Present(context.Background(), msg, "happy", "tag", domain.DefaultSettings())
		assert.True(t, p.Remove)
	})

	t.Run("no prober", func(t *testing.T) {
		b := NewBuilder(resolver, nil)
		p := b.Present(context.Background(), msg, "sad", "keyword", domain.DefaultSettings())
		assert.Equal(t, "characters/Sera/sad.png", p.ImageURL)
		assert.False(t, p.Remove)
	})
}
