package avatar

import (
	"net/url"
	"strings"
)

// Resolver maps an expression to an image path using a template with
// {character}, {expression} and {ext} placeholders
type Resolver struct {
	Template string
	Ext      string
}

// Path returns the image path for a character's expression
func (r Resolver) Path(character, expression string) string {
	ext := strings.TrimPrefix(r.Ext, ".")
	if ext == "" {
		ext = "png"
	}
	rep := strings.NewReplacer(
		"{character}", url.PathEscape(character),
		"{expression}", url.PathEscape(expression),
		"{ext}", ext,
	)
	return rep.Replace(r.Template)
}
