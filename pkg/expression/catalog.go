// Package expression picks an avatar expression for a chat message, either from an explicit
// {tag} embedded in the text or from user-editable keyword lists grouped into categories.
package expression

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCategory is the fallback expression when neither a tag nor a keyword matches
const DefaultCategory = "neutral"

var (
	// ErrCategoryNotFound returned when an operation names a category missing from the catalog
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory returned when a category name is already taken
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrInvalidOrder returned when a reorder request is not a permutation of the catalog names
	ErrInvalidOrder = errors.New("invalid category order")
)

// Category is a named expression with the keywords triggering it
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Enabled  bool     `json:"enabled" yaml:"enabled"`
}

// Catalog is an ordered set of categories, the order defines keyword match precedence
type Catalog struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// DefaultCatalog returns the five built-in categories with starter keywords
func DefaultCatalog() *Catalog {
	return &Catalog{Categories: []Category{
		{Name: "happy", Enabled: true, Keywords: []string{"happy", "glad", "smile", "laugh", "joy", "grin"}},
		{Name: "sad", Enabled: true, Keywords: []string{"sad", "cry", "tears", "sorrow", "sigh"}},
		{Name: "angry", Enabled: true, Keywords: []string{"angry", "mad", "furious", "rage", "glare"}},
		{Name: "surprised", Enabled: true, Keywords: []string{"surprised", "shocked", "gasp", "wow", "amazed"}},
		{Name: DefaultCategory, Enabled: true, Keywords: []string{}},
	}}
}

// NormalizeName lower-cases and trims a category name
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Names returns category names in catalog order
func (c *Catalog) Names() []string {
	if c == nil {
		return []string{}
	}
	res := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		res = append(res, cat.Name)
	}
	return res
}

// Get returns a category by name, case-insensitive
func (c *Catalog) Get(name string) (Category, bool) {
	idx := c.index(name)
	if idx < 0 {
		return Category{}, false
	}
	return c.Categories[idx], true
}

// IsEnabled reports whether the named category exists and is enabled
func (c *Catalog) IsEnabled(name string) bool {
	cat, ok := c.Get(name)
	return ok && cat.Enabled
}

// Clone returns a deep copy, used for copy-on-write edits
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return &Catalog{}
	}
	res := &Catalog{Categories: make([]Category, len(c.Categories))}
	for i, cat := range c.Categories {
		res.Categories[i] = Category{Name: cat.Name, Enabled: cat.Enabled, Keywords: append([]string{}, cat.Keywords...)}
	}
	return res
}

// Validate checks names are non-empty and unique
func (c *Catalog) Validate() error {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		name := NormalizeName(cat.Name)
		if name == "" {
			return fmt.Errorf("category #%d has empty name", i)
		}
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
		}
		seen[name] = true
	}
	return nil
}

// AddCategory appends a category at the end of the catalog
func (c *Catalog) AddCategory(cat Category) error {
	name := NormalizeName(cat.Name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if c.index(name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}
	c.Categories = append(c.Categories, Category{Name: name, Enabled: cat.Enabled, Keywords: cleanKeywords(cat.Keywords)})
	return nil
}

// RemoveCategory deletes a category from the catalog
func (c *Catalog) RemoveCategory(name string) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	c.Categories = append(c.Categories[:idx], c.Categories[idx+1:]...)
	return nil
}

// SetEnabled toggles whether a category takes part in classification
func (c *Catalog) SetEnabled(name string, enabled bool) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	c.Categories[idx].Enabled = enabled
	return nil
}

// SetKeywords replaces the keyword list of a category
func (c *Catalog) SetKeywords(name string, keywords []string) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	c.Categories[idx].Keywords = cleanKeywords(keywords)
	return nil
}

// AddKeyword appends a keyword to a category, existing keywords are kept as is
func (c *Catalog) AddKeyword(name, keyword string) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return fmt.Errorf("keyword is empty")
	}
	for _, existing := range c.Categories[idx].Keywords {
		if strings.EqualFold(existing, kw) {
			return nil
		}
	}
	c.Categories[idx].Keywords = append(c.Categories[idx].Keywords, kw)
	return nil
}

// RemoveKeyword drops a keyword from a category, case-insensitive
func (c *Catalog) RemoveKeyword(name, keyword string) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	kw := strings.TrimSpace(keyword)
	kept := make([]string, 0, len(c.Categories[idx].Keywords))
	for _, existing := range c.Categories[idx].Keywords {
		if !strings.EqualFold(existing, kw) {
			kept = append(kept, existing)
		}
	}
	c.Categories[idx].Keywords = kept
	return nil
}

// Move places a category at the given position, shifting the rest
func (c *Catalog) Move(name string, pos int) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	if pos < 0 || pos >= len(c.Categories) {
		return fmt.Errorf("%w: position %d out of range", ErrInvalidOrder, pos)
	}
	cat := c.Categories[idx]
	rest := append(append([]Category{}, c.Categories[:idx]...), c.Categories[idx+1:]...)
	res := make([]Category, 0, len(c.Categories))
	res = append(res, rest[:pos]...)
	res = append(res, cat)
	res = append(res, rest[pos:]...)
	c.Categories = res
	return nil
}

// Reorder rearranges the catalog to follow names, which must list every category exactly once
func (c *Catalog) Reorder(names []string) error {
	if len(names) != len(c.Categories) {
		return fmt.Errorf("%w: expected %d names, got %d", ErrInvalidOrder, len(c.Categories), len(names))
	}
	res := make([]Category, 0, len(names))
	used := make(map[int]bool, len(names))
	for _, name := range names {
		idx := c.index(name)
		if idx < 0 {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidOrder, name)
		}
		if used[idx] {
			return fmt.Errorf("%w: category %q listed twice", ErrInvalidOrder, name)
		}
		used[idx] = true
		res = append(res, c.Categories[idx])
	}
	c.Categories = res
	return nil
}

func (c *Catalog) index(name string) int {
	if c == nil {
		return -1
	}
	name = NormalizeName(name)
	for i, cat := range c.Categories {
		if NormalizeName(cat.Name) == name {
			return i
		}
	}
	return -1
}

// cleanKeywords trims entries and drops empty and duplicate ones, keeping order
func cleanKeywords(keywords []string) []string {
	res := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[strings.ToLower(kw)] {
			continue
		}
		seen[strings.ToLower(kw)] = true
		res = append(res, kw)
	}
	return res
}
