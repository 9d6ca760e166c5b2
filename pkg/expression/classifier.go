package expression

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Source tells which rule produced a classification
type Source string

// classification sources
const (
	SourceTag     Source = "tag"
	SourceKeyword Source = "keyword"
	SourceDefault Source = "default"
)

// tagRe matches a single-level {tag} span, nested braces are not allowed inside
var tagRe = regexp.MustCompile(`\{([^{}]*)\}`)

// Result is a classification with the rule that produced it
type Result struct {
	Category string `json:"category"`
	Source   Source `json:"source"`
	Tag      string `json:"tag,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

// ExtractTag returns the content of the last {tag} span in text, lower-cased and trimmed.
// ok is false if text has no such span.
func ExtractTag(text string) (tag string, ok bool) {
	matches := tagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.ToLower(matches[len(matches)-1][1])), true
}

// ClassifyByKeyword returns the first enabled category, in catalog order, with a keyword
// found in text as a case-insensitive substring.
func ClassifyByKeyword(text string, catalog *Catalog) (name string, ok bool) {
	name, _, ok = matchKeyword(text, catalog)
	return name, ok
}

// Classify picks the expression for text: an enabled {tag} wins, then keywords, then defaultCategory.
// An empty defaultCategory is replaced with DefaultCategory.
func Classify(text string, catalog *Catalog, defaultCategory string) string {
	return Explain(text, catalog, defaultCategory).Category
}

// Explain is Classify reporting which rule matched
func Explain(text string, catalog *Catalog, defaultCategory string) Result {
	if tag, ok := ExtractTag(text); ok && tag != "" {
		if cat, found := catalog.Get(tag); found && cat.Enabled {
			return Result{Category: cat.Name, Source: SourceTag, Tag: tag}
		}
	}

	if name, kw, ok := matchKeyword(text, catalog); ok {
		return Result{Category: name, Source: SourceKeyword, Keyword: kw}
	}

	if defaultCategory = NormalizeName(defaultCategory); defaultCategory == "" {
		defaultCategory = DefaultCategory
	}
	return Result{Category: defaultCategory, Source: SourceDefault}
}

func matchKeyword(text string, catalog *Catalog) (name, keyword string, ok bool) {
	if text == "" || catalog == nil {
		return "", "", false
	}
	folder := cases.Fold() // not safe for concurrent use, one per call
	folded := folder.String(text)
	for _, cat := range catalog.Categories {
		if !cat.Enabled {
			continue
		}
		for _, kw := range cat.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue // empty substring matches everything
			}
			if strings.Contains(folded, folder.String(kw)) {
				return cat.Name, kw, true
			}
		}
	}
	return "", "", false
}
