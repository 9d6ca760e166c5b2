package host

import (
	"context"
	"errors"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/expravatar/pkg/domain"
)

// StoredExpressions returns expressions previously set by expression_updated events,
// so re-rendering a message keeps the externally chosen expression
type StoredExpressions struct {
	Store AssignmentStore
}

// Expression implements ExpressionSource
func (s StoredExpressions) Expression(ctx context.Context, chatID, messageID string) (string, bool) {
	a, err := s.Store.GetAssignment(ctx, chatID, messageID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			lgr.Printf("[WARN] can't get stored expression for %s/%s: %v", chatID, messageID, err)
		}
		return "", false
	}
	if a.Source != domain.SourceExternal {
		return "", false
	}
	return a.Expression, true
}
