package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/expravatar/pkg/domain"
)

// ExpressionRepository keeps the expression applied to each chat message
type ExpressionRepository struct {
	db *sqlx.DB
}

// assignmentSQL represents an assignment row for SQL operations
type assignmentSQL struct {
	ChatID     string    `db:"chat_id"`
	MessageID  string    `db:"message_id"`
	Character  string    `db:"char_name"`
	IsUser     bool      `db:"is_user"`
	Expression string    `db:"expression"`
	Source     string    `db:"source"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// NewExpressionRepository creates a new expression repository
func NewExpressionRepository(db *sqlx.DB) *ExpressionRepository {
	return &ExpressionRepository{db: db}
}

// SetAssignment stores or replaces the expression of a message
func (r *ExpressionRepository) SetAssignment(ctx context.Context, a domain.Assignment) error {
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = time.Now().UTC()
	}

	return lockRetrier().Do(ctx, func() error {
		query := `
			INSERT INTO assignments (chat_id, message_id, char_name, is_user, expression, source, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(chat_id, message_id) DO UPDATE SET
				char_name = excluded.char_name,
				is_user = excluded.is_user,
				expression = excluded.expression,
				source = excluded.source,
				updated_at = excluded.updated_at
		`
		_, err := r.db.ExecContext(ctx, query, a.ChatID, a.MessageID, a.Character, a.IsUser, a.Expression, a.Source, a.UpdatedAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set assignment: %w", err)}
		}
		return nil
	}, errCritical)
}

// GetAssignment returns the expression of a message, domain.ErrNotFound if none stored
func (r *ExpressionRepository) GetAssignment(ctx context.Context, chatID, messageID string) (*domain.Assignment, error) {
	query := `
		SELECT chat_id, message_id, char_name, is_user, expression, source, updated_at
		FROM assignments
		WHERE chat_id = ? AND message_id = ?
	`
	var row assignmentSQL
	if err := r.db.GetContext(ctx, &row, query, chatID, messageID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("assignment %s/%s: %w", chatID, messageID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	res := r.toDomainAssignment(&row)
	return &res, nil
}

// ListAssignments returns all assignments of a chat, oldest first
func (r *ExpressionRepository) ListAssignments(ctx context.Context, chatID string) ([]domain.Assignment, error) {
	query := `
		SELECT chat_id, message_id, char_name, is_user, expression, source, updated_at
		FROM assignments
		WHERE chat_id = ?
		ORDER BY updated_at ASC, message_id ASC
	`
	var rows []assignmentSQL
	if err := r.db.SelectContext(ctx, &rows, query, chatID); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	res := make([]domain.Assignment, len(rows))
	for i := range rows {
		res[i] = r.toDomainAssignment(&rows[i])
	}
	return res, nil
}

// DeleteChat removes all assignments of a chat and returns how many were removed
func (r *ExpressionRepository) DeleteChat(ctx context.Context, chatID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM assignments WHERE chat_id = ?", chatID)
	if err != nil {
		return 0, fmt.Errorf("delete chat assignments: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted assignments: %w", err)
	}
	return count, nil
}

// toDomainAssignment converts assignmentSQL to domain.Assignment
func (r *ExpressionRepository) toDomainAssignment(row *assignmentSQL) domain.Assignment {
	return domain.Assignment{
		ChatID:     row.ChatID,
		MessageID:  row.MessageID,
		Character:  row.Character,
		IsUser:     row.IsUser,
		Expression: row.Expression,
		Source:     row.Source,
		UpdatedAt:  row.UpdatedAt,
	}
}
