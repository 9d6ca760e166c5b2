package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)
	require.NoError(t, repos.Ping(context.Background()))
	assert.NotNil(t, repos.Setting)
	assert.NotNil(t, repos.Catalog)
	assert.NotNil(t, repos.Expression)
}

func TestSettingRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		val, err := repos.Setting.GetSetting(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, val)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingPluginSettings, `{"enabled":true}`))
		val, err := repos.Setting.GetSetting(ctx, domain.SettingPluginSettings)
		require.NoError(t, err)
		assert.Equal(t, `{"enabled":true}`, val)

		require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingPluginSettings, `{"enabled":false}`))
		val, err = repos.Setting.GetSetting(ctx, domain.SettingPluginSettings)
		require.NoError(t, err)
		assert.Equal(t, `{"enabled":false}`, val)

		var count int
		require.NoError(t, repos.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM settings"))
		assert.Equal(t, 1, count)
	})
}

func TestCatalogRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("never saved", func(t *testing.T) {
		catalog, err := repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Nil(t, catalog)
	})

	t.Run("save and load keeps order", func(t *testing.T) {
		catalog := expression.DefaultCatalog()
		require.NoError(t, catalog.Move("neutral", 0))
		require.NoError(t, catalog.SetEnabled("angry", false))
		require.NoError(t, repos.Catalog.SaveCatalog(ctx, catalog))

		loaded, err := repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, []string{"neutral", "happy", "sad", "angry", "surprised"}, loaded.Names())
		assert.False(t, loaded.IsEnabled("angry"))
		happy, ok := loaded.Get("happy")
		require.True(t, ok)
		assert.Equal(t, []string{"happy", "glad", "smile", "laugh", "joy", "grin"}, happy.Keywords)
		neutral, ok := loaded.Get("neutral")
		require.True(t, ok)
		assert.Empty(t, neutral.Keywords)
	})

	t.Run("save replaces previous", func(t *testing.T) {
		catalog := &expression.Catalog{Categories: []expression.Category{
			{Name: "Smug", Keywords: []string{"smirk"}, Enabled: true},
		}}
		require.NoError(t, repos.Catalog.SaveCatalog(ctx, catalog))

		loaded, err := repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, []string{"smug"}, loaded.Names())
	})

	t.Run("invalid catalog rejected", func(t *testing.T) {
		catalog := &expression.Catalog{Categories: []expression.Category{{Name: "a"}, {Name: "A"}}}
		err := repos.Catalog.SaveCatalog(ctx, catalog)
		require.Error(t, err)
		assert.ErrorIs(t, err, expression.ErrDuplicateCategory)

		loaded, err := repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"smug"}, loaded.Names(), "previous catalog kept")
	})

	t.Run("empty catalog round trip", func(t *testing.T) {
		require.NoError(t, repos.Catalog.SaveCatalog(ctx, &expression.Catalog{}))

		loaded, err := repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded, "saved empty catalog is not the same as none saved")
		assert.Empty(t, loaded.Categories)

		require.NoError(t, repos.Catalog.SaveCatalog(ctx, expression.DefaultCatalog()))
		loaded, err = repos.Catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded.Categories, 5)
	})
}

func TestLockRetrier(t *testing.T) {
	t.Run("critical error stops retries", func(t *testing.T) {
		calls := 0
		err := lockRetrier().Do(context.Background(), func() error {
			calls++
			return &criticalError{err: errors.New("no such table: categories")}
		}, errCritical)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "no such table: categories", err.Error())
	})

	t.Run("lock error retried", func(t *testing.T) {
		calls := 0
		err := lockRetrier().Do(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		}, errCritical)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("critical error matching", func(t *testing.T) {
		inner := errors.New("constraint failed")
		err := fmt.Errorf("save: %w", &criticalError{err: inner})
		assert.ErrorIs(t, err, errCritical)
		assert.ErrorIs(t, err, inner)
		assert.NotErrorIs(t, inner, errCritical)
		assert.Equal(t, "critical error", (&criticalError{}).Error())
	})
}

func TestExpressionRepository(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		_, err := repos.Expression.GetAssignment(ctx, "chat", "1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set get update", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		err := repos.Expression.SetAssignment(ctx, domain.Assignment{ChatID: "chat", MessageID: "1",
			Character: "Seraphina", Expression: "happy", Source: "keyword", UpdatedAt: ts})
		require.NoError(t, err)

		a, err := repos.Expression.GetAssignment(ctx, "chat", "1")
		require.NoError(t, err)
		assert.Equal(t, "happy", a.Expression)
		assert.Equal(t, "keyword", a.Source)
		assert.Equal(t, "Seraphina", a.Character)
		assert.False(t, a.IsUser)
		assert.True(t, ts.Equal(a.UpdatedAt), "got %v", a.UpdatedAt)

		err = repos.Expression.SetAssignment(ctx, domain.Assignment{ChatID: "chat", MessageID: "1",
			Character: "Seraphina", Expression: "sad", Source: "tag", UpdatedAt: ts.Add(time.Minute)})
		require.NoError(t, err)

		a, err = repos.Expression.GetAssignment(ctx, "chat", "1")
		require.NoError(t, err)
		assert.Equal(t, "sad", a.Expression)
		assert.Equal(t, "tag", a.Source)
	})

	t.Run("list and delete chat", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
		require.NoError(t, repos.Expression.SetAssignment(ctx, domain.Assignment{ChatID: "other", MessageID: "2",
			Expression: "angry", Source: "default", UpdatedAt: ts.Add(time.Second)}))
		require.NoError(t, repos.Expression.SetAssignment(ctx, domain.Assignment{ChatID: "other", MessageID: "1",
			Expression: "happy", Source: "default", IsUser: true, UpdatedAt: ts}))

		list, err := repos.Expression.ListAssignments(ctx, "other")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "1", list[0].MessageID)
		assert.True(t, list[0].IsUser)
		assert.Equal(t, "2", list[1].MessageID)

		deleted, err := repos.Expression.DeleteChat(ctx, "other")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		list, err = repos.Expression.ListAssignments(ctx, "other")
		require.NoError(t, err)
		assert.Empty(t, list)

		// other chats untouched
		_, err = repos.Expression.GetAssignment(ctx, "chat", "1")
		require.NoError(t, err)
	})

	t.Run("zero time filled", func(t *testing.T) {
		require.NoError(t, repos.Expression.SetAssignment(ctx, domain.Assignment{ChatID: "c", MessageID: "9", Expression: "sad"}))
		a, err := repos.Expression.GetAssignment(ctx, "c", "9")
		require.NoError(t, err)
		assert.False(t, a.UpdatedAt.IsZero())
	})
}

func TestKeywordsSQL(t *testing.T) {
	var k keywordsSQL
	require.NoError(t, k.Scan(`["a","b"]`))
	assert.Equal(t, keywordsSQL{"a", "b"}, k)

	require.NoError(t, k.Scan([]byte(`[]`)))
	assert.Empty(t, k)

	require.NoError(t, k.Scan(nil))
	assert.Equal(t, keywordsSQL{}, k)

	require.NoError(t, k.Scan(42))
	assert.Equal(t, keywordsSQL{}, k)

	assert.Error(t, k.Scan("not json"))

	v, err := keywordsSQL(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = keywordsSQL{"x"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, v)
}
