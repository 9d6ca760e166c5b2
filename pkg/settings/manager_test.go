package settings

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
	"github.com/umputun/expravatar/pkg/repository"
	"github.com/umputun/expravatar/pkg/settings/mocks"
)

func newTestManager(settingStore *mocks.SettingStoreMock, catalogStore *mocks.CatalogStoreMock, debounce time.Duration) *Manager {
	return NewManager(Config{
		SettingStore: settingStore,
		CatalogStore: catalogStore,
		Defaults:     domain.DefaultSettings(),
		Debounce:     debounce,
	})
}

func okStores() (*mocks.SettingStoreMock, *mocks.CatalogStoreMock) {
	settingStore := &mocks.SettingStoreMock{
		GetSettingFunc: func(ctx context.Context, key string) (string, error) { return "", nil },
		SetSettingFunc: func(ctx context.Context, key, value string) error { return nil },
	}
	catalogStore := &mocks.CatalogStoreMock{
		LoadCatalogFunc: func(ctx context.Context) (*expression.Catalog, error) { return nil, nil },
		SaveCatalogFunc: func(ctx context.Context, catalog *expression.Catalog) error { return nil },
	}
	return settingStore, catalogStore
}

func TestNewManager(t *testing.T) {
	settingStore, catalogStore := okStores()
	m := NewManager(Config{SettingStore: settingStore, CatalogStore: catalogStore, Defaults: domain.Settings{AvatarHeight: 5}})
	assert.Equal(t, domain.MinAvatarHeight, m.Settings().AvatarHeight, "defaults normalized")
	assert.Equal(t, "neutral", m.Settings().DefaultExpression)
	assert.Equal(t, expression.DefaultCatalog(), m.Catalog())
	assert.Equal(t, time.Second, m.debounce)
	assert.False(t, m.Pending())
}

func TestManager_Load(t *testing.T) {
	t.Run("nothing stored", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 0)
		require.NoError(t, m.Load(context.Background()))
		assert.Equal(t, domain.DefaultSettings(), m.Settings())
		assert.Equal(t, expression.DefaultCatalog(), m.Catalog())
		require.Len(t, settingStore.GetSettingCalls(), 1)
		assert.Equal(t, domain.SettingPluginSettings, settingStore.GetSettingCalls()[0].Key)
	})

	t.Run("stored values", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		settingStore.GetSettingFunc = func(ctx context.Context, key string) (string, error) {
			return `{"enabled":false,"avatar_height":1000}`, nil
		}
		stored := &expression.Catalog{Categories: []expression.Category{{Name: "smug", Keywords: []string{"heh"}, Enabled: true}}}
		catalogStore.LoadCatalogFunc = func(ctx context.Context) (*expression.Catalog, error) { return stored, nil }

		m := newTestManager(settingStore, catalogStore, 0)
		require.NoError(t, m.Load(context.Background()))
		s := m.Settings()
		assert.False(t, s.Enabled)
		assert.Equal(t, domain.MaxAvatarHeight, s.AvatarHeight)
		assert.True(t, s.KeepOriginalAvatar, "missing fields keep defaults")
		assert.InDelta(t, 0.5, s.OriginalAvatarOpacity, 0.0001)
		assert.Equal(t, []string{"smug"}, m.Catalog().Names())
		assert.False(t, m.Pending())
	})

	t.Run("malformed settings", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		settingStore.GetSettingFunc = func(ctx context.Context, key string) (string, error) { return "{bad json", nil }
		m := newTestManager(settingStore, catalogStore, 0)
		require.NoError(t, m.Load(context.Background()))
		assert.Equal(t, domain.DefaultSettings(), m.Settings())
	})

	t.Run("store errors", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		settingStore.GetSettingFunc = func(ctx context.Context, key string) (string, error) { return "", errors.New("db down") }
		m := newTestManager(settingStore, catalogStore, 0)
		require.ErrorContains(t, m.Load(context.Background()), "db down")

		settingStore, catalogStore = okStores()
		catalogStore.LoadCatalogFunc = func(ctx context.Context) (*expression.Catalog, error) { return nil, errors.New("no table") }
		m = newTestManager(settingStore, catalogStore, 0)
		require.ErrorContains(t, m.Load(context.Background()), "load catalog")
	})
}

func TestManager_UpdateSettings(t *testing.T) {
	settingStore, catalogStore := okStores()
	m := newTestManager(settingStore, catalogStore, 0)

	s := domain.DefaultSettings()
	s.OriginalAvatarOpacity = -1
	s.ApplyToUser = true
	got := m.UpdateSettings(s)
	assert.InDelta(t, 0, got.OriginalAvatarOpacity, 0.0001)
	assert.Equal(t, got, m.Settings())
	assert.True(t, m.Settings().ApplyToUser)
	assert.True(t, m.Pending())
}

func TestManager_UpdateCatalog(t *testing.T) {
	t.Run("publishes a new snapshot", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 0)
		before := m.Catalog()

		updated, err := m.UpdateCatalog(func(c *expression.Catalog) error {
			return c.AddKeyword("sad", "weep")
		})
		require.NoError(t, err)
		assert.Same(t, updated, m.Catalog())
		assert.NotSame(t, before, updated)
		assert.Equal(t, expression.DefaultCatalog(), before, "old snapshot untouched")
		cat, _ := m.Catalog().Get("sad")
		assert.Contains(t, cat.Keywords, "weep")
		assert.True(t, m.Pending())
	})

	t.Run("failed update keeps catalog", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 0)
		before := m.Catalog()

		_, err := m.UpdateCatalog(func(c *expression.Catalog) error {
			_ = c.SetEnabled("happy", false)
			return c.RemoveCategory("missing")
		})
		require.ErrorIs(t, err, expression.ErrCategoryNotFound)
		assert.Same(t, before, m.Catalog())
		assert.True(t, m.Catalog().IsEnabled("happy"))
		assert.False(t, m.Pending())
	})

	t.Run("invalid result rejected", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 0)
		_, err := m.UpdateCatalog(func(c *expression.Catalog) error {
			c.Categories = append(c.Categories, expression.Category{Name: "Happy"})
			return nil
		})
		require.ErrorIs(t, err, expression.ErrDuplicateCategory)
		assert.Len(t, m.Catalog().Categories, 5)
	})
}

func TestManager_Flush(t *testing.T) {
	t.Run("saves settings and catalog", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 0)
		s := domain.DefaultSettings()
		s.AvatarHeight = 200
		m.UpdateSettings(s)

		require.NoError(t, m.Flush(context.Background()))
		require.Len(t, settingStore.SetSettingCalls(), 1)
		call := settingStore.SetSettingCalls()[0]
		assert.Equal(t, domain.SettingPluginSettings, call.Key)
		var saved domain.Settings
		require.NoError(t, json.Unmarshal([]byte(call.Value), &saved))
		assert.Equal(t, 200, saved.AvatarHeight)
		require.Len(t, catalogStore.SaveCatalogCalls(), 1)
		assert.Same(t, m.Catalog(), catalogStore.SaveCatalogCalls()[0].Catalog)
		assert.False(t, m.Pending())
	})

	t.Run("failure keeps changes pending", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		catalogStore.SaveCatalogFunc = func(ctx context.Context, catalog *expression.Catalog) error {
			return errors.New("disk full")
		}
		m := newTestManager(settingStore, catalogStore, 0)
		m.UpdateSettings(domain.DefaultSettings())
		err := m.Flush(context.Background())
		require.ErrorContains(t, err, "save catalog")
		assert.True(t, m.Pending())
	})

	t.Run("store error returned without extra attempts", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		settingStore.SetSettingFunc = func(ctx context.Context, key, value string) error {
			return errors.New("no such table: settings")
		}
		m := newTestManager(settingStore, catalogStore, 0)
		m.UpdateSettings(domain.DefaultSettings())
		require.ErrorContains(t, m.Flush(context.Background()), "save settings")
		assert.Len(t, settingStore.SetSettingCalls(), 1)
		assert.Empty(t, catalogStore.SaveCatalogCalls())
		assert.True(t, m.Pending())
	})
}

func TestManager_SaveWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("debounces bursts", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, 50*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			m.SaveWorker(ctx)
			close(done)
		}()

		for i := 0; i < 5; i++ {
			s := domain.DefaultSettings()
			s.AvatarHeight = 100 + i
			m.UpdateSettings(s)
			time.Sleep(5 * time.Millisecond)
		}

		require.Eventually(t, func() bool { return len(catalogStore.SaveCatalogCalls()) == 1 }, time.Second, 10*time.Millisecond)
		time.Sleep(100 * time.Millisecond)
		assert.Len(t, settingStore.SetSettingCalls(), 1, "burst saved once")
		assert.Contains(t, settingStore.SetSettingCalls()[0].Value, `"avatar_height":104`)
		assert.False(t, m.Pending())

		cancel()
		<-done
		assert.Len(t, settingStore.SetSettingCalls(), 1, "nothing pending on shutdown")
	})

	t.Run("flushes on shutdown", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		m := newTestManager(settingStore, catalogStore, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			m.SaveWorker(ctx)
			close(done)
		}()

		_, err := m.UpdateCatalog(func(c *expression.Catalog) error { return c.Move("neutral", 0) })
		require.NoError(t, err)
		cancel()
		<-done

		require.Len(t, catalogStore.SaveCatalogCalls(), 1)
		assert.Equal(t, "neutral", catalogStore.SaveCatalogCalls()[0].Catalog.Names()[0])
		assert.False(t, m.Pending())
	})

	t.Run("failed save tried again without new edits", func(t *testing.T) {
		settingStore, catalogStore := okStores()
		var failures atomic.Int32
		catalogStore.SaveCatalogFunc = func(ctx context.Context, catalog *expression.Catalog) error {
			if failures.Load() < 2 {
				failures.Add(1)
				return errors.New("disk i/o error")
			}
			return nil
		}
		m := newTestManager(settingStore, catalogStore, 20*time.Millisecond)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			m.SaveWorker(ctx)
			close(done)
		}()

		m.UpdateSettings(domain.DefaultSettings())
		require.Eventually(t, func() bool { return !m.Pending() }, time.Second, 10*time.Millisecond)
		assert.Len(t, catalogStore.SaveCatalogCalls(), 3, "two failures then success")

		time.Sleep(60 * time.Millisecond)
		assert.Len(t, catalogStore.SaveCatalogCalls(), 3, "no saves once persisted")

		cancel()
		<-done
	})
}

func TestManager_EmptyCatalogSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "settings.db")
	open := func() *repository.Repositories {
		repos, err := repository.NewRepositories(ctx, repository.Config{DSN: dsn, MaxOpenConns: 1})
		require.NoError(t, err)
		return repos
	}

	repos := open()
	m := NewManager(Config{SettingStore: repos.Setting, CatalogStore: repos.Catalog, Defaults: domain.DefaultSettings()})
	require.NoError(t, m.Load(ctx))
	assert.Len(t, m.Catalog().Categories, 5, "defaults before anything saved")

	_, err := m.UpdateCatalog(func(c *expression.Catalog) error {
		for _, name := range c.Names() {
			if err := c.RemoveCategory(name); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, m.Flush(ctx))
	require.NoError(t, repos.Close())

	repos = open()
	defer repos.Close()
	restarted := NewManager(Config{SettingStore: repos.Setting, CatalogStore: repos.Catalog, Defaults: domain.DefaultSettings()})
	require.NoError(t, restarted.Load(ctx))
	assert.Empty(t, restarted.Catalog().Names())
	assert.Equal(t, "neutral", expression.Classify("so happy", restarted.Catalog(), restarted.Settings().DefaultExpression))
}
