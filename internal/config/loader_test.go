package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkbird/internal/store"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, time.Second, cfg.LoadDelay)
	assert.Equal(t, store.PageLeads, cfg.StartPage)
	assert.Equal(t, 100, cfg.Data.Leads)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load must not create the file")
}

func TestLoadWithCreate_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	l := NewLoader(path)
	_, err := l.LoadWithCreate(true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 20")
	assert.Contains(t, string(data), "start_page: Leads")
	assert.Contains(t, string(data), "load_delay: 1s")

	again, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, Default().PageSize, again.PageSize)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "page_size: 5\nload_delay: 250ms\nstart_page: Campaigns\ndata:\n  seed: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.LoadDelay)
	assert.Equal(t, store.PageCampaigns, cfg.StartPage)
	assert.Equal(t, uint64(9), cfg.Data.Seed)
	assert.Equal(t, 50, cfg.Data.Campaigns)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 0\n"), 0o644))
	_, err := NewLoader(path).Load()
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
	_, err = NewLoader(path).Load()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_RejectsUnknownPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_page: Reports\n"), 0o644))
	_, err := NewLoader(path).Load()
	assert.ErrorContains(t, err, "unknown page")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: [\n"), 0o644))
	_, err := NewLoader(path).Load()
	assert.Error(t, err)
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv(PathEnv, "/tmp/linkbird-test.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/linkbird-test.yaml", p)
}
