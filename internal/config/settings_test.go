package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsYAML = `
logLevel: debug
logFile: /tmp/gamecollector.log
ginMode: debug
seedFile: seed.yml
`

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	return dir
}

func TestLoadSettingsFromYAMLFile(t *testing.T) {
	dir := writeSettings(t, "config.yml", settingsYAML)

	s, err := LoadSettings(context.Background(), Source{Kind: SourceYAMLFile, Dir: dir, File: "config.yml"})

	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: "debug", LogFile: "/tmp/gamecollector.log", GinMode: "debug", SeedFile: "seed.yml"}, *s)
}

func TestLoadSettingsDefaults(t *testing.T) {
	dir := writeSettings(t, "config.yml", "other: 1\n")

	s, err := LoadSettings(context.Background(), Source{Kind: SourceYAMLFile, Dir: dir, File: "config.yml"})

	require.NoError(t, err)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "release", s.GinMode)
	assert.Empty(t, s.LogFile)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(context.Background(), Source{Kind: SourceYAMLFile, Dir: t.TempDir(), File: "absent.yml"})

	assert.Error(t, err)
}

func TestLoadSettingsFromGit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repo/raw/config.yml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(settingsYAML))
	}))
	defer srv.Close()

	s, err := LoadSettings(context.Background(), Source{Kind: SourceGit, GitURI: srv.URL + "/repo/raw/", File: "config.yml"})

	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadSettingsFromGitJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"logLevel":"warn"}`))
	}))
	defer srv.Close()

	s, err := LoadSettings(context.Background(), Source{Kind: SourceGit, GitURI: srv.URL, File: "config.json"})

	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
}

func TestLoadSettingsFromGitBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := LoadSettings(context.Background(), Source{Kind: SourceGit, GitURI: srv.URL, File: "config.yml"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestLoadSettingsInvalidSource(t *testing.T) {
	_, err := LoadSettings(context.Background(), Source{Kind: "CONSUL"})

	assert.ErrorIs(t, err, ErrSourceNotValid)
}

func TestConfigType(t *testing.T) {
	assert.Equal(t, "yaml", configType("config.yml"))
	assert.Equal(t, "yaml", configType("config"))
	assert.Equal(t, "json", configType("CONFIG.JSON"))
	assert.Equal(t, "toml", configType("a.toml"))
}

func TestRepositoryUpdate(t *testing.T) {
	dir := writeSettings(t, "config.yml", settingsYAML)
	repo := NewRepository(&Loader{Client: http.DefaultClient})
	assert.Equal(t, Settings{}, repo.Get())

	s, err := repo.Update(context.Background(), Source{Kind: SourceYAMLFile, Dir: dir, File: "config.yml"})

	require.NoError(t, err)
	assert.Equal(t, s, repo.Get())

	_, err = repo.Update(context.Background(), Source{Kind: "nope"})
	require.Error(t, err)
	assert.Equal(t, s, repo.Get())
}
