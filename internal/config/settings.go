package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Settings sources.
const (
	SourceYAMLFile = "YAML_FILE"
	SourceGit      = "GIT"
)

// ErrSourceNotValid is returned for an unknown settings source.
var ErrSourceNotValid = errors.New("config source not valid")

// Settings holds the application settings loaded at startup.
type Settings struct {
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`
	GinMode  string `mapstructure:"ginMode"`
	SeedFile string `mapstructure:"seedFile"`
}

// Source locates the settings document.
type Source struct {
	Kind    string
	File    string
	Dir     string
	GitURI  string
	Timeout time.Duration
}

// HTTPClient is the subset of *http.Client used to fetch remote settings.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader reads Settings from a Source.
type Loader struct {
	Client HTTPClient
}

// LoadSettings reads the settings described by src with http.DefaultClient.
func LoadSettings(ctx context.Context, src Source) (*Settings, error) {
	return (&Loader{Client: http.DefaultClient}).Load(ctx, src)
}

// Load reads the settings described by src.
func (l *Loader) Load(ctx context.Context, src Source) (*Settings, error) {
	v := viper.New()
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("ginMode", "release")
	v.SetDefault("seedFile", "")
	v.SetConfigType(configType(src.File))

	switch src.Kind {
	case SourceYAMLFile:
		v.SetConfigFile(filepath.Join(src.Dir, src.File))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file: %w", err)
		}
	case SourceGit:
		body, err := l.fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		if err := v.ReadConfig(bytes.NewReader(body)); err != nil {
			return nil, fmt.Errorf("parse remote settings: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrSourceNotValid, src.Kind)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return &s, nil
}

func (l *Loader) fetch(ctx context.Context, src Source) ([]byte, error) {
	if src.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, src.Timeout)
		defer cancel()
	}

	uri := strings.TrimSuffix(src.GitURI, "/") + "/" + src.File
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build settings request: %w", err)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch settings: unexpected status %d from %s", resp.StatusCode, uri)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read settings response: %w", err)
	}
	return body, nil
}

// configType derives the viper config type from a file name, defaulting to yaml.
func configType(file string) string {
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), "."); ext {
	case "json", "toml", "env", "properties":
		return ext
	default:
		return "yaml"
	}
}

// Repository holds the current settings. It is safe for concurrent use.
type Repository struct {
	mu       sync.RWMutex
	settings Settings
	loader   *Loader
}

// NewRepository constructs a Repository that reloads through loader.
func NewRepository(loader *Loader) *Repository {
	return &Repository{loader: loader}
}

// Get returns a copy of the current settings.
func (r *Repository) Get() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Set replaces the current settings.
func (r *Repository) Set(s Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
}

// Update loads settings from src and stores them.
func (r *Repository) Update(ctx context.Context, src Source) (Settings, error) {
	s, err := r.loader.Load(ctx, src)
	if err != nil {
		return Settings{}, err
	}
	r.Set(*s)
	return *s, nil
}
