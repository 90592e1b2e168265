package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix namespaces environment overrides, e.g. PROMPTCAT_SELECTED_TONE.
const EnvPrefix = "PROMPTCAT"

// EnvPath names the variable that overrides the preferences file location.
const EnvPath = "PROMPTCAT_PREFS"

// Store loads and saves preferences.
type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, prefs Preferences) error
}

// DefaultPath returns $PROMPTCAT_PREFS, else
// $XDG_CONFIG_HOME/promptcat/prefs.yaml, else ~/.config/promptcat/prefs.yaml.
func DefaultPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(EnvPath)); path != "" {
		return path, nil
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("prefs: resolve home: %w", err)
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "promptcat", "prefs.yaml"), nil
}

// FileStore persists preferences in a YAML key/value file through viper.
// Environment variables with EnvPrefix override file values on Load.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) FileStoreOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore returns a store for path. A path without an extension gets
// ".yaml" appended.
func NewFileStore(path string, options ...FileStoreOption) *FileStore {
	if filepath.Ext(path) == "" {
		path += ".yaml"
	}
	s := &FileStore{path: path, logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file, falling back to defaults for missing keys or a
// missing file.
func (s *FileStore) Load(ctx context.Context) (Preferences, error) {
	if err := ctx.Err(); err != nil {
		return Preferences{}, err
	}

	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Preferences{}, fmt.Errorf("prefs: read %s: %w", s.path, err)
		}
		s.logger.Debug("preferences file not found, using defaults", zap.String("path", s.path))
	}

	return Preferences{
		Language:       v.GetString(KeyLanguage),
		CustomLanguage: v.GetString(KeyCustomLanguage),
		Tone:           v.GetString(KeyTone),
		CustomTone:     v.GetString(KeyCustomTone),
		Audience:       v.GetString(KeyAudience),
		Platform:       v.GetString(KeyPlatform),
		DarkMode:       v.GetBool(KeyDarkMode),
	}, nil
}

// Save validates and writes every key, creating parent directories.
func (s *FileStore) Save(ctx context.Context, prefs Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := prefs.Validate(); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	for key, value := range prefs.values() {
		v.Set(key, value)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	s.logger.Debug("preferences saved", zap.String("path", s.path))
	return nil
}

func (s *FileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	for key, value := range Default().values() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func (p Preferences) values() map[string]any {
	return map[string]any{
		KeyLanguage:       p.Language,
		KeyCustomLanguage: p.CustomLanguage,
		KeyTone:           p.Tone,
		KeyCustomTone:     p.CustomTone,
		KeyAudience:       p.Audience,
		KeyPlatform:       p.Platform,
		KeyDarkMode:       p.DarkMode,
	}
}

// MemoryStore keeps preferences in memory.
type MemoryStore struct {
	mu    sync.Mutex
	prefs *Preferences
}

// NewMemoryStore returns a store seeded with initial, or defaults when
// initial is nil.
func NewMemoryStore(initial *Preferences) *MemoryStore {
	s := &MemoryStore{}
	if initial != nil {
		p := *initial
		s.prefs = &p
	}
	return s
}

// Load returns the stored preferences or defaults.
func (s *MemoryStore) Load(ctx context.Context) (Preferences, error) {
	if err := ctx.Err(); err != nil {
		return Preferences{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prefs == nil {
		return Default(), nil
	}
	return *s.prefs, nil
}

// Save validates and stores prefs.
func (s *MemoryStore) Save(ctx context.Context, prefs Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := prefs.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = &prefs
	return nil
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
