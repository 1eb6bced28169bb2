// Package session holds the caller-owned bake settings and persists them
// between runs.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/xnbake/pkg/bake"
)

// Session is a settings object bound to the file it was loaded from.
type Session struct {
	Settings *bake.Settings
	path     string
}

// New returns a session holding default settings. Mesh and output paths
// default into meshDir.
func New(path, meshDir string) *Session {
	return &Session{
		Settings: bake.DefaultSettings(meshDir),
		path:     path,
	}
}

// Load reads the session file at path. A missing file yields default
// settings; keys absent from the file keep their defaults.
func Load(path, meshDir string) (*Session, error) {
	s := New(path, meshDir)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	if err := yaml.Unmarshal(data, s.Settings); err != nil {
		return nil, fmt.Errorf("parsing session %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file the session saves to.
func (s *Session) Path() string {
	return s.path
}

// Save writes the session back to its file.
func (s *Session) Save() error {
	return s.SaveTo(s.path)
}

// SaveTo writes the session to path, creating parent directories.
func (s *Session) SaveTo(path string) error {
	if path == "" {
		return errors.New("session has no file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := yaml.Marshal(s.Settings)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Get formats the field at a dotted path ("cavity.rays", "globals.width").
func (s *Session) Get(path string) (string, error) {
	f, err := s.Settings.Field(path)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// Set parses value into the field at path. Rejected values leave the
// field unchanged.
func (s *Session) Set(path, value string) error {
	f, err := s.Settings.Field(path)
	if err != nil {
		return err
	}
	if err := f.Set(value); err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	return nil
}

// SetMode selects the active mode by token.
func (s *Session) SetMode(token string) error {
	m, err := bake.ParseMode(token)
	if err != nil {
		return err
	}
	s.Settings.Mode = m
	return nil
}
