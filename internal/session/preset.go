package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hjson/hjson-go/v4"

	"github.com/Faultbox/xnbake/pkg/bake"
)

// ErrInvalidPreset is returned when a preset would leave a field out of
// range or holding an unknown token.
var ErrInvalidPreset = errors.New("invalid preset")

// ImportPreset merges an hjson preset file into the session. Keys use the
// session layout; absent keys are left alone. The session is untouched
// unless the merged result validates.
func (s *Session) ImportPreset(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading preset: %w", err)
	}
	return s.ApplyPreset(data)
}

// ApplyPreset merges hjson preset text into the session.
func (s *Session) ApplyPreset(data []byte) error {
	var tree map[string]interface{}
	if err := hjson.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("parsing preset: %w", err)
	}

	// Round trip through JSON so the struct tags and Mode's text
	// unmarshaler drive the merge.
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}

	merged := *s.Settings
	if err := json.Unmarshal(raw, &merged); err != nil {
		return fmt.Errorf("applying preset: %w", err)
	}

	if bad := merged.Violations(); len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPreset, strings.Join(bad, ", "))
	}

	*s.Settings = merged
	return nil
}

// Preset renders the settings as hjson.
func Preset(settings *bake.Settings) ([]byte, error) {
	// Go through JSON so embedded structs flatten the same way they do
	// on import.
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return hjson.Marshal(tree)
}
