// Package job runs a bake request: validate the active mode, serialize the
// settings document, write it to the temp directory and start xNormal.
package job

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/xnbake/pkg/bake"
	"github.com/Faultbox/xnbake/pkg/xnconf"
)

// Launcher starts the external baker with a document path.
type Launcher interface {
	Launch(exe, document string) error
}

// Runner holds what a bake needs besides the settings.
type Runner struct {
	Executable string
	TempDir    string
	Launcher   Launcher

	log     *zap.Logger
	newName func() string
}

// NewRunner creates a bake runner.
func NewRunner(exe, tempDir string, launcher Launcher, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		Executable: exe,
		TempDir:    tempDir,
		Launcher:   launcher,
		log:        log.Named("job"),
		newName:    documentName,
	}
}

// documentName returns a fresh file name so concurrent bakes never share
// a document.
func documentName() string {
	return "xnbake-" + uuid.NewString() + ".xml"
}

// Render validates the active record and the globals and builds the
// settings document. Violations come back as *ValidationError.
func Render(s *bake.Settings) (*xnconf.Document, error) {
	rec := s.Active()
	if rec == nil {
		return nil, fmt.Errorf("%w: %d", bake.ErrUnknownMode, int(s.Mode))
	}

	bad := bake.Validate(rec)
	for _, key := range s.Globals.Validate() {
		bad = append(bad, "globals."+key)
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Mode: s.Mode, Fields: bad}
	}

	return xnconf.Serialize(rec, s.Globals)
}

// Bake renders the document, writes it and launches xNormal. It returns
// the document path whenever the document was written, including when
// the launch fails.
func (r *Runner) Bake(s *bake.Settings) (string, error) {
	doc, err := Render(s)
	if err != nil {
		r.log.Warn("bake rejected", zap.Stringer("mode", s.Mode), zap.Error(err))
		return "", err
	}

	path, err := r.write(doc)
	if err != nil {
		r.log.Error("failed to write settings document", zap.Error(err))
		return "", err
	}
	r.log.Debug("settings document written", zap.String("path", path))

	if err := r.Launcher.Launch(r.Executable, path); err != nil {
		r.log.Error("failed to launch xNormal", zap.String("document", path), zap.Error(err))
		return path, &LaunchError{Executable: r.Executable, Document: path, Err: err}
	}

	r.log.Info("bake started", zap.Stringer("mode", s.Mode), zap.String("document", path))
	return path, nil
}

func (r *Runner) write(doc *xnconf.Document) (string, error) {
	path := filepath.Join(r.TempDir, r.newName())

	if err := os.MkdirAll(r.TempDir, 0755); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}

	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return "", &PersistenceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &PersistenceError{Path: path, Err: err}
	}
	return path, nil
}
