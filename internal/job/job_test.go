package job

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Faultbox/xnbake/pkg/bake"
)

type fakeLauncher struct {
	calls [][2]string
	err   error
}

func (f *fakeLauncher) Launch(exe, document string) error {
	f.calls = append(f.calls, [2]string{exe, document})
	return f.err
}

func newTestRunner(t *testing.T, l *fakeLauncher) *Runner {
	t.Helper()
	r := NewRunner("/opt/xNormal.exe", filepath.Join(t.TempDir(), "tmp"), l, nil)
	r.newName = func() string { return "doc.xml" }
	return r
}

func TestBake(t *testing.T) {
	l := &fakeLauncher{}
	r := newTestRunner(t, l)

	s := bake.DefaultSettings("/meshes")
	s.Mode = bake.ModeCavity

	path, err := r.Bake(s)
	if err != nil {
		t.Fatalf("Bake failed: %v", err)
	}

	want := filepath.Join(r.TempDir, "doc.xml")
	if path != want {
		t.Errorf("expected document %s, got %s", want, path)
	}
	if len(l.calls) != 1 || l.calls[0] != [2]string{"/opt/xNormal.exe", want} {
		t.Errorf("unexpected launches %v", l.calls)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("document not written: %v", err)
	}
	if !strings.Contains(string(data), `GenCavity="true"`) {
		t.Errorf("document lacks the cavity block:\n%s", data)
	}
}

func TestBakeValidationError(t *testing.T) {
	l := &fakeLauncher{}
	r := newTestRunner(t, l)

	s := bake.DefaultSettings("/meshes")
	s.Mode = bake.ModeAmbientOcclusion
	s.AmbientOcclusion.Rays = 2
	s.Globals.Padding = -1
	// Other modes' records are not checked.
	s.Cavity.Rays = 0

	path, err := r.Bake(s)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Mode != bake.ModeAmbientOcclusion {
		t.Errorf("expected AO mode, got %s", verr.Mode)
	}
	if !slices.Equal(verr.Fields, []string{"rays", "globals.padding"}) {
		t.Errorf("unexpected fields %v", verr.Fields)
	}
	if path != "" {
		t.Errorf("expected no document, got %s", path)
	}
	if len(l.calls) != 0 {
		t.Error("launcher called for invalid settings")
	}
	if _, err := os.Stat(r.TempDir); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp directory created for invalid settings")
	}
}

func TestBakePersistenceError(t *testing.T) {
	l := &fakeLauncher{}
	r := newTestRunner(t, l)

	// A regular file where the temp directory should be.
	if err := os.WriteFile(r.TempDir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := r.Bake(bake.DefaultSettings("/meshes"))

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if len(l.calls) != 0 {
		t.Error("launcher called after a failed write")
	}
}

func TestBakeLaunchError(t *testing.T) {
	cause := errors.New("no such file")
	l := &fakeLauncher{err: cause}
	r := newTestRunner(t, l)

	path, err := r.Bake(bake.DefaultSettings("/meshes"))

	var lerr *LaunchError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LaunchError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("LaunchError does not wrap its cause")
	}
	if lerr.Executable != "/opt/xNormal.exe" || lerr.Document != path {
		t.Errorf("unexpected error fields %+v", lerr)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document should stay after a failed launch: %v", err)
	}
}

func TestDocumentNamesAreUnique(t *testing.T) {
	a, b := documentName(), documentName()
	if a == b {
		t.Errorf("expected distinct names, got %s twice", a)
	}
	if !strings.HasPrefix(a, "xnbake-") || filepath.Ext(a) != ".xml" {
		t.Errorf("unexpected name %s", a)
	}
}

func TestRenderUnknownMode(t *testing.T) {
	s := bake.DefaultSettings("/meshes")
	s.Mode = bake.Mode(42)
	if _, err := Render(s); !errors.Is(err, bake.ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}
