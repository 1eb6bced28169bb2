package export

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/xnbake/pkg/bake"
	"github.com/Faultbox/xnbake/pkg/obj"
)

const source = `o Low
v 0 0 0
v 1 0 0
v 0 0 1
f 1 2 3
o Extra
v 4 4 4
v 5 4 4
v 4 5 4
f 4 5 6
`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.obj")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	return path
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"low", RoleLow, false},
		{"HIGH", RoleHigh, false},
		{" cage ", RoleCage, false},
		{"mid", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownRole) {
				t.Errorf("%q: expected ErrUnknownRole, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got %q, %v", tt.in, got, err)
		}
	}
}

func TestRolePath(t *testing.T) {
	g := bake.DefaultGlobals("/meshes")
	if RoleLow.Path(g) != g.Low.Path || RoleHigh.Path(g) != g.High.Path || RoleCage.Path(g) != g.Low.CagePath {
		t.Error("role paths do not follow the globals")
	}
	if Role("mid").Path(g) != "" {
		t.Error("unknown role should have no path")
	}
}

func TestExport(t *testing.T) {
	meshDir := filepath.Join(t.TempDir(), "nested", "meshes")
	g := bake.DefaultGlobals(meshDir)
	src := writeSource(t, source)

	path, err := New(nil).Export(g, RoleLow, src, Options{Objects: []string{"Low"}, ZUp: true})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if path != g.Low.Path {
		t.Errorf("expected %s, got %s", g.Low.Path, path)
	}

	m, err := obj.ParseFile(path)
	if err != nil {
		t.Fatalf("exported mesh unreadable: %v", err)
	}
	if len(m.Objects) != 1 || m.Objects[0].Name != "Low" {
		t.Fatalf("expected only the Low object, got %+v", m.Objects)
	}
	if len(m.Positions) != 3 {
		t.Errorf("expected 3 positions, got %d", len(m.Positions))
	}
	if len(m.Normals) != 1 {
		t.Fatalf("expected a computed normal, got %d", len(m.Normals))
	}
	// The face lies in the XZ plane facing -Y; after Z-up conversion it
	// faces +Z.
	if n := m.Normals[0]; n.Z < 0.999 {
		t.Errorf("unexpected normal %v", n)
	}
}

func TestExportScaleAndCenter(t *testing.T) {
	g := bake.DefaultGlobals(t.TempDir())
	src := writeSource(t, source)

	path, err := New(nil).Export(g, RoleHigh, src, Options{
		Objects: []string{"Low"},
		ZUp:     true,
		Scale:   2,
		Center:  true,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	m, err := obj.ParseFile(path)
	if err != nil {
		t.Fatalf("exported mesh unreadable: %v", err)
	}

	// (x, y, z) becomes (x, z, -y), doubles, then the 2x2 footprint is
	// centered on the origin.
	want := [][3]float64{{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}}
	if len(m.Positions) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(m.Positions))
	}
	for i, w := range want {
		p := m.Positions[i]
		if math.Abs(p.X-w[0]) > 1e-9 || math.Abs(p.Y-w[1]) > 1e-9 || math.Abs(p.Z-w[2]) > 1e-9 {
			t.Errorf("position %d = %v, want %v", i, p, w)
		}
	}
}

func TestExportErrors(t *testing.T) {
	g := bake.DefaultGlobals(t.TempDir())
	e := New(nil)

	tests := []struct {
		name    string
		role    Role
		source  string
		opts    Options
		wantErr error
	}{
		{"unknown role", Role("mid"), writeSource(t, source), Options{}, ErrUnknownRole},
		{"missing source", RoleHigh, filepath.Join(t.TempDir(), "none.obj"), Options{}, os.ErrNotExist},
		{"bad source", RoleHigh, writeSource(t, "f 1 2 3\n"), Options{}, obj.ErrBadIndex},
		{"missing object", RoleCage, writeSource(t, source), Options{Objects: []string{"Cage"}}, obj.ErrNoSuchGroup},
		{"no faces", RoleCage, writeSource(t, "v 0 0 0\n"), Options{}, obj.ErrEmptyMesh},
		{"negative scale", RoleCage, writeSource(t, source), Options{Scale: -1}, ErrInvalidScale},
		{"nan scale", RoleCage, writeSource(t, source), Options{Scale: math.NaN()}, ErrInvalidScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Export(g, tt.role, tt.source, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := os.Stat(g.Low.CagePath); !errors.Is(err, os.ErrNotExist) {
		t.Error("failed export left a cage mesh behind")
	}
}

func TestExportEncoding(t *testing.T) {
	// "Caf\xe9" is "Café" in windows-1252.
	src := writeSource(t, "o Caf\xe9\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	g := bake.DefaultGlobals(t.TempDir())
	e := New(nil)

	path, err := e.Export(g, RoleHigh, src, Options{Objects: []string{"Café"}, Encoding: "windows-1252"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	m, err := obj.ParseFile(path)
	if err != nil {
		t.Fatalf("exported mesh unreadable: %v", err)
	}
	if m.Object("Café") == nil {
		t.Errorf("expected UTF-8 object name, got %+v", m.Objects)
	}

	_, err = e.Export(g, RoleHigh, src, Options{Encoding: "klingon"})
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("expected ErrUnknownEncoding, got %v", err)
	}
}
