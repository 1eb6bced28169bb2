// Package export writes the low, high and cage meshes to the paths the
// bake settings point xNormal at.
package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/Faultbox/xnbake/pkg/bake"
	"github.com/Faultbox/xnbake/pkg/geom"
	"github.com/Faultbox/xnbake/pkg/obj"
)

var (
	ErrUnknownRole     = errors.New("unknown mesh role")
	ErrUnknownEncoding = errors.New("unknown text encoding")
	ErrInvalidScale    = errors.New("scale must be a positive number")
)

// Role names the mesh slot an export fills.
type Role string

const (
	RoleLow  Role = "low"
	RoleHigh Role = "high"
	RoleCage Role = "cage"
)

// ParseRole parses a role name, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleLow, RoleHigh, RoleCage:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Path returns the destination of the role in g.
func (r Role) Path(g bake.Globals) string {
	switch r {
	case RoleLow:
		return g.Low.Path
	case RoleHigh:
		return g.High.Path
	case RoleCage:
		return g.Low.CagePath
	}
	return ""
}

// Options control how a source mesh is prepared.
type Options struct {
	// Objects limits the export to the named objects. Empty exports all.
	Objects []string
	// ZUp converts a Z-up source into xNormal's Y-up frame.
	ZUp bool
	// Encoding names the source's text encoding ("windows-1252",
	// "euc-kr", ...) for object names written in a legacy code page.
	// Empty means UTF-8.
	Encoding string
	// Scale multiplies positions, e.g. 0.01 for a centimeter source.
	// Zero means no scaling.
	Scale float64
	// Center moves the mesh so its bounding box is centered on the origin.
	Center bool
}

// transform returns the combined axis conversion and scale, and false when
// opts leave the mesh as it is.
func (o Options) transform() (geom.Mat4, bool) {
	m, changed := geom.Identity(), false
	if o.ZUp {
		m, changed = geom.ZUpToYUp(), true
	}
	if o.Scale != 0 && o.Scale != 1 {
		m, changed = geom.Scale(o.Scale, o.Scale, o.Scale).Mul(m), true
	}
	return m, changed
}

// Exporter prepares a source OBJ and writes it to a role's path.
type Exporter struct {
	log *zap.Logger
}

// New creates an exporter.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log.Named("export")}
}

// Export reads source, applies opts, fills in missing normals and writes
// the result to the role's path in g, creating directories. It returns the
// written path.
func (e *Exporter) Export(g bake.Globals, role Role, source string, opts Options) (string, error) {
	dest := role.Path(g)
	if dest == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if opts.Scale < 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidScale, opts.Scale)
	}

	mesh, err := load(source, opts.Encoding)
	if err != nil {
		return "", fmt.Errorf("loading %s: %w", source, err)
	}

	if len(opts.Objects) > 0 {
		if mesh, err = mesh.Select(opts.Objects...); err != nil {
			return "", err
		}
	}
	if mesh.FaceCount() == 0 {
		return "", fmt.Errorf("%w: %s", obj.ErrEmptyMesh, source)
	}

	if xf, ok := opts.transform(); ok {
		mesh.Transform(xf)
	}
	if opts.Center {
		lo, hi := mesh.Bounds()
		c := lo.Add(hi).Scale(0.5)
		mesh.Transform(geom.Translate(-c.X, -c.Y, -c.Z))
	}
	filled := mesh.EnsureNormals()

	if err := mesh.WriteFile(dest); err != nil {
		return "", err
	}

	lo, hi := mesh.Bounds()
	size := hi.Sub(lo)
	e.log.Info("mesh exported",
		zap.String("role", string(role)),
		zap.String("path", dest),
		zap.Int("objects", len(mesh.Objects)),
		zap.Int("faces", mesh.FaceCount()),
		zap.Int("computed_normals", filled),
		zap.Float64("size_x", size.X),
		zap.Float64("size_y", size.Y),
		zap.Float64("size_z", size.Z))

	return dest, nil
}

// load reads and parses source, decoding it to UTF-8 first when an
// encoding is given.
func load(source, encoding string) (*obj.Mesh, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	if encoding != "" {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}
		if data, err = enc.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", encoding, err)
		}
	}
	return obj.Parse(data)
}
