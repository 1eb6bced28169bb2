// Package obj reads and writes Wavefront OBJ meshes, the interchange format
// xNormal loads low, high and cage meshes from.
package obj

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/xnbake/pkg/geom"
)

// OBJ format errors.
var (
	ErrSyntax      = errors.New("malformed OBJ statement")
	ErrBadIndex    = errors.New("OBJ index out of range")
	ErrDegenerate  = errors.New("face needs at least 3 corners")
	ErrEmptyMesh   = errors.New("mesh has no faces")
	ErrNoSuchGroup = errors.New("no object with that name")
)

// Corner references the attributes of one face corner. Indices are
// zero-based; -1 marks an absent texture coordinate or normal.
type Corner struct {
	V, VT, VN int
}

// Face is a polygon. Faces are kept as authored, never triangulated.
type Face []Corner

// Object is a named group of faces and edges ("o" or "g" statement).
type Object struct {
	Name  string
	Faces []Face
	Lines [][]int // position indices of "l" statements
}

// Mesh holds the shared attribute pools and the objects indexing them.
type Mesh struct {
	Positions []geom.Vec3
	TexCoords []geom.Vec2
	Normals   []geom.Vec3
	Objects   []*Object
}

// FaceCount returns the number of faces across all objects.
func (m *Mesh) FaceCount() int {
	n := 0
	for _, o := range m.Objects {
		n += len(o.Faces)
	}
	return n
}

// Object returns the object with the given name, or nil.
func (m *Mesh) Object(name string) *Object {
	for _, o := range m.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Bounds returns the axis-aligned box around all positions.
func (m *Mesh) Bounds() (lo, hi geom.Vec3) {
	if len(m.Positions) == 0 {
		return geom.Vec3{}, geom.Vec3{}
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// Parse parses OBJ text. Material, smoothing and free-form statements are
// skipped. Statements before the first "o" or "g" go to an unnamed object.
func Parse(data []byte) (*Mesh, error) {
	p := parser{mesh: &Mesh{}}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.statement(sc.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	p.mesh.dropEmpty()
	return p.mesh, nil
}

// ParseFile parses an OBJ file from disk.
func ParseFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return Parse(data)
}

type parser struct {
	mesh    *Mesh
	current *Object
	line    int
}

func (p *parser) statement(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	args := fields[1:]
	switch fields[0] {
	case "v":
		v, err := parseVec3(args)
		if err != nil {
			return err
		}
		p.mesh.Positions = append(p.mesh.Positions, v)
	case "vt":
		if len(args) < 1 {
			return fmt.Errorf("%w: vt needs a coordinate", ErrSyntax)
		}
		u, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		var v float64
		if len(args) > 1 {
			if v, err = parseFloat(args[1]); err != nil {
				return err
			}
		}
		p.mesh.TexCoords = append(p.mesh.TexCoords, geom.Vec2{X: u, Y: v})
	case "vn":
		n, err := parseVec3(args)
		if err != nil {
			return err
		}
		p.mesh.Normals = append(p.mesh.Normals, n)
	case "o", "g":
		p.current = &Object{Name: strings.Join(args, " ")}
		p.mesh.Objects = append(p.mesh.Objects, p.current)
	case "f":
		face, err := p.face(args)
		if err != nil {
			return err
		}
		o := p.object()
		o.Faces = append(o.Faces, face)
	case "l":
		line, err := p.polyline(args)
		if err != nil {
			return err
		}
		o := p.object()
		o.Lines = append(o.Lines, line)
	}
	return nil
}

func (p *parser) object() *Object {
	if p.current == nil {
		p.current = &Object{}
		p.mesh.Objects = append(p.mesh.Objects, p.current)
	}
	return p.current
}

func (p *parser) face(args []string) (Face, error) {
	if len(args) < 3 {
		return nil, ErrDegenerate
	}
	face := make(Face, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) > 3 {
			return nil, fmt.Errorf("%w: corner %q", ErrSyntax, arg)
		}

		c := Corner{V: -1, VT: -1, VN: -1}
		var err error
		if c.V, err = resolve(parts[0], len(p.mesh.Positions)); err != nil {
			return nil, err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.VT, err = resolve(parts[1], len(p.mesh.TexCoords)); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.VN, err = resolve(parts[2], len(p.mesh.Normals)); err != nil {
				return nil, err
			}
		}
		face[i] = c
	}
	return face, nil
}

func (p *parser) polyline(args []string) ([]int, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: l needs 2 vertices", ErrSyntax)
	}
	line := make([]int, len(args))
	for i, arg := range args {
		v, _, _ := strings.Cut(arg, "/")
		idx, err := resolve(v, len(p.mesh.Positions))
		if err != nil {
			return nil, err
		}
		line[i] = idx
	}
	return line, nil
}

// resolve turns a one-based or negative (relative) OBJ index into a
// zero-based index into a pool of n elements.
func resolve(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrSyntax, s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	default:
		return 0, fmt.Errorf("%w: %d of %d", ErrBadIndex, i, n)
	}
}

func parseVec3(args []string) (geom.Vec3, error) {
	if len(args) < 3 {
		return geom.Vec3{}, fmt.Errorf("%w: expected 3 coordinates, got %d", ErrSyntax, len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		v, err := parseFloat(args[i])
		if err != nil {
			return geom.Vec3{}, err
		}
		xyz[i] = v
	}
	return geom.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrSyntax, s)
	}
	return v, nil
}

// dropEmpty removes objects with neither faces nor edges, such as a "g"
// immediately followed by "o".
func (m *Mesh) dropEmpty() {
	kept := m.Objects[:0]
	for _, o := range m.Objects {
		if len(o.Faces) > 0 || len(o.Lines) > 0 {
			kept = append(kept, o)
		}
	}
	m.Objects = kept
}
