package obj

import (
	"fmt"

	"github.com/Faultbox/xnbake/pkg/geom"
)

// Select returns a mesh holding only the named objects, with attribute
// pools compacted to what they reference. Pool order is kept.
func (m *Mesh) Select(names ...string) (*Mesh, error) {
	var objects []*Object
	for _, name := range names {
		o := m.Object(name)
		if o == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchGroup, name)
		}
		objects = append(objects, o)
	}

	usedV := make([]bool, len(m.Positions))
	usedT := make([]bool, len(m.TexCoords))
	usedN := make([]bool, len(m.Normals))
	for _, o := range objects {
		for _, f := range o.Faces {
			for _, c := range f {
				usedV[c.V] = true
				if c.VT >= 0 {
					usedT[c.VT] = true
				}
				if c.VN >= 0 {
					usedN[c.VN] = true
				}
			}
		}
		for _, l := range o.Lines {
			for _, v := range l {
				usedV[v] = true
			}
		}
	}

	out := &Mesh{}
	mapV := compact(usedV, func(i int) { out.Positions = append(out.Positions, m.Positions[i]) })
	mapT := compact(usedT, func(i int) { out.TexCoords = append(out.TexCoords, m.TexCoords[i]) })
	mapN := compact(usedN, func(i int) { out.Normals = append(out.Normals, m.Normals[i]) })

	for _, o := range objects {
		dst := &Object{Name: o.Name}
		for _, f := range o.Faces {
			nf := make(Face, len(f))
			for i, c := range f {
				nf[i] = Corner{V: mapV[c.V], VT: remap(mapT, c.VT), VN: remap(mapN, c.VN)}
			}
			dst.Faces = append(dst.Faces, nf)
		}
		for _, l := range o.Lines {
			nl := make([]int, len(l))
			for i, v := range l {
				nl[i] = mapV[v]
			}
			dst.Lines = append(dst.Lines, nl)
		}
		out.Objects = append(out.Objects, dst)
	}
	return out, nil
}

// compact calls keep for every used index in order and returns the old to
// new index map.
func compact(used []bool, keep func(int)) []int {
	index := make([]int, len(used))
	n := 0
	for i, u := range used {
		index[i] = -1
		if u {
			index[i] = n
			keep(i)
			n++
		}
	}
	return index
}

func remap(index []int, i int) int {
	if i < 0 {
		return -1
	}
	return index[i]
}

// Transform applies mat to positions and normals in place. A mirroring
// transform also reverses face winding so faces keep facing outwards.
func (m *Mesh) Transform(mat geom.Mat4) {
	for i, p := range m.Positions {
		m.Positions[i] = mat.TransformPoint(p)
	}
	for i, n := range m.Normals {
		m.Normals[i] = mat.TransformNormal(n)
	}
	if !mat.Mirrors() {
		return
	}
	for _, o := range m.Objects {
		for _, f := range o.Faces {
			for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
				f[i], f[j] = f[j], f[i]
			}
		}
	}
}

// EnsureNormals gives every face corner without a normal the face normal.
// Authored normals are left alone. It returns the number of faces that
// received a computed normal.
func (m *Mesh) EnsureNormals() int {
	filled := 0
	for _, o := range m.Objects {
		for _, f := range o.Faces {
			missing := false
			for _, c := range f {
				if c.VN < 0 {
					missing = true
					break
				}
			}
			if !missing {
				continue
			}

			m.Normals = append(m.Normals, m.faceNormal(f))
			idx := len(m.Normals) - 1
			for i := range f {
				if f[i].VN < 0 {
					f[i].VN = idx
				}
			}
			filled++
		}
	}
	return filled
}

// faceNormal uses Newell's method, which handles non-planar polygons.
func (m *Mesh) faceNormal(f Face) geom.Vec3 {
	var n geom.Vec3
	for i := range f {
		a := m.Positions[f[i].V]
		b := m.Positions[f[(i+1)%len(f)].V]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalize()
}
