package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross() = %v, want (0, 0, 1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	if !near(n, Vec3{0.6, 0.8, 0}) {
		t.Errorf("Normalize() = %v", n)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should stay zero")
	}
}

func TestVec3MinMax(t *testing.T) {
	a, b := Vec3{1, 5, -2}, Vec3{3, 2, -4}
	if got := a.Min(b); got != (Vec3{1, 2, -4}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, -2}) {
		t.Errorf("Max() = %v", got)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := m.TransformPoint(Vec3{1, 2, 3})
	if !near(got, Vec3{12, 24, 36}) {
		t.Errorf("TransformPoint() = %v, want (12, 24, 36)", got)
	}

	// Normals ignore translation.
	if n := m.TransformNormal(Vec3{1, 0, 0}); !near(n, Vec3{1, 0, 0}) {
		t.Errorf("TransformNormal() = %v, want (1, 0, 0)", n)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"x", RotateX(math.Pi / 2), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"z-up up", ZUpToYUp(), Vec3{0, 0, 1}, Vec3{0, 1, 0}},
		{"z-up forward", ZUpToYUp(), Vec3{0, 1, 0}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !near(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformNormal(t *testing.T) {
	// A 45 degree face normal under a non-uniform scale must stay
	// perpendicular to the scaled face.
	m := Scale(2, 1, 1)
	n := m.TransformNormal(Vec3{1, 1, 0}.Normalize())

	edge := m.TransformDirection(Vec3{1, -1, 0})
	if d := n.Dot(edge); math.Abs(d) > epsilon {
		t.Errorf("normal %v not perpendicular to edge %v (dot %v)", n, edge, d)
	}
	if l := n.Length(); math.Abs(l-1) > epsilon {
		t.Errorf("normal length %v, want 1", l)
	}

	// Mirroring keeps the normal pointing out of the face.
	mirror := Scale(-1, 1, 1)
	if !mirror.Mirrors() {
		t.Error("negative scale should mirror")
	}
	if got := mirror.TransformNormal(Vec3{1, 0, 0}); !near(got, Vec3{-1, 0, 0}) {
		t.Errorf("mirrored normal = %v, want (-1, 0, 0)", got)
	}
	if ZUpToYUp().Mirrors() {
		t.Error("rotation should not mirror")
	}
}
