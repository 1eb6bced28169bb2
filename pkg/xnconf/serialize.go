package xnconf

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Faultbox/xnbake/pkg/bake"
)

// Serializer errors.
var (
	ErrNoRecord     = errors.New("no parameter record")
	ErrMissingField = errors.New("record has no field for table column")
)

// Element names of the xNormal settings schema.
const (
	RootElement      = "Settings"
	HighPolyElement  = "HighPolyModel"
	LowPolyElement   = "LowPolyModel"
	MeshElement      = "Mesh"
	GenerateElement  = "GenerateMaps"
	GenNormalsMarker = "GenNormals"
)

// Denormalize converts a [0, 1] color channel to [0, 255] by rounding
// v*255 up.
func Denormalize(v float64) int {
	return int(math.Ceil(v * 255))
}

// Serialize builds the settings document for rec with the given globals.
// Values are written exactly as stored; callers validate beforehand.
func Serialize(rec bake.Record, g bake.Globals) (*Document, error) {
	if rec == nil {
		return nil, ErrNoRecord
	}
	block, ok := modeBlocks[rec.Mode()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", bake.ErrUnknownMode, rec.Mode())
	}

	root := NewElement(RootElement)
	root.Append(
		NewElement(HighPolyElement).Append(highMesh(g.High)),
		NewElement(LowPolyElement).Append(lowMesh(g.Low)),
	)

	maps := generateMaps(g)
	if err := writeBlock(maps, rec, block); err != nil {
		return nil, fmt.Errorf("serializing %s: %w", rec.Mode(), err)
	}
	root.Append(maps)

	return &Document{Root: root}, nil
}

func highMesh(h bake.HighMesh) *Element {
	mesh := NewElement(MeshElement)
	mesh.Set("IgnorePerVertexColor", bake.FormatBool(h.IgnorePerVertexColor))
	mesh.Set("AverageNormals", h.Normals)
	mesh.Set("File", h.Path)
	mesh.Set("Scale", formatFloat(h.Scale))
	return mesh
}

func lowMesh(l bake.LowMesh) *Element {
	mesh := NewElement(MeshElement)
	mesh.Set("File", l.Path)
	mesh.Set("AverageNormals", l.Normals)
	mesh.Set("MatchUVs", bake.FormatBool(l.MatchUVs))
	mesh.Set("UOffset", strconv.Itoa(l.OffsetU))
	mesh.Set("VOffset", strconv.Itoa(l.OffsetV))
	mesh.Set("Scale", formatFloat(l.Scale))
	if l.UseCage {
		mesh.Set("CageFile", l.CagePath)
		mesh.Set("UseCage", "true")
	}
	return mesh
}

func generateMaps(g bake.Globals) *Element {
	maps := NewElement(GenerateElement)
	maps.Set("Width", g.Width)
	maps.Set("Height", g.Height)
	maps.Set("EdgePadding", strconv.Itoa(g.Padding))
	maps.Set("BucketSize", g.BucketSize)
	maps.Set("AA", g.AntiAliasing)
	maps.Set("ClosestIfFails", bake.FormatBool(g.ClosestHit))
	maps.Set("DiscardRayBackFacesHits", bake.FormatBool(g.DiscardBackFaces))
	maps.Set("File", g.Output)
	// xNormal assumes normals are wanted when the attribute is missing.
	maps.Set(GenNormalsMarker, "false")
	return maps
}

func writeBlock(maps *Element, rec bake.Record, block modeBlock) error {
	maps.Set(block.Marker, "true")

	for _, col := range block.Attrs {
		f, err := field(rec, col.Key)
		if err != nil {
			return err
		}
		maps.Set(col.Name, f.String())
	}
	for _, col := range block.Colors {
		f, err := field(rec, col.Key)
		if err != nil {
			return err
		}
		maps.Append(colorElement(col.Name, f.Color()))
	}
	return nil
}

func colorElement(name string, c bake.Color) *Element {
	e := NewElement(name)
	e.Set("R", strconv.Itoa(Denormalize(c[0])))
	e.Set("G", strconv.Itoa(Denormalize(c[1])))
	e.Set("B", strconv.Itoa(Denormalize(c[2])))
	return e
}

func field(rec bake.Record, key string) (bake.Field, error) {
	f, ok := bake.Lookup(rec, key)
	if !ok {
		return bake.Field{}, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return f, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
