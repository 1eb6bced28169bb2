package xnconf

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/xnbake/pkg/bake"
)

func TestDenormalize(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.0039, 1},
		{0.25, 64},
	}

	for _, tt := range tests {
		if got := Denormalize(tt.in); got != tt.want {
			t.Errorf("Denormalize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func mustSerialize(t *testing.T, rec bake.Record, g bake.Globals) *Document {
	t.Helper()
	doc, err := Serialize(rec, g)
	if err != nil {
		t.Fatalf("Serialize(%s) failed: %v", rec.Mode(), err)
	}
	return doc
}

func attr(t *testing.T, e *Element, name string) string {
	t.Helper()
	v, ok := e.Get(name)
	if !ok {
		t.Fatalf("%s has no attribute %s", e.Name, name)
	}
	return v
}

func TestSerializeGenNormals(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")

	for _, m := range bake.Modes() {
		t.Run(m.String(), func(t *testing.T) {
			doc := mustSerialize(t, bake.Defaults(m), g)
			maps := doc.Find("GenerateMaps")
			if maps == nil {
				t.Fatal("missing GenerateMaps")
			}

			want := "false"
			if m == bake.ModeNormal {
				want = "true"
			}
			if got := attr(t, maps, "GenNormals"); got != want {
				t.Errorf("GenNormals = %s, want %s", got, want)
			}
			if got := attr(t, maps, Marker(m)); got != "true" {
				t.Errorf("%s = %s, want true", Marker(m), got)
			}

			// No other mode's marker may appear.
			for _, other := range bake.Modes() {
				if other == m || other == bake.ModeNormal {
					continue
				}
				if _, ok := maps.Get(Marker(other)); ok {
					t.Errorf("unexpected marker %s", Marker(other))
				}
			}
		})
	}
}

func TestSerializeSingleBlock(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	doc := mustSerialize(t, bake.Defaults(bake.ModeAmbientOcclusion), g)
	maps := doc.Find("GenerateMaps")

	for _, a := range maps.Attrs {
		for m, block := range modeBlocks {
			if m == bake.ModeAmbientOcclusion {
				continue
			}
			for _, col := range block.Attrs {
				if col.Name == a.Name {
					t.Errorf("attribute %s of %s leaked into AO block", a.Name, m)
				}
			}
		}
	}

	var names []string
	for _, c := range maps.Children {
		names = append(names, c.Name)
	}
	want := "AOBackgroundColor,AOOccludedColor,AOUnoccludedColor"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("color elements = %s, want %s", got, want)
	}
}

func TestSerializeCavity(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	rec := bake.DefaultCavity()
	doc := mustSerialize(t, &rec, g)
	maps := doc.Find("GenerateMaps")

	want := map[string]string{
		"GenCavity":           "true",
		"CavityRaysPerSample": "128",
		"CavitySearchRadius":  "0.5",
		"CavityContrast":      "1.25",
		"CavitySteps":         "4",
		"CavityJitter":        "false",
	}
	for name, value := range want {
		if got := attr(t, maps, name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}

	bg := maps.Child("CavityBackgroundColor")
	if bg == nil {
		t.Fatal("missing CavityBackgroundColor")
	}
	for _, ch := range []string{"R", "G", "B"} {
		if got := attr(t, bg, ch); got != "255" {
			t.Errorf("CavityBackgroundColor %s = %s, want 255", ch, got)
		}
	}
}

func TestSerializeColorsAreDenormalized(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	rec := bake.DefaultWireframe()
	rec.Seam = bake.RGB(0.0039, 0.5, 0)

	doc := mustSerialize(t, &rec, g)
	seam := doc.Find("GenerateMaps/RenderSeamCol")
	if seam == nil {
		t.Fatal("missing RenderSeamCol")
	}
	if r, gg, b := attr(t, seam, "R"), attr(t, seam, "G"), attr(t, seam, "B"); r != "1" || gg != "128" || b != "0" {
		t.Errorf("RenderSeamCol = (%s,%s,%s), want (1,128,0)", r, gg, b)
	}
}

func TestSerializeGlobals(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	g.Width = "512"
	g.Height = "512"
	g.Padding = 16
	g.BucketSize = "32"
	g.AntiAliasing = "1"
	g.ClosestHit = false

	doc := mustSerialize(t, bake.Defaults(bake.ModeThickness), g)
	maps := doc.Find("GenerateMaps")

	want := []Attr{
		{"Width", "512"},
		{"Height", "512"},
		{"EdgePadding", "16"},
		{"BucketSize", "32"},
		{"AA", "1"},
		{"ClosestIfFails", "false"},
		{"DiscardRayBackFacesHits", "true"},
		{"File", "/tmp/xn/out.tga"},
		{"GenNormals", "false"},
		{"GenThickness", "true"},
	}
	if len(maps.Attrs) != len(want) {
		t.Fatalf("expected %d attributes, got %d: %v", len(want), len(maps.Attrs), maps.Attrs)
	}
	for i, a := range want {
		if maps.Attrs[i] != a {
			t.Errorf("attribute %d = %v, want %v", i, maps.Attrs[i], a)
		}
	}
	if len(maps.Children) != 0 {
		t.Errorf("thickness should write no colors, got %d", len(maps.Children))
	}
}

func TestSerializeMeshes(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	rec := bake.Defaults(bake.ModeNormal)

	doc := mustSerialize(t, rec, g)
	high := doc.Find("HighPolyModel/Mesh")
	if got := attr(t, high, "IgnorePerVertexColor"); got != "true" {
		t.Errorf("IgnorePerVertexColor = %s", got)
	}
	if got := attr(t, high, "AverageNormals"); got != "AverageNormals" {
		t.Errorf("high AverageNormals = %s", got)
	}
	if got := attr(t, high, "Scale"); got != "1" {
		t.Errorf("high Scale = %s", got)
	}

	low := doc.Find("LowPolyModel/Mesh")
	if got := attr(t, low, "MatchUVs"); got != "false" {
		t.Errorf("MatchUVs = %s", got)
	}
	if _, ok := low.Get("UseCage"); ok {
		t.Error("UseCage must be omitted when the cage is disabled")
	}
	if _, ok := low.Get("CageFile"); ok {
		t.Error("CageFile must be omitted when the cage is disabled")
	}

	g.Low.UseCage = true
	g.Low.CagePath = "/meshes/cage.obj"
	g.Low.OffsetU = -2
	doc = mustSerialize(t, rec, g)
	low = doc.Find("LowPolyModel/Mesh")
	if got := attr(t, low, "UseCage"); got != "true" {
		t.Errorf("UseCage = %s", got)
	}
	if got := attr(t, low, "CageFile"); got != "/meshes/cage.obj" {
		t.Errorf("CageFile = %s", got)
	}
	if got := attr(t, low, "UOffset"); got != "-2" {
		t.Errorf("UOffset = %s", got)
	}
}

func TestSerializeDoesNotClamp(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	rec := bake.DefaultCavity()
	rec.Rays = 99999

	doc := mustSerialize(t, &rec, g)
	if got := attr(t, doc.Find("GenerateMaps"), "CavityRaysPerSample"); got != "99999" {
		t.Errorf("CavityRaysPerSample = %s, want the raw value", got)
	}
}

func TestSerializeErrors(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	if _, err := Serialize(nil, g); !errors.Is(err, ErrNoRecord) {
		t.Errorf("expected ErrNoRecord, got %v", err)
	}
}

func TestModeTableCoversRecords(t *testing.T) {
	for _, m := range bake.Modes() {
		block, ok := modeBlocks[m]
		if !ok {
			t.Errorf("no table row for %s", m)
			continue
		}

		// Every field of the record is written exactly once.
		written := make(map[string]int)
		for _, col := range block.Attrs {
			written[col.Key]++
		}
		for _, col := range block.Colors {
			written[col.Key]++
		}
		for _, f := range bake.Defaults(m).Fields() {
			if written[f.Key] != 1 {
				t.Errorf("%s.%s written %d times", m, f.Key, written[f.Key])
			}
		}
		for _, col := range block.Colors {
			f, ok := bake.Lookup(bake.Defaults(m), col.Key)
			if !ok || f.Kind != bake.KindColor {
				t.Errorf("%s color column %s is not a color field", m, col.Key)
			}
		}
	}
}

func TestWriteTo(t *testing.T) {
	g := bake.DefaultGlobals("/tmp/xn")
	doc := mustSerialize(t, bake.Defaults(bake.ModeDerivative), g)

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(out, "\n\t<HighPolyModel>") {
		t.Errorf("expected tab indentation, got:\n%s", out)
	}
	if !strings.Contains(out, `<DerivNMBackgroundColor R="128" G="128" B="0">`) {
		t.Errorf("missing derivative background, got:\n%s", out)
	}

	// The output must parse back as XML.
	var parsed struct {
		XMLName xml.Name `xml:"Settings"`
		Maps    struct {
			GenDerivNM string `xml:"GenDerivNM,attr"`
		} `xml:"GenerateMaps"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid XML: %v", err)
	}
	if parsed.Maps.GenDerivNM != "true" {
		t.Errorf("GenDerivNM = %q after parse", parsed.Maps.GenDerivNM)
	}
}

func TestElementSetKeepsPosition(t *testing.T) {
	e := NewElement("GenerateMaps")
	e.Set("A", "1")
	e.Set("GenNormals", "false")
	e.Set("B", "2")
	e.Set("GenNormals", "true")

	if len(e.Attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(e.Attrs))
	}
	if e.Attrs[1] != (Attr{"GenNormals", "true"}) {
		t.Errorf("expected GenNormals=true at index 1, got %v", e.Attrs[1])
	}
}
