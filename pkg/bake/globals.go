package bake

import "path/filepath"

// Default mesh and output file names inside the mesh directory.
const (
	LowMeshName  = "low.obj"
	HighMeshName = "high.obj"
	CageMeshName = "cage.obj"
	OutputName   = "out.tga"
)

// LowMesh holds the low resolution (target) mesh options.
type LowMesh struct {
	Path     string  `yaml:"path" json:"path"`
	Scale    float64 `yaml:"scale" json:"scale"`
	Normals  string  `yaml:"normals" json:"normals"`
	OffsetU  int     `yaml:"offset_u" json:"offset_u"`
	OffsetV  int     `yaml:"offset_v" json:"offset_v"`
	MatchUVs bool    `yaml:"match_uvs" json:"match_uvs"`
	UseCage  bool    `yaml:"use_cage" json:"use_cage"`
	CagePath string  `yaml:"cage_path" json:"cage_path"`
}

// HighMesh holds the high resolution (source) mesh options.
type HighMesh struct {
	Path                 string  `yaml:"path" json:"path"`
	Scale                float64 `yaml:"scale" json:"scale"`
	Normals              string  `yaml:"normals" json:"normals"`
	IgnorePerVertexColor bool    `yaml:"ignore_per_vertex_color" json:"ignore_per_vertex_color"`
}

// Globals are the settings shared by every bake mode. Width, Height,
// BucketSize and AntiAliasing are kept as the exact tokens written to xNormal.
type Globals struct {
	Width            string   `yaml:"width" json:"width"`
	Height           string   `yaml:"height" json:"height"`
	Padding          int      `yaml:"padding" json:"padding"`
	BucketSize       string   `yaml:"bucket_size" json:"bucket_size"`
	AntiAliasing     string   `yaml:"anti_aliasing" json:"anti_aliasing"`
	ClosestHit       bool     `yaml:"use_closest_hit" json:"use_closest_hit"`
	DiscardBackFaces bool     `yaml:"discard_back_faces" json:"discard_back_faces"`
	Output           string   `yaml:"output" json:"output"`
	Low              LowMesh  `yaml:"low" json:"low"`
	High             HighMesh `yaml:"high" json:"high"`
}

// DefaultGlobals returns the default global settings with every mesh and the
// output image placed in meshDir.
func DefaultGlobals(meshDir string) Globals {
	return Globals{
		Width:            "512",
		Height:           "512",
		Padding:          16,
		BucketSize:       "32",
		AntiAliasing:     "1",
		ClosestHit:       true,
		DiscardBackFaces: true,
		Output:           filepath.Join(meshDir, OutputName),
		Low: LowMesh{
			Path:     filepath.Join(meshDir, LowMeshName),
			Scale:    1,
			Normals:  "UseExportedNormals",
			CagePath: filepath.Join(meshDir, CageMeshName),
		},
		High: HighMesh{
			Path:                 filepath.Join(meshDir, HighMeshName),
			Scale:                1,
			Normals:              "AverageNormals",
			IgnorePerVertexColor: true,
		},
	}
}

// Fields binds descriptors to the global settings. Mesh options are keyed
// "low.<name>" and "high.<name>".
func (g *Globals) Fields() []Field {
	return []Field{
		enumField("width", "Width", &g.Width, SizeTokens),
		enumField("height", "Height", &g.Height, SizeTokens),
		intField("padding", "Padding", &g.Padding, PaddingBounds),
		enumField("bucket_size", "Bucket Size", &g.BucketSize, BucketTokens),
		enumField("anti_aliasing", "Antialiasing", &g.AntiAliasing, AntiAliasTokens),
		boolField("use_closest_hit", "Closest hit if ray fails", &g.ClosestHit),
		boolField("discard_back_faces", "Discard back-faces hits", &g.DiscardBackFaces),
		stringField("output", "Output path", &g.Output),

		stringField("low.path", "Path to low mesh", &g.Low.Path),
		floatField("low.scale", "Scale", &g.Low.Scale, MeshScaleBounds),
		enumField("low.normals", "Smooth normals", &g.Low.Normals, SmoothingTokens),
		intField("low.offset_u", "U Offset", &g.Low.OffsetU, UnboundedInt),
		intField("low.offset_v", "V Offset", &g.Low.OffsetV, UnboundedInt),
		boolField("low.match_uvs", "Match UVs", &g.Low.MatchUVs),
		boolField("low.use_cage", "Use a cage Mesh", &g.Low.UseCage),
		stringField("low.cage_path", "Path to cage mesh", &g.Low.CagePath),

		stringField("high.path", "Path to high mesh", &g.High.Path),
		floatField("high.scale", "Scale", &g.High.Scale, MeshScaleBounds),
		enumField("high.normals", "Smooth normals", &g.High.Normals, SmoothingTokens),
		boolField("high.ignore_per_vertex_color", "Ignore per-vertex-color", &g.High.IgnorePerVertexColor),
	}
}

// Validate returns the keys of every global field whose value is out of
// bounds or not an allowed token.
func (g *Globals) Validate() []string {
	return violations(g.Fields())
}
