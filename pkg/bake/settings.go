package bake

import (
	"fmt"
	"strings"
)

// Settings is the complete, caller-owned bake configuration: the active mode,
// the global settings and one record per mode. Records are independent; a
// mode never reads another mode's record.
type Settings struct {
	Mode    Mode    `yaml:"mode" json:"mode"`
	Globals Globals `yaml:"globals" json:"globals"`

	Normal           NormalParams           `yaml:"normal" json:"normal"`
	Height           HeightParams           `yaml:"height" json:"height"`
	AmbientOcclusion AmbientOcclusionParams `yaml:"ambient_occlusion" json:"ambient_occlusion"`
	BentNormal       BentNormalParams       `yaml:"bent_normal" json:"bent_normal"`
	PRTpn            PRTpnParams            `yaml:"prtpn" json:"prtpn"`
	Convexity        ConvexityParams        `yaml:"convexity" json:"convexity"`
	Thickness        ThicknessParams        `yaml:"thickness" json:"thickness"`
	Proximity        ProximityParams        `yaml:"proximity" json:"proximity"`
	Cavity           CavityParams           `yaml:"cavity" json:"cavity"`
	Wireframe        WireframeParams        `yaml:"wireframe_ray_fails" json:"wireframe_ray_fails"`
	Direction        DirectionParams        `yaml:"direction" json:"direction"`
	RadiosityNormal  RadiosityNormalParams  `yaml:"radiosity_normal" json:"radiosity_normal"`
	VertexColor      VertexColorParams      `yaml:"vertex_color" json:"vertex_color"`
	Curvature        CurvatureParams        `yaml:"curvature" json:"curvature"`
	Derivative       DerivativeParams       `yaml:"derivative" json:"derivative"`
}

// DefaultSettings returns settings with the normal map active and every
// record at its defaults.
func DefaultSettings(meshDir string) *Settings {
	return &Settings{
		Mode:             ModeNormal,
		Globals:          DefaultGlobals(meshDir),
		Normal:           DefaultNormal(),
		Height:           DefaultHeight(),
		AmbientOcclusion: DefaultAmbientOcclusion(),
		BentNormal:       DefaultBentNormal(),
		PRTpn:            DefaultPRTpn(),
		Convexity:        DefaultConvexity(),
		Proximity:        DefaultProximity(),
		Cavity:           DefaultCavity(),
		Wireframe:        DefaultWireframe(),
		Direction:        DefaultDirection(),
		RadiosityNormal:  DefaultRadiosityNormal(),
		VertexColor:      DefaultVertexColor(),
		Curvature:        DefaultCurvature(),
		Derivative:       DefaultDerivative(),
	}
}

// Record returns the record owned by mode. The record aliases s, so edits
// through its fields are visible in s.
func (s *Settings) Record(mode Mode) Record {
	switch mode {
	case ModeNormal:
		return &s.Normal
	case ModeHeight:
		return &s.Height
	case ModeAmbientOcclusion:
		return &s.AmbientOcclusion
	case ModeBentNormal:
		return &s.BentNormal
	case ModePRTpn:
		return &s.PRTpn
	case ModeConvexity:
		return &s.Convexity
	case ModeThickness:
		return &s.Thickness
	case ModeProximity:
		return &s.Proximity
	case ModeCavity:
		return &s.Cavity
	case ModeWireframeRayFails:
		return &s.Wireframe
	case ModeDirection:
		return &s.Direction
	case ModeRadiosityNormal:
		return &s.RadiosityNormal
	case ModeVertexColor:
		return &s.VertexColor
	case ModeCurvature:
		return &s.Curvature
	case ModeDerivative:
		return &s.Derivative
	default:
		return nil
	}
}

// Active returns the record of the active mode.
func (s *Settings) Active() Record {
	return s.Record(s.Mode)
}

// Section returns the fields of "globals" or of a mode key ("cavity").
func (s *Settings) Section(name string) ([]Field, error) {
	if name == "globals" {
		return s.Globals.Fields(), nil
	}
	mode, err := ParseMode(name)
	if err != nil {
		return nil, err
	}
	return s.Record(mode).Fields(), nil
}

// Field resolves a dotted path: "globals.<key>" addresses a global setting,
// "<mode key>.<key>" (e.g. "cavity.rays") a mode parameter.
func (s *Settings) Field(path string) (Field, error) {
	section, key, ok := strings.Cut(path, ".")
	if !ok || key == "" {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	fields, err := s.Section(section)
	if err != nil {
		return Field{}, err
	}
	f, ok := lookup(fields, key)
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, path)
	}
	return f, nil
}

// Violations returns the dotted path of every invalid field across the
// globals and all fifteen records.
func (s *Settings) Violations() []string {
	var bad []string
	for _, key := range s.Globals.Validate() {
		bad = append(bad, "globals."+key)
	}
	for _, m := range Modes() {
		for _, key := range Validate(s.Record(m)) {
			bad = append(bad, m.Key()+"."+key)
		}
	}
	return bad
}
