// Package bake defines the xNormal bake modes, their typed parameter records
// and the global settings shared by every mode.
package bake

import (
	"errors"
	"fmt"
	"strings"
)

// Schema errors.
var (
	ErrUnknownMode  = errors.New("unknown bake mode")
	ErrUnknownField = errors.New("unknown field")
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidValue = errors.New("invalid value")
)

// Mode identifies one of the mutually exclusive map types xNormal can bake.
type Mode int

// Bake modes, in the order they are offered to the user.
const (
	ModeNormal Mode = iota
	ModeHeight
	ModeAmbientOcclusion
	ModeBentNormal
	ModePRTpn
	ModeConvexity
	ModeThickness
	ModeProximity
	ModeCavity
	ModeWireframeRayFails
	ModeDirection
	ModeRadiosityNormal
	ModeVertexColor
	ModeCurvature
	ModeDerivative

	modeCount
)

var modeTokens = [modeCount]string{
	ModeNormal:            "NORMAL",
	ModeHeight:            "HEIGHT",
	ModeAmbientOcclusion:  "AMBIENT_OCCLUSION",
	ModeBentNormal:        "BENT_NORMAL",
	ModePRTpn:             "PRTPN",
	ModeConvexity:         "CONVEXITY",
	ModeThickness:         "THICKNESS",
	ModeProximity:         "PROXIMITY",
	ModeCavity:            "CAVITY",
	ModeWireframeRayFails: "WIREFRAME_RAY_FAILS",
	ModeDirection:         "DIRECTION",
	ModeRadiosityNormal:   "RADIOSITY_NORMAL",
	ModeVertexColor:       "VERTEX_COLOR",
	ModeCurvature:         "CURVATURE",
	ModeDerivative:        "DERIVATIVE",
}

var modeLabels = [modeCount]string{
	ModeNormal:            "Normal Map",
	ModeHeight:            "Height Map",
	ModeAmbientOcclusion:  "Ambient Occlusion Map",
	ModeBentNormal:        "Bent normal Map",
	ModePRTpn:             "PRTpn Map",
	ModeConvexity:         "Convexity Map",
	ModeThickness:         "Thickness Map",
	ModeProximity:         "Proximity Map",
	ModeCavity:            "Cavity Map",
	ModeWireframeRayFails: "Wireframe and ray fails",
	ModeDirection:         "Direction Map",
	ModeRadiosityNormal:   "Radiosity Map",
	ModeVertexColor:       "Vertex Colors",
	ModeCurvature:         "Curvature Map",
	ModeDerivative:        "Derivate Map",
}

// Modes returns every bake mode in display order.
func Modes() []Mode {
	modes := make([]Mode, 0, modeCount)
	for m := Mode(0); m < modeCount; m++ {
		modes = append(modes, m)
	}
	return modes
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeCount
}

// String returns the mode token, e.g. "AMBIENT_OCCLUSION".
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeTokens[m]
}

// Label returns the human-readable mode name.
func (m Mode) Label() string {
	if !m.Valid() {
		return m.String()
	}
	return modeLabels[m]
}

// Key returns the lower-case token used in field paths and settings files.
func (m Mode) Key() string {
	return strings.ToLower(m.String())
}

// ParseMode accepts a mode token in any letter case.
func ParseMode(s string) (Mode, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	for m, t := range modeTokens {
		if t == token {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
