package bake

// Defaults returns a fresh record for mode with every field at its default.
// It returns nil for an unknown mode.
func Defaults(mode Mode) Record {
	switch mode {
	case ModeNormal:
		p := DefaultNormal()
		return &p
	case ModeHeight:
		p := DefaultHeight()
		return &p
	case ModeAmbientOcclusion:
		p := DefaultAmbientOcclusion()
		return &p
	case ModeBentNormal:
		p := DefaultBentNormal()
		return &p
	case ModePRTpn:
		p := DefaultPRTpn()
		return &p
	case ModeConvexity:
		p := DefaultConvexity()
		return &p
	case ModeThickness:
		return &ThicknessParams{}
	case ModeProximity:
		p := DefaultProximity()
		return &p
	case ModeCavity:
		p := DefaultCavity()
		return &p
	case ModeWireframeRayFails:
		p := DefaultWireframe()
		return &p
	case ModeDirection:
		p := DefaultDirection()
		return &p
	case ModeRadiosityNormal:
		p := DefaultRadiosityNormal()
		return &p
	case ModeVertexColor:
		p := DefaultVertexColor()
		return &p
	case ModeCurvature:
		p := DefaultCurvature()
		return &p
	case ModeDerivative:
		p := DefaultDerivative()
		return &p
	default:
		return nil
	}
}

func DefaultNormal() NormalParams {
	return NormalParams{
		Background:   RGB(0.5, 0.5, 1),
		Swizzle:      DefaultSwizzle(),
		TangentSpace: true,
	}
}

func DefaultHeight() HeightParams {
	return HeightParams{
		Background:    RGB(0, 0, 0),
		Min:           -10,
		Max:           10,
		Normalization: "Interactive",
	}
}

func DefaultAmbientOcclusion() AmbientOcclusionParams {
	return AmbientOcclusionParams{
		Background:         RGB(1, 1, 1),
		Rays:               DefaultRays,
		Bias:               DefaultBias,
		SpreadAngle:        162,
		Distribution:       "Uniform",
		Occluded:           RGB(0, 0, 0),
		Unoccluded:         RGB(1, 1, 1),
		Attenuation:        DefaultAttenuation(),
		AllowFullOcclusion: true,
	}
}

func DefaultBentNormal() BentNormalParams {
	return BentNormalParams{
		Background:   RGB(0.5, 0.5, 1),
		Rays:         DefaultRays,
		Bias:         DefaultBias,
		SpreadAngle:  162,
		Distribution: "Uniform",
		Swizzle:      DefaultSwizzle(),
	}
}

func DefaultPRTpn() PRTpnParams {
	return PRTpnParams{
		Rays:           DefaultRays,
		Bias:           DefaultBias,
		SpreadAngle:    179.5,
		ColorNormalize: true,
		Threshold:      0.005,
	}
}

func DefaultConvexity() ConvexityParams {
	return ConvexityParams{Background: RGB(1, 1, 1), Scale: 1}
}

func DefaultProximity() ProximityParams {
	return ProximityParams{
		Background:       RGB(1, 1, 1),
		Rays:             DefaultRays,
		SpreadAngle:      80,
		LimitRayDistance: true,
	}
}

func DefaultCavity() CavityParams {
	return CavityParams{
		Background: RGB(1, 1, 1),
		Rays:       DefaultRays,
		Radius:     0.5,
		Contrast:   1.25,
		Steps:      4,
	}
}

func DefaultWireframe() WireframeParams {
	return WireframeParams{
		RenderWireframe: true,
		Wire:            RGB(1, 1, 1),
		CW:              RGB(0, 0, 1),
		Seam:            RGB(0, 1, 0),
		RenderRayFails:  true,
		RayFail:         RGB(1, 0, 0),
	}
}

func DefaultDirection() DirectionParams {
	return DirectionParams{
		Swizzle:       DefaultSwizzle(),
		Normalization: "Interactive",
		Min:           -10,
		Max:           10,
	}
}

func DefaultRadiosityNormal() RadiosityNormalParams {
	return RadiosityNormalParams{
		Rays:             DefaultRays,
		EncodeOcclusion:  true,
		Bias:             DefaultBias,
		SpreadAngle:      162,
		Distribution:     "Uniform",
		Attenuation:      DefaultAttenuation(),
		CoordinateSystem: "ALiB",
		Contrast:         1,
	}
}

func DefaultVertexColor() VertexColorParams {
	return VertexColorParams{Background: RGB(1, 1, 1)}
}

func DefaultCurvature() CurvatureParams {
	return CurvatureParams{
		Rays:           DefaultRays,
		SpreadAngle:    162,
		Bias:           DefaultCurvatureBias,
		Distribution:   "Cosine",
		Algorithm:      "Average",
		SearchDistance: 1,
		ToneMapping:    "3Col",
		Smoothing:      true,
	}
}

func DefaultDerivative() DerivativeParams {
	return DerivativeParams{Background: RGB(0.5, 0.5, 0)}
}
