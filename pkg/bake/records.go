package bake

// Record is the parameter set owned by one bake mode. Each mode has its own
// concrete type; Fields binds descriptors to the record's storage.
type Record interface {
	Mode() Mode
	Fields() []Field
}

// NormalParams configures the tangent or object space normal map.
type NormalParams struct {
	Background   Color `yaml:"bgcolor" json:"bgcolor"`
	Swizzle      `yaml:",inline"`
	TangentSpace bool `yaml:"tangentspace" json:"tangentspace"`
}

func (p *NormalParams) Mode() Mode { return ModeNormal }

func (p *NormalParams) Fields() []Field {
	fields := []Field{backgroundField(&p.Background)}
	fields = append(fields, p.Swizzle.fields()...)
	return append(fields, tangentSpaceField(&p.TangentSpace))
}

// HeightParams configures the height map. Min and Max only matter with
// manual normalization.
type HeightParams struct {
	Background    Color   `yaml:"bgcolor" json:"bgcolor"`
	Min           float64 `yaml:"min" json:"min"`
	Max           float64 `yaml:"max" json:"max"`
	Normalization string  `yaml:"normalization" json:"normalization"`
}

func (p *HeightParams) Mode() Mode { return ModeHeight }

func (p *HeightParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		floatField("min", "Minimum", &p.Min, UnboundedFloat),
		floatField("max", "Maximum", &p.Max, UnboundedFloat),
		normalizationField(&p.Normalization),
	}
}

// AmbientOcclusionParams configures the ambient occlusion map.
type AmbientOcclusionParams struct {
	Background         Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays               int     `yaml:"rays" json:"rays"`
	Bias               float64 `yaml:"bias" json:"bias"`
	SpreadAngle        float64 `yaml:"spread_angle" json:"spread_angle"`
	LimitRayDistance   bool    `yaml:"limit_ray_distance" json:"limit_ray_distance"`
	Distribution       string  `yaml:"distribution" json:"distribution"`
	Jitter             bool    `yaml:"jitter" json:"jitter"`
	Occluded           Color   `yaml:"color_occluded" json:"color_occluded"`
	Unoccluded         Color   `yaml:"color_unoccluded" json:"color_unoccluded"`
	Attenuation        `yaml:",inline"`
	IgnoreBackfaces    bool `yaml:"ignore_backfaces" json:"ignore_backfaces"`
	AllowFullOcclusion bool `yaml:"allow_full_occlusion" json:"allow_full_occlusion"`
}

func (p *AmbientOcclusionParams) Mode() Mode { return ModeAmbientOcclusion }

func (p *AmbientOcclusionParams) Fields() []Field {
	fields := []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		biasField(&p.Bias),
		spreadAngleField(&p.SpreadAngle),
		limitRayDistanceField(&p.LimitRayDistance),
		distributionField(&p.Distribution),
		jitterField(&p.Jitter),
		colorField("color_occluded", "Occluded Color", &p.Occluded),
		colorField("color_unoccluded", "Unoccluded Color", &p.Unoccluded),
	}
	fields = append(fields, p.Attenuation.fields()...)
	return append(fields,
		boolField("ignore_backfaces", "Ignore backface hits", &p.IgnoreBackfaces),
		boolField("allow_full_occlusion", "Allow 100% occlusion", &p.AllowFullOcclusion),
	)
}

// BentNormalParams configures the bent normal map.
type BentNormalParams struct {
	Background       Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays             int     `yaml:"rays" json:"rays"`
	Bias             float64 `yaml:"bias" json:"bias"`
	SpreadAngle      float64 `yaml:"spread_angle" json:"spread_angle"`
	LimitRayDistance bool    `yaml:"limit_ray_distance" json:"limit_ray_distance"`
	Distribution     string  `yaml:"distribution" json:"distribution"`
	Jitter           bool    `yaml:"jitter" json:"jitter"`
	Swizzle          `yaml:",inline"`
	TangentSpace     bool `yaml:"tangentspace" json:"tangentspace"`
}

func (p *BentNormalParams) Mode() Mode { return ModeBentNormal }

func (p *BentNormalParams) Fields() []Field {
	fields := []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		biasField(&p.Bias),
		spreadAngleField(&p.SpreadAngle),
		limitRayDistanceField(&p.LimitRayDistance),
		distributionField(&p.Distribution),
		jitterField(&p.Jitter),
	}
	fields = append(fields, p.Swizzle.fields()...)
	return append(fields, tangentSpaceField(&p.TangentSpace))
}

// PRTpnParams configures the PRT-p/n map.
type PRTpnParams struct {
	Background       Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays             int     `yaml:"rays" json:"rays"`
	Bias             float64 `yaml:"bias" json:"bias"`
	SpreadAngle      float64 `yaml:"spread_angle" json:"spread_angle"`
	LimitRayDistance bool    `yaml:"limit_ray_distance" json:"limit_ray_distance"`
	Jitter           bool    `yaml:"jitter" json:"jitter"`
	ColorNormalize   bool    `yaml:"prt_color_normalize" json:"prt_color_normalize"`
	Threshold        float64 `yaml:"threshold" json:"threshold"`
}

func (p *PRTpnParams) Mode() Mode { return ModePRTpn }

func (p *PRTpnParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		biasField(&p.Bias),
		spreadAngleField(&p.SpreadAngle),
		limitRayDistanceField(&p.LimitRayDistance),
		jitterField(&p.Jitter),
		boolField("prt_color_normalize", "PRT Color Normalize", &p.ColorNormalize),
		floatField("threshold", "Threshold", &p.Threshold, ThresholdBounds),
	}
}

// ConvexityParams configures the convexity map.
type ConvexityParams struct {
	Background Color   `yaml:"bgcolor" json:"bgcolor"`
	Scale      float64 `yaml:"convexity_scale" json:"convexity_scale"`
}

func (p *ConvexityParams) Mode() Mode { return ModeConvexity }

func (p *ConvexityParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		floatField("convexity_scale", "Convexity Scale", &p.Scale, ConvexityBounds),
	}
}

// ThicknessParams is empty: xNormal takes no options for thickness maps.
type ThicknessParams struct{}

func (p *ThicknessParams) Mode() Mode { return ModeThickness }

func (p *ThicknessParams) Fields() []Field { return nil }

// ProximityParams configures the proximity map.
type ProximityParams struct {
	Background       Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays             int     `yaml:"rays" json:"rays"`
	SpreadAngle      float64 `yaml:"spread_angle" json:"spread_angle"`
	LimitRayDistance bool    `yaml:"limit_ray_distance" json:"limit_ray_distance"`
}

func (p *ProximityParams) Mode() Mode { return ModeProximity }

func (p *ProximityParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		spreadAngleField(&p.SpreadAngle),
		limitRayDistanceField(&p.LimitRayDistance),
	}
}

// CavityParams configures the cavity map.
type CavityParams struct {
	Background Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays       int     `yaml:"rays" json:"rays"`
	Jitter     bool    `yaml:"jitter" json:"jitter"`
	Radius     float64 `yaml:"radius" json:"radius"`
	Contrast   float64 `yaml:"contrast" json:"contrast"`
	Steps      int     `yaml:"steps" json:"steps"`
}

func (p *CavityParams) Mode() Mode { return ModeCavity }

func (p *CavityParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		jitterField(&p.Jitter),
		floatField("radius", "Radius", &p.Radius, RadiusBounds),
		floatField("contrast", "Contrast", &p.Contrast, CavityContrast),
		intField("steps", "Steps", &p.Steps, CavityStepsBounds),
	}
}

// WireframeParams configures the wireframe and ray fails visualization.
type WireframeParams struct {
	Background      Color `yaml:"bgcolor" json:"bgcolor"`
	RenderWireframe bool  `yaml:"render_wireframe" json:"render_wireframe"`
	Wire            Color `yaml:"color_wire" json:"color_wire"`
	CW              Color `yaml:"color_cw" json:"color_cw"`
	Seam            Color `yaml:"color_seam" json:"color_seam"`
	RenderRayFails  bool  `yaml:"render_ray_fails" json:"render_ray_fails"`
	RayFail         Color `yaml:"color_rayfail" json:"color_rayfail"`
}

func (p *WireframeParams) Mode() Mode { return ModeWireframeRayFails }

func (p *WireframeParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		boolField("render_wireframe", "Render wireframe", &p.RenderWireframe),
		colorField("color_wire", "Wire Color", &p.Wire),
		colorField("color_cw", "CW Color", &p.CW),
		colorField("color_seam", "Seam Color", &p.Seam),
		boolField("render_ray_fails", "Render ray fails", &p.RenderRayFails),
		colorField("color_rayfail", "Ray fail", &p.RayFail),
	}
}

// DirectionParams configures the direction map.
type DirectionParams struct {
	Background    Color `yaml:"bgcolor" json:"bgcolor"`
	Swizzle       `yaml:",inline"`
	TangentSpace  bool    `yaml:"tangentspace" json:"tangentspace"`
	Normalization string  `yaml:"normalization" json:"normalization"`
	Min           float64 `yaml:"min" json:"min"`
	Max           float64 `yaml:"max" json:"max"`
}

func (p *DirectionParams) Mode() Mode { return ModeDirection }

func (p *DirectionParams) Fields() []Field {
	fields := []Field{backgroundField(&p.Background)}
	fields = append(fields, p.Swizzle.fields()...)
	return append(fields,
		tangentSpaceField(&p.TangentSpace),
		normalizationField(&p.Normalization),
		floatField("min", "Minimum", &p.Min, UnboundedFloat),
		floatField("max", "Maximum", &p.Max, UnboundedFloat),
	)
}

// RadiosityNormalParams configures the radiosity normal map.
type RadiosityNormalParams struct {
	Background         Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays               int     `yaml:"rays" json:"rays"`
	EncodeOcclusion    bool    `yaml:"encode_occlusion" json:"encode_occlusion"`
	Bias               float64 `yaml:"bias" json:"bias"`
	SpreadAngle        float64 `yaml:"spread_angle" json:"spread_angle"`
	LimitRayDistance   bool    `yaml:"limit_ray_distance" json:"limit_ray_distance"`
	Jitter             bool    `yaml:"jitter" json:"jitter"`
	Distribution       string  `yaml:"distribution" json:"distribution"`
	Attenuation        `yaml:",inline"`
	CoordinateSystem   string  `yaml:"coordinate_system" json:"coordinate_system"`
	Contrast           float64 `yaml:"contrast" json:"contrast"`
	AllowFullOcclusion bool    `yaml:"allow_full_occlusion" json:"allow_full_occlusion"`
}

func (p *RadiosityNormalParams) Mode() Mode { return ModeRadiosityNormal }

func (p *RadiosityNormalParams) Fields() []Field {
	fields := []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		boolField("encode_occlusion", "Encode occlusion", &p.EncodeOcclusion),
		biasField(&p.Bias),
		spreadAngleField(&p.SpreadAngle),
		limitRayDistanceField(&p.LimitRayDistance),
		jitterField(&p.Jitter),
		distributionField(&p.Distribution),
	}
	fields = append(fields, p.Attenuation.fields()...)
	return append(fields,
		enumField("coordinate_system", "Coordinate System", &p.CoordinateSystem, CoordSysTokens),
		floatField("contrast", "Contrast", &p.Contrast, RadiosityContrast),
		boolField("allow_full_occlusion", "Allow pure occlusion", &p.AllowFullOcclusion),
	)
}

// VertexColorParams configures the high poly vertex color bake.
type VertexColorParams struct {
	Background Color `yaml:"bgcolor" json:"bgcolor"`
}

func (p *VertexColorParams) Mode() Mode { return ModeVertexColor }

func (p *VertexColorParams) Fields() []Field {
	return []Field{backgroundField(&p.Background)}
}

// CurvatureParams configures the curvature map.
type CurvatureParams struct {
	Background     Color   `yaml:"bgcolor" json:"bgcolor"`
	Rays           int     `yaml:"rays" json:"rays"`
	Jitter         bool    `yaml:"jitter" json:"jitter"`
	SpreadAngle    float64 `yaml:"spread_angle" json:"spread_angle"`
	Bias           float64 `yaml:"bias" json:"bias"`
	Distribution   string  `yaml:"distribution" json:"distribution"`
	Algorithm      string  `yaml:"algorithm" json:"algorithm"`
	SearchDistance float64 `yaml:"search_distance" json:"search_distance"`
	ToneMapping    string  `yaml:"tone_mapping" json:"tone_mapping"`
	Smoothing      bool    `yaml:"smoothing" json:"smoothing"`
}

func (p *CurvatureParams) Mode() Mode { return ModeCurvature }

func (p *CurvatureParams) Fields() []Field {
	return []Field{
		backgroundField(&p.Background),
		raysField(&p.Rays),
		jitterField(&p.Jitter),
		spreadAngleField(&p.SpreadAngle),
		biasField(&p.Bias),
		distributionField(&p.Distribution),
		enumField("algorithm", "Algorithm", &p.Algorithm, AlgorithmTokens),
		floatField("search_distance", "Search distance", &p.SearchDistance, SearchDistBounds),
		enumField("tone_mapping", "Tone mapping", &p.ToneMapping, ToneMappingTokens),
		boolField("smoothing", "Smoothing", &p.Smoothing),
	}
}

// DerivativeParams configures the derivative normal map.
type DerivativeParams struct {
	Background Color `yaml:"bgcolor" json:"bgcolor"`
}

func (p *DerivativeParams) Mode() Mode { return ModeDerivative }

func (p *DerivativeParams) Fields() []Field {
	return []Field{backgroundField(&p.Background)}
}
