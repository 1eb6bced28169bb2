package bake

// Shared bound tables and token sets used by several mode records.
var (
	RaysBounds        = Range(8, 8192)
	BiasBounds        = Range(0, 1).WithStep(0.00005, 5)
	SpreadAngleBounds = Range(0.5, 179.5).WithStep(1, 2)
	AttenBounds       = Range(0, 1000).WithStep(1, 5)
	ThresholdBounds   = Range(0, 1).WithStep(0, 5)
	ConvexityBounds   = Range(0, 1).WithStep(0, 3)
	RadiusBounds      = AtLeast(0).WithStep(0, 6)
	CavityContrast    = Range(0.001, 8).WithStep(0, 3)
	CavityStepsBounds = Range(4, 128)
	RadiosityContrast = Range(0.05, 50).WithStep(0, 5)
	SearchDistBounds  = Range(0, 10000000).WithStep(0, 5)
	UnboundedFloat    = Bounds{}.WithStep(0, 5)
	PaddingBounds     = Range(0, 128)
	MeshScaleBounds   = AtLeast(1).WithStep(0, 1)
	UnboundedInt      = Bounds{}
)

// Defaults shared by the helper-built fields.
const (
	DefaultRays          = 128
	DefaultBias          = 0.08
	DefaultCurvatureBias = 0.0001
	DefaultSpreadAngle   = 88.0
)

// Token sets.
var (
	SwizzleTokens       = []string{"X+", "X-", "Y+", "Y-", "Z+", "Z-"}
	DistributionTokens  = []string{"Uniform", "Cosine", "CosineSq"}
	NormalizationTokens = []string{"Manual", "Interactive", "Raw"}
	CoordSysTokens      = []string{"ALiB", "OpenGL", "Direct3D"}
	AlgorithmTokens     = []string{"Average", "Gaussian"}
	ToneMappingTokens   = []string{"3Col", "2Col", "Monocrome"}
	SmoothingTokens     = []string{"UseExportedNormals", "AverageNormals", "HardenNormals"}
	SizeTokens          = []string{"16", "32", "64", "128", "256", "512", "1024", "2048", "4096", "8192"}
	BucketTokens        = []string{"16", "32", "64", "128", "256", "512"}
	AntiAliasTokens     = []string{"1", "2", "4"}
)

// Swizzle is the per-axis remapping applied to encoded vectors.
type Swizzle struct {
	X string `yaml:"swizzle_x" json:"swizzle_x"`
	Y string `yaml:"swizzle_y" json:"swizzle_y"`
	Z string `yaml:"swizzle_z" json:"swizzle_z"`
}

// DefaultSwizzle maps every axis onto itself.
func DefaultSwizzle() Swizzle {
	return Swizzle{X: "X+", Y: "Y+", Z: "Z+"}
}

func (s *Swizzle) fields() []Field {
	return []Field{
		enumField("swizzle_x", "Swizzle X", &s.X, SwizzleTokens),
		enumField("swizzle_y", "Swizzle Y", &s.Y, SwizzleTokens),
		enumField("swizzle_z", "Swizzle Z", &s.Z, SwizzleTokens),
	}
}

// Attenuation holds the constant, linear and quadratic falloff terms.
type Attenuation struct {
	Constant  float64 `yaml:"atten1" json:"atten1"`
	Linear    float64 `yaml:"atten2" json:"atten2"`
	Quadratic float64 `yaml:"atten3" json:"atten3"`
}

// DefaultAttenuation disables distance falloff.
func DefaultAttenuation() Attenuation {
	return Attenuation{Constant: 1}
}

func (a *Attenuation) fields() []Field {
	return []Field{
		floatField("atten1", "Attenuation 1", &a.Constant, AttenBounds),
		floatField("atten2", "Attenuation 2", &a.Linear, AttenBounds),
		floatField("atten3", "Attenuation 3", &a.Quadratic, AttenBounds),
	}
}

func raysField(p *int) Field {
	return intField("rays", "Rays", p, RaysBounds)
}

func biasField(p *float64) Field {
	return floatField("bias", "Bias", p, BiasBounds)
}

func spreadAngleField(p *float64) Field {
	return floatField("spread_angle", "Spread angle", p, SpreadAngleBounds)
}

func limitRayDistanceField(p *bool) Field {
	return boolField("limit_ray_distance", "Limit ray distance", p)
}

func jitterField(p *bool) Field {
	return boolField("jitter", "Jitter", p)
}

func distributionField(p *string) Field {
	return enumField("distribution", "Distribution", p, DistributionTokens)
}

func tangentSpaceField(p *bool) Field {
	return boolField("tangentspace", "Tangent space", p)
}

func normalizationField(p *string) Field {
	return enumField("normalization", "Normalization", p, NormalizationTokens)
}

func backgroundField(p *Color) Field {
	return colorField("bgcolor", "Background Color", p)
}
