package xnconf

import "github.com/Faultbox/xnbake/pkg/bake"

// column maps a record field key to an xNormal name.
type column struct {
	Key  string
	Name string
}

// modeBlock is the GenerateMaps fragment written for one bake mode.
type modeBlock struct {
	Marker string   // attribute set to "true" to select the map
	Attrs  []column // field key -> attribute name, in output order
	Colors []column // color field key -> element name, in output order
}

// modeBlocks is the complete mode table, one row per bake mode.
var modeBlocks = map[bake.Mode]modeBlock{
	bake.ModeNormal: {
		Marker: "GenNormals",
		Attrs: []column{
			{"swizzle_x", "SwizzleX"},
			{"swizzle_y", "SwizzleY"},
			{"swizzle_z", "SwizzleZ"},
			{"tangentspace", "TangentSpace"},
		},
		Colors: []column{{"bgcolor", "NMBackgroundColor"}},
	},
	bake.ModeHeight: {
		Marker: "GenHeights",
		Attrs: []column{
			{"normalization", "HeightTonemap"},
			{"min", "HeightMinVal"},
			{"max", "HeightMaxVal"},
		},
		Colors: []column{{"bgcolor", "HMBackgroundColor"}},
	},
	bake.ModeAmbientOcclusion: {
		Marker: "GenAO",
		Attrs: []column{
			{"rays", "AORaysPerSample"},
			{"distribution", "AODistribution"},
			{"spread_angle", "AOConeAngle"},
			{"bias", "AOBias"},
			{"allow_full_occlusion", "AOAllowPureOccluded"},
			{"limit_ray_distance", "AOLimitRayDistance"},
			{"atten1", "AOAttenConstant"},
			{"atten2", "AOAttenLinear"},
			{"atten3", "AOAttenCuadratic"},
			{"jitter", "AOJitter"},
			{"ignore_backfaces", "AOIgnoreBackfaceHits"},
		},
		Colors: []column{
			{"bgcolor", "AOBackgroundColor"},
			{"color_occluded", "AOOccludedColor"},
			{"color_unoccluded", "AOUnoccludedColor"},
		},
	},
	bake.ModeBentNormal: {
		Marker: "GenBent",
		Attrs: []column{
			{"rays", "BentRaysPerSample"},
			{"spread_angle", "BentConeAngle"},
			{"bias", "BentBias"},
			{"tangentspace", "BentTangentSpace"},
			{"limit_ray_distance", "BentLimitRayDistance"},
			{"jitter", "BentJitter"},
			{"distribution", "BentDistribution"},
			{"swizzle_x", "BentSwizzleX"},
			{"swizzle_y", "BentSwizzleY"},
			{"swizzle_z", "BentSwizzleZ"},
		},
		Colors: []column{{"bgcolor", "BentBackgroundColor"}},
	},
	bake.ModePRTpn: {
		Marker: "GenPRT",
		Attrs: []column{
			{"rays", "PRTRaysPerSample"},
			{"spread_angle", "PRTConeAngle"},
			{"bias", "PRTBias"},
			{"limit_ray_distance", "PRTLimitRayDistance"},
			{"jitter", "PRTJitter"},
			{"prt_color_normalize", "PRTNormalize"},
			{"threshold", "PRTThreshold"},
		},
		Colors: []column{{"bgcolor", "PRTBackgroundColor"}},
	},
	bake.ModeConvexity: {
		Marker: "GenConvexity",
		Attrs:  []column{{"convexity_scale", "ConvexityScale"}},
		Colors: []column{{"bgcolor", "ConvexityBackgroundColor"}},
	},
	bake.ModeThickness: {
		Marker: "GenThickness",
	},
	bake.ModeProximity: {
		Marker: "GenProximity",
		Attrs: []column{
			{"rays", "ProximityRaysPerSample"},
			{"spread_angle", "ProximityConeAngle"},
			{"limit_ray_distance", "ProximityLimitRayDistance"},
		},
		Colors: []column{{"bgcolor", "ProximityBackgroundColor"}},
	},
	bake.ModeCavity: {
		Marker: "GenCavity",
		Attrs: []column{
			{"rays", "CavityRaysPerSample"},
			{"jitter", "CavityJitter"},
			{"radius", "CavitySearchRadius"},
			{"contrast", "CavityContrast"},
			{"steps", "CavitySteps"},
		},
		Colors: []column{{"bgcolor", "CavityBackgroundColor"}},
	},
	bake.ModeWireframeRayFails: {
		Marker: "GenWireRays",
		Attrs: []column{
			{"render_ray_fails", "RenderRayFails"},
			{"render_wireframe", "RenderWireframe"},
		},
		Colors: []column{
			{"color_wire", "RenderWireframeCol"},
			{"color_cw", "RenderCWCol"},
			{"color_seam", "RenderSeamCol"},
			{"color_rayfail", "RenderRayFailsCol"},
			{"bgcolor", "RenderWireframeBackgroundColor"},
		},
	},
	bake.ModeDirection: {
		Marker: "GenDirections",
		Attrs: []column{
			{"tangentspace", "DirectionsTS"},
			{"swizzle_x", "DirectionsSwizzleX"},
			{"swizzle_y", "DirectionsSwizzleY"},
			{"swizzle_z", "DirectionsSwizzleZ"},
			{"normalization", "DirectionsTonemap"},
			{"min", "DirectionsMinVal"},
			{"max", "DirectionsMaxVal"},
		},
		Colors: []column{{"bgcolor", "VDMBackgroundColor"}},
	},
	bake.ModeRadiosityNormal: {
		Marker: "GenRadiosityNormals",
		Attrs: []column{
			{"rays", "RadiosityNormalsRaysPerSample"},
			{"distribution", "RadiosityNormalsDistribution"},
			{"spread_angle", "RadiosityNormalsConeAngle"},
			{"bias", "RadiosityNormalsBias"},
			{"limit_ray_distance", "RadiosityNormalsLimitRayDistance"},
			{"atten1", "RadiosityNormalsAttenConstant"},
			{"atten2", "RadiosityNormalsAttenLinear"},
			{"atten3", "RadiosityNormalsAttenCuadratic"},
			{"jitter", "RadiosityNormalsJitter"},
			{"contrast", "RadiosityNormalsContrast"},
			{"encode_occlusion", "RadiosityNormalsEncodeAO"},
			{"coordinate_system", "RadiosityNormalsCoordSys"},
			{"allow_full_occlusion", "RadiosityNormalsAllowPureOcclusion"},
		},
		Colors: []column{{"bgcolor", "RadNMBackgroundColor"}},
	},
	bake.ModeVertexColor: {
		Marker: "BakeHighpolyVCols",
		Colors: []column{{"bgcolor", "BakeHighpolyVColsBackgroundCol"}},
	},
	bake.ModeCurvature: {
		Marker: "GenCurv",
		Attrs: []column{
			{"rays", "CurvRaysPerSample"},
			{"bias", "CurvBias"},
			{"spread_angle", "CurvConeAngle"},
			{"jitter", "CurvJitter"},
			{"search_distance", "CurvSearchDistance"},
			{"tone_mapping", "CurvTonemap"},
			{"distribution", "CurvDistribution"},
			{"algorithm", "CurvAlgorithm"},
			{"smoothing", "CurvSmoothing"},
		},
		Colors: []column{{"bgcolor", "CurvBackgroundColor"}},
	},
	bake.ModeDerivative: {
		Marker: "GenDerivNM",
		Colors: []column{{"bgcolor", "DerivNMBackgroundColor"}},
	},
}

// Marker returns the GenerateMaps attribute that selects mode.
func Marker(mode bake.Mode) string {
	return modeBlocks[mode].Marker
}
