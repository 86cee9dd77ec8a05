// Package bxdf implements the scattering-function models: the BxDF contract
// in shading space and the world-facing BSDF wrapper that owns the shading
// frame. All failure is absorbed as an invalid sample or density — zero
// contribution — never an error and never NaN.
package bxdf

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/quantity"
)

// Direction is a unit direction in shading space (+Z is the shading normal).
type Direction = geom.Direction[geom.Shading]

// TransportMode distinguishes radiance transport (camera paths) from
// importance transport (light-tracing paths). The two are not symmetric for
// refractive models.
type TransportMode uint8

const (
	// Radiance transport: the quantity flowing along the path is radiance.
	Radiance TransportMode = iota
	// Importance transport: the adjoint; used by light tracing.
	Importance
)

// BxDFPart classifies a scattering lobe along two orthogonal axes:
// transport type (reflection/transmission) and roughness class
// (diffuse/specular/glossy). A sampled event reports the exact subset of
// flags for the lobe it drew from.
type BxDFPart uint8

const (
	// PartReflection marks lobes scattering into wo's hemisphere.
	PartReflection BxDFPart = 1 << iota
	// PartTransmission marks lobes scattering through the surface.
	PartTransmission
	// PartDiffuse marks ideally rough lobes.
	PartDiffuse
	// PartSpecular marks delta lobes.
	PartSpecular
	// PartGlossy marks microfacet lobes between the two extremes.
	PartGlossy
)

// Common flag combinations.
const (
	PartDiffuseReflection    = PartDiffuse | PartReflection
	PartSpecularReflection   = PartSpecular | PartReflection
	PartSpecularTransmission = PartSpecular | PartTransmission
	PartGlossyReflection     = PartGlossy | PartReflection
	PartGlossyTransmission   = PartGlossy | PartTransmission
)

// Has reports whether the part shares any flag with the given set.
func (p BxDFPart) Has(flags BxDFPart) bool { return p&flags != 0 }

// SampleDirections restricts sampling to a subset of transport types. The
// integrator uses it to ask a model for, say, transmission only.
type SampleDirections uint8

const (
	// SampleReflection permits reflection lobes.
	SampleReflection SampleDirections = 1 << iota
	// SampleTransmission permits transmission lobes.
	SampleTransmission
)

// SampleAll permits every lobe.
const SampleAll = SampleReflection | SampleTransmission

// Has reports whether the mask permits the given transport type.
func (s SampleDirections) Has(o SampleDirections) bool { return s&o != 0 }

// BSDFSample is the result of drawing a scattered direction in shading
// space. Validity is defined by the inverse density: an invalid sample means
// "no contribution", not an error.
type BSDFSample struct {
	Wi         Direction
	F          quantity.Rational
	InversePdf quantity.InversePdf
	Part       BxDFPart
}

// Valid reports whether the sample carries any contribution.
func (s BSDFSample) Valid() bool { return s.InversePdf.Valid() }

// InvalidSample returns the no-contribution sample.
func InvalidSample() BSDFSample {
	return BSDFSample{InversePdf: quantity.InvalidInversePdf(quantity.KindBSDF)}
}

// BxDF is the scattering-function contract every concrete model satisfies.
// Implementations are value types, safe for concurrent use, and never
// allocate per shading sample.
type BxDF interface {
	// Part returns the classification flags of the lobes this model can
	// produce; it may depend on constructed parameters.
	Part() BxDFPart

	// Evaluate returns the scattered value per unit solid angle per unit
	// incident irradiance, zero outside the lobe's support. Delta lobes
	// evaluate to zero everywhere; they are only reachable through Sample.
	Evaluate(wo, wi Direction, mode TransportMode) quantity.Rational

	// Sample draws wi approximately proportional to Evaluate(wo,·)·|cosθ|.
	// It returns an invalid sample when the direction mask excludes every
	// lobe or the drawn configuration is geometrically degenerate.
	Sample(sampler core.Sampler, wo Direction, mode TransportMode, dirs SampleDirections) BSDFSample

	// InversePdf returns the reciprocal density Sample would have used to
	// produce this exact wi, for cross-strategy estimators.
	InversePdf(wo, wi Direction, mode TransportMode, dirs SampleDirections) quantity.InversePdf
}

// cosineHemisphereInversePdf is the reciprocal density of cosine-weighted
// hemisphere sampling, π/cosθ. Grazing directions are invalid rather than
// near-infinite.
func cosineHemisphereInversePdf(cosTheta float64) quantity.InversePdf {
	if cosTheta <= 1e-9 {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	return quantity.InversePdfFromRaw(quantity.KindBSDF, math.Pi/cosTheta)
}
