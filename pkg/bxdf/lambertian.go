package bxdf

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/quantity"
)

// Lambertian is the ideal diffuse reflector: constant reflectance/π over the
// hemisphere of wo. It is exactly importance-sampled — f·inversePdf·cosθ is
// the reflectance — which makes it the reference case every other model's
// verification is checked against.
type Lambertian struct {
	Reflectance quantity.Rational
}

// NewLambertian creates an ideal diffuse reflector.
func NewLambertian(reflectance quantity.Rational) Lambertian {
	return Lambertian{Reflectance: reflectance}
}

// Part implements BxDF.
func (l Lambertian) Part() BxDFPart {
	return PartDiffuseReflection
}

// Evaluate implements BxDF. It is zero when wo and wi are in opposite
// hemispheres.
func (l Lambertian) Evaluate(wo, wi Direction, _ TransportMode) quantity.Rational {
	if !geom.SameHemisphere(wo, wi) {
		return quantity.ZeroRational()
	}
	return l.Reflectance.Scale(1 / math.Pi)
}

// Sample implements BxDF with cosine-weighted hemisphere sampling, mirrored
// into wo's hemisphere.
func (l Lambertian) Sample(sampler core.Sampler, wo Direction, mode TransportMode, dirs SampleDirections) BSDFSample {
	if !dirs.Has(SampleReflection) {
		return InvalidSample()
	}
	wi := geom.DirectionFromVec3[geom.Shading](core.SampleCosineHemisphere(sampler.Get2D()))
	if geom.CosTheta(wo) < 0 {
		wi = wi.FlipZ()
	}
	return BSDFSample{
		Wi:         wi,
		F:          quantity.ImportanceSampled(quantity.KindBSDF, l.Evaluate(wo, wi, mode)),
		InversePdf: cosineHemisphereInversePdf(geom.AbsCosTheta(wi)),
		Part:       PartDiffuseReflection,
	}
}

// InversePdf implements BxDF.
func (l Lambertian) InversePdf(wo, wi Direction, _ TransportMode, dirs SampleDirections) quantity.InversePdf {
	if !dirs.Has(SampleReflection) || !geom.SameHemisphere(wo, wi) {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	return cosineHemisphereInversePdf(geom.AbsCosTheta(wi))
}
