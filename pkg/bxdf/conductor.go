package bxdf

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/microfacet"
	"github.com/photometric/go-shading/pkg/quantity"
)

// Conductor scatters at a metallic surface: reflection only, with the
// complex-index Fresnel term and the same microfacet distribution the
// dielectric uses. A smooth conductor is a delta mirror lobe.
type Conductor struct {
	Eta          core.Vec3
	K            core.Vec3
	Distribution microfacet.Distribution
}

// NewConductor creates a metallic reflection model from a complex
// refractive index eta + i·k.
func NewConductor(eta, k core.Vec3, distribution microfacet.Distribution) Conductor {
	return Conductor{Eta: eta, K: k, Distribution: distribution}
}

// Part implements BxDF.
func (c Conductor) Part() BxDFPart {
	if c.Distribution.EffectivelySmooth() {
		return PartSpecularReflection
	}
	return PartGlossyReflection
}

// Evaluate implements BxDF. The smooth configuration is a delta lobe and
// evaluates to zero.
func (c Conductor) Evaluate(wo, wi Direction, _ TransportMode) quantity.Rational {
	if c.Distribution.EffectivelySmooth() {
		return quantity.ZeroRational()
	}
	if !geom.SameHemisphere(wo, wi) {
		return quantity.ZeroRational()
	}
	cosThetaO := geom.AbsCosTheta(wo)
	cosThetaI := geom.AbsCosTheta(wi)
	if cosThetaO == 0 || cosThetaI == 0 {
		return quantity.ZeroRational()
	}
	wmVec := wi.Raw().Add(wo.Raw())
	if wmVec.LengthSquared() == 0 {
		return quantity.ZeroRational()
	}
	wm := geom.DirectionFromVec3[geom.Shading](wmVec)
	fresnel := FrConductor(wo.AbsDot(wm), c.Eta, c.K)
	mf := c.Distribution
	scale := mf.D(wm) * mf.G(wo, wi) / (4 * cosThetaO * cosThetaI)
	return quantity.RationalFromRaw(fresnel.Multiply(scale))
}

// Sample implements BxDF.
func (c Conductor) Sample(sampler core.Sampler, wo Direction, _ TransportMode, dirs SampleDirections) BSDFSample {
	if !dirs.Has(SampleReflection) {
		return InvalidSample()
	}
	if c.Distribution.EffectivelySmooth() {
		wi := wo.Negate().FlipZ() // mirror direction: (-x, -y, z)
		fresnel := FrConductor(geom.AbsCosTheta(wi), c.Eta, c.K)
		f := fresnel.Multiply(1 / geom.AbsCosTheta(wi))
		return BSDFSample{
			Wi:         wi,
			F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromRaw(f)),
			InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, 1),
			Part:       PartSpecularReflection,
		}
	}

	if geom.CosTheta(wo) == 0 {
		return InvalidSample()
	}
	mf := c.Distribution
	wm := mf.SampleWm(wo, sampler.Get2D())
	wi := Reflect(wo, wm)
	if !geom.SameHemisphere(wo, wi) {
		return InvalidSample()
	}
	pdf := mf.PDF(wo, wm) / math.Max(1e-9, 4*wo.AbsDot(wm))
	if pdf <= 0 {
		return InvalidSample()
	}
	cosThetaO := geom.AbsCosTheta(wo)
	cosThetaI := geom.AbsCosTheta(wi)
	fresnel := FrConductor(wo.AbsDot(wm), c.Eta, c.K)
	f := fresnel.Multiply(mf.D(wm) * mf.G(wo, wi) / (4 * cosThetaO * cosThetaI))
	return BSDFSample{
		Wi:         wi,
		F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromRaw(f)),
		InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, 1/pdf),
		Part:       PartGlossyReflection,
	}
}

// InversePdf implements BxDF.
func (c Conductor) InversePdf(wo, wi Direction, _ TransportMode, dirs SampleDirections) quantity.InversePdf {
	if !dirs.Has(SampleReflection) || c.Distribution.EffectivelySmooth() {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	if !geom.SameHemisphere(wo, wi) {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	wmVec := wi.Raw().Add(wo.Raw())
	if wmVec.LengthSquared() == 0 {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	wm := geom.DirectionFromVec3[geom.Shading](wmVec).FaceForward(upNormal())
	pdf := c.Distribution.PDF(wo, wm) / math.Max(1e-9, 4*wo.AbsDot(wm))
	if pdf <= 0 {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	return quantity.InversePdfFromRaw(quantity.KindBSDF, 1/pdf)
}
