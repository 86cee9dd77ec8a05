package bxdf

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/microfacet"
	"github.com/photometric/go-shading/pkg/quantity"
)

// Dielectric scatters at a smooth or rough dielectric interface, combining
// Fresnel reflectance with the microfacet distribution for both reflection
// and transmission. Eta is the refractive index of the inside relative to
// the outside; the +Z side of shading space is outside.
//
// The rough transmission weight carries the half-vector Jacobian
// |wi·wm| / (wi·wm + wo·wm/η)², per Walter et al.; radiance-mode
// transmission additionally scales by 1/η² for radiance compression across
// the interface, and importance mode does not.
type Dielectric struct {
	Eta          float64
	Distribution microfacet.Distribution
}

// NewDielectric creates a dielectric interface model.
func NewDielectric(eta float64, distribution microfacet.Distribution) Dielectric {
	return Dielectric{Eta: eta, Distribution: distribution}
}

func (d Dielectric) isDelta() bool {
	return d.Eta == 1 || d.Distribution.EffectivelySmooth()
}

// Part implements BxDF. An index-matched interface transmits only.
func (d Dielectric) Part() BxDFPart {
	if d.Eta == 1 {
		return PartSpecularTransmission
	}
	if d.Distribution.EffectivelySmooth() {
		return PartSpecular | PartReflection | PartTransmission
	}
	return PartGlossy | PartReflection | PartTransmission
}

// halfVector reconstructs the microfacet normal that connects wo and wi,
// oriented into the upper hemisphere. It reports false for degenerate or
// backfacing configurations.
func (d Dielectric) halfVector(wo, wi Direction) (wm Direction, etap float64, reflect bool, ok bool) {
	cosThetaO := geom.CosTheta(wo)
	cosThetaI := geom.CosTheta(wi)
	reflect = cosThetaI*cosThetaO > 0
	etap = 1.0
	if !reflect {
		if cosThetaO > 0 {
			etap = d.Eta
		} else {
			etap = 1 / d.Eta
		}
	}
	wmVec := wi.Raw().Multiply(etap).Add(wo.Raw())
	if cosThetaI == 0 || cosThetaO == 0 || wmVec.LengthSquared() == 0 {
		return Direction{}, 0, false, false
	}
	wm = geom.DirectionFromVec3[geom.Shading](wmVec)
	if geom.CosTheta(wm) < 0 {
		wm = wm.Negate()
	}
	if wm.Dot(wi)*cosThetaI < 0 || wm.Dot(wo)*cosThetaO < 0 {
		return Direction{}, 0, false, false
	}
	return wm, etap, reflect, true
}

// Evaluate implements BxDF. Delta configurations evaluate to zero; they are
// only reachable through Sample.
func (d Dielectric) Evaluate(wo, wi Direction, mode TransportMode) quantity.Rational {
	if d.isDelta() {
		return quantity.ZeroRational()
	}
	wm, etap, reflect, ok := d.halfVector(wo, wi)
	if !ok {
		return quantity.ZeroRational()
	}
	cosThetaO := geom.CosTheta(wo)
	cosThetaI := geom.CosTheta(wi)
	mf := d.Distribution
	fresnel := FrDielectric(wo.Dot(wm), d.Eta)

	if reflect {
		f := mf.D(wm) * mf.G(wo, wi) * fresnel / math.Abs(4*cosThetaI*cosThetaO)
		return quantity.RationalFromScalar(f)
	}

	denom := sqr(wi.Dot(wm)+wo.Dot(wm)/etap) * cosThetaI * cosThetaO
	ft := mf.D(wm) * (1 - fresnel) * mf.G(wo, wi) * math.Abs(wi.Dot(wm)*wo.Dot(wm)/denom)
	if mode == Radiance {
		ft /= etap * etap
	}
	return quantity.RationalFromScalar(ft)
}

// Sample implements BxDF. The smooth path treats the interface as a discrete
// two-outcome distribution {reflect: R, transmit: 1−R}, renormalized by the
// direction mask; the rough path samples a visible half-vector and applies
// the same Fresnel split at wm.
func (d Dielectric) Sample(sampler core.Sampler, wo Direction, mode TransportMode, dirs SampleDirections) BSDFSample {
	if d.isDelta() {
		return d.sampleSmooth(sampler, wo, mode, dirs)
	}
	return d.sampleRough(sampler, wo, mode, dirs)
}

func (d Dielectric) sampleSmooth(sampler core.Sampler, wo Direction, mode TransportMode, dirs SampleDirections) BSDFSample {
	reflectance := FrDielectric(geom.CosTheta(wo), d.Eta)
	pr, pt := reflectance, 1-reflectance
	if !dirs.Has(SampleReflection) {
		pr = 0
	}
	if !dirs.Has(SampleTransmission) {
		pt = 0
	}
	if pr == 0 && pt == 0 {
		return InvalidSample()
	}

	if sampler.Get1D() < pr/(pr+pt) {
		wi := wo.Negate().FlipZ() // mirror direction: (-x, -y, z)
		ft := reflectance / geom.AbsCosTheta(wi)
		return BSDFSample{
			Wi:         wi,
			F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromScalar(ft)),
			InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, (pr+pt)/pr),
			Part:       PartSpecularReflection,
		}
	}

	wi, etap, ok := Refract(wo, upNormal(), d.Eta)
	if !ok || wi.IsZero() {
		return InvalidSample()
	}
	ft := (1 - reflectance) / geom.AbsCosTheta(wi)
	if mode == Radiance {
		ft /= etap * etap
	}
	return BSDFSample{
		Wi:         wi,
		F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromScalar(ft)),
		InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, (pr+pt)/pt),
		Part:       PartSpecularTransmission,
	}
}

func (d Dielectric) sampleRough(sampler core.Sampler, wo Direction, mode TransportMode, dirs SampleDirections) BSDFSample {
	mf := d.Distribution
	wm := mf.SampleWm(wo, sampler.Get2D())
	reflectance := FrDielectric(wo.Dot(wm), d.Eta)
	pr, pt := reflectance, 1-reflectance
	if !dirs.Has(SampleReflection) {
		pr = 0
	}
	if !dirs.Has(SampleTransmission) {
		pt = 0
	}
	if pr == 0 && pt == 0 {
		return InvalidSample()
	}

	if sampler.Get1D() < pr/(pr+pt) {
		wi := Reflect(wo, wm)
		if !geom.SameHemisphere(wo, wi) {
			return InvalidSample()
		}
		pdf := mf.PDF(wo, wm) / math.Max(1e-9, 4*wo.AbsDot(wm)) * pr / (pr + pt)
		if pdf <= 0 {
			return InvalidSample()
		}
		ft := mf.D(wm) * mf.G(wo, wi) * reflectance / (4 * geom.CosTheta(wi) * geom.CosTheta(wo))
		return BSDFSample{
			Wi:         wi,
			F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromScalar(ft)),
			InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, 1/pdf),
			Part:       PartGlossyReflection,
		}
	}

	wi, etap, ok := Refract(wo, wm, d.Eta)
	if !ok || geom.SameHemisphere(wo, wi) || geom.CosTheta(wi) == 0 || wi.IsZero() {
		return InvalidSample()
	}

	// dwm/dwi is the half-vector Jacobian for transmission
	denom := sqr(wi.Dot(wm) + wo.Dot(wm)/etap)
	dwmDwi := wi.AbsDot(wm) / denom
	pdf := mf.PDF(wo, wm) * dwmDwi * pt / (pr + pt)
	if pdf <= 0 {
		return InvalidSample()
	}

	ft := (1 - reflectance) * mf.D(wm) * mf.G(wo, wi) *
		math.Abs(wi.Dot(wm)*wo.Dot(wm)/(geom.CosTheta(wi)*geom.CosTheta(wo)*denom))
	if mode == Radiance {
		ft /= etap * etap
	}
	return BSDFSample{
		Wi:         wi,
		F:          quantity.ImportanceSampled(quantity.KindBSDF, quantity.RationalFromScalar(ft)),
		InversePdf: quantity.InversePdfFromRaw(quantity.KindBSDF, 1/pdf),
		Part:       PartGlossyTransmission,
	}
}

// InversePdf implements BxDF: the density Sample would have used to reach
// this exact wi. Delta configurations have no density.
func (d Dielectric) InversePdf(wo, wi Direction, _ TransportMode, dirs SampleDirections) quantity.InversePdf {
	if d.isDelta() {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	wm, etap, reflect, ok := d.halfVector(wo, wi)
	if !ok {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}

	reflectance := FrDielectric(wo.Dot(wm), d.Eta)
	pr, pt := reflectance, 1-reflectance
	if !dirs.Has(SampleReflection) {
		pr = 0
	}
	if !dirs.Has(SampleTransmission) {
		pt = 0
	}
	if pr == 0 && pt == 0 {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}

	mf := d.Distribution
	var pdf float64
	if reflect {
		pdf = mf.PDF(wo, wm) / math.Max(1e-9, 4*wo.AbsDot(wm)) * pr / (pr + pt)
	} else {
		denom := sqr(wi.Dot(wm) + wo.Dot(wm)/etap)
		dwmDwi := wi.AbsDot(wm) / denom
		pdf = mf.PDF(wo, wm) * dwmDwi * pt / (pr + pt)
	}
	if pdf <= 0 {
		return quantity.InvalidInversePdf(quantity.KindBSDF)
	}
	return quantity.InversePdfFromRaw(quantity.KindBSDF, 1/pdf)
}

func upNormal() Direction {
	return geom.DirectionFromVec3[geom.Shading](core.NewVec3(0, 0, 1))
}

func sqr(x float64) float64 { return x * x }
