// Package microfacet implements the Trowbridge-Reitz (GGX) microfacet
// distribution with Smith shadowing-masking and Heitz visible-normal
// sampling. All directions are in shading space (+Z is the macro normal).
package microfacet

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
)

type direction = geom.Direction[geom.Shading]

// Distribution is a Trowbridge-Reitz normal distribution with anisotropic
// roughness. It carries no per-hit state and is cheap to construct per call.
type Distribution struct {
	AlphaX, AlphaY float64
}

// New creates a distribution with the given anisotropic alpha parameters.
func New(alphaX, alphaY float64) Distribution {
	return Distribution{AlphaX: alphaX, AlphaY: alphaY}
}

// RoughnessToAlpha remaps artist-facing roughness in [0,1] to the
// distribution's native alpha parameter.
func RoughnessToAlpha(roughness float64) float64 {
	return math.Sqrt(roughness)
}

// D returns the differential area of microfacets oriented along wm.
func (d Distribution) D(wm direction) float64 {
	tan2Theta := geom.Tan2Theta(wm)
	if math.IsInf(tan2Theta, 1) {
		return 0
	}
	cos4Theta := sqr(geom.Cos2Theta(wm))
	if cos4Theta < 1e-16 {
		// alphaX*alphaY*cos4Theta underflows at grazing angles
		return 0
	}
	e := tan2Theta * (sqr(geom.CosPhi(wm)/d.AlphaX) + sqr(geom.SinPhi(wm)/d.AlphaY))
	return 1 / (math.Pi * d.AlphaX * d.AlphaY * cos4Theta * sqr(1+e))
}

// EffectivelySmooth reports whether the distribution is so sharp that the
// caller should switch to a pure-specular delta path instead of dividing by
// a near-zero density.
func (d Distribution) EffectivelySmooth() bool {
	return math.Max(d.AlphaX, d.AlphaY) < 1e-3
}

// Lambda is the Smith auxiliary function: the ratio of invisible to visible
// microfacet area seen from w.
func (d Distribution) Lambda(w direction) float64 {
	tan2Theta := geom.Tan2Theta(w)
	if math.IsInf(tan2Theta, 1) {
		return 0
	}
	alpha2 := sqr(geom.CosPhi(w)*d.AlphaX) + sqr(geom.SinPhi(w)*d.AlphaY)
	return (math.Sqrt(1+alpha2*tan2Theta) - 1) / 2
}

// G1 is the Smith masking function for a single direction.
func (d Distribution) G1(w direction) float64 {
	return 1 / (1 + d.Lambda(w))
}

// G is the Smith shadowing-masking function for a direction pair.
func (d Distribution) G(wo, wi direction) float64 {
	return 1 / (1 + d.Lambda(wo) + d.Lambda(wi))
}

// VisibleD is the density of visible normals: the distribution restricted to
// facets visible from w. This, not D itself, is the importance-sampling
// target; sampling raw D wastes samples on normals with zero contribution at
// grazing angles.
func (d Distribution) VisibleD(w, wm direction) float64 {
	cosTheta := geom.AbsCosTheta(w)
	if cosTheta == 0 {
		return 0
	}
	return d.G1(w) / cosTheta * d.D(wm) * w.AbsDot(wm)
}

// PDF returns the solid-angle density that SampleWm draws wm from.
func (d Distribution) PDF(w, wm direction) float64 {
	return d.VisibleD(w, wm)
}

// SampleWm draws a microfacet normal proportional to the visible-normal
// distribution (Heitz 2018): warp w into the unit-roughness hemisphere,
// sample the projected disk, and map the result back through the roughness
// scale.
func (d Distribution) SampleWm(w direction, u core.Vec2) direction {
	raw := w.Raw()
	wh := core.NewVec3(d.AlphaX*raw.X, d.AlphaY*raw.Y, raw.Z).Normalize()
	if wh.Z < 0 {
		wh = wh.Negate()
	}

	tangent := core.NewVec3(1, 0, 0)
	if wh.Z < 0.99999 {
		tangent = core.NewVec3(0, 0, 1).Cross(wh).Normalize()
	}
	bitangent := wh.Cross(tangent)

	p := core.SampleUniformDisk(u)
	h := math.Sqrt(1 - p.X*p.X)
	py := lerp((1+wh.Z)/2, h, p.Y)
	pz := math.Sqrt(math.Max(0, 1-p.X*p.X-py*py))

	nh := tangent.Multiply(p.X).Add(bitangent.Multiply(py)).Add(wh.Multiply(pz))
	return geom.DirectionFromVec3[geom.Shading](core.NewVec3(
		d.AlphaX*nh.X,
		d.AlphaY*nh.Y,
		math.Max(1e-6, nh.Z),
	))
}

// Regularize clamps a near-delta distribution up into [0.1, 0.3]. Adapters
// that cannot tolerate near-specular lobes (light-tracing passes) accept the
// resulting bias in exchange for bounded variance. The microfacet
// transmission formulas of Walter et al. remain the ground truth for the
// rough paths; this clamp only widens the lobe.
func (d *Distribution) Regularize() {
	if d.AlphaX < 0.3 {
		d.AlphaX = clamp(2*d.AlphaX, 0.1, 0.3)
	}
	if d.AlphaY < 0.3 {
		d.AlphaY = clamp(2*d.AlphaY, 0.1, 0.3)
	}
}

func sqr(x float64) float64 { return x * x }

func lerp(t, a, b float64) float64 { return (1-t)*a + t*b }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
