package material

import (
	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/microfacet"
)

// Conductor is a metallic material parameterized by a complex refractive
// index eta + i·k and anisotropic roughness textures.
type Conductor struct {
	Eta            SpectrumSource
	K              SpectrumSource
	RoughnessU     ScalarSource
	RoughnessV     ScalarSource
	RemapRoughness bool
}

// NewConductor creates an isotropic conductor with uniform parameters.
// Roughness 0 yields a delta mirror.
func NewConductor(eta, k core.Vec3, roughness float64) *Conductor {
	return &Conductor{
		Eta:            NewSolidSpectrum(eta),
		K:              NewSolidSpectrum(k),
		RoughnessU:     NewSolidScalar(roughness),
		RoughnessV:     NewSolidScalar(roughness),
		RemapRoughness: true,
	}
}

// Copper returns the complex refractive index of copper averaged over the
// RGB channels.
func Copper() (eta, k core.Vec3) {
	return core.NewVec3(0.200, 0.924, 1.102), core.NewVec3(3.912, 2.448, 2.175)
}

// EvaluateBSDF implements Material.
func (c *Conductor) EvaluateBSDF(hit SurfaceHit) bxdf.BSDF {
	alphaX := c.RoughnessU.EvaluateScalar(hit.UV)
	alphaY := c.RoughnessV.EvaluateScalar(hit.UV)
	if c.RemapRoughness {
		alphaX = microfacet.RoughnessToAlpha(alphaX)
		alphaY = microfacet.RoughnessToAlpha(alphaY)
	}
	model := bxdf.NewConductor(c.Eta.Evaluate(hit.UV), c.K.Evaluate(hit.UV), microfacet.New(alphaX, alphaY))
	return bxdf.NewBSDF(hit.ShadingFrame(), model)
}
