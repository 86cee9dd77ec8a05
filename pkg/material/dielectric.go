package material

import (
	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/microfacet"
)

// Dielectric is a transparent interface material like glass, smooth or
// rough, with anisotropic roughness textures.
type Dielectric struct {
	Eta            float64
	RoughnessU     ScalarSource
	RoughnessV     ScalarSource
	RemapRoughness bool
}

// NewDielectric creates an isotropic dielectric with uniform roughness.
// Roughness 0 yields the smooth delta interface.
func NewDielectric(eta, roughness float64) *Dielectric {
	return &Dielectric{
		Eta:            eta,
		RoughnessU:     NewSolidScalar(roughness),
		RoughnessV:     NewSolidScalar(roughness),
		RemapRoughness: true,
	}
}

// NewAnisotropicDielectric creates a dielectric with independent roughness
// along the two tangent axes.
func NewAnisotropicDielectric(eta float64, roughnessU, roughnessV ScalarSource, remap bool) *Dielectric {
	return &Dielectric{
		Eta:            eta,
		RoughnessU:     roughnessU,
		RoughnessV:     roughnessV,
		RemapRoughness: remap,
	}
}

// EvaluateBSDF implements Material.
func (d *Dielectric) EvaluateBSDF(hit SurfaceHit) bxdf.BSDF {
	alphaX := d.RoughnessU.EvaluateScalar(hit.UV)
	alphaY := d.RoughnessV.EvaluateScalar(hit.UV)
	if d.RemapRoughness {
		alphaX = microfacet.RoughnessToAlpha(alphaX)
		alphaY = microfacet.RoughnessToAlpha(alphaY)
	}
	model := bxdf.NewDielectric(d.Eta, microfacet.New(alphaX, alphaY))
	return bxdf.NewBSDF(hit.ShadingFrame(), model)
}
