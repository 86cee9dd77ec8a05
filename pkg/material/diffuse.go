package material

import (
	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/quantity"
)

// Diffuse is an ideally rough material: a Lambertian lobe parameterized by a
// reflectance texture.
type Diffuse struct {
	Reflectance SpectrumSource
}

// NewDiffuse creates a diffuse material with a uniform reflectance.
func NewDiffuse(reflectance core.Vec3) *Diffuse {
	return &Diffuse{Reflectance: NewSolidSpectrum(reflectance)}
}

// NewTexturedDiffuse creates a diffuse material with a textured reflectance.
func NewTexturedDiffuse(reflectance SpectrumSource) *Diffuse {
	return &Diffuse{Reflectance: reflectance}
}

// EvaluateBSDF implements Material.
func (d *Diffuse) EvaluateBSDF(hit SurfaceHit) bxdf.BSDF {
	reflectance := quantity.RationalFromRaw(d.Reflectance.Evaluate(hit.UV))
	return bxdf.NewBSDF(hit.ShadingFrame(), bxdf.NewLambertian(reflectance))
}
