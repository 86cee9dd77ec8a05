// Package material is the integrator-facing boundary of the shading core:
// it turns a surface interaction plus material parameters into a concrete
// BSDF. Texture evaluation stays behind narrow interfaces; image decoding
// and scene parsing live outside this core.
package material

import (
	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/quantity"
)

// SurfaceHit describes one surface interaction, produced by the
// intersection subsystem. The geometric normal is oriented into wo's
// hemisphere; the shading normal always points outward.
type SurfaceHit struct {
	Point           geom.Point[geom.World]
	Distance        quantity.Distance
	GeometricNormal geom.Normal[geom.World]
	ShadingNormal   geom.Normal[geom.World]
	Dpdu            geom.Direction[geom.World]
	UV              core.Vec2
	PrimitiveIndex  int
}

// ShadingFrame builds the change of basis for this interaction.
func (h SurfaceHit) ShadingFrame() geom.ShadingFrame {
	return geom.NewShadingFrame(h.ShadingNormal, h.Dpdu)
}

// SpectrumSource provides spatially-varying spectral parameters for
// materials.
type SpectrumSource interface {
	// Evaluate returns the spectral value at the given texture coordinate.
	Evaluate(uv core.Vec2) core.Vec3
}

// ScalarSource provides spatially-varying scalar parameters for materials.
type ScalarSource interface {
	// EvaluateScalar returns the scalar value at the given texture
	// coordinate.
	EvaluateScalar(uv core.Vec2) float64
}

// Material produces a BSDF for one surface interaction. The returned BSDF is
// owned by the caller and scoped to that interaction.
type Material interface {
	EvaluateBSDF(hit SurfaceHit) bxdf.BSDF
}

// SolidSpectrum is a uniform spectral source.
type SolidSpectrum struct {
	Value core.Vec3
}

// NewSolidSpectrum creates a uniform spectral source.
func NewSolidSpectrum(value core.Vec3) SolidSpectrum {
	return SolidSpectrum{Value: value}
}

// Evaluate returns the value regardless of texture coordinate.
func (s SolidSpectrum) Evaluate(core.Vec2) core.Vec3 { return s.Value }

// SolidScalar is a uniform scalar source.
type SolidScalar struct {
	Value float64
}

// NewSolidScalar creates a uniform scalar source.
func NewSolidScalar(value float64) SolidScalar {
	return SolidScalar{Value: value}
}

// EvaluateScalar returns the value regardless of texture coordinate.
func (s SolidScalar) EvaluateScalar(core.Vec2) float64 { return s.Value }
