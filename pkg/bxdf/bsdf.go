package bxdf

import (
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/quantity"
)

// WorldBSDFSample is a BSDF sample with the scattered direction mapped back
// to world space for the integrator.
type WorldBSDFSample struct {
	Wi         geom.Direction[geom.World]
	F          quantity.Rational
	InversePdf quantity.InversePdf
	Part       BxDFPart
}

// Valid reports whether the sample carries any contribution.
func (s WorldBSDFSample) Valid() bool { return s.InversePdf.Valid() }

// BSDF pairs a concrete scattering model with the shading frame of one
// surface interaction and exposes the model in world space. It is built once
// per shading point by the material system, consumed by the integrator, and
// discarded; it holds no heap state of its own.
type BSDF struct {
	frame geom.ShadingFrame
	model BxDF
}

// NewBSDF attaches a scattering model to a shading frame.
func NewBSDF(frame geom.ShadingFrame, model BxDF) BSDF {
	return BSDF{frame: frame, model: model}
}

// Part returns the model's classification flags.
func (b BSDF) Part() BxDFPart { return b.model.Part() }

// Frame returns the shading frame the BSDF operates in.
func (b BSDF) Frame() geom.ShadingFrame { return b.frame }

// Evaluate maps the direction pair into shading space and evaluates the
// model.
func (b BSDF) Evaluate(wo, wi geom.Direction[geom.World], mode TransportMode) quantity.Rational {
	return b.model.Evaluate(b.frame.ToLocal(wo), b.frame.ToLocal(wi), mode)
}

// Sample draws a scattered direction and maps it back to world space. A
// world wo that degenerates to zero in shading space yields an invalid
// sample.
func (b BSDF) Sample(sampler core.Sampler, wo geom.Direction[geom.World], mode TransportMode, dirs SampleDirections) WorldBSDFSample {
	woLocal := b.frame.ToLocal(wo)
	if geom.CosTheta(woLocal) == 0 {
		s := InvalidSample()
		return WorldBSDFSample{F: s.F, InversePdf: s.InversePdf, Part: s.Part}
	}
	s := b.model.Sample(sampler, woLocal, mode, dirs)
	return WorldBSDFSample{
		Wi:         b.frame.ToWorld(s.Wi),
		F:          s.F,
		InversePdf: s.InversePdf,
		Part:       s.Part,
	}
}

// InversePdf evaluates the sampling density's reciprocal for a specific
// world-space direction pair.
func (b BSDF) InversePdf(wo, wi geom.Direction[geom.World], mode TransportMode, dirs SampleDirections) quantity.InversePdf {
	return b.model.InversePdf(b.frame.ToLocal(wo), b.frame.ToLocal(wi), mode, dirs)
}
