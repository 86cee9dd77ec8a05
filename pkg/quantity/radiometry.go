package quantity

import "github.com/photometric/go-shading/pkg/core"

// Spectral radiometric quantities. The spectral payload is an RGB triple
// (core.Vec3); the unit ladder Radiance → Irradiance → Power → Energy is the
// only multiplication chain offered.

// Radiance is spectral radiance, W/(sr·m²). It carries an importance tag set
// recording which sampling strategies produced it; see Kind.
type Radiance struct {
	s    core.Vec3
	tags Kind
}

// RadianceFromRaw wraps an RGB value as untagged radiance.
func RadianceFromRaw(s core.Vec3) Radiance { return Radiance{s: s} }

// Raw returns the RGB payload.
func (r Radiance) Raw() core.Vec3 { return r.s }

// Tags returns the importance tag set.
func (r Radiance) Tags() Kind { return r.tags }

// Add returns the sum of two radiance values. Both operands must carry the
// same tag set; adding values produced under different sampling strategies
// is a bookkeeping error.
func (r Radiance) Add(o Radiance) Radiance {
	if r.tags != o.tags {
		panic("quantity: adding radiance values with different importance tags")
	}
	return Radiance{s: r.s.Add(o.s), tags: r.tags}
}

// Scale returns the radiance scaled by a dimensionless factor.
func (r Radiance) Scale(x float64) Radiance { return Radiance{s: r.s.Multiply(x), tags: r.tags} }

// MulSolidAngle integrates the radiance over a solid angle, yielding
// irradiance.
func (r Radiance) MulSolidAngle(sa SolidAngle) Irradiance {
	return Irradiance{s: r.s.Multiply(sa.Raw())}
}

// MulRational modulates radiance by a scattering ratio. The importance tag
// sets must be disjoint: a density divided out once may not be divided out
// again.
func (r Radiance) MulRational(f Rational) Radiance {
	if r.tags&f.tags != 0 {
		panic("quantity: importance tag applied twice in radiance product")
	}
	return Radiance{s: r.s.MultiplyVec(f.s), tags: r.tags | f.tags}
}

// Irradiance is spectral irradiance, W/m².
type Irradiance struct {
	s core.Vec3
}

// IrradianceFromRaw wraps an RGB value as irradiance.
func IrradianceFromRaw(s core.Vec3) Irradiance { return Irradiance{s: s} }

// Raw returns the RGB payload.
func (i Irradiance) Raw() core.Vec3 { return i.s }

// Add returns the sum of two irradiance values.
func (i Irradiance) Add(o Irradiance) Irradiance { return Irradiance{s: i.s.Add(o.s)} }

// MulArea integrates the irradiance over an area, yielding power.
func (i Irradiance) MulArea(a Area) Power {
	return Power{s: i.s.Multiply(a.Raw())}
}

// Intensity is spectral radiant intensity, W/sr.
type Intensity struct {
	s core.Vec3
}

// IntensityFromRaw wraps an RGB value as intensity.
func IntensityFromRaw(s core.Vec3) Intensity { return Intensity{s: s} }

// Raw returns the RGB payload.
func (i Intensity) Raw() core.Vec3 { return i.s }

// MulSolidAngle integrates the intensity over a solid angle, yielding power.
func (i Intensity) MulSolidAngle(sa SolidAngle) Power {
	return Power{s: i.s.Multiply(sa.Raw())}
}

// Power is spectral radiant flux, W.
type Power struct {
	s core.Vec3
}

// PowerFromRaw wraps an RGB value as power.
func PowerFromRaw(s core.Vec3) Power { return Power{s: s} }

// Raw returns the RGB payload.
func (p Power) Raw() core.Vec3 { return p.s }

// Add returns the sum of two power values.
func (p Power) Add(o Power) Power { return Power{s: p.s.Add(o.s)} }

// MulTime integrates the power over a duration, yielding energy.
func (p Power) MulTime(t TimeSpan) Energy {
	return Energy{s: p.s.Multiply(t.Raw())}
}

// Energy is spectral radiant energy, J.
type Energy struct {
	s core.Vec3
}

// EnergyFromRaw wraps an RGB value as energy.
func EnergyFromRaw(s core.Vec3) Energy { return Energy{s: s} }

// Raw returns the RGB payload.
func (e Energy) Raw() core.Vec3 { return e.s }

// Add returns the sum of two energy values.
func (e Energy) Add(o Energy) Energy { return Energy{s: e.s.Add(o.s)} }
