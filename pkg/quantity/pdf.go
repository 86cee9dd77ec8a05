package quantity

import "github.com/photometric/go-shading/pkg/core"

// Kind is a bitset of probability-density kinds. A quantity's tag set records
// which sampling strategies have touched it; products require disjoint sets
// so a density can never be applied to an estimator twice. Go cannot enforce
// the disjointness at compile time the way a template parameter can, so the
// check is a construction-time panic backed by exhaustive tests.
type Kind uint8

const (
	// KindNone is the empty tag set.
	KindNone Kind = 0
	// KindBSDF marks values produced by BSDF importance sampling.
	KindBSDF Kind = 1 << iota
	// KindLight marks values produced by light sampling.
	KindLight
	// KindLightSampler marks values produced by the light-selection strategy.
	KindLightSampler
	// KindTexture marks values produced by stochastic texture evaluation.
	KindTexture
)

// InversePdf is the reciprocal of a sampling density of a particular kind.
// Densities are stored reciprocal so near-delta lobes never divide by a
// near-zero value. The zero value is the invalid sentinel: it means the
// corresponding direction has zero probability and the sample contributes
// nothing.
type InversePdf struct {
	v    float64
	kind Kind
}

// InversePdfFromRaw wraps a reciprocal density of the given kind.
func InversePdfFromRaw(kind Kind, x float64) InversePdf {
	return InversePdf{v: x, kind: kind}
}

// InvalidInversePdf returns the invalid sentinel for the given kind.
func InvalidInversePdf(kind Kind) InversePdf {
	return InversePdf{kind: kind}
}

// Raw returns the reciprocal density.
func (p InversePdf) Raw() float64 { return p.v }

// Kind returns the density kind.
func (p InversePdf) Kind() Kind { return p.kind }

// Valid reports whether the density is non-zero. Callers must check this
// before using the sample the density belongs to.
func (p InversePdf) Valid() bool { return p.v != 0 }

// Scale returns the reciprocal density scaled by a dimensionless factor.
// Invalidity is preserved.
func (p InversePdf) Scale(x float64) InversePdf {
	if !p.Valid() {
		return p
	}
	return InversePdf{v: p.v * x, kind: p.kind}
}

// Mul combines reciprocal densities from two strategies. The kinds must be
// disjoint; invalidity of either operand propagates.
func (p InversePdf) Mul(o InversePdf) InversePdf {
	if p.kind&o.kind != 0 {
		panic("quantity: multiplying inverse pdfs of overlapping kinds")
	}
	if !p.Valid() || !o.Valid() {
		return InversePdf{kind: p.kind | o.kind}
	}
	return InversePdf{v: p.v * o.v, kind: p.kind | o.kind}
}

// Rational is a dimensionless spectral ratio: scattered radiance per unit
// incident irradiance per unit solid angle. It is the value type of BSDF
// evaluation. Like Radiance it carries an importance tag set.
type Rational struct {
	s    core.Vec3
	tags Kind
}

// RationalFromRaw wraps an RGB ratio with no importance tags.
func RationalFromRaw(s core.Vec3) Rational { return Rational{s: s} }

// RationalFromScalar wraps a uniform scalar ratio with no importance tags.
func RationalFromScalar(x float64) Rational {
	return Rational{s: core.NewVec3(x, x, x)}
}

// ZeroRational returns the zero ratio.
func ZeroRational() Rational { return Rational{} }

// IdentityRational returns the unit ratio.
func IdentityRational() Rational { return RationalFromScalar(1) }

// ImportanceSampled tags a ratio as produced by the given sampling strategy.
// This is the only way to introduce an importance tag. Tagging a value twice
// with the same kind panics.
func ImportanceSampled(kind Kind, r Rational) Rational {
	if r.tags&kind != 0 {
		panic("quantity: importance tag applied twice")
	}
	return Rational{s: r.s, tags: r.tags | kind}
}

// Raw returns the RGB payload.
func (r Rational) Raw() core.Vec3 { return r.s }

// Tags returns the importance tag set.
func (r Rational) Tags() Kind { return r.tags }

// IsZero reports whether the ratio is exactly zero in all channels.
func (r Rational) IsZero() bool {
	return r.s == core.Vec3{}
}

// Add returns the sum of two ratios with identical tag sets.
func (r Rational) Add(o Rational) Rational {
	if r.tags != o.tags {
		panic("quantity: adding rationals with different importance tags")
	}
	return Rational{s: r.s.Add(o.s), tags: r.tags}
}

// Scale returns the ratio scaled by a dimensionless factor.
func (r Rational) Scale(x float64) Rational { return Rational{s: r.s.Multiply(x), tags: r.tags} }

// Mul multiplies two ratios. The importance tag sets must be disjoint; the
// result carries their union.
func (r Rational) Mul(o Rational) Rational {
	if r.tags&o.tags != 0 {
		panic("quantity: importance tag applied twice in rational product")
	}
	return Rational{s: r.s.MultiplyVec(o.s), tags: r.tags | o.tags}
}

// MulInversePdf completes the estimator for one strategy: it multiplies in
// the reciprocal density and consumes the matching tag. The value must carry
// the density's tag — dividing out a density that was never applied, or
// dividing it out a second time, panics. An invalid reciprocal density
// yields the zero ratio, never NaN.
func (r Rational) MulInversePdf(p InversePdf) Rational {
	if r.tags&p.kind != p.kind {
		panic("quantity: dividing out a density whose tag is not present")
	}
	if !p.Valid() {
		return Rational{tags: r.tags &^ p.kind}
	}
	return Rational{s: r.s.Multiply(p.v), tags: r.tags &^ p.kind}
}
