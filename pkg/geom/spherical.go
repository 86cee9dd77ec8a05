package geom

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
)

// Shading-space trigonometry. In the shading frame the normal is +Z, so the
// polar angles of a direction fall out of its components directly.

// CosTheta returns the cosine of the polar angle.
func CosTheta(w Direction[Shading]) float64 { return w.v.Z }

// Cos2Theta returns the squared cosine of the polar angle.
func Cos2Theta(w Direction[Shading]) float64 { return w.v.Z * w.v.Z }

// AbsCosTheta returns the absolute cosine of the polar angle.
func AbsCosTheta(w Direction[Shading]) float64 { return abs(w.v.Z) }

// Sin2Theta returns the squared sine of the polar angle.
func Sin2Theta(w Direction[Shading]) float64 {
	return math.Max(0, 1-Cos2Theta(w))
}

// SinTheta returns the sine of the polar angle.
func SinTheta(w Direction[Shading]) float64 { return math.Sqrt(Sin2Theta(w)) }

// Tan2Theta returns the squared tangent of the polar angle. It is +Inf at
// grazing configurations; callers guard against that.
func Tan2Theta(w Direction[Shading]) float64 { return Sin2Theta(w) / Cos2Theta(w) }

// CosPhi returns the cosine of the azimuthal angle.
func CosPhi(w Direction[Shading]) float64 {
	sinTheta := SinTheta(w)
	if sinTheta == 0 {
		return 1
	}
	return clamp(w.v.X/sinTheta, -1, 1)
}

// SinPhi returns the sine of the azimuthal angle.
func SinPhi(w Direction[Shading]) float64 {
	sinTheta := SinTheta(w)
	if sinTheta == 0 {
		return 0
	}
	return clamp(w.v.Y/sinTheta, -1, 1)
}

// SameHemisphere reports whether two shading-space directions lie on the
// same side of the surface.
func SameHemisphere(a, b Direction[Shading]) bool {
	return a.v.Z*b.v.Z > 0
}

// Spherical returns the polar and azimuthal angles of a direction,
// θ ∈ [0, π] measured from +Z and φ ∈ (-π, π].
func Spherical[F Frame](d Direction[F]) (theta, phi float64) {
	theta = math.Acos(clamp(d.v.Z, -1, 1))
	phi = math.Atan2(d.v.Y, d.v.X)
	return theta, phi
}

// FromSpherical builds a unit direction from polar and azimuthal angles.
func FromSpherical[F Frame](theta, phi float64) Direction[F] {
	sinTheta := math.Sin(theta)
	return Direction[F]{v: core.NewVec3(
		sinTheta*math.Cos(phi),
		sinTheta*math.Sin(phi),
		math.Cos(theta),
	)}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
