package bxdf

import (
	"math"
	"math/cmplx"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
)

// FrDielectric returns the unpolarized Fresnel reflectance at a dielectric
// interface. eta is the ratio of the transmitted side's index over the
// incident side's for cosThetaI > 0; a negative cosThetaI means the ray
// arrives from inside and the ratio is inverted. Total internal reflection
// returns 1.
func FrDielectric(cosThetaI, eta float64) float64 {
	cosThetaI = clamp(cosThetaI, -1, 1)
	if cosThetaI < 0 {
		eta = 1 / eta
		cosThetaI = -cosThetaI
	}
	sin2ThetaI := 1 - cosThetaI*cosThetaI
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		return 1
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))

	parallel := (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)
	perpendicular := (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	return (parallel*parallel + perpendicular*perpendicular) / 2
}

// FrConductor returns the per-channel Fresnel reflectance of a conductor
// with complex refractive index eta + i·k.
func FrConductor(cosThetaI float64, eta, k core.Vec3) core.Vec3 {
	return core.NewVec3(
		frComplex(cosThetaI, complex(eta.X, k.X)),
		frComplex(cosThetaI, complex(eta.Y, k.Y)),
		frComplex(cosThetaI, complex(eta.Z, k.Z)),
	)
}

func frComplex(cosThetaI float64, eta complex128) float64 {
	cosThetaI = clamp(cosThetaI, 0, 1)
	sin2ThetaI := 1 - cosThetaI*cosThetaI
	sin2ThetaT := complex(sin2ThetaI, 0) / (eta * eta)
	cosThetaT := cmplx.Sqrt(1 - sin2ThetaT)

	cosI := complex(cosThetaI, 0)
	parallel := (eta*cosI - cosThetaT) / (eta*cosI + cosThetaT)
	perpendicular := (cosI - eta*cosThetaT) / (cosI + eta*cosThetaT)
	norm := func(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }
	return (norm(parallel) + norm(perpendicular)) / 2
}

// Reflect mirrors wo about the normal n.
func Reflect(wo, n Direction) Direction {
	v := wo.Raw().Negate().Add(n.Raw().Multiply(2 * wo.Dot(n)))
	return geom.DirectionFromVec3[geom.Shading](v)
}

// Refract bends wi through the interface with normal n and relative index
// eta. It returns the transmitted direction, the relative index actually
// applied (inverted when arriving from inside), and false on total internal
// reflection.
func Refract(wi, n Direction, eta float64) (Direction, float64, bool) {
	cosThetaI := n.Dot(wi)
	nv := n.Raw()
	if cosThetaI < 0 {
		eta = 1 / eta
		cosThetaI = -cosThetaI
		nv = nv.Negate()
	}
	sin2ThetaI := math.Max(0, 1-cosThetaI*cosThetaI)
	sin2ThetaT := sin2ThetaI / (eta * eta)
	if sin2ThetaT >= 1 {
		return Direction{}, 0, false
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))
	wt := wi.Raw().Multiply(-1 / eta).Add(nv.Multiply(cosThetaI/eta - cosThetaT))
	return geom.DirectionFromVec3[geom.Shading](wt), eta, true
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
