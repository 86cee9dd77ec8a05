package geom

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
)

// ShadingFrame is the orthonormal change of basis between world space and
// the local shading space of one surface interaction. The basis columns are
// tangent, bitangent and shading normal; the normal maps to +Z.
type ShadingFrame struct {
	tangent   core.Vec3
	bitangent core.Vec3
	normal    core.Vec3
}

// NewShadingFrame builds a frame from a world-space shading normal and the
// surface's u-derivative. The tangent is re-orthogonalized against the
// normal so the frame stays orthonormal even when dpdu is not perpendicular
// to the normal; a degenerate dpdu falls back to an arbitrary basis.
func NewShadingFrame(normal Normal[World], dpdu Direction[World]) ShadingFrame {
	n := normal.Raw()
	tangent := dpdu.Raw().Subtract(n.Multiply(n.Dot(dpdu.Raw())))
	if tangent.LengthSquared() < 1e-12 {
		if math.Abs(n.X) > 0.1 {
			tangent = core.NewVec3(0, 1, 0).Cross(n)
		} else {
			tangent = core.NewVec3(1, 0, 0).Cross(n)
		}
	}
	tangent = tangent.Normalize()
	return ShadingFrame{
		tangent:   tangent,
		bitangent: n.Cross(tangent),
		normal:    n,
	}
}

// Normal returns the world-space shading normal the frame was built from.
func (f ShadingFrame) Normal() Normal[World] {
	return Normal[World]{v: f.normal}
}

// ToLocal maps a world-space direction into the shading frame by multiplying
// with the transpose of the change-of-basis matrix.
func (f ShadingFrame) ToLocal(d Direction[World]) Direction[Shading] {
	return Direction[Shading]{v: core.NewVec3(
		f.tangent.Dot(d.v),
		f.bitangent.Dot(d.v),
		f.normal.Dot(d.v),
	)}
}

// ToWorld maps a shading-space direction back to world space by multiplying
// with the change-of-basis matrix.
func (f ShadingFrame) ToWorld(d Direction[Shading]) Direction[World] {
	return Direction[World]{v: f.tangent.Multiply(d.v.X).
		Add(f.bitangent.Multiply(d.v.Y)).
		Add(f.normal.Multiply(d.v.Z))}
}
