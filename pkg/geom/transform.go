package geom

import (
	"math"

	"github.com/photometric/go-shading/pkg/core"
)

// Matrix3x4 is an affine transform in row-major form: a 3×3 linear part
// with a translation column.
type Matrix3x4 [3][4]float64

func (m Matrix3x4) apply(v core.Vec3, w float64) core.Vec3 {
	return core.NewVec3(
		m[0][0]*v.X+m[0][1]*v.Y+m[0][2]*v.Z+m[0][3]*w,
		m[1][0]*v.X+m[1][1]*v.Y+m[1][2]*v.Z+m[1][3]*w,
		m[2][0]*v.X+m[2][1]*v.Y+m[2][2]*v.Z+m[2][3]*w,
	)
}

func (m Matrix3x4) applyTransposed(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		m[0][0]*v.X+m[1][0]*v.Y+m[2][0]*v.Z,
		m[0][1]*v.X+m[1][1]*v.Y+m[2][1]*v.Z,
		m[0][2]*v.X+m[1][2]*v.Y+m[2][2]*v.Z,
	)
}

// Transform is an affine change of frame from A to B. It stores both
// directions of the mapping so inversion is free and normals can be
// transformed by the inverse transpose.
type Transform[A, B Frame] struct {
	fwd, inv Matrix3x4
}

// NewTransform builds a transform from a forward matrix and its inverse.
func NewTransform[A, B Frame](fwd, inv Matrix3x4) Transform[A, B] {
	return Transform[A, B]{fwd: fwd, inv: inv}
}

// Translation builds a pure translation transform.
func Translation[A, B Frame](offset core.Vec3) Transform[A, B] {
	return Transform[A, B]{
		fwd: Matrix3x4{{1, 0, 0, offset.X}, {0, 1, 0, offset.Y}, {0, 0, 1, offset.Z}},
		inv: Matrix3x4{{1, 0, 0, -offset.X}, {0, 1, 0, -offset.Y}, {0, 0, 1, -offset.Z}},
	}
}

// UniformScale builds a uniform scaling transform. s must be non-zero.
func UniformScale[A, B Frame](s float64) Transform[A, B] {
	r := 1.0 / s
	return Transform[A, B]{
		fwd: Matrix3x4{{s, 0, 0, 0}, {0, s, 0, 0}, {0, 0, s, 0}},
		inv: Matrix3x4{{r, 0, 0, 0}, {0, r, 0, 0}, {0, 0, r, 0}},
	}
}

// RotationZ builds a rotation about the z axis by the given angle in radians.
func RotationZ[A, B Frame](angle float64) Transform[A, B] {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform[A, B]{
		fwd: Matrix3x4{{c, -s, 0, 0}, {s, c, 0, 0}, {0, 0, 1, 0}},
		inv: Matrix3x4{{c, s, 0, 0}, {-s, c, 0, 0}, {0, 0, 1, 0}},
	}
}

// Inverse returns the transform from B back to A.
func (t Transform[A, B]) Inverse() Transform[B, A] {
	return Transform[B, A]{fwd: t.inv, inv: t.fwd}
}

// Point maps a point from frame A to frame B.
func (t Transform[A, B]) Point(p Point[A]) Point[B] {
	return Point[B]{v: t.fwd.apply(p.v, 1)}
}

// Vector maps a displacement from frame A to frame B.
func (t Transform[A, B]) Vector(v Vector[A]) Vector[B] {
	return Vector[B]{v: t.fwd.apply(v.v, 0)}
}

// Direction maps a unit direction from frame A to frame B, renormalizing to
// absorb any scale in the transform.
func (t Transform[A, B]) Direction(d Direction[A]) Direction[B] {
	return Direction[B]{v: t.fwd.apply(d.v, 0).Normalize()}
}

// Normal maps a surface normal from frame A to frame B using the inverse
// transpose of the linear part.
func (t Transform[A, B]) Normal(n Normal[A]) Normal[B] {
	return Normal[B]{v: t.inv.applyTransposed(n.v).Normalize()}
}
