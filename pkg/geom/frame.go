// Package geom provides geometric value types tagged by the reference frame
// they are expressed in. Mixing frames is a compile error; conversion happens
// only through an explicit frame change (ShadingFrame or Transform), never
// through reinterpretation.
package geom

import (
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/quantity"
)

// World, Object and Shading are phantom frame tags.
type (
	// World is the scene-global frame.
	World struct{}
	// Object is a shape's local frame.
	Object struct{}
	// Shading is the per-hit frame with the shading normal along +Z.
	Shading struct{}
)

// Frame is the set of valid frame tags.
type Frame interface {
	World | Object | Shading
}

// Point is a position expressed in frame F.
type Point[F Frame] struct {
	v core.Vec3
}

// PointFromVec3 wraps a raw position.
func PointFromVec3[F Frame](v core.Vec3) Point[F] { return Point[F]{v: v} }

// Raw returns the underlying vector.
func (p Point[F]) Raw() core.Vec3 { return p.v }

// Add offsets the point by a vector in the same frame.
func (p Point[F]) Add(v Vector[F]) Point[F] { return Point[F]{v: p.v.Add(v.v)} }

// Sub returns the vector from o to p.
func (p Point[F]) Sub(o Point[F]) Vector[F] { return Vector[F]{v: p.v.Subtract(o.v)} }

// AddScaled offsets the point along a direction by a distance.
func (p Point[F]) AddScaled(d Direction[F], t quantity.Distance) Point[F] {
	return Point[F]{v: p.v.Add(d.v.Multiply(t.Raw()))}
}

// Vector is a displacement expressed in frame F.
type Vector[F Frame] struct {
	v core.Vec3
}

// VectorFromVec3 wraps a raw displacement.
func VectorFromVec3[F Frame](v core.Vec3) Vector[F] { return Vector[F]{v: v} }

// Raw returns the underlying vector.
func (v Vector[F]) Raw() core.Vec3 { return v.v }

// Add returns the sum of two vectors in the same frame.
func (v Vector[F]) Add(o Vector[F]) Vector[F] { return Vector[F]{v: v.v.Add(o.v)} }

// Scale returns the vector scaled by a dimensionless factor.
func (v Vector[F]) Scale(x float64) Vector[F] { return Vector[F]{v: v.v.Multiply(x)} }

// Dot returns the squared-distance-valued dot product.
func (v Vector[F]) Dot(o Vector[F]) quantity.DistanceSquared {
	return quantity.DistanceSquaredFromRaw(v.v.Dot(o.v))
}

// LengthSquared returns the squared length of the vector.
func (v Vector[F]) LengthSquared() quantity.DistanceSquared {
	return quantity.DistanceSquaredFromRaw(v.v.LengthSquared())
}

// Normalized returns the unit direction of the vector. A zero vector yields
// the zero direction; callers treat that as a degenerate configuration.
func (v Vector[F]) Normalized() Direction[F] { return Direction[F]{v: v.v.Normalize()} }

// Direction is a unit direction expressed in frame F.
type Direction[F Frame] struct {
	v core.Vec3
}

// DirectionFromVec3 normalizes a raw vector into a direction.
func DirectionFromVec3[F Frame](v core.Vec3) Direction[F] {
	return Direction[F]{v: v.Normalize()}
}

// Raw returns the underlying unit vector.
func (d Direction[F]) Raw() core.Vec3 { return d.v }

// IsZero reports whether the direction is the degenerate zero value.
func (d Direction[F]) IsZero() bool {
	return d.v == core.Vec3{}
}

// Dot returns the cosine between two directions in the same frame.
func (d Direction[F]) Dot(o Direction[F]) float64 { return d.v.Dot(o.v) }

// AbsDot returns the absolute cosine between two directions.
func (d Direction[F]) AbsDot(o Direction[F]) float64 { return abs(d.v.Dot(o.v)) }

// Cross returns the cross product of two directions.
func (d Direction[F]) Cross(o Direction[F]) Direction[F] {
	return Direction[F]{v: d.v.Cross(o.v)}
}

// Negate returns the opposite direction.
func (d Direction[F]) Negate() Direction[F] { return Direction[F]{v: d.v.Negate()} }

// FlipZ mirrors the direction through the z=0 plane.
func (d Direction[F]) FlipZ() Direction[F] {
	return Direction[F]{v: core.NewVec3(d.v.X, d.v.Y, -d.v.Z)}
}

// FaceForward flips the direction if needed so it lies in the same
// hemisphere as the reference direction.
func (d Direction[F]) FaceForward(ref Direction[F]) Direction[F] {
	if d.v.Dot(ref.v) < 0 {
		return d.Negate()
	}
	return d
}

// Normal is a unit surface normal expressed in frame F. It is kept distinct
// from Direction because normals transform by the inverse transpose.
type Normal[F Frame] struct {
	v core.Vec3
}

// NormalFromVec3 normalizes a raw vector into a surface normal.
func NormalFromVec3[F Frame](v core.Vec3) Normal[F] {
	return Normal[F]{v: v.Normalize()}
}

// Raw returns the underlying unit vector.
func (n Normal[F]) Raw() core.Vec3 { return n.v }

// Negate returns the opposite normal.
func (n Normal[F]) Negate() Normal[F] { return Normal[F]{v: n.v.Negate()} }

// AsDirection reinterprets the normal as a direction in the same frame.
func (n Normal[F]) AsDirection() Direction[F] { return Direction[F]{v: n.v} }

// Dot returns the cosine between the normal and a direction.
func (n Normal[F]) Dot(d Direction[F]) float64 { return n.v.Dot(d.v) }

// AbsDot returns the absolute cosine between the normal and a direction.
func (n Normal[F]) AbsDot(d Direction[F]) float64 { return abs(n.v.Dot(d.v)) }

// DirectionBetween returns the unit direction from src to dst and the
// squared distance between them.
func DirectionBetween[F Frame](src, dst Point[F]) (Direction[F], quantity.DistanceSquared) {
	diff := dst.Sub(src)
	return diff.Normalized(), diff.LengthSquared()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
