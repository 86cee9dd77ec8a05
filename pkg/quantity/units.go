// Package quantity provides dimensioned numeric wrappers for radiometric
// values. Each unit is a distinct struct type and only the physically
// meaningful products are defined, so a unit error is a compile error.
// There is no generic multiply.
package quantity

import "math"

// Distance is a length in meters.
type Distance struct {
	v float64
}

// DistanceFromRaw wraps a raw scalar as a distance.
func DistanceFromRaw(x float64) Distance { return Distance{v: x} }

// Raw returns the underlying scalar.
func (d Distance) Raw() float64 { return d.v }

// Add returns the sum of two distances.
func (d Distance) Add(o Distance) Distance { return Distance{v: d.v + o.v} }

// Sub returns the difference of two distances.
func (d Distance) Sub(o Distance) Distance { return Distance{v: d.v - o.v} }

// Scale returns the distance scaled by a dimensionless factor.
func (d Distance) Scale(x float64) Distance { return Distance{v: d.v * x} }

// MulDistance returns the area spanned by two distances.
func (d Distance) MulDistance(o Distance) Area { return Area{v: d.v * o.v} }

// Rcp returns the reciprocal as an inverse distance.
func (d Distance) Rcp() InverseDistance { return InverseDistance{v: 1.0 / d.v} }

// InverseDistance is a reciprocal length, 1/m.
type InverseDistance struct {
	v float64
}

// InverseDistanceFromRaw wraps a raw scalar as an inverse distance.
func InverseDistanceFromRaw(x float64) InverseDistance { return InverseDistance{v: x} }

// Raw returns the underlying scalar.
func (d InverseDistance) Raw() float64 { return d.v }

// Sub returns the difference of two inverse distances.
func (d InverseDistance) Sub(o InverseDistance) InverseDistance {
	return InverseDistance{v: d.v - o.v}
}

// Rcp returns the reciprocal as a distance.
func (d InverseDistance) Rcp() Distance { return Distance{v: 1.0 / d.v} }

// MulDistance cancels the units and returns a dimensionless scalar.
func (d InverseDistance) MulDistance(o Distance) float64 { return d.v * o.v }

// DistanceSquared is a squared length, m².
type DistanceSquared struct {
	v float64
}

// DistanceSquaredFromRaw wraps a raw scalar as a squared distance.
func DistanceSquaredFromRaw(x float64) DistanceSquared { return DistanceSquared{v: x} }

// Raw returns the underlying scalar.
func (d DistanceSquared) Raw() float64 { return d.v }

// Sqrt returns the distance whose square this is.
func (d DistanceSquared) Sqrt() Distance { return Distance{v: math.Sqrt(d.v)} }

// Area is a surface area in m².
type Area struct {
	v float64
}

// AreaFromRaw wraps a raw scalar as an area.
func AreaFromRaw(x float64) Area { return Area{v: x} }

// Raw returns the underlying scalar.
func (a Area) Raw() float64 { return a.v }

// Add returns the sum of two areas.
func (a Area) Add(o Area) Area { return Area{v: a.v + o.v} }

// Scale returns the area scaled by a dimensionless factor.
func (a Area) Scale(x float64) Area { return Area{v: a.v * x} }

// SolidAngle is a solid angle in steradians.
type SolidAngle struct {
	v float64
}

// SolidAngleFromRaw wraps a raw scalar as a solid angle.
func SolidAngleFromRaw(x float64) SolidAngle { return SolidAngle{v: x} }

// FullSphere returns the solid angle of the whole sphere, 4π sr.
func FullSphere() SolidAngle { return SolidAngle{v: 4 * math.Pi} }

// Hemisphere returns the solid angle of a hemisphere, 2π sr.
func Hemisphere() SolidAngle { return SolidAngle{v: 2 * math.Pi} }

// Raw returns the underlying scalar.
func (s SolidAngle) Raw() float64 { return s.v }

// Add returns the sum of two solid angles.
func (s SolidAngle) Add(o SolidAngle) SolidAngle { return SolidAngle{v: s.v + o.v} }

// Scale returns the solid angle scaled by a dimensionless factor.
func (s SolidAngle) Scale(x float64) SolidAngle { return SolidAngle{v: s.v * x} }

// TimeSpan is a duration in seconds. Named to avoid colliding with time.Time
// at call sites.
type TimeSpan struct {
	v float64
}

// TimeSpanFromRaw wraps a raw scalar as a duration.
func TimeSpanFromRaw(x float64) TimeSpan { return TimeSpan{v: x} }

// Raw returns the underlying scalar.
func (t TimeSpan) Raw() float64 { return t.v }

// Add returns the sum of two durations.
func (t TimeSpan) Add(o TimeSpan) TimeSpan { return TimeSpan{v: t.v + o.v} }
