package core

import "math"

// Sample-space mappings used by the scattering models. All hemisphere
// mappings are in local shading space: the surface normal is +Z.

// SampleUniformDisk maps a unit-square sample to a uniformly distributed
// point in the unit disk using polar coordinates.
func SampleUniformDisk(sample Vec2) Vec2 {
	angle := 2.0 * math.Pi * sample.X
	radius := math.Sqrt(sample.Y)
	return NewVec2(radius*math.Cos(angle), radius*math.Sin(angle))
}

// SampleConcentricDisk maps a unit-square sample to the unit disk with
// Shirley's concentric mapping, which preserves stratification better than
// the polar mapping and avoids rejection sampling.
func SampleConcentricDisk(sample Vec2) Vec2 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec2(0, 0)
	}

	// Apply concentric mapping to point
	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleCosineHemisphere generates a cosine-weighted direction in the
// upper hemisphere (+Z) by projecting a concentric-disk sample upward.
func SampleCosineHemisphere(sample Vec2) Vec3 {
	disk := SampleConcentricDisk(sample)
	z := math.Sqrt(math.Max(0, 1.0-disk.Dot(disk)))
	return NewVec3(disk.X, disk.Y, z)
}

// SampleUniformSphere generates a uniform random direction on the unit sphere
func SampleUniformSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}
