package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleConcentricDiskStaysInDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		p := SampleConcentricDisk(NewVec2(random.Float64(), random.Float64()))
		if p.Dot(p) > 1+1e-12 {
			t.Fatalf("sample outside unit disk: %v", p)
		}
	}
}

func TestSampleConcentricDiskOrigin(t *testing.T) {
	p := SampleConcentricDisk(NewVec2(0.5, 0.5))
	if p.X != 0 || p.Y != 0 {
		t.Errorf("center sample should map to origin: got %v", p)
	}
}

func TestSampleUniformDiskStaysInDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		p := SampleUniformDisk(NewVec2(random.Float64(), random.Float64()))
		if p.Dot(p) > 1+1e-12 {
			t.Fatalf("sample outside unit disk: %v", p)
		}
	}
}

func TestSampleCosineHemisphereDistribution(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	n := 200000

	var sumCos float64
	for i := 0; i < n; i++ {
		d := SampleCosineHemisphere(NewVec2(random.Float64(), random.Float64()))

		if d.Z < 0 {
			t.Fatal("cosine hemisphere sample below the horizon")
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("sample not unit length: %f", d.Length())
		}
		sumCos += d.Z
	}

	// E[cosθ] = 2/3 for a cosine-weighted hemisphere
	mean := sumCos / float64(n)
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("mean cosine incorrect: got %f, expected %f", mean, 2.0/3.0)
	}
}

func TestSampleUniformSphereDistribution(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	n := 200000

	var sumZ float64
	for i := 0; i < n; i++ {
		d := SampleUniformSphere(NewVec2(random.Float64(), random.Float64()))

		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("sample not unit length: %f", d.Length())
		}
		sumZ += d.Z
	}

	// E[z] = 0 for a uniform sphere
	mean := sumZ / float64(n)
	if math.Abs(mean) > 0.01 {
		t.Errorf("mean z should vanish: got %f", mean)
	}
}

func TestRandomSamplerGetIndex(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		idx := sampler.GetIndex(7)
		if idx < 0 || idx >= 7 {
			t.Fatalf("index out of range: %d", idx)
		}
	}
}
