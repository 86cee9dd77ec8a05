package bxdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/microfacet"
)

func smoothGlass() Dielectric {
	return NewDielectric(1.5, microfacet.New(0, 0))
}

func roughGlass() Dielectric {
	return NewDielectric(1.5, microfacet.New(0.3, 0.3))
}

func TestSmoothDielectricParts(t *testing.T) {
	if got := smoothGlass().Part(); got != PartSpecular|PartReflection|PartTransmission {
		t.Errorf("smooth part incorrect: got %v", got)
	}
	if got := roughGlass().Part(); got != PartGlossy|PartReflection|PartTransmission {
		t.Errorf("rough part incorrect: got %v", got)
	}
	indexMatched := NewDielectric(1.0, microfacet.New(0.3, 0.3))
	if got := indexMatched.Part(); got != PartSpecularTransmission {
		t.Errorf("index-matched part incorrect: got %v", got)
	}
}

func TestSmoothDielectricEvaluatesToZero(t *testing.T) {
	d := smoothGlass()
	wo := shadingDir(0.3, 0, 0.95)
	wi := shadingDir(-0.3, 0, 0.95)

	if !d.Evaluate(wo, wi, Radiance).IsZero() {
		t.Error("delta lobes must evaluate to zero")
	}
	if d.InversePdf(wo, wi, Radiance, SampleAll).Valid() {
		t.Error("delta lobes have no continuous density")
	}
}

func TestSmoothDielectricReflectionProbability(t *testing.T) {
	// At normal incidence on glass the discrete split is {0.04, 0.96}
	d := smoothGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	wo := shadingDir(0, 0, 1)

	n := 1 << 16
	reflected := 0
	for i := 0; i < n; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleAll)
		if !s.Valid() {
			t.Fatal("smooth sampling at normal incidence should never fail")
		}
		if s.Part.Has(PartReflection) {
			reflected++
		}
	}

	frac := float64(reflected) / float64(n)
	if math.Abs(frac-0.04) > 0.005 {
		t.Errorf("reflection fraction incorrect: got %f, expected 0.04", frac)
	}
}

func TestSmoothDielectricMirrorDirection(t *testing.T) {
	d := smoothGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	wo := shadingDir(0.6, 0.2, 0.7)

	for i := 0; i < 1000; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleReflection)
		if !s.Valid() {
			t.Fatal("reflection-only sampling should succeed")
		}
		want := core.NewVec3(-wo.Raw().X, -wo.Raw().Y, wo.Raw().Z)
		if s.Wi.Raw().Subtract(want).Length() > 1e-12 {
			t.Fatalf("mirror direction incorrect: got %v, expected %v", s.Wi.Raw(), want)
		}
		// Masked single-outcome sampling has inverse density 1/1
		if math.Abs(s.InversePdf.Raw()-1) > 1e-12 {
			t.Fatalf("masked discrete density incorrect: got %f", s.InversePdf.Raw())
		}
	}
}

func TestSmoothDielectricEstimatorWeight(t *testing.T) {
	// With both outcomes allowed, f · inversePdf · |cosθ| is R/(R/(R+T)) type
	// bookkeeping that must come out ≤ 1 in importance mode
	d := smoothGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))
	wo := shadingDir(0.4, -0.3, 0.86)

	for i := 0; i < 10000; i++ {
		s := d.Sample(sampler, wo, Importance, SampleAll)
		if !s.Valid() {
			continue
		}
		weight := s.F.MulInversePdf(s.InversePdf).Raw().X * geom.AbsCosTheta(s.Wi)
		if weight > 1+1e-9 {
			t.Fatalf("estimator weight gains energy: %f", weight)
		}
	}
}

func TestSmoothDielectricTIRFromInside(t *testing.T) {
	// From inside glass past the critical angle, transmission must never be
	// drawn; masked transmission-only sampling fails
	d := smoothGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))
	wo := shadingDir(0.9, 0, -math.Sqrt(1-0.81))

	for i := 0; i < 1000; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleAll)
		if !s.Valid() {
			t.Fatal("TIR configuration still reflects")
		}
		if s.Part.Has(PartTransmission) {
			t.Fatal("sampled transmission past the critical angle")
		}
	}
}

func TestIndexMatchedPassesStraightThrough(t *testing.T) {
	d := NewDielectric(1.0, microfacet.New(0, 0))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(5)))
	wo := shadingDir(0.5, 0.1, 0.86)

	s := d.Sample(sampler, wo, Radiance, SampleAll)
	if !s.Valid() {
		t.Fatal("index-matched sampling should succeed")
	}
	if s.Part != PartSpecularTransmission {
		t.Errorf("part incorrect: got %v", s.Part)
	}
	want := wo.Raw().Negate()
	if s.Wi.Raw().Subtract(want).Length() > 1e-9 {
		t.Errorf("index-matched transmission should continue straight: got %v, expected %v",
			s.Wi.Raw(), want)
	}
}

func TestRoughDielectricSampleEvaluateConsistency(t *testing.T) {
	// Non-delta samples must agree with Evaluate and InversePdf for the same
	// direction pair
	d := roughGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	wo := shadingDir(0.3, -0.2, 0.93)

	checked := 0
	for i := 0; i < 20000 && checked < 5000; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleAll)
		if !s.Valid() {
			continue
		}
		checked++

		f := d.Evaluate(wo, s.Wi, Radiance)
		if math.Abs(f.Raw().X-s.F.Raw().X) > 1e-6*math.Max(1, s.F.Raw().X) {
			t.Fatalf("value mismatch: sample %g, evaluate %g", s.F.Raw().X, f.Raw().X)
		}

		p := d.InversePdf(wo, s.Wi, Radiance, SampleAll)
		if !p.Valid() {
			t.Fatal("sampled direction reported as zero density")
		}
		if math.Abs(p.Raw()-s.InversePdf.Raw()) > 1e-6*s.InversePdf.Raw() {
			t.Fatalf("density mismatch: sample %g, query %g", s.InversePdf.Raw(), p.Raw())
		}
	}

	if checked < 5000 {
		t.Fatalf("too few valid samples: %d", checked)
	}
}

func TestRoughDielectricTransmissionModeScaling(t *testing.T) {
	// Radiance transport compresses transmitted radiance by 1/η²; importance
	// transport must not
	d := roughGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(9)))
	wo := shadingDir(0.1, 0, 0.99)

	for i := 0; i < 20000; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleTransmission)
		if !s.Valid() || !s.Part.Has(PartTransmission) {
			continue
		}
		radiance := d.Evaluate(wo, s.Wi, Radiance).Raw().X
		importance := d.Evaluate(wo, s.Wi, Importance).Raw().X
		if radiance == 0 {
			continue
		}
		if math.Abs(importance/radiance-1.5*1.5) > 1e-6 {
			t.Fatalf("transport scaling incorrect: importance/radiance = %f, expected %f",
				importance/radiance, 1.5*1.5)
		}
		return
	}
	t.Fatal("no transmission sample drawn")
}

func TestRoughDielectricReciprocalDensityNeverInfinite(t *testing.T) {
	d := roughGlass()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(13)))
	wo := shadingDir(0.7, 0.1, 0.7)

	for i := 0; i < 10000; i++ {
		s := d.Sample(sampler, wo, Radiance, SampleAll)
		if !s.Valid() {
			continue
		}
		if math.IsInf(s.InversePdf.Raw(), 0) || math.IsNaN(s.InversePdf.Raw()) {
			t.Fatalf("reciprocal density not finite: %f", s.InversePdf.Raw())
		}
		if math.IsNaN(s.F.Raw().X) {
			t.Fatal("sampled value is NaN")
		}
	}
}
