package verify

import (
	"math/rand"
	"testing"

	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/microfacet"
	"github.com/photometric/go-shading/pkg/quantity"
)

func testEnergyConfig() EnergyConfig {
	cfg := DefaultEnergyConfig()
	cfg.Directions = 16
	cfg.SampleCount = 1 << 14
	return cfg
}

func runEnergy(t *testing.T, name string, model bxdf.BxDF) []EnergyResult {
	t.Helper()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	frame := testFrame()
	b := bxdf.NewBSDF(frame, model)

	results, err := EnergyConservation(sampler, frame.Normal(), b, name, testEnergyConfig())
	if err != nil {
		t.Fatalf("energy run failed: %v", err)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("direction %d gains energy: mean %f (wo %v)",
				result.Direction, result.Mean, result.Wo)
		}
	}
	return results
}

func TestEnergyConservationLambertian(t *testing.T) {
	results := runEnergy(t, "lambertian", bxdf.NewLambertian(quantity.RationalFromScalar(1)))

	// Lambertian is exactly importance sampled, so every sample agrees with
	// Evaluate and InversePdf
	for _, result := range results {
		if result.ConsistentFraction < 0.999 {
			t.Errorf("direction %d: consistency %f, expected ≈1",
				result.Direction, result.ConsistentFraction)
		}
	}
}

func TestEnergyConservationSmoothDielectric(t *testing.T) {
	runEnergy(t, "smooth-dielectric", bxdf.NewDielectric(1.5, microfacet.New(0, 0)))
}

func TestEnergyConservationRoughDielectric(t *testing.T) {
	results := runEnergy(t, "rough-dielectric", bxdf.NewDielectric(1.5, microfacet.New(0.3, 0.3)))

	// The transmission path reconstructs the half vector, so a small
	// disagreement rate is expected but most samples must agree
	for _, result := range results {
		if result.ConsistentFraction < 0.7 {
			t.Errorf("direction %d: consistency %f below 0.7",
				result.Direction, result.ConsistentFraction)
		}
	}
}

func TestEnergyConservationConductors(t *testing.T) {
	eta := core.NewVec3(0.2, 0.92, 1.1)
	k := core.NewVec3(3.9, 2.45, 2.17)
	runEnergy(t, "smooth-conductor", bxdf.NewConductor(eta, k, microfacet.New(0, 0)))
	runEnergy(t, "rough-conductor", bxdf.NewConductor(eta, k, microfacet.New(0.3, 0.3)))
}

func TestEnergyConservationFlippedFrame(t *testing.T) {
	// The balance must hold regardless of which side the shading normal
	// faces relative to the sampled wo
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	frame := geom.NewShadingFrame(
		geom.NormalFromVec3[geom.World](core.NewVec3(0, -1, 0)),
		geom.DirectionFromVec3[geom.World](core.NewVec3(1, 0, 0)))
	b := bxdf.NewBSDF(frame, bxdf.NewDielectric(1.5, microfacet.New(0.3, 0.3)))

	results, err := EnergyConservation(sampler, frame.Normal(), b, "flipped", testEnergyConfig())
	if err != nil {
		t.Fatalf("energy run failed: %v", err)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("direction %d gains energy with flipped frame: mean %f",
				result.Direction, result.Mean)
		}
	}
}
