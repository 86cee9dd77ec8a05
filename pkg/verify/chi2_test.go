package verify

import (
	"math"
	"math/rand"
	"testing"

	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/microfacet"
	"github.com/photometric/go-shading/pkg/quantity"
)

func testFrame() geom.ShadingFrame {
	return geom.NewShadingFrame(
		geom.NormalFromVec3[geom.World](core.NewVec3(0, 1, 0)),
		geom.DirectionFromVec3[geom.World](core.NewVec3(1, 0, 0)))
}

// Reduced settings keep the suite fast; the shipped defaults run through the
// CLI.
func testChiConfig() ChiSquaredConfig {
	cfg := DefaultChiSquaredConfig()
	cfg.ThetaResolution = 40
	cfg.SampleCount = 1 << 17
	cfg.Trials = 2
	return cfg
}

func runChiSquared(t *testing.T, name string, model bxdf.BxDF) {
	t.Helper()
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	b := bxdf.NewBSDF(testFrame(), model)

	trials, err := ChiSquared(sampler, b, name, testChiConfig())
	if err != nil {
		t.Fatalf("chi-squared run failed: %v", err)
	}
	for _, trial := range trials {
		if !trial.Passed {
			t.Errorf("trial %d rejected: %s", trial.Trial, trial.Reason)
		}
	}
}

func TestChiSquaredLambertian(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	runChiSquared(t, "lambertian", bxdf.NewLambertian(quantity.RationalFromScalar(1)))
}

func TestChiSquaredRoughDielectric(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	runChiSquared(t, "rough-dielectric", bxdf.NewDielectric(1.5, microfacet.New(0.3, 0.3)))
}

func TestChiSquaredAnisotropicDielectric(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	runChiSquared(t, "aniso-dielectric", bxdf.NewDielectric(1.5, microfacet.New(0.3, 0.5)))
}

func TestChiSquaredRoughConductor(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	eta := core.NewVec3(0.2, 0.92, 1.1)
	k := core.NewVec3(3.9, 2.45, 2.17)
	runChiSquared(t, "rough-conductor", bxdf.NewConductor(eta, k, microfacet.New(0.3, 0.3)))
}

func TestChi2TestAcceptsMatchedTables(t *testing.T) {
	// A sampled table drawn from exactly the expected distribution must pass
	random := rand.New(rand.NewSource(42))
	cfg := testChiConfig()

	expected := make([]float64, 200)
	total := 0.0
	for i := range expected {
		expected[i] = 10 + 90*random.Float64()
		total += expected[i]
	}

	n := int(total)
	observed := make([]float64, len(expected))
	for s := 0; s < n; s++ {
		// Draw a cell proportional to its expected mass
		target := random.Float64() * total
		acc := 0.0
		for i, e := range expected {
			acc += e
			if target < acc {
				observed[i]++
				break
			}
		}
	}

	cfg.SampleCount = n
	result := chi2Test(observed, expected, cfg)
	if !result.Passed {
		t.Errorf("matched tables rejected: %s", result.Reason)
	}
}

func TestChi2TestRejectsMismatchedTables(t *testing.T) {
	cfg := testChiConfig()
	cfg.SampleCount = 10000

	expected := make([]float64, 100)
	observed := make([]float64, 100)
	for i := range expected {
		expected[i] = 100
		// Concentrate all mass in half the cells
		if i < 50 {
			observed[i] = 200
		}
	}

	result := chi2Test(observed, expected, cfg)
	if result.Passed {
		t.Error("grossly mismatched tables accepted")
	}
}

func TestChi2TestPoolsSmallCells(t *testing.T) {
	cfg := testChiConfig()
	cfg.SampleCount = 1000

	// Many cells below the pooling threshold plus a few large ones
	expected := []float64{0.5, 0.5, 0.5, 0.5, 1, 1, 100, 100, 100}
	observed := []float64{1, 0, 1, 0, 1, 1, 100, 100, 100}

	result := chi2Test(observed, expected, cfg)
	if !result.Passed {
		t.Errorf("pooled small cells should pass: %s", result.Reason)
	}
	// The pool keeps absorbing cells until it clears the threshold, taking
	// one large cell with it: 2 standalone cells + 1 pooled cell − 1
	// normalization constraint
	if result.Dof != 2 {
		t.Errorf("degrees of freedom incorrect: got %d, expected 2", result.Dof)
	}
}

func TestChi2TestFlagsSamplesInZeroDensityCells(t *testing.T) {
	cfg := testChiConfig()
	cfg.SampleCount = 1000

	expected := []float64{0, 100, 100, 100}
	observed := []float64{50, 100, 100, 100}

	result := chi2Test(observed, expected, cfg)
	if result.Passed {
		t.Error("mass in a zero-density cell must reject")
	}
}

func TestFrequencyTableBinsAllValidSamples(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	b := bxdf.NewBSDF(testFrame(), bxdf.NewLambertian(quantity.RationalFromScalar(1)))
	cfg := testChiConfig()
	cfg.SampleCount = 10000

	wo := geom.DirectionFromVec3[geom.World](core.NewVec3(0, 1, 0))
	table, valid := frequencyTable(sampler, wo, b, cfg)

	sum := 0.0
	for _, c := range table {
		sum += c
	}
	if int(sum) != valid {
		t.Errorf("table mass %d does not match valid count %d", int(sum), valid)
	}
	if valid < 9000 {
		t.Errorf("diffuse sampling should almost always be valid: %d of %d", valid, cfg.SampleCount)
	}
}

func TestExpectedFrequencyTableMassMatchesSampleCount(t *testing.T) {
	if testing.Short() {
		t.Skip("quadrature-heavy")
	}
	b := bxdf.NewBSDF(testFrame(), bxdf.NewLambertian(quantity.RationalFromScalar(1)))
	cfg := testChiConfig()
	cfg.ThetaResolution = 20
	cfg.SampleCount = 10000

	wo := geom.DirectionFromVec3[geom.World](core.NewVec3(0, 1, 0))
	table := expectedFrequencyTable(wo, b, cfg)

	sum := 0.0
	for _, c := range table {
		sum += c
	}
	// The density integrates to 1 over the sphere, so the expected table's
	// mass is the sample count
	if math.Abs(sum-float64(cfg.SampleCount)) > 0.01*float64(cfg.SampleCount) {
		t.Errorf("expected table mass %f, want ≈%d", sum, cfg.SampleCount)
	}
}
