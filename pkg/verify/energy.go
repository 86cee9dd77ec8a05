package verify

import (
	"fmt"
	"math"

	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
)

// EnergyConfig controls the energy-conservation test.
type EnergyConfig struct {
	// Directions is the number of independent wo directions tested, drawn
	// uniformly from the full sphere so transmission lobes are exercised too.
	Directions int
	// SampleCount is the number of scattered directions drawn per wo.
	SampleCount int
	// Tolerance is the allowed Monte Carlo slack above unit energy.
	Tolerance float64
}

// DefaultEnergyConfig returns the settings used by the standard material
// verification suite.
func DefaultEnergyConfig() EnergyConfig {
	return EnergyConfig{
		Directions:  64,
		SampleCount: 1 << 16,
		Tolerance:   1e-3,
	}
}

// EnergyResult is the outcome of testing one wo direction.
type EnergyResult struct {
	Direction int
	Wo        core.Vec3
	// Mean is the Monte Carlo estimate of scattered energy per unit
	// incident energy; anything above 1 (plus tolerance) means the model
	// amplifies light.
	Mean float64
	// ConsistentFraction is the fraction of valid non-delta samples whose
	// reported value and density agree with Evaluate and InversePdf. The
	// rough transmission path reconstructs the half vector from the sampled
	// pair, so perfect agreement is not expected.
	ConsistentFraction float64
	Passed             bool
}

// EnergyConservation verifies that importance-weighted scattering never
// gains energy: for each wo the mean of f·inversePdf·|cos(n,wi)| over
// SampleCount samples must stay within tolerance of 1 or below. Sampling
// runs in Importance transport mode so the radiance-only 1/eta² scaling of
// refractive models is excluded from the balance.
func EnergyConservation(sampler core.Sampler, normal geom.Normal[geom.World], b bxdf.BSDF, name string, cfg EnergyConfig) ([]EnergyResult, error) {
	if cfg.Directions <= 0 || cfg.SampleCount <= 0 {
		return nil, fmt.Errorf("verify: invalid energy configuration %+v", cfg)
	}

	specular := b.Part().Has(bxdf.PartSpecular)
	results := make([]EnergyResult, 0, cfg.Directions)

	for k := 0; k < cfg.Directions; k++ {
		wo := geom.DirectionFromVec3[geom.World](core.SampleUniformSphere(sampler.Get2D()))

		// Kahan summation: the per-sample weights span several orders of
		// magnitude near grazing configurations.
		var sum, comp float64
		valid, consistent := 0, 0

		for idx := 0; idx < cfg.SampleCount; idx++ {
			sample := b.Sample(sampler, wo, bxdf.Importance, bxdf.SampleAll)
			if !sample.Valid() {
				continue
			}
			valid++

			weight := sample.F.MulInversePdf(sample.InversePdf).Raw().MaxComponent() * normal.AbsDot(sample.Wi)
			y := weight - comp
			t := sum + y
			comp = (t - sum) - y
			sum = t

			if specular || sample.Part.Has(bxdf.PartSpecular) {
				consistent++
				continue
			}
			f := b.Evaluate(wo, sample.Wi, bxdf.Importance)
			inversePdf := b.InversePdf(wo, sample.Wi, bxdf.Importance, bxdf.SampleAll)
			if maxAbsDiff(f.Raw(), sample.F.Raw()) < 1e-3 &&
				math.Abs(inversePdf.Raw()-sample.InversePdf.Raw()) < 1e-3*sample.InversePdf.Raw() {
				consistent++
			}
		}

		mean := sum / float64(cfg.SampleCount)
		result := EnergyResult{
			Direction: k,
			Wo:        wo.Raw(),
			Mean:      mean,
			Passed:    mean <= 1+cfg.Tolerance,
		}
		if valid > 0 {
			result.ConsistentFraction = float64(consistent) / float64(valid)
		}

		if result.Passed {
			logger.Debugf("%s direction %d: mean energy %.5f", name, k, mean)
		} else {
			logger.Errorf("%s direction %d: mean energy %.5f exceeds %g", name, k, mean, 1+cfg.Tolerance)
		}

		results = append(results, result)
	}

	return results, nil
}

func maxAbsDiff(a, b core.Vec3) float64 {
	d := core.NewVec3(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y), math.Abs(a.Z-b.Z))
	return d.MaxComponent()
}
