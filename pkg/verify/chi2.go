// Package verify is the statistical oracle for scattering models. It checks
// that a model's sampling routine actually draws from the density the model
// claims (a pooled chi-squared goodness-of-fit test over a spherical
// histogram) and that importance-weighted scattering never gains energy.
// Every new scattering model is expected to pass both before it ships.
package verify

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/photometric/go-shading/pkg/bxdf"
	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/log"
)

var logger = log.New("verify")

// ChiSquaredConfig controls the goodness-of-fit test.
type ChiSquaredConfig struct {
	// ThetaResolution is the number of polar histogram bins; the azimuthal
	// direction gets twice as many.
	ThetaResolution int
	// SampleCount is the number of scattered directions drawn per trial.
	SampleCount int
	// Trials is the number of independent wo directions tested. The
	// significance level is Šidák-corrected across them.
	Trials int
	// MinExpFrequency is the smallest expected bin count allowed to stand
	// alone; smaller bins are pooled.
	MinExpFrequency float64
	// Significance is the family-wise rejection probability under the null
	// hypothesis.
	Significance float64
	// DumpDir, when non-empty, receives an Octave script per failed trial
	// plotting the observed and expected histograms.
	DumpDir string
}

// DefaultChiSquaredConfig returns the settings used by the standard material
// verification suite.
func DefaultChiSquaredConfig() ChiSquaredConfig {
	return ChiSquaredConfig{
		ThetaResolution: 80,
		SampleCount:     1 << 20,
		Trials:          5,
		MinExpFrequency: 5,
		Significance:    0.01,
	}
}

// ChiSquaredTrial is the outcome of testing one wo direction.
type ChiSquaredTrial struct {
	Trial     int
	Wo        core.Vec3
	Passed    bool
	Statistic float64
	Dof       int
	PValue    float64
	Alpha     float64
	Reason    string
	DumpPath  string
}

// ChiSquared verifies that the BSDF's Sample agrees with its InversePdf. For
// each trial it draws a fresh wo, histograms SampleCount scattered
// directions over the sphere, integrates the claimed density over every bin
// with adaptive Simpson quadrature, and runs a pooled chi-squared test
// between the two tables. Delta lobes are excluded from the histogram; a
// model that only ever produces delta lobes cannot be tested this way and
// yields an error.
func ChiSquared(sampler core.Sampler, b bxdf.BSDF, name string, cfg ChiSquaredConfig) ([]ChiSquaredTrial, error) {
	if cfg.ThetaResolution <= 0 || cfg.SampleCount <= 0 || cfg.Trials <= 0 {
		return nil, fmt.Errorf("verify: invalid chi-squared configuration %+v", cfg)
	}

	results := make([]ChiSquaredTrial, 0, cfg.Trials)
	restarts := 0

	for trial := 0; trial < cfg.Trials; trial++ {
		wo := geom.DirectionFromVec3[geom.World](core.SampleCosineHemisphere(sampler.Get2D()))

		observed, valid := frequencyTable(sampler, wo, b, cfg)
		if valid <= 100 {
			// Nearly everything the model produced was a delta lobe or
			// invalid; this wo cannot support the test.
			restarts++
			if restarts > 2*cfg.Trials {
				return results, fmt.Errorf("verify: %s produced no testable samples", name)
			}
			trial--
			continue
		}

		expected := expectedFrequencyTable(wo, b, cfg)

		result := chi2Test(observed, expected, cfg)
		result.Trial = trial
		result.Wo = wo.Raw()

		if !result.Passed && cfg.DumpDir != "" {
			path := filepath.Join(cfg.DumpDir, fmt.Sprintf("chi2_%s_trial_%d.m", name, trial))
			if err := dumpOctaveTables(path, observed, expected, cfg.ThetaResolution); err != nil {
				logger.Warningf("failed to dump histogram tables: %v", err)
			} else {
				result.DumpPath = path
			}
		}

		if result.Passed {
			logger.Debugf("%s trial %d: p=%.4f alpha=%.4f dof=%d", name, trial, result.PValue, result.Alpha, result.Dof)
		} else {
			logger.Errorf("%s trial %d: %s", name, trial, result.Reason)
		}

		results = append(results, result)
	}

	return results, nil
}

// frequencyTable histograms sampled directions over the sphere. It returns
// the table and the number of valid non-delta samples that landed in it.
func frequencyTable(sampler core.Sampler, wo geom.Direction[geom.World], b bxdf.BSDF, cfg ChiSquaredConfig) ([]float64, int) {
	thetaRes := cfg.ThetaResolution
	phiRes := 2 * thetaRes
	table := make([]float64, thetaRes*phiRes)

	scale := float64(thetaRes) / math.Pi
	valid := 0

	for idx := 0; idx < cfg.SampleCount; idx++ {
		sample := b.Sample(sampler, wo, bxdf.Radiance, bxdf.SampleAll)
		if !sample.Valid() || sample.Part.Has(bxdf.PartSpecular) {
			continue
		}
		valid++

		theta, phi := geom.Spherical(sample.Wi)
		x := theta * scale
		y := phi * scale
		if y < 0 {
			y += float64(phiRes)
		}

		thetaIdx := clampInt(int(x), 0, thetaRes-1)
		phiIdx := clampInt(int(y), 0, phiRes-1)
		table[thetaIdx*phiRes+phiIdx]++
	}

	return table, valid
}

// expectedFrequencyTable integrates the claimed density over each bin.
func expectedFrequencyTable(wo geom.Direction[geom.World], b bxdf.BSDF, cfg ChiSquaredConfig) []float64 {
	thetaRes := cfg.ThetaResolution
	phiRes := 2 * thetaRes
	table := make([]float64, thetaRes*phiRes)

	scale := math.Pi / float64(thetaRes)
	density := func(theta, phi float64) float64 {
		wi := geom.FromSpherical[geom.World](theta, phi)
		inversePdf := b.InversePdf(wo, wi, bxdf.Radiance, bxdf.SampleAll)
		if !inversePdf.Valid() {
			return 0
		}
		return math.Sin(theta) / inversePdf.Raw()
	}

	integrateRow := func(i int) []float64 {
		bins := make([]float64, phiRes)
		for j := 0; j < phiRes; j++ {
			bins[j] = float64(cfg.SampleCount) * adaptiveSimpson2D(
				density,
				float64(i)*scale, float64(j)*scale,
				float64(i+1)*scale, float64(j+1)*scale,
				1e-8, 20,
			)
		}
		return bins
	}

	// Rows are independent, so the quadrature parallelizes cleanly.
	pool := newIntegrationPool(0, thetaRes, integrateRow)
	pool.Start()
	for i := 0; i < thetaRes; i++ {
		pool.SubmitTask(rowTask{Row: i})
	}
	pool.Stop()

	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		copy(table[result.Row*phiRes:], result.Bins)
	}

	return table
}

// chi2Test computes the pooled chi-squared statistic between the observed
// and expected tables and tests it against the Šidák-corrected significance
// level.
func chi2Test(observed, expected []float64, cfg ChiSquaredConfig) ChiSquaredTrial {
	// Sort all cells by their expected frequency
	order := make([]int, len(expected))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return expected[order[a]] < expected[order[b]] })

	// Pool cells with low expected frequencies, and keep pooling until the
	// pooled cell itself clears the threshold
	var pooled, pooledExp, x float64
	dof := 0

	for _, idx := range order {
		exp := expected[idx]
		switch {
		case exp <= 0:
			if observed[idx] > float64(cfg.SampleCount)*1e-5 {
				return ChiSquaredTrial{
					Reason: fmt.Sprintf("%g samples in a bin with expected frequency 0", observed[idx]),
				}
			}
		case exp < cfg.MinExpFrequency || (pooledExp > 0 && pooledExp < cfg.MinExpFrequency):
			pooled += observed[idx]
			pooledExp += exp
		default:
			diff := observed[idx] - exp
			x += diff * diff / exp
			dof++
		}
	}

	if pooledExp > 0 || pooled > 0 {
		diff := pooled - pooledExp
		x += diff * diff / pooledExp
		dof++
	}

	// All distribution parameters are known a priori, so the only reduction
	// in degrees of freedom is the normalization constraint.
	dof--

	if dof <= 0 {
		return ChiSquaredTrial{
			Statistic: x,
			Dof:       dof,
			Reason:    fmt.Sprintf("too few degrees of freedom (%d)", dof),
		}
	}

	p := 1 - chi2CDF(x, dof)

	// Šidák correction: running several independent hypothesis tests
	// inflates the family-wise failure probability.
	alpha := 1 - math.Pow(1-cfg.Significance, 1/float64(cfg.Trials))

	result := ChiSquaredTrial{
		Statistic: x,
		Dof:       dof,
		PValue:    p,
		Alpha:     alpha,
	}
	if math.IsInf(p, 0) || math.IsNaN(p) || p <= alpha {
		result.Reason = fmt.Sprintf("rejected the null hypothesis (p-value %g, significance level %g)", p, alpha)
		return result
	}
	result.Passed = true
	return result
}

// dumpOctaveTables writes an Octave script plotting the observed and
// expected histograms side by side, for eyeballing where a failed trial went
// wrong.
func dumpOctaveTables(path string, observed, expected []float64, thetaRes int) error {
	var sb strings.Builder
	phiRes := 2 * thetaRes

	writeMatrix := func(name string, table []float64) {
		sb.WriteString(name)
		sb.WriteString(" = [ ")
		for i := 0; i < thetaRes; i++ {
			for j := 0; j < phiRes; j++ {
				fmt.Fprintf(&sb, "%g", table[i*phiRes+j])
				if j+1 < phiRes {
					sb.WriteString(", ")
				}
			}
			if i+1 < thetaRes {
				sb.WriteString("; ")
			}
		}
		sb.WriteString(" ];\n")
	}

	writeMatrix("frequencies", observed)
	writeMatrix("expFrequencies", expected)
	sb.WriteString("colormap(jet);\n" +
		"clf; subplot(2,1,1);\n" +
		"imagesc(frequencies);\n" +
		"title('Observed frequencies');\n" +
		"axis equal;\n" +
		"subplot(2,1,2);\n" +
		"imagesc(expFrequencies);\n" +
		"axis equal;\n" +
		"title('Expected frequencies');\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
