package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/photometric/go-shading/pkg/core"
	"github.com/photometric/go-shading/pkg/geom"
	"github.com/photometric/go-shading/pkg/material"
	"github.com/photometric/go-shading/pkg/quantity"
	"github.com/photometric/go-shading/pkg/verify"
	"github.com/urfave/cli"
)

// A named material under verification. Delta models skip the chi-squared
// histogram test because a delta lobe has no continuous density to bin.
type suiteEntry struct {
	name     string
	material material.Material
	specular bool
}

func verificationSuite() []suiteEntry {
	copperEta, copperK := material.Copper()
	return []suiteEntry{
		{"diffuse", material.NewDiffuse(core.NewVec3(1, 1, 1)), false},
		{"dielectric-smooth", material.NewDielectric(1.5, 0), true},
		{"dielectric-rough", material.NewDielectric(1.5, 0.3), false},
		{"dielectric-aniso", material.NewAnisotropicDielectric(1.5,
			material.NewSolidScalar(0.3), material.NewSolidScalar(0.5), true), false},
		{"conductor-smooth", material.NewConductor(copperEta, copperK, 0), true},
		{"conductor-rough", material.NewConductor(copperEta, copperK, 0.3), false},
	}
}

// testFixture is the surface interaction every suite material is evaluated
// at: the origin, shading normal along +Y, tangent along +X.
func testFixture(flipped bool) material.SurfaceHit {
	geometricNormal := geom.NormalFromVec3[geom.World](core.NewVec3(0, 1, 0))
	if flipped {
		geometricNormal = geometricNormal.Negate()
	}
	return material.SurfaceHit{
		Point:           geom.PointFromVec3[geom.World](core.NewVec3(0, 0, 0)),
		Distance:        quantity.DistanceFromRaw(10),
		GeometricNormal: geometricNormal,
		ShadingNormal:   geom.NormalFromVec3[geom.World](core.NewVec3(0, 1, 0)),
		Dpdu:            geom.DirectionFromVec3[geom.World](core.NewVec3(1, 0, 0)),
	}
}

// Verify runs the chi-squared and energy-conservation suite over the
// built-in materials and reports per-trial outcomes. It returns an error if
// any material fails, so the exit status reflects the verdict.
func Verify(ctx *cli.Context) error {
	setupLogging(ctx)

	chiCfg := verify.DefaultChiSquaredConfig()
	chiCfg.SampleCount = ctx.Int("samples")
	chiCfg.Trials = ctx.Int("trials")
	chiCfg.ThetaResolution = ctx.Int("theta-res")
	chiCfg.DumpDir = ctx.String("dump-dir")

	energyCfg := verify.DefaultEnergyConfig()
	energyCfg.Directions = ctx.Int("directions")
	energyCfg.SampleCount = ctx.Int("energy-samples")

	if chiCfg.DumpDir != "" {
		if err := os.MkdirAll(chiCfg.DumpDir, 0755); err != nil {
			return err
		}
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(ctx.Int64("seed"))))

	failed := 0
	for _, entry := range verificationSuite() {
		// Both surface orientations: shading math must not depend on which
		// side the geometric normal faces.
		for _, flipped := range []bool{false, true} {
			name := entry.name
			if flipped {
				name += "-flipped"
			}
			hit := testFixture(flipped)
			bsdf := entry.material.EvaluateBSDF(hit)

			if !entry.specular {
				trials, err := verify.ChiSquared(sampler, bsdf, name, chiCfg)
				if err != nil {
					return err
				}
				verify.WriteChiSquaredReport(os.Stdout, name, trials)
				if !verify.Passed(trials) {
					failed++
				}
			}

			results, err := verify.EnergyConservation(sampler, hit.ShadingNormal, bsdf, name, energyCfg)
			if err != nil {
				return err
			}
			verify.WriteEnergyReport(os.Stdout, name, results)
			if !verify.EnergyPassed(results) {
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d verification runs failed", failed)
	}
	logger.Notice("all verification runs passed")
	return nil
}
