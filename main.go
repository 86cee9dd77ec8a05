package main

import (
	"os"

	"github.com/photometric/go-shading/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "shading-verify"
	app.Usage = "statistically verify the scattering models of the shading core"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "verify",
			Usage: "run the chi-squared and energy-conservation suite over the built-in materials",
			Description: `
Draw scattered directions from every built-in material, compare the observed
directional histogram against the density each model claims (pooled
chi-squared test with Šidák-corrected significance), and check that
importance-weighted scattering never gains energy. Both surface orientations
are tested. Failed chi-squared trials can dump their histograms as Octave
scripts for inspection.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "samples",
					Value: 1 << 20,
					Usage: "scattered directions per chi-squared trial",
				},
				cli.IntFlag{
					Name:  "trials",
					Value: 5,
					Usage: "independent wo directions per material",
				},
				cli.IntFlag{
					Name:  "theta-res",
					Value: 80,
					Usage: "polar histogram bins (azimuthal gets twice as many)",
				},
				cli.IntFlag{
					Name:  "directions",
					Value: 64,
					Usage: "wo directions for the energy-conservation test",
				},
				cli.IntFlag{
					Name:  "energy-samples",
					Value: 1 << 16,
					Usage: "scattered directions per energy-conservation direction",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed",
				},
				cli.StringFlag{
					Name:  "dump-dir",
					Usage: "directory for Octave histogram dumps of failed trials",
				},
			},
			Action: cmd.Verify,
		},
	}

	app.Run(os.Args)
}
