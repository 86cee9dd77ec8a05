package cmd

import (
	"github.com/photometric/go-shading/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("shading")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
