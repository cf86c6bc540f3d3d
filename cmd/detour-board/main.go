package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "detour-board",
		Usage: "serve transit detour message boards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level for one-shot commands (trace|debug|info|warn|error)",
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			renderCommand(),
			inspectFeedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
