package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/detour-board/config"
	"github.com/theoremus-urban-solutions/detour-board/detours"
	"github.com/theoremus-urban-solutions/detour-board/internal"
	"github.com/theoremus-urban-solutions/detour-board/server"
	"github.com/theoremus-urban-solutions/detour-board/upstream"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP board server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.yml (default: ./config.yml when present)",
			},
		},
		Action: func(c *cli.Context) error {
			var err error
			if path := c.String("config"); path != "" {
				err = config.LoadAppConfigFrom(path)
			} else {
				err = config.LoadAppConfig()
			}
			if err != nil {
				return err
			}
			cfg := config.Config
			internal.InitLogging(cfg.Logging.Level, cfg.Logging.Format)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := upstream.NewClient(nil)
			reg := detours.NewConfiguredRegistry(ctx, cfg, client, log.Logger.With().Str("component", "detours").Logger())

			// Warm the board behind the configured defaults.
			if _, err := reg.Get(config.DefaultBoardQuery(cfg).Sources); err != nil {
				log.Warn().Err(err).Msg("Could not start default board")
			}

			srvErr := server.New(cfg, reg, log.Logger).ListenAndServe(ctx)
			stop()
			reg.Wait()
			return srvErr
		},
	}
}
