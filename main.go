package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"valuationdb/app"
	"valuationdb/config"
)

func main() {
	// Load config from .env file
	cfg := config.LoadFromEnv()

	run := func(ctx context.Context, fn func(context.Context, *app.App) error) error {
		application := app.New(cfg)
		if err := application.Setup(); err != nil {
			return err
		}
		defer application.Close()
		return fn(ctx, application)
	}

	cmd := &cli.Command{
		Name:  "valuationdb",
		Usage: "Valuation database migrations and seeds",
		// No subcommand runs the full pipeline: migrate, seed, verify.
		Action: func(ctx context.Context, c *cli.Command) error {
			return run(ctx, func(ctx context.Context, a *app.App) error {
				return a.RunAll(ctx)
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Apply pending schema migrations",
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, func(ctx context.Context, a *app.App) error {
						return a.RunMigrate(ctx)
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Seed valuation drivers and the news watchlist",
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, func(ctx context.Context, a *app.App) error {
						return a.RunSeed(ctx)
					})
				},
			},
			{
				Name:  "normalize",
				Usage: "Renormalize driver weights so each group sums to 1.0",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "group", Usage: "single valuation group to normalize (default: all)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, func(ctx context.Context, a *app.App) error {
						return a.RunNormalize(ctx, c.String("group"))
					})
				},
			},
			{
				Name:  "verify",
				Usage: "Check per-group weight totals, exit non-zero when out of tolerance",
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, func(ctx context.Context, a *app.App) error {
						return a.RunVerify(ctx)
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show migration ledger, watchlist, and cache status",
				Action: func(ctx context.Context, c *cli.Command) error {
					return run(ctx, func(ctx context.Context, a *app.App) error {
						return a.RunStatus(ctx)
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
