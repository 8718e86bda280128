package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "market-dashboard",
		Usage: "crypto market dashboard backed by the CoinGecko API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the YAML config file",
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP dashboard",
				Action: serve,
			},
			{
				Name:  "markets",
				Usage: "print the market list",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "limit", Value: "10", Usage: "number of coins (5, 10, 20, 50 or 100)"},
					&cli.StringFlag{Name: "filter", Usage: "case-insensitive name or symbol match"},
					&cli.StringFlag{Name: "sort", Value: "market_cap_desc", Usage: "market_cap_desc|asc, price_desc|asc, change_desc|asc"},
				},
				Action: printMarkets,
			},
			{
				Name:      "coin",
				Usage:     "print one coin with its 7 day price range",
				ArgsUsage: "<coin id>",
				Action:    printCoin,
			},
		},
	}
}
