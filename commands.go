package main

import (
	"context"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/cryptochainz/market-dashboard/coins_view"
	"github.com/cryptochainz/market-dashboard/config"
	"github.com/cryptochainz/market-dashboard/core"
)

func loadConfig(cmd *cli.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	logger, err := core.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	registry, _, err := core.Setup(ctx, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "setup services")
	}

	if err := registry.StartAll(ctx); err != nil {
		registry.StopAll()
		return errors.Wrap(err, "start services")
	}

	<-ctx.Done()
	logger.Info("received shutdown signal, stopping services")
	registry.StopAll()
	return nil
}

func printMarkets(ctx context.Context, cmd *cli.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	state := coins_view.NewListViewState().
		WithLimit(coins_view.ParseLimit(cmd.String("limit"))).
		WithFilter(cmd.String("filter")).
		WithSortKey(coins_view.ParseSortKey(cmd.String("sort")))

	services := core.NewServices(cfg, logger)
	body, err := services.Markets.Markets(ctx, strconv.Itoa(state.Limit()))
	if err != nil {
		return err
	}

	coins, err := coins_view.DecodeCoins(body)
	if err != nil {
		return err
	}

	renderMarkets(os.Stdout, coins_view.Transform(coins, state))
	return nil
}

// printCoin always reads the upstream directly; self mode needs a running server.
func printCoin(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return errors.New("coin id is required")
	}

	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	cfg.CoingeckoCoins.Mode = config.CoinsModeDirect

	services := core.NewServices(cfg, logger)
	detail, err := services.Coins.Coin(ctx, id, nil)
	if err != nil {
		return err
	}

	points, chartErr := services.MarketChart.Fetch(ctx, id)
	renderCoin(os.Stdout, detail, points, chartErr)
	return nil
}
