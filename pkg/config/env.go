package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
)

// exchangeEnv carries the per-provider credential blocks read from the
// environment. Adding a provider means adding a field with its prefix.
type exchangeEnv struct {
	Binance  ExchangeKeys `envPrefix:"BINANCE_"`
	Coinbase ExchangeKeys `envPrefix:"COINBASE_"`
}

// sectionFromEnv builds one typed section: declared defaults first, then the
// process environment on top. The environment never fails the build — if a
// value cannot be converted (say a non-integer BACKTEST_DAYS) the defaulted
// section is returned intact together with the error, which the Manager
// records as a diagnostic.
func sectionFromEnv[T any]() (T, error) {
	var section T
	if err := defaults.Set(&section); err != nil {
		return section, fmt.Errorf("set defaults: %w", err)
	}
	if err := env.Parse(&section); err != nil {
		var clean T
		_ = defaults.Set(&clean)
		return clean, fmt.Errorf("read environment: %w", err)
	}
	return section, nil
}

// exchangesFromEnv reads every known provider's credentials into the
// provider-keyed map the snapshot exposes.
func exchangesFromEnv() (map[string]ExchangeKeys, error) {
	carrier, err := sectionFromEnv[exchangeEnv]()
	return map[string]ExchangeKeys{
		ProviderBinance:  carrier.Binance,
		ProviderCoinbase: carrier.Coinbase,
	}, err
}
