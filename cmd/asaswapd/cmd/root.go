// Package cmd wires the asaswapd command line. Configuration is resolved
// through viper: flags first, then an optional config file, then defaults.
package cmd

import (
	"fmt"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebastiangula/asaswap/pkg/store"
	"github.com/sebastiangula/asaswap/x/asaswap/keeper"
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// NewRootCmd builds the asaswapd root command.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "asaswapd",
		Short: "AMM settlement engine for atomically-grouped transfer batches",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfg := v.GetString("config"); cfg != "" {
				v.SetConfigFile(cfg)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config %s: %w", cfg, err)
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a config file")
	flags.String("store", "memory", "store backend: memory or pebble")
	flags.String("db-path", "asaswap.db", "pebble database path")
	flags.Uint64("ratio-decimal-points", 1_000_000, "fixed-point scale of exchange rates")
	flags.Uint64("fee-pct", 3, "swap fee in integer percent")
	flags.Uint64("withdrawal-flat-fee", 1000, "flat fee deducted per withdrawal (native pools)")
	flags.String("asset-kind", string(types.AssetKindNative), "primary asset variant: native or token")

	rootCmd.AddCommand(
		newSimulateCmd(v),
		newPoolsCmd(v),
	)
	return rootCmd
}

func paramsFromConfig(v *viper.Viper) types.Params {
	return types.Params{
		RatioDecimalPoints: v.GetUint64("ratio-decimal-points"),
		FeePct:             v.GetUint64("fee-pct"),
		WithdrawalFlatFee:  v.GetUint64("withdrawal-flat-fee"),
		AssetKind:          types.AssetKind(v.GetString("asset-kind")),
	}
}

func openStore(v *viper.Viper) (store.KVStore, error) {
	switch backend := v.GetString("store"); backend {
	case "memory":
		return store.NewMemory(), nil
	case "pebble":
		return store.OpenPebble(v.GetString("db-path"))
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func newKeeper(v *viper.Viper, logger log.Logger, opts ...keeper.Option) (*keeper.Keeper, store.KVStore, error) {
	kv, err := openStore(v)
	if err != nil {
		return nil, nil, err
	}
	k, err := keeper.NewKeeper(kv, logger, paramsFromConfig(v), opts...)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return k, kv, nil
}
