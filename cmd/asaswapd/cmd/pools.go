package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

func newPoolsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "Print every persisted pool as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, kv, err := newKeeper(v, log.NewLogger(os.Stderr))
			if err != nil {
				return err
			}
			defer kv.Close()

			pools, err := k.ListPools()
			if err != nil {
				return err
			}
			if len(pools) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pools")
				return nil
			}
			bz, err := yaml.Marshal(pools)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
}
