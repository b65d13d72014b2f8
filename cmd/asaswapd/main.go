package main

import (
	"os"

	"github.com/sebastiangula/asaswap/cmd/asaswapd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
