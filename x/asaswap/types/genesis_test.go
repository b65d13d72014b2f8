package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

func TestGenesisValidate(t *testing.T) {
	pool := nativePool()
	pool.TotalLiquidityShares = 300
	pool.PrimaryBalance = 300
	pool.SecondaryBalance = 150

	gs := &types.GenesisState{
		Params: types.DefaultParams(),
		Pools:  []types.Pool{pool},
		Accounts: []types.UserAccount{
			{AppID: 1, Addr: "LP1", LiquidityShares: 200},
			{AppID: 1, Addr: "LP2", LiquidityShares: 100},
		},
	}
	require.NoError(t, gs.Validate())

	// Share total must match the account sum.
	gs.Accounts[1].LiquidityShares = 99
	require.Error(t, gs.Validate())
	gs.Accounts[1].LiquidityShares = 100

	gs.Accounts = append(gs.Accounts, types.UserAccount{AppID: 2, Addr: "LP3"})
	require.ErrorIs(t, gs.Validate(), types.ErrPoolNotFound)
	gs.Accounts = gs.Accounts[:2]

	gs.Accounts = append(gs.Accounts, types.UserAccount{AppID: 1, Addr: "LP1"})
	require.ErrorIs(t, gs.Validate(), types.ErrAlreadyRegistered)
	gs.Accounts = gs.Accounts[:2]

	gs.Pools = append(gs.Pools, pool)
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidParams)
}

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Empty(t, gs.Pools)
	require.Equal(t, types.DefaultParams(), gs.Params)
}
