package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k := newTestKeeper(t, types.DefaultParams())
	appID := setupPool(t, k)
	_, err := addLiquidity(t, k, appID, lp, 1000, 2000)
	require.NoError(t, err)
	_, err = k.Execute(batch(
		appCall(trader, appID, types.OnCompletionNoOp, []byte(types.OpTagSwap)),
		tokenTransfer(trader, escrow, secondaryAsset, 100),
	))
	require.NoError(t, err)

	gs, err := k.ExportGenesis()
	require.NoError(t, err)
	require.Len(t, gs.Pools, 1)
	require.Len(t, gs.Accounts, 2)
	require.NoError(t, gs.Validate())

	restored := newTestKeeper(t, types.DefaultParams())
	require.NoError(t, restored.InitGenesis(gs))
	require.NoError(t, restored.CheckAllInvariants())

	pool, err := restored.GetPool(appID)
	require.NoError(t, err)
	require.Equal(t, uint64(1100), pool.SecondaryBalance)
	require.Equal(t, uint64(1806), pool.PrimaryBalance)
	require.Equal(t, uint64(2000), pool.TotalLiquidityShares)

	acct, err := restored.GetAccount(appID, trader)
	require.NoError(t, err)
	require.Equal(t, uint64(194), acct.PrimaryToWithdraw)

	// The id counter resumes past the imported pools.
	receipt, err := restored.Execute(batch(
		appCall(creator, 0, types.OnCompletionNoOp, types.Itob(secondaryAsset)),
	))
	require.NoError(t, err)
	require.Equal(t, appID+1, receipt.AppID)
}

func TestInitGenesisAppliesParams(t *testing.T) {
	k := newTestKeeper(t, types.DefaultParams())

	gs := types.DefaultGenesis()
	gs.Params.FeePct = 1
	gs.Params.WithdrawalFlatFee = 0
	require.NoError(t, k.InitGenesis(gs))
	require.Equal(t, gs.Params, k.Params())

	// Exported state carries the imported parameters back out.
	exported, err := k.ExportGenesis()
	require.NoError(t, err)
	require.Equal(t, gs.Params, exported.Params)

	// New pools are configured with the imported parameters: fee 1% turns
	// a 100-secondary swap into floor(2_000_000*100*99/1e8) = 198 primary.
	appID := setupPool(t, k)
	_, err = addLiquidity(t, k, appID, lp, 1000, 2000)
	require.NoError(t, err)
	receipt, err := k.Execute(batch(
		appCall(trader, appID, types.OnCompletionNoOp, []byte(types.OpTagSwap)),
		tokenTransfer(trader, escrow, secondaryAsset, 100),
	))
	require.NoError(t, err)
	require.Equal(t, uint64(198), receipt.PrimaryOut)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k := newTestKeeper(t, types.DefaultParams())
	gs := types.DefaultGenesis()
	gs.Pools = append(gs.Pools, types.NewPool(1, types.DefaultParams(), creator, secondaryAsset, 0))
	gs.Accounts = append(gs.Accounts, types.UserAccount{AppID: 1, Addr: lp, LiquidityShares: 5})

	// Account shares with no matching pool total.
	require.Error(t, k.InitGenesis(gs))
}
