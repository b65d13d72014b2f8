package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sebastiangula/asaswap/x/asaswap/keeper"
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// Depositing and immediately removing every minted share must never pay
// out more than was deposited; rounding dust stays in the pool.
func TestLiquidityRoundTripNeverGains(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		params := types.DefaultParams()
		params.WithdrawalFlatFee = 0
		k := newTestKeeper(t, params)
		appID := setupPool(t, k)

		seedSecondary := rapid.Uint64Range(1, 1_000_000).Draw(rt, "seedSecondary")
		seedPrimary := rapid.Uint64Range(1, 1_000_000).Draw(rt, "seedPrimary")
		_, err := addLiquidity(t, k, appID, lp, seedSecondary, seedPrimary)
		require.NoError(t, err)

		pool, err := k.GetPool(appID)
		require.NoError(t, err)
		rate, err := pool.ExchangeRate()
		require.NoError(t, err)

		secondaryIn := rapid.Uint64Range(1, 1_000_000).Draw(rt, "secondaryIn")
		primaryIn, err := types.MulDiv(rate, secondaryIn, params.RatioDecimalPoints)
		require.NoError(t, err)
		if primaryIn == 0 {
			rt.Skip("deposit rounds to zero primary")
		}

		receipt, err := addLiquidity(t, k, appID, trader, secondaryIn, primaryIn)
		if types.IsValidationError(err) {
			rt.Skip("deposit rejected by the ratio gate")
		}
		require.NoError(t, err)
		if receipt.SharesMinted == 0 {
			rt.Skip("deposit too small to mint shares")
		}

		_, err = k.Execute(batch(appCall(
			trader, appID, types.OnCompletionNoOp,
			[]byte(types.OpTagRemoveLiquidity), types.Itob(receipt.SharesMinted),
		)))
		require.NoError(t, err)

		acct, err := k.GetAccount(appID, trader)
		require.NoError(t, err)
		require.LessOrEqual(t, acct.SecondaryToWithdraw, secondaryIn)
		require.LessOrEqual(t, acct.PrimaryToWithdraw, primaryIn)
		require.NoError(t, k.CheckAllInvariants())
	})
}

// Random operation sequences: whatever mix of deposits, removals, swaps
// and withdrawals gets accepted, the share accounting stays consistent
// and rejected batches leave no trace.
func TestRandomOperationsPreserveInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		params := types.DefaultParams()
		params.WithdrawalFlatFee = 0
		k := newTestKeeper(t, params)
		appID := setupPool(t, k)
		_, err := addLiquidity(t, k, appID, lp, 10_000, 20_000)
		require.NoError(t, err)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			amount := rapid.Uint64Range(1, 5_000).Draw(rt, "amount")
			var b *types.Batch
			switch rapid.IntRange(0, 3).Draw(rt, "op") {
			case 0:
				pool, err := k.GetPool(appID)
				require.NoError(t, err)
				rate, err := pool.ExchangeRate()
				require.NoError(t, err)
				primaryIn, err := types.MulDiv(rate, amount, params.RatioDecimalPoints)
				require.NoError(t, err)
				b = batch(
					appCall(trader, appID, types.OnCompletionNoOp, []byte(types.OpTagAddLiquidity)),
					tokenTransfer(trader, escrow, secondaryAsset, amount),
					payment(trader, escrow, primaryIn),
				)
			case 1:
				b = batch(appCall(
					trader, appID, types.OnCompletionNoOp,
					[]byte(types.OpTagRemoveLiquidity), types.Itob(amount),
				))
			case 2:
				b = batch(
					appCall(trader, appID, types.OnCompletionNoOp, []byte(types.OpTagSwap)),
					tokenTransfer(trader, escrow, secondaryAsset, amount),
				)
			case 3:
				b = batch(
					appCall(trader, appID, types.OnCompletionNoOp, []byte(types.OpTagSwap)),
					payment(trader, escrow, amount),
				)
			}

			_, err := k.Execute(b)
			if err != nil {
				require.True(t, types.IsValidationError(err) || types.IsArithmeticError(err),
					"unexpected rejection: %v", err)
			}
			require.NoError(t, k.CheckAllInvariants())
			settlePending(t, k, appID, trader)
		}
	})
}

// settlePending drains the account's reserved payouts so later operations
// are not blocked on an outstanding withdrawal.
func settlePending(t *testing.T, k *keeper.Keeper, appID uint64, addr string) {
	t.Helper()
	acct, err := k.GetAccount(appID, addr)
	require.NoError(t, err)
	if !acct.HasPending() {
		return
	}
	_, err = k.Execute(batch(
		appCall(addr, appID, types.OnCompletionNoOp, []byte(types.OpTagWithdraw)),
		tokenTransfer(escrow, addr, secondaryAsset, acct.SecondaryToWithdraw),
		payment(escrow, addr, acct.PrimaryToWithdraw),
	))
	require.NoError(t, err)
	require.NoError(t, k.CheckAllInvariants())
}
