package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// addLiquidity handles a 3-leg deposit batch: the application call, a
// secondary-token transfer to the escrow, and a primary-asset transfer to
// the escrow. For a funded pool the deposit's implied price must stay
// strictly within 1% of the pool's current rate.
func (k *Keeper) addLiquidity(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if batch.GroupSize() != 3 {
		return nil, types.ErrMalformedBatch.Wrapf("add liquidity expects 3 legs, got %d", batch.GroupSize())
	}
	pool, err := k.GetPool(call.AppID)
	if err != nil {
		return nil, err
	}
	if pool.EscrowAddr == "" {
		return nil, types.ErrEscrowNotSet.Wrapf("pool %d", call.AppID)
	}
	acct, err := k.GetAccount(call.AppID, call.Sender)
	if err != nil {
		return nil, err
	}

	secondaryLeg := &batch.Legs[1]
	if secondaryLeg.Kind != types.LegTokenTransfer {
		return nil, types.ErrMalformedBatch.Wrapf("leg 1 must be a token transfer, got %s", secondaryLeg.Kind)
	}
	if secondaryLeg.AssetID != pool.SecondaryAssetID {
		return nil, types.ErrMalformedBatch.Wrapf("leg 1 moves asset %d, expected %d", secondaryLeg.AssetID, pool.SecondaryAssetID)
	}
	if secondaryLeg.Receiver != pool.EscrowAddr {
		return nil, types.ErrMalformedBatch.Wrap("leg 1 receiver is not the escrow")
	}
	adapter := pool.Adapter()
	if err := adapter.ValidateIncoming(&batch.Legs[2], pool.EscrowAddr); err != nil {
		return nil, err
	}

	secondaryIn := secondaryLeg.Amount
	primaryIn, _ := adapter.ClassifyIncoming(&batch.Legs[2])
	scale := pool.Params.RatioDecimalPoints

	// Slippage gate: only a funded pool has a rate to deviate from.
	if pool.HasLiquidity() {
		rate, err := pool.ExchangeRate()
		if err != nil {
			return nil, err
		}
		txRatio, err := types.MulDiv(primaryIn, scale, secondaryIn)
		if err != nil {
			return nil, err
		}
		diff := rate - txRatio
		if txRatio > rate {
			diff = txRatio - rate
		}
		rel, err := types.MulDiv(diff, scale, rate)
		if err != nil {
			return nil, err
		}
		if rel >= scale/100 {
			return nil, types.ErrSlippageExceeded.Wrapf(
				"deposit ratio %d vs pool rate %d", txRatio, rate,
			)
		}
	}

	// First deposit bootstraps the share unit 1:1 with the primary amount;
	// later deposits mint proportionally against the primary reserve.
	minted := primaryIn
	if pool.TotalLiquidityShares != 0 {
		if minted, err = types.MulDiv(primaryIn, pool.TotalLiquidityShares, pool.PrimaryBalance); err != nil {
			return nil, err
		}
	}

	if acct.LiquidityShares, err = safeAdd(acct.LiquidityShares, minted); err != nil {
		return nil, err
	}
	if pool.TotalLiquidityShares, err = safeAdd(pool.TotalLiquidityShares, minted); err != nil {
		return nil, err
	}
	if pool.SecondaryBalance, err = safeAdd(pool.SecondaryBalance, secondaryIn); err != nil {
		return nil, err
	}
	if pool.PrimaryBalance, err = safeAdd(pool.PrimaryBalance, primaryIn); err != nil {
		return nil, err
	}

	if err := k.SetAccount(acct); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Operation:    types.OpAddLiquidity,
		AppID:        call.AppID,
		Caller:       call.Sender,
		SharesMinted: minted,
		SecondaryIn:  secondaryIn,
		PrimaryIn:    primaryIn,
	}, nil
}

// removeLiquidity burns the requested shares and reserves the proportional
// redemption of both assets as pending withdrawals. Balances are debited at
// request time; the pending fields are a liability already taken out of
// custody. Floor rounding leaves dust in the pool, never the reverse.
func (k *Keeper) removeLiquidity(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if batch.GroupSize() != 1 {
		return nil, types.ErrMalformedBatch.Wrapf("remove liquidity expects 1 leg, got %d", batch.GroupSize())
	}
	pool, err := k.GetPool(call.AppID)
	if err != nil {
		return nil, err
	}
	acct, err := k.GetAccount(call.AppID, call.Sender)
	if err != nil {
		return nil, err
	}

	shares, err := call.UintArg(1)
	if err != nil {
		return nil, err
	}
	if shares == 0 {
		return nil, types.ErrZeroShares
	}
	if acct.HasPending() {
		return nil, types.ErrPendingWithdrawal.Wrapf("account %s must withdraw first", call.Sender)
	}
	if acct.LiquidityShares < shares {
		return nil, types.ErrInsufficientShares.Wrapf("account holds %d, requested %d", acct.LiquidityShares, shares)
	}

	primaryOut, err := types.MulDiv(pool.PrimaryBalance, shares, pool.TotalLiquidityShares)
	if err != nil {
		return nil, err
	}
	secondaryOut, err := types.MulDiv(pool.SecondaryBalance, shares, pool.TotalLiquidityShares)
	if err != nil {
		return nil, err
	}

	acct.PrimaryToWithdraw = primaryOut
	acct.SecondaryToWithdraw = secondaryOut
	acct.LiquidityShares -= shares
	if pool.TotalLiquidityShares, err = safeSub(pool.TotalLiquidityShares, shares); err != nil {
		return nil, err
	}
	if pool.PrimaryBalance, err = safeSub(pool.PrimaryBalance, primaryOut); err != nil {
		return nil, err
	}
	if pool.SecondaryBalance, err = safeSub(pool.SecondaryBalance, secondaryOut); err != nil {
		return nil, err
	}

	if err := k.SetAccount(acct); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Operation:    types.OpRemoveLiquidity,
		AppID:        call.AppID,
		Caller:       call.Sender,
		SharesBurned: shares,
		PrimaryOut:   primaryOut,
		SecondaryOut: secondaryOut,
	}, nil
}
