package keeper

import (
	"cosmossdk.io/math"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// swap handles a 2-leg batch: the application call plus exactly one inbound
// transfer to the escrow, of either asset. The payout is priced on the
// exchange rate of the pre-trade reserves, with the fee taken
// multiplicatively from the output side, and is reserved as a pending
// withdrawal rather than paid inline.
func (k *Keeper) swap(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if batch.GroupSize() != 2 {
		return nil, types.ErrMalformedBatch.Wrapf("swap expects 2 legs, got %d", batch.GroupSize())
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
	if acct.HasPending() {
		return nil, types.ErrPendingWithdrawal.Wrapf("account %s must withdraw first", call.Sender)
	}

	// Rate on pre-trade reserves, for both directions.
	rate, err := pool.ExchangeRate()
	if err != nil {
		return nil, err
	}
	scale := pool.Params.RatioDecimalPoints
	keep := 100 - pool.Params.FeePct

	in := &batch.Legs[1]
	adapter := pool.Adapter()
	receipt := &types.Receipt{Operation: types.OpSwap, AppID: call.AppID, Caller: call.Sender}

	switch {
	case in.Kind == types.LegTokenTransfer && in.AssetID == pool.SecondaryAssetID:
		if in.Receiver != pool.EscrowAddr {
			return nil, types.ErrMalformedBatch.Wrap("swap leg receiver is not the escrow")
		}
		// primary owed = floor(rate * in * (100-fee) / (scale * 100))
		owed, err := quoUint64(
			math.NewIntFromUint64(rate).
				Mul(math.NewIntFromUint64(in.Amount)).
				Mul(math.NewIntFromUint64(keep)),
			math.NewIntFromUint64(scale).MulRaw(100),
		)
		if err != nil {
			return nil, err
		}
		if owed > pool.PrimaryBalance {
			return nil, types.ErrInsufficientLiquidity.Wrapf(
				"swap asks %d primary, reserve holds %d", owed, pool.PrimaryBalance,
			)
		}
		pool.SecondaryBalance, err = safeAdd(pool.SecondaryBalance, in.Amount)
		if err != nil {
			return nil, err
		}
		pool.PrimaryBalance -= owed
		acct.PrimaryToWithdraw = owed
		receipt.SecondaryIn = in.Amount
		receipt.PrimaryOut = owed

	default:
		if err := adapter.ValidateIncoming(in, pool.EscrowAddr); err != nil {
			return nil, err
		}
		amount, _ := adapter.ClassifyIncoming(in)
		if rate == 0 {
			return nil, types.ErrDivisionByZero.Wrap("pool rate is zero")
		}
		// secondary owed = floor(in * (100-fee) * scale / (100 * rate))
		owed, err := quoUint64(
			math.NewIntFromUint64(amount).
				Mul(math.NewIntFromUint64(keep)).
				Mul(math.NewIntFromUint64(scale)),
			math.NewIntFromUint64(rate).MulRaw(100),
		)
		if err != nil {
			return nil, err
		}
		if owed > pool.SecondaryBalance {
			return nil, types.ErrInsufficientLiquidity.Wrapf(
				"swap asks %d secondary, reserve holds %d", owed, pool.SecondaryBalance,
			)
		}
		pool.PrimaryBalance, err = safeAdd(pool.PrimaryBalance, amount)
		if err != nil {
			return nil, err
		}
		pool.SecondaryBalance -= owed
		acct.SecondaryToWithdraw = owed
		receipt.PrimaryIn = amount
		receipt.SecondaryOut = owed
	}

	if err := k.SetAccount(acct); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return receipt, nil
}

// quoUint64 divides two wide integers and checks the quotient back into
// uint64 range.
func quoUint64(num, den math.Int) (uint64, error) {
	if den.IsZero() {
		return 0, types.ErrDivisionByZero
	}
	q := num.Quo(den)
	if !q.IsUint64() {
		return 0, types.ErrOverflow.Wrapf("quotient %s does not fit in uint64", q)
	}
	return q.Uint64(), nil
}
