package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// withdraw settles the caller's pending amounts. The batch must carry the
// escrow's payout legs matching the recorded liabilities exactly: a
// secondary-token transfer and a primary transfer out of the escrow, plus,
// for asset-to-asset pools, a trailing payment back to the escrow covering
// its transaction fees. Reserves were already debited when the liability
// was reserved; only the native variant deducts the flat protocol fee here.
func (k *Keeper) withdraw(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
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

	expectedLegs := 3
	if pool.Params.AssetKind == types.AssetKindToken {
		expectedLegs = 4
	}
	if batch.GroupSize() != expectedLegs {
		return nil, types.ErrMalformedBatch.Wrapf("withdraw expects %d legs, got %d", expectedLegs, batch.GroupSize())
	}

	secondaryLeg := &batch.Legs[1]
	if secondaryLeg.Kind != types.LegTokenTransfer {
		return nil, types.ErrMalformedBatch.Wrapf("leg 1 must be a token transfer, got %s", secondaryLeg.Kind)
	}
	if secondaryLeg.AssetID != pool.SecondaryAssetID {
		return nil, types.ErrMalformedBatch.Wrapf("leg 1 moves asset %d, expected %d", secondaryLeg.AssetID, pool.SecondaryAssetID)
	}
	if secondaryLeg.Sender != pool.EscrowAddr {
		return nil, types.ErrMalformedBatch.Wrap("leg 1 sender is not the escrow")
	}
	if secondaryLeg.Amount != acct.SecondaryToWithdraw {
		return nil, types.ErrMalformedBatch.Wrapf(
			"leg 1 pays %d, pending secondary is %d", secondaryLeg.Amount, acct.SecondaryToWithdraw,
		)
	}

	adapter := pool.Adapter()
	primaryLeg := &batch.Legs[2]
	if err := adapter.ValidateOutgoing(primaryLeg, pool.EscrowAddr); err != nil {
		return nil, err
	}
	primaryAmount, _ := adapter.ClassifyOutgoing(primaryLeg)
	if primaryAmount != acct.PrimaryToWithdraw {
		return nil, types.ErrMalformedBatch.Wrapf(
			"leg 2 pays %d, pending primary is %d", primaryAmount, acct.PrimaryToWithdraw,
		)
	}

	if pool.Params.AssetKind == types.AssetKindToken {
		feeLeg := &batch.Legs[3]
		if feeLeg.Kind != types.LegPayment {
			return nil, types.ErrMalformedBatch.Wrapf("leg 3 must be a payment, got %s", feeLeg.Kind)
		}
		if feeLeg.Receiver != pool.EscrowAddr {
			return nil, types.ErrMalformedBatch.Wrap("leg 3 receiver is not the escrow")
		}
	} else if pool.Params.WithdrawalFlatFee != 0 {
		// The escrow pays its own payout transaction fees out of custody.
		if pool.PrimaryBalance, err = safeSub(pool.PrimaryBalance, pool.Params.WithdrawalFlatFee); err != nil {
			return nil, err
		}
	}

	secondaryOut := acct.SecondaryToWithdraw
	primaryOut := acct.PrimaryToWithdraw
	acct.SecondaryToWithdraw = 0
	acct.PrimaryToWithdraw = 0

	if err := k.SetAccount(acct); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Operation:    types.OpWithdraw,
		AppID:        call.AppID,
		Caller:       call.Sender,
		SecondaryOut: secondaryOut,
		PrimaryOut:   primaryOut,
	}, nil
}
