package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// createPool handles a creation call (application id zero). The first
// application argument is the secondary asset id; asset-to-asset pools
// carry the primary asset id as the second argument.
func (k *Keeper) createPool(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if batch.GroupSize() != 1 {
		return nil, types.ErrMalformedBatch.Wrapf("create expects 1 leg, got %d", batch.GroupSize())
	}
	secondaryAssetID, err := call.UintArg(0)
	if err != nil {
		return nil, err
	}
	var primaryAssetID uint64
	if k.params.AssetKind == types.AssetKindToken {
		if primaryAssetID, err = call.UintArg(1); err != nil {
			return nil, err
		}
	}

	appID, err := k.nextAppID()
	if err != nil {
		return nil, err
	}
	if exists, err := k.HasPool(appID); err != nil {
		return nil, err
	} else if exists {
		return nil, types.ErrAlreadyInitialized.Wrapf("pool %d", appID)
	}

	pool := types.NewPool(appID, k.params, call.Sender, secondaryAssetID, primaryAssetID)
	if err := pool.Validate(); err != nil {
		return nil, err
	}

	// All checks passed; counter and pool commit together.
	if err := k.setNextAppID(appID + 1); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{Operation: types.OpCreatePool, AppID: appID, Caller: call.Sender}, nil
}

// register initializes the caller's account to all-zero. Re-registration is
// rejected rather than resetting pending amounts.
func (k *Keeper) register(_ *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if _, err := k.GetPool(call.AppID); err != nil {
		return nil, err
	}
	if exists, err := k.HasAccount(call.AppID, call.Sender); err != nil {
		return nil, err
	} else if exists {
		return nil, types.ErrAlreadyRegistered.Wrapf("account %s in pool %d", call.Sender, call.AppID)
	}
	if err := k.SetAccount(types.NewUserAccount(call.AppID, call.Sender)); err != nil {
		return nil, err
	}
	return &types.Receipt{Operation: types.OpRegister, AppID: call.AppID, Caller: call.Sender}, nil
}

// update sets the escrow address, exactly once, by the creator only. The
// new escrow is the first referenced account of the call.
func (k *Keeper) update(batch *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	if batch.GroupSize() != 1 {
		return nil, types.ErrMalformedBatch.Wrapf("update expects 1 leg, got %d", batch.GroupSize())
	}
	pool, err := k.GetPool(call.AppID)
	if err != nil {
		return nil, err
	}
	if call.Sender != pool.CreatorAddr {
		return nil, types.ErrUnauthorized.Wrapf("update by %s, creator is %s", call.Sender, pool.CreatorAddr)
	}
	if pool.EscrowAddr != "" {
		return nil, types.ErrEscrowAlreadySet.Wrapf("pool %d", call.AppID)
	}
	if len(call.Accounts) == 0 || call.Accounts[0] == "" {
		return nil, types.ErrMalformedBatch.Wrap("update carries no escrow account reference")
	}

	pool.EscrowAddr = call.Accounts[0]
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{Operation: types.OpUpdate, AppID: call.AppID, Caller: call.Sender}, nil
}

// setupEscrow validates the escrow funding group: it is only accepted while
// the escrow address is unset and the leading call is sent by the creator.
// It mutates nothing.
func (k *Keeper) setupEscrow(_ *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	pool, err := k.GetPool(call.AppID)
	if err != nil {
		return nil, err
	}
	if call.Sender != pool.CreatorAddr {
		return nil, types.ErrUnauthorized.Wrapf("escrow setup by %s, creator is %s", call.Sender, pool.CreatorAddr)
	}
	if pool.EscrowAddr != "" {
		return nil, types.ErrEscrowAlreadySet.Wrapf("pool %d", call.AppID)
	}
	return &types.Receipt{Operation: types.OpSetupEscrow, AppID: call.AppID, Caller: call.Sender}, nil
}

// closeOut lets a user leave the pool, but only once nothing is owed in
// either direction: no shares, no pending withdrawals.
func (k *Keeper) closeOut(_ *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	acct, err := k.GetAccount(call.AppID, call.Sender)
	if err != nil {
		return nil, err
	}
	if !acct.IsZero() {
		return nil, types.ErrNonZeroBalance.Wrapf(
			"account %s holds %d shares, %d primary pending, %d secondary pending",
			call.Sender, acct.LiquidityShares, acct.PrimaryToWithdraw, acct.SecondaryToWithdraw,
		)
	}
	if err := k.DeleteAccount(call.AppID, call.Sender); err != nil {
		return nil, err
	}
	return &types.Receipt{Operation: types.OpCloseOut, AppID: call.AppID, Caller: call.Sender}, nil
}

// clearState is the forced exit: the account is removed unconditionally,
// its shares leave the total, and any reserved withdrawal amounts return to
// the pool. The user forfeits whatever they had not withdrawn.
func (k *Keeper) clearState(_ *types.Batch, call *types.TransferLeg) (*types.Receipt, error) {
	pool, err := k.GetPool(call.AppID)
	if err != nil {
		return nil, err
	}
	acct, err := k.GetAccount(call.AppID, call.Sender)
	if err != nil {
		return nil, err
	}

	if pool.TotalLiquidityShares, err = safeSub(pool.TotalLiquidityShares, acct.LiquidityShares); err != nil {
		return nil, err
	}
	if pool.PrimaryBalance, err = safeAdd(pool.PrimaryBalance, acct.PrimaryToWithdraw); err != nil {
		return nil, err
	}
	if pool.SecondaryBalance, err = safeAdd(pool.SecondaryBalance, acct.SecondaryToWithdraw); err != nil {
		return nil, err
	}

	if err := k.DeleteAccount(call.AppID, call.Sender); err != nil {
		return nil, err
	}
	if err := k.SetPool(pool); err != nil {
		return nil, err
	}
	return &types.Receipt{
		Operation:    types.OpClearState,
		AppID:        call.AppID,
		Caller:       call.Sender,
		SharesBurned: acct.LiquidityShares,
	}, nil
}
