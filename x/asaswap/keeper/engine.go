package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// Execute validates an atomic batch and, on acceptance, applies its state
// mutations and returns a receipt describing them. A rejected batch has no
// effect. The whole batch runs under the keeper's mutex: batches are
// applied one at a time, in submission order.
func (k *Keeper) Execute(batch *types.Batch) (*types.Receipt, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	receipt, err := k.execute(batch)
	if err != nil {
		k.logger.Info("batch rejected", "err", err)
		k.metrics.operationObserved("unknown", "rejected")
		return nil, err
	}

	k.logger.Info("batch accepted",
		"operation", receipt.Operation,
		"app_id", receipt.AppID,
		"caller", receipt.Caller,
	)
	k.metrics.operationObserved(receipt.Operation, "ok")
	if pool, err := k.GetPool(receipt.AppID); err == nil {
		k.metrics.poolObserved(pool)
	}
	return receipt, nil
}

func (k *Keeper) execute(batch *types.Batch) (*types.Receipt, error) {
	call, err := batch.AppCall()
	if err != nil {
		return nil, err
	}

	// Application id zero is a creation call; the keeper allocates the id.
	if call.AppID == 0 {
		return k.createPool(batch, call)
	}

	switch call.OnCompletion {
	case types.OnCompletionOptIn:
		return k.register(batch, call)
	case types.OnCompletionCloseOut:
		return k.closeOut(batch, call)
	case types.OnCompletionClearState:
		return k.clearState(batch, call)
	case types.OnCompletionUpdate, types.OnCompletionDelete:
		// The application is immutable after creation.
		return nil, types.ErrUnauthorized.Wrap("application update and delete are disabled")
	}

	tag, ok := call.Arg(0)
	if !ok {
		return nil, types.ErrMalformedBatch.Wrap("missing operation tag")
	}
	switch string(tag) {
	case types.OpTagUpdate:
		return k.update(batch, call)
	case types.OpTagAddLiquidity:
		return k.addLiquidity(batch, call)
	case types.OpTagRemoveLiquidity:
		return k.removeLiquidity(batch, call)
	case types.OpTagSwap:
		return k.swap(batch, call)
	case types.OpTagWithdraw:
		return k.withdraw(batch, call)
	case types.OpTagSetupEscrow:
		return k.setupEscrow(batch, call)
	default:
		return nil, types.ErrUnknownOperation.Wrapf("tag %q", tag)
	}
}
