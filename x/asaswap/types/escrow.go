package types

// EscrowPolicy is the custodial account's own authorization rule. It holds
// no mutable state: the escrow signs a batch only when its shape matches a
// recognized operation, so funds can never leave custody except as the
// trailing legs of a withdrawal batch the pool engine has already
// validated.
type EscrowPolicy struct {
	// AppID is the pool application the escrow serves.
	AppID uint64

	// AssetKind selects the expected withdrawal shape: three legs for
	// native-primary pools, four for asset-to-asset pools.
	AssetKind AssetKind
}

// Approve accepts a single-leg asset opt-in (a zero-amount token transfer)
// or a withdrawal group referencing the expected application. Any other
// shape is rejected.
func (p EscrowPolicy) Approve(b *Batch) error {
	switch b.GroupSize() {
	case 1:
		return p.approveOptIn(&b.Legs[0])
	case p.withdrawGroupSize():
		return p.approveWithdraw(b)
	default:
		return ErrMalformedBatch.Wrapf("escrow refuses group of %d legs", b.GroupSize())
	}
}

func (p EscrowPolicy) withdrawGroupSize() int {
	if p.AssetKind == AssetKindToken {
		return 4
	}
	return 3
}

func (p EscrowPolicy) approveOptIn(leg *TransferLeg) error {
	if leg.Kind != LegTokenTransfer {
		return ErrMalformedBatch.Wrapf("escrow opt-in must be a token transfer, got %s", leg.Kind)
	}
	if leg.Amount != 0 {
		return ErrMalformedBatch.Wrapf("escrow opt-in amount must be zero, got %d", leg.Amount)
	}
	return nil
}

func (p EscrowPolicy) approveWithdraw(b *Batch) error {
	call := &b.Legs[0]
	if call.Kind != LegApplicationCall {
		return ErrMalformedBatch.Wrap("withdrawal leg 0 must be an application call")
	}
	if call.AppID != p.AppID {
		return ErrMalformedBatch.Wrapf("withdrawal references application %d, escrow serves %d", call.AppID, p.AppID)
	}
	if tag, ok := call.Arg(0); !ok || string(tag) != OpTagWithdraw {
		return ErrMalformedBatch.Wrap("withdrawal leg 0 is not tagged WITHDRAW")
	}
	if b.Legs[1].Kind != LegTokenTransfer {
		return ErrMalformedBatch.Wrap("withdrawal leg 1 must be a token transfer")
	}
	if p.AssetKind == AssetKindToken {
		if b.Legs[2].Kind != LegTokenTransfer {
			return ErrMalformedBatch.Wrap("withdrawal leg 2 must be a token transfer")
		}
		if b.Legs[3].Kind != LegPayment {
			return ErrMalformedBatch.Wrap("withdrawal leg 3 must be a payment")
		}
		return nil
	}
	if b.Legs[2].Kind != LegPayment {
		return ErrMalformedBatch.Wrap("withdrawal leg 2 must be a payment")
	}
	return nil
}
