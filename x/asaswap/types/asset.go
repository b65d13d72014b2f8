package types

// AssetAdapter abstracts how the primary side of a pool reads and validates
// transfer legs. The engine is written once against this capability set;
// the two pool variants differ only in which legs count as primary-asset
// transfers.
type AssetAdapter interface {
	// Kind returns the variant this adapter implements.
	Kind() AssetKind

	// ClassifyIncoming reports whether leg moves the primary asset and, if
	// so, its amount. It checks the transfer kind and asset id only; use
	// ValidateIncoming to also check the receiver.
	ClassifyIncoming(leg *TransferLeg) (uint64, bool)

	// ClassifyOutgoing mirrors ClassifyIncoming for payout legs.
	ClassifyOutgoing(leg *TransferLeg) (uint64, bool)

	// ValidateIncoming checks that leg is a primary-asset transfer into the
	// escrow account.
	ValidateIncoming(leg *TransferLeg, escrowAddr string) error

	// ValidateOutgoing checks that leg is a primary-asset transfer out of
	// the escrow account.
	ValidateOutgoing(leg *TransferLeg, escrowAddr string) error
}

// nativeAdapter treats payments of the native currency as the primary asset.
type nativeAdapter struct{}

func (nativeAdapter) Kind() AssetKind { return AssetKindNative }

func (nativeAdapter) ClassifyIncoming(leg *TransferLeg) (uint64, bool) {
	if leg.Kind != LegPayment {
		return 0, false
	}
	return leg.Amount, true
}

func (a nativeAdapter) ClassifyOutgoing(leg *TransferLeg) (uint64, bool) {
	return a.ClassifyIncoming(leg)
}

func (nativeAdapter) ValidateIncoming(leg *TransferLeg, escrowAddr string) error {
	if leg.Kind != LegPayment {
		return ErrMalformedBatch.Wrapf("primary leg must be a payment, got %s", leg.Kind)
	}
	if leg.Receiver != escrowAddr {
		return ErrMalformedBatch.Wrap("primary leg receiver is not the escrow")
	}
	return nil
}

func (nativeAdapter) ValidateOutgoing(leg *TransferLeg, escrowAddr string) error {
	if leg.Kind != LegPayment {
		return ErrMalformedBatch.Wrapf("primary payout leg must be a payment, got %s", leg.Kind)
	}
	if leg.Sender != escrowAddr {
		return ErrMalformedBatch.Wrap("primary payout leg sender is not the escrow")
	}
	return nil
}

// tokenAdapter treats transfers of a configured fungible token as the
// primary asset (asset-to-asset pools).
type tokenAdapter struct {
	assetID uint64
}

func (tokenAdapter) Kind() AssetKind { return AssetKindToken }

func (a tokenAdapter) ClassifyIncoming(leg *TransferLeg) (uint64, bool) {
	if leg.Kind != LegTokenTransfer || leg.AssetID != a.assetID {
		return 0, false
	}
	return leg.Amount, true
}

func (a tokenAdapter) ClassifyOutgoing(leg *TransferLeg) (uint64, bool) {
	return a.ClassifyIncoming(leg)
}

func (a tokenAdapter) ValidateIncoming(leg *TransferLeg, escrowAddr string) error {
	if leg.Kind != LegTokenTransfer {
		return ErrMalformedBatch.Wrapf("primary leg must be a token transfer, got %s", leg.Kind)
	}
	if leg.AssetID != a.assetID {
		return ErrMalformedBatch.Wrapf("primary leg moves asset %d, expected %d", leg.AssetID, a.assetID)
	}
	if leg.Receiver != escrowAddr {
		return ErrMalformedBatch.Wrap("primary leg receiver is not the escrow")
	}
	return nil
}

func (a tokenAdapter) ValidateOutgoing(leg *TransferLeg, escrowAddr string) error {
	if leg.Kind != LegTokenTransfer {
		return ErrMalformedBatch.Wrapf("primary payout leg must be a token transfer, got %s", leg.Kind)
	}
	if leg.AssetID != a.assetID {
		return ErrMalformedBatch.Wrapf("primary payout leg moves asset %d, expected %d", leg.AssetID, a.assetID)
	}
	if leg.Sender != escrowAddr {
		return ErrMalformedBatch.Wrap("primary payout leg sender is not the escrow")
	}
	return nil
}
