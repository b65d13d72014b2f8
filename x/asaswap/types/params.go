package types

// AssetKind selects the primary-asset variant of a pool.
type AssetKind string

const (
	// AssetKindNative pairs the secondary token against the native currency.
	AssetKindNative AssetKind = "native"
	// AssetKindToken pairs the secondary token against a second fungible
	// token (asset-to-asset pools).
	AssetKindToken AssetKind = "token"
)

// Params holds per-pool configuration. It is fixed at pool construction and
// never mutated afterwards.
type Params struct {
	// RatioDecimalPoints is the fixed-point scale of exchange rates,
	// e.g. 1_000_000 for six decimal places.
	RatioDecimalPoints uint64 `json:"ratio_decimal_points" yaml:"ratio_decimal_points"`

	// FeePct is the swap fee in integer percent, taken from the output side.
	FeePct uint64 `json:"fee_pct" yaml:"fee_pct"`

	// WithdrawalFlatFee is deducted from the primary balance on every
	// withdrawal of a native-primary pool. It covers the escrow's own
	// transaction fee for the payout legs.
	WithdrawalFlatFee uint64 `json:"withdrawal_flat_fee" yaml:"withdrawal_flat_fee"`

	// AssetKind selects the primary-asset variant.
	AssetKind AssetKind `json:"asset_kind" yaml:"asset_kind"`
}

// DefaultParams returns the reference contract's deployment parameters.
func DefaultParams() Params {
	return Params{
		RatioDecimalPoints: 1_000_000,
		FeePct:             3,
		WithdrawalFlatFee:  1000,
		AssetKind:          AssetKindNative,
	}
}

// Validate checks the parameter set.
func (p Params) Validate() error {
	// The slippage gate compares against RatioDecimalPoints/100, which must
	// be a positive integer for the 1% bound to be meaningful.
	if p.RatioDecimalPoints < 100 {
		return ErrInvalidParams.Wrapf("ratio decimal points must be at least 100, got %d", p.RatioDecimalPoints)
	}
	if p.FeePct >= 100 {
		return ErrInvalidParams.Wrapf("fee percent must be below 100, got %d", p.FeePct)
	}
	switch p.AssetKind {
	case AssetKindNative, AssetKindToken:
	default:
		return ErrInvalidParams.Wrapf("unknown asset kind %q", p.AssetKind)
	}
	return nil
}
