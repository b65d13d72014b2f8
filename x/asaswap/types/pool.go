package types

// Pool is the aggregate root of the module: the global balances, liquidity
// share total, and fixed configuration of one market. Balances are the sum
// of all unsettled deposits minus all settled withdrawals; the share total
// equals the sum of every registered account's shares after every batch.
type Pool struct {
	AppID       uint64 `json:"app_id" yaml:"app_id"`
	Params      Params `json:"params" yaml:"params"`
	CreatorAddr string `json:"creator_addr" yaml:"creator_addr"`

	// EscrowAddr is unset until the creator's one-time Update operation and
	// immutable afterwards.
	EscrowAddr string `json:"escrow_addr,omitempty" yaml:"escrow_addr,omitempty"`

	// SecondaryAssetID identifies the traded token. PrimaryAssetID is only
	// meaningful for asset-to-asset pools.
	SecondaryAssetID uint64 `json:"secondary_asset_id" yaml:"secondary_asset_id"`
	PrimaryAssetID   uint64 `json:"primary_asset_id,omitempty" yaml:"primary_asset_id,omitempty"`

	SecondaryBalance     uint64 `json:"secondary_balance" yaml:"secondary_balance"`
	PrimaryBalance       uint64 `json:"primary_balance" yaml:"primary_balance"`
	TotalLiquidityShares uint64 `json:"total_liquidity_shares" yaml:"total_liquidity_shares"`
}

// NewPool returns a freshly created pool with zeroed balances.
func NewPool(appID uint64, params Params, creator string, secondaryAssetID, primaryAssetID uint64) Pool {
	return Pool{
		AppID:            appID,
		Params:           params,
		CreatorAddr:      creator,
		SecondaryAssetID: secondaryAssetID,
		PrimaryAssetID:   primaryAssetID,
	}
}

// ExchangeRate quotes the pool's current secondary:primary price in
// RatioDecimalPoints precision, computed on the pool's present reserves.
func (p Pool) ExchangeRate() (uint64, error) {
	return ExchangeRate(p.PrimaryBalance, p.SecondaryBalance, p.Params.RatioDecimalPoints)
}

// HasLiquidity reports whether both reserves are non-empty. The slippage
// gate only applies to deposits into a funded pool.
func (p Pool) HasLiquidity() bool {
	return p.SecondaryBalance != 0 && p.PrimaryBalance != 0
}

// Adapter returns the transfer-classification strategy matching the pool's
// primary-asset variant.
func (p Pool) Adapter() AssetAdapter {
	if p.Params.AssetKind == AssetKindToken {
		return tokenAdapter{assetID: p.PrimaryAssetID}
	}
	return nativeAdapter{}
}

// Validate checks the pool record's internal consistency.
func (p Pool) Validate() error {
	if p.AppID == 0 {
		return ErrInvalidParams.Wrap("pool app id cannot be zero")
	}
	if err := p.Params.Validate(); err != nil {
		return err
	}
	if p.CreatorAddr == "" {
		return ErrInvalidParams.Wrap("pool creator address cannot be empty")
	}
	if p.Params.AssetKind == AssetKindToken {
		if p.PrimaryAssetID == 0 {
			return ErrInvalidParams.Wrap("asset-to-asset pool requires a primary asset id")
		}
		if p.PrimaryAssetID == p.SecondaryAssetID {
			return ErrInvalidParams.Wrap("primary and secondary asset ids cannot match")
		}
	}
	return nil
}
