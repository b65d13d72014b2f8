package types

// UserAccount tracks one participant's share balance and the amounts owed
// to them but not yet paid out. Nonzero pending amounts block new swaps,
// liquidity removal, and close-out until a withdrawal batch clears them.
type UserAccount struct {
	AppID uint64 `json:"app_id" yaml:"app_id"`
	Addr  string `json:"addr" yaml:"addr"`

	LiquidityShares     uint64 `json:"liquidity_shares" yaml:"liquidity_shares"`
	PrimaryToWithdraw   uint64 `json:"primary_to_withdraw" yaml:"primary_to_withdraw"`
	SecondaryToWithdraw uint64 `json:"secondary_to_withdraw" yaml:"secondary_to_withdraw"`
}

// NewUserAccount returns an all-zero account, the state set on registration.
func NewUserAccount(appID uint64, addr string) UserAccount {
	return UserAccount{AppID: appID, Addr: addr}
}

// HasPending reports whether a withdrawal is owed on either side.
func (a UserAccount) HasPending() bool {
	return a.PrimaryToWithdraw != 0 || a.SecondaryToWithdraw != 0
}

// IsZero reports whether the account may be closed out.
func (a UserAccount) IsZero() bool {
	return a.LiquidityShares == 0 && !a.HasPending()
}
