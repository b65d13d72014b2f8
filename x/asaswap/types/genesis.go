package types

// GenesisState is the full exported state of the module: the default
// parameters for newly created pools plus every pool and account record.
type GenesisState struct {
	Params   Params        `json:"params" yaml:"params"`
	Pools    []Pool        `json:"pools,omitempty" yaml:"pools,omitempty"`
	Accounts []UserAccount `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// DefaultGenesis returns an empty state with reference parameters.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate checks structural consistency: parameter validity, unique pool
// ids, accounts referencing existing pools, and the share-sum invariant
// per pool.
func (gs *GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	pools := make(map[uint64]Pool, len(gs.Pools))
	for _, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := pools[p.AppID]; ok {
			return ErrInvalidParams.Wrapf("duplicate pool %d in genesis", p.AppID)
		}
		pools[p.AppID] = p
	}

	shareSums := make(map[uint64]uint64, len(pools))
	seen := make(map[string]struct{}, len(gs.Accounts))
	for _, a := range gs.Accounts {
		if _, ok := pools[a.AppID]; !ok {
			return ErrPoolNotFound.Wrapf("genesis account %s references unknown pool %d", a.Addr, a.AppID)
		}
		if a.Addr == "" {
			return ErrInvalidParams.Wrapf("genesis account for pool %d has an empty address", a.AppID)
		}
		key := string(AccountKey(a.AppID, a.Addr))
		if _, ok := seen[key]; ok {
			return ErrAlreadyRegistered.Wrapf("duplicate genesis account %s in pool %d", a.Addr, a.AppID)
		}
		seen[key] = struct{}{}

		sum := shareSums[a.AppID] + a.LiquidityShares
		if sum < shareSums[a.AppID] {
			return ErrOverflow.Wrapf("share sum overflow in pool %d", a.AppID)
		}
		shareSums[a.AppID] = sum
	}

	for id, p := range pools {
		if shareSums[id] != p.TotalLiquidityShares {
			return ErrInvalidParams.Wrapf(
				"pool %d total shares %d do not match account sum %d",
				id, p.TotalLiquidityShares, shareSums[id],
			)
		}
	}
	return nil
}
