package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// InitGenesis imports a full module state, including the parameters
// applied to newly created pools. The application id counter is moved past
// the highest imported pool so freshly created pools never collide with
// imported ones.
func (k *Keeper) InitGenesis(gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	k.params = gs.Params

	var maxID uint64
	for _, pool := range gs.Pools {
		if err := k.SetPool(pool); err != nil {
			return err
		}
		if pool.AppID > maxID {
			maxID = pool.AppID
		}
	}
	for _, acct := range gs.Accounts {
		if err := k.SetAccount(acct); err != nil {
			return err
		}
	}
	if maxID > 0 {
		if err := k.setNextAppID(maxID + 1); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis walks the store and returns the full module state.
func (k *Keeper) ExportGenesis() (*types.GenesisState, error) {
	pools, err := k.ListPools()
	if err != nil {
		return nil, err
	}
	gs := &types.GenesisState{Params: k.params, Pools: pools}
	for _, pool := range pools {
		accts, err := k.ListAccounts(pool.AppID)
		if err != nil {
			return nil, err
		}
		gs.Accounts = append(gs.Accounts, accts...)
	}
	return gs, nil
}
