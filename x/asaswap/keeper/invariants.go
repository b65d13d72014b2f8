package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// CheckInvariants verifies the cross-user accounting invariants of one
// pool: the share total equals the sum of every account's shares, and no
// single account holds more than the total.
func (k *Keeper) CheckInvariants(appID uint64) error {
	pool, err := k.GetPool(appID)
	if err != nil {
		return err
	}
	accts, err := k.ListAccounts(appID)
	if err != nil {
		return err
	}

	var sum uint64
	for _, acct := range accts {
		if acct.LiquidityShares > pool.TotalLiquidityShares {
			return types.ErrOverflow.Wrapf(
				"account %s holds %d shares, pool total is %d",
				acct.Addr, acct.LiquidityShares, pool.TotalLiquidityShares,
			)
		}
		if sum, err = safeAdd(sum, acct.LiquidityShares); err != nil {
			return err
		}
	}
	if sum != pool.TotalLiquidityShares {
		return types.ErrOverflow.Wrapf(
			"pool %d share total %d does not match account sum %d",
			appID, pool.TotalLiquidityShares, sum,
		)
	}
	return nil
}

// CheckAllInvariants runs CheckInvariants over every pool.
func (k *Keeper) CheckAllInvariants() error {
	pools, err := k.ListPools()
	if err != nil {
		return err
	}
	for _, pool := range pools {
		if err := k.CheckInvariants(pool.AppID); err != nil {
			return err
		}
	}
	return nil
}
