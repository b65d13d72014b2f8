package keeper

import (
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// safeAdd adds two uint64 balances with overflow checking.
func safeAdd(a, b uint64) (uint64, error) {
	if a > (1<<64-1)-b {
		return 0, types.ErrOverflow.Wrapf("%d + %d overflows uint64", a, b)
	}
	return a + b, nil
}

// safeSub subtracts b from a with underflow checking.
func safeSub(a, b uint64) (uint64, error) {
	if a < b {
		return 0, types.ErrUnderflow.Wrapf("cannot subtract %d from %d", b, a)
	}
	return a - b, nil
}
