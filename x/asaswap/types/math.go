package types

import (
	"cosmossdk.io/math"
)

// MulDiv computes floor(a*b/c) with a 128-bit-wide intermediate so the
// product a*b cannot overflow. It fails with ErrDivisionByZero when c is
// zero and with ErrOverflow when the result does not fit in a uint64.
// Truncation direction matters to the caller: all share and payout
// calculations round down so that dust stays in the pool.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivisionByZero.Wrapf("muldiv(%d, %d, 0)", a, b)
	}
	res := math.NewIntFromUint64(a).
		Mul(math.NewIntFromUint64(b)).
		Quo(math.NewIntFromUint64(c))
	if !res.IsUint64() {
		return 0, ErrOverflow.Wrapf("muldiv(%d, %d, %d) does not fit in uint64", a, b, c)
	}
	return res.Uint64(), nil
}

// ExchangeRate quotes the secondary:primary price in scale precision:
// floor(primary * scale / secondary). Callers must only compute a rate on a
// non-empty pool; an empty secondary side fails with ErrDivisionByZero.
func ExchangeRate(primaryBalance, secondaryBalance, scale uint64) (uint64, error) {
	if secondaryBalance == 0 {
		return 0, ErrDivisionByZero.Wrap("exchange rate on empty secondary reserve")
	}
	return MulDiv(primaryBalance, scale, secondaryBalance)
}

// Btoi decodes a big-endian unsigned integer argument. Arguments longer
// than eight bytes are rejected.
func Btoi(bz []byte) (uint64, error) {
	if len(bz) > 8 {
		return 0, ErrMalformedBatch.Wrapf("integer argument is %d bytes, max 8", len(bz))
	}
	var v uint64
	for _, b := range bz {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// Itob encodes v as an eight-byte big-endian argument.
func Itob(v uint64) []byte {
	bz := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		bz[i] = byte(v)
		v >>= 8
	}
	return bz
}
