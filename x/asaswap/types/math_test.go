package types_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint64
		want    uint64
		wantErr error
	}{
		{name: "exact", a: 6, b: 4, c: 8, want: 3},
		{name: "truncates", a: 7, b: 3, c: 4, want: 5},
		{name: "zero numerator", a: 0, b: 12345, c: 7, want: 0},
		{name: "wide intermediate", a: 1 << 63, b: 4, c: 8, want: 1 << 62},
		{name: "rate precision", a: 2000, b: 1_000_000, c: 1000, want: 2_000_000},
		{name: "division by zero", a: 1, b: 1, c: 0, wantErr: types.ErrDivisionByZero},
		{name: "overflow", a: 1 << 63, b: 4, c: 1, wantErr: types.ErrOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := types.MulDiv(tc.a, tc.b, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// MulDiv must replicate floor(a*b/c) over arbitrary-precision integers for
// every input whose result fits in uint64.
func TestMulDivMatchesBigInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint64().Draw(t, "a")
		b := rapid.Uint64().Draw(t, "b")
		c := rapid.Uint64Range(1, 1<<64-1).Draw(t, "c")

		want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		want.Quo(want, new(big.Int).SetUint64(c))

		got, err := types.MulDiv(a, b, c)
		if !want.IsUint64() {
			require.ErrorIs(t, err, types.ErrOverflow)
			return
		}
		require.NoError(t, err)
		require.Equal(t, want.Uint64(), got)
	})
}

func TestExchangeRate(t *testing.T) {
	rate, err := types.ExchangeRate(2000, 1000, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(2_000_000), rate)

	// Rate is floor-rounded in scale precision.
	rate, err = types.ExchangeRate(1, 3, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(333_333), rate)

	_, err = types.ExchangeRate(2000, 0, 1_000_000)
	require.ErrorIs(t, err, types.ErrDivisionByZero)
	require.True(t, types.IsArithmeticError(err))
}

func TestBtoiItob(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 32, 1<<64 - 1} {
		got, err := types.Btoi(types.Itob(v))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	// Short arguments decode as their big-endian value.
	got, err := types.Btoi([]byte{0x01, 0x00})
	require.NoError(t, err)
	require.Equal(t, uint64(256), got)

	_, err = types.Btoi(make([]byte, 9))
	require.ErrorIs(t, err, types.ErrMalformedBatch)
}
