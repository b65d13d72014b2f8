package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

const escrowAddr = "POOL_ESCROW"

func nativePool() types.Pool {
	p := types.NewPool(1, types.DefaultParams(), "CREATOR", 7, 0)
	p.EscrowAddr = escrowAddr
	return p
}

func tokenPool() types.Pool {
	params := types.DefaultParams()
	params.AssetKind = types.AssetKindToken
	p := types.NewPool(1, params, "CREATOR", 7, 9)
	p.EscrowAddr = escrowAddr
	return p
}

func TestNativeAdapter(t *testing.T) {
	adapter := nativePool().Adapter()
	require.Equal(t, types.AssetKindNative, adapter.Kind())

	pay := types.TransferLeg{Kind: types.LegPayment, Sender: "USER", Receiver: escrowAddr, Amount: 500}
	amount, ok := adapter.ClassifyIncoming(&pay)
	require.True(t, ok)
	require.Equal(t, uint64(500), amount)
	require.NoError(t, adapter.ValidateIncoming(&pay, escrowAddr))

	// Token transfers are not the primary asset of a native pool.
	axfer := types.TransferLeg{Kind: types.LegTokenTransfer, AssetID: 9, Receiver: escrowAddr, Amount: 500}
	_, ok = adapter.ClassifyIncoming(&axfer)
	require.False(t, ok)
	require.ErrorIs(t, adapter.ValidateIncoming(&axfer, escrowAddr), types.ErrMalformedBatch)

	// Wrong receiver.
	stray := types.TransferLeg{Kind: types.LegPayment, Receiver: "SOMEONE", Amount: 500}
	require.ErrorIs(t, adapter.ValidateIncoming(&stray, escrowAddr), types.ErrMalformedBatch)

	out := types.TransferLeg{Kind: types.LegPayment, Sender: escrowAddr, Receiver: "USER", Amount: 100}
	require.NoError(t, adapter.ValidateOutgoing(&out, escrowAddr))
	out.Sender = "SOMEONE"
	require.ErrorIs(t, adapter.ValidateOutgoing(&out, escrowAddr), types.ErrMalformedBatch)
}

func TestTokenAdapter(t *testing.T) {
	adapter := tokenPool().Adapter()
	require.Equal(t, types.AssetKindToken, adapter.Kind())

	in := types.TransferLeg{Kind: types.LegTokenTransfer, AssetID: 9, Receiver: escrowAddr, Amount: 250}
	amount, ok := adapter.ClassifyIncoming(&in)
	require.True(t, ok)
	require.Equal(t, uint64(250), amount)
	require.NoError(t, adapter.ValidateIncoming(&in, escrowAddr))

	// The secondary token is not the primary asset.
	secondary := types.TransferLeg{Kind: types.LegTokenTransfer, AssetID: 7, Receiver: escrowAddr, Amount: 250}
	_, ok = adapter.ClassifyIncoming(&secondary)
	require.False(t, ok)
	require.ErrorIs(t, adapter.ValidateIncoming(&secondary, escrowAddr), types.ErrMalformedBatch)

	// Payments are not the primary asset of an asset-to-asset pool.
	pay := types.TransferLeg{Kind: types.LegPayment, Receiver: escrowAddr, Amount: 250}
	require.ErrorIs(t, adapter.ValidateIncoming(&pay, escrowAddr), types.ErrMalformedBatch)

	out := types.TransferLeg{Kind: types.LegTokenTransfer, AssetID: 9, Sender: escrowAddr, Amount: 60}
	require.NoError(t, adapter.ValidateOutgoing(&out, escrowAddr))
	out.AssetID = 8
	require.ErrorIs(t, adapter.ValidateOutgoing(&out, escrowAddr), types.ErrMalformedBatch)
}
