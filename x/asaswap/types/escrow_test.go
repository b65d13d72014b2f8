package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

func TestEscrowPolicyOptIn(t *testing.T) {
	policy := types.EscrowPolicy{AppID: 42, AssetKind: types.AssetKindNative}

	optIn := &types.Batch{Legs: []types.TransferLeg{
		{Kind: types.LegTokenTransfer, Sender: escrowAddr, Receiver: escrowAddr, AssetID: 7, Amount: 0},
	}}
	require.NoError(t, policy.Approve(optIn))

	// Opt-in must move nothing.
	optIn.Legs[0].Amount = 1
	require.ErrorIs(t, policy.Approve(optIn), types.ErrMalformedBatch)

	pay := &types.Batch{Legs: []types.TransferLeg{
		{Kind: types.LegPayment, Sender: escrowAddr, Receiver: "THIEF", Amount: 1000},
	}}
	require.ErrorIs(t, policy.Approve(pay), types.ErrMalformedBatch)
}

func TestEscrowPolicyWithdraw(t *testing.T) {
	policy := types.EscrowPolicy{AppID: 42, AssetKind: types.AssetKindNative}

	valid := func() *types.Batch {
		return &types.Batch{Legs: []types.TransferLeg{
			{Kind: types.LegApplicationCall, Sender: "USER", AppID: 42, Args: [][]byte{[]byte(types.OpTagWithdraw)}},
			{Kind: types.LegTokenTransfer, Sender: escrowAddr, Receiver: "USER", AssetID: 7, Amount: 10},
			{Kind: types.LegPayment, Sender: escrowAddr, Receiver: "USER", Amount: 194},
		}}
	}
	require.NoError(t, policy.Approve(valid()))

	b := valid()
	b.Legs[0].AppID = 43
	require.ErrorIs(t, policy.Approve(b), types.ErrMalformedBatch)

	b = valid()
	b.Legs[0].Args[0] = []byte(types.OpTagSwap)
	require.ErrorIs(t, policy.Approve(b), types.ErrMalformedBatch)

	b = valid()
	b.Legs[2].Kind = types.LegTokenTransfer
	require.ErrorIs(t, policy.Approve(b), types.ErrMalformedBatch)

	// Two legs match no recognized shape.
	b = valid()
	b.Legs = b.Legs[:2]
	require.ErrorIs(t, policy.Approve(b), types.ErrMalformedBatch)
}

func TestEscrowPolicyWithdrawTokenVariant(t *testing.T) {
	policy := types.EscrowPolicy{AppID: 42, AssetKind: types.AssetKindToken}

	b := &types.Batch{Legs: []types.TransferLeg{
		{Kind: types.LegApplicationCall, Sender: "USER", AppID: 42, Args: [][]byte{[]byte(types.OpTagWithdraw)}},
		{Kind: types.LegTokenTransfer, Sender: escrowAddr, Receiver: "USER", AssetID: 7, Amount: 10},
		{Kind: types.LegTokenTransfer, Sender: escrowAddr, Receiver: "USER", AssetID: 9, Amount: 20},
		{Kind: types.LegPayment, Sender: "USER", Receiver: escrowAddr, Amount: 2000},
	}}
	require.NoError(t, policy.Approve(b))

	// The 3-leg native shape is not valid for an asset-to-asset escrow.
	b.Legs = b.Legs[:3]
	require.ErrorIs(t, policy.Approve(b), types.ErrMalformedBatch)
}
