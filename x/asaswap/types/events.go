package types

// Operation names reported in receipts, logs, and metrics labels.
const (
	OpCreatePool      = "create_pool"
	OpRegister        = "register"
	OpUpdate          = "update"
	OpCloseOut        = "close_out"
	OpClearState      = "clear_state"
	OpSetupEscrow     = "setup_escrow"
	OpAddLiquidity    = "add_liquidity"
	OpRemoveLiquidity = "remove_liquidity"
	OpSwap            = "swap"
	OpWithdraw        = "withdraw"
)
