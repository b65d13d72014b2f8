package types

// LegKind is the transfer-instruction type of one batch leg.
type LegKind string

const (
	LegPayment         LegKind = "payment"
	LegTokenTransfer   LegKind = "token_transfer"
	LegApplicationCall LegKind = "application_call"
)

// OnCompletion is the lifecycle effect requested by an application-call leg.
type OnCompletion string

const (
	OnCompletionNoOp       OnCompletion = "noop"
	OnCompletionOptIn      OnCompletion = "opt_in"
	OnCompletionCloseOut   OnCompletion = "close_out"
	OnCompletionClearState OnCompletion = "clear_state"
	OnCompletionUpdate     OnCompletion = "update_application"
	OnCompletionDelete     OnCompletion = "delete_application"
)

// Operation tags carried as the first application argument.
const (
	OpTagUpdate          = "UPDATE"
	OpTagAddLiquidity    = "ADD_LIQUIDITY"
	OpTagRemoveLiquidity = "REMOVE_LIQUIDITY"
	OpTagSwap            = "SWAP"
	OpTagWithdraw        = "WITHDRAW"
	OpTagSetupEscrow     = "SETUP_ESCROW"
)

// TransferLeg is one instruction of an atomic batch, as supplied by the
// surrounding ledger. Amount is the currency amount for payments and the
// token amount for token transfers.
type TransferLeg struct {
	Kind     LegKind `json:"kind" yaml:"kind"`
	Sender   string  `json:"sender" yaml:"sender"`
	Receiver string  `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	AssetID  uint64  `json:"asset_id,omitempty" yaml:"asset_id,omitempty"`
	Amount   uint64  `json:"amount" yaml:"amount"`

	// Application-call fields.
	AppID        uint64       `json:"app_id,omitempty" yaml:"app_id,omitempty"`
	OnCompletion OnCompletion `json:"on_completion,omitempty" yaml:"on_completion,omitempty"`
	Args         [][]byte     `json:"args,omitempty" yaml:"args,omitempty"`
	Accounts     []string     `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// Arg returns the i-th application argument.
func (l *TransferLeg) Arg(i int) ([]byte, bool) {
	if i < 0 || i >= len(l.Args) {
		return nil, false
	}
	return l.Args[i], true
}

// UintArg decodes the i-th application argument as a big-endian integer.
func (l *TransferLeg) UintArg(i int) (uint64, error) {
	bz, ok := l.Arg(i)
	if !ok {
		return 0, ErrMalformedBatch.Wrapf("missing application argument %d", i)
	}
	return Btoi(bz)
}

// Batch is an indivisible group of transfer legs. The engine either accepts
// the whole group or rejects it with no effect.
type Batch struct {
	Legs []TransferLeg `json:"legs" yaml:"legs"`
}

// GroupSize returns the leg count.
func (b *Batch) GroupSize() int { return len(b.Legs) }

// AppCall returns the leading application-call leg. Every operation the
// engine recognizes is dispatched on it.
func (b *Batch) AppCall() (*TransferLeg, error) {
	if len(b.Legs) == 0 {
		return nil, ErrMalformedBatch.Wrap("empty batch")
	}
	leg := &b.Legs[0]
	if leg.Kind != LegApplicationCall {
		return nil, ErrMalformedBatch.Wrapf("leg 0 must be an application call, got %s", leg.Kind)
	}
	return leg, nil
}

// Receipt summarizes an accepted batch: the operation performed and the
// balance movements it caused. The surrounding ledger commits the batch
// only after receiving one.
type Receipt struct {
	Operation string `json:"operation"`
	AppID     uint64 `json:"app_id"`
	Caller    string `json:"caller"`

	SharesMinted uint64 `json:"shares_minted,omitempty"`
	SharesBurned uint64 `json:"shares_burned,omitempty"`
	SecondaryIn  uint64 `json:"secondary_in,omitempty"`
	PrimaryIn    uint64 `json:"primary_in,omitempty"`
	SecondaryOut uint64 `json:"secondary_out,omitempty"`
	PrimaryOut   uint64 `json:"primary_out,omitempty"`
}
