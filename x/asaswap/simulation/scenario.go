// Package simulation runs scripted batch sequences against a keeper. A
// scenario file is YAML: an optional genesis state plus an ordered list of
// batches, each leg written as plain fields. The runner executes every
// batch, checks the expected outcome, and verifies the pool invariants
// after each accepted batch.
package simulation

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/sebastiangula/asaswap/x/asaswap/keeper"
	"github.com/sebastiangula/asaswap/x/asaswap/types"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Genesis *types.GenesisState `yaml:"genesis"`
	Batches []BatchSpec         `yaml:"batches"`
}

// BatchSpec is one scripted batch.
type BatchSpec struct {
	Name        string    `yaml:"name"`
	ExpectError bool      `yaml:"expect_error"`
	Legs        []LegSpec `yaml:"legs"`
}

// LegSpec is one scripted transfer leg. Numeric fields accept YAML numbers
// or strings. Application arguments are either strings (taken as raw
// bytes, e.g. operation tags) or numbers (encoded big-endian).
type LegSpec struct {
	Kind         string        `yaml:"kind"`
	Sender       string        `yaml:"sender"`
	Receiver     string        `yaml:"receiver"`
	Asset        interface{}   `yaml:"asset"`
	Amount       interface{}   `yaml:"amount"`
	App          interface{}   `yaml:"app"`
	OnCompletion string        `yaml:"on_completion"`
	Args         []interface{} `yaml:"args"`
	Accounts     []string      `yaml:"accounts"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(bz, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &s, nil
}

// Batch converts the spec into an engine batch.
func (b BatchSpec) Batch() (*types.Batch, error) {
	batch := &types.Batch{Legs: make([]types.TransferLeg, 0, len(b.Legs))}
	for i, spec := range b.Legs {
		leg, err := spec.leg()
		if err != nil {
			return nil, fmt.Errorf("batch %q leg %d: %w", b.Name, i, err)
		}
		batch.Legs = append(batch.Legs, leg)
	}
	return batch, nil
}

func (l LegSpec) leg() (types.TransferLeg, error) {
	leg := types.TransferLeg{
		Kind:         types.LegKind(l.Kind),
		Sender:       l.Sender,
		Receiver:     l.Receiver,
		OnCompletion: types.OnCompletion(l.OnCompletion),
		Accounts:     l.Accounts,
	}
	if leg.OnCompletion == "" {
		leg.OnCompletion = types.OnCompletionNoOp
	}

	var err error
	if l.Asset != nil {
		if leg.AssetID, err = cast.ToUint64E(l.Asset); err != nil {
			return leg, fmt.Errorf("asset: %w", err)
		}
	}
	if l.Amount != nil {
		if leg.Amount, err = cast.ToUint64E(l.Amount); err != nil {
			return leg, fmt.Errorf("amount: %w", err)
		}
	}
	if l.App != nil {
		if leg.AppID, err = cast.ToUint64E(l.App); err != nil {
			return leg, fmt.Errorf("app: %w", err)
		}
	}
	for _, arg := range l.Args {
		if s, ok := arg.(string); ok {
			leg.Args = append(leg.Args, []byte(s))
			continue
		}
		v, err := cast.ToUint64E(arg)
		if err != nil {
			return leg, fmt.Errorf("arg %v: %w", arg, err)
		}
		leg.Args = append(leg.Args, types.Itob(v))
	}
	return leg, nil
}

// Run executes the scenario against k. It fails on the first batch whose
// outcome differs from the script, and on any invariant violation after an
// accepted batch.
func (s *Scenario) Run(k *keeper.Keeper, logger log.Logger) error {
	if s.Genesis != nil {
		if err := k.InitGenesis(s.Genesis); err != nil {
			return fmt.Errorf("init genesis: %w", err)
		}
	}

	for i, spec := range s.Batches {
		batch, err := spec.Batch()
		if err != nil {
			return err
		}
		receipt, err := k.Execute(batch)
		if spec.ExpectError {
			if err == nil {
				return fmt.Errorf("batch %d %q: expected rejection, got %s", i, spec.Name, receipt.Operation)
			}
			logger.Info("batch rejected as scripted", "batch", spec.Name, "err", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("batch %d %q: %w", i, spec.Name, err)
		}
		logger.Info("batch applied",
			"batch", spec.Name,
			"operation", receipt.Operation,
			"app_id", receipt.AppID,
		)
		if err := k.CheckAllInvariants(); err != nil {
			return fmt.Errorf("invariants after batch %d %q: %w", i, spec.Name, err)
		}
	}
	return nil
}
