// Package ptb builds Sui programmable transaction blocks and encodes them as
// TransactionData for signing.
package ptb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/GlebRadaev/suilottery/pkg/bcs"
)

const (
	ClockObjectID  = "0x6"
	RandomObjectID = "0x8"
)

var ErrUnresolvedObject = errors.New("object input is not resolved")

type argumentKind uint8

const (
	argGasCoin argumentKind = iota
	argInput
	argResult
	argNestedResult
)

type Argument struct {
	kind   argumentKind
	index  uint16
	nested uint16
}

// GasCoin refers to the coin paying for gas.
func GasCoin() Argument {
	return Argument{kind: argGasCoin}
}

type InputKind uint8

const (
	PureInput InputKind = iota
	ObjectInput
)

type Input struct {
	Kind     InputKind
	Pure     []byte
	ObjectID bcs.Address
	Mutable  bool
}

type MoveCall struct {
	Package   bcs.Address
	Module    string
	Function  string
	Arguments []Argument
}

func (m MoveCall) Target() string {
	return fmt.Sprintf("%s::%s::%s", m.Package, m.Module, m.Function)
}

type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

// Command holds exactly one of its fields.
type Command struct {
	MoveCall   *MoveCall
	SplitCoins *SplitCoins
}

type Transaction struct {
	inputs   []Input
	commands []Command
	err      error
}

func New() *Transaction {
	return &Transaction{}
}

// Err reports the first malformed object id passed to the builder.
func (t *Transaction) Err() error {
	return t.err
}

func (t *Transaction) Inputs() []Input {
	return t.inputs
}

func (t *Transaction) Commands() []Command {
	return t.commands
}

// Input returns the input an argument points at.
func (t *Transaction) Input(a Argument) (Input, bool) {
	if a.kind != argInput || int(a.index) >= len(t.inputs) {
		return Input{}, false
	}
	return t.inputs[a.index], true
}

// ObjectIDs lists the object inputs that need on-chain resolution.
func (t *Transaction) ObjectIDs() []bcs.Address {
	var ids []bcs.Address
	for _, in := range t.inputs {
		if in.Kind == ObjectInput {
			ids = append(ids, in.ObjectID)
		}
	}
	return ids
}

func (t *Transaction) Targets() []string {
	var targets []string
	for _, c := range t.commands {
		if c.MoveCall != nil {
			targets = append(targets, c.MoveCall.Target())
		}
	}
	return targets
}

func (t *Transaction) pure(b []byte) Argument {
	t.inputs = append(t.inputs, Input{Kind: PureInput, Pure: b})
	return Argument{kind: argInput, index: uint16(len(t.inputs) - 1)}
}

func (t *Transaction) PureU64(v uint64) Argument {
	return t.pure(bcs.U64(v))
}

func (t *Transaction) PureString(s string) Argument {
	return t.pure(bcs.String(s))
}

func (t *Transaction) PureBytes(b []byte) Argument {
	return t.pure(bcs.Vector(b))
}

// Object adds a mutable object input; repeated ids share one input.
func (t *Transaction) Object(id string) Argument {
	return t.object(id, true)
}

// ReadOnlyObject adds an object input passed by immutable reference.
func (t *Transaction) ReadOnlyObject(id string) Argument {
	return t.object(id, false)
}

func (t *Transaction) Clock() Argument {
	return t.ReadOnlyObject(ClockObjectID)
}

func (t *Transaction) Random() Argument {
	return t.ReadOnlyObject(RandomObjectID)
}

func (t *Transaction) object(id string, mutable bool) Argument {
	addr, err := bcs.ParseAddress(id)
	if err != nil {
		if t.err == nil {
			t.err = fmt.Errorf("object input: %w", err)
		}
		return Argument{kind: argInput}
	}
	for i := range t.inputs {
		if t.inputs[i].Kind == ObjectInput && t.inputs[i].ObjectID == addr {
			t.inputs[i].Mutable = t.inputs[i].Mutable || mutable
			return Argument{kind: argInput, index: uint16(i)}
		}
	}
	t.inputs = append(t.inputs, Input{Kind: ObjectInput, ObjectID: addr, Mutable: mutable})
	return Argument{kind: argInput, index: uint16(len(t.inputs) - 1)}
}

// SplitCoins returns one argument per requested amount.
func (t *Transaction) SplitCoins(coin Argument, amounts ...Argument) []Argument {
	t.commands = append(t.commands, Command{SplitCoins: &SplitCoins{Coin: coin, Amounts: amounts}})
	cmd := uint16(len(t.commands) - 1)
	results := make([]Argument, len(amounts))
	for i := range amounts {
		results[i] = Argument{kind: argNestedResult, index: cmd, nested: uint16(i)}
	}
	return results
}

// MoveCall appends a call to pkg::module::function.
func (t *Transaction) MoveCall(pkg, module, function string, args ...Argument) Argument {
	addr, err := bcs.ParseAddress(pkg)
	if err != nil && t.err == nil {
		t.err = fmt.Errorf("move call package: %w", err)
	}
	t.commands = append(t.commands, Command{MoveCall: &MoveCall{
		Package:   addr,
		Module:    module,
		Function:  function,
		Arguments: args,
	}})
	return Argument{kind: argResult, index: uint16(len(t.commands) - 1)}
}

// GasCoinSpend sums the pure u64 amounts split off the gas coin.
func (t *Transaction) GasCoinSpend() uint64 {
	var total uint64
	for _, c := range t.commands {
		if c.SplitCoins == nil || c.SplitCoins.Coin.kind != argGasCoin {
			continue
		}
		for _, a := range c.SplitCoins.Amounts {
			in, ok := t.Input(a)
			if !ok || in.Kind != PureInput || len(in.Pure) != 8 {
				continue
			}
			total += binary.LittleEndian.Uint64(in.Pure)
		}
	}
	return total
}
