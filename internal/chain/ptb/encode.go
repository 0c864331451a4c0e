package ptb

import (
	"fmt"

	"github.com/GlebRadaev/suilottery/pkg/bcs"
)

const digestLength = 32

type ObjectRef struct {
	ID      bcs.Address
	Version uint64
	Digest  []byte
}

// ResolvedObject is the on-chain view of an object input.
type ResolvedObject struct {
	Ref                  ObjectRef
	Shared               bool
	InitialSharedVersion uint64
}

type GasData struct {
	Payment []ObjectRef
	Owner   bcs.Address
	Price   uint64
	Budget  uint64
}

// Encode serializes the transaction as TransactionData::V1 with no expiration.
func Encode(tx *Transaction, sender bcs.Address, gas GasData, objects map[bcs.Address]ResolvedObject) ([]byte, error) {
	if tx.err != nil {
		return nil, tx.err
	}
	e := bcs.NewEncoder()
	e.ULEB128(0) // TransactionData::V1
	e.ULEB128(0) // TransactionKind::ProgrammableTransaction

	e.ULEB128(uint64(len(tx.inputs)))
	for _, in := range tx.inputs {
		if err := encodeInput(e, in, objects); err != nil {
			return nil, err
		}
	}

	e.ULEB128(uint64(len(tx.commands)))
	for _, c := range tx.commands {
		switch {
		case c.MoveCall != nil:
			e.ULEB128(0)
			e.Address(c.MoveCall.Package)
			e.String(c.MoveCall.Module)
			e.String(c.MoveCall.Function)
			e.ULEB128(0) // type arguments
			encodeArguments(e, c.MoveCall.Arguments)
		case c.SplitCoins != nil:
			e.ULEB128(2)
			encodeArgument(e, c.SplitCoins.Coin)
			encodeArguments(e, c.SplitCoins.Amounts)
		default:
			return nil, fmt.Errorf("empty command")
		}
	}

	e.Address(sender)

	e.ULEB128(uint64(len(gas.Payment)))
	for _, ref := range gas.Payment {
		if err := encodeObjectRef(e, ref); err != nil {
			return nil, err
		}
	}
	e.Address(gas.Owner)
	e.U64(gas.Price)
	e.U64(gas.Budget)

	e.ULEB128(0) // TransactionExpiration::None
	return e.Bytes(), nil
}

func encodeInput(e *bcs.Encoder, in Input, objects map[bcs.Address]ResolvedObject) error {
	if in.Kind == PureInput {
		e.ULEB128(0)
		e.Vector(in.Pure)
		return nil
	}
	obj, ok := objects[in.ObjectID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnresolvedObject, in.ObjectID)
	}
	e.ULEB128(1)
	if obj.Shared {
		e.ULEB128(1)
		e.Address(in.ObjectID)
		e.U64(obj.InitialSharedVersion)
		e.Bool(in.Mutable)
		return nil
	}
	e.ULEB128(0)
	return encodeObjectRef(e, obj.Ref)
}

func encodeObjectRef(e *bcs.Encoder, ref ObjectRef) error {
	if len(ref.Digest) != digestLength {
		return fmt.Errorf("object %s: digest must be %d bytes, got %d", ref.ID, digestLength, len(ref.Digest))
	}
	e.Address(ref.ID)
	e.U64(ref.Version)
	e.Vector(ref.Digest)
	return nil
}

func encodeArguments(e *bcs.Encoder, args []Argument) {
	e.ULEB128(uint64(len(args)))
	for _, a := range args {
		encodeArgument(e, a)
	}
}

func encodeArgument(e *bcs.Encoder, a Argument) {
	e.ULEB128(uint64(a.kind))
	switch a.kind {
	case argInput, argResult:
		e.U16(a.index)
	case argNestedResult:
		e.U16(a.index)
		e.U16(a.nested)
	}
}
