// Package bcs implements the subset of Binary Canonical Serialization needed to
// build Sui transaction data.
package bcs

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const AddressLength = 32

var ErrInvalidAddress = errors.New("invalid address")

type Encoder struct {
	buf bytes.Buffer
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// ULEB128 writes an unsigned LEB128 length or enum tag.
func (e *Encoder) ULEB128(v uint64) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		e.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

func (e *Encoder) U8(v uint8) {
	e.buf.WriteByte(v)
}

func (e *Encoder) U16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) U64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

// Raw writes b without a length prefix.
func (e *Encoder) Raw(b []byte) {
	e.buf.Write(b)
}

// Vector writes a length-prefixed byte vector.
func (e *Encoder) Vector(b []byte) {
	e.ULEB128(uint64(len(b)))
	e.buf.Write(b)
}

func (e *Encoder) String(s string) {
	e.Vector([]byte(s))
}

func (e *Encoder) Address(a Address) {
	e.buf.Write(a[:])
}

type Address [AddressLength]byte

// ParseAddress accepts 0x-prefixed hex, left-padding short forms such as 0x6.
func ParseAddress(s string) (Address, error) {
	var a Address
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if h == "" || len(h) > AddressLength*2 {
		return a, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}
	raw, err := hex.DecodeString(h)
	if err != nil {
		return a, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	copy(a[AddressLength-len(raw):], raw)
	return a, nil
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// U64 returns the standalone encoding of a u64 pure argument.
func U64(v uint64) []byte {
	e := NewEncoder()
	e.U64(v)
	return e.Bytes()
}

// String returns the standalone encoding of a Move string pure argument.
func String(s string) []byte {
	e := NewEncoder()
	e.String(s)
	return e.Bytes()
}

// Vector returns the standalone encoding of a vector<u8> pure argument.
func Vector(b []byte) []byte {
	e := NewEncoder()
	e.Vector(b)
	return e.Bytes()
}
