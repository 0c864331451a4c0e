package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// SUI has a fixed factor of 10^9 MIST.
const suiDecimals = 9

var ErrInvalidAmount = errors.New("invalid amount")

// MIST is an amount in the smallest unit of SUI.
type MIST uint64

// ParseSUI converts a whole-coin amount such as "0.1" into MIST.
func ParseSUI(s string) (MIST, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	mist := d.Shift(suiDecimals)
	if !mist.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, suiDecimals)
	}
	n := mist.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
	}
	return MIST(n.Uint64()), nil
}

// SUI converts the amount to whole coins.
func (m MIST) SUI() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(m)), -suiDecimals)
}

func (m MIST) String() string {
	return m.SUI().String()
}

// UnmarshalJSON accepts both JSON numbers and decimal strings; Sui encodes u64 as strings.
func (m *MIST) UnmarshalJSON(b []byte) error {
	raw, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if raw == "" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		// The backend has been seen returning floats such as 1e9.
		d, derr := decimal.NewFromString(raw)
		if derr != nil || d.IsNegative() || !d.IsInteger() {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
		}
		n := d.BigInt()
		if !n.IsUint64() {
			return fmt.Errorf("%w: %s overflows", ErrInvalidAmount, raw)
		}
		v = n.Uint64()
	}
	*m = MIST(v)
	return nil
}

// Millis is a timestamp in milliseconds since the Unix epoch.
type Millis int64

func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (ms Millis) Time() time.Time {
	return time.UnixMilli(int64(ms))
}

// UnmarshalJSON accepts numbers, numeric strings and RFC3339 strings.
func (ms *Millis) UnmarshalJSON(b []byte) error {
	raw, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if raw == "" {
		*ms = 0
		return nil
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*ms = Millis(v)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*ms = Millis(int64(f))
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	*ms = MillisOf(t)
	return nil
}

func unquoteNumber(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	return string(b), nil
}

// Uint is a u64 counter, such as a ticket number, that may arrive as a JSON string.
type Uint uint64

func (u *Uint) UnmarshalJSON(b []byte) error {
	raw, err := unquoteNumber(b)
	if err != nil {
		return err
	}
	if raw == "" {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}
	*u = Uint(v)
	return nil
}
