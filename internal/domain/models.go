package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Lottery struct {
	ID                  string
	Name                string
	Description         string
	Price               MIST
	StartTime           Millis
	EndTime             Millis
	CreatedAt           Millis
	CreatorAddress      string
	PricePool           MIST
	TicketURL           string
	WinningID           string
	WinnerAddress       string
	PricePoolWithdrawn  bool
	CommissionWithdrawn bool
}

// HasWinner reports whether the backend already knows the winning ticket and its owner.
func (l Lottery) HasWinner() bool {
	return l.WinningID != "" && l.WinnerAddress != ""
}

func (l Lottery) Status(now time.Time) Status {
	return StatusAt(now, l.StartTime.Time(), l.EndTime.Time())
}

type Ticket struct {
	ID        string
	LotteryID string
	Number    uint64
	BoughtAt  Millis
	Buyer     string
}

// Winner is derived on the client and never persisted.
type Winner struct {
	LotteryID  string
	WinningID  string
	Address    string
	Prize      decimal.Decimal
	Commission decimal.Decimal
}

const (
	payoutPercent     = 90
	commissionPercent = 100 - payoutPercent
)

// Prize is the winner's share of price × ticketCount, in SUI.
func Prize(price MIST, ticketCount int) decimal.Decimal {
	return price.SUI().Mul(decimal.NewFromInt(int64(ticketCount))).Mul(decimal.New(payoutPercent, -2))
}

// Commission is the creator's share of price × ticketCount, in SUI.
func Commission(price MIST, ticketCount int) decimal.Decimal {
	return price.SUI().Mul(decimal.NewFromInt(int64(ticketCount))).Mul(decimal.New(commissionPercent, -2))
}

// SameAddress compares Sui addresses ignoring case and leading zero padding.
func SameAddress(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return normalizeAddress(a) == normalizeAddress(b)
}

func normalizeAddress(s string) string {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	return strings.TrimLeft(s, "0")
}
