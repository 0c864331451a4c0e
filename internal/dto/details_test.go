package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
)

func TestNewDetailsResponse(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := detailsservice.Snapshot{
		At: at,
		Lottery: domain.Lottery{
			ID:        "0xa",
			Price:     100_000_000,
			PricePool: 300_000_000,
			StartTime: domain.MillisOf(at.Add(time.Hour)),
			EndTime:   domain.MillisOf(at.Add(2 * time.Hour)),
		},
		Tickets: []domain.Ticket{{ID: "0xt1", Number: 1, Buyer: "0xb"}},
		Winner: &domain.Winner{
			WinningID:  "0xt1",
			Address:    "0xb",
			Prize:      decimal.RequireFromString("0.09"),
			Commission: decimal.RequireFromString("0.01"),
		},
		Flags:    detailsservice.Flags{IsUpcoming: true},
		Controls: detailsservice.Controls{CanWithdrawPrize: true},
		InFlight: []domain.OperationKind{domain.OpWithdrawCommission},
	}

	resp := NewDetailsResponse(s, NewExplorer("https://x"))
	assert.Equal(t, "0.3", resp.Lottery.PricePool)
	assert.Equal(t, string(domain.StatusUpcoming), resp.Lottery.Status)
	assert.True(t, resp.Flags.IsUpcoming)
	require.Len(t, resp.Tickets, 1)
	assert.Equal(t, "https://x/account/0xb", resp.Tickets[0].BuyerURL)
	require.NotNil(t, resp.Winner)
	assert.Equal(t, "0.09", resp.Winner.Prize)
	assert.Equal(t, "0.01", resp.Winner.Commission)
	assert.True(t, resp.Controls.CanWithdrawPrize)
	assert.Equal(t, []string{"withdraw_commission"}, resp.InFlight)
}
