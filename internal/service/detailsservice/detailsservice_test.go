package detailsservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/contract"
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

const (
	creator = "0xc0"
	winner  = "0xw1"
	other   = "0xf2"
)

var (
	start = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end   = start.Add(24 * time.Hour)
)

type mocks struct {
	wallet  *MockWallet
	gateway *MockGateway
	mirror  *MockMirror
	journal *MockJournal
}

func NewMock(t *testing.T, now time.Time) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		wallet:  NewMockWallet(ctrl),
		gateway: NewMockGateway(ctrl),
		mirror:  NewMockMirror(ctrl),
		journal: NewMockJournal(ctrl),
	}
	c := contract.New(&config.Config{PackageID: "0x2a", Module: "decentralized_lottery", OwnerObjectID: "0xb"})
	s := New(c, m.wallet, m.gateway, m.mirror, m.journal)
	s.now = func() time.Time { return now }
	m.journal.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return s, m
}

func testLottery() domain.Lottery {
	return domain.Lottery{
		ID:             "0xa",
		Name:           "Spring",
		Price:          100_000_000,
		StartTime:      domain.MillisOf(start),
		EndTime:        domain.MillisOf(end),
		CreatorAddress: creator,
		PricePool:      5_000_000_000,
	}
}

func withWinner(l domain.Lottery) domain.Lottery {
	l.WinningID = "0xt2"
	l.WinnerAddress = winner
	return l
}

func twoTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "0xt1", LotteryID: "0xa", Number: 1, Buyer: other},
		{ID: "0xt2", LotteryID: "0xa", Number: 2, Buyer: winner},
	}
}

func TestOpen(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(winner).AnyTimes()

	l := withWinner(testLottery())
	l.PricePoolWithdrawn = true
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(twoTickets(), nil)

	snap := service.Open(context.Background(), l).Snapshot()
	require.NotNil(t, snap.Winner)
	assert.Equal(t, "0xt2", snap.Winner.WinningID)
	assert.Equal(t, "0.18", snap.Winner.Prize.String())
	assert.Equal(t, "0.02", snap.Winner.Commission.String())
	assert.Equal(t, end.Add(time.Hour), snap.At)
	assert.Len(t, snap.Tickets, 2)
	assert.True(t, snap.PrizeWithdrawn)
	assert.True(t, snap.Flags.IsWinner)
	assert.True(t, snap.Flags.IsEnded)
	assert.False(t, snap.Controls.CanWithdrawPrize)
	assert.False(t, snap.Controls.CanDetermineWinner)
}

func TestOpen_TicketsUnavailable(t *testing.T) {
	service, m := NewMock(t, start)
	m.wallet.EXPECT().Address().Return("").AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, errors.New("timeout"))

	snap := service.Open(context.Background(), testLottery()).Snapshot()
	assert.Empty(t, snap.Tickets)
	assert.Nil(t, snap.Winner)
}

func TestFlagsPartitionTime(t *testing.T) {
	moments := []time.Time{
		start.Add(-time.Hour),
		start,
		start.Add(time.Millisecond),
		end,
		end.Add(time.Millisecond),
	}
	for _, now := range moments {
		service, m := NewMock(t, now)
		m.wallet.EXPECT().Address().Return(other).AnyTimes()
		m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)

		f := service.Open(context.Background(), testLottery()).Snapshot().Flags
		count := 0
		for _, b := range []bool{f.IsUpcoming, f.IsActive, f.IsEnded} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, now.String())
	}
}

func TestWithdrawPrizeVisibility(t *testing.T) {
	tests := []struct {
		name           string
		connected      string
		prizeWithdrawn bool
		visible        bool
	}{
		{name: "winner, not withdrawn", connected: winner, prizeWithdrawn: false, visible: true},
		{name: "winner, withdrawn", connected: winner, prizeWithdrawn: true, visible: false},
		{name: "not winner, not withdrawn", connected: other, prizeWithdrawn: false, visible: false},
		{name: "not winner, withdrawn", connected: other, prizeWithdrawn: true, visible: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, end.Add(time.Hour))
			m.wallet.EXPECT().Address().Return(tt.connected).AnyTimes()
			m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(twoTickets(), nil)

			l := withWinner(testLottery())
			l.PricePoolWithdrawn = tt.prizeWithdrawn
			snap := service.Open(context.Background(), l).Snapshot()
			assert.Equal(t, tt.visible, snap.Controls.CanWithdrawPrize)
		})
	}
}

func TestWithdrawCommissionVisibility(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(creator).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil).Times(2)

	noWinner := service.Open(context.Background(), testLottery()).Snapshot()
	assert.False(t, noWinner.Controls.CanWithdrawCommission)
	assert.True(t, noWinner.Controls.CanDetermineWinner)

	snap := service.Open(context.Background(), withWinner(testLottery())).Snapshot()
	assert.True(t, snap.Flags.IsCreator)
	assert.True(t, snap.Controls.CanWithdrawCommission)
	assert.False(t, snap.Controls.CanWithdrawPrize)
}

func ticketEvent(pool string) []chain.Event {
	return []chain.Event{{ParsedJSON: json.RawMessage(`{
		"id": "0xt3", "lotter_id": "0xa", "buyer": "` + other + `",
		"ticket_number": "3", "bought_at": "1740800000000", "price_pool": "` + pool + `"
	}`)}}
}

func TestBuyTicket_PoolFromEvent(t *testing.T) {
	tests := []struct {
		name      string
		mirrorErr error
	}{
		{name: "mirrored"},
		{name: "mirror rejects", mirrorErr: errors.New("500")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, start.Add(-time.Hour))
			m.wallet.EXPECT().Address().Return(other).AnyTimes()
			m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(twoTickets(), nil)
			view := service.Open(context.Background(), testLottery())

			m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx *ptb.Transaction) (*chain.TxResult, error) {
					assert.Equal(t, uint64(100_000_000), tx.GasCoinSpend())
					return &chain.TxResult{Digest: "D2"}, nil
				})
			m.gateway.EXPECT().QueryEvents(gomock.Any(), "D2").Return(ticketEvent("300000000"), nil)
			m.mirror.EXPECT().RecordTicket(gomock.Any(), gomock.Any(), domain.MIST(300_000_000)).DoAndReturn(
				func(_ context.Context, ticket domain.Ticket, _ domain.MIST) error {
					assert.Equal(t, uint64(3), ticket.Number)
					return tt.mirrorErr
				})

			outcome, err := view.BuyTicket(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.mirrorErr != nil, outcome.Partial())

			snap := view.Snapshot()
			assert.Equal(t, "0.3", snap.Lottery.PricePool.String())
			require.Len(t, snap.Tickets, 3)
			assert.Equal(t, "0xt3", snap.Tickets[2].ID)
			assert.Empty(t, snap.InFlight)
		})
	}
}

func TestBuyTicket_ChainFailure(t *testing.T) {
	service, m := NewMock(t, start.Add(-time.Hour))
	m.wallet.EXPECT().Address().Return(other).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)
	view := service.Open(context.Background(), testLottery())

	m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient gas"))

	outcome, err := view.BuyTicket(context.Background())
	assert.Error(t, err)
	assert.False(t, outcome.Mirror.Attempted)
	assert.Equal(t, domain.MIST(5_000_000_000), view.Snapshot().Lottery.PricePool)
}

func TestBuyTicket_EventsUnavailable(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	service, m := NewMock(t, start.Add(-time.Hour))
	m.wallet.EXPECT().Address().Return(other).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)
	view := service.Open(context.Background(), testLottery())

	m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&chain.TxResult{Digest: "D2"}, nil)
	m.gateway.EXPECT().QueryEvents(gomock.Any(), "D2").Return(nil, errors.New("not indexed"))

	outcome, err := view.BuyTicket(context.Background())
	require.Error(t, err)
	assert.Equal(t, "D2", outcome.Chain.Digest)
	assert.False(t, outcome.Mirror.Attempted)
	assert.Equal(t, 1, logs.FilterMessage("failed to query events").Len())
	assert.Empty(t, view.Snapshot().Tickets)
}

func TestBuyTicket_NotUpcoming(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(other).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)
	view := service.Open(context.Background(), testLottery())

	_, err := view.BuyTicket(context.Background())
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestDetermineWinner(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(winner).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(twoTickets(), nil)
	view := service.Open(context.Background(), testLottery())

	m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&chain.TxResult{Digest: "D3"}, nil)
	m.gateway.EXPECT().QueryEvents(gomock.Any(), "D3").Return([]chain.Event{{ParsedJSON: json.RawMessage(`{"winner":"0xt2"}`)}}, nil)
	m.mirror.EXPECT().SetWinner(gomock.Any(), "0xa", "0xt2").Return(winner, nil)

	outcome, err := view.DetermineWinner(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.MirrorSucceeded())

	snap := view.Snapshot()
	require.NotNil(t, snap.Winner)
	assert.Equal(t, winner, snap.Winner.Address)
	assert.Equal(t, "0.18", snap.Winner.Prize.String())
	assert.False(t, snap.Controls.CanDetermineWinner)
	assert.True(t, snap.Controls.CanWithdrawPrize)

	_, err = view.DetermineWinner(context.Background())
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestDetermineWinner_MirrorFailure(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(winner).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)
	view := service.Open(context.Background(), testLottery())

	m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&chain.TxResult{Digest: "D3"}, nil)
	m.gateway.EXPECT().QueryEvents(gomock.Any(), "D3").Return([]chain.Event{{ParsedJSON: json.RawMessage(`{"winner":"0xt2"}`)}}, nil)
	m.mirror.EXPECT().SetWinner(gomock.Any(), "0xa", "0xt2").Return("", errors.New("503"))

	outcome, err := view.DetermineWinner(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.Partial())
	assert.Nil(t, view.Snapshot().Winner)
}

func TestWithdrawals(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	// the creator won their own lottery
	m.wallet.EXPECT().Address().Return(creator).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(twoTickets(), nil)
	l := testLottery()
	l.WinningID = "0xt2"
	l.WinnerAddress = creator
	view := service.Open(context.Background(), l)

	m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *ptb.Transaction) (*chain.TxResult, error) {
			require.Len(t, tx.Targets(), 1)
			return &chain.TxResult{Digest: "D4"}, nil
		}).Times(2)
	m.mirror.EXPECT().MarkPrizeWithdrawn(gomock.Any(), "0xa").Return(true, nil)
	m.mirror.EXPECT().MarkCommissionWithdrawn(gomock.Any(), "0xa").Return(false, errors.New("502"))

	_, err := view.WithdrawPrize(context.Background())
	require.NoError(t, err)
	outcome, err := view.WithdrawCommission(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.Partial())

	snap := view.Snapshot()
	assert.True(t, snap.PrizeWithdrawn)
	assert.False(t, snap.Controls.CanWithdrawPrize)
	assert.False(t, snap.CommissionWithdrawn)
	assert.True(t, snap.Controls.CanWithdrawCommission)
}

func TestInFlightIsPerOperation(t *testing.T) {
	service, m := NewMock(t, end.Add(time.Hour))
	m.wallet.EXPECT().Address().Return(creator).AnyTimes()
	m.mirror.EXPECT().GetTickets(gomock.Any(), "0xa").Return(nil, nil)
	l := testLottery()
	l.WinningID = "0xt2"
	l.WinnerAddress = creator
	view := service.Open(context.Background(), l)

	entered := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *ptb.Transaction) (*chain.TxResult, error) {
				close(entered)
				<-release
				return nil, errors.New("user rejected")
			}),
		m.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(nil, errors.New("user rejected")),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = view.WithdrawPrize(context.Background())
	}()
	<-entered

	assert.Equal(t, []domain.OperationKind{domain.OpWithdrawPrize}, view.Snapshot().InFlight)
	_, err := view.WithdrawPrize(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	_, err = view.WithdrawCommission(context.Background())
	assert.EqualError(t, err, "user rejected")

	close(release)
	<-done
	assert.Empty(t, view.Snapshot().InFlight)
}
