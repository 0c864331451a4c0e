package detailsservice

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/chain/contract"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

// View is the state of one opened lottery. Each operation holds only its
// own in-flight flag, so different operations may overlap.
type View struct {
	svc *Service

	mu                  sync.Mutex
	lottery             domain.Lottery
	tickets             []domain.Ticket
	winner              *domain.Winner
	prizeWithdrawn      bool
	commissionWithdrawn bool
	inFlight            map[domain.OperationKind]bool
}

type Flags struct {
	IsUpcoming bool
	IsActive   bool
	IsEnded    bool
	IsCreator  bool
	IsWinner   bool
}

type Controls struct {
	CanBuy                bool
	CanDetermineWinner    bool
	CanWithdrawPrize      bool
	CanWithdrawCommission bool
}

// Snapshot is the view as of At; flags and controls are computed for that instant.
type Snapshot struct {
	At                  time.Time
	Lottery             domain.Lottery
	Tickets             []domain.Ticket
	Winner              *domain.Winner
	PrizeWithdrawn      bool
	CommissionWithdrawn bool
	Connected           string
	Flags               Flags
	Controls            Controls
	InFlight            []domain.OperationKind
}

func (v *View) Lottery() domain.Lottery {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lottery
}

func (v *View) Snapshot() Snapshot {
	connected := v.svc.wallet.Address()
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot(connected)
}

func (v *View) snapshot(connected string) Snapshot {
	now := v.svc.now()
	l := v.lottery
	start, end := l.StartTime.Time(), l.EndTime.Time()

	s := Snapshot{
		At:                  now,
		Lottery:             l,
		Tickets:             append([]domain.Ticket(nil), v.tickets...),
		PrizeWithdrawn:      v.prizeWithdrawn,
		CommissionWithdrawn: v.commissionWithdrawn,
		Connected:           connected,
		Flags: Flags{
			IsUpcoming: domain.IsUpcoming(now, start),
			IsActive:   domain.IsActive(now, start, end),
			IsEnded:    domain.IsEnded(now, end),
			IsCreator:  domain.SameAddress(connected, l.CreatorAddress),
		},
	}
	if v.winner != nil {
		w := *v.winner
		w.Prize = domain.Prize(l.Price, len(v.tickets))
		w.Commission = domain.Commission(l.Price, len(v.tickets))
		s.Winner = &w
		s.Flags.IsWinner = domain.SameAddress(connected, w.Address)
	}
	s.Controls = Controls{
		CanBuy:                s.Flags.IsUpcoming,
		CanDetermineWinner:    s.Flags.IsEnded && s.Winner == nil,
		CanWithdrawPrize:      s.Winner != nil && s.Flags.IsWinner && !v.prizeWithdrawn,
		CanWithdrawCommission: s.Winner != nil && s.Flags.IsCreator && !v.commissionWithdrawn,
	}
	for kind, busy := range v.inFlight {
		if busy {
			s.InFlight = append(s.InFlight, kind)
		}
	}
	sort.Slice(s.InFlight, func(i, j int) bool { return s.InFlight[i] < s.InFlight[j] })
	return s
}

// acquire marks kind as running if it is idle and allowed by the current controls.
func (v *View) acquire(kind domain.OperationKind, allowed func(Controls) bool) (func(), error) {
	connected := v.svc.wallet.Address()
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.inFlight[kind] {
		return nil, ErrInFlight
	}
	if !allowed(v.snapshot(connected).Controls) {
		return nil, ErrNotAvailable
	}
	v.inFlight[kind] = true
	return func() {
		v.mu.Lock()
		v.inFlight[kind] = false
		v.mu.Unlock()
	}, nil
}

// BuyTicket pays the ticket price from the gas coin. The pool shown
// afterwards is the one reported by the chain event.
func (v *View) BuyTicket(ctx context.Context) (domain.Outcome, error) {
	lottery := v.Lottery()
	outcome := domain.Outcome{Kind: domain.OpBuyTicket, LotteryID: lottery.ID}
	release, err := v.acquire(outcome.Kind, func(c Controls) bool { return c.CanBuy })
	if err != nil {
		return outcome, err
	}
	defer release()

	s := v.svc
	if _, err := s.execute(ctx, &outcome, s.contract.BuyTicket(lottery.ID, lottery.Price)); err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}
	events, err := s.events(ctx, outcome)
	if err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}
	bought, err := contract.ParseTicketBought(events)
	if err != nil {
		zap.L().Error("unexpected ticket event", zap.String("digest", outcome.Chain.Digest), zap.Error(err))
		s.record(ctx, outcome)
		return outcome, err
	}
	ticket := bought.Ticket()
	if ticket.LotteryID == "" {
		ticket.LotteryID = lottery.ID
	}

	outcome.Mirror.Attempted = true
	if err := s.mirror.RecordTicket(ctx, ticket, bought.PricePool); err != nil {
		s.mirrorFailed(&outcome, err)
	}

	v.mu.Lock()
	v.lottery.PricePool = bought.PricePool
	v.tickets = append(v.tickets, ticket)
	v.mu.Unlock()

	s.record(ctx, outcome)
	zap.L().Info("ticket bought", zap.String("lottery_id", lottery.ID), zap.Uint64("ticket_number", ticket.Number))
	return outcome, nil
}

// DetermineWinner draws the winning ticket on chain and adopts the winner
// address the backend resolves for it.
func (v *View) DetermineWinner(ctx context.Context) (domain.Outcome, error) {
	lottery := v.Lottery()
	outcome := domain.Outcome{Kind: domain.OpDetermineWinner, LotteryID: lottery.ID}
	release, err := v.acquire(outcome.Kind, func(c Controls) bool { return c.CanDetermineWinner })
	if err != nil {
		return outcome, err
	}
	defer release()

	s := v.svc
	if _, err := s.execute(ctx, &outcome, s.contract.DetermineWinner(lottery.ID)); err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}
	events, err := s.events(ctx, outcome)
	if err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}
	drawn, err := contract.ParseWinnerDetermined(events)
	if err != nil {
		zap.L().Error("unexpected winner event", zap.String("digest", outcome.Chain.Digest), zap.Error(err))
		s.record(ctx, outcome)
		return outcome, err
	}

	outcome.Mirror.Attempted = true
	address, err := s.mirror.SetWinner(ctx, lottery.ID, drawn.Winner)
	if err != nil {
		s.mirrorFailed(&outcome, err)
	} else {
		v.mu.Lock()
		v.winner = &domain.Winner{
			LotteryID: lottery.ID,
			WinningID: drawn.Winner,
			Address:   address,
		}
		v.lottery.WinningID = drawn.Winner
		v.lottery.WinnerAddress = address
		v.mu.Unlock()
	}

	s.record(ctx, outcome)
	zap.L().Info("winner determined", zap.String("lottery_id", lottery.ID), zap.String("winning_id", drawn.Winner))
	return outcome, nil
}

func (v *View) WithdrawPrize(ctx context.Context) (domain.Outcome, error) {
	lottery := v.Lottery()
	outcome := domain.Outcome{Kind: domain.OpWithdrawPrize, LotteryID: lottery.ID}
	release, err := v.acquire(outcome.Kind, func(c Controls) bool { return c.CanWithdrawPrize })
	if err != nil {
		return outcome, err
	}
	defer release()

	v.mu.Lock()
	winningID := v.winner.WinningID
	v.mu.Unlock()

	s := v.svc
	if _, err := s.execute(ctx, &outcome, s.contract.WithdrawPrize(lottery.ID, winningID)); err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}

	outcome.Mirror.Attempted = true
	withdrawn, err := s.mirror.MarkPrizeWithdrawn(ctx, lottery.ID)
	if err != nil {
		s.mirrorFailed(&outcome, err)
	} else {
		v.mu.Lock()
		v.prizeWithdrawn = withdrawn
		v.lottery.PricePoolWithdrawn = withdrawn
		v.mu.Unlock()
	}

	s.record(ctx, outcome)
	return outcome, nil
}

func (v *View) WithdrawCommission(ctx context.Context) (domain.Outcome, error) {
	lottery := v.Lottery()
	outcome := domain.Outcome{Kind: domain.OpWithdrawCommission, LotteryID: lottery.ID}
	release, err := v.acquire(outcome.Kind, func(c Controls) bool { return c.CanWithdrawCommission })
	if err != nil {
		return outcome, err
	}
	defer release()

	s := v.svc
	if _, err := s.execute(ctx, &outcome, s.contract.WithdrawCommission(lottery.ID)); err != nil {
		s.record(ctx, outcome)
		return outcome, err
	}

	outcome.Mirror.Attempted = true
	withdrawn, err := s.mirror.MarkCommissionWithdrawn(ctx, lottery.ID)
	if err != nil {
		s.mirrorFailed(&outcome, err)
	} else {
		v.mu.Lock()
		v.commissionWithdrawn = withdrawn
		v.lottery.CommissionWithdrawn = withdrawn
		v.mu.Unlock()
	}

	s.record(ctx, outcome)
	return outcome, nil
}
