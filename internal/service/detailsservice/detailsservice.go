package detailsservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/contract"
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

type Wallet interface {
	Address() string
	SignAndExecute(ctx context.Context, tx *ptb.Transaction) (*chain.TxResult, error)
}

type Gateway interface {
	QueryEvents(ctx context.Context, digest string) ([]chain.Event, error)
}

type Mirror interface {
	GetTickets(ctx context.Context, lotteryID string) ([]domain.Ticket, error)
	RecordTicket(ctx context.Context, t domain.Ticket, pricePool domain.MIST) error
	SetWinner(ctx context.Context, lotteryID, winningID string) (string, error)
	MarkPrizeWithdrawn(ctx context.Context, lotteryID string) (bool, error)
	MarkCommissionWithdrawn(ctx context.Context, lotteryID string) (bool, error)
}

type Journal interface {
	Record(ctx context.Context, o domain.Outcome) error
}

var (
	ErrInFlight     = errors.New("operation is already in progress")
	ErrNotAvailable = errors.New("operation is not available for this lottery")
)

type Service struct {
	contract *contract.Contract
	wallet   Wallet
	gateway  Gateway
	mirror   Mirror
	journal  Journal
	now      func() time.Time
}

func New(c *contract.Contract, wallet Wallet, gateway Gateway, mirror Mirror, journal Journal) *Service {
	return &Service{
		contract: c,
		wallet:   wallet,
		gateway:  gateway,
		mirror:   mirror,
		journal:  journal,
		now:      time.Now,
	}
}

// Open builds the details view for a lottery handed over by the list. A
// failed ticket fetch leaves the history empty.
func (s *Service) Open(ctx context.Context, lottery domain.Lottery) *View {
	v := &View{
		svc:      s,
		lottery:  lottery,
		tickets:  make([]domain.Ticket, 0),
		inFlight: make(map[domain.OperationKind]bool),
	}

	tickets, err := s.mirror.GetTickets(ctx, lottery.ID)
	if err != nil {
		zap.L().Error("error fetching lottery tickets", zap.String("lottery_id", lottery.ID), zap.Error(err))
	} else if tickets != nil {
		v.tickets = tickets
	}

	if lottery.HasWinner() {
		v.winner = &domain.Winner{
			LotteryID: lottery.ID,
			WinningID: lottery.WinningID,
			Address:   lottery.WinnerAddress,
		}
		v.prizeWithdrawn = lottery.PricePoolWithdrawn
		v.commissionWithdrawn = lottery.CommissionWithdrawn
	}
	return v
}

func (s *Service) execute(ctx context.Context, outcome *domain.Outcome, tx *ptb.Transaction) (*chain.TxResult, error) {
	res, err := s.wallet.SignAndExecute(ctx, tx)
	if res != nil {
		outcome.Chain.Digest = res.Digest
	}
	if err != nil {
		zap.L().Error("transaction failed",
			zap.String("kind", string(outcome.Kind)),
			zap.String("lottery_id", outcome.LotteryID),
			zap.Error(err))
		outcome.Chain.Err = err
		return nil, err
	}
	return res, nil
}

func (s *Service) events(ctx context.Context, outcome domain.Outcome) ([]chain.Event, error) {
	events, err := s.gateway.QueryEvents(ctx, outcome.Chain.Digest)
	if err != nil {
		zap.L().Error("failed to query events", zap.String("digest", outcome.Chain.Digest), zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *Service) mirrorFailed(outcome *domain.Outcome, err error) {
	zap.L().Error("error mirroring outcome",
		zap.String("kind", string(outcome.Kind)),
		zap.String("lottery_id", outcome.LotteryID),
		zap.String("digest", outcome.Chain.Digest),
		zap.Error(err))
	outcome.Mirror.Err = err
}

func (s *Service) record(ctx context.Context, o domain.Outcome) {
	o.At = s.now()
	if err := s.journal.Record(ctx, o); err != nil {
		zap.L().Warn("failed to journal outcome", zap.String("kind", string(o.Kind)), zap.Error(err))
	}
}
