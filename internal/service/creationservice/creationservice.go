package creationservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/contract"
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

type Wallet interface {
	SignAndExecute(ctx context.Context, tx *ptb.Transaction) (*chain.TxResult, error)
}

type Gateway interface {
	QueryEvents(ctx context.Context, digest string) ([]chain.Event, error)
}

type Mirror interface {
	CreateLottery(ctx context.Context, l domain.Lottery) error
}

type Journal interface {
	Record(ctx context.Context, o domain.Outcome) error
}

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateMirroring  State = "mirroring"
)

var (
	ErrBusy           = errors.New("a lottery is already being created")
	ErrIncompleteForm = errors.New("all fields are required")
	ErrInvalidPrice   = errors.New("ticket price is not a valid SUI amount")
)

type Form struct {
	Name        string
	Description string
	TicketPrice string
	StartTime   time.Time
	EndTime     time.Time
	TicketURL   string
}

func (f Form) complete() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.Description) != "" &&
		strings.TrimSpace(f.TicketPrice) != "" &&
		strings.TrimSpace(f.TicketURL) != "" &&
		!f.StartTime.IsZero() &&
		!f.EndTime.IsZero()
}

type Service struct {
	contract *contract.Contract
	wallet   Wallet
	gateway  Gateway
	mirror   Mirror
	journal  Journal

	mu    sync.Mutex
	state State
}

func New(c *contract.Contract, wallet Wallet, gateway Gateway, mirror Mirror, journal Journal) *Service {
	return &Service{
		contract: c,
		wallet:   wallet,
		gateway:  gateway,
		mirror:   mirror,
		journal:  journal,
		state:    StateIdle,
	}
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return false
	}
	s.state = StateValidating
	return true
}

// Submit creates the lottery on chain and mirrors it to the backend.
// onCreated runs once the chain accepted the lottery, whether or not the
// backend did.
func (s *Service) Submit(ctx context.Context, form Form, onCreated func(domain.Lottery)) (domain.Outcome, error) {
	outcome := domain.Outcome{Kind: domain.OpCreateLottery}
	if !s.begin() {
		return outcome, ErrBusy
	}
	defer s.setState(StateIdle)

	if !form.complete() {
		return outcome, ErrIncompleteForm
	}
	price, err := domain.ParseSUI(strings.TrimSpace(form.TicketPrice))
	if err != nil {
		return outcome, fmt.Errorf("%w: %v", ErrInvalidPrice, err)
	}

	s.setState(StateSubmitting)
	tx := s.contract.CreateLottery(contract.CreateParams{
		Name:        form.Name,
		Description: form.Description,
		Price:       price,
		StartTime:   domain.MillisOf(form.StartTime),
		EndTime:     domain.MillisOf(form.EndTime),
		TicketURL:   form.TicketURL,
	})
	res, err := s.wallet.SignAndExecute(ctx, tx)
	if res != nil {
		outcome.Chain.Digest = res.Digest
	}
	if err != nil {
		zap.L().Error("error creating lottery", zap.Error(err))
		outcome.Chain.Err = err
		s.record(ctx, outcome)
		return outcome, err
	}

	events, err := s.gateway.QueryEvents(ctx, res.Digest)
	if err != nil {
		zap.L().Error("failed to query lottery events", zap.String("digest", res.Digest), zap.Error(err))
		s.record(ctx, outcome)
		return outcome, err
	}
	created, err := contract.ParseLotteryCreated(events)
	if err != nil {
		zap.L().Error("unexpected lottery event", zap.String("digest", res.Digest), zap.Error(err))
		s.record(ctx, outcome)
		return outcome, err
	}
	lottery := created.Lottery(form.Description)
	outcome.LotteryID = lottery.ID

	s.setState(StateMirroring)
	outcome.Mirror.Attempted = true
	if err := s.mirror.CreateLottery(ctx, lottery); err != nil {
		zap.L().Error("error mirroring lottery", zap.String("lottery_id", lottery.ID), zap.Error(err))
		outcome.Mirror.Err = err
	}
	s.record(ctx, outcome)

	zap.L().Info("lottery created", zap.String("lottery_id", lottery.ID), zap.String("digest", res.Digest))
	if onCreated != nil {
		onCreated(lottery)
	}
	return outcome, nil
}

func (s *Service) record(ctx context.Context, o domain.Outcome) {
	o.At = time.Now()
	if err := s.journal.Record(ctx, o); err != nil {
		zap.L().Warn("failed to journal outcome", zap.String("kind", string(o.Kind)), zap.Error(err))
	}
}
