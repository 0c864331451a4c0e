// Package navigation switches between the list, details and create screens
// and keeps the lottery the user selected.
package navigation

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
)

type Lister interface {
	Load(ctx context.Context) ([]domain.Lottery, error)
}

type Opener interface {
	Open(ctx context.Context, lottery domain.Lottery) *detailsservice.View
}

var (
	ErrUnknownLottery = errors.New("lottery is not in the current listing")
	ErrNoDetails      = errors.New("no lottery is selected")
)

type Screen string

const (
	ScreenList    Screen = "list"
	ScreenDetails Screen = "details"
	ScreenCreate  Screen = "create"
)

// View is one of ListView, DetailsView or CreateView.
type View interface {
	Screen() Screen
}

type ListView struct{}

type DetailsView struct {
	Lottery domain.Lottery
	Details *detailsservice.View
}

type CreateView struct{}

func (ListView) Screen() Screen    { return ScreenList }
func (DetailsView) Screen() Screen { return ScreenDetails }
func (CreateView) Screen() Screen  { return ScreenCreate }

type Shell struct {
	lister Lister
	opener Opener

	mu      sync.Mutex
	current View
	listing []domain.Lottery
}

func New(lister Lister, opener Opener) *Shell {
	return &Shell{
		lister:  lister,
		opener:  opener,
		current: ListView{},
	}
}

func (s *Shell) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ShowList switches to the list and fetches it; the result backs later selections.
func (s *Shell) ShowList(ctx context.Context) ([]domain.Lottery, error) {
	s.mu.Lock()
	s.current = ListView{}
	s.mu.Unlock()

	lotteries, err := s.lister.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.listing = lotteries
	s.mu.Unlock()
	return lotteries, nil
}

// Select opens the details of a lottery from the last listing without re-fetching it.
func (s *Shell) Select(ctx context.Context, id string) (*detailsservice.View, error) {
	s.mu.Lock()
	var (
		lottery domain.Lottery
		found   bool
	)
	for _, l := range s.listing {
		if l.ID == id {
			lottery, found = l, true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return nil, ErrUnknownLottery
	}

	details := s.opener.Open(ctx, lottery)
	s.mu.Lock()
	s.current = DetailsView{Lottery: lottery, Details: details}
	s.mu.Unlock()
	zap.L().Debug("lottery selected", zap.String("lottery_id", id))
	return details, nil
}

// Details returns the open details view.
func (s *Shell) Details() (*detailsservice.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.current.(DetailsView)
	if !ok {
		return nil, ErrNoDetails
	}
	return d.Details, nil
}

func (s *Shell) ShowCreate() {
	s.mu.Lock()
	s.current = CreateView{}
	s.mu.Unlock()
}

// Back leaves the details screen and forgets the selection.
func (s *Shell) Back() {
	s.mu.Lock()
	s.current = ListView{}
	s.mu.Unlock()
}

// Created is the completion callback of the creation screen.
func (s *Shell) Created(l domain.Lottery) {
	s.mu.Lock()
	s.current = ListView{}
	s.mu.Unlock()
	zap.L().Debug("returning to list after creation", zap.String("lottery_id", l.ID))
}
