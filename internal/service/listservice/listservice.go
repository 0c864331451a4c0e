package listservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/domain"
)

type Mirror interface {
	ListLotteries(ctx context.Context) ([]domain.Lottery, error)
}

type Service struct {
	mirror Mirror
}

func New(mirror Mirror) *Service {
	return &Service{
		mirror: mirror,
	}
}

// Load fetches every lottery once, in the order the backend returns them.
func (s *Service) Load(ctx context.Context) ([]domain.Lottery, error) {
	lotteries, err := s.mirror.ListLotteries(ctx)
	if err != nil {
		zap.L().Error("failed to fetch lotteries", zap.Error(err))
		return nil, err
	}
	if lotteries == nil {
		lotteries = make([]domain.Lottery, 0)
	}
	return lotteries, nil
}
