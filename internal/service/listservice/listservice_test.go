package listservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/suilottery/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMirror) {
	ctrl := gomock.NewController(t)
	mirror := NewMockMirror(ctrl)
	service := New(mirror)
	return service, mirror
}

func TestLoad(t *testing.T) {
	service, mirror := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Lottery
		expectedError error
	}{
		{
			name: "Keeps backend order",
			prepareMock: func() {
				mirror.EXPECT().ListLotteries(gomock.Any()).Return([]domain.Lottery{
					{ID: "0xb", Price: 1_500_000_000},
					{ID: "0xa", Price: 100_000_000},
				}, nil)
			},
			expected: []domain.Lottery{
				{ID: "0xb", Price: 1_500_000_000},
				{ID: "0xa", Price: 100_000_000},
			},
		},
		{
			name: "Empty listing",
			prepareMock: func() {
				mirror.EXPECT().ListLotteries(gomock.Any()).Return(nil, nil)
			},
			expected: []domain.Lottery{},
		},
		{
			name: "Backend unavailable",
			prepareMock: func() {
				mirror.EXPECT().ListLotteries(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			lotteries, err := service.Load(context.Background())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, lotteries)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, lotteries)
		})
	}
}

func TestLoad_ConvertsToSUI(t *testing.T) {
	service, mirror := NewMock(t)
	mirror.EXPECT().ListLotteries(gomock.Any()).Return([]domain.Lottery{
		{ID: "0xa", Price: 1_500_000_000, PricePool: 1_500_000_000},
	}, nil)

	lotteries, err := service.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "1.5", lotteries[0].Price.String())
	assert.Equal(t, "1.5", lotteries[0].PricePool.String())
}
