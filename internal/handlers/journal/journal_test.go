package journal

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
)

func NewMock(t *testing.T) (*JournalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestRecent(t *testing.T) {
	handler, service := NewMock(t)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.JournalEntryDTO
	}{
		{
			name: "Default limit",
			url:  "/api/journal",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 0).Return([]domain.JournalEntry{{
					ID:              "id-1",
					Kind:            domain.OpBuyTicket,
					LotteryID:       "0xa",
					Digest:          "D1",
					MirrorAttempted: true,
					MirrorError:     "502",
					CreatedAt:       at,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.JournalEntryDTO{{
				ID:              "id-1",
				Kind:            "buy_ticket",
				LotteryID:       "0xa",
				Digest:          "D1",
				MirrorAttempted: true,
				MirrorError:     "502",
				Partial:         true,
				CreatedAt:       "2025-03-01T10:00:00Z",
			}},
		},
		{
			name: "Explicit limit",
			url:  "/api/journal?limit=5",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 5).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.JournalEntryDTO{},
		},
		{
			name:         "Bad limit",
			url:          "/api/journal?limit=-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Database error",
			url:  "/api/journal",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 0).Return(nil, errors.New("conn closed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Recent(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var body []dto.JournalEntryDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
