package lotteries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
	"github.com/GlebRadaev/suilottery/internal/navigation"
	"github.com/GlebRadaev/suilottery/internal/service/creationservice"
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

func NewMock(t *testing.T) (*LotteryHandler, *MockNavigator, *MockCreator) {
	ctrl := gomock.NewController(t)
	nav := NewMockNavigator(ctrl)
	creator := NewMockCreator(ctrl)
	return New(nav, creator, dto.NewExplorer("https://suiscan.xyz/testnet")), nav, creator
}

func TestList(t *testing.T) {
	handler, nav, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.LotteryResponseDTO
	}{
		{
			name: "Lotteries in SUI",
			prepareMock: func() {
				nav.EXPECT().ShowList(gomock.Any()).Return([]domain.Lottery{{
					ID:        "0xa",
					Name:      "Spring",
					Price:     1_500_000_000,
					PricePool: 3_000_000_000,
					StartTime: domain.MillisOf(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
					EndTime:   domain.MillisOf(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)),
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LotteryResponseDTO{{
				ID:          "0xa",
				Name:        "Spring",
				TicketPrice: "1.5",
				PricePool:   "3",
				StartTime:   "2020-01-01T00:00:00Z",
				EndTime:     "2020-01-02T00:00:00Z",
				Status:      "ended",
				ExplorerURL: "https://suiscan.xyz/testnet/object/0xa",
			}},
		},
		{
			name: "Empty",
			prepareMock: func() {
				nav.EXPECT().ShowList(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LotteryResponseDTO{},
		},
		{
			name: "Backend down",
			prepareMock: func() {
				nav.EXPECT().ShowList(gomock.Any()).Return(nil, errors.New("dial tcp"))
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.List(rr, httptest.NewRequest(http.MethodGet, "/api/lotteries", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LotteryResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func selectRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/lotteries/"+id+"/select", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSelect(t *testing.T) {
	handler, nav, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ViewResponseDTO
	}{
		{
			name: "Opens details",
			id:   "0xa",
			prepareMock: func() {
				nav.EXPECT().Select(gomock.Any(), "0xa").Return(&detailsservice.View{}, nil)
				nav.EXPECT().Current().Return(navigation.DetailsView{Lottery: domain.Lottery{ID: "0xa"}})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ViewResponseDTO{Screen: "details", LotteryID: "0xa"},
		},
		{
			name: "Unknown lottery",
			id:   "0xz",
			prepareMock: func() {
				nav.EXPECT().Select(gomock.Any(), "0xz").Return(nil, navigation.ErrUnknownLottery)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Select(rr, selectRequest(tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ViewResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	handler, nav, creator := NewMock(t)

	nav.EXPECT().ShowCreate()
	nav.EXPECT().Current().Return(navigation.CreateView{})
	creator.EXPECT().State().Return(creationservice.StateIdle)

	rr := httptest.NewRecorder()
	handler.ShowCreate(rr, httptest.NewRequest(http.MethodGet, "/api/create", nil))
	var body dto.ViewResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, dto.ViewResponseDTO{Screen: "create", CreationState: "idle"}, body)

	nav.EXPECT().Back()
	nav.EXPECT().Current().Return(navigation.ListView{})

	rr = httptest.NewRecorder()
	handler.Back(rr, httptest.NewRequest(http.MethodPost, "/api/details/back", nil))
	body = dto.ViewResponseDTO{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "list", body.Screen)
}

func TestCreate(t *testing.T) {
	handler, nav, creator := NewMock(t)
	body := `{"name":"Spring","description":"d","ticketPrice":"0.1","startTime":"2025-03-01T10:00:00Z","endTime":"2025-03-02T10:00:00Z","ticketUrl":"https://img"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created, mirror failed",
			body: body,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, form creationservice.Form, onCreated func(domain.Lottery)) (domain.Outcome, error) {
						assert.Equal(t, "0.1", form.TicketPrice)
						assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), form.StartTime.UTC())
						onCreated(domain.Lottery{ID: "0xn"})
						return domain.Outcome{
							Kind:      domain.OpCreateLottery,
							LotteryID: "0xn",
							Chain:     domain.ChainOutcome{Digest: "D1"},
							Mirror:    domain.MirrorOutcome{Attempted: true, Err: errors.New("500")},
						}, nil
					})
				nav.EXPECT().Created(domain.Lottery{ID: "0xn"})
				nav.EXPECT().Current().Return(navigation.ListView{})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Bad JSON",
			body:          `{`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Busy",
			body: body,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Outcome{}, creationservice.ErrBusy)
			},
			expectedCode:  http.StatusConflict,
			expectedError: creationservice.ErrBusy.Error(),
		},
		{
			name: "Incomplete",
			body: `{"name":"Spring"}`,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Outcome{}, creationservice.ErrIncompleteForm)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: creationservice.ErrIncompleteForm.Error(),
		},
		{
			name: "Bad price",
			body: body,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Outcome{}, creationservice.ErrInvalidPrice)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: creationservice.ErrInvalidPrice.Error(),
		},
		{
			name: "Not connected",
			body: body,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Outcome{}, wallet.ErrNotConnected)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: wallet.ErrNotConnected.Error(),
		},
		{
			name: "Chain rejected",
			body: body,
			prepareMock: func() {
				creator.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Outcome{
					Kind:  domain.OpCreateLottery,
					Chain: domain.ChainOutcome{Err: errors.New("abort")},
				}, errors.New("abort"))
				nav.EXPECT().Current().Return(navigation.CreateView{})
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Create(rr, httptest.NewRequest(http.MethodPost, "/api/lotteries", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.CreateLotteryResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			if tt.expectedCode == http.StatusCreated {
				assert.True(t, resp.Outcome.Partial)
				assert.Equal(t, "list", resp.Screen)
			} else {
				assert.Equal(t, "abort", resp.Outcome.ChainError)
			}
		})
	}
}
