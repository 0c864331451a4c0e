package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/journal"
	"github.com/GlebRadaev/suilottery/internal/mirror"
	"github.com/GlebRadaev/suilottery/internal/service"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/auth"
	"github.com/GlebRadaev/suilottery/pkg/clients"
)

type staticSession string

func (s staticSession) Address() string { return string(s) }

func TestNew(t *testing.T) {
	cfg := &config.Config{
		RPCURL:      "http://localhost:9000",
		BackendURL:  "http://localhost:3000",
		JWTSecret:   "secret",
		ExplorerURL: "https://suiscan.xyz/testnet",
	}
	client := clients.NewHTTPClient(0)
	gateway := chain.New(cfg, client)
	keystore, err := wallet.ParseKeystore([]byte(`[]`))
	require.NoError(t, err)
	session := wallet.New(cfg, keystore, gateway)

	h := New(cfg, service.New(cfg, session, gateway, mirror.New(cfg, client), journal.Nop{}))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.LotteryHandler)
	assert.NotNil(t, h.DetailsHandler)
	assert.NotNil(t, h.JournalHandler)
}

func newRouter(t *testing.T, session auth.Session, tokens auth.JWTServiceInterface) chi.Router {
	ctrl := gomock.NewController(t)

	walletHandler := NewMockWalletHandler(ctrl)
	lotteryHandler := NewMockLotteryHandler(ctrl)
	detailsHandler := NewMockDetailsHandler(ctrl)
	journalHandler := NewMockJournalHandler(ctrl)

	walletHandler.EXPECT().Connect(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Disconnect(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().Status(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().View(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().Select(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().ShowCreate(gomock.Any(), gomock.Any()).AnyTimes()
	lotteryHandler.EXPECT().Back(gomock.Any(), gomock.Any()).AnyTimes()
	detailsHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	detailsHandler.EXPECT().BuyTicket(gomock.Any(), gomock.Any()).AnyTimes()
	detailsHandler.EXPECT().DetermineWinner(gomock.Any(), gomock.Any()).AnyTimes()
	detailsHandler.EXPECT().WithdrawPrize(gomock.Any(), gomock.Any()).AnyTimes()
	detailsHandler.EXPECT().WithdrawCommission(gomock.Any(), gomock.Any()).AnyTimes()
	journalHandler.EXPECT().Recent(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		WalletHandler:  walletHandler,
		LotteryHandler: lotteryHandler,
		DetailsHandler: detailsHandler,
		JournalHandler: journalHandler,
		tokens:         tokens,
		session:        session,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newRouter(t, staticSession(""), auth.NewJWTService("secret"))

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/wallet/connect", http.StatusOK},
		{"GET", "/api/wallet", http.StatusOK},
		{"POST", "/api/wallet/disconnect", http.StatusUnauthorized},
		{"GET", "/api/view", http.StatusUnauthorized},
		{"GET", "/api/create", http.StatusUnauthorized},
		{"GET", "/api/lotteries", http.StatusUnauthorized},
		{"POST", "/api/lotteries", http.StatusUnauthorized},
		{"POST", "/api/lotteries/0x1/select", http.StatusUnauthorized},
		{"GET", "/api/details", http.StatusUnauthorized},
		{"POST", "/api/details/back", http.StatusUnauthorized},
		{"POST", "/api/details/tickets", http.StatusUnauthorized},
		{"POST", "/api/details/winner", http.StatusUnauthorized},
		{"POST", "/api/details/withdraw/prize", http.StatusUnauthorized},
		{"POST", "/api/details/withdraw/commission", http.StatusUnauthorized},
		{"GET", "/api/journal", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesWithToken(t *testing.T) {
	tokens := auth.NewJWTService("secret")
	token, err := tokens.GenerateJWT("0xabc", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name    string
		session staticSession
		status  int
	}{
		{"connected wallet", "0xabc", http.StatusOK},
		{"other wallet connected", "0xdef", http.StatusUnauthorized},
		{"wallet disconnected", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.session, tokens)
			req := httptest.NewRequest(http.MethodGet, "/api/details", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
