package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/suilottery/docs"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/dto"
	detailshandlers "github.com/GlebRadaev/suilottery/internal/handlers/details"
	journalhandlers "github.com/GlebRadaev/suilottery/internal/handlers/journal"
	lotteryhandlers "github.com/GlebRadaev/suilottery/internal/handlers/lotteries"
	wallethandlers "github.com/GlebRadaev/suilottery/internal/handlers/wallet"
	"github.com/GlebRadaev/suilottery/internal/service"
	"github.com/GlebRadaev/suilottery/pkg/auth"
)

type WalletHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
	Disconnect(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type LotteryHandler interface {
	View(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	ShowCreate(w http.ResponseWriter, r *http.Request)
	Back(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type DetailsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	BuyTicket(w http.ResponseWriter, r *http.Request)
	DetermineWinner(w http.ResponseWriter, r *http.Request)
	WithdrawPrize(w http.ResponseWriter, r *http.Request)
	WithdrawCommission(w http.ResponseWriter, r *http.Request)
}

type JournalHandler interface {
	Recent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WalletHandler  WalletHandler
	LotteryHandler LotteryHandler
	DetailsHandler DetailsHandler
	JournalHandler JournalHandler

	tokens  auth.JWTServiceInterface
	session auth.Session
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	explorer := dto.NewExplorer(cfg.ExplorerURL)
	return &Handlers{
		WalletHandler:  wallethandlers.New(s.Wallet, s.Tokens),
		LotteryHandler: lotteryhandlers.New(s.Shell, s.Creation, explorer),
		DetailsHandler: detailshandlers.New(s.Shell, explorer),
		JournalHandler: journalhandlers.New(s.Journal),
		tokens:         s.Tokens,
		session:        s.Wallet,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/wallet/connect", h.WalletHandler.Connect)
		r.Get("/wallet", h.WalletHandler.Status)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.tokens, h.session))
			r.Post("/wallet/disconnect", h.WalletHandler.Disconnect)
			r.Get("/view", h.LotteryHandler.View)
			r.Get("/create", h.LotteryHandler.ShowCreate)
			r.Route("/lotteries", func(r chi.Router) {
				r.Get("/", h.LotteryHandler.List)
				r.Post("/", h.LotteryHandler.Create)
				r.Post("/{id}/select", h.LotteryHandler.Select)
			})
			r.Route("/details", func(r chi.Router) {
				r.Get("/", h.DetailsHandler.Get)
				r.Post("/back", h.LotteryHandler.Back)
				r.Post("/tickets", h.DetailsHandler.BuyTicket)
				r.Post("/winner", h.DetailsHandler.DetermineWinner)
				r.Post("/withdraw/prize", h.DetailsHandler.WithdrawPrize)
				r.Post("/withdraw/commission", h.DetailsHandler.WithdrawCommission)
			})
			r.Get("/journal", h.JournalHandler.Recent)
		})
	})

	return r
}
