package details

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
	"github.com/GlebRadaev/suilottery/internal/navigation"
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

type Navigator interface {
	Details() (*detailsservice.View, error)
}

type DetailsHandler struct {
	nav      Navigator
	explorer dto.Explorer
}

func New(nav Navigator, explorer dto.Explorer) *DetailsHandler {
	return &DetailsHandler{
		nav:      nav,
		explorer: explorer,
	}
}

func (h *DetailsHandler) current(w http.ResponseWriter) (*detailsservice.View, bool) {
	view, err := h.nav.Details()
	if err != nil {
		if errors.Is(err, navigation.ErrNoDetails) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return nil, false
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}
	return view, true
}

// Get godoc
//
//	@Summary		Lottery details
//	@Description	Tickets, winner, status flags and the operations available to the connected wallet.
//	@Tags			Details
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DetailsResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		409	{object}	utils.Response	"No lottery is selected"
//	@Router			/api/details [get]
func (h *DetailsHandler) Get(w http.ResponseWriter, _ *http.Request) {
	view, ok := h.current(w)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDetailsResponse(view.Snapshot(), h.explorer))
}

func (h *DetailsHandler) run(w http.ResponseWriter, r *http.Request, op func(*detailsservice.View, context.Context) (domain.Outcome, error)) {
	view, ok := h.current(w)
	if !ok {
		return
	}

	outcome, err := op(view, r.Context())
	if err != nil {
		switch {
		case errors.Is(err, detailsservice.ErrInFlight):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		case errors.Is(err, detailsservice.ErrNotAvailable):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case errors.Is(err, wallet.ErrNotConnected):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
	}

	details := dto.NewDetailsResponse(view.Snapshot(), h.explorer)
	code := http.StatusOK
	if err != nil {
		code = http.StatusBadGateway
	}
	utils.RespondWithJSON(w, code, dto.OperationResponseDTO{
		Outcome: dto.NewOutcomeResponse(outcome, h.explorer),
		Details: &details,
	})
}

// BuyTicket godoc
//
//	@Summary		Buy a ticket
//	@Description	Pay the ticket price from the wallet's gas coin. The pool afterwards is the one reported by the chain.
//	@Tags			Details
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		409	{object}	utils.Response	"Already in progress or no lottery selected"
//	@Failure		422	{object}	utils.Response	"Not available for this lottery"
//	@Failure		502	{object}	dto.OperationResponseDTO	"Transaction failed"
//	@Router			/api/details/tickets [post]
func (h *DetailsHandler) BuyTicket(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, (*detailsservice.View).BuyTicket)
}

// DetermineWinner godoc
//
//	@Summary		Determine the winner
//	@Description	Draw the winning ticket of an ended lottery and record it with the backend.
//	@Tags			Details
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		409	{object}	utils.Response	"Already in progress or no lottery selected"
//	@Failure		422	{object}	utils.Response	"Not available for this lottery"
//	@Failure		502	{object}	dto.OperationResponseDTO	"Transaction failed"
//	@Router			/api/details/winner [post]
func (h *DetailsHandler) DetermineWinner(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, (*detailsservice.View).DetermineWinner)
}

// WithdrawPrize godoc
//
//	@Summary		Withdraw the prize
//	@Description	Available to the winner until the prize has been withdrawn.
//	@Tags			Details
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		409	{object}	utils.Response	"Already in progress or no lottery selected"
//	@Failure		422	{object}	utils.Response	"Not available for this lottery"
//	@Failure		502	{object}	dto.OperationResponseDTO	"Transaction failed"
//	@Router			/api/details/withdraw/prize [post]
func (h *DetailsHandler) WithdrawPrize(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, (*detailsservice.View).WithdrawPrize)
}

// WithdrawCommission godoc
//
//	@Summary		Withdraw the commission
//	@Description	Available to the creator once a winner is known, until the commission has been withdrawn.
//	@Tags			Details
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OperationResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		409	{object}	utils.Response	"Already in progress or no lottery selected"
//	@Failure		422	{object}	utils.Response	"Not available for this lottery"
//	@Failure		502	{object}	dto.OperationResponseDTO	"Transaction failed"
//	@Router			/api/details/withdraw/commission [post]
func (h *DetailsHandler) WithdrawCommission(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, (*detailsservice.View).WithdrawCommission)
}
