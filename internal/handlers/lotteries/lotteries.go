package lotteries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
	"github.com/GlebRadaev/suilottery/internal/navigation"
	"github.com/GlebRadaev/suilottery/internal/service/creationservice"
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
	"github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

type Navigator interface {
	Current() navigation.View
	ShowList(ctx context.Context) ([]domain.Lottery, error)
	Select(ctx context.Context, id string) (*detailsservice.View, error)
	ShowCreate()
	Back()
	Created(l domain.Lottery)
}

type Creator interface {
	Submit(ctx context.Context, form creationservice.Form, onCreated func(domain.Lottery)) (domain.Outcome, error)
	State() creationservice.State
}

type LotteryHandler struct {
	nav      Navigator
	creator  Creator
	explorer dto.Explorer
}

func New(nav Navigator, creator Creator, explorer dto.Explorer) *LotteryHandler {
	return &LotteryHandler{
		nav:      nav,
		creator:  creator,
		explorer: explorer,
	}
}

func (h *LotteryHandler) view() dto.ViewResponseDTO {
	current := h.nav.Current()
	resp := dto.ViewResponseDTO{Screen: string(current.Screen())}
	switch v := current.(type) {
	case navigation.DetailsView:
		resp.LotteryID = v.Lottery.ID
	case navigation.CreateView:
		resp.CreationState = string(h.creator.State())
	}
	return resp
}

// View godoc
//
//	@Summary		Current screen
//	@Description	Report which screen is shown and the selected lottery, if any.
//	@Tags			Navigation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ViewResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Router			/api/view [get]
func (h *LotteryHandler) View(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.view())
}

// List godoc
//
//	@Summary		List lotteries
//	@Description	Switch to the list screen and fetch every lottery from the backend. Amounts are in SUI.
//	@Tags			Lotteries
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LotteryResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		502	{object}	utils.Response	"Backend unavailable"
//	@Router			/api/lotteries [get]
func (h *LotteryHandler) List(w http.ResponseWriter, r *http.Request) {
	lotteries, err := h.nav.ShowList(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch lotteries")
		return
	}
	now := time.Now()
	response := make([]dto.LotteryResponseDTO, 0, len(lotteries))
	for _, l := range lotteries {
		response = append(response, dto.NewLotteryResponse(l, now, h.explorer))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Select godoc
//
//	@Summary		Open a lottery
//	@Description	Open the details screen for a lottery from the last listing.
//	@Tags			Navigation
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Lottery object id"
//	@Success		200	{object}	dto.ViewResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Failure		404	{object}	utils.Response	"Lottery is not in the current listing"
//	@Router			/api/lotteries/{id}/select [post]
func (h *LotteryHandler) Select(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.nav.Select(r.Context(), id); err != nil {
		if errors.Is(err, navigation.ErrUnknownLottery) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.view())
}

// ShowCreate godoc
//
//	@Summary		Open the creation form
//	@Tags			Navigation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ViewResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Router			/api/create [get]
func (h *LotteryHandler) ShowCreate(w http.ResponseWriter, _ *http.Request) {
	h.nav.ShowCreate()
	utils.RespondWithJSON(w, http.StatusOK, h.view())
}

// Back godoc
//
//	@Summary		Leave the details screen
//	@Tags			Navigation
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ViewResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Router			/api/details/back [post]
func (h *LotteryHandler) Back(w http.ResponseWriter, _ *http.Request) {
	h.nav.Back()
	utils.RespondWithJSON(w, http.StatusOK, h.view())
}

// Create godoc
//
//	@Summary		Create a lottery
//	@Description	Submit the creation form: the lottery is created on chain, then mirrored to the backend.
//	@Description	A backend failure does not fail the request; it shows up as a partial outcome.
//	@Tags			Lotteries
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateLotteryAPIRequestDTO	true	"Lottery form, ticket price in SUI"
//	@Success		201		{object}	dto.CreateLotteryResponseDTO
//	@Failure		400		{object}	utils.Response	"Incomplete form"
//	@Failure		401		{object}	utils.Response	"Wallet is not connected"
//	@Failure		409		{object}	utils.Response	"A lottery is already being created"
//	@Failure		422		{object}	utils.Response	"Invalid ticket price"
//	@Failure		502		{object}	dto.CreateLotteryResponseDTO	"Transaction failed"
//	@Router			/api/lotteries [post]
func (h *LotteryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLotteryAPIRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	outcome, err := h.creator.Submit(r.Context(), creationservice.Form{
		Name:        req.Name,
		Description: req.Description,
		TicketPrice: req.TicketPrice,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TicketURL:   req.TicketURL,
	}, h.nav.Created)
	if err != nil {
		switch {
		case errors.Is(err, creationservice.ErrBusy):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, creationservice.ErrIncompleteForm):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, creationservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, wallet.ErrNotConnected):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithJSON(w, http.StatusBadGateway, dto.CreateLotteryResponseDTO{
				Outcome: dto.NewOutcomeResponse(outcome, h.explorer),
				Screen:  string(h.nav.Current().Screen()),
			})
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateLotteryResponseDTO{
		Outcome: dto.NewOutcomeResponse(outcome, h.explorer),
		Screen:  string(h.nav.Current().Screen()),
	})
}
