package wallet

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/dto"
	walletsession "github.com/GlebRadaev/suilottery/internal/wallet"
	"github.com/GlebRadaev/suilottery/pkg/auth"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

type Session interface {
	IsConnected() bool
	Address() string
	Accounts() []string
	Connect(address string) error
	Disconnect()
}

type WalletHandler struct {
	session Session
	tokens  auth.JWTServiceInterface
}

func New(session Session, tokens auth.JWTServiceInterface) *WalletHandler {
	return &WalletHandler{
		session: session,
		tokens:  tokens,
	}
}

// Connect godoc
//
//	@Summary		Connect a wallet
//	@Description	Select a keystore account as the signing identity and get a bearer token for it.
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConnectRequestDTO	true	"Account address"
//	@Success		200		{object}	dto.ConnectResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Account is not in the keystore"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/connect [post]
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req dto.ConnectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	address := strings.TrimSpace(req.Address)
	if address == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Address is required")
		return
	}

	if err := h.session.Connect(address); err != nil {
		if errors.Is(err, walletsession.ErrUnknownAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	connected := h.session.Address()
	expiresAt := time.Now().Add(auth.SessionTTL)
	token, err := h.tokens.GenerateJWT(connected, expiresAt)
	if err != nil {
		zap.L().Error("failed to issue token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.ConnectResponseDTO{
		Address:   connected,
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Disconnect godoc
//
//	@Summary		Disconnect the wallet
//	@Description	Drop the signing identity; every issued token stops working.
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Failure		401	{object}	utils.Response	"Wallet is not connected"
//	@Router			/api/wallet/disconnect [post]
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.session.Disconnect()
	h.Status(w, r)
}

// Status godoc
//
//	@Summary		Wallet status
//	@Description	Report whether a wallet is connected and list the keystore accounts.
//	@Tags			Wallet
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO
//	@Router			/api/wallet [get]
func (h *WalletHandler) Status(w http.ResponseWriter, _ *http.Request) {
	accounts := h.session.Accounts()
	if accounts == nil {
		accounts = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Connected: h.session.IsConnected(),
		Address:   h.session.Address(),
		Accounts:  accounts,
	})
}
