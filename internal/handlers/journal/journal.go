package journal

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

const maxLimit = 500

type Service interface {
	Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}

type JournalHandler struct {
	journal Service
}

func New(journal Service) *JournalHandler {
	return &JournalHandler{
		journal: journal,
	}
}

// Recent godoc
//
//	@Summary		Operation journal
//	@Description	Latest transaction outcomes, newest first. Partial entries reached the chain but not the backend.
//	@Tags			Journal
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"Number of entries, default 50"
//	@Success		200		{array}		dto.JournalEntryDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"Wallet is not connected"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/journal [get]
func (h *JournalHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLimit {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.journal.Recent(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := make([]dto.JournalEntryDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.NewJournalEntry(e))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
