package dto

import (
	"github.com/GlebRadaev/suilottery/internal/service/detailsservice"
)

// NewDetailsResponse renders the snapshot at its own time so the status
// badge agrees with the controls.
func NewDetailsResponse(s detailsservice.Snapshot, ex Explorer) DetailsResponseDTO {
	resp := DetailsResponseDTO{
		Lottery:             NewLotteryResponse(s.Lottery, s.At, ex),
		Tickets:             make([]TicketResponseDTO, 0, len(s.Tickets)),
		PrizeWithdrawn:      s.PrizeWithdrawn,
		CommissionWithdrawn: s.CommissionWithdrawn,
		Flags: FlagsDTO{
			IsUpcoming: s.Flags.IsUpcoming,
			IsActive:   s.Flags.IsActive,
			IsEnded:    s.Flags.IsEnded,
			IsCreator:  s.Flags.IsCreator,
			IsWinner:   s.Flags.IsWinner,
		},
		Controls: ControlsDTO{
			CanBuy:                s.Controls.CanBuy,
			CanDetermineWinner:    s.Controls.CanDetermineWinner,
			CanWithdrawPrize:      s.Controls.CanWithdrawPrize,
			CanWithdrawCommission: s.Controls.CanWithdrawCommission,
		},
		InFlight: make([]string, 0, len(s.InFlight)),
	}
	for _, t := range s.Tickets {
		resp.Tickets = append(resp.Tickets, TicketResponseDTO{
			ID:          t.ID,
			Number:      t.Number,
			BoughtAt:    formatMillis(t.BoughtAt),
			Buyer:       t.Buyer,
			ExplorerURL: ex.Object(t.ID),
			BuyerURL:    ex.Account(t.Buyer),
		})
	}
	if s.Winner != nil {
		resp.Winner = &WinnerResponseDTO{
			WinningID:   s.Winner.WinningID,
			Address:     s.Winner.Address,
			Prize:       s.Winner.Prize.String(),
			Commission:  s.Winner.Commission.String(),
			ExplorerURL: ex.Object(s.Winner.WinningID),
		}
	}
	for _, k := range s.InFlight {
		resp.InFlight = append(resp.InFlight, string(k))
	}
	return resp
}
