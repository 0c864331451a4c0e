package dto

import "github.com/GlebRadaev/suilottery/internal/domain"

// LotteryDTO is a lottery record as the bookkeeping backend returns it.
type LotteryDTO struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description,omitempty"`
	TicketPrice         domain.MIST   `json:"ticketPrice"`
	StartTime           domain.Millis `json:"startTime"`
	EndTime             domain.Millis `json:"endTime"`
	CreatedAt           domain.Millis `json:"createdAt"`
	CreatorAddress      string        `json:"creatorAddress"`
	PricePool           domain.MIST   `json:"pricePool"`
	WinnerID            string        `json:"winnerId"`
	WinnerAddress       string        `json:"winnerAddress"`
	TicketURL           string        `json:"ticketUrl"`
	CommissionWithdrawn bool          `json:"commissionWithdrawn"`
	PricePoolWithdrawn  bool          `json:"pricePoolWithdrawn"`
}

func (l LotteryDTO) ToDomain() domain.Lottery {
	return domain.Lottery{
		ID:                  l.ID,
		Name:                l.Name,
		Description:         l.Description,
		Price:               l.TicketPrice,
		StartTime:           l.StartTime,
		EndTime:             l.EndTime,
		CreatedAt:           l.CreatedAt,
		CreatorAddress:      l.CreatorAddress,
		PricePool:           l.PricePool,
		WinningID:           l.WinnerID,
		WinnerAddress:       l.WinnerAddress,
		TicketURL:           l.TicketURL,
		CommissionWithdrawn: l.CommissionWithdrawn,
		PricePoolWithdrawn:  l.PricePoolWithdrawn,
	}
}

type TicketDTO struct {
	ID           string        `json:"id"`
	LotteryID    string        `json:"lotteryId,omitempty"`
	TicketNumber domain.Uint   `json:"ticketNumber"`
	BoughtAt     domain.Millis `json:"boughtAt"`
	Buyer        string        `json:"buyer"`
}

func (t TicketDTO) ToDomain(lotteryID string) domain.Ticket {
	if t.LotteryID != "" {
		lotteryID = t.LotteryID
	}
	return domain.Ticket{
		ID:        t.ID,
		LotteryID: lotteryID,
		Number:    uint64(t.TicketNumber),
		BoughtAt:  t.BoughtAt,
		Buyer:     t.Buyer,
	}
}

// CreateLotteryRequestDTO is posted to /createLottery. The price travels as a
// decimal string so large u64 values survive JavaScript number handling.
type CreateLotteryRequestDTO struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	TicketPrice    string        `json:"ticketPrice"`
	StartTime      domain.Millis `json:"startTime"`
	EndTime        domain.Millis `json:"endTime"`
	CreatorAddress string        `json:"creatorAddress"`
	TicketURL      string        `json:"ticketUrl"`
	CreatedAt      domain.Millis `json:"createdAt"`
	PricePool      uint64        `json:"pricePool"`
}

type BuyTicketRequestDTO struct {
	ID           string        `json:"id"`
	LotteryID    string        `json:"lotteryId"`
	Buyer        string        `json:"buyer"`
	TicketNumber domain.Uint   `json:"ticketNumber"`
	BoughtAt     domain.Millis `json:"boughtAt"`
	PricePool    domain.MIST   `json:"pricePool"`
}

type SetWinnerRequestDTO struct {
	WinningID string `json:"winning_id"`
}
