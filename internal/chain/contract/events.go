package contract

import (
	"encoding/json"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

// Text is a Move string that may be rendered either as a JSON string or as
// the raw vector<u8>.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	// Elements outside 0..255 fail to decode into uint8.
	var raw []uint8
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = Text(raw)
	return nil
}

type LotteryCreated struct {
	ID        string        `json:"id"`
	Name      Text          `json:"name"`
	Price     domain.MIST   `json:"price"`
	StartTime domain.Millis `json:"start_time"`
	EndTime   domain.Millis `json:"end_time"`
	CreatedBy string        `json:"created_by"`
	TicketURL Text          `json:"ticket_url"`
	CreatedAt domain.Millis `json:"created_at"`
}

// Lottery merges the event with the description, which the event does not carry.
func (e LotteryCreated) Lottery(description string) domain.Lottery {
	return domain.Lottery{
		ID:             e.ID,
		Name:           string(e.Name),
		Description:    description,
		Price:          e.Price,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		CreatedAt:      e.CreatedAt,
		CreatorAddress: e.CreatedBy,
		TicketURL:      string(e.TicketURL),
	}
}

type TicketBought struct {
	ID           string        `json:"id"`
	LotteryID    string        `json:"lotter_id"`
	Buyer        string        `json:"buyer"`
	TicketNumber domain.Uint   `json:"ticket_number"`
	BoughtAt     domain.Millis `json:"bought_at"`
	PricePool    domain.MIST   `json:"price_pool"`
}

func (e TicketBought) Ticket() domain.Ticket {
	return domain.Ticket{
		ID:        e.ID,
		LotteryID: e.LotteryID,
		Number:    uint64(e.TicketNumber),
		BoughtAt:  e.BoughtAt,
		Buyer:     e.Buyer,
	}
}

type WinnerDetermined struct {
	Winner string `json:"winner"`
}

func ParseLotteryCreated(events []chain.Event) (LotteryCreated, error) {
	var e LotteryCreated
	err := decodeFirst(events, &e, "id", "name", "price", "start_time", "end_time", "created_by", "ticket_url", "created_at")
	return e, err
}

func ParseTicketBought(events []chain.Event) (TicketBought, error) {
	var e TicketBought
	err := decodeFirst(events, &e, "id", "lotter_id", "buyer", "ticket_number", "bought_at", "price_pool")
	return e, err
}

func ParseWinnerDetermined(events []chain.Event) (WinnerDetermined, error) {
	var e WinnerDetermined
	err := decodeFirst(events, &e, "winner")
	return e, err
}

func decodeFirst(events []chain.Event, v any, required ...string) error {
	ev, err := chain.FirstEvent(events)
	if err != nil {
		return err
	}
	return ev.Decode(v, required...)
}
