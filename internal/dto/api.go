package dto

import (
	"strings"
	"time"

	"github.com/GlebRadaev/suilottery/internal/domain"
)

// Explorer builds block explorer links.
type Explorer struct {
	base string
}

func NewExplorer(base string) Explorer {
	return Explorer{base: strings.TrimRight(base, "/")}
}

func (e Explorer) Object(id string) string {
	if id == "" {
		return ""
	}
	return e.base + "/object/" + id
}

func (e Explorer) Tx(digest string) string {
	if digest == "" {
		return ""
	}
	return e.base + "/tx/" + digest
}

func (e Explorer) Account(address string) string {
	if address == "" {
		return ""
	}
	return e.base + "/account/" + address
}

type ConnectRequestDTO struct {
	Address string `json:"address"`
}

type ConnectResponseDTO struct {
	Address   string `json:"address"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type WalletResponseDTO struct {
	Connected bool     `json:"connected"`
	Address   string   `json:"address,omitempty"`
	Accounts  []string `json:"accounts"`
}

// LotteryResponseDTO renders amounts in SUI and timestamps in RFC3339.
type LotteryResponseDTO struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	TicketPrice         string `json:"ticketPrice"`
	PricePool           string `json:"pricePool"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	CreatedAt           string `json:"createdAt,omitempty"`
	CreatorAddress      string `json:"creatorAddress"`
	TicketURL           string `json:"ticketUrl"`
	Status              string `json:"status"`
	WinnerID            string `json:"winnerId,omitempty"`
	WinnerAddress       string `json:"winnerAddress,omitempty"`
	PricePoolWithdrawn  bool   `json:"pricePoolWithdrawn"`
	CommissionWithdrawn bool   `json:"commissionWithdrawn"`
	ExplorerURL         string `json:"explorerUrl"`
}

func formatMillis(ms domain.Millis) string {
	if ms == 0 {
		return ""
	}
	return ms.Time().UTC().Format(time.RFC3339)
}

func NewLotteryResponse(l domain.Lottery, now time.Time, ex Explorer) LotteryResponseDTO {
	return LotteryResponseDTO{
		ID:                  l.ID,
		Name:                l.Name,
		Description:         l.Description,
		TicketPrice:         l.Price.String(),
		PricePool:           l.PricePool.String(),
		StartTime:           formatMillis(l.StartTime),
		EndTime:             formatMillis(l.EndTime),
		CreatedAt:           formatMillis(l.CreatedAt),
		CreatorAddress:      l.CreatorAddress,
		TicketURL:           l.TicketURL,
		Status:              string(l.Status(now)),
		WinnerID:            l.WinningID,
		WinnerAddress:       l.WinnerAddress,
		PricePoolWithdrawn:  l.PricePoolWithdrawn,
		CommissionWithdrawn: l.CommissionWithdrawn,
		ExplorerURL:         ex.Object(l.ID),
	}
}

type TicketResponseDTO struct {
	ID          string `json:"id"`
	Number      uint64 `json:"number"`
	BoughtAt    string `json:"boughtAt"`
	Buyer       string `json:"buyer"`
	ExplorerURL string `json:"explorerUrl"`
	BuyerURL    string `json:"buyerUrl"`
}

type WinnerResponseDTO struct {
	WinningID   string `json:"winningId"`
	Address     string `json:"address"`
	Prize       string `json:"prize"`
	Commission  string `json:"commission"`
	ExplorerURL string `json:"explorerUrl"`
}

type FlagsDTO struct {
	IsUpcoming bool `json:"isUpcoming"`
	IsActive   bool `json:"isActive"`
	IsEnded    bool `json:"isEnded"`
	IsCreator  bool `json:"isCreator"`
	IsWinner   bool `json:"isWinner"`
}

type ControlsDTO struct {
	CanBuy                bool `json:"canBuy"`
	CanDetermineWinner    bool `json:"canDetermineWinner"`
	CanWithdrawPrize      bool `json:"canWithdrawPrize"`
	CanWithdrawCommission bool `json:"canWithdrawCommission"`
}

type DetailsResponseDTO struct {
	Lottery             LotteryResponseDTO  `json:"lottery"`
	Tickets             []TicketResponseDTO `json:"tickets"`
	Winner              *WinnerResponseDTO  `json:"winner,omitempty"`
	PrizeWithdrawn      bool                `json:"prizeWithdrawn"`
	CommissionWithdrawn bool                `json:"commissionWithdrawn"`
	Flags               FlagsDTO            `json:"flags"`
	Controls            ControlsDTO         `json:"controls"`
	InFlight            []string            `json:"inFlight"`
}

type OutcomeResponseDTO struct {
	Kind            string `json:"kind"`
	LotteryID       string `json:"lotteryId,omitempty"`
	Digest          string `json:"digest,omitempty"`
	ChainError      string `json:"chainError,omitempty"`
	MirrorAttempted bool   `json:"mirrorAttempted"`
	MirrorError     string `json:"mirrorError,omitempty"`
	Partial         bool   `json:"partial"`
	ExplorerURL     string `json:"explorerUrl,omitempty"`
}

func NewOutcomeResponse(o domain.Outcome, ex Explorer) OutcomeResponseDTO {
	e := o.Entry("")
	return OutcomeResponseDTO{
		Kind:            string(e.Kind),
		LotteryID:       e.LotteryID,
		Digest:          e.Digest,
		ChainError:      e.ChainError,
		MirrorAttempted: e.MirrorAttempted,
		MirrorError:     e.MirrorError,
		Partial:         o.Partial(),
		ExplorerURL:     ex.Tx(e.Digest),
	}
}

type OperationResponseDTO struct {
	Outcome OutcomeResponseDTO  `json:"outcome"`
	Details *DetailsResponseDTO `json:"details,omitempty"`
}

type CreateLotteryAPIRequestDTO struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TicketPrice string    `json:"ticketPrice"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	TicketURL   string    `json:"ticketUrl"`
}

type CreateLotteryResponseDTO struct {
	Outcome OutcomeResponseDTO `json:"outcome"`
	Screen  string             `json:"screen"`
}

type ViewResponseDTO struct {
	Screen        string `json:"screen"`
	LotteryID     string `json:"lotteryId,omitempty"`
	CreationState string `json:"creationState,omitempty"`
}

type JournalEntryDTO struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	LotteryID       string `json:"lotteryId,omitempty"`
	Digest          string `json:"digest,omitempty"`
	ChainError      string `json:"chainError,omitempty"`
	MirrorAttempted bool   `json:"mirrorAttempted"`
	MirrorError     string `json:"mirrorError,omitempty"`
	Partial         bool   `json:"partial"`
	CreatedAt       string `json:"createdAt"`
}

func NewJournalEntry(e domain.JournalEntry) JournalEntryDTO {
	return JournalEntryDTO{
		ID:              e.ID,
		Kind:            string(e.Kind),
		LotteryID:       e.LotteryID,
		Digest:          e.Digest,
		ChainError:      e.ChainError,
		MirrorAttempted: e.MirrorAttempted,
		MirrorError:     e.MirrorError,
		Partial:         e.Partial(),
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}
