// Package contract knows the entry points and event payloads of the
// on-chain lottery module.
package contract

import (
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/domain"
)

const (
	FnCreateLottery      = "create_lottery"
	FnBuyTicket          = "buy_ticket"
	FnDetermineWinner    = "determine_winner"
	FnWithdrawPrize      = "withdraw_price"
	FnWithdrawCommission = "withdraw_commission"
)

type Contract struct {
	packageID string
	module    string
	owner     string
}

func New(cfg *config.Config) *Contract {
	return &Contract{
		packageID: cfg.PackageID,
		module:    cfg.Module,
		owner:     cfg.OwnerObjectID,
	}
}

type CreateParams struct {
	Name        string
	Description string
	Price       domain.MIST
	StartTime   domain.Millis
	EndTime     domain.Millis
	TicketURL   string
}

func (c *Contract) call(tx *ptb.Transaction, fn string, args ...ptb.Argument) {
	tx.MoveCall(c.packageID, c.module, fn, args...)
}

func (c *Contract) CreateLottery(p CreateParams) *ptb.Transaction {
	tx := ptb.New()
	c.call(tx, FnCreateLottery,
		tx.Object(c.owner),
		tx.PureString(p.Name),
		tx.PureString(p.Description),
		tx.PureU64(uint64(p.Price)),
		tx.PureU64(uint64(p.StartTime)),
		tx.PureU64(uint64(p.EndTime)),
		tx.PureBytes([]byte(p.TicketURL)),
		tx.Clock(),
	)
	return tx
}

// BuyTicket pays for the ticket with a coin split off the gas coin.
func (c *Contract) BuyTicket(lotteryID string, price domain.MIST) *ptb.Transaction {
	tx := ptb.New()
	coin := tx.SplitCoins(ptb.GasCoin(), tx.PureU64(uint64(price)))
	c.call(tx, FnBuyTicket,
		tx.Object(c.owner),
		tx.Object(lotteryID),
		coin[0],
		tx.Clock(),
	)
	return tx
}

func (c *Contract) DetermineWinner(lotteryID string) *ptb.Transaction {
	tx := ptb.New()
	c.call(tx, FnDetermineWinner,
		tx.Object(lotteryID),
		tx.Random(),
		tx.Clock(),
	)
	return tx
}

func (c *Contract) WithdrawPrize(lotteryID, winningTicketID string) *ptb.Transaction {
	tx := ptb.New()
	c.call(tx, FnWithdrawPrize,
		tx.Object(lotteryID),
		tx.Object(winningTicketID),
		tx.Clock(),
	)
	return tx
}

func (c *Contract) WithdrawCommission(lotteryID string) *ptb.Transaction {
	tx := ptb.New()
	c.call(tx, FnWithdrawCommission,
		tx.Object(lotteryID),
		tx.Clock(),
	)
	return tx
}
