package domain

import "time"

type OperationKind string

const (
	OpCreateLottery      OperationKind = "create_lottery"
	OpBuyTicket          OperationKind = "buy_ticket"
	OpDetermineWinner    OperationKind = "determine_winner"
	OpWithdrawPrize      OperationKind = "withdraw_prize"
	OpWithdrawCommission OperationKind = "withdraw_commission"
)

type ChainOutcome struct {
	Digest string
	Err    error
}

type MirrorOutcome struct {
	Attempted bool
	Err       error
}

// Outcome is the result of one transaction followed by its backend mirror call.
// The two effects are independent: nothing rolls the chain back when the mirror fails.
type Outcome struct {
	Kind      OperationKind
	LotteryID string
	Chain     ChainOutcome
	Mirror    MirrorOutcome
	At        time.Time
}

func (o Outcome) ChainSucceeded() bool {
	return o.Chain.Err == nil && o.Chain.Digest != ""
}

func (o Outcome) MirrorSucceeded() bool {
	return o.Mirror.Attempted && o.Mirror.Err == nil
}

// Partial reports the chain-succeeded, mirror-failed gap.
func (o Outcome) Partial() bool {
	return o.ChainSucceeded() && !o.MirrorSucceeded()
}

// JournalEntry is the stored form of an Outcome.
type JournalEntry struct {
	ID              string
	Kind            OperationKind
	LotteryID       string
	Digest          string
	ChainError      string
	MirrorAttempted bool
	MirrorError     string
	CreatedAt       time.Time
}

func (e JournalEntry) Partial() bool {
	return e.Digest != "" && e.ChainError == "" && (!e.MirrorAttempted || e.MirrorError != "")
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (o Outcome) Entry(id string) JournalEntry {
	return JournalEntry{
		ID:              id,
		Kind:            o.Kind,
		LotteryID:       o.LotteryID,
		Digest:          o.Chain.Digest,
		ChainError:      errString(o.Chain.Err),
		MirrorAttempted: o.Mirror.Attempted,
		MirrorError:     errString(o.Mirror.Err),
		CreatedAt:       o.At,
	}
}
