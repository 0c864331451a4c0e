// Package wallet holds the connected signing identity and routes every
// on-chain write through SignAndExecute.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/pkg/bcs"
)

var (
	ErrNotConnected    = errors.New("wallet is not connected")
	ErrUnknownAccount  = errors.New("account is not in the keystore")
	ErrInsufficientGas = errors.New("not enough SUI to cover payment and gas")
)

type Gateway interface {
	Execute(ctx context.Context, txBytes []byte, signatures [][]byte) (*chain.TxResult, error)
	GetObjects(ctx context.Context, ids []bcs.Address) (map[bcs.Address]ptb.ResolvedObject, error)
	GetCoins(ctx context.Context, owner string) ([]chain.Coin, error)
	ReferenceGasPrice(ctx context.Context) (uint64, error)
}

type Session struct {
	mu        sync.RWMutex
	keystore  *Keystore
	current   *Account
	gateway   Gateway
	gasBudget uint64
}

func New(cfg *config.Config, keystore *Keystore, gateway Gateway) *Session {
	return &Session{
		keystore:  keystore,
		gateway:   gateway,
		gasBudget: cfg.GasBudget,
	}
}

func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Address is empty while disconnected.
func (s *Session) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Address
}

func (s *Session) Accounts() []string {
	return s.keystore.Addresses()
}

func (s *Session) Connect(address string) error {
	acc, ok := s.keystore.Account(address)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	s.mu.Lock()
	s.current = &acc
	s.mu.Unlock()
	zap.L().Info("wallet connected", zap.String("address", acc.Address))
	return nil
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	zap.L().Info("wallet disconnected")
}

func (s *Session) account() (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Account{}, ErrNotConnected
	}
	return *s.current, nil
}

// SignAndExecute resolves inputs and gas, signs the transaction with the
// connected account and submits it. The result carries the digest even when
// the transaction executed and aborted.
func (s *Session) SignAndExecute(ctx context.Context, tx *ptb.Transaction) (*chain.TxResult, error) {
	acc, err := s.account()
	if err != nil {
		return nil, err
	}
	if err := tx.Err(); err != nil {
		return nil, err
	}
	sender, err := bcs.ParseAddress(acc.Address)
	if err != nil {
		return nil, err
	}

	objects, err := s.gateway.GetObjects(ctx, tx.ObjectIDs())
	if err != nil {
		return nil, fmt.Errorf("resolve objects: %w", err)
	}
	price, err := s.gateway.ReferenceGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("gas price: %w", err)
	}
	payment, err := s.selectGas(ctx, acc.Address, tx.GasCoinSpend()+s.gasBudget)
	if err != nil {
		return nil, err
	}

	txBytes, err := ptb.Encode(tx, sender, ptb.GasData{
		Payment: payment,
		Owner:   sender,
		Price:   price,
		Budget:  s.gasBudget,
	}, objects)
	if err != nil {
		return nil, fmt.Errorf("encode transaction: %w", err)
	}

	zap.L().Debug("signing transaction", zap.Strings("targets", tx.Targets()), zap.String("sender", acc.Address))
	return s.gateway.Execute(ctx, txBytes, [][]byte{acc.Sign(txBytes)})
}

func (s *Session) selectGas(ctx context.Context, owner string, need uint64) ([]ptb.ObjectRef, error) {
	coins, err := s.gateway.GetCoins(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list coins: %w", err)
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].Balance > coins[j].Balance })

	var (
		refs  []ptb.ObjectRef
		total uint64
	)
	for _, c := range coins {
		if total >= need {
			break
		}
		id, err := bcs.ParseAddress(c.CoinObjectID)
		if err != nil {
			return nil, err
		}
		digest, err := chain.DecodeDigest(c.Digest)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ptb.ObjectRef{ID: id, Version: uint64(c.Version), Digest: digest})
		total += uint64(c.Balance)
	}
	if total < need {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientGas, total, need)
	}
	return refs, nil
}
