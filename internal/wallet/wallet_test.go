package wallet

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/blake2b"

	"github.com/GlebRadaev/suilottery/internal/chain"
	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/pkg/bcs"
)

func keystoreEntry(seed []byte) string {
	return base64.StdEncoding.EncodeToString(append([]byte{ed25519Flag}, seed...))
}

func testKeystore(t *testing.T, seeds ...[]byte) *Keystore {
	entries := make([]string, len(seeds))
	for i, s := range seeds {
		entries[i] = keystoreEntry(s)
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	ks, err := ParseKeystore(data)
	require.NoError(t, err)
	return ks
}

func TestNewAccount_Address(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	acc, err := NewAccount(seed)
	require.NoError(t, err)

	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	h := blake2b.Sum256(append([]byte{0x00}, pub...))
	assert.Equal(t, "0x"+hex.EncodeToString(h[:]), acc.Address)

	_, err = NewAccount([]byte{1, 2})
	assert.Error(t, err)
}

func TestAccount_Sign(t *testing.T) {
	acc, err := NewAccount(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)

	txBytes := []byte{0, 0, 1, 2, 3}
	sig := acc.Sign(txBytes)

	require.Len(t, sig, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	assert.Equal(t, ed25519Flag, sig[0])
	assert.Equal(t, []byte(acc.PublicKey()), sig[1+ed25519.SignatureSize:])

	digest := blake2b.Sum256(append([]byte{0, 0, 0}, txBytes...))
	assert.True(t, ed25519.Verify(acc.PublicKey(), digest[:], sig[1:1+ed25519.SignatureSize]))
}

func TestParseKeystore(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		count   int
	}{
		{name: "two accounts", data: `["` + keystoreEntry(bytes.Repeat([]byte{1}, 32)) + `","` + keystoreEntry(bytes.Repeat([]byte{2}, 32)) + `"]`, count: 2},
		{name: "duplicate account", data: `["` + keystoreEntry(bytes.Repeat([]byte{1}, 32)) + `","` + keystoreEntry(bytes.Repeat([]byte{1}, 32)) + `"]`, count: 1},
		{name: "not json", data: `nope`, wantErr: true},
		{name: "bad base64", data: `["***"]`, wantErr: true},
		{name: "secp256k1 entry", data: `["` + base64.StdEncoding.EncodeToString(append([]byte{0x01}, bytes.Repeat([]byte{1}, 32)...)) + `"]`, wantErr: true},
		{name: "short entry", data: `["AAE="]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ks, err := ParseKeystore([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ks.Addresses(), tt.count)
		})
	}
}

func TestLoadKeystore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sui.keystore")
	require.NoError(t, os.WriteFile(path, []byte(`["`+keystoreEntry(bytes.Repeat([]byte{3}, 32))+`"]`), 0o600))

	ks, err := LoadKeystore(path)
	require.NoError(t, err)
	assert.Len(t, ks.Addresses(), 1)

	_, err = LoadKeystore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func NewMock(t *testing.T) (*Session, *MockGateway, Account) {
	ctrl := gomock.NewController(t)
	gateway := NewMockGateway(ctrl)
	seed := bytes.Repeat([]byte{9}, 32)
	ks := testKeystore(t, seed)
	acc, _ := NewAccount(seed)
	session := New(&config.Config{GasBudget: 1_000}, ks, gateway)
	return session, gateway, acc
}

func TestSession_ConnectDisconnect(t *testing.T) {
	session, _, acc := NewMock(t)

	assert.False(t, session.IsConnected())
	assert.Empty(t, session.Address())

	err := session.Connect("0xdeadbeef")
	assert.ErrorIs(t, err, ErrUnknownAccount)

	require.NoError(t, session.Connect(acc.Address))
	assert.True(t, session.IsConnected())
	assert.Equal(t, acc.Address, session.Address())

	session.Disconnect()
	assert.False(t, session.IsConnected())
}

func TestSession_SignAndExecuteNotConnected(t *testing.T) {
	session, _, _ := NewMock(t)

	_, err := session.SignAndExecute(context.Background(), ptb.New())
	assert.ErrorIs(t, err, ErrNotConnected)
}

func coin(id string, balance uint64) chain.Coin {
	return chain.Coin{
		CoinObjectID: id,
		Version:      1,
		Digest:       base58.Encode(make([]byte, 32)),
		Balance:      chain.U64(balance),
	}
}

func TestSession_SignAndExecute(t *testing.T) {
	tests := []struct {
		name    string
		coins   []chain.Coin
		wantErr error
	}{
		{
			name:  "largest coin covers payment and gas",
			coins: []chain.Coin{coin("0x21", 10), coin("0x22", 5_000)},
		},
		{
			name:  "several coins",
			coins: []chain.Coin{coin("0x21", 600), coin("0x22", 600), coin("0x23", 600)},
		},
		{
			name:    "not enough balance",
			coins:   []chain.Coin{coin("0x21", 10)},
			wantErr: ErrInsufficientGas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, gateway, acc := NewMock(t)
			require.NoError(t, session.Connect(acc.Address))

			tx := ptb.New()
			paid := tx.SplitCoins(ptb.GasCoin(), tx.PureU64(500))
			tx.MoveCall("0x2", "decentralized_lottery", "buy_ticket", tx.Object("0x10"), paid[0], tx.Clock())

			lottery, _ := bcs.ParseAddress("0x10")
			clock, _ := bcs.ParseAddress("0x6")
			gateway.EXPECT().GetObjects(gomock.Any(), []bcs.Address{lottery, clock}).Return(map[bcs.Address]ptb.ResolvedObject{
				lottery: {Shared: true, InitialSharedVersion: 3},
				clock:   {Shared: true, InitialSharedVersion: 1},
			}, nil)
			gateway.EXPECT().ReferenceGasPrice(gomock.Any()).Return(uint64(750), nil)
			gateway.EXPECT().GetCoins(gomock.Any(), acc.Address).Return(tt.coins, nil)

			if tt.wantErr != nil {
				_, err := session.SignAndExecute(context.Background(), tx)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			gateway.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, txBytes []byte, sigs [][]byte) (*chain.TxResult, error) {
					require.Len(t, sigs, 1)
					digest := IntentDigest(txBytes)
					assert.True(t, ed25519.Verify(acc.PublicKey(), digest[:], sigs[0][1:65]))
					// V1, programmable, three inputs
					assert.Equal(t, []byte{0x00, 0x00, 0x03}, txBytes[:3])
					return &chain.TxResult{Digest: "TX", Status: "success"}, nil
				})

			res, err := session.SignAndExecute(context.Background(), tx)
			require.NoError(t, err)
			assert.Equal(t, "TX", res.Digest)
		})
	}
}
