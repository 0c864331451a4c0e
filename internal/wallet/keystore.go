package wallet

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	ed25519Flag byte = 0x00
	seedLength       = ed25519.SeedSize
)

// Intent prefix for TransactionData: scope, version, app id.
var transactionIntent = []byte{0, 0, 0}

var ErrUnsupportedKey = errors.New("unsupported key scheme")

type Account struct {
	Address string
	key     ed25519.PrivateKey
}

// NewAccount derives an Ed25519 account from a 32-byte seed.
func NewAccount(seed []byte) (Account, error) {
	if len(seed) != seedLength {
		return Account{}, fmt.Errorf("seed must be %d bytes, got %d", seedLength, len(seed))
	}
	key := ed25519.NewKeyFromSeed(seed)
	pub := key.Public().(ed25519.PublicKey)
	return Account{Address: deriveAddress(pub), key: key}, nil
}

func deriveAddress(pub ed25519.PublicKey) string {
	h := blake2b.Sum256(append([]byte{ed25519Flag}, pub...))
	return "0x" + hex.EncodeToString(h[:])
}

func (a Account) PublicKey() ed25519.PublicKey {
	return a.key.Public().(ed25519.PublicKey)
}

// Sign produces a serialized Sui signature (flag || signature || public key)
// over the intent message of txBytes.
func (a Account) Sign(txBytes []byte) []byte {
	digest := IntentDigest(txBytes)
	sig := ed25519.Sign(a.key, digest[:])

	out := make([]byte, 0, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	out = append(out, ed25519Flag)
	out = append(out, sig...)
	out = append(out, a.PublicKey()...)
	return out
}

func IntentDigest(txBytes []byte) [32]byte {
	msg := make([]byte, 0, len(transactionIntent)+len(txBytes))
	msg = append(msg, transactionIntent...)
	msg = append(msg, txBytes...)
	return blake2b.Sum256(msg)
}

type Keystore struct {
	accounts map[string]Account
	order    []string
}

// LoadKeystore reads a Sui CLI keystore: a JSON array of base64 flag||seed entries.
func LoadKeystore(path string) (*Keystore, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keystore: %w", err)
	}
	return ParseKeystore(data)
}

func ParseKeystore(data []byte) (*Keystore, error) {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse keystore: %w", err)
	}
	ks := &Keystore{accounts: make(map[string]Account, len(entries))}
	for i, entry := range entries {
		raw, err := base64.StdEncoding.DecodeString(entry)
		if err != nil {
			return nil, fmt.Errorf("keystore entry %d: %w", i, err)
		}
		if len(raw) != 1+seedLength {
			return nil, fmt.Errorf("keystore entry %d: unexpected length %d", i, len(raw))
		}
		if raw[0] != ed25519Flag {
			return nil, fmt.Errorf("keystore entry %d: %w: flag %#x", i, ErrUnsupportedKey, raw[0])
		}
		acc, err := NewAccount(raw[1:])
		if err != nil {
			return nil, fmt.Errorf("keystore entry %d: %w", i, err)
		}
		ks.add(acc)
	}
	return ks, nil
}

func (k *Keystore) add(acc Account) {
	if _, ok := k.accounts[acc.Address]; ok {
		return
	}
	k.accounts[acc.Address] = acc
	k.order = append(k.order, acc.Address)
}

func (k *Keystore) Addresses() []string {
	out := make([]string, len(k.order))
	copy(out, k.order)
	return out
}

func (k *Keystore) Account(address string) (Account, bool) {
	acc, ok := k.accounts[strings.ToLower(address)]
	return acc, ok
}
