// Package chain is the gateway to a Sui full node over JSON-RPC.
package chain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/chain/ptb"
	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/pkg/bcs"
	"github.com/GlebRadaev/suilottery/pkg/clients"
)

const (
	suiCoinType  = "0x2::sui::SUI"
	coinPageSize = 50
	maxCoinPages = 10
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Gateway struct {
	url    string
	client clients.HTTPClientI
	nextID atomic.Uint64
}

func New(cfg *config.Config, client clients.HTTPClientI) *Gateway {
	return &Gateway{
		url:    cfg.RPCURL,
		client: client,
	}
}

func (g *Gateway) call(ctx context.Context, method string, params []any, result any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      g.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	statusCode, respBody, err := g.client.Post(ctx, g.url, clients.JSONHeaders(), body)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("%s: %w: %d", method, ErrUnexpectedStatus, statusCode)
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("%s: failed to parse response body: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: %w", method, resp.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Result, result); err != nil {
		return fmt.Errorf("%s: failed to parse result: %w", method, err)
	}
	return nil
}

// QueryEvents returns the events emitted by the transaction. It makes a single
// attempt: events of a just-confirmed transaction may not be indexed yet.
func (g *Gateway) QueryEvents(ctx context.Context, digest string) ([]Event, error) {
	var page eventPage
	params := []any{map[string]string{"Transaction": digest}, nil, nil, false}
	if err := g.call(ctx, "suix_queryEvents", params, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// Execute submits signed transaction bytes and waits for local execution.
func (g *Gateway) Execute(ctx context.Context, txBytes []byte, signatures [][]byte) (*TxResult, error) {
	sigs := make([]string, len(signatures))
	for i, s := range signatures {
		sigs[i] = base64.StdEncoding.EncodeToString(s)
	}
	params := []any{
		base64.StdEncoding.EncodeToString(txBytes),
		sigs,
		map[string]bool{"showEffects": true},
		"WaitForLocalExecution",
	}

	var resp executeResponse
	if err := g.call(ctx, "sui_executeTransactionBlock", params, &resp); err != nil {
		return nil, err
	}

	result := &TxResult{Digest: resp.Digest}
	if resp.Effects != nil {
		result.Status = resp.Effects.Status.Status
		if result.Status != "success" {
			return result, &ExecutionError{Digest: resp.Digest, Message: resp.Effects.Status.Error}
		}
	}
	zap.L().Info("transaction executed", zap.String("digest", resp.Digest), zap.String("status", result.Status))
	return result, nil
}

// GetObjects resolves object inputs into owned references or shared descriptors.
func (g *Gateway) GetObjects(ctx context.Context, ids []bcs.Address) (map[bcs.Address]ptb.ResolvedObject, error) {
	resolved := make(map[bcs.Address]ptb.ResolvedObject, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	var objects []objectResponse
	params := []any{strIDs, map[string]bool{"showOwner": true}}
	if err := g.call(ctx, "sui_multiGetObjects", params, &objects); err != nil {
		return nil, err
	}
	if len(objects) != len(ids) {
		return nil, fmt.Errorf("sui_multiGetObjects: asked for %d objects, got %d", len(ids), len(objects))
	}

	for i, obj := range objects {
		if obj.Data == nil {
			return nil, fmt.Errorf("object %s not available: %s", strIDs[i], string(obj.Error))
		}
		r, err := resolveObject(ids[i], uint64(obj.Data.Version), obj.Data.Digest, obj.Data.Owner)
		if err != nil {
			return nil, err
		}
		resolved[ids[i]] = r
	}
	return resolved, nil
}

func resolveObject(id bcs.Address, version uint64, digest string, owner json.RawMessage) (ptb.ResolvedObject, error) {
	var shared struct {
		Shared *struct {
			InitialSharedVersion U64 `json:"initial_shared_version"`
		} `json:"Shared"`
	}
	// Owner is either a bare string such as "Immutable" or a single-key object.
	if len(owner) > 0 && owner[0] == '{' {
		if err := json.Unmarshal(owner, &shared); err != nil {
			return ptb.ResolvedObject{}, fmt.Errorf("object %s: invalid owner: %w", id, err)
		}
	}
	if shared.Shared != nil {
		return ptb.ResolvedObject{
			Shared:               true,
			InitialSharedVersion: uint64(shared.Shared.InitialSharedVersion),
		}, nil
	}

	raw, err := DecodeDigest(digest)
	if err != nil {
		return ptb.ResolvedObject{}, fmt.Errorf("object %s: %w", id, err)
	}
	return ptb.ResolvedObject{Ref: ptb.ObjectRef{ID: id, Version: version, Digest: raw}}, nil
}

// GetCoins lists the owner's SUI coins.
func (g *Gateway) GetCoins(ctx context.Context, owner string) ([]Coin, error) {
	var coins []Coin
	var cursor *string
	for page := 0; page < maxCoinPages; page++ {
		var resp coinPage
		params := []any{owner, suiCoinType, cursor, coinPageSize}
		if err := g.call(ctx, "suix_getCoins", params, &resp); err != nil {
			return nil, err
		}
		coins = append(coins, resp.Data...)
		if !resp.HasNextPage || resp.NextCursor == nil {
			break
		}
		cursor = resp.NextCursor
	}
	return coins, nil
}

func (g *Gateway) ReferenceGasPrice(ctx context.Context) (uint64, error) {
	var price U64
	if err := g.call(ctx, "suix_getReferenceGasPrice", nil, &price); err != nil {
		return 0, err
	}
	return uint64(price), nil
}

// DecodeDigest turns a base58 object or transaction digest into its 32 raw bytes.
func DecodeDigest(digest string) ([]byte, error) {
	raw, err := base58.Decode(digest)
	if err != nil {
		return nil, fmt.Errorf("invalid digest %q: %w", digest, err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("invalid digest %q: %d bytes", digest, len(raw))
	}
	return raw, nil
}
