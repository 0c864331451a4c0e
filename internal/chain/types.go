package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GlebRadaev/suilottery/internal/domain"
)

var (
	ErrMissingField = errors.New("event field missing")
	ErrNoEvents     = errors.New("transaction has no indexed events")
)

type EventID struct {
	TxDigest string `json:"txDigest"`
	EventSeq string `json:"eventSeq"`
}

type Event struct {
	ID          EventID         `json:"id"`
	PackageID   string          `json:"packageId"`
	Module      string          `json:"transactionModule"`
	Sender      string          `json:"sender"`
	Type        string          `json:"type"`
	ParsedJSON  json.RawMessage `json:"parsedJson"`
	TimestampMs domain.Millis   `json:"timestampMs"`
}

// Decode unmarshals parsedJson into v after checking that every required field is present.
func (e Event) Decode(v any, required ...string) error {
	if len(required) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(e.ParsedJSON, &fields); err != nil {
			return fmt.Errorf("decode event %s: %w", e.Type, err)
		}
		var missing []string
		for _, name := range required {
			if raw, ok := fields[name]; !ok || string(raw) == "null" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s in %s", ErrMissingField, strings.Join(missing, ", "), e.Type)
		}
	}
	if err := json.Unmarshal(e.ParsedJSON, v); err != nil {
		return fmt.Errorf("decode event %s: %w", e.Type, err)
	}
	return nil
}

// FirstEvent returns the first event of a transaction, the one every lottery entry point emits.
func FirstEvent(events []Event) (Event, error) {
	if len(events) == 0 {
		return Event{}, ErrNoEvents
	}
	return events[0], nil
}

type TxResult struct {
	Digest string
	Status string
}

type ExecutionError struct {
	Digest  string
	Message string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Digest, e.Message)
}

type Coin struct {
	CoinType     string `json:"coinType"`
	CoinObjectID string `json:"coinObjectId"`
	Version      U64    `json:"version"`
	Digest       string `json:"digest"`
	Balance      U64    `json:"balance"`
}

// U64 decodes the string-encoded u64 values returned by the node.
type U64 uint64

func (u *U64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*u = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %s: %w", b, err)
	}
	*u = U64(v)
	return nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type eventPage struct {
	Data []Event `json:"data"`
}

type coinPage struct {
	Data        []Coin  `json:"data"`
	NextCursor  *string `json:"nextCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

type objectResponse struct {
	Data *struct {
		ObjectID string          `json:"objectId"`
		Version  U64             `json:"version"`
		Digest   string          `json:"digest"`
		Owner    json.RawMessage `json:"owner"`
	} `json:"data"`
	Error json.RawMessage `json:"error"`
}

type executeResponse struct {
	Digest  string `json:"digest"`
	Effects *struct {
		Status struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		} `json:"status"`
	} `json:"effects"`
}
