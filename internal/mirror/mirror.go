// Package mirror is the REST client of the external bookkeeping backend that
// caches lottery state for listing. It is never authoritative.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/GlebRadaev/suilottery/internal/config"
	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/internal/dto"
	"github.com/GlebRadaev/suilottery/pkg/clients"
)

type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

type Client struct {
	baseURL string
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: cfg.BackendURL,
		client:  client,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	statusCode, body, err := c.client.Get(ctx, c.baseURL+path, clients.JSONHeaders())
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return &StatusError{Method: "GET", Path: path, Status: statusCode, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: failed to parse response body: %w", path, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	var reqBody []byte
	if payload != nil {
		var err error
		if reqBody, err = json.Marshal(payload); err != nil {
			return fmt.Errorf("POST %s: encode body: %w", path, err)
		}
	}
	statusCode, body, err := c.client.Post(ctx, c.baseURL+path, clients.JSONHeaders(), reqBody)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if statusCode < 200 || statusCode >= 300 {
		return &StatusError{Method: "POST", Path: path, Status: statusCode, Body: string(body)}
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("POST %s: failed to parse response body: %w", path, err)
	}
	return nil
}

// ListLotteries returns every lottery in the order the backend sends them.
func (c *Client) ListLotteries(ctx context.Context) ([]domain.Lottery, error) {
	var items []dto.LotteryDTO
	if err := c.get(ctx, "/", &items); err != nil {
		return nil, err
	}
	lotteries := make([]domain.Lottery, 0, len(items))
	for _, item := range items {
		lotteries = append(lotteries, item.ToDomain())
	}
	return lotteries, nil
}

func (c *Client) GetTickets(ctx context.Context, lotteryID string) ([]domain.Ticket, error) {
	var items []dto.TicketDTO
	if err := c.get(ctx, "/lotteries/"+url.PathEscape(lotteryID)+"/tickets", &items); err != nil {
		return nil, err
	}
	tickets := make([]domain.Ticket, 0, len(items))
	for _, item := range items {
		tickets = append(tickets, item.ToDomain(lotteryID))
	}
	return tickets, nil
}

func (c *Client) CreateLottery(ctx context.Context, l domain.Lottery) error {
	req := dto.CreateLotteryRequestDTO{
		ID:             l.ID,
		Name:           l.Name,
		Description:    l.Description,
		TicketPrice:    strconv.FormatUint(uint64(l.Price), 10),
		StartTime:      l.StartTime,
		EndTime:        l.EndTime,
		CreatorAddress: l.CreatorAddress,
		TicketURL:      l.TicketURL,
		CreatedAt:      l.CreatedAt,
		PricePool:      0,
	}
	var ack json.RawMessage
	if err := c.post(ctx, "/createLottery", req, &ack); err != nil {
		return err
	}
	zap.L().Debug("lottery mirrored", zap.String("lotteryID", l.ID), zap.ByteString("response", ack))
	return nil
}

func (c *Client) RecordTicket(ctx context.Context, t domain.Ticket, pricePool domain.MIST) error {
	req := dto.BuyTicketRequestDTO{
		ID:           t.ID,
		LotteryID:    t.LotteryID,
		Buyer:        t.Buyer,
		TicketNumber: domain.Uint(t.Number),
		BoughtAt:     t.BoughtAt,
		PricePool:    pricePool,
	}
	return c.post(ctx, "/"+url.PathEscape(t.LotteryID)+"/buy", req, nil)
}

// SetWinner records the winning ticket and returns the winner address the backend resolved.
func (c *Client) SetWinner(ctx context.Context, lotteryID, winningID string) (string, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/"+url.PathEscape(lotteryID)+"/setWinner", dto.SetWinnerRequestDTO{WinningID: winningID}, &raw); err != nil {
		return "", err
	}
	return decodeWinner(raw)
}

func decodeWinner(raw json.RawMessage) (string, error) {
	var address string
	if err := json.Unmarshal(raw, &address); err == nil {
		return address, nil
	}
	var obj struct {
		WinnerAddress string `json:"winnerAddress"`
		Winner        string `json:"winner"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("setWinner: failed to parse response body: %w", err)
	}
	if obj.WinnerAddress != "" {
		return obj.WinnerAddress, nil
	}
	return obj.Winner, nil
}

// MarkPrizeWithdrawn returns the backend's prize-withdrawn flag after the update.
func (c *Client) MarkPrizeWithdrawn(ctx context.Context, lotteryID string) (bool, error) {
	var flag bool
	err := c.post(ctx, "/"+url.PathEscape(lotteryID)+"/priceWithdrawn", nil, &flag)
	return flag, err
}

// MarkCommissionWithdrawn returns the backend's commission-withdrawn flag after the update.
func (c *Client) MarkCommissionWithdrawn(ctx context.Context, lotteryID string) (bool, error) {
	var flag bool
	err := c.post(ctx, "/"+url.PathEscape(lotteryID)+"/commissionWithdrawn", nil, &flag)
	return flag, err
}
