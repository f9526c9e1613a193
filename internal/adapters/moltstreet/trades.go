package moltstreet

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

const defaultTradeLimit = 50

// ListTrades implementa ports.TradeProvider contra GET /trades.
// agent_id matchea cualquiera de los dos lados del trade.
func (c *Client) ListTrades(ctx context.Context, q ports.TradeQuery) ([]domain.Trade, error) {
	params := url.Values{}
	if q.MarketID != "" {
		params.Set("market_id", q.MarketID)
	}
	if q.AgentID != "" {
		params.Set("agent_id", q.AgentID)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultTradeLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	var resp []tradeDTO
	if err := c.get(ctx, "/trades?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListTrades: %w", err)
	}
	return mapTrades(resp), nil
}
