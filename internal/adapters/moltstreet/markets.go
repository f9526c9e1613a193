package moltstreet

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

const defaultMarketLimit = 100

// ListMarkets implementa ports.MarketProvider contra GET /markets.
// El servidor solo filtra por status/category/creator y ordena trending;
// el resto del refinado es client-side.
func (c *Client) ListMarkets(ctx context.Context, q ports.MarketQuery) ([]domain.Market, error) {
	params := url.Values{}
	if q.Status != "" {
		params.Set("status", string(q.Status))
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.CreatorID != "" {
		params.Set("creator_id", q.CreatorID)
	}
	if q.Trending {
		params.Set("trending", "true")
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultMarketLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	var resp []marketDTO
	if err := c.get(ctx, "/markets?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListMarkets: %w", err)
	}
	return mapMarkets(resp), nil
}

// GetMarket devuelve un mercado por ID.
func (c *Client) GetMarket(ctx context.Context, id string) (domain.Market, error) {
	var resp marketDTO
	if err := c.get(ctx, "/markets/"+url.PathEscape(id), &resp); err != nil {
		return domain.Market{}, fmt.Errorf("moltstreet.GetMarket: %w", err)
	}
	return mapMarket(resp), nil
}

// GetOrderBook devuelve el libro de un mercado.
func (c *Client) GetOrderBook(ctx context.Context, marketID string) (domain.OrderBook, error) {
	var resp orderBookDTO
	if err := c.get(ctx, "/markets/"+url.PathEscape(marketID)+"/orderbook", &resp); err != nil {
		return domain.OrderBook{}, fmt.Errorf("moltstreet.GetOrderBook: %w", err)
	}
	return mapOrderBook(resp), nil
}

// ListCategories devuelve las categorías de mercado disponibles.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.get(ctx, "/markets/categories", &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListCategories: %w", err)
	}
	return resp, nil
}
