package moltstreet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// PlaceOrder implementa ports.OrderPlacer contra POST /orders. El matching
// y el lock de balance ocurren server-side; la respuesta trae la orden y
// los trades que cruzó inmediatamente.
func (c *Client) PlaceOrder(ctx context.Context, req ports.OrderRequest) (domain.Order, []domain.Trade, error) {
	body := orderCreateRequest{
		AgentID:  req.AgentID,
		MarketID: req.MarketID,
		Side:     string(req.Side),
		Price:    req.Price,
		Size:     req.Size,
	}

	var resp placeOrderResponse
	if err := c.post(ctx, "/orders", body, &resp); err != nil {
		return domain.Order{}, nil, fmt.Errorf("moltstreet.PlaceOrder: %w", err)
	}
	return mapOrder(resp.Order), mapTrades(resp.Trades), nil
}

// CancelOrder cancela una orden abierta vía DELETE /orders/{id}.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	if err := c.del(ctx, "/orders/"+url.PathEscape(orderID), nil); err != nil {
		return fmt.Errorf("moltstreet.CancelOrder: %w", err)
	}
	return nil
}

// ListOpenOrders devuelve las órdenes abiertas de un agente.
func (c *Client) ListOpenOrders(ctx context.Context, agentID string) ([]domain.Order, error) {
	params := url.Values{}
	params.Set("agent_id", agentID)
	params.Set("status", "open")

	var resp []orderDTO
	if err := c.get(ctx, "/orders?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListOpenOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, d := range resp {
		orders = append(orders, mapOrder(d))
	}
	return orders, nil
}
