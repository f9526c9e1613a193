package moltstreet

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// PlatformStats implementa ports.AdminService contra GET /admin/stats.
// Requiere AdminKey en las credenciales.
func (c *Client) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	var resp platformStatsResponse
	if err := c.get(ctx, "/admin/stats", &resp); err != nil {
		return domain.PlatformStats{}, fmt.Errorf("moltstreet.PlatformStats: %w", err)
	}

	o := resp.Overview
	return domain.PlatformStats{
		TotalAgents:     o.TotalAgents,
		TotalTraders:    o.TotalTraders,
		TotalModerators: o.TotalModerators,
		TotalMarkets:    o.TotalMarkets,
		OpenMarkets:     o.OpenMarkets,
		ResolvedMarkets: o.ResolvedMarkets,
		TotalTrades:     o.TotalTrades,
		TotalVolume:     num(o.TotalVolume),
		TotalFees:       num(resp.Revenue.TotalRevenue),
	}, nil
}

// ListAdminAgents devuelve todos los agentes con el detalle que solo sirve el
// panel de admin, wallet incluida. Requiere AdminKey.
func (c *Client) ListAdminAgents(ctx context.Context, role domain.AgentRole, limit int) ([]domain.AdminAgent, error) {
	params := url.Values{}
	if role != "" {
		params.Set("role", string(role))
	}
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))

	var resp []adminAgentDTO
	if err := c.get(ctx, "/admin/agents?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListAgents: %w", err)
	}

	agents := make([]domain.AdminAgent, 0, len(resp))
	for _, d := range resp {
		agents = append(agents, mapAdminAgent(d))
	}
	return agents, nil
}

// ListFees devuelve el ledger de fees de la plataforma, más recientes primero.
func (c *Client) ListFees(ctx context.Context, feeType domain.FeeType, limit int) ([]domain.PlatformFee, error) {
	params := url.Values{}
	if feeType != "" {
		params.Set("fee_type", string(feeType))
	}
	if limit <= 0 {
		limit = 50
	}
	params.Set("limit", strconv.Itoa(limit))

	var resp []platformFeeDTO
	if err := c.get(ctx, "/admin/fees?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListFees: %w", err)
	}

	fees := make([]domain.PlatformFee, 0, len(resp))
	for _, d := range resp {
		fees = append(fees, mapPlatformFee(d))
	}
	return fees, nil
}
