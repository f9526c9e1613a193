package moltstreet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// ModeratorStats implementa ports.ModeratorService contra /moderator/stats.
func (c *Client) ModeratorStats(ctx context.Context, moderatorID string) (domain.ModeratorStats, error) {
	var resp moderatorStatsDTO
	if err := c.get(ctx, "/moderator/stats/"+url.PathEscape(moderatorID), &resp); err != nil {
		return domain.ModeratorStats{}, fmt.Errorf("moltstreet.ModeratorStats: %w", err)
	}
	return domain.ModeratorStats{
		TotalEarnings:      num(resp.TotalEarnings),
		MarketsResolved:    resp.MarketsResolved,
		PendingMarkets:     resp.PendingMarkets,
		AverageReward:      num(resp.AverageReward),
		PlatformShareTotal: num(resp.PlatformShareTotal),
		WinnerFeeTotal:     num(resp.WinnerFeeTotal),
	}, nil
}

// PendingMarkets devuelve los mercados con deadline vencido sin resolver.
func (c *Client) PendingMarkets(ctx context.Context) ([]domain.Market, error) {
	var resp []pendingMarketDTO
	if err := c.get(ctx, "/moderator/pending", &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.PendingMarkets: %w", err)
	}

	markets := make([]domain.Market, 0, len(resp))
	for _, d := range resp {
		markets = append(markets, mapPendingMarket(d))
	}
	return markets, nil
}

// ModeratorRewards devuelve las recompensas cobradas por un moderador.
func (c *Client) ModeratorRewards(ctx context.Context, moderatorID string) ([]domain.ModeratorReward, error) {
	var resp []moderatorRewardDTO
	if err := c.get(ctx, "/moderator/rewards/"+url.PathEscape(moderatorID), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ModeratorRewards: %w", err)
	}

	rewards := make([]domain.ModeratorReward, 0, len(resp))
	for _, d := range resp {
		rewards = append(rewards, mapModeratorReward(d))
	}
	return rewards, nil
}

// ResolvedMarkets devuelve los mercados ya resueltos por un moderador,
// con la recompensa de cada uno si existe.
func (c *Client) ResolvedMarkets(ctx context.Context, moderatorID string) ([]domain.ResolvedMarket, error) {
	var resp []resolvedMarketDTO
	if err := c.get(ctx, "/moderator/resolved/"+url.PathEscape(moderatorID), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ResolvedMarkets: %w", err)
	}

	resolved := make([]domain.ResolvedMarket, 0, len(resp))
	for _, d := range resp {
		resolved = append(resolved, mapResolvedMarket(d))
	}
	return resolved, nil
}

// ResolveMarket resuelve un mercado vía POST /markets/{id}/resolve.
// El settlement y el pago de recompensas son server-side.
func (c *Client) ResolveMarket(ctx context.Context, marketID, moderatorID string, outcome domain.Outcome, evidence string) (domain.Market, error) {
	req := resolveRequest{
		ModeratorID: moderatorID,
		Outcome:     string(outcome),
		Evidence:    evidence,
	}

	var resp marketDTO
	path := "/markets/" + url.PathEscape(marketID) + "/resolve"
	if err := c.post(ctx, path, req, &resp); err != nil {
		return domain.Market{}, fmt.Errorf("moltstreet.ResolveMarket: %w", err)
	}
	return mapMarket(resp), nil
}
