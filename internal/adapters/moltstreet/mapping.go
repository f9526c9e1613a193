package moltstreet

import (
	"encoding/json"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// num coerce un json.Number a float64. Un campo malformado o ausente vale 0:
// un registro malo no deja la lista entera en blanco.
func num(n json.Number) float64 {
	if n == "" {
		return 0
	}
	v, err := n.Float64()
	if err != nil {
		return 0
	}
	return v
}

// ts parsea un timestamp ISO-8601 en los formatos que emite el servidor.
// Devuelve el instante cero si no parsea: ordena como el mínimo del dominio.
func ts(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func mapMarket(d marketDTO) domain.Market {
	return domain.Market{
		ID:          d.ID,
		CreatorID:   d.CreatorID,
		Question:    d.Question,
		Description: d.Description,
		Category:    d.Category,
		Status:      domain.MarketStatus(d.Status),
		Outcome:     domain.Outcome(d.Outcome),
		YesPrice:    num(d.YesPrice),
		NoPrice:     num(d.NoPrice),
		Volume:      num(d.Volume),
		Deadline:    ts(d.Deadline),
		ResolvedAt:  ts(d.ResolvedAt),
		ResolvedBy:  d.ResolvedBy,
		Evidence:    d.Evidence,
		CreatedAt:   ts(d.CreatedAt),
	}
}

func mapMarkets(dtos []marketDTO) []domain.Market {
	out := make([]domain.Market, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapMarket(d))
	}
	return out
}

func mapAgent(d agentDTO) domain.Agent {
	return domain.Agent{
		ID:            d.ID,
		Name:          d.Name,
		Role:          domain.AgentRole(d.Role),
		Balance:       num(d.Balance),
		LockedBalance: num(d.LockedBalance),
		Reputation:    num(d.Reputation),
		CreatedAt:     ts(d.CreatedAt),
	}
}

func mapAgents(dtos []agentDTO) []domain.Agent {
	out := make([]domain.Agent, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapAgent(d))
	}
	return out
}

func mapTrade(d tradeDTO) domain.Trade {
	return domain.Trade{
		ID:        d.ID,
		MarketID:  d.MarketID,
		Side:      domain.Side(d.Side),
		Price:     num(d.Price),
		Size:      num(d.Size),
		BuyerID:   d.BuyerID,
		SellerID:  d.SellerID,
		TotalFee:  num(d.TotalFee),
		CreatedAt: ts(d.CreatedAt),
	}
}

func mapTrades(dtos []tradeDTO) []domain.Trade {
	out := make([]domain.Trade, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, mapTrade(d))
	}
	return out
}

func mapOrder(d orderDTO) domain.Order {
	return domain.Order{
		ID:        d.ID,
		AgentID:   d.AgentID,
		MarketID:  d.MarketID,
		Side:      domain.Side(d.Side),
		Price:     num(d.Price),
		Size:      num(d.Size),
		Filled:    num(d.Filled),
		Status:    domain.OrderStatus(d.Status),
		CreatedAt: ts(d.CreatedAt),
	}
}

func mapOrderBook(d orderBookDTO) domain.OrderBook {
	return domain.OrderBook{
		MarketID: d.MarketID,
		Bids:     mapBookLevels(d.Bids),
		Asks:     mapBookLevels(d.Asks),
	}
}

func mapBookLevels(dtos []bookLevelDTO) []domain.BookLevel {
	out := make([]domain.BookLevel, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, domain.BookLevel{Price: num(d.Price), Size: num(d.Size)})
	}
	return out
}

func mapComment(d commentDTO) domain.Comment {
	return domain.Comment{
		ID:        d.ID,
		MarketID:  d.MarketID,
		AgentID:   d.Agent.ID,
		AgentName: d.Agent.Name,
		Content:   d.Content,
		Upvotes:   d.Upvotes,
		Downvotes: d.Downvotes,
		ParentID:  d.ParentID,
		CreatedAt: ts(d.CreatedAt),
	}
}

func mapPendingMarket(d pendingMarketDTO) domain.Market {
	return domain.Market{
		ID:          d.ID,
		Question:    d.Question,
		Description: d.Description,
		Category:    d.Category,
		Status:      domain.MarketStatus(d.Status),
		Volume:      num(d.Volume),
		Deadline:    ts(d.Deadline),
	}
}

func mapModeratorReward(d moderatorRewardDTO) domain.ModeratorReward {
	return domain.ModeratorReward{
		ID:             d.ID.String(),
		MarketID:       d.MarketID,
		MarketQuestion: d.MarketQuestion,
		PlatformShare:  num(d.PlatformShare),
		WinnerFee:      num(d.WinnerFee),
		TotalReward:    num(d.TotalReward),
		WinnerProfits:  num(d.WinnerProfits),
		CreatedAt:      ts(d.CreatedAt),
	}
}

func mapResolvedMarket(d resolvedMarketDTO) domain.ResolvedMarket {
	out := domain.ResolvedMarket{
		ID:         d.ID,
		Question:   d.Question,
		Outcome:    domain.Outcome(d.Outcome),
		Volume:     num(d.Volume),
		ResolvedAt: ts(d.ResolvedAt),
	}
	if d.Reward != nil {
		reward := mapModeratorReward(*d.Reward)
		out.Reward = &reward
	}
	return out
}

func mapAdminAgent(d adminAgentDTO) domain.AdminAgent {
	return domain.AdminAgent{
		Agent:         mapAgent(d.agentDTO),
		WalletAddress: d.WalletAddress,
	}
}

func mapPlatformFee(d platformFeeDTO) domain.PlatformFee {
	return domain.PlatformFee{
		ID:          d.ID,
		Type:        domain.FeeType(d.FeeType),
		Amount:      num(d.Amount),
		AgentID:     d.AgentID,
		MarketID:    d.MarketID,
		Description: d.Description,
		CreatedAt:   ts(d.CreatedAt),
	}
}
