package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// TradeQuery son los filtros server-side de GET /trades.
type TradeQuery struct {
	MarketID string
	AgentID  string
	Limit    int
}

// TradeProvider obtiene trades ejecutados desde la API.
type TradeProvider interface {
	ListTrades(ctx context.Context, q TradeQuery) ([]domain.Trade, error)
}
