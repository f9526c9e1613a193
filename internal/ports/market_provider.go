package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// MarketQuery son los filtros server-side soportados por GET /markets.
// El refinado fino (búsqueda, live, paginación) es client-side en listview.
type MarketQuery struct {
	Status    domain.MarketStatus
	Category  string
	CreatorID string
	Trending  bool
	Limit     int
}

// MarketProvider obtiene mercados desde la API de la plataforma.
type MarketProvider interface {
	// ListMarkets devuelve los mercados que cumplen la query.
	ListMarkets(ctx context.Context, q MarketQuery) ([]domain.Market, error)

	// GetMarket devuelve un mercado por ID.
	GetMarket(ctx context.Context, id string) (domain.Market, error)

	// GetOrderBook devuelve el libro de órdenes de un mercado.
	GetOrderBook(ctx context.Context, marketID string) (domain.OrderBook, error)

	// ListCategories devuelve las categorías disponibles.
	ListCategories(ctx context.Context) ([]string, error)
}
