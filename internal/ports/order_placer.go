package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// OrderRequest es una orden a colocar. AgentID debe ser un trader;
// los moderadores no pueden operar (lo rechaza el servidor).
type OrderRequest struct {
	AgentID  string
	MarketID string
	Side     domain.Side
	Price    float64
	Size     float64
}

// OrderPlacer coloca y cancela órdenes contra la API. El matching, el lock
// de balance y el settlement son server-side; aquí solo se envía el input
// y se renderizan los trades resultantes.
type OrderPlacer interface {
	// PlaceOrder coloca la orden y devuelve la orden creada junto con los
	// trades que cruzó inmediatamente, si los hubo.
	PlaceOrder(ctx context.Context, req OrderRequest) (domain.Order, []domain.Trade, error)

	// CancelOrder cancela una orden abierta del agente autenticado.
	CancelOrder(ctx context.Context, orderID string) error

	// ListOpenOrders devuelve las órdenes abiertas de un agente.
	ListOpenOrders(ctx context.Context, agentID string) ([]domain.Order, error)
}
