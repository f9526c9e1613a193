package desk

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// ShowDashboard pinta el estado de un agente: balances, órdenes abiertas y
// trades recientes con los mercados referenciados resueltos por ID.
func (d *Desk) ShowDashboard(ctx context.Context, agentID string) error {
	agent, err := d.deps.Agents.GetAgent(ctx, agentID)
	if err != nil {
		err = fmt.Errorf("desk.ShowDashboard: %w", err)
		d.renderer.RenderError("dashboard", err)
		return err
	}

	orders, err := d.deps.Orders.ListOpenOrders(ctx, agentID)
	if err != nil {
		d.renderer.RenderError("dashboard", err)
		orders = nil
	}

	trades, err := d.deps.Trades.ListTrades(ctx, ports.TradeQuery{AgentID: agentID, Limit: 20})
	if err != nil {
		d.renderer.RenderError("dashboard", err)
		trades = nil
	}

	return d.renderer.RenderDashboard(ports.DashboardPage{
		Agent:        agent,
		OpenOrders:   orders,
		RecentTrades: trades,
		Markets:      d.resolveMarkets(ctx, orders, trades),
	})
}

// resolveMarkets hace fetch de los mercados referenciados por órdenes y
// trades, una vez por ID. Un mercado que falla se omite; la vista usa el
// ID corto como fallback.
func (d *Desk) resolveMarkets(ctx context.Context, orders []domain.Order, trades []domain.Trade) map[string]domain.Market {
	ids := make(map[string]bool)
	for _, o := range orders {
		ids[o.MarketID] = true
	}
	for _, t := range trades {
		ids[t.MarketID] = true
	}

	markets := make(map[string]domain.Market, len(ids))
	for id := range ids {
		m, err := d.deps.Markets.GetMarket(ctx, id)
		if err != nil {
			continue
		}
		markets[id] = m
	}
	return markets
}

// ShowModerator pinta el workflow de resolución de un moderador.
func (d *Desk) ShowModerator(ctx context.Context, moderatorID string) error {
	moderator, err := d.deps.Agents.GetAgent(ctx, moderatorID)
	if err != nil {
		err = fmt.Errorf("desk.ShowModerator: %w", err)
		d.renderer.RenderError("moderator", err)
		return err
	}

	stats, err := d.deps.Moderator.ModeratorStats(ctx, moderatorID)
	if err != nil {
		err = fmt.Errorf("desk.ShowModerator: %w", err)
		d.renderer.RenderError("moderator", err)
		return err
	}

	pending, err := d.deps.Moderator.PendingMarkets(ctx)
	if err != nil {
		d.renderer.RenderError("moderator", err)
		pending = nil
	}

	rewards, err := d.deps.Moderator.ModeratorRewards(ctx, moderatorID)
	if err != nil {
		d.renderer.RenderError("moderator", err)
		rewards = nil
	}

	resolved, err := d.deps.Moderator.ResolvedMarkets(ctx, moderatorID)
	if err != nil {
		d.renderer.RenderError("moderator", err)
		resolved = nil
	}

	return d.renderer.RenderModerator(ports.ModeratorPage{
		Moderator: moderator,
		Stats:     stats,
		Pending:   pending,
		Resolved:  resolved,
		Rewards:   rewards,
		Now:       d.nowFn(),
	})
}

// ResolveMarket resuelve un mercado y repinta el workflow del moderador.
func (d *Desk) ResolveMarket(ctx context.Context, marketID, moderatorID string, outcome domain.Outcome, evidence string) error {
	if _, err := d.deps.Moderator.ResolveMarket(ctx, marketID, moderatorID, outcome, evidence); err != nil {
		err = fmt.Errorf("desk.ResolveMarket: %w", err)
		d.renderer.RenderError("moderator", err)
		return err
	}
	return d.ShowModerator(ctx, moderatorID)
}

// ShowAdmin pinta el panel de plataforma.
func (d *Desk) ShowAdmin(ctx context.Context) error {
	stats, err := d.deps.Admin.PlatformStats(ctx)
	if err != nil {
		err = fmt.Errorf("desk.ShowAdmin: %w", err)
		d.renderer.RenderError("admin", err)
		return err
	}

	fees, err := d.deps.Admin.ListFees(ctx, "", 50)
	if err != nil {
		d.renderer.RenderError("admin", err)
		fees = nil
	}

	agents, err := d.deps.Admin.ListAdminAgents(ctx, "", 50)
	if err != nil {
		d.renderer.RenderError("admin", err)
		agents = nil
	}

	return d.renderer.RenderAdmin(ports.AdminPage{
		Stats:     stats,
		Agents:    agents,
		Fees:      fees,
		FeeTotals: feeTotals(fees),
	})
}

// ShowComments pinta el hilo de comentarios de un mercado.
func (d *Desk) ShowComments(ctx context.Context, marketID string) error {
	market, err := d.deps.Markets.GetMarket(ctx, marketID)
	if err != nil {
		err = fmt.Errorf("desk.ShowComments: %w", err)
		d.renderer.RenderError("comments", err)
		return err
	}

	comments, err := d.deps.Comments.ListComments(ctx, marketID)
	if err != nil {
		err = fmt.Errorf("desk.ShowComments: %w", err)
		d.renderer.RenderError("comments", err)
		return err
	}

	return d.renderer.RenderComments(ports.CommentsPage{Market: market, Comments: comments})
}

// ShowOrderBook pinta el libro de un mercado.
func (d *Desk) ShowOrderBook(ctx context.Context, marketID string) error {
	market, err := d.deps.Markets.GetMarket(ctx, marketID)
	if err != nil {
		err = fmt.Errorf("desk.ShowOrderBook: %w", err)
		d.renderer.RenderError("book", err)
		return err
	}

	book, err := d.deps.Markets.GetOrderBook(ctx, marketID)
	if err != nil {
		err = fmt.Errorf("desk.ShowOrderBook: %w", err)
		d.renderer.RenderError("book", err)
		return err
	}

	return d.renderer.RenderOrderBook(market, book)
}

// ShowTrades pinta los trades que cumplen la query.
func (d *Desk) ShowTrades(ctx context.Context, q ports.TradeQuery) error {
	trades, err := d.deps.Trades.ListTrades(ctx, q)
	if err != nil {
		err = fmt.Errorf("desk.ShowTrades: %w", err)
		d.renderer.RenderError("trades", err)
		return err
	}
	return d.renderer.RenderTrades(trades)
}

// PlaceOrder coloca una orden y pinta los trades que cruzó. El matching y
// el lock de balance son server-side; un rechazo llega como error con el
// detail del servidor.
func (d *Desk) PlaceOrder(ctx context.Context, req ports.OrderRequest) error {
	_, trades, err := d.deps.Orders.PlaceOrder(ctx, req)
	if err != nil {
		err = fmt.Errorf("desk.PlaceOrder: %w", err)
		d.renderer.RenderError("trade", err)
		return err
	}
	return d.renderer.RenderTrades(trades)
}

// CancelOrder cancela una orden abierta del agente autenticado.
func (d *Desk) CancelOrder(ctx context.Context, orderID string) error {
	if err := d.deps.Orders.CancelOrder(ctx, orderID); err != nil {
		err = fmt.Errorf("desk.CancelOrder: %w", err)
		d.renderer.RenderError("trade", err)
		return err
	}
	return nil
}
