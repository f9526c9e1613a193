package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Renderer pintando tablas en la terminal.
type Console struct {
	out     io.Writer
	compact bool
}

// NewConsole crea un renderer que escribe a stdout.
func NewConsole(compact bool) *Console {
	return &Console{out: os.Stdout, compact: compact}
}

// NewConsoleWriter crea un renderer para tests.
func NewConsoleWriter(w io.Writer, compact bool) *Console {
	return &Console{out: w, compact: compact}
}

// RenderMarkets pinta la vista de mercados: badges de filtros, tabla de la
// página visible y la línea de paginación.
func (c *Console) RenderMarkets(p ports.MarketsPage) error {
	c.printMarketBadges(p)

	if len(p.Markets) == 0 {
		fmt.Fprintln(c.out, "\n  No hay mercados que cumplan los filtros activos.")
		c.printPageLine(p.Page, p.TotalPages, p.FilteredCount)
		return nil
	}

	if c.compact {
		c.printMarketsCompact(p)
		c.printPageLine(p.Page, p.TotalPages, p.FilteredCount)
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Market", "Cat", "Status", "YES", "Prob", "Volume", "ΔVol", "Deadline")

	for i, m := range p.Markets {
		table.Append(
			fmt.Sprintf("%d", i+1),
			domain.TruncateQuestion(m.Question, m.ID, 40),
			m.Category,
			statusLabel(m, p.Now),
			fmt.Sprintf("%.2f", m.YesPrice),
			fmt.Sprintf("%.0f%%", m.ImpliedProbability()),
			fmt.Sprintf("$%.0f", m.Volume),
			deltaLabel(p.Deltas[m.ID]),
			deadlineLabel(m, p.Now),
		)
	}
	table.Render()

	c.printPageLine(p.Page, p.TotalPages, p.FilteredCount)
	return nil
}

// printMarketBadges pinta los contadores de filtros. Cada badge cuenta con
// las dimensiones hermanas aplicadas, no con su propia dimensión.
func (c *Console) printMarketBadges(p ports.MarketsPage) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %d/%d mkts | live:%d trending:%d",
		p.Now.Format("15:04:05"), p.FilteredCount, p.TotalRecords,
		p.LiveCount, p.TrendingCount)

	cats := make([]string, 0, len(p.CategoryCounts))
	for cat := range p.CategoryCounts {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	for _, cat := range cats {
		fmt.Fprintf(&sb, " %s:%d", cat, p.CategoryCounts[cat])
	}

	if p.Trending {
		sb.WriteString(" | TRENDING (sort off)")
	} else if p.SortKey != "" {
		fmt.Fprintf(&sb, " | sort:%s", p.SortKey)
	}

	fmt.Fprintln(c.out, sb.String())
}

func (c *Console) printMarketsCompact(p ports.MarketsPage) {
	for _, m := range p.Markets {
		fmt.Fprintf(c.out, "  %-42s %s %.2f $%.0f%s\n",
			domain.TruncateQuestion(m.Question, m.ID, 40),
			m.Category, m.YesPrice, m.Volume, deltaSuffix(p.Deltas[m.ID]))
	}
}

// RenderLeaderboard pinta las summary cards y la tabla de agentes.
func (c *Console) RenderLeaderboard(p ports.LeaderboardPage) error {
	s := p.Summary
	fmt.Fprintf(c.out, "agents:%d | balance total:$%.2f | reputación media:%.1f | top P&L:%+.2f",
		s.TotalAgents, s.TotalBalance, s.AvgReputation, s.TopProfit)
	if n := p.RoleCounts[domain.RoleTrader]; n > 0 {
		fmt.Fprintf(c.out, " | traders:%d", n)
	}
	if n := p.RoleCounts[domain.RoleModerator]; n > 0 {
		fmt.Fprintf(c.out, " | mods:%d", n)
	}
	if p.SortKey != "" {
		fmt.Fprintf(c.out, " | sort:%s", p.SortKey)
	}
	fmt.Fprintln(c.out)

	if len(p.Agents) == 0 {
		fmt.Fprintln(c.out, "\n  No hay agentes que cumplan los filtros activos.")
		c.printPageLine(p.Page, p.TotalPages, p.FilteredCount)
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("#", "Agent", "Role", "Balance", "Locked", "P&L", "Rep")

	for i, a := range p.Agents {
		table.Append(
			fmt.Sprintf("%d", i+1),
			truncate(a.Name, 24),
			string(a.Role),
			fmt.Sprintf("$%.2f", a.Balance),
			fmt.Sprintf("$%.2f", a.LockedBalance),
			fmt.Sprintf("%+.2f", a.PnL()),
			fmt.Sprintf("%.1f", a.Reputation),
		)
	}
	table.Render()

	c.printPageLine(p.Page, p.TotalPages, p.FilteredCount)
	return nil
}

// RenderDashboard pinta el estado de un agente: balances, órdenes abiertas
// y trades recientes.
func (c *Console) RenderDashboard(p ports.DashboardPage) error {
	a := p.Agent
	fmt.Fprintf(c.out, "\n=== %s [%s] ===\n", a.Name, a.Role)
	fmt.Fprintf(c.out, "  Balance:    $%.2f (disponible $%.2f, locked $%.2f)\n",
		a.Balance, a.AvailableBalance(), a.LockedBalance)
	fmt.Fprintf(c.out, "  P&L:        %+.2f\n", a.PnL())
	fmt.Fprintf(c.out, "  Reputación: %.1f\n", a.Reputation)

	fmt.Fprintf(c.out, "\n  Órdenes abiertas: %d\n", len(p.OpenOrders))
	if len(p.OpenOrders) > 0 {
		table := tablewriter.NewWriter(c.out)
		table.Header("Market", "Side", "Price", "Size", "Filled", "Status")
		for _, o := range p.OpenOrders {
			table.Append(
				marketRef(p.Markets, o.MarketID),
				string(o.Side),
				fmt.Sprintf("%.2f", o.Price),
				fmt.Sprintf("%.1f", o.Size),
				fmt.Sprintf("%.1f", o.Filled),
				string(o.Status),
			)
		}
		table.Render()
	}

	fmt.Fprintf(c.out, "\n  Trades recientes: %d\n", len(p.RecentTrades))
	if len(p.RecentTrades) > 0 {
		table := tablewriter.NewWriter(c.out)
		table.Header("Market", "Side", "Price", "Size", "Fee", "When")
		for _, t := range p.RecentTrades {
			table.Append(
				marketRef(p.Markets, t.MarketID),
				string(t.Side),
				fmt.Sprintf("%.2f", t.Price),
				fmt.Sprintf("%.1f", t.Size),
				fmt.Sprintf("$%.4f", t.TotalFee),
				t.CreatedAt.Format("01-02 15:04"),
			)
		}
		table.Render()
	}

	return nil
}

// RenderModerator pinta el workflow de resolución: stats, mercados
// pendientes y recompensas cobradas.
func (c *Console) RenderModerator(p ports.ModeratorPage) error {
	s := p.Stats
	fmt.Fprintf(c.out, "\n=== Moderador %s ===\n", p.Moderator.Name)
	fmt.Fprintf(c.out, "  Resueltos: %d | Pendientes: %d | Ganado: $%.2f (media $%.2f)\n",
		s.MarketsResolved, s.PendingMarkets, s.TotalEarnings, s.AverageReward)

	fmt.Fprintf(c.out, "\n  Mercados pendientes de resolución: %d\n", len(p.Pending))
	if len(p.Pending) > 0 {
		table := tablewriter.NewWriter(c.out)
		table.Header("ID", "Market", "Cat", "Volume", "Vencido hace")
		for _, m := range p.Pending {
			table.Append(
				shortID(m.ID),
				domain.TruncateQuestion(m.Question, m.ID, 40),
				m.Category,
				fmt.Sprintf("$%.0f", m.Volume),
				overdueLabel(m, p.Now),
			)
		}
		table.Render()
	}

	if len(p.Resolved) > 0 {
		fmt.Fprintf(c.out, "\n  Mercados resueltos: %d\n", len(p.Resolved))
		table := tablewriter.NewWriter(c.out)
		table.Header("Market", "Outcome", "Volume", "Reward", "When")
		for _, r := range p.Resolved {
			reward := "-"
			if r.Reward != nil {
				reward = fmt.Sprintf("$%.4f", r.Reward.TotalReward)
			}
			table.Append(
				truncate(r.Question, 36),
				string(r.Outcome),
				fmt.Sprintf("$%.0f", r.Volume),
				reward,
				r.ResolvedAt.Format("01-02 15:04"),
			)
		}
		table.Render()
	}

	if len(p.Rewards) > 0 {
		fmt.Fprintf(c.out, "\n  Recompensas cobradas: %d\n", len(p.Rewards))
		table := tablewriter.NewWriter(c.out)
		table.Header("Market", "Share", "Winner fee", "Total", "When")
		for _, r := range p.Rewards {
			table.Append(
				truncate(r.MarketQuestion, 36),
				fmt.Sprintf("$%.4f", r.PlatformShare),
				fmt.Sprintf("$%.4f", r.WinnerFee),
				fmt.Sprintf("$%.4f", r.TotalReward),
				r.CreatedAt.Format("01-02 15:04"),
			)
		}
		table.Render()
	}

	return nil
}

// RenderAdmin pinta el panel de plataforma: overview y ledger de fees.
func (c *Console) RenderAdmin(p ports.AdminPage) error {
	s := p.Stats
	fmt.Fprintf(c.out, "\n=== PLATAFORMA ===\n")
	fmt.Fprintf(c.out, "  Agentes:  %d (%d traders, %d mods)\n",
		s.TotalAgents, s.TotalTraders, s.TotalModerators)
	fmt.Fprintf(c.out, "  Mercados: %d (%d abiertos, %d resueltos)\n",
		s.TotalMarkets, s.OpenMarkets, s.ResolvedMarkets)
	fmt.Fprintf(c.out, "  Trades:   %d | Volumen: $%.2f | Revenue: $%.2f\n",
		s.TotalTrades, s.TotalVolume, s.TotalFees)

	if len(p.FeeTotals) > 0 {
		fmt.Fprintf(c.out, "\n  Fees por tipo:\n")
		types := make([]string, 0, len(p.FeeTotals))
		for ft := range p.FeeTotals {
			types = append(types, string(ft))
		}
		sort.Strings(types)
		for _, ft := range types {
			fmt.Fprintf(c.out, "    %-16s $%.4f\n", ft, p.FeeTotals[domain.FeeType(ft)])
		}
	}

	if len(p.Agents) > 0 {
		fmt.Fprintf(c.out, "\n  Agentes: %d\n", len(p.Agents))
		table := tablewriter.NewWriter(c.out)
		table.Header("Agent", "Role", "Balance", "P&L", "Rep", "Wallet")
		for _, a := range p.Agents {
			table.Append(
				truncate(a.Name, 24),
				string(a.Role),
				fmt.Sprintf("$%.2f", a.Balance),
				fmt.Sprintf("%+.2f", a.PnL()),
				fmt.Sprintf("%.1f", a.Reputation),
				shortID(a.WalletAddress),
			)
		}
		table.Render()
	}

	if len(p.Fees) > 0 {
		fmt.Fprintf(c.out, "\n  Últimos fees: %d\n", len(p.Fees))
		table := tablewriter.NewWriter(c.out)
		table.Header("Type", "Amount", "Market", "When")
		for _, f := range p.Fees {
			table.Append(
				string(f.Type),
				fmt.Sprintf("$%.4f", f.Amount),
				shortID(f.MarketID),
				f.CreatedAt.Format("01-02 15:04"),
			)
		}
		table.Render()
	}

	return nil
}

// RenderComments pinta el hilo de un mercado: raíces primero, replies
// indentadas bajo su parent.
func (c *Console) RenderComments(p ports.CommentsPage) error {
	fmt.Fprintf(c.out, "\n=== %s ===\n", domain.TruncateQuestion(p.Market.Question, p.Market.ID, 60))
	if len(p.Comments) == 0 {
		fmt.Fprintln(c.out, "  Sin comentarios todavía.")
		return nil
	}

	replies := make(map[string][]domain.Comment)
	for _, cm := range p.Comments {
		if cm.ParentID != "" {
			replies[cm.ParentID] = append(replies[cm.ParentID], cm)
		}
	}

	for _, cm := range p.Comments {
		if cm.ParentID != "" {
			continue
		}
		c.printComment(cm, 0)
		for _, reply := range replies[cm.ID] {
			c.printComment(reply, 1)
		}
	}
	return nil
}

func (c *Console) printComment(cm domain.Comment, depth int) {
	indent := strings.Repeat("    ", depth+1)
	fmt.Fprintf(c.out, "%s[%+d] %s — %s (%s)\n",
		indent, cm.Score(), cm.AgentName,
		truncate(cm.Content, 70), cm.CreatedAt.Format("01-02 15:04"))
}

// RenderOrderBook pinta el libro de un mercado con bids y asks enfrentados.
func (c *Console) RenderOrderBook(m domain.Market, book domain.OrderBook) error {
	fmt.Fprintf(c.out, "\n=== BOOK: %s ===\n", domain.TruncateQuestion(m.Question, m.ID, 50))
	fmt.Fprintf(c.out, "  best bid %.2f | best ask %.2f | spread %.2f | mid %.2f\n",
		book.BestBid(), book.BestAsk(), book.Spread(), book.MidPrice())
	fmt.Fprintf(c.out, "  depth bids $%.0f | asks $%.0f\n",
		domain.Depth(book.Bids), domain.Depth(book.Asks))

	table := tablewriter.NewWriter(c.out)
	table.Header("Bid size", "Bid", "Ask", "Ask size")

	rows := len(book.Bids)
	if len(book.Asks) > rows {
		rows = len(book.Asks)
	}
	for i := 0; i < rows; i++ {
		bidSize, bid, ask, askSize := "", "", "", ""
		if i < len(book.Bids) {
			bidSize = fmt.Sprintf("%.1f", book.Bids[i].Size)
			bid = fmt.Sprintf("%.2f", book.Bids[i].Price)
		}
		if i < len(book.Asks) {
			ask = fmt.Sprintf("%.2f", book.Asks[i].Price)
			askSize = fmt.Sprintf("%.1f", book.Asks[i].Size)
		}
		table.Append(bidSize, bid, ask, askSize)
	}
	table.Render()
	return nil
}

// RenderTrades pinta una lista plana de trades.
func (c *Console) RenderTrades(trades []domain.Trade) error {
	if len(trades) == 0 {
		fmt.Fprintln(c.out, "  Sin trades.")
		return nil
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("Market", "Side", "Price", "Size", "Notional", "When")
	for _, t := range trades {
		table.Append(
			shortID(t.MarketID),
			string(t.Side),
			fmt.Sprintf("%.2f", t.Price),
			fmt.Sprintf("%.1f", t.Size),
			fmt.Sprintf("$%.2f", t.Notional()),
			t.CreatedAt.Format("01-02 15:04"),
		)
	}
	table.Render()
	return nil
}

// RenderError pinta el estado de error de una vista. La vista nunca crashea:
// mensaje más la sugerencia de reintentar a mano.
func (c *Console) RenderError(view string, err error) {
	fmt.Fprintf(c.out, "\n  [%s] error: %v\n", view, err)
	fmt.Fprintln(c.out, "  Los datos visibles pueden estar desactualizados. Reintenta con refresh manual.")
}

func (c *Console) printPageLine(page, totalPages, filtered int) {
	fmt.Fprintf(c.out, "  página %d/%d — %d resultados\n", page, totalPages, filtered)
}

// --- helpers ---

func statusLabel(m domain.Market, now time.Time) string {
	if m.IsResolved() {
		return "resolved:" + string(m.Outcome)
	}
	if m.IsLive(now) {
		return "live"
	}
	return string(m.Status)
}

func deadlineLabel(m domain.Market, now time.Time) string {
	if m.Deadline.IsZero() {
		return "-"
	}
	h := m.HoursToDeadline(now)
	if h == 0 {
		return m.Deadline.Format("01-02") + " (vencido)"
	}
	if h < 48 {
		return fmt.Sprintf("%s (!%.0fh)", m.Deadline.Format("01-02"), h)
	}
	return m.Deadline.Format("2006-01-02")
}

func overdueLabel(m domain.Market, now time.Time) string {
	if m.Deadline.IsZero() {
		return "-"
	}
	d := now.Sub(m.Deadline)
	if d < 0 {
		return "-"
	}
	if d < 48*time.Hour {
		return fmt.Sprintf("%.0fh", d.Hours())
	}
	return fmt.Sprintf("%.0fd", d.Hours()/24)
}

func deltaLabel(delta float64) string {
	if delta == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.0f", delta)
}

func deltaSuffix(delta float64) string {
	if delta == 0 {
		return ""
	}
	return fmt.Sprintf(" (%+.0f)", delta)
}

func marketRef(markets map[string]domain.Market, id string) string {
	if m, ok := markets[id]; ok && m.Question != "" {
		return truncate(m.Question, 30)
	}
	return shortID(id)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
