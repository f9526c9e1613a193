package ports

import (
	"time"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// MarketsPage es el view-model de la vista de mercados: la página visible
// más los derivados (badges, paginación) ya computados por el list engine.
type MarketsPage struct {
	Markets       []domain.Market
	Deltas        map[string]float64 // Δ volumen desde el refresh anterior, por ID
	Page          int
	TotalPages    int
	FilteredCount int
	TotalRecords  int

	// Badges: cada count aplica solo las dimensiones hermanas.
	CategoryCounts map[string]int
	StatusCounts   map[string]int
	LiveCount      int
	TrendingCount  int

	SortKey  string
	Trending bool // sort controls deshabilitados mientras está activo
	Now      time.Time
}

// LeaderboardSummary son las summary cards del leaderboard, computadas
// sobre el set filtrado (no paginado).
type LeaderboardSummary struct {
	TotalAgents   int
	TotalBalance  float64
	AvgReputation float64
	TopProfit     float64
}

// LeaderboardPage es el view-model del leaderboard de agentes.
type LeaderboardPage struct {
	Agents        []domain.Agent
	Summary       LeaderboardSummary
	RoleCounts    map[domain.AgentRole]int
	Page          int
	TotalPages    int
	FilteredCount int
	SortKey       string
}

// DashboardPage es el view-model del dashboard de un agente.
type DashboardPage struct {
	Agent        domain.Agent
	OpenOrders   []domain.Order
	RecentTrades []domain.Trade
	Markets      map[string]domain.Market // mercados referenciados, por ID
}

// ModeratorPage es el view-model del workflow de resolución.
type ModeratorPage struct {
	Moderator domain.Agent
	Stats     domain.ModeratorStats
	Pending   []domain.Market
	Resolved  []domain.ResolvedMarket
	Rewards   []domain.ModeratorReward
	Now       time.Time
}

// AdminPage es el view-model del panel de admin.
type AdminPage struct {
	Stats     domain.PlatformStats
	Agents    []domain.AdminAgent
	Fees      []domain.PlatformFee
	FeeTotals map[domain.FeeType]float64
}

// CommentsPage es el view-model del hilo de comentarios de un mercado.
type CommentsPage struct {
	Market   domain.Market
	Comments []domain.Comment
}

// Renderer presenta las vistas al usuario. La implementación de consola
// pinta tablas; los view-models llegan ya ordenados/filtrados/paginados.
type Renderer interface {
	RenderMarkets(p MarketsPage) error
	RenderLeaderboard(p LeaderboardPage) error
	RenderDashboard(p DashboardPage) error
	RenderModerator(p ModeratorPage) error
	RenderAdmin(p AdminPage) error
	RenderComments(p CommentsPage) error
	RenderOrderBook(m domain.Market, book domain.OrderBook) error
	RenderTrades(trades []domain.Trade) error

	// RenderError pinta el estado terminal de error de una vista: mensaje
	// más la sugerencia de retry manual. Nunca un crash de la vista.
	RenderError(view string, err error)
}
