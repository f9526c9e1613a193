package domain

import "time"

// FeeType clasifica los fees que cobra la plataforma.
type FeeType string

const (
	FeeTrading        FeeType = "trading"
	FeeMarketCreation FeeType = "market_creation"
	FeeSettlement     FeeType = "settlement"
)

// PlatformFee es una entrada del ledger de fees de la plataforma.
type PlatformFee struct {
	ID          string
	Type        FeeType
	Amount      float64
	AgentID     string
	MarketID    string
	Description string
	CreatedAt   time.Time
}

// PlatformStats son los agregados globales que sirve el panel de admin.
type PlatformStats struct {
	TotalAgents     int
	TotalTraders    int
	TotalModerators int
	TotalMarkets    int
	OpenMarkets     int
	ResolvedMarkets int
	TotalTrades     int
	TotalVolume     float64
	TotalFees       float64
}

// ModeratorReward es la recompensa pagada a un moderador por resolver
// un mercado: share del fee de settlement + fee sobre profits de ganadores.
type ModeratorReward struct {
	ID             string
	MarketID       string
	MarketQuestion string
	PlatformShare  float64
	WinnerFee      float64
	TotalReward    float64
	WinnerProfits  float64
	CreatedAt      time.Time
}

// ResolvedMarket es un mercado ya resuelto por un moderador, con su
// recompensa asociada si el settlement la generó.
type ResolvedMarket struct {
	ID         string
	Question   string
	Outcome    Outcome
	Volume     float64
	ResolvedAt time.Time
	Reward     *ModeratorReward
}

// ModeratorStats son los agregados del dashboard de un moderador.
type ModeratorStats struct {
	TotalEarnings      float64
	MarketsResolved    int
	PendingMarkets     int
	AverageReward      float64
	PlatformShareTotal float64
	WinnerFeeTotal     float64
}
