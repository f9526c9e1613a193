package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// ModeratorService cubre el workflow de resolución de mercados.
type ModeratorService interface {
	// ModeratorStats devuelve los agregados de earnings del moderador.
	ModeratorStats(ctx context.Context, moderatorID string) (domain.ModeratorStats, error)

	// PendingMarkets devuelve los mercados con deadline vencido pendientes
	// de resolución.
	PendingMarkets(ctx context.Context) ([]domain.Market, error)

	// ModeratorRewards devuelve las recompensas cobradas por el moderador.
	ModeratorRewards(ctx context.Context, moderatorID string) ([]domain.ModeratorReward, error)

	// ResolvedMarkets devuelve los mercados ya resueltos por el moderador,
	// con su recompensa asociada si existe.
	ResolvedMarkets(ctx context.Context, moderatorID string) ([]domain.ResolvedMarket, error)

	// ResolveMarket resuelve un mercado con el outcome dado. Solo agentes
	// moderadores; evidence es opcional.
	ResolveMarket(ctx context.Context, marketID, moderatorID string, outcome domain.Outcome, evidence string) (domain.Market, error)
}
