package desk

import (
	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/listview"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// leaderboardSummary computa las summary cards sobre el set FILTRADO, no
// paginado: las cards reflejan la vista activa completa. Con el set vacío
// todo degrada a 0, nunca NaN.
func leaderboardSummary(agents []domain.Agent) ports.LeaderboardSummary {
	return ports.LeaderboardSummary{
		TotalAgents:   len(agents),
		TotalBalance:  listview.Sum(agents, func(a domain.Agent) float64 { return a.Balance }),
		AvgReputation: listview.Avg(agents, func(a domain.Agent) float64 { return a.Reputation }),
		TopProfit:     listview.Max(agents, domain.Agent.PnL),
	}
}

// feeTotals agrupa el ledger por tipo de fee.
func feeTotals(fees []domain.PlatformFee) map[domain.FeeType]float64 {
	totals := make(map[domain.FeeType]float64)
	for _, f := range fees {
		totals[f.Type] += f.Amount
	}
	return totals
}
