package desk

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/listview"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// LeaderboardOptions son los controles del leaderboard de agentes.
type LeaderboardOptions struct {
	Role    string
	Search  string
	SortKey string // balance | reputation | profit | name
	Dir     listview.Direction
	Page    int
	PerPage int
}

var agentRankings = map[string]listview.Ranking[domain.Agent]{
	"balance": {
		Key: "balance", Default: listview.Desc,
		Compare: listview.ByFloat(func(a domain.Agent) float64 { return a.Balance }),
	},
	"reputation": {
		Key: "reputation", Default: listview.Desc,
		Compare: listview.ByFloat(func(a domain.Agent) float64 { return a.Reputation }),
	},
	// profit ordena igual que balance (offset constante), pero es una key
	// propia porque la UI la expone como métrica distinta.
	"profit": {
		Key: "profit", Default: listview.Desc,
		Compare: listview.ByFloat(domain.Agent.PnL),
	},
	"name": {
		Key: "name", Default: listview.Asc,
		Compare: listview.ByString(func(a domain.Agent) string { return a.Name }),
	},
}

// ShowLeaderboard hace un ciclo de la vista de agentes: fetch, refinado
// listview, summary cards sobre el set filtrado y render.
func (d *Desk) ShowLeaderboard(ctx context.Context, opts LeaderboardOptions) error {
	agents, err := d.deps.Agents.ListAgents(ctx, ports.AgentQuery{})
	if err != nil {
		err = fmt.Errorf("desk.ShowLeaderboard: %w", err)
		d.renderer.RenderError("leaderboard", err)
		return err
	}

	st := d.buildLeaderboardState(agents, opts)
	view := st.Snapshot()

	return d.renderer.RenderLeaderboard(ports.LeaderboardPage{
		Agents:        view.Items,
		Summary:       leaderboardSummary(view.Filtered),
		RoleCounts:    listview.CountBy(view.Filtered, func(a domain.Agent) domain.AgentRole { return a.Role }),
		Page:          view.Page,
		TotalPages:    view.TotalPages,
		FilteredCount: view.FilteredCount,
		SortKey:       opts.SortKey,
	})
}

func (d *Desk) buildLeaderboardState(agents []domain.Agent, opts LeaderboardOptions) *listview.State[domain.Agent] {
	perPage := opts.PerPage
	if !listview.ValidPageSize(perPage) {
		perPage = d.cfg.PerPage
	}

	st := listview.NewState[domain.Agent](perPage)
	st.SetRecords(agents)

	st.SetFilter("search", listview.Search(func(a domain.Agent) []string {
		return []string{a.Name}
	}, opts.Search))
	st.SetFilter("role", listview.Equals(func(a domain.Agent) string {
		return string(a.Role)
	}, opts.Role))

	if r, ok := agentRankings[opts.SortKey]; ok {
		st.SetSort(r)
		if opts.Dir != "" {
			st.SetDirection(opts.Dir)
		}
	}

	if opts.Page > 1 {
		st.SetPage(opts.Page)
	}
	return st
}
