package desk_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/application/desk"
	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketFixture(id, question, category string, status domain.MarketStatus, volume float64) domain.Market {
	return domain.Market{
		ID:       id,
		Question: question,
		Category: category,
		Status:   status,
		Volume:   volume,
		Deadline: time.Now().Add(24 * time.Hour),
	}
}

func newTestDesk(markets *fakeMarkets, store *fakeStore, renderer *captureRenderer) *desk.Desk {
	deps := desk.Deps{
		Markets:  markets,
		Renderer: renderer,
	}
	if store != nil {
		deps.Store = store
	}
	return desk.New(desk.Config{PerPage: 10}, deps)
}

func TestShowMarkets_RendersPageWithBadges(t *testing.T) {
	provider := &fakeMarkets{markets: []domain.Market{
		marketFixture("m-1", "¿Sube BTC?", "crypto", domain.StatusOpen, 1000),
		marketFixture("m-2", "¿Baja ETH?", "crypto", domain.StatusOpen, 500),
		marketFixture("m-3", "¿Elecciones?", "politics", domain.StatusResolved, 2000),
	}}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	err := d.ShowMarkets(context.Background(), desk.MarketsOptions{Category: "crypto"})
	require.NoError(t, err)

	page, ok := renderer.lastMarkets()
	require.True(t, ok)

	assert.Len(t, page.Markets, 2)
	assert.Equal(t, 2, page.FilteredCount)
	assert.Equal(t, 3, page.TotalRecords)

	// El badge de cada categoría cuenta con las dimensiones hermanas, no con
	// el filtro de categoría activo: politics sigue mostrando su count.
	assert.Equal(t, 2, page.CategoryCounts["crypto"])
	assert.Equal(t, 1, page.CategoryCounts["politics"])

	// El badge de status sí aplica el filtro de categoría activo.
	assert.Equal(t, 2, page.StatusCounts["open"])
	assert.Equal(t, 0, page.StatusCounts["resolved"])
}

func TestShowMarkets_TrendingIsGlobalTopTen(t *testing.T) {
	var markets []domain.Market
	for i := 0; i < 15; i++ {
		markets = append(markets, marketFixture(
			fmt.Sprintf("m-%02d", i), fmt.Sprintf("q%d", i), "crypto",
			domain.StatusOpen, float64(i*100)))
	}
	provider := &fakeMarkets{markets: markets}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	err := d.ShowMarkets(context.Background(), desk.MarketsOptions{Trending: true, SortKey: "ending"})
	require.NoError(t, err)

	page, ok := renderer.lastMarkets()
	require.True(t, ok)

	// Corte top-10 por volumen, sort deshabilitado mientras está activo
	assert.Equal(t, 10, page.FilteredCount)
	assert.True(t, page.Trending)
	assert.Equal(t, 10, page.TrendingCount)
	assert.InDelta(t, 1400.0, page.Markets[0].Volume, 0.001)
}

func TestShowMarkets_DeltasAgainstPreviousRefresh(t *testing.T) {
	provider := &fakeMarkets{markets: []domain.Market{
		marketFixture("m-1", "q", "crypto", domain.StatusOpen, 100),
	}}
	renderer := &captureRenderer{}
	store := &fakeStore{}
	d := newTestDesk(provider, store, renderer)

	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{}))

	// Segundo refresh con más volumen
	provider.mu.Lock()
	provider.markets = []domain.Market{marketFixture("m-1", "q", "crypto", domain.StatusOpen, 350)}
	provider.mu.Unlock()

	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{}))

	page, ok := renderer.lastMarkets()
	require.True(t, ok)
	assert.InDelta(t, 250.0, page.Deltas["m-1"], 0.001)
}

func TestShowMarkets_FetchErrorRendersErrorState(t *testing.T) {
	provider := &fakeMarkets{err: fmt.Errorf("connection refused")}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	err := d.ShowMarkets(context.Background(), desk.MarketsOptions{})
	require.Error(t, err)

	require.Len(t, renderer.errors, 1)
	assert.Contains(t, renderer.errors[0], "markets")
	assert.Contains(t, renderer.errors[0], "connection refused")

	// La vista de error no pinta datos
	_, ok := renderer.lastMarkets()
	assert.False(t, ok)
}

func TestShowMarkets_PageClampOnShrink(t *testing.T) {
	var markets []domain.Market
	for i := 0; i < 30; i++ {
		markets = append(markets, marketFixture(
			fmt.Sprintf("m-%02d", i), fmt.Sprintf("q%d", i), "crypto",
			domain.StatusOpen, float64(i)))
	}
	provider := &fakeMarkets{markets: markets}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	// Página 3 de 3 con 30 registros a 10 por página
	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{Page: 3}))
	page, _ := renderer.lastMarkets()
	assert.Equal(t, 3, page.Page)

	// El set encoge a 5: la página pedida se acota a la última válida
	provider.mu.Lock()
	provider.markets = markets[:5]
	provider.mu.Unlock()

	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{Page: 3}))
	page, _ = renderer.lastMarkets()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Markets, 5)
}

func TestShowMarkets_NonWhitelistedPerPageFallsBack(t *testing.T) {
	var markets []domain.Market
	for i := 0; i < 12; i++ {
		markets = append(markets, marketFixture(
			fmt.Sprintf("m-%02d", i), fmt.Sprintf("q%d", i), "crypto",
			domain.StatusOpen, float64(i)))
	}
	provider := &fakeMarkets{markets: markets}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	// 7 no está en el set enumerado de tamaños: cae al default configurado.
	err := d.ShowMarkets(context.Background(), desk.MarketsOptions{PerPage: 7})
	require.NoError(t, err)

	page, ok := renderer.lastMarkets()
	require.True(t, ok)
	assert.Len(t, page.Markets, 10)
	assert.Equal(t, 2, page.TotalPages)
}

func TestShowMarkets_CategoryBadgesFromPlatform(t *testing.T) {
	provider := &fakeMarkets{
		markets: []domain.Market{
			marketFixture("m-1", "q1", "weather", domain.StatusOpen, 100),
		},
		categories: []string{"weather", "crypto"},
	}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{}))

	page, ok := renderer.lastMarkets()
	require.True(t, ok)

	// Los badges salen de las categorías que sirve la plataforma
	assert.Equal(t, 1, page.CategoryCounts["weather"])
	assert.Equal(t, 0, page.CategoryCounts["crypto"])
	assert.NotContains(t, page.CategoryCounts, "politics")
}

func TestShowMarkets_CategoryEndpointFailureFallsBack(t *testing.T) {
	provider := &fakeMarkets{
		markets: []domain.Market{
			marketFixture("m-1", "q1", "politics", domain.StatusOpen, 100),
		},
		catErr: fmt.Errorf("service unavailable"),
	}
	renderer := &captureRenderer{}
	d := newTestDesk(provider, nil, renderer)

	require.NoError(t, d.ShowMarkets(context.Background(), desk.MarketsOptions{}))

	page, ok := renderer.lastMarkets()
	require.True(t, ok)

	// Con el endpoint caído se usa el set estático del dominio
	assert.Equal(t, 1, page.CategoryCounts["politics"])
	assert.Contains(t, page.CategoryCounts, "crypto")
}

func TestShowLeaderboard_SummaryOverFilteredSet(t *testing.T) {
	agents := &fakeAgents{agents: []domain.Agent{
		{ID: "a-1", Name: "ana", Role: domain.RoleTrader, Balance: 1200, Reputation: 80},
		{ID: "a-2", Name: "bot", Role: domain.RoleTrader, Balance: 900, Reputation: 40},
		{ID: "a-3", Name: "mod", Role: domain.RoleModerator, Balance: 1500, Reputation: 95},
	}}
	renderer := &captureRenderer{}
	d := desk.New(desk.Config{PerPage: 10}, desk.Deps{Agents: agents, Renderer: renderer})

	err := d.ShowLeaderboard(context.Background(), desk.LeaderboardOptions{Role: "trader", SortKey: "balance"})
	require.NoError(t, err)

	require.Len(t, renderer.leaderboard, 1)
	p := renderer.leaderboard[0]

	// Summary sobre el set filtrado (solo traders), no el dataset completo
	assert.Equal(t, 2, p.Summary.TotalAgents)
	assert.InDelta(t, 2100.0, p.Summary.TotalBalance, 0.001)
	assert.InDelta(t, 60.0, p.Summary.AvgReputation, 0.001)
	assert.InDelta(t, 200.0, p.Summary.TopProfit, 0.001)

	// Ordenado por balance desc
	require.Len(t, p.Agents, 2)
	assert.Equal(t, "ana", p.Agents[0].Name)
}

func TestShowLeaderboard_NoRoleFilterIncludesModerators(t *testing.T) {
	agents := &fakeAgents{agents: []domain.Agent{
		{ID: "a-1", Name: "ana", Role: domain.RoleTrader, Balance: 1200, Reputation: 80},
		{ID: "a-2", Name: "mod", Role: domain.RoleModerator, Balance: 1500, Reputation: 95},
	}}
	renderer := &captureRenderer{}
	d := desk.New(desk.Config{PerPage: 10}, desk.Deps{Agents: agents, Renderer: renderer})

	// Sin Role la dimensión queda sin fijar: entran todos los roles.
	err := d.ShowLeaderboard(context.Background(), desk.LeaderboardOptions{})
	require.NoError(t, err)

	require.Len(t, renderer.leaderboard, 1)
	p := renderer.leaderboard[0]

	assert.Equal(t, 2, p.Summary.TotalAgents)
	assert.InDelta(t, 2700.0, p.Summary.TotalBalance, 0.001)
	assert.Equal(t, 1, p.RoleCounts[domain.RoleModerator])
	assert.Equal(t, 1, p.RoleCounts[domain.RoleTrader])
}

func TestShowLeaderboard_EmptyFilteredSetNoNaN(t *testing.T) {
	agents := &fakeAgents{agents: []domain.Agent{
		{ID: "a-1", Name: "ana", Role: domain.RoleTrader, Balance: 1200},
	}}
	renderer := &captureRenderer{}
	d := desk.New(desk.Config{PerPage: 10}, desk.Deps{Agents: agents, Renderer: renderer})

	err := d.ShowLeaderboard(context.Background(), desk.LeaderboardOptions{Search: "no-match"})
	require.NoError(t, err)

	require.Len(t, renderer.leaderboard, 1)
	p := renderer.leaderboard[0]

	assert.Equal(t, 0, p.Summary.TotalAgents)
	assert.Zero(t, p.Summary.AvgReputation) // 0, nunca NaN
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
}
