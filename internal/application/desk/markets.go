package desk

import (
	"context"
	"fmt"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/listview"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// MarketsOptions son los controles de la vista de mercados. Todo el refinado
// (búsqueda, live, sort, paginación) es client-side sobre el snapshot; al
// servidor solo se le piden los filtros gruesos que soporta.
type MarketsOptions struct {
	Search   string
	Category string
	Status   string
	Live     bool
	Trending bool
	SortKey  string // volume | newest | ending | probability
	Dir      listview.Direction
	Page     int
	PerPage  int
}

// marketRankings son las políticas de ordenación de la vista de mercados,
// cada una con su dirección por defecto.
var marketRankings = map[string]listview.Ranking[domain.Market]{
	"volume": {
		Key: "volume", Default: listview.Desc,
		Compare: listview.ByFloat(func(m domain.Market) float64 { return m.Volume }),
	},
	"newest": {
		Key: "newest", Default: listview.Desc,
		Compare: listview.ByTime(func(m domain.Market) time.Time { return m.CreatedAt }),
	},
	"ending": {
		Key: "ending", Default: listview.Asc,
		Compare: listview.ByTime(func(m domain.Market) time.Time { return m.Deadline }),
	},
	"probability": {
		Key: "probability", Default: listview.Desc,
		Compare: listview.ByFloat(func(m domain.Market) float64 { return m.YesPrice }),
	},
}

// ShowMarkets hace un ciclo completo de la vista de mercados: fetch,
// deltas contra el snapshot anterior, refinado listview y render.
func (d *Desk) ShowMarkets(ctx context.Context, opts MarketsOptions) error {
	markets, err := d.fetchMarkets(ctx)
	if err != nil {
		if err == ErrStale {
			return nil
		}
		d.renderer.RenderError("markets", err)
		return err
	}

	deltas := d.volumeDeltas(ctx, markets)

	st := d.buildMarketsState(markets, opts)
	view := st.Snapshot()

	return d.renderer.RenderMarkets(d.marketsPage(st, view, opts, deltas, d.categoryBadges(ctx)))
}

// categoryBadges devuelve las categorías de los badges: las que sirve la
// plataforma, cacheadas tras el primer fetch. Si el endpoint falla se usa
// el set estático del dominio.
func (d *Desk) categoryBadges(ctx context.Context) []string {
	if len(d.categories) > 0 {
		return d.categories
	}

	cats, err := d.deps.Markets.ListCategories(ctx)
	if err != nil || len(cats) == 0 {
		return domain.Categories
	}
	d.categories = cats
	return cats
}

// fetchMarkets pide el snapshot completo secuenciado por la sesión: si otro
// fetch arrancó mientras este estaba en vuelo, el resultado se descarta.
func (d *Desk) fetchMarkets(ctx context.Context) ([]domain.Market, error) {
	ticket := d.session.Begin()

	markets, err := d.deps.Markets.ListMarkets(ctx, ports.MarketQuery{})
	if err != nil {
		return nil, fmt.Errorf("desk.fetchMarkets: %w", err)
	}
	if !d.session.Commit(ticket) {
		return nil, ErrStale
	}
	return markets, nil
}

// volumeDeltas deriva el Δ de volumen por mercado contra el refresh anterior
// y persiste el snapshot nuevo. Sin store no hay deltas; un fallo del store
// nunca rompe la vista.
func (d *Desk) volumeDeltas(ctx context.Context, markets []domain.Market) map[string]float64 {
	if d.deps.Store == nil {
		return nil
	}

	prev, err := d.deps.Store.LastVolumes(ctx)
	if err != nil {
		prev = nil
	}

	deltas := make(map[string]float64, len(markets))
	for _, m := range markets {
		if last, ok := prev[m.ID]; ok {
			deltas[m.ID] = m.Volume - last
		}
	}

	if err := d.deps.Store.SaveRefresh(ctx, markets); err != nil {
		deltas = nil
	}
	return deltas
}

func (d *Desk) buildMarketsState(markets []domain.Market, opts MarketsOptions) *listview.State[domain.Market] {
	// perPage sale del set enumerado; cualquier otro valor cae al default.
	perPage := opts.PerPage
	if !listview.ValidPageSize(perPage) {
		perPage = d.cfg.PerPage
	}

	st := listview.NewState[domain.Market](perPage)
	st.SetRecords(markets)

	st.SetFilter("search", listview.Search(func(m domain.Market) []string {
		return []string{m.Question, m.Description}
	}, opts.Search))
	st.SetFilter("category", listview.Equals(func(m domain.Market) string {
		return m.Category
	}, opts.Category))
	st.SetFilter("status", listview.Equals(func(m domain.Market) string {
		return string(m.Status)
	}, opts.Status))
	if opts.Live {
		st.SetFilter("live", listview.Live(domain.Market.IsLive, d.nowFn))
	}

	if r, ok := marketRankings[opts.SortKey]; ok {
		st.SetSort(r)
		if opts.Dir != "" {
			st.SetDirection(opts.Dir)
		}
	}

	if opts.Trending {
		st.SetTrending(true, marketVolume)
	}

	if opts.Page > 1 {
		st.SetPage(opts.Page)
	}
	return st
}

// marketsPage materializa el view-model: página visible más los badges, cada
// uno contado con las dimensiones hermanas aplicadas.
func (d *Desk) marketsPage(st *listview.State[domain.Market], view listview.View[domain.Market], opts MarketsOptions, deltas map[string]float64, categories []string) ports.MarketsPage {
	now := d.nowFn()

	categoryCounts := make(map[string]int, len(categories))
	for _, cat := range categories {
		cat := cat
		categoryCounts[cat] = st.CountExcluding("category", func(m domain.Market) bool {
			return m.Category == cat
		})
	}

	statusCounts := make(map[string]int, 3)
	for _, status := range []domain.MarketStatus{domain.StatusOpen, domain.StatusClosed, domain.StatusResolved} {
		status := status
		statusCounts[string(status)] = st.CountExcluding("status", func(m domain.Market) bool {
			return m.Status == status
		})
	}

	liveCount := st.CountExcluding("live", func(m domain.Market) bool {
		return m.IsLive(now)
	})

	// El badge trending es global: el corte top-N se aplica antes de filtros.
	trendingCount := len(listview.Trending(st.All(), marketVolume))

	return ports.MarketsPage{
		Markets:        view.Items,
		Deltas:         deltas,
		Page:           view.Page,
		TotalPages:     view.TotalPages,
		FilteredCount:  view.FilteredCount,
		TotalRecords:   view.TotalRecords,
		CategoryCounts: categoryCounts,
		StatusCounts:   statusCounts,
		LiveCount:      liveCount,
		TrendingCount:  trendingCount,
		SortKey:        opts.SortKey,
		Trending:       view.SortDisabled,
		Now:            now,
	}
}

func marketVolume(m domain.Market) float64 { return m.Volume }
