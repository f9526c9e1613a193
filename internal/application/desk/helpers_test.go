package desk_test

import (
	"context"
	"errors"
	"sync"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// fakeMarkets sirve un snapshot fijo y cuenta las llamadas.
type fakeMarkets struct {
	mu         sync.Mutex
	markets    []domain.Market
	categories []string
	calls      int
	err        error
	catErr     error
}

func (f *fakeMarkets) ListMarkets(ctx context.Context, q ports.MarketQuery) ([]domain.Market, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.markets, nil
}

func (f *fakeMarkets) GetMarket(ctx context.Context, id string) (domain.Market, error) {
	for _, m := range f.markets {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Market{}, errors.New("market not found")
}

func (f *fakeMarkets) GetOrderBook(ctx context.Context, marketID string) (domain.OrderBook, error) {
	return domain.OrderBook{MarketID: marketID}, nil
}

func (f *fakeMarkets) ListCategories(ctx context.Context) ([]string, error) {
	if f.catErr != nil {
		return nil, f.catErr
	}
	if f.categories != nil {
		return f.categories, nil
	}
	return domain.Categories, nil
}

// fakeAgents sirve un leaderboard fijo.
type fakeAgents struct {
	agents []domain.Agent
	err    error
}

func (f *fakeAgents) ListAgents(ctx context.Context, q ports.AgentQuery) ([]domain.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agents, nil
}

func (f *fakeAgents) GetAgent(ctx context.Context, id string) (domain.Agent, error) {
	for _, a := range f.agents {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Agent{}, errors.New("agent not found")
}

func (f *fakeAgents) RegisterAgent(ctx context.Context, name string, role domain.AgentRole) (domain.Agent, string, error) {
	return domain.Agent{ID: "new", Name: name, Role: role, Balance: domain.StartingBalance}, "mst_new", nil
}

// fakeComments sirve un hilo fijo y cuenta los polls.
type fakeComments struct {
	mu       sync.Mutex
	comments []domain.Comment
	calls    int
}

func (f *fakeComments) ListComments(ctx context.Context, marketID string) ([]domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.comments, nil
}

func (f *fakeComments) PostComment(ctx context.Context, marketID, content string) (domain.Comment, error) {
	return domain.Comment{MarketID: marketID, Content: content}, nil
}

func (f *fakeComments) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStore guarda volúmenes en memoria.
type fakeStore struct {
	volumes map[string]float64
}

func (f *fakeStore) SaveRefresh(ctx context.Context, markets []domain.Market) error {
	f.volumes = make(map[string]float64, len(markets))
	for _, m := range markets {
		f.volumes[m.ID] = m.Volume
	}
	return nil
}

func (f *fakeStore) LastVolumes(ctx context.Context) (map[string]float64, error) {
	return f.volumes, nil
}

func (f *fakeStore) Close() error { return nil }

// captureRenderer guarda el último view-model renderizado por vista.
type captureRenderer struct {
	mu          sync.Mutex
	markets     []ports.MarketsPage
	leaderboard []ports.LeaderboardPage
	comments    []ports.CommentsPage
	errors      []string
}

func (r *captureRenderer) RenderMarkets(p ports.MarketsPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.markets = append(r.markets, p)
	return nil
}

func (r *captureRenderer) RenderLeaderboard(p ports.LeaderboardPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaderboard = append(r.leaderboard, p)
	return nil
}

func (r *captureRenderer) RenderDashboard(p ports.DashboardPage) error { return nil }
func (r *captureRenderer) RenderModerator(p ports.ModeratorPage) error { return nil }
func (r *captureRenderer) RenderAdmin(p ports.AdminPage) error         { return nil }

func (r *captureRenderer) RenderComments(p ports.CommentsPage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, p)
	return nil
}

func (r *captureRenderer) RenderOrderBook(m domain.Market, book domain.OrderBook) error { return nil }
func (r *captureRenderer) RenderTrades(trades []domain.Trade) error                     { return nil }

func (r *captureRenderer) RenderError(view string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, view+": "+err.Error())
}

func (r *captureRenderer) lastMarkets() (ports.MarketsPage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.markets) == 0 {
		return ports.MarketsPage{}, false
	}
	return r.markets[len(r.markets)-1], true
}

func (r *captureRenderer) commentRenders() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.comments)
}
