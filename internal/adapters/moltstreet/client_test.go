package moltstreet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alejandrodnm/moltdesk/internal/adapters/moltstreet"
	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketsFixture = `[
	{
		"id": "m-001",
		"creator_id": "a-001",
		"question": "¿BTC cierra agosto por encima de 100k?",
		"description": "Precio spot de referencia",
		"category": "crypto",
		"deadline": "2026-08-31T23:59:59Z",
		"status": "open",
		"yes_price": 0.62,
		"no_price": 0.38,
		"volume": 1500.5,
		"created_at": "2026-08-01T10:00:00Z"
	},
	{
		"id": "m-002",
		"creator_id": "a-002",
		"question": "¿Llueve en Madrid el domingo?",
		"category": "weather",
		"deadline": "2026-09-06T12:00:00Z",
		"status": "open",
		"yes_price": 0.30,
		"no_price": 0.70,
		"volume": 42,
		"created_at": "2026-08-02T09:30:00Z"
	}
]`

func newTestClient(srv *httptest.Server, creds moltstreet.Credentials) *moltstreet.Client {
	return moltstreet.NewClient(srv.URL, creds)
}

func TestListMarkets_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets", r.URL.Path)
		assert.Equal(t, "open", r.URL.Query().Get("status"))
		assert.Equal(t, "crypto", r.URL.Query().Get("category"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(marketsFixture))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	markets, err := client.ListMarkets(context.Background(), ports.MarketQuery{
		Status:   domain.StatusOpen,
		Category: "crypto",
	})

	require.NoError(t, err)
	require.Len(t, markets, 2)

	m := markets[0]
	assert.Equal(t, "m-001", m.ID)
	assert.Equal(t, "crypto", m.Category)
	assert.Equal(t, domain.StatusOpen, m.Status)
	assert.InDelta(t, 0.62, m.YesPrice, 0.001)
	assert.InDelta(t, 1500.5, m.Volume, 0.001)
	assert.Equal(t, 2026, m.Deadline.Year())
}

func TestListMarkets_TrendingParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("trending"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	_, err := client.ListMarkets(context.Background(), ports.MarketQuery{Trending: true})
	require.NoError(t, err)
}

func TestGetOrderBook_Success(t *testing.T) {
	fixture := `{
		"market_id": "m-001",
		"bids": [{"price": 0.60, "size": 100}, {"price": 0.58, "size": 50}],
		"asks": [{"price": 0.63, "size": 80}]
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/m-001/orderbook", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	book, err := client.GetOrderBook(context.Background(), "m-001")

	require.NoError(t, err)
	assert.InDelta(t, 0.60, book.BestBid(), 0.001)
	assert.InDelta(t, 0.63, book.BestAsk(), 0.001)
	assert.InDelta(t, 0.03, book.Spread(), 0.001)
}

func TestAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer mst_testkey", r.Header.Get("Authorization"))
		assert.Equal(t, "admin-secret", r.Header.Get("X-Admin-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{APIKey: "mst_testkey", AdminKey: "admin-secret"})
	_, err := client.ListMarkets(context.Background(), ports.MarketQuery{})
	require.NoError(t, err)
}

func TestRegisterAgent_ReturnsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/agents/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "desk-bot", body["name"])
		assert.Equal(t, "trader", body["role"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"agent_id": "a-100",
			"name": "desk-bot",
			"role": "trader",
			"api_key": "mst_fresh_key",
			"message": "Save this key, it will not be shown again"
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	agent, apiKey, err := client.RegisterAgent(context.Background(), "desk-bot", domain.RoleTrader)

	require.NoError(t, err)
	assert.Equal(t, "a-100", agent.ID)
	assert.Equal(t, "mst_fresh_key", apiKey)
	assert.InDelta(t, domain.StartingBalance, agent.Balance, 0.001)
}

func TestPlaceOrder_ReturnsOrderAndTrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"order": {"id": "o-1", "agent_id": "a-1", "market_id": "m-1", "side": "YES", "price": 0.6, "size": 10, "filled": 4, "status": "partial", "created_at": "2026-08-15T10:00:00Z"},
			"trades": [{"id": "t-1", "market_id": "m-1", "side": "YES", "price": 0.6, "size": 4, "buyer_id": "a-1", "seller_id": "a-2", "total_fee": 0.048, "created_at": "2026-08-15T10:00:00Z"}]
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{APIKey: "mst_k"})
	order, trades, err := client.PlaceOrder(context.Background(), ports.OrderRequest{
		AgentID: "a-1", MarketID: "m-1", Side: domain.SideYes, Price: 0.6, Size: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderPartial, order.Status)
	assert.InDelta(t, 6.0, order.Remaining(), 0.001)
	require.Len(t, trades, 1)
	assert.InDelta(t, 0.048, trades[0].TotalFee, 0.001)
}

func TestResolveMarket_SendsOutcomeAndEvidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/m-9/resolve", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mod-1", body["moderator_id"])
		assert.Equal(t, "YES", body["outcome"])
		assert.Equal(t, "fuente oficial", body["evidence"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "m-9", "question": "q", "status": "resolved", "outcome": "YES", "resolved_by": "mod-1"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{APIKey: "mst_mod"})
	market, err := client.ResolveMarket(context.Background(), "m-9", "mod-1", domain.OutcomeYes, "fuente oficial")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, market.Status)
	assert.Equal(t, domain.OutcomeYes, market.Outcome)
}

func TestListComments_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/m-1/comments", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"comments": [
				{"id": "c-1", "market_id": "m-1", "agent": {"id": "a-1", "name": "ana"}, "content": "sube fijo", "upvotes": 3, "downvotes": 1, "created_at": "2026-08-10T08:00:00Z"}
			],
			"total": 1
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	comments, err := client.ListComments(context.Background(), "m-1")

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "ana", comments[0].AgentName)
	assert.Equal(t, 2, comments[0].Score())
}

func TestPlatformStats_NestedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/stats", r.URL.Path)
		assert.Equal(t, "admin-secret", r.Header.Get("X-Admin-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"overview": {
				"total_agents": 12, "total_traders": 10, "total_moderators": 2,
				"total_markets": 30, "open_markets": 18, "resolved_markets": 9,
				"total_trades": 450, "total_volume": 98765.43
			},
			"revenue": {"total_revenue": 1234.56}
		}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{AdminKey: "admin-secret"})
	stats, err := client.PlatformStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalAgents)
	assert.Equal(t, 18, stats.OpenMarkets)
	assert.InDelta(t, 98765.43, stats.TotalVolume, 0.01)
	assert.InDelta(t, 1234.56, stats.TotalFees, 0.01)
}

func TestResolvedMarkets_MapsRewards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/moderator/resolved/mod-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": "m-1", "question": "¿Sube BTC?", "outcome": "YES",
				"volume": 1500.5, "resolved_at": "2026-08-20T12:00:00Z",
				"reward": {
					"id": 7, "market_id": "m-1", "market_question": "¿Sube BTC?",
					"platform_share": 0.5, "winner_fee": 1.25, "total_reward": 1.75,
					"total_winner_profits": 62.5, "created_at": "2026-08-20T12:00:01Z"
				}
			},
			{
				"id": "m-2", "question": "¿Llueve?", "outcome": "NO",
				"volume": 42, "resolved_at": "2026-08-21T09:00:00Z",
				"reward": null
			}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{APIKey: "mst_mod"})
	resolved, err := client.ResolvedMarkets(context.Background(), "mod-1")

	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, domain.OutcomeYes, resolved[0].Outcome)
	require.NotNil(t, resolved[0].Reward)
	assert.InDelta(t, 1.75, resolved[0].Reward.TotalReward, 0.001)

	// Un mercado resuelto sin recompensa llega sin reward, no rompe la lista
	assert.Nil(t, resolved[1].Reward)
}

func TestAdminListAgents_RoleParamAndWallet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/agents", r.URL.Path)
		assert.Equal(t, "trader", r.URL.Query().Get("role"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "admin-secret", r.Header.Get("X-Admin-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": "a-1", "name": "ana", "role": "trader",
				"balance": 1200.5, "locked_balance": 100, "reputation": 80,
				"created_at": "2026-08-01T10:00:00Z",
				"wallet_address": "0xabc123def456"
			}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{AdminKey: "admin-secret"})
	agents, err := client.ListAdminAgents(context.Background(), domain.RoleTrader, 0)

	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "ana", agents[0].Name)
	assert.InDelta(t, 1200.5, agents[0].Balance, 0.001)
	assert.Equal(t, "0xabc123def456", agents[0].WalletAddress)
}

func TestClient_ErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Insufficient balance"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{APIKey: "mst_k"})
	_, _, err := client.PlaceOrder(context.Background(), ports.OrderRequest{
		AgentID: "a-1", MarketID: "m-1", Side: domain.SideYes, Price: 0.6, Size: 1e9,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient balance")
	assert.Contains(t, err.Error(), "400")
}

func TestClient_RetriesServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv, moltstreet.Credentials{})
	_, err := client.ListMarkets(context.Background(), ports.MarketQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "debe reintentar tras un 500")
}
