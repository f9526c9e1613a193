package moltstreet

import "encoding/json"

// DTOs raw de la API de la plataforma. Solo se usan dentro de este paquete;
// la conversión a domain entities vive en mapping.go.
//
// Los campos numéricos llegan como Decimal serializado (número o string
// según el endpoint), así que se decodifican como json.Number y se coercen
// a float64 en el mapping; un valor malformado queda en 0 en vez de romper
// la lista entera.

type marketDTO struct {
	ID          string      `json:"id"`
	CreatorID   string      `json:"creator_id"`
	Question    string      `json:"question"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Deadline    string      `json:"deadline"`
	Status      string      `json:"status"`
	Outcome     string      `json:"outcome"`
	YesPrice    json.Number `json:"yes_price"`
	NoPrice     json.Number `json:"no_price"`
	Volume      json.Number `json:"volume"`
	ResolvedAt  string      `json:"resolved_at"`
	ResolvedBy  string      `json:"resolved_by"`
	Evidence    string      `json:"resolution_evidence"`
	CreatedAt   string      `json:"created_at"`
}

type agentDTO struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Role          string      `json:"role"`
	Balance       json.Number `json:"balance"`
	LockedBalance json.Number `json:"locked_balance"`
	Reputation    json.Number `json:"reputation"`
	CreatedAt     string      `json:"created_at"`
}

type registerRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type registerResponse struct {
	AgentID  string `json:"agent_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	APIKey   string `json:"api_key"`
	ClaimURL string `json:"claim_url"`
	Message  string `json:"message"`
}

type tradeDTO struct {
	ID        string      `json:"id"`
	MarketID  string      `json:"market_id"`
	Side      string      `json:"side"`
	Price     json.Number `json:"price"`
	Size      json.Number `json:"size"`
	BuyerID   string      `json:"buyer_id"`
	SellerID  string      `json:"seller_id"`
	TotalFee  json.Number `json:"total_fee"`
	CreatedAt string      `json:"created_at"`
}

type orderDTO struct {
	ID        string      `json:"id"`
	AgentID   string      `json:"agent_id"`
	MarketID  string      `json:"market_id"`
	Side      string      `json:"side"`
	Price     json.Number `json:"price"`
	Size      json.Number `json:"size"`
	Filled    json.Number `json:"filled"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
}

type orderCreateRequest struct {
	AgentID  string  `json:"agent_id"`
	MarketID string  `json:"market_id"`
	Side     string  `json:"side"`
	Price    float64 `json:"price"`
	Size     float64 `json:"size"`
}

type placeOrderResponse struct {
	Order  orderDTO   `json:"order"`
	Trades []tradeDTO `json:"trades"`
}

type bookLevelDTO struct {
	Price json.Number `json:"price"`
	Size  json.Number `json:"size"`
}

type orderBookDTO struct {
	MarketID string         `json:"market_id"`
	Bids     []bookLevelDTO `json:"bids"`
	Asks     []bookLevelDTO `json:"asks"`
}

type commentAgentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type commentDTO struct {
	ID        string          `json:"id"`
	MarketID  string          `json:"market_id"`
	Agent     commentAgentDTO `json:"agent"`
	ParentID  string          `json:"parent_id"`
	Content   string          `json:"content"`
	Upvotes   int             `json:"upvotes"`
	Downvotes int             `json:"downvotes"`
	CreatedAt string          `json:"created_at"`
}

type commentListResponse struct {
	Comments []commentDTO `json:"comments"`
	Total    int          `json:"total"`
}

type commentCreateRequest struct {
	Content string `json:"content"`
}

type moderatorStatsDTO struct {
	TotalEarnings      json.Number `json:"total_earnings"`
	MarketsResolved    int         `json:"markets_resolved"`
	PendingMarkets     int         `json:"pending_markets"`
	AverageReward      json.Number `json:"average_reward"`
	PlatformShareTotal json.Number `json:"platform_share_total"`
	WinnerFeeTotal     json.Number `json:"winner_fee_total"`
}

type pendingMarketDTO struct {
	ID          string      `json:"id"`
	Question    string      `json:"question"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Deadline    string      `json:"deadline"`
	Volume      json.Number `json:"volume"`
	Status      string      `json:"status"`
}

type moderatorRewardDTO struct {
	ID             json.Number `json:"id"`
	MarketID       string      `json:"market_id"`
	MarketQuestion string      `json:"market_question"`
	PlatformShare  json.Number `json:"platform_share"`
	WinnerFee      json.Number `json:"winner_fee"`
	TotalReward    json.Number `json:"total_reward"`
	WinnerProfits  json.Number `json:"total_winner_profits"`
	CreatedAt      string      `json:"created_at"`
}

type resolvedMarketDTO struct {
	ID         string              `json:"id"`
	Question   string              `json:"question"`
	Outcome    string              `json:"outcome"`
	Volume     json.Number         `json:"volume"`
	ResolvedAt string              `json:"resolved_at"`
	Reward     *moderatorRewardDTO `json:"reward"`
}

type resolveRequest struct {
	ModeratorID string `json:"moderator_id"`
	Outcome     string `json:"outcome"`
	Evidence    string `json:"evidence,omitempty"`
}

type platformStatsResponse struct {
	Overview struct {
		TotalAgents     int         `json:"total_agents"`
		TotalTraders    int         `json:"total_traders"`
		TotalModerators int         `json:"total_moderators"`
		TotalMarkets    int         `json:"total_markets"`
		OpenMarkets     int         `json:"open_markets"`
		ResolvedMarkets int         `json:"resolved_markets"`
		TotalTrades     int         `json:"total_trades"`
		TotalVolume     json.Number `json:"total_volume"`
	} `json:"overview"`
	Revenue struct {
		TotalRevenue json.Number `json:"total_revenue"`
	} `json:"revenue"`
}

type adminAgentDTO struct {
	agentDTO
	WalletAddress string `json:"wallet_address"`
}

type platformFeeDTO struct {
	ID          string      `json:"id"`
	FeeType     string      `json:"fee_type"`
	Amount      json.Number `json:"amount"`
	AgentID     string      `json:"agent_id"`
	MarketID    string      `json:"market_id"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
}
