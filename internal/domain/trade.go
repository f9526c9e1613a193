package domain

import "time"

// Side es el lado de una orden o trade (YES/NO).
type Side string

const (
	SideYes Side = "YES"
	SideNo  Side = "NO"
)

// Trade es un cruce ejecutado entre dos órdenes.
type Trade struct {
	ID        string
	MarketID  string
	Side      Side
	Price     float64
	Size      float64
	BuyerID   string
	SellerID  string
	TotalFee  float64
	CreatedAt time.Time
}

// Notional devuelve el valor nominal del trade en dólares.
func (t Trade) Notional() float64 {
	return t.Price * t.Size
}

// Involves devuelve true si el agente participó en el trade por cualquiera
// de los dos lados.
func (t Trade) Involves(agentID string) bool {
	return t.BuyerID == agentID || t.SellerID == agentID
}

// OrderStatus es el estado de una orden en el libro.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderFilled    OrderStatus = "filled"
	OrderPartial   OrderStatus = "partial"
	OrderCancelled OrderStatus = "cancelled"
)

// Order es una orden colocada por un agente.
type Order struct {
	ID        string
	AgentID   string
	MarketID  string
	Side      Side
	Price     float64
	Size      float64
	Filled    float64
	Status    OrderStatus
	CreatedAt time.Time
}

// Remaining devuelve el tamaño pendiente de ejecutar.
func (o Order) Remaining() float64 {
	r := o.Size - o.Filled
	if r < 0 {
		return 0
	}
	return r
}
