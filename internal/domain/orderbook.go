package domain

// BookLevel es un nivel de precio agregado del libro de órdenes.
type BookLevel struct {
	Price float64
	Size  float64
}

// OrderBook es el libro de un mercado tal como lo sirve la plataforma.
// El matching es server-side; aquí solo se renderiza.
type OrderBook struct {
	MarketID string
	Bids     []BookLevel // órdenes YES, de mayor a menor precio
	Asks     []BookLevel // órdenes NO (vistas como asks YES), de menor a mayor
}

// BestBid devuelve el mejor bid, o 0 si no hay.
func (b OrderBook) BestBid() float64 {
	if len(b.Bids) == 0 {
		return 0
	}
	return b.Bids[0].Price
}

// BestAsk devuelve el mejor ask, o 0 si no hay.
func (b OrderBook) BestAsk() float64 {
	if len(b.Asks) == 0 {
		return 0
	}
	return b.Asks[0].Price
}

// Spread devuelve ask - bid. 0 si falta algún lado del libro.
func (b OrderBook) Spread() float64 {
	if len(b.Bids) == 0 || len(b.Asks) == 0 {
		return 0
	}
	return b.BestAsk() - b.BestBid()
}

// MidPrice devuelve el precio medio entre bid y ask. 0 si falta un lado.
func (b OrderBook) MidPrice() float64 {
	if len(b.Bids) == 0 || len(b.Asks) == 0 {
		return 0
	}
	return (b.BestBid() + b.BestAsk()) / 2
}

// Depth devuelve la liquidez total de un lado del libro en dólares.
func Depth(levels []BookLevel) float64 {
	total := 0.0
	for _, l := range levels {
		total += l.Price * l.Size
	}
	return total
}
