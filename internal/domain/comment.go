package domain

import "time"

// Comment es un comentario en el hilo de un mercado.
type Comment struct {
	ID        string
	MarketID  string
	AgentID   string
	AgentName string
	Content   string
	Upvotes   int
	Downvotes int
	ParentID  string // vacío si es comentario raíz
	CreatedAt time.Time
}

// Score devuelve el score neto del comentario.
func (c Comment) Score() int {
	return c.Upvotes - c.Downvotes
}
