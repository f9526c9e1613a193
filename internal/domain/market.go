package domain

import "time"

// MarketStatus es el estado del ciclo de vida de un mercado.
type MarketStatus string

const (
	StatusOpen     MarketStatus = "open"
	StatusClosed   MarketStatus = "closed"
	StatusResolved MarketStatus = "resolved"
)

// Outcome es el resultado de un mercado resuelto.
type Outcome string

const (
	OutcomeYes Outcome = "YES"
	OutcomeNo  Outcome = "NO"
)

// Categories son las categorías de mercado que expone la plataforma.
// El endpoint /markets/categories devuelve esta misma lista; se mantiene
// aquí para poder pintar los filtros sin una llamada extra.
var Categories = []string{"crypto", "politics", "sports", "tech", "ai", "finance", "culture"}

// Market representa un mercado de predicción binario YES/NO de la plataforma.
type Market struct {
	ID          string
	CreatorID   string
	Question    string
	Description string
	Category    string
	Status      MarketStatus
	Outcome     Outcome // vacío si no está resuelto
	YesPrice    float64
	NoPrice     float64
	Volume      float64
	Deadline    time.Time
	ResolvedAt  time.Time
	ResolvedBy  string
	Evidence    string // evidencia de la resolución, opcional
	CreatedAt   time.Time
}

// IsLive devuelve true si el mercado sigue aceptando órdenes: abierto y con
// deadline en el futuro. Se evalúa contra el `now` del caller porque "live"
// cambia con el paso del tiempo y no debe cachearse.
func (m Market) IsLive(now time.Time) bool {
	return m.Status == StatusOpen && m.Deadline.After(now)
}

// IsResolved devuelve true si el mercado ya tiene outcome.
func (m Market) IsResolved() bool {
	return m.Status == StatusResolved
}

// HoursToDeadline devuelve las horas hasta el deadline. 0 si ya pasó
// o si el deadline no está definido.
func (m Market) HoursToDeadline(now time.Time) float64 {
	if m.Deadline.IsZero() {
		return 0
	}
	h := m.Deadline.Sub(now).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// ImpliedProbability devuelve el precio YES como probabilidad implícita en %.
func (m Market) ImpliedProbability() float64 {
	return m.YesPrice * 100
}

// TruncateQuestion devuelve la pregunta truncada a maxLen caracteres.
// Si la pregunta está vacía usa los primeros caracteres del ID como fallback.
func TruncateQuestion(question, id string, maxLen int) string {
	q := question
	if q == "" {
		if len(id) > 20 {
			q = id[:20] + "..."
		} else {
			q = id
		}
	}
	if len(q) > maxLen {
		q = q[:maxLen-3] + "..."
	}
	return q
}
