package desk

import (
	"errors"
	"sync"
)

// ErrStale marca el resultado de un fetch que fue superado por otro más
// reciente antes de completarse. El caller lo descarta sin pintar nada.
var ErrStale = errors.New("fetch superseded by a newer request")

// Session secuencia los fetches de una vista: cada fetch toma un ticket
// monotónico y solo el más reciente puede publicar su resultado. Así un
// response lento nunca pisa datos más nuevos ya renderizados.
type Session struct {
	mu  sync.Mutex
	seq uint64
}

// NewSession crea una sesión con el contador a cero.
func NewSession() *Session {
	return &Session{}
}

// Begin arranca un fetch nuevo y devuelve su ticket. Todo fetch anterior
// aún en vuelo queda invalidado.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Commit devuelve true si el ticket sigue siendo el fetch más reciente.
// Un false significa que el resultado está obsoleto y debe descartarse.
func (s *Session) Commit(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ticket == s.seq
}
