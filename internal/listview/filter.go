package listview

import (
	"strings"
	"time"
)

// Dimension es un predicado de filtrado con nombre. Las dimensiones activas
// se componen en conjunción: un registro sobrevive solo si cumple todas.
type Dimension[T any] struct {
	Name  string
	Match func(T) bool
}

// ApplyFilters devuelve los registros que cumplen todas las dimensiones.
// Una dimensión con Match nil se considera sin valor y pasa todo.
func ApplyFilters[T any](records []T, dims []Dimension[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(r, dims) {
			out = append(out, r)
		}
	}
	return out
}

// CountIf cuenta los registros que cumplen las dimensiones dadas más el
// predicado candidato. Es la base de los badges de filtro: el caller pasa
// las dimensiones hermanas (todas menos la del badge) y la opción candidata.
func CountIf[T any](records []T, dims []Dimension[T], candidate func(T) bool) int {
	n := 0
	for _, r := range records {
		if matchesAll(r, dims) && (candidate == nil || candidate(r)) {
			n++
		}
	}
	return n
}

func matchesAll[T any](r T, dims []Dimension[T]) bool {
	for _, d := range dims {
		if d.Match != nil && !d.Match(r) {
			return false
		}
	}
	return true
}

// Search construye un predicado de búsqueda libre: substring case-insensitive
// contra los campos de texto designados. Matchea si CUALQUIER campo contiene
// la query. Una query vacía devuelve nil (dimensión sin valor).
func Search[T any](fields func(T) []string, query string) func(T) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// Equals construye un predicado de igualdad exacta contra un campo.
// Un valor vacío devuelve nil (dimensión sin valor).
func Equals[T any](field func(T) string, want string) func(T) bool {
	if want == "" {
		return nil
	}
	return func(r T) bool {
		return field(r) == want
	}
}

// Live construye el predicado compuesto "live": status open Y deadline en el
// futuro. Recibe el clock como función porque "now" avanza: el predicado debe
// re-evaluarse en cada render, nunca cachearse.
func Live[T any](isLive func(T, time.Time) bool, now func() time.Time) func(T) bool {
	return func(r T) bool {
		return isLive(r, now())
	}
}
