package listview

// Agregados sobre el set FILTRADO (no paginado): las summary cards reflejan
// la vista activa, no el dataset completo. Todos degradan a 0 con un set
// vacío; nunca NaN.

// Sum suma el campo dado sobre todos los registros.
func Sum[T any](records []T, field func(T) float64) float64 {
	total := 0.0
	for _, r := range records {
		total += field(r)
	}
	return total
}

// Avg devuelve la media aritmética del campo. Set vacío → 0, no NaN.
func Avg[T any](records []T, field func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, field) / float64(len(records))
}

// Max devuelve el máximo del campo. Set vacío → 0.
func Max[T any](records []T, field func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	best := field(records[0])
	for _, r := range records[1:] {
		if v := field(r); v > best {
			best = v
		}
	}
	return best
}

// CountBy agrupa y cuenta por la key dada (p.ej. status o rol).
func CountBy[T any, K comparable](records []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}
