// Package listview implementa el motor de estado de listas que comparten
// todas las vistas del desk: ranking, composición de filtros, paginación y
// agregados. Opera sobre snapshots en memoria ya fetcheados; es computación
// pura y síncrona, sin side effects.
package listview

import (
	"sort"
	"time"
)

// Direction es la dirección de una ordenación.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// TrendingSize es el tamaño del corte "trending": top N por volumen.
const TrendingSize = 10

// Ranking es una política de ordenación con nombre: un comparador más la
// dirección por defecto de la key (p.ej. "ending" asciende por deadline,
// "profit" desciende).
type Ranking[T any] struct {
	Key     string
	Default Direction
	Compare func(a, b T) int
}

// SortBy devuelve una copia de records ordenada por el ranking dado.
// Si dir está vacío usa la dirección por defecto de la key.
//
// La ordenación es estable: ante empate en la key primaria se preserva el
// orden relativo original. No se introduce ninguna key secundaria implícita
// porque haría los resultados no reproducibles entre re-fetches con distinto
// orden server-side.
func SortBy[T any](records []T, r Ranking[T], dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)

	if r.Compare == nil {
		return out
	}
	if dir == "" {
		dir = r.Default
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := r.Compare(out[i], out[j])
		if dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Trending devuelve el corte "trending": top TrendingSize por volumen
// descendente. El corte se aplica ANTES de cualquier filtro u ordenación
// adicional; mientras está activo los controles de sort quedan deshabilitados.
// El corte es global sobre el set completo, no por categoría (ver DESIGN.md).
func Trending[T any](records []T, volume func(T) float64) []T {
	byVolume := Ranking[T]{Key: "volume", Default: Desc, Compare: ByFloat(volume)}
	sorted := SortBy(records, byVolume, Desc)
	if len(sorted) > TrendingSize {
		sorted = sorted[:TrendingSize]
	}
	return sorted
}

// ByFloat construye un comparador numérico a partir de un accessor.
// Un campo ausente debe mapearse a 0 en el accessor: ordena como el mínimo
// del dominio, nunca lanza ni descarta el registro.
func ByFloat[T any](field func(T) float64) func(a, b T) int {
	return func(a, b T) int {
		fa, fb := field(a), field(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
}

// ByTime construye un comparador temporal. El instante cero ordena como el
// mínimo (el timestamp más antiguo posible).
func ByTime[T any](field func(T) time.Time) func(a, b T) int {
	return func(a, b T) int {
		ta, tb := field(a), field(b)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
}

// ByString construye un comparador lexicográfico. Solo se usa cuando se
// ordena explícitamente por nombre; la búsqueda por relevancia no existe.
func ByString[T any](field func(T) string) func(a, b T) int {
	return func(a, b T) int {
		sa, sb := field(a), field(b)
		switch {
		case sa < sb:
			return -1
		case sa > sb:
			return 1
		default:
			return 0
		}
	}
}
