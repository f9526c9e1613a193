package listview

// State mantiene el estado efímero de una vista de lista: filtros activos,
// ordenación, página. Vive solo mientras la vista está abierta; nunca se
// persiste. Los records se reemplazan enteros en cada fetch/refresh.
type State[T any] struct {
	records []T
	dims    []Dimension[T] // en orden de inserción, composición AND
	ranking Ranking[T]
	dir     Direction // vacío = dirección por defecto de la key

	trending bool
	volume   func(T) float64 // accessor para el corte trending

	page    int
	perPage int
}

// View es el resultado de materializar un State: la página visible más los
// derivados que necesita la UI (badges, agregados, control de paginación).
type View[T any] struct {
	Items         []T // página visible
	Filtered      []T // set filtrado/ordenado completo, para agregados
	TotalRecords  int
	FilteredCount int
	Page          int // ya acotado a [1, TotalPages]
	PerPage       int
	TotalPages    int
	SortDisabled  bool // true mientras trending está activo
}

// NewState crea un State vacío en página 1.
func NewState[T any](perPage int) *State[T] {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	return &State[T]{page: 1, perPage: perPage}
}

// SetRecords reemplaza la colección completa (fetch inicial o refresh).
// No toca la página: si el set encogió, Snapshot la acota.
func (s *State[T]) SetRecords(records []T) {
	s.records = records
}

// All devuelve la colección cruda sin filtrar.
func (s *State[T]) All() []T {
	return s.records
}

// SetFilter fija el valor de una dimensión. Un match nil desactiva la
// dimensión. Cambiar cualquier filtro resetea la página a 1: la posición
// de página no significa nada bajo un filtro nuevo.
func (s *State[T]) SetFilter(name string, match func(T) bool) {
	for i := range s.dims {
		if s.dims[i].Name == name {
			s.dims[i].Match = match
			s.page = 1
			return
		}
	}
	s.dims = append(s.dims, Dimension[T]{Name: name, Match: match})
	s.page = 1
}

// SetSort fija la política de ordenación activa (exactamente una key activa
// a la vez) con su dirección por defecto, y resetea la página a 1.
func (s *State[T]) SetSort(r Ranking[T]) {
	s.ranking = r
	s.dir = ""
	s.page = 1
}

// SetDirection fuerza la dirección de la key activa y resetea la página a 1.
func (s *State[T]) SetDirection(dir Direction) {
	s.dir = dir
	s.page = 1
}

// SetTrending activa o desactiva el corte trending (top 10 por volumen,
// aplicado antes de filtros). Mientras está activo los controles de sort
// quedan deshabilitados. Resetea la página a 1.
func (s *State[T]) SetTrending(on bool, volume func(T) float64) {
	s.trending = on
	s.volume = volume
	s.page = 1
}

// SetPage fija la página pedida. Se acota contra el total real en Snapshot.
func (s *State[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// SetPerPage cambia el tamaño de página y resetea la página a 1.
func (s *State[T]) SetPerPage(perPage int) {
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	s.perPage = perPage
	s.page = 1
}

// Page devuelve la página actual tal como quedó tras el último Snapshot.
func (s *State[T]) Page() int { return s.page }

// CountExcluding cuenta cuántos registros matchearían el candidato aplicando
// todas las dimensiones activas MENOS la nombrada. Alimenta los badges de
// filtro: "Live (12)" refleja qué pasaría al seleccionar esa opción bajo los
// filtros hermanos actuales.
func (s *State[T]) CountExcluding(name string, candidate func(T) bool) int {
	siblings := make([]Dimension[T], 0, len(s.dims))
	for _, d := range s.dims {
		if d.Name != name {
			siblings = append(siblings, d)
		}
	}
	return CountIf(s.base(), siblings, candidate)
}

// Snapshot materializa el estado actual: trending → filtros → sort → clamp
// de página → ventana. Nunca falla; todo caso borde degrada a un resultado
// seguro (set vacío, página acotada).
func (s *State[T]) Snapshot() View[T] {
	filtered := ApplyFilters(s.base(), s.dims)

	if !s.trending && s.ranking.Compare != nil {
		filtered = SortBy(filtered, s.ranking, s.dir)
	}

	totalPages := TotalPages(len(filtered), s.perPage)
	s.page = ClampPage(s.page, totalPages)

	return View[T]{
		Items:         Window(filtered, s.page, s.perPage),
		Filtered:      filtered,
		TotalRecords:  len(s.records),
		FilteredCount: len(filtered),
		Page:          s.page,
		PerPage:       s.perPage,
		TotalPages:    totalPages,
		SortDisabled:  s.trending,
	}
}

// base devuelve el punto de partida del pipeline: el corte trending si está
// activo, o la colección completa.
func (s *State[T]) base() []T {
	if s.trending && s.volume != nil {
		return Trending(s.records, s.volume)
	}
	return s.records
}
