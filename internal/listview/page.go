package listview

// PageSizes son los tamaños de página que ofrece la UI.
var PageSizes = []int{10, 25, 50}

// DefaultPageSize es el tamaño de página inicial de toda vista.
const DefaultPageSize = 10

// ValidPageSize informa si n es uno de los tamaños de PageSizes. El perPage
// de una vista siempre sale de ese set; un valor fuera cae al default.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Window devuelve la subsecuencia [(page-1)*perPage, page*perPage) recortada
// a los límites del slice. Es 1-indexed. Nunca produce índices negativos ni
// fuera de rango: una página más allá del final devuelve vacío.
//
// Window solo recorta; no corrige el número de página. El clamp es
// responsabilidad del State antes de renderizar (ver Snapshot).
func Window[T any](records []T, page, perPage int) []T {
	if perPage < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(records) {
		return nil
	}
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages devuelve ceil(count/perPage) con un mínimo de 1 página:
// un set vacío sigue siendo "página 1 de 1". Se calcula siempre sobre el
// count POST-filtro, nunca sobre el set crudo.
func TotalPages(count, perPage int) int {
	if perPage < 1 {
		return 1
	}
	pages := (count + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage acota page al rango [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
