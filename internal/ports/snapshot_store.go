package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// SnapshotStore persiste snapshots de mercado por refresh para poder mostrar
// deltas ("volumen desde el último refresh"). Solo se guardan datos
// fetcheados; el estado de vista (filtros, página) nunca se persiste.
type SnapshotStore interface {
	// SaveRefresh guarda un snapshot por mercado con el timestamp actual.
	SaveRefresh(ctx context.Context, markets []domain.Market) error

	// LastVolumes devuelve el volumen del snapshot anterior por market ID.
	LastVolumes(ctx context.Context) (map[string]float64, error)

	// Close cierra la base de datos limpiamente.
	Close() error
}
