// Package desk orquesta las vistas del terminal: fetch de datos vía ports,
// refinado client-side con listview y render por el Renderer inyectado.
package desk

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// Config contiene la configuración del desk.
type Config struct {
	PerPage       int
	WatchInterval time.Duration
	CommentsPoll  time.Duration
}

// Deps son las dependencias inyectadas del desk. Store es opcional: sin él
// no hay deltas de volumen, todo lo demás funciona igual.
type Deps struct {
	Markets   ports.MarketProvider
	Agents    ports.AgentProvider
	Trades    ports.TradeProvider
	Orders    ports.OrderPlacer
	Comments  ports.CommentProvider
	Moderator ports.ModeratorService
	Admin     ports.AdminService
	Store     ports.SnapshotStore
	Renderer  ports.Renderer
}

// Desk es el orquestador de las vistas.
type Desk struct {
	cfg      Config
	deps     Deps
	session  *Session
	renderer ports.Renderer
	nowFn    func() time.Time

	// categories cachea las categorías que sirve la plataforma tras el
	// primer fetch. Solo lo toca el ciclo de ShowMarkets.
	categories []string
}

// New crea un Desk con todas las dependencias inyectadas.
func New(cfg Config, deps Deps) *Desk {
	if cfg.PerPage < 1 {
		cfg.PerPage = 10
	}
	if cfg.WatchInterval <= 0 {
		cfg.WatchInterval = 30 * time.Second
	}
	if cfg.CommentsPoll <= 0 {
		cfg.CommentsPoll = 10 * time.Second
	}
	return &Desk{
		cfg:      cfg,
		deps:     deps,
		session:  NewSession(),
		renderer: deps.Renderer,
		nowFn:    time.Now,
	}
}

// WatchMarkets ejecuta la vista de mercados en loop hasta que el contexto
// se cancele. Un refresh fallido pinta el error y mantiene la vista viva
// con los datos anteriores.
func (d *Desk) WatchMarkets(ctx context.Context, opts MarketsOptions) error {
	slog.Info("watch mode", "interval", d.cfg.WatchInterval)

	if err := d.ShowMarkets(ctx, opts); err != nil {
		slog.Error("refresh failed", "err", err)
	}

	ticker := time.NewTicker(d.cfg.WatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped")
			return nil
		case <-ticker.C:
			if err := d.ShowMarkets(ctx, opts); err != nil {
				slog.Error("refresh failed", "err", err)
			}
		}
	}
}
