package desk

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// CommentsPoller refresca el hilo de comentarios de un mercado a intervalo
// fijo mientras la vista está abierta. El caller lo para cancelando el
// contexto; el teardown es inmediato, sin polls huérfanos.
type CommentsPoller struct {
	comments ports.CommentProvider
	renderer ports.Renderer
	interval time.Duration
}

// NewCommentsPoller crea un poller con el intervalo dado.
func NewCommentsPoller(comments ports.CommentProvider, renderer ports.Renderer, interval time.Duration) *CommentsPoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &CommentsPoller{comments: comments, renderer: renderer, interval: interval}
}

// Run pollea el hilo hasta que el contexto se cancele. Hace un poll
// inmediato al arrancar; un poll fallido pinta el error y sigue.
func (p *CommentsPoller) Run(ctx context.Context, page ports.CommentsPage) error {
	p.poll(ctx, &page)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("comments poller stopped", "market_id", page.Market.ID)
			return nil
		case <-ticker.C:
			p.poll(ctx, &page)
		}
	}
}

func (p *CommentsPoller) poll(ctx context.Context, page *ports.CommentsPage) {
	comments, err := p.comments.ListComments(ctx, page.Market.ID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.renderer.RenderError("comments", err)
		return
	}
	page.Comments = comments
	p.renderer.RenderComments(*page)
}
