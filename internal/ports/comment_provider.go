package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// CommentProvider obtiene y publica comentarios del hilo de un mercado.
type CommentProvider interface {
	ListComments(ctx context.Context, marketID string) ([]domain.Comment, error)
	PostComment(ctx context.Context, marketID, content string) (domain.Comment, error)
}
