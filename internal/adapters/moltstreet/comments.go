package moltstreet

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// ListComments devuelve el hilo de un mercado, comentarios raíz primero.
func (c *Client) ListComments(ctx context.Context, marketID string) ([]domain.Comment, error) {
	var resp commentListResponse
	path := "/markets/" + url.PathEscape(marketID) + "/comments"
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListComments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(resp.Comments))
	for _, d := range resp.Comments {
		comments = append(comments, mapComment(d))
	}
	return comments, nil
}

// PostComment publica un comentario. Requiere API key de agente.
func (c *Client) PostComment(ctx context.Context, marketID, content string) (domain.Comment, error) {
	req := commentCreateRequest{Content: content}

	var resp commentDTO
	path := "/markets/" + url.PathEscape(marketID) + "/comments"
	if err := c.post(ctx, path, req, &resp); err != nil {
		return domain.Comment{}, fmt.Errorf("moltstreet.PostComment: %w", err)
	}
	return mapComment(resp), nil
}
