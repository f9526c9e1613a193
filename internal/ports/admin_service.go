package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// AdminService cubre el panel de admin. Requiere la admin key configurada;
// se pasa al cliente en construcción, nunca como estado ambiente.
type AdminService interface {
	// PlatformStats devuelve los agregados globales de la plataforma.
	PlatformStats(ctx context.Context) (domain.PlatformStats, error)

	// ListFees devuelve el ledger de fees de la plataforma.
	ListFees(ctx context.Context, feeType domain.FeeType, limit int) ([]domain.PlatformFee, error)

	// ListAdminAgents devuelve todos los agentes con el detalle de admin.
	// Con role vacío no filtra.
	ListAdminAgents(ctx context.Context, role domain.AgentRole, limit int) ([]domain.AdminAgent, error)
}
