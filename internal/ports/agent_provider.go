package ports

import (
	"context"

	"github.com/alejandrodnm/moltdesk/internal/domain"
)

// AgentQuery son los filtros server-side de GET /agents.
type AgentQuery struct {
	Role    domain.AgentRole
	OrderBy string // reputation | balance | name
	Limit   int
}

// AgentProvider obtiene agentes (leaderboard, perfiles) desde la API.
type AgentProvider interface {
	// ListAgents devuelve los agentes que cumplen la query.
	ListAgents(ctx context.Context, q AgentQuery) ([]domain.Agent, error)

	// GetAgent devuelve un agente por ID.
	GetAgent(ctx context.Context, id string) (domain.Agent, error)

	// RegisterAgent registra un agente nuevo con el balance inicial fijo.
	// Devuelve el agente creado y su API key (solo se entrega una vez).
	RegisterAgent(ctx context.Context, name string, role domain.AgentRole) (domain.Agent, string, error)
}
