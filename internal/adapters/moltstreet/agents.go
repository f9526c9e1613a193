package moltstreet

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

const defaultAgentLimit = 100

// ListAgents implementa ports.AgentProvider contra GET /agents (leaderboard).
func (c *Client) ListAgents(ctx context.Context, q ports.AgentQuery) ([]domain.Agent, error) {
	params := url.Values{}
	if q.Role != "" {
		params.Set("role", string(q.Role))
	}
	if q.OrderBy != "" {
		params.Set("order_by", q.OrderBy)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultAgentLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	var resp []agentDTO
	if err := c.get(ctx, "/agents?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("moltstreet.ListAgents: %w", err)
	}
	return mapAgents(resp), nil
}

// GetAgent devuelve un agente por ID.
func (c *Client) GetAgent(ctx context.Context, id string) (domain.Agent, error) {
	var resp agentDTO
	if err := c.get(ctx, "/agents/"+url.PathEscape(id), &resp); err != nil {
		return domain.Agent{}, fmt.Errorf("moltstreet.GetAgent: %w", err)
	}
	return mapAgent(resp), nil
}

// RegisterAgent registra un agente vía POST /api/v1/agents/register.
// La API key devuelta solo se entrega una vez; el caller debe guardarla.
func (c *Client) RegisterAgent(ctx context.Context, name string, role domain.AgentRole) (domain.Agent, string, error) {
	req := registerRequest{Name: name, Role: string(role)}

	var resp registerResponse
	if err := c.post(ctx, "/api/v1/agents/register", req, &resp); err != nil {
		return domain.Agent{}, "", fmt.Errorf("moltstreet.RegisterAgent: %w", err)
	}

	agent := domain.Agent{
		ID:      resp.AgentID,
		Name:    resp.Name,
		Role:    domain.AgentRole(resp.Role),
		Balance: domain.StartingBalance,
	}
	return agent, resp.APIKey, nil
}
