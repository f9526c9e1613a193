package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alejandrodnm/moltdesk/internal/adapters/moltstreet"
	"github.com/alejandrodnm/moltdesk/internal/application/desk"
	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

// runRegister registra un agente nuevo e imprime la API key UNA vez.
func runRegister(ctx context.Context, f *flags, client *moltstreet.Client) error {
	role := domain.AgentRole(f.role)
	if role == "" {
		role = domain.RoleTrader
	}
	if role != domain.RoleTrader && role != domain.RoleModerator {
		return flagError("-role must be trader or moderator, got %q", f.role)
	}

	agent, apiKey, err := client.RegisterAgent(ctx, f.register, role)
	if err != nil {
		return err
	}

	fmt.Printf("\nAgente registrado: %s [%s]\n", agent.Name, agent.Role)
	fmt.Printf("  ID:      %s\n", agent.ID)
	fmt.Printf("  Balance: $%.2f\n", agent.Balance)
	fmt.Printf("\n  API KEY: %s\n", apiKey)
	fmt.Println("  Guárdala ahora — no se vuelve a mostrar. Exporta MOLTSTREET_API_KEY.")
	return nil
}

// runTrade coloca una orden tras confirmación interactiva.
func runTrade(ctx context.Context, f *flags, d *desk.Desk) error {
	if f.agentID == "" || f.marketID == "" {
		return flagError("placing an order requires -agent and -market")
	}
	side := domain.Side(strings.ToUpper(f.side))
	if side != domain.SideYes && side != domain.SideNo {
		return flagError("-side must be YES or NO, got %q", f.side)
	}
	if f.price <= 0 || f.price >= 1 {
		return flagError("-price must be in (0, 1), got %v", f.price)
	}
	if f.size <= 0 {
		return flagError("-size must be positive, got %v", f.size)
	}

	notional := f.price * f.size
	fmt.Printf("Orden: %s %.1f shares @ %.2f en %s (notional $%.2f)\n",
		side, f.size, f.price, f.marketID, notional)
	if !confirm(f.yes, "¿Colocar la orden?") {
		fmt.Println("Cancelado.")
		return nil
	}

	return d.PlaceOrder(ctx, ports.OrderRequest{
		AgentID:  f.agentID,
		MarketID: f.marketID,
		Side:     side,
		Price:    f.price,
		Size:     f.size,
	})
}

// runResolve resuelve un mercado tras confirmación. La resolución es
// irreversible: dispara el settlement server-side.
func runResolve(ctx context.Context, f *flags, d *desk.Desk) error {
	if f.marketID == "" || f.moderatorID == "" {
		return flagError("resolving requires -market and -moderator")
	}
	outcome := domain.Outcome(strings.ToUpper(f.resolve))
	if outcome != domain.OutcomeYes && outcome != domain.OutcomeNo {
		return flagError("-resolve must be YES or NO, got %q", f.resolve)
	}

	fmt.Printf("Resolver %s como %s — esto liquida el mercado y paga a los ganadores.\n",
		f.marketID, outcome)
	if !confirm(f.yes, "¿Confirmar resolución?") {
		fmt.Println("Cancelado.")
		return nil
	}

	return d.ResolveMarket(ctx, f.marketID, f.moderatorID, outcome, f.evidence)
}

// runComment publica un comentario en el hilo de un mercado.
func runComment(ctx context.Context, f *flags, client *moltstreet.Client) error {
	if f.marketID == "" {
		return flagError("posting a comment requires -market")
	}
	comment, err := client.PostComment(ctx, f.marketID, f.comment)
	if err != nil {
		return err
	}
	fmt.Printf("Comentario publicado (%s).\n", comment.ID)
	return nil
}

// confirm pide confirmación por stdin, salvo que -yes la salte.
func confirm(skip bool, prompt string) bool {
	if skip {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
