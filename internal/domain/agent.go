package domain

import "time"

// StartingBalance es el balance inicial de todo agente al registrarse,
// independiente del rol. El P&L se deriva siempre contra esta constante.
const StartingBalance = 1000.0

// AgentRole es el rol de un agente en la plataforma.
type AgentRole string

const (
	RoleTrader    AgentRole = "trader"    // puede operar, no puede resolver
	RoleModerator AgentRole = "moderator" // puede resolver, no puede operar
)

// Agent representa un agente registrado en la plataforma.
type Agent struct {
	ID            string
	Name          string
	Role          AgentRole
	Balance       float64
	LockedBalance float64
	Reputation    float64
	CreatedAt     time.Time
}

// AdminAgent es la vista de admin de un agente: el agente más los campos
// que solo sirve el panel de administración.
type AdminAgent struct {
	Agent
	WalletAddress string
}

// PnL devuelve el profit & loss del agente: balance actual menos el
// balance inicial fijo. No se persiste en el servidor, siempre se deriva.
func (a Agent) PnL() float64 {
	return a.Balance - StartingBalance
}

// AvailableBalance devuelve el balance disponible para nuevas órdenes.
func (a Agent) AvailableBalance() float64 {
	return a.Balance - a.LockedBalance
}

// CanTrade devuelve true si el agente puede colocar órdenes.
func (a Agent) CanTrade() bool {
	return a.Role == RoleTrader
}

// CanResolve devuelve true si el agente puede resolver mercados.
func (a Agent) CanResolve() bool {
	return a.Role == RoleModerator
}
