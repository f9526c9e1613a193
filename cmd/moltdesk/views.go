package main

import (
	"context"
	"fmt"

	"github.com/alejandrodnm/moltdesk/config"
	"github.com/alejandrodnm/moltdesk/internal/adapters/moltstreet"
	"github.com/alejandrodnm/moltdesk/internal/adapters/render"
	"github.com/alejandrodnm/moltdesk/internal/application/desk"
	"github.com/alejandrodnm/moltdesk/internal/ports"
)

func flagError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

func runDashboard(ctx context.Context, f *flags, d *desk.Desk) error {
	if f.agentID == "" {
		return flagError("-view dashboard requires -agent")
	}
	return d.ShowDashboard(ctx, f.agentID)
}

func runModerator(ctx context.Context, f *flags, d *desk.Desk) error {
	if f.moderatorID == "" {
		return flagError("-view moderator requires -moderator")
	}
	return d.ShowModerator(ctx, f.moderatorID)
}

// runComments pinta el hilo una vez, o lo pollea a intervalo fijo con -watch.
func runComments(ctx context.Context, f *flags, cfg *config.Config, d *desk.Desk, client *moltstreet.Client, renderer *render.Console) error {
	if f.marketID == "" {
		return flagError("-view comments requires -market")
	}
	if !f.watch {
		return d.ShowComments(ctx, f.marketID)
	}

	market, err := client.GetMarket(ctx, f.marketID)
	if err != nil {
		renderer.RenderError("comments", err)
		return err
	}

	poller := desk.NewCommentsPoller(client, renderer, cfg.CommentsPoll())
	return poller.Run(ctx, ports.CommentsPage{Market: market})
}

func runBook(ctx context.Context, f *flags, d *desk.Desk) error {
	if f.marketID == "" {
		return flagError("-view book requires -market")
	}
	return d.ShowOrderBook(ctx, f.marketID)
}

func runTrades(ctx context.Context, f *flags, d *desk.Desk) error {
	return d.ShowTrades(ctx, ports.TradeQuery{
		MarketID: f.marketID,
		AgentID:  f.agentID,
		Limit:    50,
	})
}
