package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/adapters/moltstreet"
)

// runFollow streamea los eventos en vivo de un mercado por websocket hasta
// que el contexto se cancele.
func runFollow(ctx context.Context, f *flags, client *moltstreet.Client) error {
	if f.marketID == "" {
		return flagError("-follow requires -market")
	}

	market, err := client.GetMarket(ctx, f.marketID)
	if err != nil {
		return err
	}
	fmt.Printf("Siguiendo: %s\n", market.Question)
	fmt.Printf("  YES %.2f | volumen $%.0f\n\n", market.YesPrice, market.Volume)

	stream, err := client.SubscribeMarket(ctx, f.marketID)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stream.Close(closeCtx); err != nil {
			slog.Debug("stream close", "err", err)
		}
	}()

	for {
		ev, err := stream.ReadEvent(ctx)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("\nStream cerrado.")
				return nil
			}
			return err
		}
		printEvent(ev)
	}
}

func printEvent(ev *moltstreet.MarketEvent) {
	ts := time.Now().Format("15:04:05")
	switch ev.Type {
	case moltstreet.EventOrder:
		fmt.Printf("[%s] ORDER  %s %s @ %s\n", ts, ev.Order.Side, ev.Order.Size, ev.Order.Price)
	case moltstreet.EventTrade:
		fmt.Printf("[%s] TRADE  %s @ %s\n", ts, ev.Trade.Size, ev.Trade.Price)
	case moltstreet.EventMarket:
		fmt.Printf("[%s] PRICE  YES %s | NO %s | vol $%s\n",
			ts, ev.Market.YesPrice, ev.Market.NoPrice, ev.Market.Volume)
	}
}
