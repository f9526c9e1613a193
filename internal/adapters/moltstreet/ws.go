package moltstreet

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsHandshakeTimeout = 30 * time.Second
	wsCloseTimeout     = 5 * time.Second
	wsWriteTimeout     = 10 * time.Second
	wsPingInterval     = 50 * time.Second
)

// Tipos de evento que publica el canal market:{id}.
const (
	EventOrder  = "order"
	EventTrade  = "trade"
	EventMarket = "market"
)

// MarketEvent es un mensaje del canal en vivo de un mercado. El envelope
// es {"type": ..., "data": {...}}; solo uno de los payloads viene poblado.
type MarketEvent struct {
	Type   string
	Order  *OrderEvent
	Trade  *TradeEvent
	Market *PriceEvent
}

// OrderEvent anuncia una orden nueva en el libro.
type OrderEvent struct {
	ID    string      `json:"id"`
	Side  string      `json:"side"`
	Price json.Number `json:"price"`
	Size  json.Number `json:"size"`
}

// TradeEvent anuncia un cruce ejecutado.
type TradeEvent struct {
	ID    string      `json:"id"`
	Price json.Number `json:"price"`
	Size  json.Number `json:"size"`
}

// PriceEvent anuncia precios y volumen nuevos tras un cruce.
type PriceEvent struct {
	YesPrice json.Number `json:"yes_price"`
	NoPrice  json.Number `json:"no_price"`
	Volume   json.Number `json:"volume"`
}

// MarketStream es una suscripción websocket al canal de un mercado.
type MarketStream struct {
	conn     *websocket.Conn
	stopPing chan struct{}
}

// SubscribeMarket abre un stream al canal market:{id} del servidor.
// El caller debe cerrar el stream con Close.
func (c *Client) SubscribeMarket(ctx context.Context, marketID string) (*MarketStream, error) {
	wsURL, err := c.marketChannelURL(marketID)
	if err != nil {
		return nil, fmt.Errorf("moltstreet.SubscribeMarket: %w", err)
	}

	dialer := websocket.Dialer{HandshakeTimeout: wsHandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, wsURL, http.Header{})
	if err != nil {
		return nil, fmt.Errorf("moltstreet.SubscribeMarket: dial %s: %w", wsURL, err)
	}
	slog.Debug("websocket conectado", "market_id", marketID, "status", resp.Status)

	s := &MarketStream{
		conn:     conn,
		stopPing: make(chan struct{}),
	}
	go s.pingLoop()

	return s, nil
}

// marketChannelURL traduce el base URL HTTP al endpoint ws del canal.
func (c *Client) marketChannelURL(marketID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws/market:" + marketID
	return u.String(), nil
}

func (s *MarketStream) pingLoop() {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopPing:
			return
		case <-ticker.C:
			deadline := time.Now().Add(wsWriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				slog.Warn("websocket ping falló", "error", err)
				return
			}
		}
	}
}

// ReadEvent bloquea hasta el siguiente evento del canal o la cancelación
// del contexto.
func (s *MarketStream) ReadEvent(ctx context.Context) (*MarketEvent, error) {
	type result struct {
		raw []byte
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		_, raw, err := s.conn.ReadMessage()
		resultCh <- result{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		// Despierta al reader bloqueado; la conexión queda inutilizable.
		_ = s.conn.SetReadDeadline(time.Now())
		return nil, fmt.Errorf("reading event: %w", ctx.Err())
	case r := <-resultCh:
		if r.err != nil {
			return nil, fmt.Errorf("couldn't read event: %w", r.err)
		}
		return parseMarketEvent(r.raw)
	}
}

// Close cierra el stream enviando un close frame dentro del deadline
// del contexto.
func (s *MarketStream) Close(ctx context.Context) error {
	close(s.stopPing)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(wsCloseTimeout)
	}

	err := s.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		deadline,
	)
	if err != nil {
		slog.Warn("websocket close frame falló", "error", err)
	}

	return s.conn.Close()
}

func parseMarketEvent(raw []byte) (*MarketEvent, error) {
	var envelope struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("couldn't parse event envelope: %w", err)
	}

	ev := &MarketEvent{Type: envelope.Type}
	switch envelope.Type {
	case EventOrder:
		ev.Order = &OrderEvent{}
		if err := json.Unmarshal(envelope.Data, ev.Order); err != nil {
			return nil, fmt.Errorf("couldn't parse order event: %w", err)
		}
	case EventTrade:
		ev.Trade = &TradeEvent{}
		if err := json.Unmarshal(envelope.Data, ev.Trade); err != nil {
			return nil, fmt.Errorf("couldn't parse trade event: %w", err)
		}
	case EventMarket:
		ev.Market = &PriceEvent{}
		if err := json.Unmarshal(envelope.Data, ev.Market); err != nil {
			return nil, fmt.Errorf("couldn't parse market event: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown event type %q", envelope.Type)
	}
	return ev, nil
}
