package moltstreet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "http://localhost:8000"

	// Límites conservadores por debajo del rate limit por agente que
	// aplica el servidor (60 req/min por API key).
	readRatePerSec  = 8
	writeRatePerSec = 2

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond
)

// Credentials son las credenciales del desk. Se pasan al cliente en
// construcción de forma explícita; no hay estado ambiente de sesión.
type Credentials struct {
	// APIKey es la key del agente ("mst_..."), enviada como Bearer token.
	// Vacía para navegación read-only.
	APIKey string
	// AdminKey habilita los endpoints de /admin vía header X-Admin-Key.
	AdminKey string
}

// Client es el HTTP client de la plataforma con rate limiting y retries.
type Client struct {
	http         *http.Client
	baseURL      string
	creds        Credentials
	readLimiter  *rate.Limiter
	writeLimiter *rate.Limiter
}

// NewClient crea un Client contra el base URL dado. Si baseURL está vacío
// usa el default de desarrollo local.
func NewClient(baseURL string, creds Credentials) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		http:         &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		creds:        creds,
		readLimiter:  rate.NewLimiter(readRatePerSec, 16),
		writeLimiter: rate.NewLimiter(writeRatePerSec, 4),
	}
}

// get hace un GET con rate limiting y retries.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doWithRetry(ctx, c.readLimiter, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return c.http.Do(req)
	}, out)
}

// post hace un POST JSON con rate limiting y retries.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	return c.doWithRetry(ctx, c.writeLimiter, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		c.setHeaders(req)
		return c.http.Do(req)
	}, out)
}

// del hace un DELETE con rate limiting y retries.
func (c *Client) del(ctx context.Context, path string, out any) error {
	return c.doWithRetry(ctx, c.writeLimiter, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)
		return c.http.Do(req)
	}, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.creds.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.APIKey)
	}
	if c.creds.AdminKey != "" {
		req.Header.Set("X-Admin-Key", c.creds.AdminKey)
	}
}

// doWithRetry ejecuta la request con backoff exponencial y jitter en
// 429 y 5xx. Los 4xx no se reintentan: llevan el detail del servidor.
func (c *Client) doWithRetry(ctx context.Context, limiter *rate.Limiter, fn func() (*http.Response, error), out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		resp, err := fn()
		if err != nil {
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			slog.Warn("rate limited by API", "attempt", attempt+1)
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			if attempt == maxRetries {
				return fmt.Errorf("server error %d after %d retries", resp.StatusCode, maxRetries)
			}
			c.sleep(ctx, attempt)
			continue
		}

		if resp.StatusCode >= 400 {
			detail := readErrorDetail(resp.Body)
			resp.Body.Close()
			if detail != "" {
				return fmt.Errorf("api error %d: %s", resp.StatusCode, detail)
			}
			return fmt.Errorf("api error %d", resp.StatusCode)
		}

		err = decodeBody(resp.Body, out)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("unreachable")
}

// sleep espera con backoff exponencial + jitter, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(float64(baseRetryWait) * math.Pow(2, float64(attempt)))
	wait += time.Duration(rand.Int63n(int64(baseRetryWait)))
	select {
	case <-ctx.Done():
	case <-time.After(wait):
	}
}

func decodeBody(body io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, body)
		return nil
	}
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorDetail extrae el campo "detail" de un error FastAPI-style.
func readErrorDetail(body io.Reader) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&e); err != nil {
		return ""
	}
	return e.Detail
}
