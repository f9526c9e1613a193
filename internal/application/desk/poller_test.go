package desk_test

import (
	"context"
	"testing"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/application/desk"
	"github.com/alejandrodnm/moltdesk/internal/domain"
	"github.com/alejandrodnm/moltdesk/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsPoller_PollsAndStopsOnCancel(t *testing.T) {
	comments := &fakeComments{comments: []domain.Comment{
		{ID: "c-1", MarketID: "m-1", Content: "hola"},
	}}
	renderer := &captureRenderer{}
	p := desk.NewCommentsPoller(comments, renderer, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Run(ctx, ports.CommentsPage{Market: domain.Market{ID: "m-1"}})
	}()

	// Deja correr unos ticks
	time.Sleep(90 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("el poller no paró tras cancelar el contexto")
	}

	// Poll inmediato al arrancar + al menos un tick
	assert.GreaterOrEqual(t, comments.callCount(), 2)
	assert.GreaterOrEqual(t, renderer.commentRenders(), 2)

	// Tras el teardown no quedan polls huérfanos
	calls := comments.callCount()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, calls, comments.callCount())
}

func TestCommentsPoller_RendersThread(t *testing.T) {
	comments := &fakeComments{comments: []domain.Comment{
		{ID: "c-1", MarketID: "m-1", Content: "raíz"},
		{ID: "c-2", MarketID: "m-1", Content: "reply", ParentID: "c-1"},
	}}
	renderer := &captureRenderer{}
	p := desk.NewCommentsPoller(comments, renderer, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	require.NoError(t, p.Run(ctx, ports.CommentsPage{Market: domain.Market{ID: "m-1"}}))

	require.GreaterOrEqual(t, renderer.commentRenders(), 1)
	renderer.mu.Lock()
	got := renderer.comments[0]
	renderer.mu.Unlock()
	assert.Len(t, got.Comments, 2)
}
