package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/moltdesk/config"
	"github.com/alejandrodnm/moltdesk/internal/adapters/moltstreet"
	"github.com/alejandrodnm/moltdesk/internal/adapters/render"
	"github.com/alejandrodnm/moltdesk/internal/adapters/storage"
	"github.com/alejandrodnm/moltdesk/internal/application/desk"
	"github.com/alejandrodnm/moltdesk/internal/listview"
	"github.com/google/uuid"
)

// flags agrupa todos los flags del CLI.
type flags struct {
	configPath string
	view       string
	watch      bool
	follow     bool
	compact    bool
	verbose    bool
	logFormat  string

	// Selectores
	marketID    string
	agentID     string
	moderatorID string

	// Controles de lista
	search   string
	category string
	status   string
	live     bool
	trending bool
	sortKey  string
	dir      string
	page     int
	perPage  int

	// Acciones
	register string
	role     string
	side     string
	price    float64
	size     float64
	cancel   string
	resolve  string
	evidence string
	comment  string
	yes      bool
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("moltdesk", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "config/config.yaml", "path to config file")
	fs.StringVar(&f.view, "view", "markets", "view: markets|leaderboard|dashboard|moderator|admin|comments|book|trades")
	fs.BoolVar(&f.watch, "watch", false, "refresh the markets view on an interval")
	fs.BoolVar(&f.follow, "follow", false, "stream live updates for -market over websocket")
	fs.BoolVar(&f.compact, "compact", false, "compact output (no tables)")
	fs.BoolVar(&f.verbose, "verbose", false, "set log level to debug")
	fs.StringVar(&f.logFormat, "format", "", "log format: text|json (overrides config)")

	fs.StringVar(&f.marketID, "market", "", "market ID (comments/book/resolve/follow/trade)")
	fs.StringVar(&f.agentID, "agent", "", "agent ID (dashboard/trades/trade)")
	fs.StringVar(&f.moderatorID, "moderator", "", "moderator agent ID")

	fs.StringVar(&f.search, "search", "", "free text search over question and description")
	fs.StringVar(&f.category, "category", "", "filter by category")
	fs.StringVar(&f.status, "status", "", "filter by status: open|closed|resolved")
	fs.BoolVar(&f.live, "live", false, "only live markets (open and before deadline)")
	fs.BoolVar(&f.trending, "trending", false, "top 10 by volume (disables sort)")
	fs.StringVar(&f.sortKey, "sort", "", "sort key (markets: volume|newest|ending|probability; agents: balance|reputation|profit|name)")
	fs.StringVar(&f.dir, "dir", "", "sort direction: asc|desc (default: key's own)")
	fs.IntVar(&f.page, "page", 1, "page number (1-indexed)")
	fs.IntVar(&f.perPage, "per-page", 0, "page size: 10|25|50")

	fs.StringVar(&f.register, "register", "", "register a new agent with this name")
	fs.StringVar(&f.role, "role", "", "agent role: trader|moderator (-register defaults to trader; filters the leaderboard)")
	fs.StringVar(&f.side, "side", "", "order side: YES|NO (places an order with -price/-size)")
	fs.Float64Var(&f.price, "price", 0, "order price in (0, 1)")
	fs.Float64Var(&f.size, "size", 0, "order size in shares")
	fs.StringVar(&f.cancel, "cancel", "", "cancel the open order with this ID")
	fs.StringVar(&f.resolve, "resolve", "", "resolve -market with this outcome: YES|NO")
	fs.StringVar(&f.evidence, "evidence", "", "resolution evidence (optional)")
	fs.StringVar(&f.comment, "comment", "", "post this comment on -market")
	fs.BoolVar(&f.yes, "yes", false, "skip confirmation prompts")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// El config file es opcional: sin él se arranca con env y defaults.
	configPath := f.configPath
	if _, err := os.Stat(configPath); err != nil {
		configPath = ""
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", f.configPath)
		os.Exit(1)
	}

	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	setupLogger(cfg.Log)

	if err := validateIDs(f); err != nil {
		slog.Error("invalid flag", "err", err)
		os.Exit(1)
	}

	client := moltstreet.NewClient(cfg.API.BaseURL, moltstreet.Credentials{
		APIKey:   cfg.API.APIKey,
		AdminKey: cfg.API.AdminKey,
	})

	store, err := storage.NewSQLiteStore(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	renderer := render.NewConsole(f.compact || cfg.UI.Compact)

	d := desk.New(desk.Config{
		PerPage:       cfg.UI.PerPage,
		WatchInterval: cfg.WatchInterval(),
		CommentsPoll:  cfg.CommentsPoll(),
	}, desk.Deps{
		Markets:   client,
		Agents:    client,
		Trades:    client,
		Orders:    client,
		Comments:  client,
		Moderator: client,
		Admin:     client,
		Store:     store,
		Renderer:  renderer,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := dispatch(ctx, f, cfg, d, client, renderer); err != nil {
		slog.Error("moltdesk exited with error", "err", err)
		os.Exit(1)
	}
}

// dispatch elige el modo según los flags: las acciones tienen prioridad
// sobre las vistas.
func dispatch(ctx context.Context, f *flags, cfg *config.Config, d *desk.Desk, client *moltstreet.Client, renderer *render.Console) error {
	switch {
	case f.register != "":
		return runRegister(ctx, f, client)
	case f.side != "":
		return runTrade(ctx, f, d)
	case f.cancel != "":
		return d.CancelOrder(ctx, f.cancel)
	case f.resolve != "":
		return runResolve(ctx, f, d)
	case f.comment != "":
		return runComment(ctx, f, client)
	case f.follow:
		return runFollow(ctx, f, client)
	}

	switch f.view {
	case "markets":
		opts := marketsOptions(f)
		if f.watch {
			return d.WatchMarkets(ctx, opts)
		}
		return d.ShowMarkets(ctx, opts)
	case "leaderboard":
		return d.ShowLeaderboard(ctx, leaderboardOptions(f))
	case "dashboard":
		return runDashboard(ctx, f, d)
	case "moderator":
		return runModerator(ctx, f, d)
	case "admin":
		return d.ShowAdmin(ctx)
	case "comments":
		return runComments(ctx, f, cfg, d, client, renderer)
	case "book":
		return runBook(ctx, f, d)
	case "trades":
		return runTrades(ctx, f, d)
	default:
		return flagError("unknown view %q", f.view)
	}
}

func marketsOptions(f *flags) desk.MarketsOptions {
	return desk.MarketsOptions{
		Search:   f.search,
		Category: f.category,
		Status:   f.status,
		Live:     f.live,
		Trending: f.trending,
		SortKey:  f.sortKey,
		Dir:      listview.Direction(f.dir),
		Page:     f.page,
		PerPage:  f.perPage,
	}
}

func leaderboardOptions(f *flags) desk.LeaderboardOptions {
	return desk.LeaderboardOptions{
		Role:    f.role,
		Search:  f.search,
		SortKey: f.sortKey,
		Dir:     listview.Direction(f.dir),
		Page:    f.page,
		PerPage: f.perPage,
	}
}

// validateIDs comprueba que los IDs pasados por flag son UUIDs antes de
// gastar una request en el servidor.
func validateIDs(f *flags) error {
	for name, id := range map[string]string{
		"-market":    f.marketID,
		"-agent":     f.agentID,
		"-moderator": f.moderatorID,
		"-cancel":    f.cancel,
	} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return flagError("%s %q is not a valid UUID", name, id)
		}
	}
	return nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
