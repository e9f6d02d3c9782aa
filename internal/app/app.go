// Package app is the composition root: one explicit object owning every
// store and orchestrator, constructed at startup and passed to consumers.
// Nothing in the module reaches for ambient singletons.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"shelfdesk/internal/apiclient"
	"shelfdesk/internal/catalog"
	"shelfdesk/internal/covers"
	"shelfdesk/internal/notify"
	"shelfdesk/internal/store"
	"shelfdesk/internal/token"
	"shelfdesk/pkg/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Config holds runtime configuration for the sync layer.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration

	// RedisAddr enables the Redis token store and notification stream
	// when set; otherwise both stay in process.
	RedisAddr     string
	RedisPassword string
	TokenKey      string
	TokenTTL      time.Duration
	NotifyStream  string

	// MinioEndpoint enables cover uploads when set.
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	Logger *slog.Logger
}

// App wires the per-entity stores and orchestrators to one API client, one
// token store and one notification sink.
type App struct {
	Books      *catalog.Books
	Categories *catalog.Categories
	Publishers *catalog.Publishers
	Users      *catalog.Users

	Tokens   token.Store
	Notifier notify.Notifier
	Covers   *covers.Uploader
}

// New constructs the application.
func New(cfg Config) (*App, error) {
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("api base URL required")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	var tokens token.Store
	var sink notify.Notifier
	if cfg.RedisAddr != "" {
		key := cfg.TokenKey
		if key == "" {
			key = "shelfdesk:token"
		}
		ttl := cfg.TokenTTL
		if ttl <= 0 {
			ttl = defaultTokenTTL
		}
		tokens = token.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, key, ttl)
		stream := cfg.NotifyStream
		if stream == "" {
			stream = "shelfdesk:notifications"
		}
		sink = notify.Multi{
			notify.NewLogNotifier(log),
			notify.NewRedisNotifier(cfg.RedisAddr, cfg.RedisPassword, stream, log),
		}
	} else {
		tokens = token.NewMemoryStore()
		sink = notify.NewLogNotifier(log)
	}

	opts := []apiclient.Option{apiclient.WithTokenSource(tokens.Token)}
	if cfg.RequestTimeout > 0 {
		opts = append(opts, apiclient.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}))
	}
	client := apiclient.NewClient(cfg.APIBaseURL, opts...)

	a := &App{
		Books:      catalog.NewBooks(client, store.New[domain.Book](), sink, log),
		Categories: catalog.NewCategories(client, store.New[domain.Category](), sink, log),
		Publishers: catalog.NewPublishers(client, store.New[domain.Publisher](), sink, log),
		Users:      catalog.NewUsers(client, store.New[domain.User](), sink, log),
		Tokens:     tokens,
		Notifier:   sink,
	}

	if cfg.MinioEndpoint != "" {
		objStore, err := covers.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			return nil, fmt.Errorf("init cover storage: %w", err)
		}
		a.Covers = covers.NewUploader(objStore, 0)
	}
	return a, nil
}

// RefreshAll fetches the four collections concurrently. Each fetch drives
// its own store's lifecycle; a failure in one does not stop the others.
func (a *App) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { _, err := a.Books.List(ctx); return err })
	g.Go(func() error { _, err := a.Categories.List(ctx); return err })
	g.Go(func() error { _, err := a.Publishers.List(ctx); return err })
	g.Go(func() error { _, err := a.Users.List(ctx); return err })
	return g.Wait()
}
