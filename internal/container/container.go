// Package container wires the application together. Each *Package function
// registers one concern's providers on a samber/do injector; binaries compose
// only the packages they need.
package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/linklist/internal/analytics"
	analyticsstore "github.com/serroba/linklist/internal/analytics/store"
	"github.com/serroba/linklist/internal/handlers"
	"github.com/serroba/linklist/internal/health"
	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/messaging"
	"github.com/serroba/linklist/internal/metadata"
	"github.com/serroba/linklist/internal/middleware"
	"github.com/serroba/linklist/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options holds all runtime configuration, populated by humacli from flags
// and environment variables.
type Options struct {
	Port           int    `default:"8888"           help:"Port to listen on"                                  short:"p"`
	DatabaseURL    string `default:""               help:"Postgres connection URL; empty runs in-memory"      short:"d"`
	RedisAddr      string `default:"localhost:6379" help:"Redis server address"                               short:"r"`
	CacheTTL       int    `default:"60"             help:"List cache TTL in seconds; 0 disables the cache"`
	LogFormat      string `default:"console"        help:"Log output format (console or json)"`
	LogLevel       string `default:"info"           help:"Minimum log level"`
	MetadataMode   string `default:"stub"           help:"Metadata extraction mode (stub or live)"`
	ExtractTimeout int    `default:"5"              help:"Metadata extraction timeout in seconds"`
}

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		options := do.MustInvoke[*Options](i)

		level, err := zapcore.ParseLevel(options.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}

		var config zap.Config
		if options.LogFormat == "json" {
			config = zap.NewProductionConfig()
		} else {
			config = zap.NewDevelopmentConfig()
		}

		config.Level = zap.NewAtomicLevelAt(level)

		return config.Build()
	})
}

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		options := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{
			Addr: options.RedisAddr,
		}), nil
	})
}

// PostgresPackage provides the pgx pool, running pending migrations first.
func PostgresPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*pgxpool.Pool, error) {
		options := do.MustInvoke[*Options](i)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := store.Migrate(ctx, options.DatabaseURL); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}

		return pgxpool.New(ctx, options.DatabaseURL)
	})
}

// RepositoryPackage provides the list repository: Postgres when a database
// URL is configured, in-memory otherwise, with an optional Redis read-through
// cache on top.
func RepositoryPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (linklist.Repository, error) {
		options := do.MustInvoke[*Options](i)

		var repo linklist.Repository
		if options.DatabaseURL != "" {
			repo = store.NewPostgresStore(do.MustInvoke[*pgxpool.Pool](i))
		} else {
			repo = store.NewMemoryStore()
		}

		if options.CacheTTL > 0 && options.RedisAddr != "" {
			repo = store.NewRedisCacheRepository(
				repo,
				do.MustInvoke[*redis.Client](i),
				time.Duration(options.CacheTTL)*time.Second,
			)
		}

		return repo, nil
	})
}

// MetadataPackage provides the metadata extractor.
func MetadataPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (metadata.Extractor, error) {
		options := do.MustInvoke[*Options](i)

		if options.MetadataMode == "live" {
			client := &http.Client{Timeout: time.Duration(options.ExtractTimeout) * time.Second}

			return metadata.NewHTMLExtractor(client, do.MustInvoke[*zap.Logger](i)), nil
		}

		return metadata.NewStub(), nil
	})
}

// PublisherGroupPackage provides the event publisher over Redis streams,
// plus the typed publish functions the handlers consume.
func PublisherGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
			Client: do.MustInvoke[*redis.Client](i),
		}, watermill.NopLogger{})
		if err != nil {
			return nil, fmt.Errorf("creating publisher: %w", err)
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.ListCreatedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ListCreatedEvent](group.Publisher(), analytics.TopicListCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.ListDeletedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ListDeletedEvent](group.Publisher(), analytics.TopicListDeleted), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.URLAddedEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.URLAddedEvent](group.Publisher(), analytics.TopicURLAdded), nil
	})
}

// ConsumerGroupPackage provides the analytics consumer group reading from
// Redis streams and persisting stats back into Redis.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		redisClient := do.MustInvoke[*redis.Client](i)

		subscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        redisClient,
			ConsumerGroup: "analytics",
		}, watermill.NopLogger{})
		if err != nil {
			return nil, fmt.Errorf("creating subscriber: %w", err)
		}

		group := messaging.NewConsumerGroup(subscriber, logger)
		analytics.RegisterConsumers(group, subscriber, analyticsstore.NewRedis(redisClient), logger)

		return group, nil
	})
}

// HTTPPackage provides the router and the API with all routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		options := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		repo := do.MustInvoke[linklist.Repository](i)

		api := humachi.New(do.MustInvoke[*chi.Mux](i), huma.DefaultConfig("Link Lists", "1.0.0"))
		api.UseMiddleware(middleware.RequestMeta(api))

		listHandler := handlers.NewListHandler(
			repo,
			do.MustInvoke[messaging.Publish[analytics.ListCreatedEvent]](i),
			do.MustInvoke[messaging.Publish[analytics.ListDeletedEvent]](i),
			logger,
		)
		urlHandler := handlers.NewURLHandler(
			repo,
			do.MustInvoke[metadata.Extractor](i),
			time.Duration(options.ExtractTimeout)*time.Second,
			do.MustInvoke[messaging.Publish[analytics.URLAddedEvent]](i),
			logger,
		)

		handlers.RegisterRoutes(api, listHandler, urlHandler)
		health.RegisterRoutes(api, healthHandler(i, options))

		return api, nil
	})
}

func healthHandler(i *do.Injector, options *Options) *health.Handler {
	var database health.Checker = health.AlwaysHealthy{}
	if options.DatabaseURL != "" {
		database = health.NewPostgresChecker(do.MustInvoke[*pgxpool.Pool](i))
	}

	var redisChecker health.Checker = health.AlwaysHealthy{}
	if options.RedisAddr != "" {
		redisChecker = health.NewRedisChecker(do.MustInvoke[*redis.Client](i))
	}

	return health.NewHandler(database, redisChecker)
}
