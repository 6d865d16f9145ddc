package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Checker defines the interface for checking a dependency's health.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.Client to the Checker interface.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// PostgresChecker adapts pgxpool.Pool to the Checker interface.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

// NewPostgresChecker creates a new Postgres health checker.
func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

// Ping checks Postgres connectivity.
func (p *PostgresChecker) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// AlwaysHealthy satisfies Checker for deployments that run without the
// optional backing service.
type AlwaysHealthy struct{}

func (AlwaysHealthy) Ping(_ context.Context) error { return nil }

// Handler handles health check operations.
type Handler struct {
	database Checker
	redis    Checker
}

// NewHandler creates a new health handler.
func NewHandler(database, redis Checker) *Handler {
	return &Handler{database: database, redis: redis}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
		Redis    string `json:"redis"`
	}
}

// Check performs a health check of the application and its dependencies.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"

	if err := h.database.Ping(ctx); err != nil {
		resp.Body.Database = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Database = "healthy"
	}

	if err := h.redis.Ping(ctx); err != nil {
		resp.Body.Redis = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Redis = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
