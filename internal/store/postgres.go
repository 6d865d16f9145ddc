package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/linklist/internal/linklist"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore is a PostgreSQL implementation of linklist.Repository.
// The unique index on lists.slug is the authoritative uniqueness guarantee;
// handler-level existence checks only produce friendlier errors.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed repository.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) CreateList(ctx context.Context, list *linklist.List) error {
	query := `
		INSERT INTO lists (title, description, slug)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := p.pool.QueryRow(ctx, query, list.Title, list.Description, list.Slug).
		Scan(&list.ID, &list.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return linklist.ErrSlugTaken
		}

		return err
	}

	return nil
}

func (p *PostgresStore) Lists(ctx context.Context) ([]linklist.List, error) {
	query := `
		SELECT id, title, description, slug, created_at
		FROM lists
		ORDER BY created_at DESC, id DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []linklist.List{}

	for rows.Next() {
		var list linklist.List
		if err := rows.Scan(&list.ID, &list.Title, &list.Description, &list.Slug, &list.CreatedAt); err != nil {
			return nil, err
		}

		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (p *PostgresStore) ListByID(ctx context.Context, id int64) (*linklist.List, error) {
	query := `
		SELECT id, title, description, slug, created_at
		FROM lists
		WHERE id = $1
	`

	return p.scanList(p.pool.QueryRow(ctx, query, id))
}

func (p *PostgresStore) ListBySlug(ctx context.Context, slug string) (*linklist.List, error) {
	query := `
		SELECT id, title, description, slug, created_at
		FROM lists
		WHERE slug = $1
	`

	return p.scanList(p.pool.QueryRow(ctx, query, slug))
}

// DeleteList removes dependent URLs before the list row itself so the
// foreign key constraint is never violated mid-delete.
func (p *PostgresStore) DeleteList(ctx context.Context, id int64) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM urls WHERE list_id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (p *PostgresStore) CreateURL(ctx context.Context, url *linklist.URL) error {
	query := `
		INSERT INTO urls (url, title, description, image, list_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := p.pool.QueryRow(ctx, query,
		url.URL, url.Title, url.Description, url.Image, url.ListID,
	).Scan(&url.ID, &url.CreatedAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return linklist.ErrNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresStore) URLs(ctx context.Context, listID int64) ([]linklist.URL, error) {
	query := `
		SELECT id, url, title, description, image, list_id, created_at
		FROM urls
		WHERE list_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := p.pool.Query(ctx, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := []linklist.URL{}

	for rows.Next() {
		var u linklist.URL
		if err := rows.Scan(&u.ID, &u.URL, &u.Title, &u.Description, &u.Image, &u.ListID, &u.CreatedAt); err != nil {
			return nil, err
		}

		urls = append(urls, u)
	}

	return urls, rows.Err()
}

func (p *PostgresStore) DeleteURL(ctx context.Context, listID, urlID int64) error {
	// Scoped to the list so a URL can only be deleted through its own list.
	_, err := p.pool.Exec(ctx, `DELETE FROM urls WHERE id = $1 AND list_id = $2`, urlID, listID)

	return err
}

func (p *PostgresStore) scanList(row pgx.Row) (*linklist.List, error) {
	var list linklist.List

	err := row.Scan(&list.ID, &list.Title, &list.Description, &list.Slug, &list.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, linklist.ErrNotFound
		}

		return nil, err
	}

	return &list, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Compile-time check.
var _ linklist.Repository = (*PostgresStore)(nil)
