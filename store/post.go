// Package store persists posts in a SQL database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"posts/domain"
)

type PostStore struct {
	db *sql.DB
	// contains is the dialect's case-sensitive substring test.
	contains string
}

// NewPostStore wraps an open database. driverName selects the SQL dialect
// and must be "sqlite" or "pgx".
func NewPostStore(db *sql.DB, driverName string) (*PostStore, error) {
	s := &PostStore{db: db}
	switch driverName {
	case "sqlite", "":
		s.contains = "instr(%s, $%d) > 0"
	case "pgx":
		s.contains = "strpos(%s, $%d) > 0"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driverName)
	}
	return s, nil
}

func (s *PostStore) Create(ctx context.Context, title, body string) (*domain.Post, error) {
	var p domain.Post
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx,
			"INSERT INTO posts (title, body) VALUES ($1, $2) RETURNING id, title, body",
			title, body,
		).Scan(&p.ID, &p.Title, &p.Body)
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

func (s *PostStore) Get(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := s.db.QueryRowContext(ctx, "SELECT id, title, body FROM posts WHERE id = $1", id).
		Scan(&p.ID, &p.Title, &p.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &p, nil
}

// Update replaces title and body of post id. It returns domain.ErrPostNotFound
// when no such post exists.
func (s *PostStore) Update(ctx context.Context, id int64, title, body string) (*domain.Post, error) {
	var p domain.Post
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx,
			"UPDATE posts SET title = $1, body = $2 WHERE id = $3 RETURNING id, title, body",
			title, body, id,
		).Scan(&p.ID, &p.Title, &p.Body)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post %d: %w", id, err)
	}
	return &p, nil
}

// List returns posts in creation order. The filter only applies when both
// substrings are given; a lone title or body substring is ignored.
func (s *PostStore) List(ctx context.Context, f domain.PostFilter) ([]domain.Post, error) {
	query, args := s.listQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) listQuery(f domain.PostFilter) (string, []any) {
	query := "SELECT id, title, body FROM posts"
	var args []any
	if f.Active() {
		query += " WHERE " + fmt.Sprintf(s.contains, "title", 1) +
			" AND " + fmt.Sprintf(s.contains, "body", 2)
		args = append(args, f.TitleLike, f.BodyLike)
	}
	return query + " ORDER BY id", args
}

// withTx commits when fn succeeds and rolls back otherwise.
func (s *PostStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
