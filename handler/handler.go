package handler

import (
	"context"

	"posts/domain"
)

// PostStore is the persistence the post endpoints rely on.
type PostStore interface {
	Create(ctx context.Context, title, body string) (*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, id int64, title, body string) (*domain.Post, error)
	List(ctx context.Context, f domain.PostFilter) ([]domain.Post, error)
}

type Handler struct {
	Posts PostStore
}
