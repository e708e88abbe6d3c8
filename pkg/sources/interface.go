package sources

import (
	"context"

	"github.com/kerbaras/rickmorty/pkg/data"
)

type Source interface {
	Characters(ctx context.Context, query data.Query) (*data.Page, error)
}

// Cache stores raw response bodies keyed by data.Query.Key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, body []byte) error
}
