package inventory

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrInvalidProduct = errors.New("product must have a name and price")

// Store holds the product collection in insertion order. Implementations
// return copies; callers never share a map with the collection.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Get(ctx context.Context, id int64) (Product, bool, error)
	Update(ctx context.Context, id int64, patch Product) (Product, bool, error)
	Delete(ctx context.Context, id int64) (Product, bool, error)
	Len(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}
