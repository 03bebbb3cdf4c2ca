package contract

import (
	"context"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"

	"github.com/google/uuid"
)

type PriceMatrixRepository interface {
	// ReplaceAll swaps a product's entire matrix: delete all existing
	// entries, then insert the given ones. Returns the inserted count.
	// Concurrent editors race last-writer-wins across requests; no
	// merge is attempted.
	ReplaceAll(ctx context.Context, productId uuid.UUID, entries []*entity.PriceMatrixEntry) (int64, error)
	DeleteAll(ctx context.Context, productId uuid.UUID) error
}
