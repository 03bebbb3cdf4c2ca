package implementation

import (
	"context"

	"github.com/kuldeepak/Kellerfensteronline/internal/entity"
	"github.com/kuldeepak/Kellerfensteronline/internal/mapper"
	"github.com/kuldeepak/Kellerfensteronline/internal/model"
	"github.com/kuldeepak/Kellerfensteronline/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceMatrixRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductMapper
}

func NewPriceMatrixRepository(db *gorm.DB) contract.PriceMatrixRepository {
	return &PriceMatrixRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductMapper(),
	}
}

// ReplaceAll is the delete-all-then-insert-all swap the matrix editor
// performs. Both statements run on the repository's handle, so inside a
// unit-of-work transaction the swap is atomic per request; across
// concurrent editors the last writer wins.
func (r *PriceMatrixRepositoryImpl) ReplaceAll(ctx context.Context, productId uuid.UUID, entries []*entity.PriceMatrixEntry) (int64, error) {
	db := r.db.WithContext(ctx)

	if err := db.Where("product_id = ?", productId).Delete(&model.PriceMatrix{}).Error; err != nil {
		return 0, err
	}

	if len(entries) == 0 {
		return 0, nil
	}

	models := r.mapper.MatrixToModels(entries)
	for _, m := range models {
		m.ProductId = productId
	}

	result := db.Create(&models)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *PriceMatrixRepositoryImpl) DeleteAll(ctx context.Context, productId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productId).Delete(&model.PriceMatrix{}).Error
}
