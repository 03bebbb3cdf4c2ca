package specification

import "gorm.io/gorm"

// ByShopifyProductID filters products by their external catalog id.
// Incoming product ids may be either form; the store resolves both.
type ByShopifyProductID struct {
	ID string
}

func (s ByShopifyProductID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shopify_product_id = ?", s.ID)
}

// WithConfiguration preloads the full definition needed by the flow
// engine: steps in display order, options in option order, and the
// price matrix in its stored iteration order.
type WithConfiguration struct{}

func (s WithConfiguration) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Preload("Steps.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order ASC")
		}).
		Preload("PriceMatrices", func(db *gorm.DB) *gorm.DB {
			return db.Order("width_min ASC, height_min ASC")
		})
}
