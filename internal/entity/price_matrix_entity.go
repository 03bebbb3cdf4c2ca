package entity

import "github.com/google/uuid"

// PriceMatrixEntry is one width/height bracket of a product's price
// matrix. Entries need not be exhaustive or disjoint; lookup order
// resolves overlaps.
type PriceMatrixEntry struct {
	Id        uuid.UUID
	ProductId uuid.UUID
	WidthMin  int
	WidthMax  int
	HeightMin int
	HeightMax int
	Price     float64
}
