package dto

import "github.com/kuldeepak/Kellerfensteronline/pkg/configurator"

// AdminProductResponse is the full definition served to the admin UI:
// unlike the storefront config it includes the price matrix.
type AdminProductResponse struct {
	Product configurator.ProductInfo   `json:"product"`
	Steps   []configurator.Step        `json:"steps"`
	Matrix  []configurator.MatrixEntry `json:"matrix"`
}

type MatrixEntryDTO struct {
	WidthMin  int     `json:"widthMin" validate:"min=0"`
	WidthMax  int     `json:"widthMax" validate:"gtefield=WidthMin"`
	HeightMin int     `json:"heightMin" validate:"min=0"`
	HeightMax int     `json:"heightMax" validate:"gtefield=HeightMin"`
	Price     float64 `json:"price"`
}

type ReplaceMatrixRequest struct {
	Entries []MatrixEntryDTO `json:"entries" validate:"required,dive"`
}

type ReplaceMatrixResponse struct {
	Count int64 `json:"count"`
}
