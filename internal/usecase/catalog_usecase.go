// Package usecase defines the application-layer contracts of the generator.
package usecase

import "github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"

// CatalogUsecase builds the static product catalog.
type CatalogUsecase interface {
	// Build assigns sequential ids to the fixed catalog and returns it.
	// Calling it twice in one run yields byte-identical catalogs. An empty
	// catalog is a fatal precondition failure.
	Build() ([]*entity.Product, error)
}
