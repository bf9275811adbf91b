package product

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/pagination"
)

type ListProducts struct {
	repo  catalog.ProductRepository
	pager pagination.Service
}

func NewListProducts(
	repo catalog.ProductRepository,
	pager pagination.Service,
) *ListProducts {
	return &ListProducts{
		repo:  repo,
		pager: pager,
	}
}

// Execute returns one page when page is valid and the whole catalog otherwise.
func (uc *ListProducts) Execute(
	ctx context.Context,
	page string,
	limit string,
) ([]models.Product, error) {

	w, ok := uc.pager.Normalize(page, limit)
	if !ok {
		return uc.repo.ListProducts(ctx)
	}
	if w.Limit == 0 {
		return []models.Product{}, nil
	}
	return uc.repo.ListProductsPage(ctx, w.Offset, w.Limit)
}
