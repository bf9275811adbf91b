package product

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

const MessageNotFound = "product not found"

type ShowProduct struct {
	repo catalog.ProductRepository
}

func NewShowProduct(repo catalog.ProductRepository) *ShowProduct {
	return &ShowProduct{repo: repo}
}

func (uc *ShowProduct) Execute(
	ctx context.Context,
	id uint,
) (*models.Product, error) {

	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(MessageNotFound)
		}
		return nil, err
	}
	return p, nil
}
