package product

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/metrics"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/validators"
)

type CreateProductInput struct {
	Title       string                   `json:"title" validate:"required,max=255"`
	Description string                   `json:"description" validate:"required"`
	Price       validators.NumericString `json:"price" validate:"omitempty,decimal"`
	Color       *string                  `json:"color" validate:"omitempty,max=255"`
}

type CreateProduct struct {
	repo  catalog.ProductRepository
	audit audit.Recorder
}

func NewCreateProduct(
	repo catalog.ProductRepository,
	audit audit.Recorder,
) *CreateProduct {
	return &CreateProduct{
		repo:  repo,
		audit: audit,
	}
}

// Execute persists nothing unless every field is valid.
func (uc *CreateProduct) Execute(
	ctx context.Context,
	in CreateProductInput,
) (*models.Product, error) {

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	p := &models.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price.Float(),
		Color:       in.Color,
	}

	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	metrics.ProductCreated()

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionProductCreated,
		Entity:   audit.EntityProduct,
		EntityID: &p.ID,
		Metadata: map[string]string{"title": p.Title},
	})

	return p, nil
}
