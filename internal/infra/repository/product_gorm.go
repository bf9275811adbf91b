package repository

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func (r *GormRepository) CreateProduct(
	ctx context.Context,
	p *models.Product,
) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *GormRepository) GetProduct(
	ctx context.Context,
	id uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormRepository) ListProducts(
	ctx context.Context,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *GormRepository) ListProductsPage(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}
