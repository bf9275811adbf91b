package repository

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func (r *GormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *GormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *GormRepository) FindClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *GormRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, translate(err)
	}
	return clients, nil
}
