package repository

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func (r *GormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	// The owner is already persisted; never upsert it along with the user.
	return translate(r.db.WithContext(ctx).Omit("Client").Create(u).Error)
}

func (r *GormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormRepository) ListUsersByClient(
	ctx context.Context,
	clientID uint,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *GormRepository) ListUsersByClientPage(
	ctx context.Context,
	clientID uint,
	offset int,
	limit int,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *GormRepository) DeleteUser(
	ctx context.Context,
	u *models.User,
) error {

	res := r.db.WithContext(ctx).Delete(&models.User{}, u.ID)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrRecordNotFound
	}
	return nil
}
