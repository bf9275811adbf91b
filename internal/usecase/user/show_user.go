package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

const MessageNotFound = "user not found"

type ShowUser struct {
	repo catalog.UserRepository
}

func NewShowUser(repo catalog.UserRepository) *ShowUser {
	return &ShowUser{repo: repo}
}

func (uc *ShowUser) Execute(
	ctx context.Context,
	principal *models.Client,
	id uint,
) (*models.User, error) {
	return loadOwned(ctx, uc.repo, principal, id)
}

// loadOwned looks the user up first and checks ownership second, so a foreign
// id answers 403 and a missing id answers 404.
func loadOwned(
	ctx context.Context,
	repo catalog.UserRepository,
	principal *models.Client,
	id uint,
) (*models.User, error) {

	u, err := repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(MessageNotFound)
		}
		return nil, err
	}

	if !catalog.CanAccess(principal, u) {
		return nil, httperr.ErrForbidden()
	}
	return u, nil
}
