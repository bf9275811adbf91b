package user

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/pagination"
)

type ListUsers struct {
	repo  catalog.UserRepository
	pager pagination.Service
}

func NewListUsers(
	repo catalog.UserRepository,
	pager pagination.Service,
) *ListUsers {
	return &ListUsers{
		repo:  repo,
		pager: pager,
	}
}

// Execute only ever queries the principal's own users.
func (uc *ListUsers) Execute(
	ctx context.Context,
	principal *models.Client,
	page string,
	limit string,
) ([]models.User, error) {

	w, ok := uc.pager.Normalize(page, limit)
	if !ok {
		return uc.repo.ListUsersByClient(ctx, principal.ID)
	}
	if w.Limit == 0 {
		return []models.User{}, nil
	}
	return uc.repo.ListUsersByClientPage(ctx, principal.ID, w.Offset, w.Limit)
}
