package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/metrics"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

type DeleteUser struct {
	repo  catalog.UserRepository
	audit audit.Recorder
}

func NewDeleteUser(
	repo catalog.UserRepository,
	audit audit.Recorder,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	principal *models.Client,
	id uint,
) error {

	u, err := loadOwned(ctx, uc.repo, principal, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteUser(ctx, u); err != nil {
		if errors.Is(err, catalog.ErrRecordNotFound) {
			return httperr.ErrNotFound(MessageNotFound)
		}
		return err
	}

	metrics.UserDeleted()

	uc.audit.Dispatch(audit.Event{
		ClientID: &principal.ID,
		Action:   audit.ActionUserDeleted,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]string{"email": u.Email},
	})

	return nil
}
