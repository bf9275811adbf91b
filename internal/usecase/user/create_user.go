package user

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/metrics"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/validators"
)

const MessageEmailTaken = "a user with this email already exists"

type CreateUserInput struct {
	FirstName  string  `json:"firstName" validate:"required,max=255"`
	LastName   string  `json:"lastName" validate:"required,max=255"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Address    *string `json:"address" validate:"omitempty,max=255"`
	PostalCode *string `json:"postalCode" validate:"omitempty,len=5"`
	City       *string `json:"city" validate:"omitempty,max=255"`
}

type CreateUser struct {
	repo  catalog.UserRepository
	audit audit.Recorder
}

func NewCreateUser(
	repo catalog.UserRepository,
	audit audit.Recorder,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates, rejects a taken email, then persists the user owned by
// principal. The unique index on users.email still catches a concurrent
// insert that slips past the lookup.
func (uc *CreateUser) Execute(
	ctx context.Context,
	principal *models.Client,
	in CreateUserInput,
) (*models.User, error) {

	in.Email = validators.NormalizeEmail(in.Email)

	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindUserByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, httperr.ErrConflict(MessageEmailTaken)
	case err != nil && !errors.Is(err, catalog.ErrRecordNotFound):
		return nil, err
	}

	u := &models.User{
		ClientID:   principal.ID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,
	}

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, catalog.ErrDuplicate) {
			return nil, httperr.ErrConflict(MessageEmailTaken)
		}
		return nil, err
	}

	metrics.UserCreated()

	uc.audit.Dispatch(audit.Event{
		ClientID: &principal.ID,
		Action:   audit.ActionUserCreated,
		Entity:   audit.EntityUser,
		EntityID: &u.ID,
		Metadata: map[string]string{"email": u.Email},
	})

	// Reload so the response carries the stored timestamps and the owner.
	created, err := uc.repo.GetUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}
