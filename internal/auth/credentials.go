package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
	"github.com/BruksfildServices01/catalog-api/internal/validators"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type CredentialValidator interface {
	Authenticate(ctx context.Context, email, password string) (*models.Client, error)
}

// BcryptValidator checks a password against the client's stored bcrypt hash.
type BcryptValidator struct {
	clients catalog.ClientRepository
}

func NewBcryptValidator(clients catalog.ClientRepository) *BcryptValidator {
	return &BcryptValidator{clients: clients}
}

func (v *BcryptValidator) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*models.Client, error) {

	client, err := v.clients.FindClientByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, catalog.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return client, nil
}

// HashPassword is what the admin CLI stores in Client.Password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
