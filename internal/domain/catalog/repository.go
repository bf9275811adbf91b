package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
)

// Paged queries are ordered by id ascending so that a page is stable as long
// as nothing is inserted or deleted between calls.

type ProductRepository interface {
	CreateProduct(ctx context.Context, p *models.Product) error
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsPage(ctx context.Context, offset, limit int) ([]models.Product, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *models.User) error
	// GetUser preloads the owning client.
	GetUser(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsersByClient(ctx context.Context, clientID uint) ([]models.User, error)
	ListUsersByClientPage(ctx context.Context, clientID uint, offset, limit int) ([]models.User, error)
	DeleteUser(ctx context.Context, u *models.User) error
}

type ClientRepository interface {
	CreateClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
}

type AuditLogFilter struct {
	ClientID uint
	Action   string
	Entity   string
	Offset   int
	// Limit <= 0 means no limit.
	Limit int
}

type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f AuditLogFilter) ([]models.AuditLog, error)
}
