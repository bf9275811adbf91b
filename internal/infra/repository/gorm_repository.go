package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
)

const pgUniqueViolation = "23505"

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// translate maps driver errors onto the catalog sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return catalog.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %v", catalog.ErrDuplicate, err)
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Compile-time check
var (
	_ catalog.ProductRepository  = (*GormRepository)(nil)
	_ catalog.UserRepository     = (*GormRepository)(nil)
	_ catalog.ClientRepository   = (*GormRepository)(nil)
	_ catalog.AuditLogRepository = (*GormRepository)(nil)
)
