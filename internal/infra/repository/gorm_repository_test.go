package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func newRepoWithMock(t *testing.T) (*GormRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewGormRepository(gdb), mock, db
}

var productColumns = []string{"id", "title", "description", "price", "color", "created_at"}

func TestGetProduct_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(productColumns).
		AddRow(1, "Galaxy", "phone", 499.0, "Bleu", time.Now())
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(rows)

	p, err := repo.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, "Galaxy", p.Title)
	require.NotNil(t, p.Price)
	assert.Equal(t, 499.0, *p.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	_, err := repo.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, catalog.ErrRecordNotFound)
}

func TestListProductsPage_OrdersByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(productColumns).
		AddRow(11, "p11", "d", nil, nil, time.Now()).
		AddRow(12, "p12", "d", nil, nil, time.Now())
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC LIMIT .+ OFFSET .+`).
		WillReturnRows(rows)

	got, err := repo.ListProductsPage(context.Background(), 10, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(11), got[0].ID)
	assert.Nil(t, got[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_ReturnsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "products" .+ RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	p := &models.Product{Title: "Doro", Description: "phone"}
	require.NoError(t, repo.CreateProduct(context.Background(), p))
	assert.Equal(t, uint(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO "users" .+`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.CreateUser(context.Background(), &models.User{ClientID: 1, FirstName: "A", LastName: "B", Email: "a@b.co"})
	assert.ErrorIs(t, err, catalog.ErrDuplicate)
}

func TestListUsersByClient_Scoped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "client_id", "first_name", "last_name", "email"}).
		AddRow(3, 1, "Ada", "Lovelace", "ada@example.com")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE client_id = \$1 ORDER BY id ASC`).
		WithArgs(1).
		WillReturnRows(rows)

	got, err := repo.ListUsersByClient(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "users" WHERE "users"."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteUser(context.Background(), &models.User{ID: 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_NothingDeleted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), &models.User{ID: 5})
	assert.ErrorIs(t, err, catalog.ErrRecordNotFound)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), catalog.ErrRecordNotFound)
	assert.ErrorIs(t, translate(gorm.ErrDuplicatedKey), catalog.ErrDuplicate)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: pgUniqueViolation}), catalog.ErrDuplicate)

	other := errors.New("connection refused")
	assert.Equal(t, other, translate(other))
}

func TestListProductsPage_SaturatedOffsetIsSent(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY id ASC LIMIT .+ OFFSET .+`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	got, err := repo.ListProductsPage(context.Background(), math.MaxInt, 100)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
