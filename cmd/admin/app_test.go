package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/infra/memstore"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func withStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	prev := openStore
	openStore = func() (catalog.ClientRepository, error) { return store, nil }
	t.Cleanup(func() { openStore = prev })
	return store
}

func TestClientCreate(t *testing.T) {
	store := withStore(t)
	var out bytes.Buffer

	err := newApp(&out).Run([]string{
		"admin", "client", "create",
		"--name", "Martin", "--email", " Martin@Email.com ", "--password", "secret1", "--role", "role_admin",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "created client 1 (martin@email.com)")

	c, err := store.FindClientByEmail(context.Background(), "martin@email.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN", models.RoleUser}, []string(c.Roles))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("secret1")))
}

func TestClientCreate_Duplicate(t *testing.T) {
	withStore(t)
	args := []string{"admin", "client", "create", "--name", "A", "--email", "a@example.com", "--password", "secret1"}

	require.NoError(t, newApp(&bytes.Buffer{}).Run(args))
	err := newApp(&bytes.Buffer{}).Run(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestClientCreate_Rejects(t *testing.T) {
	withStore(t)

	err := newApp(&bytes.Buffer{}).Run([]string{"admin", "client", "create", "--name", "A", "--email", "nope", "--password", "secret1"})
	assert.Error(t, err)

	err = newApp(&bytes.Buffer{}).Run([]string{"admin", "client", "create", "--name", "A", "--email", "a@b.co", "--password", "123"})
	assert.Error(t, err)
}

func TestClientList(t *testing.T) {
	store := withStore(t)
	require.NoError(t, store.CreateClient(context.Background(), &models.Client{Name: "Martin", Email: "martin@email.com"}))

	var out bytes.Buffer
	require.NoError(t, newApp(&out).Run([]string{"admin", "client", "list"}))
	assert.Contains(t, out.String(), "martin@email.com")
	assert.Contains(t, out.String(), models.RoleUser)
}
