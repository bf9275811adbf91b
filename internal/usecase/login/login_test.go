package login

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/catalog-api/internal/audit"
	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/infra/memstore"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

// memThrottle is an in-process stand-in for the redis throttle.
type memThrottle struct {
	mu    sync.Mutex
	max   int
	fails map[string]int
}

func newMemThrottle(max int) *memThrottle {
	return &memThrottle{max: max, fails: map[string]int{}}
}

func (m *memThrottle) Allowed(_ context.Context, k string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fails[k] < m.max, nil
}

func (m *memThrottle) Fail(_ context.Context, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fails[k]++
	return nil
}

func (m *memThrottle) Reset(_ context.Context, k string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fails, k)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func setup(t *testing.T, th auth.Throttle) (*Login, *auth.TokenManager, *recorder) {
	t.Helper()
	store := memstore.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.CreateClient(context.Background(), &models.Client{
		Name: "Martin", Email: "martin@email.com", Password: string(hash),
	}))

	tm := auth.NewTokenManager("secret", time.Hour)
	rec := &recorder{}
	return NewLogin(auth.NewBcryptValidator(store), tm, th, rec), tm, rec
}

func TestLogin_Success(t *testing.T) {
	uc, tm, rec := setup(t, auth.NoopThrottle{})

	res, err := uc.Execute(context.Background(), Input{Email: "martin@email.com", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "martin@email.com", res.Email)
	assert.Equal(t, []string{models.RoleUser}, res.Roles)

	claims, err := tm.Parse(res.Token)
	require.NoError(t, err)
	id, _ := claims.ClientID()
	assert.Equal(t, uint(1), id)

	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.ActionLoginSucceeded, rec.events[0].Action)
}

func TestLogin_UsernameAlias(t *testing.T) {
	uc, _, _ := setup(t, auth.NoopThrottle{})

	_, err := uc.Execute(context.Background(), Input{Username: "Martin@Email.com", Password: "password"})
	assert.NoError(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _, rec := setup(t, auth.NoopThrottle{})
	ctx := context.Background()

	for _, in := range []Input{
		{Email: "martin@email.com", Password: "wrong"},
		{Email: "ghost@email.com", Password: "password"},
		{Password: "password"},
		{Email: "martin@email.com"},
	} {
		_, err := uc.Execute(ctx, in)
		be, ok := httperr.AsBusiness(err)
		require.True(t, ok)
		assert.Equal(t, httperr.KindUnauthenticated, be.Kind)
		assert.Equal(t, MessageInvalidCredentials, be.Message)
	}

	assert.Len(t, rec.events, 2)
}

func TestLogin_Throttled(t *testing.T) {
	th := newMemThrottle(2)
	uc, _, _ := setup(t, th)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(ctx, Input{Email: "martin@email.com", Password: "wrong"})
		assert.True(t, httperr.IsBusiness(err, httperr.KindUnauthenticated))
	}

	// even the right password is refused while the window is open
	_, err := uc.Execute(ctx, Input{Email: "martin@email.com", Password: "password"})
	assert.True(t, httperr.IsBusiness(err, httperr.KindTooManyRequests))

	require.NoError(t, th.Reset(ctx, "martin@email.com"))
	_, err = uc.Execute(ctx, Input{Email: "martin@email.com", Password: "password"})
	assert.NoError(t, err)
}

func TestLogin_SuccessResetsFailures(t *testing.T) {
	th := newMemThrottle(3)
	uc, _, _ := setup(t, th)
	ctx := context.Background()

	_, _ = uc.Execute(ctx, Input{Email: "martin@email.com", Password: "wrong"})
	assert.Equal(t, 1, th.fails["martin@email.com"])

	_, err := uc.Execute(ctx, Input{Email: "martin@email.com", Password: "password"})
	require.NoError(t, err)
	assert.Zero(t, th.fails["martin@email.com"])
}
