// Package memstore is a map-backed implementation of the catalog
// repositories. It is used by tests and by local runs without postgres.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

type Store struct {
	mu sync.RWMutex

	products map[uint]models.Product
	users    map[uint]models.User
	clients  map[uint]models.Client
	logs     map[uint]models.AuditLog

	nextProduct uint
	nextUser    uint
	nextClient  uint
	nextLog     uint

	now func() time.Time
}

func New() *Store {
	return &Store{
		products: make(map[uint]models.Product),
		users:    make(map[uint]models.User),
		clients:  make(map[uint]models.Client),
		logs:     make(map[uint]models.AuditLog),
		now:      time.Now,
	}
}

var (
	_ catalog.ProductRepository  = (*Store)(nil)
	_ catalog.UserRepository     = (*Store)(nil)
	_ catalog.ClientRepository   = (*Store)(nil)
	_ catalog.AuditLogRepository = (*Store)(nil)
)

// window applies offset/limit to an already ordered slice.
func window[T any](items []T, offset, limit int) []T {
	if offset < 0 || offset >= len(items) || limit <= 0 {
		return []T{}
	}
	end := len(items)
	if limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}

func sortedKeys[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ---------------------------------------------------------------------------
// products
// ---------------------------------------------------------------------------

func (s *Store) CreateProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProduct++
	p.ID = s.nextProduct
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.products[p.ID] = *p
	return nil
}

func (s *Store) GetProduct(_ context.Context, id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrRecordNotFound
	}
	return &p, nil
}

func (s *Store) ListProducts(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, id := range sortedKeys(s.products) {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *Store) ListProductsPage(ctx context.Context, offset, limit int) ([]models.Product, error) {
	all, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return window(all, offset, limit), nil
}

// ---------------------------------------------------------------------------
// clients
// ---------------------------------------------------------------------------

func (s *Store) CreateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if strings.EqualFold(existing.Email, c.Email) {
			return catalog.ErrDuplicate
		}
	}

	s.nextClient++
	c.ID = s.nextClient
	now := s.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	c.Users = nil
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) GetClient(_ context.Context, id uint) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, catalog.ErrRecordNotFound
	}
	return &c, nil
}

func (s *Store) FindClientByEmail(_ context.Context, email string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.clients) {
		if c := s.clients[id]; c.Email == email {
			return &c, nil
		}
	}
	return nil, catalog.ErrRecordNotFound
}

func (s *Store) ListClients(_ context.Context) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(s.clients))
	for _, id := range sortedKeys(s.clients) {
		out = append(out, s.clients[id])
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return catalog.ErrDuplicate
		}
	}

	s.nextUser++
	u.ID = s.nextUser
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}

	stored := *u
	stored.Client = models.Client{}
	s.users[u.ID] = stored
	return nil
}

// GetUser attaches the owning client the way a preload would.
func (s *Store) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, catalog.ErrRecordNotFound
	}
	u.Client = s.clients[u.ClientID]
	return &u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, catalog.ErrRecordNotFound
}

func (s *Store) ListUsersByClient(_ context.Context, clientID uint) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0)
	for _, id := range sortedKeys(s.users) {
		if u := s.users[id]; u.ClientID == clientID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) ListUsersByClientPage(ctx context.Context, clientID uint, offset, limit int) ([]models.User, error) {
	all, err := s.ListUsersByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return window(all, offset, limit), nil
}

func (s *Store) DeleteUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return catalog.ErrRecordNotFound
	}
	delete(s.users, u.ID)
	return nil
}

// ---------------------------------------------------------------------------
// audit logs
// ---------------------------------------------------------------------------

func (s *Store) CreateAuditLog(_ context.Context, l *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLog++
	l.ID = s.nextLog
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now()
	}
	s.logs[l.ID] = *l
	return nil
}

func (s *Store) ListAuditLogs(_ context.Context, f catalog.AuditLogFilter) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLog, 0)
	for _, l := range s.logs {
		if l.ClientID == nil || *l.ClientID != f.ClientID {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	if f.Limit > 0 {
		return window(out, f.Offset, f.Limit), nil
	}
	return out, nil
}
