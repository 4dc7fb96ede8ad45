package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type memRepo struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*models.Client
	order   []uuid.UUID
	writes  int
	listErr error
	lists   int
}

func newMemRepo() *memRepo {
	return &memRepo{clients: map[uuid.UUID]*models.Client{}}
}

func (m *memRepo) CreateClient(_ context.Context, c *models.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	m.clients[c.ID] = &cp
	m.order = append(m.order, c.ID)
	return nil
}

func (m *memRepo) UpdateClient(_ context.Context, owner, id uuid.UUID, patch map[string]any) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++

	c, ok := m.clients[id]
	if !ok || c.UserID != owner {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	for k, v := range patch {
		switch k {
		case "name":
			c.Name = v.(string)
		case "email":
			c.Email = v.(string)
		case "phone":
			c.Phone = v.(*string)
		case "address":
			c.Address = v.(*string)
		case "birth_date":
			c.BirthDate = v.(*time.Time)
		case "active":
			c.Active = v.(bool)
		}
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) GetClient(_ context.Context, owner, id uuid.UUID) (*models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.clients[id]
	if !ok || c.UserID != owner {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	cp := *c
	return &cp, nil
}

func (m *memRepo) ListClients(_ context.Context, owner uuid.UUID) ([]models.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.Client
	for i := len(m.order) - 1; i >= 0; i-- {
		if c := m.clients[m.order[i]]; c.UserID == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

type recorder struct {
	calls [][]invalidation.Key
}

func (r *recorder) Invalidate(_ context.Context, _ uuid.UUID, keys ...invalidation.Key) error {
	r.calls = append(r.calls, keys)
	return nil
}
