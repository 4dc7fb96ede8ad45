package appointment

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// memStore is an in-memory domain.Repository. The optional func fields
// override a method when set.
type memStore struct {
	clients      map[uuid.UUID]*models.Client
	procedures   map[uuid.UUID]*models.Procedure
	appointments map[uuid.UUID]*models.Appointment

	writes        int
	trackedWrites int

	ListAppointmentsFn  func(ctx context.Context, owner uuid.UUID) ([]models.Appointment, error)
	ListActiveClientsFn func(ctx context.Context, owner uuid.UUID) ([]models.Client, error)
}

func newMemStore() *memStore {
	return &memStore{
		clients:      map[uuid.UUID]*models.Client{},
		procedures:   map[uuid.UUID]*models.Procedure{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (m *memStore) addClient(owner uuid.UUID, name string, active bool) *models.Client {
	c := &models.Client{ID: uuid.New(), UserID: owner, Name: name, Email: name + "@x.com", Active: active}
	m.clients[c.ID] = c
	return c
}

func (m *memStore) addProcedure(owner uuid.UUID, name string, price float64) *models.Procedure {
	p := &models.Procedure{ID: uuid.New(), UserID: owner, Name: name, Price: price}
	m.procedures[p.ID] = p
	return p
}

func (m *memStore) ClientOwnedBy(_ context.Context, owner, id uuid.UUID) (bool, error) {
	c, ok := m.clients[id]
	return ok && c.UserID == owner, nil
}

func (m *memStore) ProcedureOwnedBy(_ context.Context, owner, id uuid.UUID) (bool, error) {
	p, ok := m.procedures[id]
	return ok && p.UserID == owner, nil
}

func (m *memStore) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.writes++
	ap.ID = uuid.New()
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *memStore) UpdateStatus(
	_ context.Context,
	owner, id uuid.UUID,
	status domain.Status,
	paid *bool,
) (*models.Appointment, error) {
	m.writes++
	ap, ok := m.appointments[id]
	if !ok || ap.UserID != owner {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	ap.Status = string(status)
	if paid != nil {
		ap.Paid = *paid
	}
	cp := *ap
	return &cp, nil
}

func (m *memStore) UpdateStatusTracked(
	ctx context.Context,
	owner, id uuid.UUID,
	status domain.Status,
	paid *bool,
) (*models.Appointment, error) {
	m.trackedWrites++
	var from domain.Status
	if ap, ok := m.appointments[id]; ok {
		from = domain.Status(ap.Status)
	}
	out, err := m.UpdateStatus(ctx, owner, id, status, paid)
	if err != nil {
		return nil, err
	}
	c := m.clients[out.ClientID]
	switch domain.CounterColumn(from, status) {
	case "cancelled_count":
		c.CancelledCount++
	case "rescheduled_count":
		c.RescheduledCount++
	}
	return out, nil
}

func (m *memStore) ListAppointments(ctx context.Context, owner uuid.UUID) ([]models.Appointment, error) {
	if m.ListAppointmentsFn != nil {
		return m.ListAppointmentsFn(ctx, owner)
	}
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.UserID != owner {
			continue
		}
		cp := *ap
		cp.Client = m.clients[ap.ClientID]
		cp.Procedure = m.procedures[ap.ProcedureID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (m *memStore) ListActiveClients(ctx context.Context, owner uuid.UUID) ([]models.Client, error) {
	if m.ListActiveClientsFn != nil {
		return m.ListActiveClientsFn(ctx, owner)
	}
	var out []models.Client
	for _, c := range m.clients {
		if c.UserID == owner && c.Active {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) ListProceduresByName(_ context.Context, owner uuid.UUID) ([]models.Procedure, error) {
	var out []models.Procedure
	for _, p := range m.procedures {
		if p.UserID == owner {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type recorder struct {
	calls [][]invalidation.Key
}

func (r *recorder) Invalidate(_ context.Context, _ uuid.UUID, keys ...invalidation.Key) error {
	r.calls = append(r.calls, keys)
	return nil
}

var _ domain.Repository = (*memStore)(nil)
