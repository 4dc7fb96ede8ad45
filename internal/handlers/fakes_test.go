package handlers

import (
	"context"

	"github.com/google/uuid"

	domainAppointment "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type fakeClients struct {
	rows map[uuid.UUID]*models.Client
}

func newFakeClients() *fakeClients { return &fakeClients{rows: map[uuid.UUID]*models.Client{}} }

func (f *fakeClients) CreateClient(_ context.Context, c *models.Client) error {
	c.ID = uuid.New()
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeClients) UpdateClient(_ context.Context, owner, id uuid.UUID, patch map[string]any) (*models.Client, error) {
	c, ok := f.rows[id]
	if !ok || c.UserID != owner {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	if v, ok := patch["name"].(string); ok {
		c.Name = v
	}
	if v, ok := patch["active"].(bool); ok {
		c.Active = v
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClients) GetClient(_ context.Context, owner, id uuid.UUID) (*models.Client, error) {
	c, ok := f.rows[id]
	if !ok || c.UserID != owner {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	return c, nil
}

func (f *fakeClients) ListClients(_ context.Context, owner uuid.UUID) ([]models.Client, error) {
	var out []models.Client
	for _, c := range f.rows {
		if c.UserID == owner {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeProcedures struct {
	rows map[uuid.UUID]*models.Procedure
}

func (f *fakeProcedures) CreateProcedure(_ context.Context, p *models.Procedure) error {
	p.ID = uuid.New()
	f.rows[p.ID] = p
	return nil
}

func (f *fakeProcedures) UpdateProcedure(_ context.Context, owner, id uuid.UUID, patch map[string]any) (*models.Procedure, error) {
	p, ok := f.rows[id]
	if !ok || p.UserID != owner {
		return nil, httperr.ErrNotFound("procedure_not_found")
	}
	if v, ok := patch["price"].(float64); ok {
		p.Price = v
	}
	return p, nil
}

func (f *fakeProcedures) GetProcedure(_ context.Context, owner, id uuid.UUID) (*models.Procedure, error) {
	p, ok := f.rows[id]
	if !ok || p.UserID != owner {
		return nil, httperr.ErrNotFound("procedure_not_found")
	}
	return p, nil
}

func (f *fakeProcedures) ListProcedures(context.Context, uuid.UUID) ([]models.Procedure, error) {
	return nil, nil
}

// fakeAppointments accepts every reference and keeps created rows.
type fakeAppointments struct {
	rows map[uuid.UUID]*models.Appointment
}

func (f *fakeAppointments) ClientOwnedBy(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeAppointments) ProcedureOwnedBy(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return true, nil
}

func (f *fakeAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = uuid.New()
	f.rows[ap.ID] = ap
	return nil
}

func (f *fakeAppointments) UpdateStatus(
	_ context.Context,
	owner, id uuid.UUID,
	status domainAppointment.Status,
	paid *bool,
) (*models.Appointment, error) {
	ap, ok := f.rows[id]
	if !ok || ap.UserID != owner {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	ap.Status = string(status)
	if paid != nil {
		ap.Paid = *paid
	}
	return ap, nil
}

func (f *fakeAppointments) UpdateStatusTracked(
	ctx context.Context,
	owner, id uuid.UUID,
	status domainAppointment.Status,
	paid *bool,
) (*models.Appointment, error) {
	return f.UpdateStatus(ctx, owner, id, status, paid)
}

func (f *fakeAppointments) ListAppointments(context.Context, uuid.UUID) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointments) ListActiveClients(context.Context, uuid.UUID) ([]models.Client, error) {
	return nil, nil
}

func (f *fakeAppointments) ListProceduresByName(context.Context, uuid.UUID) ([]models.Procedure, error) {
	return nil, nil
}
