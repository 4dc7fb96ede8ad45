package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// Repository is the persistence the appointment use cases need. Every
// method is scoped to ownerID.
type Repository interface {
	// -------- Ownership of referenced rows --------
	ClientOwnedBy(
		ctx context.Context,
		ownerID uuid.UUID,
		clientID uuid.UUID,
	) (bool, error)

	ProcedureOwnedBy(
		ctx context.Context,
		ownerID uuid.UUID,
		procedureID uuid.UUID,
	) (bool, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateStatus(
		ctx context.Context,
		ownerID uuid.UUID,
		appointmentID uuid.UUID,
		status Status,
		paid *bool,
	) (*models.Appointment, error)

	// UpdateStatusTracked does the same as UpdateStatus and, in the same
	// transaction, bumps the client counter named by CounterColumn.
	UpdateStatusTracked(
		ctx context.Context,
		ownerID uuid.UUID,
		appointmentID uuid.UUID,
		status Status,
		paid *bool,
	) (*models.Appointment, error)

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Appointment, error)

	ListActiveClients(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Client, error)

	ListProceduresByName(
		ctx context.Context,
		ownerID uuid.UUID,
	) ([]models.Procedure, error)
}
