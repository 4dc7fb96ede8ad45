package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// Repository fetches the narrow rows the counters need. Rows are only
// partially populated.
type Repository interface {
	ClientActivity(ctx context.Context, ownerID uuid.UUID) ([]models.Client, error)
	ProcedureIDs(ctx context.Context, ownerID uuid.UUID) ([]models.Procedure, error)
	AppointmentDates(ctx context.Context, ownerID uuid.UUID) ([]models.Appointment, error)
}
