package procedure

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type Repository interface {
	CreateProcedure(ctx context.Context, p *models.Procedure) error

	UpdateProcedure(
		ctx context.Context,
		ownerID uuid.UUID,
		procedureID uuid.UUID,
		patch map[string]any,
	) (*models.Procedure, error)

	GetProcedure(ctx context.Context, ownerID, procedureID uuid.UUID) (*models.Procedure, error)

	// ListProcedures returns the owner's procedures, newest first.
	ListProcedures(ctx context.Context, ownerID uuid.UUID) ([]models.Procedure, error)
}
