package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type Repository interface {
	CreateClient(ctx context.Context, c *models.Client) error

	// UpdateClient applies patch to the owner's client and returns the row
	// as stored afterwards.
	UpdateClient(
		ctx context.Context,
		ownerID uuid.UUID,
		clientID uuid.UUID,
		patch map[string]any,
	) (*models.Client, error)

	GetClient(ctx context.Context, ownerID, clientID uuid.UUID) (*models.Client, error)

	// ListClients returns the owner's clients, newest first.
	ListClients(ctx context.Context, ownerID uuid.UUID) ([]models.Client, error)
}
