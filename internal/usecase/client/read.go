package client

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListClients struct {
	repo   domain.Repository
	cache  invalidation.Cache
	logger logging.Logger
}

func NewListClients(
	repo domain.Repository,
	cache invalidation.Cache,
	logger logging.Logger,
) *ListClients {
	return &ListClients{repo: repo, cache: cache, logger: logger}
}

// Execute returns the owner's clients, newest first. A store failure
// yields an empty list.
func (uc *ListClients) Execute(
	ctx context.Context,
	who *identity.Identity,
) ([]models.Client, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	clients, err := invalidation.Cached(ctx, uc.cache, uc.logger, ownerID, invalidation.Clients,
		func(ctx context.Context) ([]models.Client, error) {
			return uc.repo.ListClients(ctx, ownerID)
		},
	)
	if err != nil {
		uc.logger.Error(ctx, "list clients failed", "owner", ownerID, "err", err)
		return []models.Client{}, nil
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, nil
}

// ======================================================
// GET
// ======================================================

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	who *identity.Identity,
	clientID uuid.UUID,
) (*models.Client, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetClient(ctx, ownerID, clientID)
}
