package procedure

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/procedure"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type ListProcedures struct {
	repo   domain.Repository
	cache  invalidation.Cache
	logger logging.Logger
}

func NewListProcedures(
	repo domain.Repository,
	cache invalidation.Cache,
	logger logging.Logger,
) *ListProcedures {
	return &ListProcedures{repo: repo, cache: cache, logger: logger}
}

func (uc *ListProcedures) Execute(
	ctx context.Context,
	who *identity.Identity,
) ([]models.Procedure, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	procedures, err := invalidation.Cached(ctx, uc.cache, uc.logger, ownerID, invalidation.Procedures,
		func(ctx context.Context) ([]models.Procedure, error) {
			return uc.repo.ListProcedures(ctx, ownerID)
		},
	)
	if err != nil {
		uc.logger.Error(ctx, "list procedures failed", "owner", ownerID, "err", err)
		return []models.Procedure{}, nil
	}
	if procedures == nil {
		procedures = []models.Procedure{}
	}
	return procedures, nil
}

type GetProcedure struct {
	repo domain.Repository
}

func NewGetProcedure(repo domain.Repository) *GetProcedure {
	return &GetProcedure{repo: repo}
}

func (uc *GetProcedure) Execute(
	ctx context.Context,
	who *identity.Identity,
	procedureID uuid.UUID,
) (*models.Procedure, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetProcedure(ctx, ownerID, procedureID)
}
