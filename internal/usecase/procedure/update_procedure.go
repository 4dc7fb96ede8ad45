package procedure

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/procedure"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type UpdateProcedure struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
}

func NewUpdateProcedure(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
) *UpdateProcedure {
	return &UpdateProcedure{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

func (uc *UpdateProcedure) Execute(
	ctx context.Context,
	who *identity.Identity,
	procedureID uuid.UUID,
	in domain.Fields,
) (invalidation.Result[*models.Procedure], error) {

	var out invalidation.Result[*models.Procedure]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	patch, err := domain.Patch(in)
	if err != nil {
		return out, err
	}

	p, err := uc.repo.UpdateProcedure(ctx, ownerID, procedureID, patch)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			uc.logger.Error(ctx, "update procedure failed", "owner", ownerID, "procedure", procedureID, "err", err)
		}
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "procedure_updated",
		Entity:   "procedure",
		EntityID: &p.ID,
		Metadata: patch,
	})

	out.Value = p
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Procedures,
		invalidation.Dashboard,
	)
	return out, nil
}
