package procedure

import (
	"context"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/procedure"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type AddProcedure struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
}

func NewAddProcedure(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
) *AddProcedure {
	return &AddProcedure{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

// Execute persists nothing when the price is not a finite, non-negative
// number.
func (uc *AddProcedure) Execute(
	ctx context.Context,
	who *identity.Identity,
	in domain.Fields,
) (invalidation.Result[*models.Procedure], error) {

	var out invalidation.Result[*models.Procedure]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	p, err := domain.New(ownerID, in)
	if err != nil {
		return out, err
	}

	if err := uc.repo.CreateProcedure(ctx, p); err != nil {
		uc.logger.Error(ctx, "create procedure failed", "owner", ownerID, "err", err)
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "procedure_created",
		Entity:   "procedure",
		EntityID: &p.ID,
		Metadata: map[string]any{"price": p.Price},
	})

	out.Value = p
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Procedures,
		invalidation.Dashboard,
	)
	return out, nil
}
