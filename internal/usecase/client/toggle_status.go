package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// ToggleClientStatus sets the active flag. Setting the current value again
// is a successful no-op write.
type ToggleClientStatus struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
}

func NewToggleClientStatus(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
) *ToggleClientStatus {
	return &ToggleClientStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

func (uc *ToggleClientStatus) Execute(
	ctx context.Context,
	who *identity.Identity,
	clientID uuid.UUID,
	active bool,
) (invalidation.Result[*models.Client], error) {

	var out invalidation.Result[*models.Client]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	c, err := uc.repo.UpdateClient(ctx, ownerID, clientID, map[string]any{"active": active})
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			uc.logger.Error(ctx, "toggle client failed", "owner", ownerID, "client", clientID, "err", err)
		}
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "client_status_changed",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"active": active},
	})

	out.Value = c
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Clients,
		invalidation.BookingOptions,
		invalidation.Dashboard,
	)
	return out, nil
}
