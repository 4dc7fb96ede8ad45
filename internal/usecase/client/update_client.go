package client

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type UpdateClient struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
}

func NewUpdateClient(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
) *UpdateClient {
	return &UpdateClient{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

// Execute applies only the supplied fields.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	who *identity.Identity,
	clientID uuid.UUID,
	in domain.Fields,
) (invalidation.Result[*models.Client], error) {

	var out invalidation.Result[*models.Client]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	patch, err := domain.Patch(in)
	if err != nil {
		return out, err
	}

	c, err := uc.repo.UpdateClient(ctx, ownerID, clientID, patch)
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			uc.logger.Error(ctx, "update client failed", "owner", ownerID, "client", clientID, "err", err)
		}
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: fieldNames(patch),
	})

	out.Value = c
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Clients,
		invalidation.Dashboard,
	)
	return out, nil
}

func fieldNames(patch map[string]any) map[string]any {
	names := make([]string, 0, len(patch))
	for k := range patch {
		names = append(names, k)
	}
	sort.Strings(names)
	return map[string]any{"fields": names}
}
