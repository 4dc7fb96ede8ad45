package client

import (
	"context"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type AddClient struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
}

func NewAddClient(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
) *AddClient {
	return &AddClient{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddClient) Execute(
	ctx context.Context,
	who *identity.Identity,
	in domain.Fields,
) (invalidation.Result[*models.Client], error) {

	var out invalidation.Result[*models.Client]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	c, err := domain.New(ownerID, in)
	if err != nil {
		return out, err
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		uc.logger.Error(ctx, "create client failed", "owner", ownerID, "err", err)
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	out.Value = c
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Clients,
		invalidation.Dashboard,
	)
	return out, nil
}
