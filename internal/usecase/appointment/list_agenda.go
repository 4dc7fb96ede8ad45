package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/dto"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
)

// ListAgenda returns the caller's appointments grouped by local day.
type ListAgenda struct {
	repo     domain.Repository
	logger   logging.Logger
	settings Settings
}

func NewListAgenda(
	repo domain.Repository,
	logger logging.Logger,
	settings Settings,
) *ListAgenda {
	return &ListAgenda{
		repo:     repo,
		logger:   logger,
		settings: settings,
	}
}

func (uc *ListAgenda) Execute(
	ctx context.Context,
	who *identity.Identity,
) ([]dto.AppointmentDayDTO, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointments(ctx, ownerID)
	if err != nil {
		uc.logger.Error(ctx, "list appointments failed", "owner", ownerID, "err", err)
		aps = nil
	}

	return domain.GroupByDay(
		aps,
		uc.settings.now(),
		uc.settings.loc(),
		uc.settings.locale(),
	), nil
}
