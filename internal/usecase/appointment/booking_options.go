package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/dto"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// BookingOptions feeds the new-appointment form: active clients and all
// procedures, both by name, and the current local date and time.
type BookingOptions struct {
	repo     domain.Repository
	logger   logging.Logger
	settings Settings
}

func NewBookingOptions(
	repo domain.Repository,
	logger logging.Logger,
	settings Settings,
) *BookingOptions {
	return &BookingOptions{
		repo:     repo,
		logger:   logger,
		settings: settings,
	}
}

func (uc *BookingOptions) Execute(
	ctx context.Context,
	who *identity.Identity,
) (dto.BookingOptionsDTO, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return dto.BookingOptionsDTO{}, err
	}

	now := uc.settings.now()
	l := uc.settings.locale()

	out := dto.BookingOptionsDTO{
		Clients:     make([]dto.ClientOptionDTO, 0),
		Procedures:  make([]dto.ProcedureOptionDTO, 0),
		DefaultDate: now.Format(timezone.DayLayout),
		DefaultTime: now.Format("15:04"),
	}

	clients, err := uc.repo.ListActiveClients(ctx, ownerID)
	if err != nil {
		uc.logger.Error(ctx, "list active clients failed", "owner", ownerID, "err", err)
	}
	for _, c := range clients {
		out.Clients = append(out.Clients, dto.ClientOptionDTO{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
		})
	}

	procedures, err := uc.repo.ListProceduresByName(ctx, ownerID)
	if err != nil {
		uc.logger.Error(ctx, "list procedures failed", "owner", ownerID, "err", err)
	}
	for _, p := range procedures {
		out.Procedures = append(out.Procedures, dto.ProcedureOptionDTO{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			PriceLabel: l.Price(p.Price),
		})
	}

	return out, nil
}
