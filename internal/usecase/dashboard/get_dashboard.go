package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/dashboard"
	"github.com/BruksfildServices01/studio-agenda/internal/dto"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// GetDashboard counts the caller's rows. The three reads run concurrently;
// a failed read counts as empty.
type GetDashboard struct {
	repo   domain.Repository
	logger logging.Logger
	loc    *time.Location
	now    func() time.Time
}

func NewGetDashboard(
	repo domain.Repository,
	logger logging.Logger,
	loc *time.Location,
	now func() time.Time,
) *GetDashboard {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &GetDashboard{
		repo:   repo,
		logger: logger,
		loc:    loc,
		now:    now,
	}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	who *identity.Identity,
) (dto.DashboardDTO, error) {

	ownerID, err := identity.Require(who)
	if err != nil {
		return dto.DashboardDTO{}, err
	}

	var (
		clients      []models.Client
		procedures   []models.Procedure
		appointments []models.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := uc.repo.ClientActivity(gctx, ownerID)
		if err != nil {
			uc.logger.Error(ctx, "dashboard clients read failed", "owner", ownerID, "err", err)
			return nil
		}
		clients = rows
		return nil
	})

	g.Go(func() error {
		rows, err := uc.repo.ProcedureIDs(gctx, ownerID)
		if err != nil {
			uc.logger.Error(ctx, "dashboard procedures read failed", "owner", ownerID, "err", err)
			return nil
		}
		procedures = rows
		return nil
	})

	g.Go(func() error {
		rows, err := uc.repo.AppointmentDates(gctx, ownerID)
		if err != nil {
			uc.logger.Error(ctx, "dashboard appointments read failed", "owner", ownerID, "err", err)
			return nil
		}
		appointments = rows
		return nil
	})

	_ = g.Wait()

	return domain.Compute(clients, procedures, appointments, uc.now(), uc.loc), nil
}
