package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// UpdateAppointmentStatus sets status, and paid when supplied, on one of
// the caller's appointments. Any known status is accepted from any other.
type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
	settings Settings
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
	settings Settings,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
		settings: settings,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	who *identity.Identity,
	appointmentID uuid.UUID,
	rawStatus string,
	paid *bool,
) (invalidation.Result[*models.Appointment], error) {

	var out invalidation.Result[*models.Appointment]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return out, err
	}

	var ap *models.Appointment
	if uc.settings.TrackCounters {
		ap, err = uc.repo.UpdateStatusTracked(ctx, ownerID, appointmentID, status, paid)
	} else {
		ap, err = uc.repo.UpdateStatus(ctx, ownerID, appointmentID, status, paid)
	}
	if err != nil {
		if !httperr.IsKind(err, httperr.KindNotFound) {
			uc.logger.Error(ctx, "update appointment status failed",
				"owner", ownerID,
				"appointment", appointmentID,
				"err", err,
			)
		}
		return out, err
	}

	meta := map[string]any{"status": status}
	if paid != nil {
		meta["paid"] = *paid
	}
	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: meta,
	})

	out.Value = ap
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Appointments,
		invalidation.Dashboard,
	)
	return out, nil
}
