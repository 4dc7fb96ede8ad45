package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/audit"
	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/identity"
	"github.com/BruksfildServices01/studio-agenda/internal/invalidation"
	"github.com/BruksfildServices01/studio-agenda/internal/logging"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
	"github.com/BruksfildServices01/studio-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// AddAppointmentInput is the booking form as submitted.
type AddAppointmentInput struct {
	ClientID    string
	ProcedureID string

	Date string // YYYY-MM-DD
	Time string // HH:MM or HH:MM:SS

	// Paid is true only for the literal "true".
	Paid  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type AddAppointment struct {
	repo     domain.Repository
	notifier invalidation.Notifier
	audit    *audit.Dispatcher
	logger   logging.Logger
	settings Settings
}

func NewAddAppointment(
	repo domain.Repository,
	notifier invalidation.Notifier,
	audit *audit.Dispatcher,
	logger logging.Logger,
	settings Settings,
) *AddAppointment {
	return &AddAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		logger:   logger,
		settings: settings,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddAppointment) Execute(
	ctx context.Context,
	who *identity.Identity,
	in AddAppointmentInput,
) (invalidation.Result[*models.Appointment], error) {

	var out invalidation.Result[*models.Appointment]

	ownerID, err := identity.Require(who)
	if err != nil {
		return out, err
	}

	// --------------------------------------------------
	// Form
	// --------------------------------------------------
	clientID, err := parseRef(in.ClientID, "missing_client", "invalid_client_id")
	if err != nil {
		return out, err
	}
	procedureID, err := parseRef(in.ProcedureID, "missing_procedure", "invalid_procedure_id")
	if err != nil {
		return out, err
	}

	date, clock := strings.TrimSpace(in.Date), strings.TrimSpace(in.Time)
	if date == "" || clock == "" {
		return out, httperr.ErrValidation("missing_date_or_time")
	}
	when, err := timezone.ParseDateTime(date, clock, uc.settings.loc())
	if err != nil {
		return out, httperr.ErrValidation("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Referenced rows must belong to the caller
	// --------------------------------------------------
	ok, err := uc.repo.ClientOwnedBy(ctx, ownerID, clientID)
	if err != nil {
		uc.logger.Error(ctx, "client ownership check failed", "owner", ownerID, "err", err)
		return out, err
	}
	if !ok {
		return out, httperr.ErrValidation("client_not_found")
	}

	ok, err = uc.repo.ProcedureOwnedBy(ctx, ownerID, procedureID)
	if err != nil {
		uc.logger.Error(ctx, "procedure ownership check failed", "owner", ownerID, "err", err)
		return out, err
	}
	if !ok {
		return out, httperr.ErrValidation("procedure_not_found")
	}

	// --------------------------------------------------
	// Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:          ownerID,
		ClientID:        clientID,
		ProcedureID:     procedureID,
		AppointmentDate: when,
		Paid:            in.Paid == "true",
		Status:          string(domain.InitialStatus()),
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		ap.Notes = &notes
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		uc.logger.Error(ctx, "create appointment failed", "owner", ownerID, "err", err)
		return out, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		OwnerID:  ownerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"client_id":    clientID,
			"procedure_id": procedureID,
			"date":         when,
		},
	})

	out.Value = ap
	out.Stale = invalidation.Emit(ctx, uc.notifier, uc.logger, ownerID,
		invalidation.Appointments,
		invalidation.Dashboard,
	)
	return out, nil
}

func parseRef(raw, missing, invalid string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, httperr.ErrValidation(missing)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.ErrValidation(invalid)
	}
	return id, nil
}
