package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// ======================================================
// OWNERSHIP
// ======================================================

func (r *AppointmentGormRepository) ClientOwnedBy(
	ctx context.Context,
	ownerID uuid.UUID,
	clientID uuid.UUID,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND user_id = ?", clientID, ownerID).
		Count(&n).Error; err != nil {
		return false, httperr.ErrPersistence("failed_to_check_client", err)
	}
	return n > 0, nil
}

func (r *AppointmentGormRepository) ProcedureOwnedBy(
	ctx context.Context,
	ownerID uuid.UUID,
	procedureID uuid.UUID,
) (bool, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Procedure{}).
		Where("id = ? AND user_id = ?", procedureID, ownerID).
		Count(&n).Error; err != nil {
		return false, httperr.ErrPersistence("failed_to_check_procedure", err)
	}
	return n > 0, nil
}

// ======================================================
// CREATE / STATE CHANGE
// ======================================================

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return httperr.ErrPersistence("failed_to_create_appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ownerID uuid.UUID,
	appointmentID uuid.UUID,
	status domain.Status,
	paid *bool,
) (*models.Appointment, error) {
	return updateStatus(r.db.WithContext(ctx), ownerID, appointmentID, status, paid)
}

func (r *AppointmentGormRepository) UpdateStatusTracked(
	ctx context.Context,
	ownerID uuid.UUID,
	appointmentID uuid.UUID,
	status domain.Status,
	paid *bool,
) (*models.Appointment, error) {

	var out *models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "client_id", "status").
			Where("id = ? AND user_id = ?", appointmentID, ownerID).
			First(&current).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("appointment_not_found")
			}
			return httperr.ErrPersistence("failed_to_load_appointment", err)
		}

		updated, err := updateStatus(tx, ownerID, appointmentID, status, paid)
		if err != nil {
			return err
		}

		column := domain.CounterColumn(domain.Status(current.Status), status)
		if column != "" {
			if err := tx.
				Model(&models.Client{}).
				Where("id = ? AND user_id = ?", current.ClientID, ownerID).
				UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
				return httperr.ErrPersistence("failed_to_update_client_counter", err)
			}
		}

		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func updateStatus(
	db *gorm.DB,
	ownerID uuid.UUID,
	appointmentID uuid.UUID,
	status domain.Status,
	paid *bool,
) (*models.Appointment, error) {

	patch := map[string]any{"status": string(status)}
	if paid != nil {
		patch["paid"] = *paid
	}

	var ap models.Appointment
	res := db.
		Model(&ap).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", appointmentID, ownerID).
		Updates(patch)

	if res.Error != nil {
		return nil, httperr.ErrPersistence("failed_to_update_appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	return &ap, nil
}

// ======================================================
// LISTING
// ======================================================

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Procedure").
		Where("user_id = ?", ownerID).
		Order("appointment_date ASC").
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_appointments", err)
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListActiveClients(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Select("id", "name", "email").
		Where("user_id = ? AND active = ?", ownerID, true).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_clients", err)
	}
	return clients, nil
}

func (r *AppointmentGormRepository) ListProceduresByName(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Procedure, error) {

	var procedures []models.Procedure
	if err := r.db.WithContext(ctx).
		Select("id", "name", "price").
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Find(&procedures).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_procedures", err)
	}
	return procedures, nil
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
