package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/dashboard"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

func (r *DashboardGormRepository) ClientActivity(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Select("id", "active").
		Where("user_id = ?", ownerID).
		Find(&clients).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_clients", err)
	}
	return clients, nil
}

func (r *DashboardGormRepository) ProcedureIDs(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Procedure, error) {

	var procedures []models.Procedure
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("user_id = ?", ownerID).
		Find(&procedures).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_procedures", err)
	}
	return procedures, nil
}

func (r *DashboardGormRepository) AppointmentDates(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "appointment_date").
		Where("user_id = ?", ownerID).
		Find(&aps).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_appointments", err)
	}
	return aps, nil
}

var _ domain.Repository = (*DashboardGormRepository)(nil)
