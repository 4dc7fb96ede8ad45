package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/procedure"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type ProcedureGormRepository struct {
	db *gorm.DB
}

func NewProcedureGormRepository(db *gorm.DB) *ProcedureGormRepository {
	return &ProcedureGormRepository{db: db}
}

func (r *ProcedureGormRepository) CreateProcedure(
	ctx context.Context,
	p *models.Procedure,
) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return httperr.ErrPersistence("failed_to_create_procedure", err)
	}
	return nil
}

func (r *ProcedureGormRepository) UpdateProcedure(
	ctx context.Context,
	ownerID uuid.UUID,
	procedureID uuid.UUID,
	patch map[string]any,
) (*models.Procedure, error) {

	var p models.Procedure
	res := r.db.WithContext(ctx).
		Model(&p).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", procedureID, ownerID).
		Updates(patch)

	if res.Error != nil {
		return nil, httperr.ErrPersistence("failed_to_update_procedure", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("procedure_not_found")
	}
	return &p, nil
}

func (r *ProcedureGormRepository) GetProcedure(
	ctx context.Context,
	ownerID uuid.UUID,
	procedureID uuid.UUID,
) (*models.Procedure, error) {

	var p models.Procedure
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", procedureID, ownerID).
		First(&p).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("procedure_not_found")
		}
		return nil, httperr.ErrPersistence("failed_to_get_procedure", err)
	}
	return &p, nil
}

func (r *ProcedureGormRepository) ListProcedures(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Procedure, error) {

	var procedures []models.Procedure
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&procedures).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_procedures", err)
	}
	return procedures, nil
}

var _ domain.Repository = (*ProcedureGormRepository)(nil)
