package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/studio-agenda/internal/domain/client"
	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return httperr.ErrPersistence("failed_to_create_client", err)
	}
	return nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	ownerID uuid.UUID,
	clientID uuid.UUID,
	patch map[string]any,
) (*models.Client, error) {

	var c models.Client
	res := r.db.WithContext(ctx).
		Model(&c).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", clientID, ownerID).
		Updates(patch)

	if res.Error != nil {
		return nil, httperr.ErrPersistence("failed_to_update_client", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrNotFound("client_not_found")
	}
	return &c, nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	ownerID uuid.UUID,
	clientID uuid.UUID,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, ownerID).
		First(&c).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("client_not_found")
		}
		return nil, httperr.ErrPersistence("failed_to_get_client", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, httperr.ErrPersistence("failed_to_list_clients", err)
	}
	return clients, nil
}

var _ domain.Repository = (*ClientGormRepository)(nil)
