package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-agenda/internal/httperr"
	"github.com/BruksfildServices01/studio-agenda/internal/models"
)

// Store persists audit events in audit_logs.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Record(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.OwnerID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return s.db.WithContext(ctx).Create(&row).Error
}

// Filter narrows an audit listing. Zero values do not filter.
type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time // inclusive day
	Page   int
	Limit  int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

const (
	defaultLimit = 50
	maxLimit     = 200
)

// List returns the owner's events, newest first.
func (s *Store) List(
	ctx context.Context,
	ownerID uuid.UUID,
	f Filter,
) (*Page, error) {

	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > maxLimit {
		f.Limit = defaultLimit
	}

	q := s.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", ownerID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, httperr.ErrPersistence("audit_count_failed", err)
	}

	logs := make([]models.AuditLog, 0)
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, httperr.ErrPersistence("audit_list_failed", err)
	}

	return &Page{Page: f.Page, Limit: f.Limit, Total: total, Logs: logs}, nil
}
