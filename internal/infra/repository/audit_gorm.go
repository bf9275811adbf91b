package repository

import (
	"context"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

func (r *GormRepository) CreateAuditLog(
	ctx context.Context,
	l *models.AuditLog,
) error {
	return translate(r.db.WithContext(ctx).Create(l).Error)
}

// ListAuditLogs is always scoped to one client, newest first.
func (r *GormRepository) ListAuditLogs(
	ctx context.Context,
	f catalog.AuditLogFilter,
) ([]models.AuditLog, error) {

	q := r.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("client_id = ?", f.ClientID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}
