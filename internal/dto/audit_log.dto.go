package dto

import (
	"time"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

type AuditLogDTO struct {
	ID        uint      `json:"id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  *uint     `json:"entityId"`
	Metadata  string    `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func AuditLog(l *models.AuditLog) AuditLogDTO {
	return AuditLogDTO{
		ID:        l.ID,
		Action:    l.Action,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Metadata:  l.Metadata,
		CreatedAt: l.CreatedAt,
	}
}
