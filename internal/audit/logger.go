package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

// Store persists audit rows. The gorm repository and the memory store both
// satisfy it.
type Store interface {
	CreateAuditLog(ctx context.Context, l *models.AuditLog) error
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		ClientID: ev.ClientID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &row)
}
