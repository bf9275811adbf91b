package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/dto"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/httpresp"
	"github.com/BruksfildServices01/catalog-api/internal/middleware"
	"github.com/BruksfildServices01/catalog-api/internal/pagination"
)

type AuditLogsHandler struct {
	repo  catalog.AuditLogRepository
	pager pagination.Service
}

func NewAuditLogsHandler(
	repo catalog.AuditLogRepository,
	pager pagination.Service,
) *AuditLogsHandler {
	return &AuditLogsHandler{
		repo:  repo,
		pager: pager,
	}
}

// GET /api/audit-logs
// Always scoped to the principal, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	filter := catalog.AuditLogFilter{
		ClientID: middleware.Principal(c).ID,
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}

	if w, ok := h.pager.Normalize(c.Query("page"), c.Query("limit")); ok {
		if w.Limit == 0 {
			httpresp.OK(c, httpresp.KeyLogs, []dto.AuditLogDTO{})
			return
		}
		filter.Offset = w.Offset
		filter.Limit = w.Limit
	}

	logs, err := h.repo.ListAuditLogs(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, httpresp.KeyLogs, logs, dto.AuditLog)
}
