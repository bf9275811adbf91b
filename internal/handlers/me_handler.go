package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/dto"
	"github.com/BruksfildServices01/catalog-api/internal/httpresp"
	"github.com/BruksfildServices01/catalog-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GET /api/clients/me
func (h *MeHandler) GetMe(c *gin.Context) {
	httpresp.OK(c, httpresp.KeyClient, dto.ClientShow(middleware.Principal(c)))
}
