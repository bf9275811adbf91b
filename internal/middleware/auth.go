package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/auth"
	"github.com/BruksfildServices01/catalog-api/internal/domain/catalog"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/logger"
	"github.com/BruksfildServices01/catalog-api/internal/models"
)

const (
	ContextClient    = "client"
	ContextRequestID = "requestID"
)

const (
	MessageMissingToken = "JWT Token not found"
	MessageInvalidToken = "Invalid JWT Token"
)

// RequireClient resolves the bearer token to a stored client and aborts with
// 401 when that fails. The client is looked up on every request.
func RequireClient(tokens *auth.TokenManager, clients catalog.ClientRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := auth.ExtractBearer(c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				httperr.Unauthorized(c, MessageMissingToken)
				return
			}
			httperr.Unauthorized(c, MessageInvalidToken)
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			httperr.Unauthorized(c, MessageInvalidToken)
			return
		}

		id, err := claims.ClientID()
		if err != nil {
			httperr.Unauthorized(c, MessageInvalidToken)
			return
		}

		client, err := clients.GetClient(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, catalog.ErrRecordNotFound) {
				log := logger.Get()
				log.Error().Err(err).Uint("client_id", id).Msg("principal lookup failed")
			}
			httperr.Unauthorized(c, MessageInvalidToken)
			return
		}

		c.Set(ContextClient, client)
		c.Next()
	}
}

// Principal is the authenticated client, or nil outside RequireClient.
func Principal(c *gin.Context) *models.Client {
	v, ok := c.Get(ContextClient)
	if !ok {
		return nil
	}
	client, _ := v.(*models.Client)
	return client
}
