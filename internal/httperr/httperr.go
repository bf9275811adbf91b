package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/logger"
)

const (
	MessageForbidden        = "access not authorized for this resource"
	MessageInternal         = "internal server error"
	MessageRouteNotFound    = "resource not found"
	MessageMethodNotAllowed = "method not allowed"
)

// HTTPError is the error envelope. It never carries a payload key.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Code:    status,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    status,
		Message: message,
	})
}

// Respond writes err as an envelope. Business errors keep their status and
// message; anything else is logged and answered with a generic 500.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		Write(c, be.Kind.Status(), be.Message)
		return
	}

	log := logger.Get()
	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("unhandled error")

	Internal(c)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, MessageInternal)
}

func Unauthorized(c *gin.Context, message string) {
	Abort(c, http.StatusUnauthorized, message)
}

// Recovery turns a panic into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log := logger.Get()
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		Abort(c, http.StatusInternalServerError, MessageInternal)
	})
}

func NoRoute(c *gin.Context) {
	Write(c, http.StatusNotFound, MessageRouteNotFound)
}

func NoMethod(c *gin.Context) {
	Write(c, http.StatusMethodNotAllowed, MessageMethodNotAllowed)
}
