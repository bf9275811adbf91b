package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MessageOK      = "OK"
	MessageCreated = "Created."
	MessageDeleted = "Deleted"
)

// Payload keys of the success envelope.
const (
	KeyProducts = "products"
	KeyProduct  = "product"
	KeyUsers    = "users"
	KeyUser     = "user"
	KeyClient   = "client"
	KeyLogs     = "logs"
)

// Envelope renders {"code", "message"} plus an optional payload under key.
func Envelope(status int, message, key string, payload any) gin.H {
	body := gin.H{
		"code":    status,
		"message": message,
	}
	if key != "" {
		body[key] = payload
	}
	return body
}

func Write(c *gin.Context, status int, message, key string, payload any) {
	c.JSON(status, Envelope(status, message, key, payload))
}

func OK(c *gin.Context, key string, payload any) {
	Write(c, http.StatusOK, MessageOK, key, payload)
}

func Created(c *gin.Context, key string, payload any) {
	Write(c, http.StatusCreated, MessageCreated, key, payload)
}

func Deleted(c *gin.Context) {
	Write(c, http.StatusOK, MessageDeleted, "", nil)
}

// List maps every entity through view before enveloping, so a collection is
// never rendered with more detail than its list group allows.
func List[E any, V any](c *gin.Context, key string, items []E, view func(*E) V) {
	out := make([]V, 0, len(items))
	for i := range items {
		out = append(out, view(&items[i]))
	}
	OK(c, key, out)
}
