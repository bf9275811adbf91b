package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID reads a strictly positive decimal id. Anything else is treated as a
// route that does not exist.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
