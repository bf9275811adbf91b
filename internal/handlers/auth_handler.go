package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/httpresp"
	ucLogin "github.com/BruksfildServices01/catalog-api/internal/usecase/login"
)

type AuthHandler struct {
	login *ucLogin.Login
}

func NewAuthHandler(login *ucLogin.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// POST /api/login_check
func (h *AuthHandler) Login(c *gin.Context) {
	var in ucLogin.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.ErrDecode(err))
		return
	}

	res, err := h.login.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	body := httpresp.Envelope(http.StatusOK, httpresp.MessageOK, "", nil)
	body["email"] = res.Email
	body["roles"] = res.Roles
	body["token"] = res.Token
	c.JSON(http.StatusOK, body)
}
