package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/dto"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/httpresp"
	"github.com/BruksfildServices01/catalog-api/internal/middleware"
	ucUser "github.com/BruksfildServices01/catalog-api/internal/usecase/user"
)

type UserHandler struct {
	list   *ucUser.ListUsers
	show   *ucUser.ShowUser
	create *ucUser.CreateUser
	delete *ucUser.DeleteUser
}

func NewUserHandler(
	list *ucUser.ListUsers,
	show *ucUser.ShowUser,
	create *ucUser.CreateUser,
	del *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		list:   list,
		show:   show,
		create: create,
		delete: del,
	}
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(
		c.Request.Context(),
		middleware.Principal(c),
		c.Query("page"),
		c.Query("limit"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, httpresp.KeyUsers, users, dto.UserList)
}

// GET /api/users/:id
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.NotFound(c, ucUser.MessageNotFound)
		return
	}

	u, err := h.show.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.KeyUser, dto.UserShow(u))
}

// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var in ucUser.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.ErrDecode(err))
		return
	}

	u, err := h.create.Execute(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, httpresp.KeyUser, dto.UserShow(u))
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.NotFound(c, ucUser.MessageNotFound)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Deleted(c)
}
