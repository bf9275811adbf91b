package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/catalog-api/internal/dto"
	"github.com/BruksfildServices01/catalog-api/internal/httperr"
	"github.com/BruksfildServices01/catalog-api/internal/httpresp"
	ucProduct "github.com/BruksfildServices01/catalog-api/internal/usecase/product"
)

type ProductHandler struct {
	list   *ucProduct.ListProducts
	show   *ucProduct.ShowProduct
	create *ucProduct.CreateProduct
}

func NewProductHandler(
	list *ucProduct.ListProducts,
	show *ucProduct.ShowProduct,
	create *ucProduct.CreateProduct,
) *ProductHandler {
	return &ProductHandler{
		list:   list,
		show:   show,
		create: create,
	}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.list.Execute(
		c.Request.Context(),
		c.Query("page"),
		c.Query("limit"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, httpresp.KeyProducts, products, dto.ProductList)
}

// GET /api/products/:id
func (h *ProductHandler) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		httperr.NotFound(c, ucProduct.MessageNotFound)
		return
	}

	p, err := h.show.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.KeyProduct, dto.ProductShow(p))
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in ucProduct.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.ErrDecode(err))
		return
	}

	p, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, httpresp.KeyProduct, dto.ProductShow(p))
}
