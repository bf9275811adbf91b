package dto

import (
	"time"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

// ProductListDTO is the list_product visibility group.
type ProductListDTO struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ProductShowDTO is the show_product visibility group.
type ProductShowDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ProductList(p *models.Product) ProductListDTO {
	return ProductListDTO{
		ID:    p.ID,
		Title: p.Title,
	}
}

func ProductShow(p *models.Product) ProductShowDTO {
	return ProductShowDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt,
	}
}
