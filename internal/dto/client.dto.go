package dto

import "github.com/BruksfildServices01/catalog-api/internal/models"

// ClientShowDTO is the show_client visibility group. The password hash is
// never part of it.
type ClientShowDTO struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

func ClientShow(c *models.Client) ClientShowDTO {
	return ClientShowDTO{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Roles: c.RoleList(),
	}
}
