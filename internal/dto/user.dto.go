package dto

import (
	"time"

	"github.com/BruksfildServices01/catalog-api/internal/models"
)

// UserListDTO is the list_user visibility group.
type UserListDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UserOwnerDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// UserShowDTO is the show_user visibility group.
type UserShowDTO struct {
	ID         uint         `json:"id"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Email      string       `json:"email"`
	Address    *string      `json:"address"`
	PostalCode *string      `json:"postalCode"`
	City       *string      `json:"city"`
	CreatedAt  time.Time    `json:"createdAt"`
	Client     UserOwnerDTO `json:"client"`
}

func UserList(u *models.User) UserListDTO {
	return UserListDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func UserShow(u *models.User) UserShowDTO {
	return UserShowDTO{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Address:    u.Address,
		PostalCode: u.PostalCode,
		City:       u.City,
		CreatedAt:  u.CreatedAt,
		Client: UserOwnerDTO{
			ID:   u.ClientID,
			Name: u.Client.Name,
		},
	}
}
