package models

import (
	"time"

	"github.com/lib/pq"
)

const RoleUser = "ROLE_USER"

// Client is an API consumer. It logs in with Email and owns Users.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string         `gorm:"size:255;not null" json:"name"`
	Email    string         `gorm:"size:180;uniqueIndex;not null" json:"email"`
	Password string         `gorm:"size:255;not null" json:"-"`
	Roles    pq.StringArray `gorm:"type:text[]" json:"roles"`

	Users []User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoleList always contains ROLE_USER, the baseline role of every client.
func (c *Client) RoleList() []string {
	roles := make([]string, 0, len(c.Roles)+1)
	seen := make(map[string]struct{}, len(c.Roles)+1)
	add := func(r string) {
		if _, ok := seen[r]; ok || r == "" {
			return
		}
		seen[r] = struct{}{}
		roles = append(roles, r)
	}
	for _, r := range c.Roles {
		add(r)
	}
	add(RoleUser)
	return roles
}
