package dto

import (
	"time"

	"prompt-judge/models"
)

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserDTO constructs UserDTO from models.User. The password hash is
// never exposed.
func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
