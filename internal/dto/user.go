package dto

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"type_user"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserWithLinkDTO is a user annotated with whether they already belong to
// some project, for the admin member picker.
type UserWithLinkDTO struct {
	UserDTO
	IsLinked bool `json:"is_linked"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

// ToUserWithLinkDTOs annotates users with membership links
func ToUserWithLinkDTOs(users []models.User, linked map[uint64]bool) []UserWithLinkDTO {
	dtos := make([]UserWithLinkDTO, len(users))
	for i, user := range users {
		dtos[i] = UserWithLinkDTO{
			UserDTO:  ToUserDTO(user),
			IsLinked: linked[user.ID],
		}
	}
	return dtos
}
