package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

var ErrAdminUndeletable = errors.New("les administrateurs ne peuvent pas être supprimés")

// UserService provides directory operations over accounts. All of them are
// admin-gated.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns users matching the filter, newest first. Admin only.
func (s *UserService) List(actor models.User, filter repository.UserFilter) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := s.userRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListPage returns one page of users matching the filter together with the
// total match count. Admin only.
func (s *UserService) ListPage(actor models.User, filter repository.UserFilter, params utils.PaginationParams) ([]models.User, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, ErrForbidden
	}

	users, total, err := s.userRepo.ListPage(filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// Delete removes a user account. Admin only; admin accounts can never be
// deleted through this path.
func (s *UserService) Delete(actor models.User, id uint64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	target, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if target.IsAdmin() {
		return ErrAdminUndeletable
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
