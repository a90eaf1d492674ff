package repository

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

// UserFilter holds filtering options for listing users
type UserFilter struct {
	Role      *models.UserRole
	StartDate *time.Time
	EndDate   *time.Time
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves users matching the filter, newest first
	List(filter UserFilter) ([]models.User, error)

	// ListPage retrieves one page of users matching the filter, newest
	// first, together with the total match count
	ListPage(filter UserFilter, params utils.PaginationParams) ([]models.User, int64, error)

	// Delete soft deletes a user
	Delete(id uint64) error

	// Count counts all users
	Count() (int64, error)
}

// ReferralRepository defines the interface for referral data access
type ReferralRepository interface {
	// Create creates a new referral
	Create(referral *models.Referral) error

	// FindByID finds a referral by ID
	FindByID(id uint64) (*models.Referral, error)

	// FindByCode finds a referral by its code
	FindByCode(code string) (*models.Referral, error)

	// CodeExists reports whether a referral code is already taken
	CodeExists(code string) (bool, error)

	// List retrieves all referrals, newest first
	List() ([]models.Referral, error)

	// Delete soft deletes a referral
	Delete(id uint64) error
}

// ProjectRepository defines the interface for project and membership data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// NameExists reports whether a project name is taken, excluding excludeID
	NameExists(name string, excludeID uint64) (bool, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes a project together with its tasks and memberships
	Delete(id uint64) error

	// ListByCreator lists projects created by a user, newest first
	ListByCreator(creatorID uint64, preload ...string) ([]models.Project, error)

	// ListAll lists every project, newest first
	ListAll(preload ...string) ([]models.Project, error)

	// Count counts all projects
	Count() (int64, error)

	// ToggleMember flips the membership of (projectID, userID).
	// Returns true when the membership was added, false when removed.
	ToggleMember(projectID, userID uint64) (bool, error)

	// ListMembershipsByUser lists memberships of a user with projects preloaded
	ListMembershipsByUser(userID uint64) ([]models.ProjectMember, error)

	// ListMemberUserIDs lists user IDs that belong to at least one project
	ListMemberUserIDs() ([]uint64, error)

	// ListNonMembers lists standard users that are not members of the project
	ListNonMembers(projectID uint64) ([]models.User, error)
}

// ProjectTaskRepository defines the interface for project task data access
type ProjectTaskRepository interface {
	// Create creates a new project task
	Create(task *models.ProjectTask) error

	// FindByID finds a project task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.ProjectTask, error)

	// Update updates a project task
	Update(task *models.ProjectTask) error

	// Delete soft deletes a project task
	Delete(id uint64) error

	// ListAll lists all project tasks, newest first
	ListAll(preload ...string) ([]models.ProjectTask, error)

	// ListByAssignee lists tasks assigned to a user, newest first
	ListByAssignee(userID uint64, preload ...string) ([]models.ProjectTask, error)
}

// PersonalTaskRepository defines the interface for personal task data access
type PersonalTaskRepository interface {
	// Create creates a new personal task
	Create(task *models.PersonalTask) error

	// FindByID finds a personal task by ID
	FindByID(id uint64) (*models.PersonalTask, error)

	// Update updates a personal task
	Update(task *models.PersonalTask) error

	// Delete soft deletes a personal task
	Delete(id uint64) error

	// ListByOwner lists a user's personal tasks, newest first
	ListByOwner(userID uint64) ([]models.PersonalTask, error)

	// Count counts all personal tasks
	Count() (int64, error)

	// CountByOwner counts a user's personal tasks
	CountByOwner(userID uint64) (int64, error)
}
