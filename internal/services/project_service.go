package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

var (
	ErrProjectNotFound      = errors.New("projet introuvable : le projet spécifié n'existe pas ou a déjà été supprimé")
	ErrProjectNameTaken     = errors.New("un projet porte déjà ce nom")
	ErrProjectNameRequired  = errors.New("le nom du projet est obligatoire")
	ErrDueDateNotFuture     = errors.New("la date d'échéance doit être postérieure à la date actuelle")
	ErrInvalidProjectStatus = errors.New("statut invalide : veuillez choisir parmi les options disponibles")
	ErrProjectNotDeletable  = errors.New("suppression impossible : seuls les projets terminés ou annulés peuvent être supprimés")
)

// ProjectService owns the project lifecycle and membership rules.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	DueDate     time.Time
	Status      models.ProjectStatus
}

// Create stores a new project owned by the acting admin. The name must be
// globally unique and the due date strictly in the future.
func (s *ProjectService) Create(actor models.User, input CreateProjectInput) (*models.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	status := input.Status
	if status == "" {
		status = models.ProjectStatusOngoing
	}
	if !models.ValidProjectStatus(status) {
		return nil, ErrInvalidProjectStatus
	}

	if !utils.DateOnly(input.DueDate).After(utils.DateOnly(time.Now())) {
		return nil, ErrDueDateNotFuture
	}

	taken, err := s.projectRepo.NameExists(name, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}
	if taken {
		return nil, ErrProjectNameTaken
	}

	project := &models.Project{
		Name:        name,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      status,
		CreatedBy:   actor.ID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateDetailsInput represents parameters to update a project's details.
type UpdateDetailsInput struct {
	Name        string
	Description string
	DueDate     time.Time
}

// UpdateDetails updates name, description and due date. Admin only. The
// uniqueness check excludes the project's own current name.
func (s *ProjectService) UpdateDetails(actor models.User, projectID uint64, input UpdateDetailsInput) (*models.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProjectNameRequired
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	taken, err := s.projectRepo.NameExists(name, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}
	if taken {
		return nil, ErrProjectNameTaken
	}

	project.Name = name
	project.Description = input.Description
	project.DueDate = input.DueDate

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// UpdateStatus moves a project to a new status. Admin only. Transitions go
// through the single gate in models so the permissive graph stays in one
// place.
func (s *ProjectService) UpdateStatus(actor models.User, projectID uint64, status models.ProjectStatus) (*models.Project, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !models.CanTransitionProjectStatus(project.Status, status) {
		return nil, ErrInvalidProjectStatus
	}

	project.Status = status
	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	return project, nil
}

// Delete removes a project. Admin only. Pending and ongoing projects are
// protected; the row is untouched when the guard fires.
func (s *ProjectService) Delete(actor models.User, projectID uint64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !project.Deletable() {
		return ErrProjectNotDeletable
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// ToggleMember flips a user's membership in a project: absent becomes
// present, present becomes absent. Admin only. Returns true when the user
// was added.
func (s *ProjectService) ToggleMember(actor models.User, projectID, userID uint64) (bool, error) {
	if !actor.IsAdmin() {
		return false, ErrForbidden
	}

	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProjectNotFound
		}
		return false, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("failed to find user: %w", err)
	}

	added, err := s.projectRepo.ToggleMember(projectID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to toggle membership: %w", err)
	}

	return added, nil
}

// GetWithCandidates returns a project with its members plus the standard
// users not yet in it, for the add-member picker.
func (s *ProjectService) GetWithCandidates(projectID uint64) (*models.Project, []models.User, error) {
	project, err := s.projectRepo.FindByID(projectID, "Members", "Members.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	candidates, err := s.projectRepo.ListNonMembers(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list candidate members: %w", err)
	}

	return project, candidates, nil
}

// ListForUser returns the memberships of a user with projects preloaded.
func (s *ProjectService) ListForUser(userID uint64) ([]models.ProjectMember, error) {
	memberships, err := s.projectRepo.ListMembershipsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// AdminListing bundles the admin project page data: the actor's projects
// with members, all standard users, and the set of user IDs already linked
// to some project.
type AdminListing struct {
	Projects  []models.Project
	Users     []models.User
	LinkedIDs map[uint64]bool
}

// ListAdmin returns the admin project listing. Admin only.
func (s *ProjectService) ListAdmin(actor models.User) (*AdminListing, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	projects, err := s.projectRepo.ListByCreator(actor.ID, "Members", "Members.User")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	role := models.RoleStandard
	users, err := s.userRepo.List(repository.UserFilter{Role: &role})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	memberIDs, err := s.projectRepo.ListMemberUserIDs()
	if err != nil {
		return nil, fmt.Errorf("failed to list linked users: %w", err)
	}

	linked := make(map[uint64]bool, len(memberIDs))
	for _, id := range memberIDs {
		linked[id] = true
	}

	return &AdminListing{
		Projects:  projects,
		Users:     users,
		LinkedIDs: linked,
	}, nil
}
