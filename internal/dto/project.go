package dto

import (
	"time"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"desc_prj"`
	DueDate     time.Time            `json:"due_date"`
	Status      models.ProjectStatus `json:"status"`
	CreatedBy   uint64               `json:"created_by"`
	TimeLeft    string               `json:"time_left"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`

	TasksCount   int       `json:"tasks_count"`
	MembersCount int       `json:"members_count"`
	Members      []UserDTO `json:"members,omitempty"`
}

// ProjectDetailDTO is a project with the users eligible to join it.
type ProjectDetailDTO struct {
	Project    ProjectDTO `json:"project"`
	Candidates []UserDTO  `json:"all_users"`
}

// MembershipDTO represents one of a user's project assignments.
type MembershipDTO struct {
	ID        uint64     `json:"id"`
	ProjectID uint64     `json:"project_id"`
	Project   ProjectDTO `json:"project"`
}

// ToProjectDTO converts a Project model to ProjectDTO, deriving time_left
// relative to now.
func ToProjectDTO(project models.Project, now time.Time) ProjectDTO {
	dto := ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		DueDate:      project.DueDate,
		Status:       project.Status,
		CreatedBy:    project.CreatedBy,
		TimeLeft:     utils.TimeLeft(project.DueDate, now),
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
		TasksCount:   len(project.Tasks),
		MembersCount: len(project.Members),
	}

	// Include members if preloaded
	if len(project.Members) > 0 {
		dto.Members = make([]UserDTO, 0, len(project.Members))
		for _, member := range project.Members {
			if member.User.ID != 0 {
				dto.Members = append(dto.Members, ToUserDTO(member.User))
			}
		}
	}

	return dto
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project, now time.Time) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project, now)
	}
	return dtos
}

// ToMembershipDTO converts a membership with its preloaded project
func ToMembershipDTO(member models.ProjectMember, now time.Time) MembershipDTO {
	return MembershipDTO{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		Project:   ToProjectDTO(member.Project, now),
	}
}

// ToMembershipDTOs converts a slice of memberships
func ToMembershipDTOs(members []models.ProjectMember, now time.Time) []MembershipDTO {
	dtos := make([]MembershipDTO, len(members))
	for i, member := range members {
		dtos[i] = ToMembershipDTO(member, now)
	}
	return dtos
}
