package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
)

func TestDashboardService_GetSummary(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.ProjectTask{},
		&models.PersonalTask{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	service := NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		repository.NewProjectTaskRepository(db),
		repository.NewPersonalTaskRepository(db),
	)

	admin := adminUser()
	member := standardUser()
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&member).Error)

	project := models.Project{
		Name:      "Observatoire",
		DueDate:   time.Now().AddDate(0, 1, 0),
		Status:    models.ProjectStatusOngoing,
		CreatedBy: admin.ID,
	}
	require.NoError(t, db.Create(&project).Error)

	mine := models.ProjectTask{
		Description: "Préparer la démo",
		DueDate:     time.Now().AddDate(0, 0, 5),
		Status:      models.TaskStatusPending,
		UserID:      member.ID,
		ProjectID:   project.ID,
		CreatedBy:   admin.ID,
	}
	notMine := models.ProjectTask{
		Description: "Relire le cahier des charges",
		DueDate:     time.Now().AddDate(0, 0, 5),
		Status:      models.TaskStatusPending,
		UserID:      admin.ID,
		ProjectID:   project.ID,
		CreatedBy:   admin.ID,
	}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&notMine).Error)

	require.NoError(t, db.Create(&models.PersonalTask{Name: "Courses", UserID: member.ID}).Error)
	require.NoError(t, db.Create(&models.PersonalTask{Name: "Sport", UserID: admin.ID}).Error)

	t.Run("admin view", func(t *testing.T) {
		summary, err := service.GetSummary(admin, false)
		require.NoError(t, err)
		require.EqualValues(t, 2, summary.TotalUsers)
		require.EqualValues(t, 1, summary.TotalProjects)
		require.EqualValues(t, 2, summary.TotalTasks)
		require.EqualValues(t, 1, summary.MyTotalTasks)
		require.Len(t, summary.Projects, 1)
		require.Len(t, summary.Projects[0].Tasks, 2)
		require.Len(t, summary.Tasks, 2)
	})

	t.Run("member view only lists own assignments", func(t *testing.T) {
		summary, err := service.GetSummary(member, true)
		require.NoError(t, err)
		require.Len(t, summary.Tasks, 1)
		require.Equal(t, mine.ID, summary.Tasks[0].ID)
		require.Equal(t, member.ID, summary.Tasks[0].Assignee.ID)
	})
}
