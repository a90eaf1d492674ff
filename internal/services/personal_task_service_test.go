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

func setupPersonalTaskTestEnv(t *testing.T) (*gorm.DB, *PersonalTaskService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.PersonalTask{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewPersonalTaskService(repository.NewPersonalTaskRepository(db))
}

func TestPersonalTaskService_CreateAndList(t *testing.T) {
	db, service := setupPersonalTaskTestEnv(t)

	owner := standardUser()
	other := models.User{ID: 3, Name: "Oumar", Email: "oumar@example.com", Role: models.RoleStandard}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	due := time.Now().AddDate(0, 0, 2)
	task, err := service.Create(owner, PersonalTaskInput{
		Name:        "Acheter du café",
		Description: "Pour la réunion de lundi",
		DueDate:     &due,
		IsImportant: true,
	})
	require.NoError(t, err)
	require.Equal(t, owner.ID, task.UserID)
	require.False(t, task.IsCompleted)

	_, err = service.Create(owner, PersonalTaskInput{Name: "   "})
	require.ErrorIs(t, err, ErrPersonalTaskNameRequired)

	mine, err := service.List(owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	// Each user only ever sees their own list.
	theirs, err := service.List(other)
	require.NoError(t, err)
	require.Empty(t, theirs)
}

func TestPersonalTaskService_OwnerOnlyMutations(t *testing.T) {
	db, service := setupPersonalTaskTestEnv(t)

	owner := standardUser()
	other := models.User{ID: 3, Name: "Oumar", Email: "oumar@example.com", Role: models.RoleStandard}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	task, err := service.Create(owner, PersonalTaskInput{Name: "Relire le rapport"})
	require.NoError(t, err)

	t.Run("owner updates", func(t *testing.T) {
		updated, err := service.Update(owner, task.ID, PersonalTaskInput{
			Name:        "Relire le rapport",
			IsCompleted: true,
		})
		require.NoError(t, err)
		require.True(t, updated.IsCompleted)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		_, err := service.Update(other, task.ID, PersonalTaskInput{Name: "Détournée"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := service.Delete(other, task.ID)
		require.ErrorIs(t, err, ErrForbidden)

		var count int64
		db.Model(&models.PersonalTask{}).Count(&count)
		require.EqualValues(t, 1, count)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, service.Delete(owner, task.ID))

		err := service.Delete(owner, task.ID)
		require.ErrorIs(t, err, ErrPersonalTaskNotFound)
	})
}
