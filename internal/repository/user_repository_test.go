package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "type_user", "created_at"}).
		AddRow(1, "Awa Diop", "awa@example.com", string(models.RoleStandard), time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email =`).
		WithArgs("awa@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("awa@example.com")
	require.NoError(t, err)
	require.Equal(t, "Awa Diop", user.Name)
	require.Equal(t, models.RoleStandard, user.Role)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_ListAppliesFilters(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	role := models.RoleStandard
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "type_user"}).
		AddRow(2, "Membre", "membre@example.com", string(models.RoleStandard))

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE type_user = (.+) AND created_at >= (.+) AND created_at <= (.+) ORDER BY created_at DESC`).
		WithArgs(string(role), start, end).
		WillReturnRows(rows)

	users, err := repo.List(UserFilter{Role: &role, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "membre@example.com", users[0].Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_DeleteIsSoft(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "deleted_at"=`).
		WithArgs(sqlmock.AnyArg(), 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Count(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.Count()
	require.NoError(t, err)
	require.EqualValues(t, 4, count)

	require.NoError(t, mock.ExpectationsWereMet())
}
