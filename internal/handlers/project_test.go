package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sdiallo/projecthub-api/internal/constants"
	"github.com/sdiallo/projecthub-api/internal/database"
	"github.com/sdiallo/projecthub-api/internal/models"
	"github.com/sdiallo/projecthub-api/internal/repository"
	"github.com/sdiallo/projecthub-api/internal/services"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *ProjectHandler
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.ProjectTask{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	projectService := services.NewProjectService(
		repository.NewProjectRepository(suite.db),
		repository.NewUserRepository(suite.db),
	)
	suite.handler = NewProjectHandler(projectService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper functions to create test data
func (suite *ProjectHandlerTestSuite) createTestAdmin() *models.User {
	user := &models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleAdmin,
	}
	suite.db.Create(user)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestMember(email string) *models.User {
	user := &models.User{
		Name:         "Membre",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleStandard,
	}
	suite.db.Create(user)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestProject(name string, status models.ProjectStatus, creatorID uint64) *models.Project {
	project := &models.Project{
		Name:        name,
		Description: "Description de test",
		DueDate:     time.Now().AddDate(0, 2, 0),
		Status:      status,
		CreatedBy:   creatorID,
	}
	suite.db.Create(project)
	return project
}

// Helper function to create an authenticated context
func (suite *ProjectHandlerTestSuite) createAuthContext(method, url string, body []byte, actor models.User) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, actor.ID)
	c.Set(constants.ContextKeyActor, actor)

	return c, w
}

func (suite *ProjectHandlerTestSuite) setIDParam(c *gin.Context, id uint64) {
	c.Params = gin.Params{{Key: "id", Value: strconv.FormatUint(id, 10)}}
}

// TestCreateProject_Success tests successful project creation
func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	admin := suite.createTestAdmin()

	requestBody := map[string]interface{}{
		"name":     "Refonte intranet",
		"desc_prj": "Migration du portail interne",
		"due_date": time.Now().AddDate(0, 1, 0).Format(constants.DateLayout),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/projects", body, *admin)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Refonte intranet", response["name"])
	assert.Equal(suite.T(), string(models.ProjectStatusOngoing), response["status"])
	assert.NotEmpty(suite.T(), response["time_left"])
}

// TestCreateProject_DuplicateName tests creation with a name already in use
func (suite *ProjectHandlerTestSuite) TestCreateProject_DuplicateName() {
	admin := suite.createTestAdmin()
	suite.createTestProject("Refonte intranet", models.ProjectStatusOngoing, admin.ID)

	requestBody := map[string]interface{}{
		"name":     "Refonte intranet",
		"desc_prj": "Doublon",
		"due_date": time.Now().AddDate(0, 1, 0).Format(constants.DateLayout),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/projects", body, *admin)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestCreateProject_PastDueDate tests creation with a past due date
func (suite *ProjectHandlerTestSuite) TestCreateProject_PastDueDate() {
	admin := suite.createTestAdmin()

	requestBody := map[string]interface{}{
		"name":     "Projet en retard",
		"desc_prj": "Date invalide",
		"due_date": time.Now().AddDate(0, 0, -1).Format(constants.DateLayout),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/projects", body, *admin)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateProject_Forbidden tests creation by a standard user
func (suite *ProjectHandlerTestSuite) TestCreateProject_Forbidden() {
	member := suite.createTestMember("membre@example.com")

	requestBody := map[string]interface{}{
		"name":     "Projet pirate",
		"desc_prj": "Interdit",
		"due_date": time.Now().AddDate(0, 1, 0).Format(constants.DateLayout),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("POST", "/api/projects", body, *member)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestDeleteProject_OngoingBlocked tests deletion of an ongoing project
func (suite *ProjectHandlerTestSuite) TestDeleteProject_OngoingBlocked() {
	admin := suite.createTestAdmin()
	project := suite.createTestProject("Alpha", models.ProjectStatusOngoing, admin.ID)

	c, w := suite.createAuthContext("DELETE", "/api/projects/1", nil, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.DeleteProject(c)

	assert.Equal(suite.T(), http.StatusPreconditionFailed, w.Code)

	// Verify the project is untouched
	var kept models.Project
	err := suite.db.First(&kept, project.ID).Error
	assert.NoError(suite.T(), err)
}

// TestDeleteProject_CancelledSuccess tests deletion of a cancelled project
func (suite *ProjectHandlerTestSuite) TestDeleteProject_CancelledSuccess() {
	admin := suite.createTestAdmin()
	project := suite.createTestProject("Alpha", models.ProjectStatusCancelled, admin.ID)

	c, w := suite.createAuthContext("DELETE", "/api/projects/1", nil, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.DeleteProject(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var deleted models.Project
	err := suite.db.First(&deleted, project.ID).Error
	assert.Error(suite.T(), err) // Soft deleted
}

// TestUpdateProjectStatus_Success tests a status change
func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus_Success() {
	admin := suite.createTestAdmin()
	project := suite.createTestProject("Beta", models.ProjectStatusOngoing, admin.ID)

	requestBody := map[string]interface{}{
		"status": string(models.ProjectStatusCancelled),
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", "/api/projects/1/status", body, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.UpdateProjectStatus(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Project
	suite.db.First(&updated, project.ID)
	assert.Equal(suite.T(), models.ProjectStatusCancelled, updated.Status)
}

// TestUpdateProjectStatus_Invalid tests a status outside the enum
func (suite *ProjectHandlerTestSuite) TestUpdateProjectStatus_Invalid() {
	admin := suite.createTestAdmin()
	project := suite.createTestProject("Gamma", models.ProjectStatusOngoing, admin.ID)

	requestBody := map[string]interface{}{
		"status": "Archivé",
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", "/api/projects/1/status", body, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.UpdateProjectStatus(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestToggleMember_AddThenRemove tests the membership toggle round trip
func (suite *ProjectHandlerTestSuite) TestToggleMember_AddThenRemove() {
	admin := suite.createTestAdmin()
	member := suite.createTestMember("membre@example.com")
	project := suite.createTestProject("Delta", models.ProjectStatusOngoing, admin.ID)

	requestBody := map[string]interface{}{
		"user_id": member.ID,
	}
	body, _ := json.Marshal(requestBody)

	c, w := suite.createAuthContext("PUT", "/api/projects/1/members", body, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.ToggleMember(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), true, response["added"])

	// Second toggle removes the membership
	c, w = suite.createAuthContext("PUT", "/api/projects/1/members", body, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.ToggleMember(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), false, response["added"])

	var count int64
	suite.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", project.ID, member.ID).
		Count(&count)
	assert.Zero(suite.T(), count)
}

// TestGetProject_WithCandidates tests the detail payload
func (suite *ProjectHandlerTestSuite) TestGetProject_WithCandidates() {
	admin := suite.createTestAdmin()
	suite.createTestMember("membre@example.com")
	project := suite.createTestProject("Epsilon", models.ProjectStatusOngoing, admin.ID)

	c, w := suite.createAuthContext("GET", "/api/projects/1", nil, *admin)
	suite.setIDParam(c, project.ID)

	suite.handler.GetProject(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), response, "all_users")

	candidates := response["all_users"].([]interface{})
	assert.Len(suite.T(), candidates, 1)
}

// TestGetProject_NotFound tests an unknown project ID
func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	admin := suite.createTestAdmin()

	c, w := suite.createAuthContext("GET", "/api/projects/9999", nil, *admin)
	suite.setIDParam(c, 9999)

	suite.handler.GetProject(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
