package handlers_test

import (
	"net/http"
	"testing"

	"furnishing-portal-backend/internal/api/handlers"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/mocks"
	"furnishing-portal-backend/internal/service"
	"furnishing-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockProjectService
	handler     *handlers.ProjectHandler
	http        *testutils.HTTPTestSuite
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.mockService = new(mocks.MockProjectService)
	suite.handler = handlers.NewProjectHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/projects", suite.handler.CreateProject)
	suite.http.Router.GET("/projects", suite.handler.ListProjects)
	suite.http.Router.GET("/projects/:id", suite.handler.GetProject)
	suite.http.Router.PUT("/projects/:id", suite.handler.UpdateProject)
	suite.http.Router.DELETE("/projects/:id", suite.handler.DeleteProject)
}

func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	resp := &service.ProjectResponse{ID: 1, Name: "Riverside Hotel"}
	suite.mockService.On("Create", mock.AnythingOfType("*service.CreateProjectRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/projects", gin.H{"name": "Riverside Hotel"})

	var got service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Riverside Hotel", got.Name)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_InvalidBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/projects", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_ReturnsRooms() {
	resp := &service.ProjectResponse{
		ID:    7,
		Name:  "Riverside Hotel",
		Rooms: []service.RoomResponse{{ID: 2, Name: "double room"}},
	}
	suite.mockService.On("GetWithRooms", uint(7)).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/7", nil)

	var got service.ProjectResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.Rooms, 1)
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	suite.mockService.On("GetWithRooms", uint(99)).Return(nil, apperrors.ErrProjectNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/99", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "project not found")
}

func (suite *ProjectHandlerTestSuite) TestGetProject_InvalidID() {
	w := suite.http.MakeRequest(http.MethodGet, "/projects/abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")
}

func (suite *ProjectHandlerTestSuite) TestListProjects_PassesPagination() {
	resp := &service.ProjectListResponse{Projects: []service.ProjectResponse{}, Page: 2, PageSize: 5}
	suite.mockService.On("GetAll", 2, 5).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects?page=2&page_size=5", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_ValidationError() {
	suite.mockService.On("Update", uint(1), mock.AnythingOfType("*service.UpdateProjectRequest")).
		Return(nil, apperrors.NewValidationError("name", "is required"))

	w := suite.http.MakeRequest(http.MethodPut, "/projects/1", gin.H{"name": ""})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_Success() {
	suite.mockService.On("Delete", uint(4)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/projects/4", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
