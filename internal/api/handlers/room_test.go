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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	mockRoomService     *mocks.MockRoomService
	mockAnalysisService *mocks.MockAnalysisService
	handler             *handlers.RoomHandler
	http                *testutils.HTTPTestSuite
}

func (suite *RoomHandlerTestSuite) SetupTest() {
	suite.mockRoomService = new(mocks.MockRoomService)
	suite.mockAnalysisService = new(mocks.MockAnalysisService)
	suite.handler = handlers.NewRoomHandler(suite.mockRoomService, suite.mockAnalysisService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/projects/:id/rooms", suite.handler.CreateRoom)
	suite.http.Router.GET("/projects/:id/rooms", suite.handler.ListRooms)
	suite.http.Router.GET("/rooms/:id", suite.handler.GetRoom)
	suite.http.Router.PUT("/rooms/:id", suite.handler.UpdateRoom)
	suite.http.Router.PUT("/rooms/:id/furniture", suite.handler.ReplaceFurniture)
	suite.http.Router.PATCH("/rooms/:id/furniture/:itemId", suite.handler.UpdateFurnitureCount)
	suite.http.Router.POST("/rooms/:id/analyze", suite.handler.AnalyzeRoom)
	suite.http.Router.DELETE("/rooms/:id", suite.handler.DeleteRoom)
}

func (suite *RoomHandlerTestSuite) TearDownTest() {
	suite.mockRoomService.AssertExpectations(suite.T())
	suite.mockAnalysisService.AssertExpectations(suite.T())
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_Success() {
	resp := &service.RoomResponse{ID: 2, ProjectID: 1, Name: "double room"}
	suite.mockRoomService.On("Create", uint(1), mock.AnythingOfType("*service.CreateRoomRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/projects/1/rooms", gin.H{"name": "double room"})

	var got service.RoomResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), uint(1), got.ProjectID)
}

func (suite *RoomHandlerTestSuite) TestCreateRoom_ProjectNotFound() {
	suite.mockRoomService.On("Create", uint(9), mock.AnythingOfType("*service.CreateRoomRequest")).
		Return(nil, apperrors.ErrProjectNotFound)

	w := suite.http.MakeRequest(http.MethodPost, "/projects/9/rooms", gin.H{"name": "room"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "project not found")
}

func (suite *RoomHandlerTestSuite) TestListRooms_Success() {
	rooms := []service.RoomResponse{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	suite.mockRoomService.On("GetByProject", uint(1)).Return(rooms, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/1/rooms", nil)

	var got []service.RoomResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got, 2)
}

func (suite *RoomHandlerTestSuite) TestReplaceFurniture_Success() {
	resp := &service.RoomResponse{ID: 2, Name: "room"}
	suite.mockRoomService.On("ReplaceFurniture", uint(2), mock.AnythingOfType("*service.ReplaceFurnitureRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/rooms/2/furniture", gin.H{
		"furniture": []gin.H{{"type": "Sofa", "count": 2}},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoomHandlerTestSuite) TestUpdateFurnitureCount_Success() {
	itemID := uuid.New()
	resp := &service.RoomResponse{ID: 2}
	suite.mockRoomService.On("UpdateFurnitureCount", uint(2), itemID, mock.AnythingOfType("*service.UpdateFurnitureCountRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/rooms/2/furniture/"+itemID.String(), gin.H{"count": 5})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoomHandlerTestSuite) TestUpdateFurnitureCount_InvalidItemID() {
	w := suite.http.MakeRequest(http.MethodPatch, "/rooms/2/furniture/not-a-uuid", gin.H{"count": 5})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid furniture item ID")
}

func (suite *RoomHandlerTestSuite) TestUpdateFurnitureCount_ItemNotFound() {
	itemID := uuid.New()
	suite.mockRoomService.On("UpdateFurnitureCount", uint(2), itemID, mock.AnythingOfType("*service.UpdateFurnitureCountRequest")).
		Return(nil, apperrors.ErrFurnitureItemNotFound)

	w := suite.http.MakeRequest(http.MethodPatch, "/rooms/2/furniture/"+itemID.String(), gin.H{"count": 5})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RoomHandlerTestSuite) TestAnalyzeRoom_Success() {
	resp := &service.RoomResponse{ID: 2, Furniture: nil}
	suite.mockAnalysisService.On("AnalyzeRoom", mock.Anything, uint(2)).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/rooms/2/analyze", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RoomHandlerTestSuite) TestAnalyzeRoom_ExternalFailure() {
	suite.mockAnalysisService.On("AnalyzeRoom", mock.Anything, uint(2)).
		Return(nil, apperrors.NewExternalError("document intelligence", "generate: status 500"))

	w := suite.http.MakeRequest(http.MethodPost, "/rooms/2/analyze", nil)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func (suite *RoomHandlerTestSuite) TestDeleteRoom_Success() {
	suite.mockRoomService.On("Delete", uint(2)).Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/rooms/2", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestRoomHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}
