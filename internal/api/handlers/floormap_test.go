package handlers_test

import (
	"net/http"
	"testing"

	"furnishing-portal-backend/internal/api/handlers"
	"furnishing-portal-backend/internal/database/models"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/mocks"
	"furnishing-portal-backend/internal/service"
	"furnishing-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FloorMapHandlerTestSuite struct {
	suite.Suite
	mockFloorMapping *mocks.MockFloorMappingService
	mockAnalysis     *mocks.MockAnalysisService
	handler          *handlers.FloorMapHandler
	http             *testutils.HTTPTestSuite
}

func (suite *FloorMapHandlerTestSuite) SetupTest() {
	suite.mockFloorMapping = new(mocks.MockFloorMappingService)
	suite.mockAnalysis = new(mocks.MockAnalysisService)
	suite.handler = handlers.NewFloorMapHandler(suite.mockFloorMapping, suite.mockAnalysis)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/projects/:id/floor-mapping", suite.handler.GetFloorMapping)
	suite.http.Router.PUT("/projects/:id/floor-mapping", suite.handler.SaveFloorMapping)
	suite.http.Router.PATCH("/projects/:id/floor-mapping", suite.handler.EditFloorMapping)
	suite.http.Router.POST("/projects/:id/floor-mapping/analyze", suite.handler.AnalyzeFloorMapping)
}

func (suite *FloorMapHandlerTestSuite) TearDownTest() {
	suite.mockFloorMapping.AssertExpectations(suite.T())
	suite.mockAnalysis.AssertExpectations(suite.T())
}

func (suite *FloorMapHandlerTestSuite) TestGetFloorMapping_Success() {
	resp := &service.FloorMappingResponse{
		ProjectID:    1,
		FloorMapping: testutils.SampleFloorMapping(),
	}
	suite.mockFloorMapping.On("Get", uint(1)).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/projects/1/floor-mapping", nil)

	var got service.FloorMappingResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Len(suite.T(), got.FloorMapping, 2)
}

func (suite *FloorMapHandlerTestSuite) TestSaveFloorMapping_Ragged() {
	suite.mockFloorMapping.On("Save", uint(1), mock.AnythingOfType("*service.SaveFloorMappingRequest")).
		Return(nil, apperrors.ErrRaggedFloorMapping)

	w := suite.http.MakeRequest(http.MethodPut, "/projects/1/floor-mapping", gin.H{
		"floor_mapping": []gin.H{{"name": "A", "total": 1, "floors": []gin.H{}}},
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "same floor columns")
}

func (suite *FloorMapHandlerTestSuite) TestSaveFloorMapping_NegativeCount() {
	suite.mockFloorMapping.On("Save", uint(1), mock.AnythingOfType("*service.SaveFloorMappingRequest")).
		Return(nil, apperrors.ErrNegativeFloorCount)

	w := suite.http.MakeRequest(http.MethodPut, "/projects/1/floor-mapping", gin.H{
		"floor_mapping": []gin.H{{"name": "A", "total": -2, "floors": []gin.H{
			{"name": "1F", "count": -5},
			{"name": "2F", "count": 3},
		}}},
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "cannot be negative")
}

func (suite *FloorMapHandlerTestSuite) TestSaveFloorMapping_Success() {
	resp := &service.FloorMappingResponse{ProjectID: 1, FloorMapping: testutils.SampleFloorMapping()}
	suite.mockFloorMapping.On("Save", uint(1), mock.AnythingOfType("*service.SaveFloorMappingRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPut, "/projects/1/floor-mapping", gin.H{
		"floor_mapping": testutils.SampleFloorMapping(),
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FloorMapHandlerTestSuite) TestEditFloorMapping_Success() {
	resp := &service.FloorMappingResponse{ProjectID: 1, FloorMapping: models.FloorMapping{}}
	suite.mockFloorMapping.On("ApplyEdits", uint(1), mock.AnythingOfType("*service.EditFloorMappingRequest")).Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/projects/1/floor-mapping", gin.H{
		"edits": []gin.H{{"op": "set_count", "floor_index": 0, "room_type_index": 0, "value": "10"}},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *FloorMapHandlerTestSuite) TestEditFloorMapping_MissingEdits() {
	w := suite.http.MakeRequest(http.MethodPatch, "/projects/1/floor-mapping", gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FloorMapHandlerTestSuite) TestAnalyzeFloorMapping_Success() {
	resp := &service.FloorMappingResponse{
		ProjectID:    1,
		FloorMapping: testutils.SampleFloorMapping(),
		FloorPlanURL: "https://store.example.com/mix.png",
	}
	suite.mockAnalysis.On("AnalyzeFloorMapping", mock.Anything, uint(1), mock.AnythingOfType("*service.AnalyzeFloorMappingRequest")).
		Return(resp, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/projects/1/floor-mapping/analyze", gin.H{
		"file_url": "https://store.example.com/mix.png",
	})

	var got service.FloorMappingResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "https://store.example.com/mix.png", got.FloorPlanURL)
}

func (suite *FloorMapHandlerTestSuite) TestAnalyzeFloorMapping_MissingFileURL() {
	w := suite.http.MakeRequest(http.MethodPost, "/projects/1/floor-mapping/analyze", gin.H{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FloorMapHandlerTestSuite) TestAnalyzeFloorMapping_BadExtraction() {
	suite.mockAnalysis.On("AnalyzeFloorMapping", mock.Anything, uint(1), mock.AnythingOfType("*service.AnalyzeFloorMappingRequest")).
		Return(nil, apperrors.ErrNoJSONInResponse)

	w := suite.http.MakeRequest(http.MethodPost, "/projects/1/floor-mapping/analyze", gin.H{
		"file_url": "https://store.example.com/mix.png",
	})

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func TestFloorMapHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FloorMapHandlerTestSuite))
}
