package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"landing-page-backend/internal/api/handlers"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/mocks"
	"landing-page-backend/internal/service"
	"landing-page-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkflowHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockWorkflowService   *mocks.MockWorkflowServiceInterface
	mockGenerationService *mocks.MockGenerationServiceInterface
	httpSuite             *testutils.HTTPTestSuite
}

func (suite *WorkflowHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkflowService = mocks.NewMockWorkflowServiceInterface(suite.ctrl)
	suite.mockGenerationService = mocks.NewMockGenerationServiceInterface(suite.ctrl)

	handler := handlers.NewWorkflowHandler(suite.mockWorkflowService, suite.mockGenerationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	workflows := suite.httpSuite.Router.Group("/api/v1/workflows")
	workflows.GET("", handler.ListWorkflows)
	workflows.POST("", handler.CreateWorkflow)
	workflows.POST("/preview", handler.PreviewLandingPage)
	workflows.GET("/:id", handler.GetWorkflow)
	workflows.POST("/:id/generate", handler.GenerateLandingPages)
	workflows.POST("/:id/archive", handler.ArchiveWorkflow)
	workflows.DELETE("/:id", handler.DeleteWorkflow)
}

func (suite *WorkflowHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkflowHandlerTestSuite) TestCreateWorkflow_Success() {
	suite.mockWorkflowService.EXPECT().Create(gomock.Any()).Return(&service.WorkflowResponse{
		ID:     1,
		Name:   "campaign",
		Status: "draft",
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows", map[string]interface{}{
		"name": "campaign",
	})

	var resp service.WorkflowResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "draft", resp.Status)
}

func (suite *WorkflowHandlerTestSuite) TestCreateWorkflow_InvalidBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows", "not an object")

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestGetWorkflow_NotFound() {
	suite.mockWorkflowService.EXPECT().GetDetail(int64(404)).Return(nil, apperrors.ErrWorkflowNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workflows/404", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "workflow not found")
}

func (suite *WorkflowHandlerTestSuite) TestGetWorkflow_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workflows/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid workflow ID")
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_Success() {
	detail := &service.WorkflowDetailResponse{
		ID:     5,
		Status: "pending_ad",
		LandingPages: []service.LandingPageResponse{
			{ID: 1, TemplateID: 10, SelectedVideoIDs: []int64{1, 2}, GeneratedPageURL: "/generated/5/10.html"},
		},
	}
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(detail, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1, 2},
		"template_ids": []int64{10},
	})

	var resp service.WorkflowDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "pending_ad", resp.Status)
	assert.Len(suite.T(), resp.LandingPages, 1)
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_ValidationFailure() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(nil, apperrors.ErrDuplicateVideoIDs)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1, 1},
		"template_ids": []int64{10},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "duplicate video ids")
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_EmptySelection() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(nil, apperrors.ErrEmptySelection)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{},
		"template_ids": []int64{10},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "at least one video")
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_StateConflict() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(nil, apperrors.ErrInvalidWorkflowState)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1},
		"template_ids": []int64{10},
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_DuplicatePage() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(nil, apperrors.ErrLandingPageExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1},
		"template_ids": []int64{10},
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_TemplateMissing() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).Return(nil, apperrors.ErrTemplateNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1},
		"template_ids": []int64{99},
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestGenerate_RenderFailure() {
	suite.mockGenerationService.EXPECT().Generate(int64(5), gomock.Any()).
		Return(nil, apperrors.NewRenderError(10, errors.New("disk full")))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/generate", map[string]interface{}{
		"video_ids":    []int64{1},
		"template_ids": []int64{10},
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestPreview_Success() {
	suite.mockGenerationService.EXPECT().Preview(gomock.Any()).Return(&service.PreviewResponse{
		PreviewURL: "/generated/preview/10_abc.html",
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/preview", map[string]interface{}{
		"video_ids":   []int64{1},
		"template_id": 10,
	})

	var resp service.PreviewResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), "/generated/preview/10_abc.html", resp.PreviewURL)
}

func (suite *WorkflowHandlerTestSuite) TestArchive_NotReady() {
	suite.mockWorkflowService.EXPECT().Archive(int64(5)).Return(apperrors.ErrWorkflowNotReady)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/archive", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "not in ready status")
}

func (suite *WorkflowHandlerTestSuite) TestArchive_Success() {
	suite.mockWorkflowService.EXPECT().Archive(int64(5)).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/workflows/5/archive", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestDelete_Success() {
	suite.mockWorkflowService.EXPECT().Delete(int64(5)).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/workflows/5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *WorkflowHandlerTestSuite) TestList_InvalidStatus() {
	suite.mockWorkflowService.EXPECT().List("bogus", 1, 20).Return(nil, apperrors.ErrInvalidStatus)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/workflows?status=bogus", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func TestWorkflowHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerTestSuite))
}
