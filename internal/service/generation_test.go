package service_test

import (
	"errors"
	"strings"
	"testing"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/mocks"
	"landing-page-backend/internal/render"
	"landing-page-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type GenerationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockWorkflowRepo  *mocks.MockWorkflowRepositoryInterface
	mockTemplateRepo  *mocks.MockTemplateRepositoryInterface
	mockVideoRepo     *mocks.MockVideoRepositoryInterface
	mockPageRepo      *mocks.MockLandingPageRepositoryInterface
	mockRenderer      *mocks.MockPageRenderer
	generationService *service.GenerationService
	validator         *validator.Validate
}

func (suite *GenerationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockWorkflowRepo = mocks.NewMockWorkflowRepositoryInterface(suite.ctrl)
	suite.mockTemplateRepo = mocks.NewMockTemplateRepositoryInterface(suite.ctrl)
	suite.mockVideoRepo = mocks.NewMockVideoRepositoryInterface(suite.ctrl)
	suite.mockPageRepo = mocks.NewMockLandingPageRepositoryInterface(suite.ctrl)
	suite.mockRenderer = mocks.NewMockPageRenderer(suite.ctrl)
	suite.validator = validator.New()
	suite.generationService = service.NewGenerationService(
		suite.mockWorkflowRepo,
		suite.mockTemplateRepo,
		suite.mockVideoRepo,
		suite.mockPageRepo,
		suite.mockRenderer,
		suite.validator,
	)
}

func (suite *GenerationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GenerationServiceTestSuite) draftWorkflow(id int64) *models.Workflow {
	return &models.Workflow{
		BaseModel: models.BaseModel{ID: id},
		Name:      "campaign",
		Status:    models.WorkflowStatusDraft,
		CreatedBy: "tester",
	}
}

func (suite *GenerationServiceTestSuite) activeTemplate(id int64, maxVideos int) models.Template {
	return models.Template{
		ID:        id,
		Name:      "tmpl",
		MaxVideos: maxVideos,
		Status:    models.TemplateStatusActive,
	}
}

func (suite *GenerationServiceTestSuite) videos(ids ...int64) []models.Video {
	out := make([]models.Video, len(ids))
	for i, id := range ids {
		out[i] = models.Video{
			BaseModel: models.BaseModel{ID: id},
			Title:     "video",
			PosterURL: "https://cdn.test.com/p.jpg",
			Status:    models.VideoStatusActive,
		}
	}
	return out
}

func (suite *GenerationServiceTestSuite) TestGenerate_Success() {
	req := &service.GenerateRequest{
		VideoIDs:    []int64{3, 1, 2},
		TemplateIDs: []int64{10, 11},
	}

	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10, 11}).Return([]models.Template{
		suite.activeTemplate(11, 2),
		suite.activeTemplate(10, 3),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{3, 1, 2}).Return(suite.videos(1, 2, 3), nil)
	suite.mockPageRepo.EXPECT().ExistingTemplateIDs(int64(5), []int64{10, 11}).Return(nil, nil)
	suite.mockWorkflowRepo.EXPECT().MarkGenerating(int64(5)).Return(nil)

	// The renderer always receives the full ordered selection; capacity
	// truncation is its own concern.
	expectedSlots := []render.Video{
		{ID: 3, Title: "video", PosterURL: "https://cdn.test.com/p.jpg"},
		{ID: 1, Title: "video", PosterURL: "https://cdn.test.com/p.jpg"},
		{ID: 2, Title: "video", PosterURL: "https://cdn.test.com/p.jpg"},
	}
	suite.mockRenderer.EXPECT().Render(gomock.Any(), expectedSlots, "5/10.html").Return("/generated/5/10.html", nil)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), expectedSlots, "5/11.html").Return("/generated/5/11.html", nil)

	suite.mockWorkflowRepo.EXPECT().CompleteGeneration(int64(5), gomock.Len(2)).Return(nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), string(models.WorkflowStatusPendingAd), resp.Status)
	assert.Len(suite.T(), resp.LandingPages, 2)
	// pages come back in template selection order
	assert.Equal(suite.T(), int64(10), resp.LandingPages[0].TemplateID)
	assert.Equal(suite.T(), int64(11), resp.LandingPages[1].TemplateID)
	assert.Equal(suite.T(), "/generated/5/10.html", resp.LandingPages[0].GeneratedPageURL)
	// every page stores the full ordered selection, not its truncation
	assert.Equal(suite.T(), []int64{3, 1, 2}, resp.LandingPages[0].SelectedVideoIDs)
	assert.Equal(suite.T(), []int64{3, 1, 2}, resp.LandingPages[1].SelectedVideoIDs)
}

func (suite *GenerationServiceTestSuite) TestGenerate_WorkflowNotFound() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.generationService.Generate(99, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWorkflowNotFound)
}

func (suite *GenerationServiceTestSuite) TestGenerate_WorkflowNotDraft() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10}}
	workflow := suite.draftWorkflow(5)
	workflow.Status = models.WorkflowStatusReady
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(workflow, nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWorkflowState)
}

func (suite *GenerationServiceTestSuite) TestGenerate_UnknownTemplateFailsWholeSelection() {
	req := &service.GenerateRequest{VideoIDs: []int64{1, 2}, TemplateIDs: []int64{10, 12}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	// template 12 is missing or inactive; only 10 comes back
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10, 12}).Return([]models.Template{
		suite.activeTemplate(10, 2),
	}, nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTemplateNotFound)
}

func (suite *GenerationServiceTestSuite) TestGenerate_InsufficientVideos() {
	req := &service.GenerateRequest{VideoIDs: []int64{1, 2}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 4),
	}, nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	var insufficient *apperrors.InsufficientVideosError
	assert.ErrorAs(suite.T(), err, &insufficient)
	assert.Equal(suite.T(), 4, insufficient.Required)
	assert.Equal(suite.T(), 2, insufficient.Provided)
}

func (suite *GenerationServiceTestSuite) TestGenerate_DuplicateVideoIDs() {
	req := &service.GenerateRequest{VideoIDs: []int64{1, 1}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateVideoIDs)
}

func (suite *GenerationServiceTestSuite) TestGenerate_DuplicateTemplateIDs() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10, 10}}

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateTemplates)
}

func (suite *GenerationServiceTestSuite) TestGenerate_EmptySelection() {
	for _, req := range []*service.GenerateRequest{
		{VideoIDs: []int64{}, TemplateIDs: []int64{10}},
		{VideoIDs: []int64{1}, TemplateIDs: []int64{}},
		{VideoIDs: nil, TemplateIDs: nil},
	} {
		resp, err := suite.generationService.Generate(5, req)

		assert.Nil(suite.T(), resp)
		assert.ErrorIs(suite.T(), err, apperrors.ErrEmptySelection)
		assert.True(suite.T(), apperrors.IsValidation(err))
	}
}

func (suite *GenerationServiceTestSuite) TestGenerate_MissingVideo() {
	req := &service.GenerateRequest{VideoIDs: []int64{1, 2}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 2),
	}, nil)
	// video 2 is gone
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1, 2}).Return(suite.videos(1), nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVideoNotFound)
}

func (suite *GenerationServiceTestSuite) TestGenerate_PageAlreadyExists() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1}).Return(suite.videos(1), nil)
	suite.mockPageRepo.EXPECT().ExistingTemplateIDs(int64(5), []int64{10}).Return([]int64{10}, nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLandingPageExists)
}

func (suite *GenerationServiceTestSuite) TestGenerate_ConcurrentClaimLoser() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1}).Return(suite.videos(1), nil)
	suite.mockPageRepo.EXPECT().ExistingTemplateIDs(int64(5), []int64{10}).Return(nil, nil)
	// another request won the draft->generating transition first
	suite.mockWorkflowRepo.EXPECT().MarkGenerating(int64(5)).Return(apperrors.ErrInvalidWorkflowState)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidWorkflowState)
}

func (suite *GenerationServiceTestSuite) TestGenerate_RenderFailureRollsBack() {
	req := &service.GenerateRequest{VideoIDs: []int64{1, 2}, TemplateIDs: []int64{10, 11}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10, 11}).Return([]models.Template{
		suite.activeTemplate(10, 2),
		suite.activeTemplate(11, 1),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1, 2}).Return(suite.videos(1, 2), nil)
	suite.mockPageRepo.EXPECT().ExistingTemplateIDs(int64(5), []int64{10, 11}).Return(nil, nil)
	suite.mockWorkflowRepo.EXPECT().MarkGenerating(int64(5)).Return(nil)

	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), "5/10.html").Return("/generated/5/10.html", nil)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), "5/11.html").Return("", errors.New("disk full"))

	// rollback: the page rendered before the failure is removed and the
	// workflow goes back to draft
	suite.mockRenderer.EXPECT().Remove("5/10.html").Return(nil)
	suite.mockWorkflowRepo.EXPECT().RevertToDraft(int64(5)).Return(nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsRenderFailure(err))
	var renderErr *apperrors.RenderError
	assert.ErrorAs(suite.T(), err, &renderErr)
	assert.Equal(suite.T(), int64(11), renderErr.TemplateID)
}

func (suite *GenerationServiceTestSuite) TestGenerate_PersistenceFailureRollsBack() {
	req := &service.GenerateRequest{VideoIDs: []int64{1}, TemplateIDs: []int64{10}}
	suite.mockWorkflowRepo.EXPECT().GetByID(int64(5)).Return(suite.draftWorkflow(5), nil)
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1}).Return(suite.videos(1), nil)
	suite.mockPageRepo.EXPECT().ExistingTemplateIDs(int64(5), []int64{10}).Return(nil, nil)
	suite.mockWorkflowRepo.EXPECT().MarkGenerating(int64(5)).Return(nil)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), "5/10.html").Return("/generated/5/10.html", nil)

	suite.mockWorkflowRepo.EXPECT().CompleteGeneration(int64(5), gomock.Len(1)).Return(errors.New("tx aborted"))
	suite.mockRenderer.EXPECT().Remove("5/10.html").Return(nil)
	suite.mockWorkflowRepo.EXPECT().RevertToDraft(int64(5)).Return(nil)

	resp, err := suite.generationService.Generate(5, req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPersistenceFailed)
}

func (suite *GenerationServiceTestSuite) TestPreview_Success() {
	req := &service.PreviewRequest{VideoIDs: []int64{1, 2}, TemplateID: 10}
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 2),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1, 2}).Return(suite.videos(1, 2), nil)

	var firstPath string
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *models.Template, _ []render.Video, relPath string) (string, error) {
			firstPath = relPath
			return "/generated/" + relPath, nil
		})

	resp, err := suite.generationService.Preview(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.True(suite.T(), strings.HasPrefix(firstPath, "preview/10_"))
	assert.Equal(suite.T(), "/generated/"+firstPath, resp.PreviewURL)
}

func (suite *GenerationServiceTestSuite) TestPreview_FreshArtifactPerCall() {
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil).Times(2)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1}).Return(suite.videos(1), nil).Times(2)

	paths := make([]string, 0, 2)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *models.Template, _ []render.Video, relPath string) (string, error) {
			paths = append(paths, relPath)
			return "/generated/" + relPath, nil
		}).Times(2)

	req := &service.PreviewRequest{VideoIDs: []int64{1}, TemplateID: 10}
	_, err := suite.generationService.Preview(req)
	assert.NoError(suite.T(), err)
	_, err = suite.generationService.Preview(req)
	assert.NoError(suite.T(), err)

	assert.Len(suite.T(), paths, 2)
	assert.NotEqual(suite.T(), paths[0], paths[1])
}

func (suite *GenerationServiceTestSuite) TestPreview_EmptySelection() {
	req := &service.PreviewRequest{VideoIDs: []int64{}, TemplateID: 10}

	resp, err := suite.generationService.Preview(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptySelection)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *GenerationServiceTestSuite) TestPreview_InactiveTemplate() {
	req := &service.PreviewRequest{VideoIDs: []int64{1}, TemplateID: 10}
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return(nil, nil)

	resp, err := suite.generationService.Preview(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTemplateNotFound)
}

func (suite *GenerationServiceTestSuite) TestPreview_RenderFailure() {
	req := &service.PreviewRequest{VideoIDs: []int64{1}, TemplateID: 10}
	suite.mockTemplateRepo.EXPECT().GetActiveByIDs([]int64{10}).Return([]models.Template{
		suite.activeTemplate(10, 1),
	}, nil)
	suite.mockVideoRepo.EXPECT().GetByIDs([]int64{1}).Return(suite.videos(1), nil)
	suite.mockRenderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("template html missing"))

	resp, err := suite.generationService.Preview(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsRenderFailure(err))
}

func TestGenerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenerationServiceTestSuite))
}
