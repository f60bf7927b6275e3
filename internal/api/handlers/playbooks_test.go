package handlers_test

import (
	"net/http"
	"testing"

	"voice-sales-backend/internal/api/handlers"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/mocks"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlaybookHandlerTestSuite defines the test suite for PlaybookHandler
type PlaybookHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlaybookServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlaybookHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlaybookServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewPlaybookHandler(suite.mockService)
	playbooks := suite.httpSuite.Router.Group("/api/v1/playbooks")
	playbooks.GET("", handler.ListPlaybooks)
	playbooks.POST("", handler.CreatePlaybook)
	playbooks.GET("/:industry", handler.GetPlaybook)
}

// TearDownTest cleans up after each test
func (suite *PlaybookHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlaybookHandlerTestSuite) TestCreatePlaybook() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), &service.CreatePlaybookRequest{
				Industry:          "restaurant",
				OpeningScript:     "Hi {lead_name}, this is {agent_name}.",
				FollowUpTemplates: map[string]string{"default_email": "Thanks {lead_name}"},
			}).
			Return(&models.Playbook{BaseModel: models.BaseModel{ID: 1}, Industry: "restaurant"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/playbooks", map[string]interface{}{
			"industry":            "restaurant",
			"opening_script":      "Hi {lead_name}, this is {agent_name}.",
			"follow_up_templates": map[string]string{"default_email": "Thanks {lead_name}"},
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Industry exists", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrPlaybookExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/playbooks", map[string]interface{}{
			"industry": "restaurant", "opening_script": "Hi",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "playbook already exists")
	})
}

func (suite *PlaybookHandlerTestSuite) TestListPlaybooks() {
	suite.mockService.EXPECT().
		GetAll(gomock.Any()).
		Return([]models.Playbook{{Industry: "dental"}, {Industry: "restaurant"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/playbooks", nil)

	var response []models.Playbook
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *PlaybookHandlerTestSuite) TestGetPlaybook() {
	suite.mockService.EXPECT().
		GetByIndustry(gomock.Any(), "plumbing").
		Return(nil, apperrors.ErrPlaybookNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/playbooks/plumbing", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "playbook not found")
}

// TestPlaybookHandlerTestSuite runs the test suite
func TestPlaybookHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlaybookHandlerTestSuite))
}
