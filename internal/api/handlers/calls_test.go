package handlers_test

import (
	"net/http"
	"testing"

	"voice-sales-backend/internal/api/handlers"
	"voice-sales-backend/internal/callflow"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/mocks"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CallHandlerTestSuite defines the test suite for CallHandler
type CallHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCallServiceInterface
	handler     *handlers.CallHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *CallHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCallServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCallHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/leads/:id/calls", suite.handler.InitiateLeadCall)
	v1.POST("/voice/initiate-call", suite.handler.InitiateCall)
	v1.POST("/voice/end-call", suite.handler.EndCall)
	v1.GET("/calls", suite.handler.ListCalls)
	v1.GET("/calls/:id", suite.handler.GetCall)
	v1.POST("/calls/:id/end", suite.handler.EndCallByID)
}

// TearDownTest cleans up after each test
func (suite *CallHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CallHandlerTestSuite) TestInitiateCall() {
	sessionID := "demo_call_5"

	suite.T().Run("Body", func(t *testing.T) {
		suite.mockService.EXPECT().
			Initiate(gomock.Any(), uint(3)).
			Return(&models.Call{BaseModel: models.BaseModel{ID: 5}, LeadID: 3, SessionID: &sessionID, Status: models.CallStatusInitiated}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/initiate-call", map[string]interface{}{"lead_id": 3})

		var response models.Call
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, uint(5), response.ID)
		assert.Equal(t, models.CallStatusInitiated, response.Status)
	})

	suite.T().Run("Path", func(t *testing.T) {
		suite.mockService.EXPECT().
			Initiate(gomock.Any(), uint(3)).
			Return(&models.Call{BaseModel: models.BaseModel{ID: 6}, LeadID: 3}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/3/calls", nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("Missing lead_id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/initiate-call", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Errors", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "lead missing", err: apperrors.ErrLeadNotFound, status: http.StatusNotFound},
			{name: "playbook missing", err: apperrors.ErrPlaybookMissing, status: http.StatusNotFound},
			{name: "active call", err: apperrors.ErrActiveCallExists, status: http.StatusConflict},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				suite.mockService.EXPECT().Initiate(gomock.Any(), uint(9)).Return(nil, tt.err).Times(1)

				recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/9/calls", nil)

				testutils.AssertErrorResponse(t, recorder, tt.status, tt.err.Error())
			})
		}
	})
}

func (suite *CallHandlerTestSuite) TestEndCall() {
	suite.T().Run("Success", func(t *testing.T) {
		outcome := models.CallOutcomeAppointment
		suite.mockService.EXPECT().
			EndCall(gomock.Any(), uint(5), &service.EndCallRequest{Outcome: outcome, Notes: "booked for Tuesday"}).
			Return(&service.EndCallResult{
				Call: &models.Call{BaseModel: models.BaseModel{ID: 5}, Status: models.CallStatusCompleted, Outcome: &outcome},
				Lead: &models.Lead{BaseModel: models.BaseModel{ID: 3}, Status: models.LeadStatusQualified, Score: 30},
				Scoring: callflow.ScoreResult{
					PreviousStatus: models.LeadStatusNew, Status: models.LeadStatusQualified, Score: 30, Delta: 30,
				},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/end-call", map[string]interface{}{
			"call_id": 5,
			"outcome": "appointment",
			"notes":   "booked for Tuesday",
		})

		var response service.EndCallResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.LeadStatusQualified, response.Lead.Status)
		assert.Equal(t, 30, response.Lead.Score)
		assert.Equal(t, models.CallStatusCompleted, response.Call.Status)
	})

	suite.T().Run("Terminal call", func(t *testing.T) {
		suite.mockService.EXPECT().
			EndCall(gomock.Any(), uint(5), gomock.Any()).
			Return(nil, apperrors.ErrCallTerminal).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calls/5/end", map[string]interface{}{"outcome": "callback"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "terminal")
	})

	suite.T().Run("Invalid outcome", func(t *testing.T) {
		suite.mockService.EXPECT().
			EndCall(gomock.Any(), uint(5), gomock.Any()).
			Return(nil, apperrors.ErrInvalidOutcome).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calls/5/end", map[string]interface{}{"outcome": "maybe"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "outcome")
	})

	suite.T().Run("Missing call_id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/end-call", map[string]interface{}{"outcome": "callback"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *CallHandlerTestSuite) TestGetCall() {
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), uint(5)).
		Return(nil, apperrors.ErrCallNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calls/5", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "call not found")
}

func (suite *CallHandlerTestSuite) TestListCalls() {
	suite.T().Run("By lead", func(t *testing.T) {
		leadID := uint(3)
		suite.mockService.EXPECT().
			List(gomock.Any(), &leadID, 1, 20).
			Return(&service.CallListResponse{Calls: []models.Call{}, Total: 0, Pages: 0, CurrentPage: 1}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calls?lead_id=3", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("All", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), gomock.Nil(), 1, 20).
			Return(&service.CallListResponse{Calls: []models.Call{}, CurrentPage: 1}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calls", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid lead_id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/calls?lead_id=x", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "lead_id")
	})
}

// TestCallHandlerTestSuite runs the test suite
func TestCallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CallHandlerTestSuite))
}
