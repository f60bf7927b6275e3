package routes_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"voice-sales-backend/internal/api/routes"
	"voice-sales-backend/internal/config"
	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite drives the assembled router against SQLite and the demo provider
type RoutesTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:        "test",
		AgentName:          "Sarah",
		PhoneDefaultRegion: "US",
		TelephonyProvider:  "demo",
		TextGenProvider:    "none",
		BulkConcurrency:    2,
	}
	db := testutils.NewSQLiteDB(suite.T())

	collab, err := routes.NewCollaborators(context.Background(), cfg)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = collab.Close() })

	router := routes.SetupRoutes(db, cfg, routes.NewServices(db, cfg, collab))
	suite.http = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RoutesTestSuite) TestCallLifecycle() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/api/v1/playbooks", service.CreatePlaybookRequest{
		Industry:      "restaurant",
		OpeningScript: "Hi, this is {agent_name}. Do you have a minute?",
		FollowUpTemplates: map[string]string{
			"appointment_email": "Hi {lead_name}, looking forward to our meeting.",
		},
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var lead models.Lead
	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/leads", service.CreateLeadRequest{
		Name:     "Maria Lopez",
		Phone:    "(650) 253-0000",
		Email:    "maria@casamaria.test",
		Company:  "Casa Maria",
		Industry: "restaurant",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &lead)
	suite.Equal("+16502530000", lead.Phone)

	var call models.Call
	recorder = suite.http.MakeRequest(http.MethodPost, fmt.Sprintf("/api/v1/leads/%d/calls", lead.ID), nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &call)
	suite.Equal(models.CallStatusInProgress, call.Status)
	suite.Require().NotNil(call.SessionID)

	// a second call for the same lead is refused while this one is active
	recorder = suite.http.MakeRequest(http.MethodPost, fmt.Sprintf("/api/v1/leads/%d/calls", lead.ID), nil)
	suite.Equal(http.StatusConflict, recorder.Code)

	recorder = suite.http.MakeFormRequest(fmt.Sprintf("/api/v1/voice/webhook/%d", call.ID), url.Values{})
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Header().Get("Content-Type"), "application/xml")
	suite.Contains(recorder.Body.String(), "<Gather")

	var ended service.EndCallResult
	recorder = suite.http.MakeRequest(http.MethodPost, fmt.Sprintf("/api/v1/calls/%d/end", call.ID), map[string]interface{}{
		"outcome": "appointment",
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &ended)
	suite.Equal(models.CallStatusCompleted, ended.Call.Status)
	suite.Equal(models.LeadStatusQualified, ended.Lead.Status)
	suite.Equal(30, ended.Lead.Score)

	// the provider's completion callback arrives after the outcome was recorded
	var event service.EventResult
	recorder = suite.http.MakeFormRequest("/api/v1/voice/status", url.Values{
		"CallSid":    {*call.SessionID},
		"CallStatus": {"completed"},
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &event)
	suite.False(event.Applied)

	var followUp service.FollowUpMessage
	recorder = suite.http.MakeRequest(http.MethodPost, "/api/v1/voice/generate-follow-up", map[string]interface{}{
		"call_id": call.ID,
	})
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &followUp)
	suite.Equal("Hi Maria Lopez, looking forward to our meeting.", followUp.Message)

	var metrics service.DashboardMetrics
	recorder = suite.http.MakeRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &metrics)
	suite.Equal(int64(1), metrics.TotalLeads)
	suite.Equal(int64(1), metrics.TotalCalls)
}

func (suite *RoutesTestSuite) TestHealthCarriesRequestID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.NotEmpty(recorder.Header().Get("X-Request-ID"))
}

func (suite *RoutesTestSuite) TestUnknownLead() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/api/v1/leads/999", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "lead not found")
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
