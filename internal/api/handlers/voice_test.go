package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
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

// VoiceHandlerTestSuite defines the test suite for VoiceHandler
type VoiceHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	conversation *mocks.MockConversationServiceInterface
	calls        *mocks.MockCallServiceInterface
	synthesizer  *mocks.MockSynthesizer
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *VoiceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.conversation = mocks.NewMockConversationServiceInterface(suite.ctrl)
	suite.calls = mocks.NewMockCallServiceInterface(suite.ctrl)
	suite.synthesizer = mocks.NewMockSynthesizer(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewVoiceHandler(suite.conversation, suite.calls, suite.synthesizer)
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/voice/webhook/:call_id", handler.Webhook)
	v1.POST("/voice/status", handler.Status)
	v1.POST("/voice/synthesize", handler.Synthesize)
	v1.POST("/calls/:id/turn", handler.Turn)

	unconfigured := handlers.NewVoiceHandler(suite.conversation, suite.calls, nil)
	suite.httpSuite.Router.POST("/unconfigured/synthesize", unconfigured.Synthesize)
}

// TearDownTest cleans up after each test
func (suite *VoiceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoiceHandlerTestSuite) TestWebhook() {
	suite.T().Run("Greeting", func(t *testing.T) {
		suite.conversation.EXPECT().
			NextTurn(gomock.Any(), uint(5), "").
			Return(&service.TurnResult{CallID: 5, Text: "Hi Maria, this is Sarah.", Greeting: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/webhook/5", url.Values{})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Type"), "application/xml")
		body := recorder.Body.String()
		assert.Contains(t, body, `<Say voice="alice">Hi Maria, this is Sarah.</Say>`)
		assert.Contains(t, body, `<Gather input="speech" action="/api/v1/voice/webhook/5" speechTimeout="auto" language="en-US"></Gather>`)
		assert.NotContains(t, body, "Hangup")
	})

	suite.T().Run("Customer speech", func(t *testing.T) {
		suite.conversation.EXPECT().
			NextTurn(gomock.Any(), uint(5), "We are too busy").
			Return(&service.TurnResult{CallID: 5, Text: "I hear you & that's why we help."}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/webhook/5", url.Values{"SpeechResult": {" We are too busy "}})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "I hear you &amp; that&#39;s why we help.")
	})

	suite.T().Run("Failure hangs up", func(t *testing.T) {
		suite.conversation.EXPECT().
			NextTurn(gomock.Any(), uint(6), "").
			Return(nil, apperrors.ErrCallTerminal).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/webhook/6", url.Values{})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "technical issue")
		assert.Contains(t, recorder.Body.String(), "<Hangup></Hangup>")
	})
}

func (suite *VoiceHandlerTestSuite) TestStatus() {
	suite.T().Run("Completed with duration and recording", func(t *testing.T) {
		duration := 42
		recording := "https://api.twilio.com/recordings/RE1"
		suite.calls.EXPECT().
			ApplyTelephonyEvent(gomock.Any(), service.TelephonyEvent{
				SessionID:    "CA123",
				Status:       "completed",
				Duration:     &duration,
				RecordingURL: &recording,
			}).
			Return(&service.EventResult{Call: &models.Call{BaseModel: models.BaseModel{ID: 5}, Status: models.CallStatusCompleted}, Applied: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/status", url.Values{
			"CallSid":      {"CA123"},
			"CallStatus":   {"completed"},
			"CallDuration": {"42"},
			"RecordingUrl": {recording},
		})

		var response service.EventResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Applied)
	})

	suite.T().Run("Replay is acknowledged", func(t *testing.T) {
		suite.calls.EXPECT().
			ApplyTelephonyEvent(gomock.Any(), gomock.Any()).
			Return(&service.EventResult{Call: &models.Call{BaseModel: models.BaseModel{ID: 5}, Status: models.CallStatusCompleted}, Applied: false}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/status", url.Values{"CallSid": {"CA123"}, "CallStatus": {"completed"}})

		var response service.EventResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.False(t, response.Applied)
	})

	suite.T().Run("Conflict", func(t *testing.T) {
		suite.calls.EXPECT().
			ApplyTelephonyEvent(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrCallTerminal).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/status", url.Values{"CallSid": {"CA123"}, "CallStatus": {"in-progress"}})

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("Unknown session", func(t *testing.T) {
		suite.calls.EXPECT().
			ApplyTelephonyEvent(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrSessionNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/status", url.Values{"CallSid": {"CA999"}, "CallStatus": {"completed"}})

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Bad duration", func(t *testing.T) {
		recorder := suite.httpSuite.MakeFormRequest("/api/v1/voice/status", url.Values{
			"CallSid": {"CA123"}, "CallStatus": {"completed"}, "CallDuration": {"forty"},
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "CallDuration")
	})
}

func (suite *VoiceHandlerTestSuite) TestTurn() {
	suite.T().Run("With utterance", func(t *testing.T) {
		suite.conversation.EXPECT().
			NextTurn(gomock.Any(), uint(5), "tell me more").
			Return(&service.TurnResult{CallID: 5, Text: "Happy to."}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calls/5/turn", map[string]interface{}{"utterance": "tell me more"})

		var response service.TurnResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Happy to.", response.Text)
	})

	suite.T().Run("Empty body returns greeting", func(t *testing.T) {
		suite.conversation.EXPECT().
			NextTurn(gomock.Any(), uint(5), "").
			Return(&service.TurnResult{CallID: 5, Text: "Hello!", Greeting: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/calls/5/turn", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func (suite *VoiceHandlerTestSuite) TestSynthesize() {
	suite.T().Run("Audio", func(t *testing.T) {
		suite.synthesizer.EXPECT().
			Synthesize(gomock.Any(), "Hello Maria").
			Return([]byte("ID3audio"), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/synthesize", map[string]interface{}{"text": "Hello Maria"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "audio/mpeg", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "ID3audio", recorder.Body.String())
	})

	suite.T().Run("Provider failure", func(t *testing.T) {
		suite.synthesizer.EXPECT().
			Synthesize(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("quota exceeded")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/synthesize", map[string]interface{}{"text": "Hello"})

		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "tts unavailable")
	})

	suite.T().Run("Not configured", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/unconfigured/synthesize", map[string]interface{}{"text": "Hello"})

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	suite.T().Run("Missing text", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/voice/synthesize", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestVoiceHandlerTestSuite runs the test suite
func TestVoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoiceHandlerTestSuite))
}
