package service_test

import (
	"errors"
	"testing"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/mocks"
	"voice-sales-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SentimentServiceTestSuite struct {
	suite.Suite
	fx               *fixture
	ctrl             *gomock.Controller
	mockGenerator    *mocks.MockGenerator
	sentimentService *service.SentimentService
}

func (suite *SentimentServiceTestSuite) SetupTest() {
	suite.fx = newFixture(suite.T())
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGenerator = mocks.NewMockGenerator(suite.ctrl)
	suite.sentimentService = service.NewSentimentService(suite.fx.store, suite.mockGenerator)
}

func (suite *SentimentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SentimentServiceTestSuite) completedCallWithTranscript(transcript string) *models.Call {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	call := suite.fx.completedCall(suite.T(), lead.ID, models.CallOutcomeInterested)
	if transcript != "" {
		suite.Require().NoError(suite.fx.store.Calls.UpdateFields(suite.fx.ctx, call.ID, map[string]interface{}{"transcript": transcript}))
	}
	return call
}

func (suite *SentimentServiceTestSuite) TestAnalyze_RawText() {
	call := suite.completedCallWithTranscript("")

	result, err := suite.sentimentService.Analyze(suite.fx.ctx, call.ID, "Score: 0.8. The customer sounded positive.")

	suite.Require().NoError(err)
	suite.InDelta(0.8, result.SentimentScore, 1e-9)
	suite.InDelta(0.9, result.NormalizedScore, 1e-9)

	stored := suite.fx.reloadCall(suite.T(), call.ID)
	suite.InDelta(0.8, stored.SentimentScore, 1e-9)
	suite.Contains(stored.Notes, "Sentiment Analysis: Score: 0.8. The customer sounded positive.")
}

func (suite *SentimentServiceTestSuite) TestAnalyze_BoundedForAnyText() {
	call := suite.completedCallWithTranscript("")
	inputs := map[string]float64{
		"no opinion at all":                0,
		"overall negative tone":            -0.3,
		"score 7.5 out of 10, neutral":     0,
		"sentiment -0.45 (slightly upset)": -0.45,
	}

	for text, want := range inputs {
		result, err := suite.sentimentService.Analyze(suite.fx.ctx, call.ID, text)

		suite.Require().NoError(err)
		suite.InDelta(want, result.SentimentScore, 1e-9, text)
		suite.GreaterOrEqual(result.SentimentScore, -1.0)
		suite.LessOrEqual(result.SentimentScore, 1.0)
	}
}

func (suite *SentimentServiceTestSuite) TestAnalyze_GeneratesFromTranscript() {
	call := suite.completedCallWithTranscript("Customer: this is great\nAgent: glad to hear")
	suite.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("The call was negative overall.", nil)

	result, err := suite.sentimentService.Analyze(suite.fx.ctx, call.ID, "")

	suite.Require().NoError(err)
	suite.InDelta(-0.3, result.SentimentScore, 1e-9)
	suite.Equal("The call was negative overall.", result.Analysis)
}

func (suite *SentimentServiceTestSuite) TestAnalyze_NoTranscript() {
	call := suite.completedCallWithTranscript("")

	_, err := suite.sentimentService.Analyze(suite.fx.ctx, call.ID, "")

	suite.ErrorIs(err, apperrors.ErrNoTranscript)
}

func (suite *SentimentServiceTestSuite) TestAnalyze_GeneratorUnavailable() {
	call := suite.completedCallWithTranscript("Customer: hi")
	suite.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("503"))

	_, err := suite.sentimentService.Analyze(suite.fx.ctx, call.ID, "")

	suite.True(apperrors.IsCollaboratorUnavailable(err))
	suite.Empty(suite.fx.reloadCall(suite.T(), call.ID).Notes)
}

func (suite *SentimentServiceTestSuite) TestAnalyze_CallNotFound() {
	_, err := suite.sentimentService.Analyze(suite.fx.ctx, 404, "positive")

	suite.ErrorIs(err, apperrors.ErrCallNotFound)
}

func TestSentimentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SentimentServiceTestSuite))
}
