package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"voice-sales-backend/internal/database/models"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/telephony"

	"github.com/stretchr/testify/suite"
)

// recordingQueue is a DialQueue that remembers enqueued call ids
type recordingQueue struct {
	mu  sync.Mutex
	ids []uint
	err error
}

func (q *recordingQueue) EnqueueDial(_ context.Context, callID uint) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.ids = append(q.ids, callID)
	return nil
}

type BulkDispatchServiceTestSuite struct {
	suite.Suite
	fx          *fixture
	callService *service.CallService
}

func (suite *BulkDispatchServiceTestSuite) SetupTest() {
	suite.fx = newFixture(suite.T())
	suite.fx.playbook(suite.T(), "restaurant")
	suite.callService = service.NewCallService(suite.fx.store, telephony.NewDemoProvider(), service.CallConfig{
		PublicBaseURL:   "https://sales.example.test",
		RequirePlaybook: true,
	})
}

func (suite *BulkDispatchServiceTestSuite) TestDispatch_InlineCollectsPerLeadResults() {
	first := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	second := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	noPlaybook := suite.fx.lead(suite.T(), suite.fx.factories.Lead.WithIndustry("plumbing"))

	bulk := service.NewBulkDispatchService(suite.callService, nil, service.BulkConfig{Concurrency: 2})
	result, err := bulk.Dispatch(suite.fx.ctx, []uint{first.ID, 404, second.ID, noPlaybook.ID})

	suite.Require().NoError(err)
	suite.Require().Len(result.Results, 4)
	suite.Equal(2, result.TotalQueued)

	suite.Equal(first.ID, result.Results[0].LeadID)
	suite.Equal(string(models.CallStatusInProgress), result.Results[0].Status)
	suite.Require().NotNil(result.Results[0].CallID)
	call := suite.fx.reloadCall(suite.T(), *result.Results[0].CallID)
	suite.Equal("demo_bulk_call_"+itoa(call.ID), call.SessionIDValue())

	suite.Equal(service.BulkStatusError, result.Results[1].Status)
	suite.Contains(result.Results[1].Message, "lead not found")
	suite.Nil(result.Results[1].CallID)

	suite.Equal(string(models.CallStatusInProgress), result.Results[2].Status)

	suite.Equal(service.BulkStatusError, result.Results[3].Status)
	suite.Contains(result.Results[3].Message, "playbook")
}

func (suite *BulkDispatchServiceTestSuite) TestDispatch_DuplicateLeadDispatchedOnce() {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())

	bulk := service.NewBulkDispatchService(suite.callService, nil, service.BulkConfig{Concurrency: 2})
	result, err := bulk.Dispatch(suite.fx.ctx, []uint{lead.ID, lead.ID})

	suite.Require().NoError(err)
	suite.Equal(1, result.TotalQueued)
}

func (suite *BulkDispatchServiceTestSuite) TestDispatch_Queue() {
	first := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	second := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	queue := &recordingQueue{}

	bulk := service.NewBulkDispatchService(suite.callService, queue, service.BulkConfig{Concurrency: 4})
	result, err := bulk.Dispatch(suite.fx.ctx, []uint{first.ID, second.ID})

	suite.Require().NoError(err)
	suite.Equal(2, result.TotalQueued)
	suite.Len(queue.ids, 2)
	for _, item := range result.Results {
		suite.Equal(service.BulkStatusQueued, item.Status)
		suite.Require().NotNil(item.CallID)
		suite.Equal(models.CallStatusQueued, suite.fx.reloadCall(suite.T(), *item.CallID).Status)
	}
}

func (suite *BulkDispatchServiceTestSuite) TestDispatch_QueueFailureFailsCall() {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	queue := &recordingQueue{err: errors.New("redis: connection refused")}

	bulk := service.NewBulkDispatchService(suite.callService, queue, service.BulkConfig{})
	result, err := bulk.Dispatch(suite.fx.ctx, []uint{lead.ID})

	suite.Require().NoError(err)
	suite.Zero(result.TotalQueued)
	suite.Require().NotNil(result.Results[0].CallID)
	call := suite.fx.reloadCall(suite.T(), *result.Results[0].CallID)
	suite.Equal(models.CallStatusFailed, call.Status)
	suite.Contains(call.Notes, "Dispatch error: redis: connection refused")
}

func (suite *BulkDispatchServiceTestSuite) TestDispatch_InlinePacedByDialRate() {
	ids := make([]uint, 0, 3)
	for i := 0; i < 3; i++ {
		ids = append(ids, suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create()).ID)
	}

	bulk := service.NewBulkDispatchService(suite.callService, nil, service.BulkConfig{Concurrency: 3, DialsPerSecond: 20})
	started := time.Now()
	result, err := bulk.Dispatch(suite.fx.ctx, ids)

	suite.Require().NoError(err)
	suite.Equal(3, result.TotalQueued)
	// one token up front, then one every 50ms
	suite.GreaterOrEqual(time.Since(started), 90*time.Millisecond)
}

func TestBulkDispatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BulkDispatchServiceTestSuite))
}
