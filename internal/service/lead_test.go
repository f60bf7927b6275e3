package service_test

import (
	"sync"
	"testing"

	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/phone"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

type LeadServiceTestSuite struct {
	suite.Suite
	fx          *fixture
	leadService *service.LeadService
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.fx = newFixture(suite.T())
	suite.leadService = service.NewLeadService(suite.fx.store, phone.NewNormalizer("US"), service.NewValidator(), 4)
}

func (suite *LeadServiceTestSuite) createRequest(phoneNumber string) *service.CreateLeadRequest {
	return &service.CreateLeadRequest{
		Name:     "Maria Lopez",
		Phone:    phoneNumber,
		Email:    "maria@casamaria.test",
		Company:  "Casa Maria",
		Industry: "restaurant",
	}
}

func (suite *LeadServiceTestSuite) TestCreate_NormalizesPhone() {
	lead, err := suite.leadService.Create(suite.fx.ctx, suite.createRequest("(650) 253-0000"))

	suite.Require().NoError(err)
	suite.NotZero(lead.ID)
	suite.Equal("+16502530000", lead.Phone)
	suite.Equal(models.LeadStatusNew, lead.Status)
	suite.Equal(0, lead.Score)
}

func (suite *LeadServiceTestSuite) TestCreate_UnparseablePhoneKeptTrimmed() {
	lead, err := suite.leadService.Create(suite.fx.ctx, suite.createRequest("  +1-555-0101 "))

	suite.Require().NoError(err)
	suite.Equal("+1-555-0101", lead.Phone)
}

func (suite *LeadServiceTestSuite) TestCreate_DuplicatePhone() {
	_, err := suite.leadService.Create(suite.fx.ctx, suite.createRequest("+16502530000"))
	suite.Require().NoError(err)

	// same number in another format
	_, err = suite.leadService.Create(suite.fx.ctx, suite.createRequest("650-253-0000"))

	suite.ErrorIs(err, apperrors.ErrLeadExists)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *LeadServiceTestSuite) TestCreate_ConcurrentDuplicatesYieldOneSuccess() {
	const attempts = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.leadService.Create(suite.fx.ctx, suite.createRequest("+16502530000"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.IsAlreadyExists(err):
				conflicts++
			}
		}()
	}
	wg.Wait()

	suite.Equal(1, successes)
	suite.Equal(attempts-1, conflicts)
}

func (suite *LeadServiceTestSuite) TestCreate_Validation() {
	tests := []struct {
		name  string
		req   *service.CreateLeadRequest
		field string
	}{
		{name: "missing name", req: &service.CreateLeadRequest{Phone: "+16502530000", Industry: "restaurant"}, field: "name"},
		{name: "missing phone", req: &service.CreateLeadRequest{Name: "Maria", Industry: "restaurant"}, field: "phone"},
		{name: "missing industry", req: &service.CreateLeadRequest{Name: "Maria", Phone: "+16502530000"}, field: "industry"},
		{name: "bad email", req: &service.CreateLeadRequest{Name: "Maria", Phone: "+16502530000", Industry: "restaurant", Email: "nope"}, field: "email"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.leadService.Create(suite.fx.ctx, tt.req)

			var validationErr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &validationErr)
			suite.Equal(tt.field, validationErr.Field)
		})
	}
}

func (suite *LeadServiceTestSuite) TestGetByID_IncludesCalls() {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	suite.fx.completedCall(suite.T(), lead.ID, models.CallOutcomeCallback)
	suite.fx.completedCall(suite.T(), lead.ID, models.CallOutcomeInterested)

	detail, err := suite.leadService.GetByID(suite.fx.ctx, lead.ID)

	suite.Require().NoError(err)
	suite.Equal(2, detail.CallsCount)
	suite.Len(detail.Calls, 2)
}

func (suite *LeadServiceTestSuite) TestGetByID_NotFound() {
	_, err := suite.leadService.GetByID(suite.fx.ctx, 404)

	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestList_FiltersAndPaginates() {
	for i := 0; i < 3; i++ {
		suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	}
	suite.fx.lead(suite.T(), suite.fx.factories.Lead.WithIndustry("dental"))

	resp, err := suite.leadService.List(suite.fx.ctx, repository.LeadFilter{Industry: "restaurant"}, 1, 2)

	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.Total)
	suite.Equal(2, resp.Pages)
	suite.Equal(1, resp.CurrentPage)
	suite.Len(resp.Leads, 2)
}

func (suite *LeadServiceTestSuite) TestList_InvalidStatus() {
	_, err := suite.leadService.List(suite.fx.ctx, repository.LeadFilter{Status: "warm"}, 1, 20)

	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *LeadServiceTestSuite) TestUpdate_LeavesStatusAndScore() {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.WithStatus(models.LeadStatusQualified, 30))
	company := "Casa Maria Downtown"
	notes := "prefers mornings"

	updated, err := suite.leadService.Update(suite.fx.ctx, lead.ID, &service.UpdateLeadRequest{Company: &company, Notes: &notes})

	suite.Require().NoError(err)
	suite.Equal(company, updated.Company)
	suite.Equal(notes, updated.Notes)
	suite.Equal(models.LeadStatusQualified, updated.Status)
	suite.Equal(30, updated.Score)
}

func (suite *LeadServiceTestSuite) TestUpdate_NotFound() {
	name := "Nobody"
	_, err := suite.leadService.Update(suite.fx.ctx, 404, &service.UpdateLeadRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestDelete_CascadesCalls() {
	lead := suite.fx.lead(suite.T(), suite.fx.factories.Lead.Create())
	call := suite.fx.completedCall(suite.T(), lead.ID, models.CallOutcomeCallback)

	suite.Require().NoError(suite.leadService.Delete(suite.fx.ctx, lead.ID))

	_, err := suite.fx.store.Calls.GetByID(suite.fx.ctx, call.ID)
	suite.True(repository.IsNotFound(err))
	suite.ErrorIs(suite.leadService.Delete(suite.fx.ctx, lead.ID), apperrors.ErrLeadNotFound)
}

func (suite *LeadServiceTestSuite) TestBulkImport_ReportsRowErrors() {
	suite.fx.lead(suite.T(), suite.fx.factories.Lead.WithPhone("+16502530001"))

	row := func(n int, name, phoneNumber string) service.ImportRow {
		return service.ImportRow{Row: n, CreateLeadRequest: service.CreateLeadRequest{
			Name: name, Phone: phoneNumber, Industry: "restaurant",
		}}
	}
	rows := []service.ImportRow{
		row(2, "Ana", "+16502530002"),
		row(3, "Ben", "650-253-0002"),  // duplicate of row 2 after normalization
		row(4, "", "+16502530003"),     // missing name
		row(5, "Cleo", "+16502530001"), // already stored
		row(6, "Dan", "+16502530004"),
	}

	result, err := suite.leadService.BulkImport(suite.fx.ctx, rows)

	suite.Require().NoError(err)
	suite.Equal(2, result.ImportedCount)
	suite.Require().Len(result.Errors, 3)
	suite.Equal(3, result.Errors[0].Row)
	suite.Contains(result.Errors[0].Message, "row 2")
	suite.Equal(4, result.Errors[1].Row)
	suite.Contains(result.Errors[1].Message, "name")
	suite.Equal(5, result.Errors[2].Row)
	suite.Contains(result.Errors[2].Message, "already exists")
}

func (suite *LeadServiceTestSuite) TestBulkImport_Empty() {
	result, err := suite.leadService.BulkImport(suite.fx.ctx, nil)

	suite.Require().NoError(err)
	suite.Zero(result.ImportedCount)
	suite.Empty(result.Errors)
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
