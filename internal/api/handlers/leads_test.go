package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"voice-sales-backend/internal/api/handlers"
	"voice-sales-backend/internal/database/models"
	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/mocks"
	"voice-sales-backend/internal/repository"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LeadHandlerTestSuite defines the test suite for LeadHandler
type LeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLeadServiceInterface
	handler     *handlers.LeadHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLeadServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLeadHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	leads := suite.httpSuite.Router.Group("/api/v1/leads")
	{
		leads.GET("", suite.handler.ListLeads)
		leads.POST("", suite.handler.CreateLead)
		leads.POST("/bulk", suite.handler.BulkImportLeads)
		leads.GET("/:id", suite.handler.GetLead)
		leads.PUT("/:id", suite.handler.UpdateLead)
		leads.DELETE("/:id", suite.handler.DeleteLead)
	}
}

// TearDownTest cleans up after each test
func (suite *LeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadHandlerTestSuite) TestCreateLead() {
	suite.T().Run("Success", func(t *testing.T) {
		expected := &models.Lead{
			BaseModel: models.BaseModel{ID: 7},
			Name:      "Maria Lopez",
			Phone:     "+16502530000",
			Industry:  "restaurant",
			Status:    models.LeadStatusNew,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any(), &service.CreateLeadRequest{Name: "Maria Lopez", Phone: "650-253-0000", Industry: "restaurant"}).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{
			"name":     "Maria Lopez",
			"phone":    "650-253-0000",
			"industry": "restaurant",
		})

		var response models.Lead
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, uint(7), response.ID)
		assert.Equal(t, "+16502530000", response.Phone)
	})

	suite.T().Run("Duplicate phone", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrLeadExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{
			"name": "Maria", "phone": "+16502530000", "industry": "restaurant",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Validation error", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("industry", "is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{
			"name": "Maria", "phone": "+16502530000",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "industry")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/leads", "application/json", "invalid json")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Storage error is not echoed", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: connection refused")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads", map[string]interface{}{
			"name": "Maria", "phone": "+16502530000", "industry": "restaurant",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

func (suite *LeadHandlerTestSuite) TestListLeads() {
	suite.T().Run("Filters and paging", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), repository.LeadFilter{Status: models.LeadStatusQualified, Industry: "dental"}, 2, 10).
			Return(&service.LeadListResponse{Leads: []models.Lead{}, Total: 11, Pages: 2, CurrentPage: 2}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads?status=qualified&industry=dental&page=2&per_page=10", nil)

		var response service.LeadListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(11), response.Total)
		assert.Equal(t, 2, response.CurrentPage)
	})

	suite.T().Run("Invalid page", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads?page=abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid page")
	})

	suite.T().Run("Unknown status", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), gomock.Any(), 1, 20).
			Return(nil, apperrors.ErrInvalidStatus).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads?status=warm", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "status")
	})
}

func (suite *LeadHandlerTestSuite) TestGetLead() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), uint(3)).
			Return(&service.LeadDetailResponse{Lead: models.Lead{BaseModel: models.BaseModel{ID: 3}}, CallsCount: 2}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/3", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, float64(3), response["id"])
		assert.Equal(t, float64(2), response["calls_count"])
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), uint(404)).
			Return(nil, apperrors.ErrLeadNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/404", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "lead not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/leads/abc", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid id")
	})
}

func (suite *LeadHandlerTestSuite) TestUpdateLead() {
	company := "Casa Maria Downtown"
	suite.mockService.EXPECT().
		Update(gomock.Any(), uint(3), &service.UpdateLeadRequest{Company: &company}).
		Return(&models.Lead{BaseModel: models.BaseModel{ID: 3}, Company: company}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/leads/3", map[string]interface{}{
		"company": company,
		// status is not part of the update request and is dropped on binding
		"status": "converted",
	})

	var response models.Lead
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(company, response.Company)
}

func (suite *LeadHandlerTestSuite) TestDeleteLead() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/leads/3", nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(gomock.Any(), uint(4)).Return(apperrors.ErrLeadNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/leads/4", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func (suite *LeadHandlerTestSuite) TestBulkImportLeads() {
	suite.T().Run("CSV upload numbers rows from 2", func(t *testing.T) {
		csv := "name,phone,industry\nAna,+16502530002,restaurant\nBen,+16502530003,dental\n"

		suite.mockService.EXPECT().
			BulkImport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rows []service.ImportRow) (*service.ImportResult, error) {
				assert.Len(t, rows, 2)
				assert.Equal(t, 2, rows[0].Row)
				assert.Equal(t, "Ben", rows[1].Name)
				assert.Equal(t, 3, rows[1].Row)
				return &service.ImportResult{ImportedCount: 2, Errors: []service.ImportRowError{}}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeFileUpload("/api/v1/leads/bulk", "file", "leads.csv", []byte(csv))

		var response service.ImportResult
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 2, response.ImportedCount)
	})

	suite.T().Run("CSV without required column", func(t *testing.T) {
		recorder := suite.httpSuite.MakeFileUpload("/api/v1/leads/bulk", "file", "leads.csv", []byte("name,phone\nAna,+16502530002\n"))

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "industry")
	})

	suite.T().Run("Multipart without file", func(t *testing.T) {
		recorder := suite.httpSuite.MakeFileUpload("/api/v1/leads/bulk", "other", "leads.csv", []byte("name\n"))

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "no file provided")
	})

	suite.T().Run("JSON rows number from 1", func(t *testing.T) {
		suite.mockService.EXPECT().
			BulkImport(gomock.Any(), []service.ImportRow{
				{Row: 1, CreateLeadRequest: service.CreateLeadRequest{Name: "Ana", Phone: "+16502530002", Industry: "restaurant"}},
			}).
			Return(&service.ImportResult{ImportedCount: 1, Errors: []service.ImportRowError{}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/leads/bulk", map[string]interface{}{
			"leads": []map[string]interface{}{{"name": "Ana", "phone": "+16502530002", "industry": "restaurant"}},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestLeadHandlerTestSuite runs the test suite
func TestLeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeadHandlerTestSuite))
}
