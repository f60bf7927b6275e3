package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"voice-sales-backend/internal/api/handlers"
	"voice-sales-backend/internal/mocks"
	"voice-sales-backend/internal/service"
	"voice-sales-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardServiceInterface(ctrl)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/analytics/dashboard", handlers.NewDashboardHandler(dashboard).GetDashboard)

	t.Run("Success", func(t *testing.T) {
		dashboard.EXPECT().
			GetMetrics(gomock.Any()).
			Return(&service.DashboardMetrics{
				TotalLeads:      3,
				TotalCalls:      4,
				ConversionRate:  33.33,
				AvgCallDuration: 45.5,
				LeadsByStatus:   map[string]int64{"new": 2, "converted": 1},
			}, nil).
			Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil)

		var response map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, 33.33, response["conversion_rate"])
		assert.Equal(t, 45.5, response["avg_call_duration"])
	})

	t.Run("Storage failure", func(t *testing.T) {
		dashboard.EXPECT().GetMetrics(gomock.Any()).Return(nil, errors.New("relation \"calls\" does not exist")).Times(1)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
	})
}
