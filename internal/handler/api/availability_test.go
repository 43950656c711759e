//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pawsalon/internal/handler/api"
	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/handler/httperr"
	"pawsalon/internal/handler/validation"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/queries"
	"pawsalon/tests/common/httptest"
	queriesmock "pawsalon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.router.GET("/availability", api.NewAvailabilityHandler(s.mockQueries).Get)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGet() {
	serviceID := uuid.New()
	url := "/availability?date=2030-03-04&serviceId=" + serviceID.String()

	s.Run("success: waitlist count only on taken slots", func() {
		two := 2
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), queries.AvailabilityRequest{Date: "2030-03-04", ServiceID: serviceID.String()}).
			Return(&queries.AvailabilityView{
				Date:            "2030-03-04",
				ServiceID:       serviceID,
				DurationMinutes: 60,
				Slots: []queries.SlotView{
					{Time: "09:00", Available: true},
					{Time: "09:30", Available: false, WaitlistCount: &two},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		expected := []resdto.SlotResponse{
			{Time: "09:00", Available: true},
			{Time: "09:30", Available: false, WaitlistCount: &two},
		}
		if diff := cmp.Diff(expected, resp.Slots); diff != "" {
			s.T().Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		s.NotContains(rec.Body.String(), `"waitlistCount":null`)
	})

	s.Run("success: closed day has an empty slot list", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), gomock.Any()).
			Return(&queries.AvailabilityView{Date: "2030-03-03", ServiceID: serviceID, Slots: []queries.SlotView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"slots":[]`)
	})

	validationCases := []struct {
		name        string
		url         string
		expectField string
	}{
		{name: "missing date", url: "/availability?serviceId=" + serviceID.String(), expectField: "date"},
		{name: "bad date", url: "/availability?date=2030-13-01&serviceId=" + serviceID.String(), expectField: "date"},
		{name: "bad service id", url: "/availability?date=2030-03-04&serviceId=x", expectField: "serviceId"},
	}
	for _, tc := range validationCases {
		s.Run("validation: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.url, nil)

			errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
			s.Contains(errBody.DetailFields(), tc.expectField)
		})
	}

	s.Run("error: unknown service", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(errs.New("service not found"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
	})
}
