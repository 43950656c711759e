//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"pawsalon/internal/domain/appointment"
	"pawsalon/internal/handler/api"
	resdto "pawsalon/internal/handler/dto/response"
	"pawsalon/internal/handler/httperr"
	"pawsalon/internal/handler/validation"
	"pawsalon/internal/pkg/errs"
	"pawsalon/internal/usecase/commands"
	"pawsalon/internal/usecase/queries"
	"pawsalon/tests/common/builder"
	"pawsalon/tests/common/httptest"
	"pawsalon/tests/common/testutil"
	commandsmock "pawsalon/tests/mock/commands"
	queriesmock "pawsalon/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *commandsmock.MockBookingCommands
	mockStatus  *commandsmock.MockStatusCommands
	mockQueries *queriesmock.MockAppointmentQueries
	handler     *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockStatus = commandsmock.NewMockStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockBooking, s.mockStatus, s.mockQueries, time.UTC)

	s.router.POST("/appointments", s.handler.Create)
	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.PATCH("/appointments/:id/status", s.handler.UpdateStatus)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseBooking struct {
	name        string
	mutate      testutil.Mutation
	expectCode  int
	expectField string
}

var scheduledAt = time.Date(2030, time.March, 4, 10, 0, 0, 0, time.UTC)

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"
	serviceID := uuid.New()
	reqBody := builder.NewBookingBuilder(serviceID, scheduledAt).BuildRequest()
	result := &commands.CreateAppointmentResult{
		AppointmentID: uuid.New(),
		Reference:     "APT-2030-000042",
		ScheduledAt:   scheduledAt,
	}

	s.Run("success: returns 201 with reference", func() {
		s.mockBooking.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd commands.CreateAppointmentRequest) (*commands.CreateAppointmentResult, error) {
				s.Equal(serviceID, cmd.ServiceID)
				s.Equal("guest@example.com", cmd.Guest.Email)
				s.Equal("Biscuit", cmd.NewPet.Name)
				s.Nil(cmd.CustomerID)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var resp resdto.CreateAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.True(resp.Success)
		s.Equal(result.AppointmentID, resp.AppointmentID)
		s.Equal("APT-2030-000042", resp.Reference)
		s.True(scheduledAt.Equal(resp.ScheduledAt))
	})

	validationCases := []testCaseBooking{
		{name: "missing serviceId", mutate: testutil.Without("serviceId"), expectCode: http.StatusBadRequest, expectField: "serviceId"},
		{name: "missing scheduledAt", mutate: testutil.Without("scheduledAt"), expectCode: http.StatusBadRequest, expectField: "scheduledAt"},
		{name: "duration zero", mutate: testutil.Set("durationMinutes", 0), expectCode: http.StatusBadRequest, expectField: "durationMinutes"},
		{name: "duration above one working day", mutate: testutil.Set("durationMinutes", 481), expectCode: http.StatusBadRequest, expectField: "durationMinutes"},
		{name: "negative price", mutate: testutil.Set("totalPriceCents", -1), expectCode: http.StatusBadRequest, expectField: "totalPriceCents"},
		{name: "notes too long", mutate: testutil.Set("notes", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest, expectField: "notes"},
		{name: "guest email malformed", mutate: testutil.Set("guestInfo.email", "not-an-email"), expectCode: http.StatusBadRequest, expectField: "guestInfo.email"},
		{name: "guest without last name", mutate: testutil.Without("guestInfo.lastName"), expectCode: http.StatusBadRequest, expectField: "guestInfo.lastName"},
		{name: "new pet without species", mutate: testutil.Without("newPet.species"), expectCode: http.StatusBadRequest, expectField: "newPet.species"},
		{name: "serviceId not a uuid", mutate: testutil.Set("serviceId", "abc"), expectCode: http.StatusBadRequest, expectField: "body"},
		{name: "duration wrong type", mutate: testutil.Set("durationMinutes", "sixty"), expectCode: http.StatusBadRequest, expectField: "durationMinutes"},
	}

	for _, tc := range validationCases {
		s.Run("validation: "+tc.name, func() {
			body := testutil.JSONBody(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

			errBody := httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, httperr.CodeValidation)
			s.Contains(errBody.DetailFields(), tc.expectField)
		})
	}

	s.Run("validation: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"serviceId":`)

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		s.Equal([]string{"body"}, errBody.DetailFields())
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectErr  string
	}{
		{name: "slot taken", err: errs.Conflict(commands.ErrSlotConflict), expectCode: http.StatusConflict, expectErr: httperr.CodeSlotConflict},
		{name: "registered email", err: errs.Conflict(commands.ErrEmailExists), expectCode: http.StatusConflict, expectErr: httperr.CodeEmailExists},
		{name: "use-case validation", err: errs.Invalid("scheduledAt", "must be in the future"), expectCode: http.StatusBadRequest, expectErr: httperr.CodeValidation},
		{name: "unknown pet", err: errs.NotFound(errs.New("pet not found")), expectCode: http.StatusNotFound, expectErr: httperr.CodeNotFound},
		{name: "storage failure", err: errs.Internal(errs.New("pool closed")), expectCode: http.StatusInternalServerError, expectErr: httperr.CodeInternal},
	}

	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockBooking.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectErr)
		})
	}

	s.Run("error: internal details are not leaked", func() {
		s.mockBooking.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Internal(errs.New("password=hunter2 host=db"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.NotContains(rec.Body.String(), "hunter2")
		s.Contains(rec.Body.String(), httperr.InternalMessage)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	appt := builder.NewAppointmentBuilder().BuildDomain()
	view := queries.NewAppointmentView(appt, time.UTC)

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), appt.ID()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+appt.ID().String(), nil)

		var resp resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(appt.ID(), resp.ID)
		s.Equal("APT-2030-000042", resp.Reference)
		s.Equal(int64(6500), resp.TotalPriceCents)
		s.Equal("pending", resp.Status)
		s.Equal(60, resp.DurationMinutes)
	})

	s.Run("error: bad id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/nope", nil)

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		s.Equal([]string{"id"}, errBody.DetailFields())
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(queries.ErrAppointmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+uuid.NewString(), nil)

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound)
		s.Equal("appointment not found", errBody.Error)
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/appointments/" + id.String() + "/status"

	s.Run("success: returns both statuses", func() {
		s.mockStatus.EXPECT().UpdateAppointmentStatus(gomock.Any(), id, "confirmed").
			Return(&commands.StatusChangeResult{
				AppointmentID:  id,
				PreviousStatus: appointment.StatusPending,
				Status:         appointment.StatusConfirmed,
				UpdatedAt:      scheduledAt,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"})

		var resp resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("pending", resp.PreviousStatus)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("validation: status required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})

		errBody := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation)
		s.Equal([]string{"status"}, errBody.DetailFields())
	})

	s.Run("error: transition refused", func() {
		s.mockStatus.EXPECT().UpdateAppointmentStatus(gomock.Any(), id, "pending").
			Return(nil, errs.Conflict(errs.Wrap(commands.ErrInvalidTransition, "completed -> pending"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)
	})
}
