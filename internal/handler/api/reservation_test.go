//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	"lane-booking/internal/handler/api"
	reqdto "lane-booking/internal/handler/dto/request"
	resdto "lane-booking/internal/handler/dto/response"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/testutil"
	commandsmock "lane-booking/internal/testutil/mock/commands"
	queriesmock "lane-booking/internal/testutil/mock/queries"
	"lane-booking/internal/usecase/queries"
	"lane-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLifecycleCommands
	mockQueries  *queriesmock.MockReservationQueries
	staffToken   string
	staff        shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.staffToken = testutil.StaffToken(s.T(), testutil.TestJWTSecret, "manager")
	s.staff = shared.Staff("manager")

	staffOnly := s.router.Group("/api/reservations", newAuthMiddleware().RequireStaff())
	staffOnly.GET("", handler.List)
	staffOnly.GET("/:id", handler.Get)
	staffOnly.POST("/:id/confirm", handler.Confirm)
	staffOnly.POST("/:id/cancel", handler.Cancel)
	staffOnly.POST("/:id/no-show", handler.NoShow)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) view(mutate func(*testutil.ReservationBuilder)) *queries.ReservationView {
	return queries.NewReservationView(testutil.NewReservationBuilder().With(mutate).Build(s.T()))
}

func (s *ReservationHandlerTestSuite) TestAuthentication() {
	cases := []struct {
		name  string
		token string
	}{
		{name: "no token", token: ""},
		{name: "garbage token", token: "abc.def.ghi"},
		{name: "expired token", token: testutil.ExpiredStaffToken(s.T(), testutil.TestJWTSecret, "manager")},
		{name: "token signed with another secret", token: testutil.StaffToken(s.T(), "another-secret", "manager")},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?date=2025-01-07", nil, tc.token)
			testutil.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
		})
	}
}

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: by date", func() {
		date := schedule.MustParseDate("2025-01-07")
		s.mockQueries.EXPECT().ListByDate(gomock.Any(), date).Return([]*queries.ReservationView{
			s.view(func(b *testutil.ReservationBuilder) { b.StartHour = 18 }),
			s.view(func(b *testutil.ReservationBuilder) { b.StartHour = 0 }),
		}, nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?date=2025-01-07", nil, s.staffToken)

		var body []resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("18:00", body[0].Time)
		s.Equal("0:00", body[1].Time)
		s.NotNil(body[0].Guests)
	})

	s.Run("success: by range", func() {
		from := schedule.MustParseDate("2025-01-01")
		to := schedule.MustParseDate("2025-01-31")
		s.mockQueries.EXPECT().ListByDateRange(gomock.Any(), from, to).Return([]*queries.ReservationView{}, nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations?from=2025-01-01&to=2025-01-31", nil, s.staffToken)

		var body []resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	for name, path := range map[string]string{
		"no filter":       "/api/reservations",
		"bad date":        "/api/reservations?date=07-01-2025",
		"reversed range":  "/api/reservations?from=2025-02-01&to=2025-01-01",
		"range too large": "/api/reservations?from=2025-01-01&to=2025-12-31",
	} {
		s.Run("error: 400 "+name, func() {
			rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.staffToken)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(s.view(func(b *testutil.ReservationBuilder) {
			b.ID = id
			b.Details = reservation.Details{EventType: "Aniversário", PeopleCount: 12}
		}), nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String(), nil, s.staffToken)

		var body resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ID)
		s.Equal("Aniversário", body.EventType)
		s.Equal(12, body.PeopleCount)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("reservation not found"), errs.ErrReservationNotFound))

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+id.String(), nil, s.staffToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/42", nil, s.staffToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()
	url := "/api/reservations/" + id.String()

	s.Run("confirm defaults payment to pending", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.staff, id, reservation.PaymentPending).
			Return(testutil.NewReservationBuilder().With(func(b *testutil.ReservationBuilder) {
				b.ID = id
				b.Status = reservation.StatusConfirmed
			}).Build(s.T()), nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/confirm", nil, s.staffToken)

		var body resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CONFIRMED", body.Status)
		s.Equal("PENDING", body.PaymentStatus)
	})

	s.Run("confirm as paid", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.staff, id, reservation.PaymentPaid).
			Return(testutil.NewReservationBuilder().With(func(b *testutil.ReservationBuilder) {
				b.ID = id
				b.Status = reservation.StatusConfirmed
				b.PaymentStatus = reservation.PaymentPaid
			}).Build(s.T()), nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/confirm",
			reqdto.ConfirmReservationRequest{PaymentStatus: "PAID"}, s.staffToken)

		var body resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("PAID", body.PaymentStatus)
	})

	s.Run("confirm rejects unknown payment status", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/confirm",
			map[string]any{"paymentStatus": "REFUNDED"}, s.staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("cancel", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.staff, id).
			Return(testutil.NewReservationBuilder().With(func(b *testutil.ReservationBuilder) {
				b.ID = id
				b.Status = reservation.StatusCancelled
			}).Build(s.T()), nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, s.staffToken)

		var body resdto.ReservationResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("no-show of a cancelled reservation is a conflict", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), s.staff, id).
			Return(nil, errs.Mark(errs.New("CANCELLED -> NO_SHOW"), errs.ErrInvalidTransition))

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/no-show", nil, s.staffToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid reservation status transition")
	})

	s.Run("forbidden actor", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.staff, id).
			Return(nil, errs.Mark(errs.New("not allowed"), errs.ErrForbidden))

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPost, url+"/cancel", nil, s.staffToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
