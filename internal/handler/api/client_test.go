//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lane-booking/internal/domain/client"
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

type ClientHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClientCommands
	mockQueries  *queriesmock.MockClientQueries
	staffToken   string
}

func (s *ClientHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClientCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockClientQueries(s.mockCtrl)
	handler := api.NewClientHandler(s.mockCommands, s.mockQueries)
	s.staffToken = testutil.StaffToken(s.T(), testutil.TestJWTSecret, "manager")

	staffOnly := s.router.Group("/api/clients", newAuthMiddleware().RequireStaff())
	staffOnly.GET("", handler.List)
	staffOnly.GET("/:id/history", handler.History)
	staffOnly.PUT("/:id/stage", handler.UpdateStage)
}

func (s *ClientHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClientHandlerSuite(t *testing.T) {
	suite.Run(t, new(ClientHandlerTestSuite))
}

func (s *ClientHandlerTestSuite) TestList() {
	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ClientView{
		queries.NewClientView(testutil.NewClientBuilder().Build()),
		queries.NewClientView(testutil.NewClientBuilder().With(func(b *testutil.ClientBuilder) {
			b.Name = "Bruno"
			b.Phone = "11955554444"
			b.Tags = nil
		}).Build()),
	}, nil)

	rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clients", nil, s.staffToken)

	var body []resdto.ClientResponse
	testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("NOVO", body[0].FunnelStage)
	s.NotNil(body[1].Tags)
}

func (s *ClientHandlerTestSuite) TestHistory() {
	cl := testutil.NewClientBuilder().Build()

	s.Run("success", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), cl.ID()).Return(&queries.ClientHistoryView{
			Client:       queries.NewClientView(cl),
			Reservations: queries.NewReservationViews(nil),
			Counts:       queries.HistoryCounts{Confirmed: 2, NoShow: 1},
			LaneHours:    3,
			SpentCents:   42000,
		}, nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clients/"+cl.ID().String()+"/history", nil, s.staffToken)

		var body resdto.ClientHistoryResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(cl.ID(), body.Client.ID)
		s.Equal(2, body.Counts.Confirmed)
		s.Equal(1, body.Counts.NoShow)
		s.Equal(int64(42000), body.SpentCents)
		s.Empty(body.Reservations)
	})

	s.Run("error: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().History(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("client not found"), errs.ErrClientNotFound))

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodGet, "/api/clients/"+id.String()+"/history", nil, s.staffToken)
		testutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Client not found")
	})
}

func (s *ClientHandlerTestSuite) TestUpdateStage() {
	cl := testutil.NewClientBuilder().Build()
	url := "/api/clients/" + cl.ID().String() + "/stage"

	s.Run("success: moves backwards on the board", func() {
		moved := testutil.NewClientBuilder().With(func(b *testutil.ClientBuilder) {
			b.ID = cl.ID()
			b.Stage = client.StageNegotiation
		}).Build()
		s.mockCommands.EXPECT().
			UpdateClientStage(gomock.Any(), shared.Staff("manager"), cl.ID(), client.StageNegotiation).
			Return(moved, nil)

		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateClientStageRequest{Stage: "NEGOCIACAO"}, s.staffToken)

		var body resdto.ClientResponse
		testutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("NEGOCIACAO", body.FunnelStage)
	})

	s.Run("error: 400 on unknown stage", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateClientStageRequest{Stage: "VIP"}, s.staffToken)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 without token", func() {
		rec := testutil.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.UpdateClientStageRequest{Stage: "PERDIDO"}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
