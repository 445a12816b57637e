package api

import (
	"net/http"

	"lane-booking/internal/domain/reservation"
	"lane-booking/internal/domain/schedule"
	reqdto "lane-booking/internal/handler/dto/request"
	resdto "lane-booking/internal/handler/dto/response"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/queries"
	"lane-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRangeDays = 92

type ReservationHandler struct {
	cmds commands.LifecycleCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.LifecycleCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Description Reservations of one date, or of an inclusive from/to range, ordered by date and time
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("date"); raw != "" {
		date, err := schedule.ParseDate(raw)
		if err != nil {
			badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
			return
		}
		views, err := h.q.ListByDate(ctx, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromReservationViews(views))
		return
	}

	from, ferr := schedule.ParseDate(c.Query("from"))
	to, terr := schedule.ParseDate(c.Query("to"))
	if ferr != nil || terr != nil {
		badRequest(c, nil, "Provide date or from/to (YYYY-MM-DD)")
		return
	}
	if to.Before(from) || from.AddDays(maxRangeDays).Before(to) {
		badRequest(c, nil, "Invalid range")
		return
	}

	views, err := h.q.ListByDateRange(ctx, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Confirm reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ConfirmReservationRequest false "Payment status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ConfirmReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err, "Invalid request format")
			return
		}
	}
	h.transition(c, func(actor shared.Actor) (*reservation.Reservation, error) {
		return h.cmds.Confirm(c.Request.Context(), actor, id, req.Payment())
	})
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.transition(c, func(actor shared.Actor) (*reservation.Reservation, error) {
		return h.cmds.Cancel(c.Request.Context(), actor, id)
	})
}

// @Summary Mark no-show
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/no-show [post]
func (h *ReservationHandler) NoShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.transition(c, func(actor shared.Actor) (*reservation.Reservation, error) {
		return h.cmds.MarkNoShow(c.Request.Context(), actor, id)
	})
}

func (h *ReservationHandler) transition(c *gin.Context, apply func(shared.Actor) (*reservation.Reservation, error)) {
	row, err := apply(middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(queries.NewReservationView(row)))
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
