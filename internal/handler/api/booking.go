package api

import (
	"net/http"
	"strconv"
	"time"

	"lane-booking/internal/domain/schedule"
	reqdto "lane-booking/internal/handler/dto/request"
	resdto "lane-booking/internal/handler/dto/response"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/usecase/commands"
	"lane-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Establishment settings
// @Description Public establishment configuration: lanes, prices and business hours
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/settings [get]
func (h *BookingHandler) GetSettings(c *gin.Context) {
	view, err := h.q.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Booking calendar
// @Description Days of a month with their bookable flag
// @Tags booking
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} httperr.Response
// @Router /api/calendar [get]
func (h *BookingHandler) GetCalendar(c *gin.Context) {
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		badRequest(c, err, "Invalid month, expected YYYY-MM")
		return
	}
	days, err := h.q.Calendar(c.Request.Context(), month.Year(), month.Month())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarDayViews(days))
}

// @Summary Day availability
// @Description Hourly slot grid for a date and a requested lane count
// @Tags booking
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param lanes query int false "Requested lanes" default(1)
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
		return
	}
	lanes := 1
	if raw := c.Query("lanes"); raw != "" {
		lanes, err = strconv.Atoi(raw)
		if err != nil || lanes < 1 {
			badRequest(c, err, "Invalid lanes")
			return
		}
	}

	view, err := h.q.DayAvailability(c.Request.Context(), date, lanes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Quote a selection
// @Description Merge selected hours into blocks and price them
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	view, err := h.q.Quote(c.Request.Context(), date, req.Hours, req.LaneCount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create booking
// @Description Book lanes for the selected hours. Guests get a checkout; a staff token books at the counter.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Capacity conflict; detail names the hour"
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), middleware.GetActor(c), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Complete checkout
// @Description Guests request a new payment link; staff settle in person
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout"
// @Success 200 {object} resdto.CheckoutResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/checkout [post]
func (h *BookingHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.CompleteCheckout(c.Request.Context(), middleware.GetActor(c), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
