package api

import (
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a pending service booking for the current customer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.commands.CreateBooking(c.Request.Context(), req.ToCommand(), v.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+b.ID().String())
	h.respond(c, http.StatusCreated, b.ID(), v)
}

// @Summary Get booking
// @Description Get booking by ID. The OTP is only included for the booking's customer.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id, v)
}

// @Summary List my bookings
// @Description Customers see their own bookings, partners the bookings assigned to them, admins all bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	var req reqdto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errInvalidRequest))
		return
	}

	items, next, err := h.queries.ListMine(c.Request.Context(), v, &queries.Cursor{After: req.After}, req.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary List open bookings
// @Description Pending bookings that no partner has accepted yet
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/open [get]
func (h *BookingHandler) ListOpenBookings(c *gin.Context) {
	var req reqdto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errInvalidRequest))
		return
	}

	items, next, err := h.queries.ListOpen(c.Request.Context(), &queries.Cursor{After: req.After}, req.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items, next))
}

// @Summary Accept booking
// @Description Assign the current partner to a pending booking and issue its OTP
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	h.action(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		_, err := h.commands.AcceptBooking(c.Request.Context(), id, v.ID)
		return err
	})
}

// @Summary Start booking
// @Description Move an accepted booking to in progress
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/start [post]
func (h *BookingHandler) StartBooking(c *gin.Context) {
	h.action(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		_, err := h.commands.StartBooking(c.Request.Context(), id, v.ID)
		return err
	})
}

// @Summary Reject booking
// @Description Release an accepted booking back to pending and record the rejection
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest true "Rejection reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.action(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		var req reqdto.ReasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return errs.Mark(err, errInvalidRequest)
		}
		_, err := h.commands.RejectBooking(c.Request.Context(), id, v.ID, req.Reason)
		return err
	})
}

// @Summary Complete booking
// @Description Complete an in-progress booking with the customer's OTP
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CompleteBookingRequest true "Completion request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/complete [post]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.action(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		var req reqdto.CompleteBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return errs.Mark(err, errInvalidRequest)
		}
		_, err := h.commands.CompleteBooking(c.Request.Context(), id, v.ID, req.ToCommand())
		return err
	})
}

// @Summary Cancel booking
// @Description Cancel the customer's booking within the cancellation window
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest true "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.action(c, func(c *gin.Context, id uuid.UUID, v queries.Viewer) error {
		var req reqdto.ReasonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return errs.Mark(err, errInvalidRequest)
		}
		_, err := h.commands.CancelBooking(c.Request.Context(), id, v.ID, req.Reason)
		return err
	})
}

// action runs a state change on the booking in the path and answers with the fresh view.
func (h *BookingHandler) action(c *gin.Context, run func(c *gin.Context, id uuid.UUID, v queries.Viewer) error) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := run(c, id, v); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id, v)
}

func (h *BookingHandler) respond(c *gin.Context, status int, id uuid.UUID, v queries.Viewer) {
	view, err := h.queries.GetBooking(c.Request.Context(), id, v)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}
