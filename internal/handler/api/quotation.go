package api

import (
	"context"
	"net/http"

	reqdto "marketplace-core/internal/handler/dto/request"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/handler/httperr"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotationHandler struct {
	commands commands.QuotationCommands
	queries  queries.QuotationQueries
}

func NewQuotationHandler(quotationCommands commands.QuotationCommands, quotationQueries queries.QuotationQueries) *QuotationHandler {
	return &QuotationHandler{
		commands: quotationCommands,
		queries:  quotationQueries,
	}
}

type respondFunc func(ctx context.Context, quotationID, actorID uuid.UUID, req commands.RespondRequest) error

// @Summary Create quotation
// @Description Issue a numbered quotation for a booking assigned to the current partner
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CreateQuotationRequest true "Quotation request"
// @Success 201 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/quotations [post]
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CreateQuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	q, err := h.commands.CreateQuotation(c.Request.Context(), req.ToCommand(bookingID), v.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/quotations/"+q.ID().String())
	h.respond(c, http.StatusCreated, q.ID())
}

// @Summary List quotations of a booking
// @Description Quotations issued for the booking, oldest first
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/{id}/quotations [get]
func (h *QuotationHandler) ListBookingQuotations(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	views, err := h.queries.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotationList(views))
}

// @Summary Get quotation
// @Description Get quotation by ID with its status derived at read time
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Get quotation by number
// @Description Look up a quotation by its human-facing number, e.g. QT000042
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param number path string true "Quotation number"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/number/{number} [get]
func (h *QuotationHandler) GetQuotationByNumber(c *gin.Context) {
	view, err := h.queries.GetQuotationByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotationView(view))
}

// @Summary Customer response
// @Description Record the booking customer's decision on a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.RespondRequest true "Decision"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /quotations/{id}/customer-response [post]
func (h *QuotationHandler) CustomerRespond(c *gin.Context) {
	h.decide(c, func(ctx context.Context, id, actor uuid.UUID, req commands.RespondRequest) error {
		_, err := h.commands.CustomerRespond(ctx, id, actor, req)
		return err
	})
}

// @Summary Partner response
// @Description Record a franchise partner's decision on its own quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.RespondRequest true "Decision"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /quotations/{id}/partner-response [post]
func (h *QuotationHandler) PartnerRespond(c *gin.Context) {
	h.decide(c, func(ctx context.Context, id, actor uuid.UUID, req commands.RespondRequest) error {
		_, err := h.commands.PartnerRespond(ctx, id, actor, req)
		return err
	})
}

// @Summary Admin response
// @Description Record the admin review of a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.RespondRequest true "Decision"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /quotations/{id}/admin-response [post]
func (h *QuotationHandler) AdminRespond(c *gin.Context) {
	h.decide(c, func(ctx context.Context, id, actor uuid.UUID, req commands.RespondRequest) error {
		_, err := h.commands.AdminRespond(ctx, id, actor, req)
		return err
	})
}

// @Summary Withdraw quotation
// @Description Delete a quotation the customer has not answered yet
// @Tags quotations
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) WithdrawQuotation(c *gin.Context) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commands.WithdrawQuotation(c.Request.Context(), id, v.ID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotationHandler) decide(c *gin.Context, run respondFunc) {
	v, ok := viewer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RespondRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := run(c.Request.Context(), id, v.ID, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *QuotationHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.queries.GetQuotation(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromQuotationView(view))
}
