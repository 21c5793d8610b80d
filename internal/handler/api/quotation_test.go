//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"marketplace-core/internal/domain/quotation"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/tests/common/builder"
	"marketplace-core/tests/common/httptest"
	commandsmock "marketplace-core/tests/mock/commands"
	queriesmock "marketplace-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuotationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuotationCommands
	mockQueries  *queriesmock.MockQuotationQueries
	handler      *api.QuotationHandler

	caller queries.Viewer
	qb     *builder.QuotationBuilder
}

func (s *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuotationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuotationQueries(s.mockCtrl)
	s.handler = api.NewQuotationHandler(s.mockCommands, s.mockQueries)
	s.qb = builder.NewQuotationBuilder()
	s.caller = queries.Viewer{ID: s.qb.PartnerID, Role: user.RolePartner}

	auth := fakeAuth(&s.caller)
	s.router.POST("/bookings/:id/quotations", auth, s.handler.CreateQuotation)
	s.router.GET("/bookings/:id/quotations", auth, s.handler.ListBookingQuotations)
	s.router.GET("/quotations/:id", auth, s.handler.GetQuotation)
	s.router.GET("/quotations/number/:number", auth, s.handler.GetQuotationByNumber)
	s.router.POST("/quotations/:id/customer-response", auth, s.handler.CustomerRespond)
	s.router.POST("/quotations/:id/admin-response", auth, s.handler.AdminRespond)
	s.router.DELETE("/quotations/:id", auth, s.handler.WithdrawQuotation)
}

func (s *QuotationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuotationHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}

func quotationView(id uuid.UUID, status string) *queries.QuotationView {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &queries.QuotationView{
		ID:          id,
		Number:      "QT000042",
		BookingID:   uuid.New(),
		PartnerType: "individual",
		Items:       []queries.LineItemView{{Description: "Labour", Quantity: 1, UnitPrice: 300, Total: 300}},
		TotalAmount: 300,
		ValidTill:   now.Add(72 * time.Hour),
		Customer:    queries.TrackView{Status: "pending"},
		Partner:     queries.TrackView{Status: "not_required"},
		Admin:       queries.TrackView{Status: "pending"},
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *QuotationHandlerTestSuite) TestCreateQuotation() {
	q, err := s.qb.BuildDomain()
	s.Require().NoError(err)
	bookingID := q.BookingID()

	items := make([]map[string]any, 0, len(s.qb.Items))
	for _, it := range s.qb.Items {
		items = append(items, map[string]any{
			"description": it.Description,
			"quantity":    it.Quantity,
			"unit_price":  it.UnitPrice,
			"total":       it.Total,
		})
	}
	reqBody := map[string]any{"items": items, "valid_till": s.qb.ValidTill, "notes": s.qb.Notes}
	url := "/bookings/" + bookingID.String() + "/quotations"

	s.Run("success: returns 201 with the number", func() {
		s.mockCommands.EXPECT().CreateQuotation(gomock.Any(), commands.CreateQuotationRequest{
			BookingID: bookingID,
			Items:     s.qb.Items,
			ValidTill: s.qb.ValidTill,
			Notes:     s.qb.Notes,
		}, s.caller.ID).Return(q, nil)
		s.mockQueries.EXPECT().GetQuotation(gomock.Any(), q.ID()).Return(quotationView(q.ID(), "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("QT000042", response.Number)
		s.Equal("not_required", response.Partner.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/quotations/" + q.ID().String()})
	})

	s.Run("error: 400 with the item error", func() {
		s.mockCommands.EXPECT().CreateQuotation(gomock.Any(), gomock.Any(), s.caller.ID).
			Return(nil, quotation.ErrTotalMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "line item total does not equal")
	})

	s.Run("error: 403 when the booking is someone else's", func() {
		s.mockCommands.EXPECT().CreateQuotation(gomock.Any(), gomock.Any(), s.caller.ID).
			Return(nil, quotation.ErrBookingNotAssigned)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking is not assigned to this partner")
	})
}

func (s *QuotationHandlerTestSuite) TestGetQuotation() {
	id := uuid.New()

	s.Run("by id", func() {
		s.mockQueries.EXPECT().GetQuotation(gomock.Any(), id).Return(quotationView(id, "expired"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/"+id.String(), nil, "bearer-token")

		var response resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("expired", response.Status)
	})

	s.Run("by number", func() {
		s.mockQueries.EXPECT().GetQuotationByNumber(gomock.Any(), "QT000042").Return(quotationView(id, "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/number/QT000042", nil, "bearer-token")

		var response resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
	})

	s.Run("by malformed number", func() {
		s.mockQueries.EXPECT().GetQuotationByNumber(gomock.Any(), "42").Return(nil, quotation.ErrInvalidNumber)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotations/number/42", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "quotation number must look like")
	})

	s.Run("list by booking", func() {
		bookingID := uuid.New()
		s.mockQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).Return([]*queries.QuotationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/quotations", nil, "bearer-token")

		var response []resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *QuotationHandlerTestSuite) TestRespond() {
	id := uuid.New()
	url := "/quotations/" + id.String()

	s.Run("customer accept", func() {
		s.caller.Role = user.RoleCustomer
		s.mockCommands.EXPECT().CustomerRespond(gomock.Any(), id, s.caller.ID, commands.RespondRequest{Decision: "accept"}).
			Return(nil, nil)
		s.mockQueries.EXPECT().GetQuotation(gomock.Any(), id).
			Return(quotationView(id, "customer_accepted_admin_pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/customer-response",
			map[string]any{"decision": "accept"}, "bearer-token")

		var response resdto.QuotationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("customer_accepted_admin_pending", response.Status)
	})

	type testCase struct {
		name       string
		err        error
		expectCode int
		expectBody string
	}
	cases := []testCase{
		{name: "already responded", err: quotation.ErrAlreadyResponded, expectCode: http.StatusConflict, expectBody: "ALREADY_RESPONDED"},
		{name: "already reviewed", err: quotation.ErrAlreadyReviewed, expectCode: http.StatusConflict, expectBody: "ALREADY_REVIEWED"},
		{name: "expired", err: quotation.ErrExpired, expectCode: http.StatusGone, expectBody: "EXPIRED"},
		{name: "partner approval pending", err: quotation.ErrPartnerApprovalPending, expectCode: http.StatusConflict, expectBody: "PARTNER_APPROVAL_PENDING"},
		{name: "partner rejected", err: quotation.ErrPartnerRejected, expectCode: http.StatusConflict, expectBody: "PARTNER_REJECTED"},
		{name: "reason too long", err: quotation.ErrReasonTooLong, expectCode: http.StatusBadRequest, expectBody: "VALIDATION_ERROR"},
	}
	for _, tc := range cases {
		s.Run("admin: "+tc.name, func() {
			s.caller.Role = user.RoleAdmin
			s.mockCommands.EXPECT().AdminRespond(gomock.Any(), id, s.caller.ID, gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/admin-response",
				map[string]any{"decision": "reject"}, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
			s.Contains(rec.Body.String(), tc.expectBody)
		})
	}

	s.Run("error: 400 without a decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/admin-response", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
	})
}

func (s *QuotationHandlerTestSuite) TestWithdrawQuotation() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().WithdrawQuotation(gomock.Any(), id, s.caller.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 after the customer answered", func() {
		s.mockCommands.EXPECT().WithdrawQuotation(gomock.Any(), id, s.caller.ID).Return(quotation.ErrCustomerAlreadyResponded)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "customer response already recorded")
	})
}
