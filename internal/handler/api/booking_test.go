//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"marketplace-core/internal/domain/booking"
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/handler/api"
	resdto "marketplace-core/internal/handler/dto/response"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/usecase/commands"
	"marketplace-core/internal/usecase/queries"
	"marketplace-core/tests/common/builder"
	"marketplace-core/tests/common/httptest"
	"marketplace-core/tests/common/testutil"
	commandsmock "marketplace-core/tests/mock/commands"
	queriesmock "marketplace-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	caller queries.Viewer
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.caller = queries.Viewer{ID: uuid.New(), Role: user.RoleCustomer}

	auth := fakeAuth(&s.caller)
	s.router.POST("/bookings", auth, s.handler.CreateBooking)
	s.router.GET("/bookings", auth, s.handler.ListMyBookings)
	s.router.GET("/bookings/open", auth, s.handler.ListOpenBookings)
	s.router.GET("/bookings/:id", auth, s.handler.GetBooking)
	s.router.POST("/bookings/:id/accept", auth, s.handler.AcceptBooking)
	s.router.POST("/bookings/:id/reject", auth, s.handler.RejectBooking)
	s.router.POST("/bookings/:id/complete", auth, s.handler.CompleteBooking)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// fakeAuth stands in for RequireAuth and authenticates every request as *caller.
func fakeAuth(caller *queries.Viewer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", caller.ID)
		c.Set("user_role", caller.Role)
		c.Next()
	}
}

func bookingView(id, userID uuid.UUID) *queries.BookingView {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:               id,
		UserID:           userID,
		ServiceName:      "AC repair",
		Address:          "12 Harbour Road",
		ScheduledAt:      created.Add(24 * time.Hour),
		Status:           "pending",
		CancelableUntil:  created.Add(booking.CancellationWindow),
		RejectionHistory: []queries.RejectionView{},
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	bb := builder.NewBookingBuilder().WithUserID(s.caller.ID)
	created, err := bb.BuildDomain()
	s.Require().NoError(err)

	reqBody := map[string]any{
		"service_name": bb.ServiceName,
		"address":      bb.Address,
		"scheduled_at": bb.ScheduledAt,
	}

	s.Run("success: returns 201 with the stored view", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), commands.CreateBookingRequest{
			ServiceName: bb.ServiceName,
			Address:     bb.Address,
			ScheduledAt: bb.ScheduledAt,
		}, s.caller.ID).Return(created, nil)
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), created.ID(), s.caller).
			Return(bookingView(created.ID(), s.caller.ID), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + created.ID().String()})
		s.Equal(created.ID(), response.ID)
		s.Equal("pending", response.Status)
		s.Nil(response.OTP)
	})

	s.Run("error: 400 on missing fields", func() {
		for _, field := range []string{"service_name", "address", "scheduled_at"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
			})
		}
	})

	s.Run("error: 400 with the domain message", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.caller.ID).
			Return(nil, booking.ErrScheduledInPast)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "scheduled time must be in the future")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("success: passes the caller to the query", func() {
		view := bookingView(id, s.caller.ID)
		otp := "246810"
		view.OTP = &otp
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id, s.caller).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.OTP)
		s.Equal("246810", *response.OTP)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid id format")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id, s.caller).
			Return(nil, errs.Mark(errs.New("no rows"), booking.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	item := &queries.BookingListItem{ID: uuid.New(), ServiceName: "AC repair", Status: "pending", CreatedAt: time.Now()}

	s.Run("mine: forwards cursor and limit, returns next cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.caller, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.BookingListItem{item}, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=5&after=abc", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(item.ID, response.Items[0].ID)
		s.Require().NotNil(response.NextCursor)
		s.Equal("next", *response.NextCursor)
	})

	s.Run("open: last page has no cursor", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), &queries.Cursor{}, 0).
			Return([]*queries.BookingListItem{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/open", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=500", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.caller, &queries.Cursor{After: "%%%"}, 0).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=%25%25%25", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

func (s *BookingHandlerTestSuite) TestAcceptBooking() {
	id := uuid.New()
	s.caller.Role = user.RolePartner

	s.Run("success: re-reads the booking for the partner", func() {
		s.mockCommands.EXPECT().AcceptBooking(gomock.Any(), id, s.caller.ID).Return(nil, nil)
		view := bookingView(id, uuid.New())
		view.Status = "accepted"
		view.PartnerID = &s.caller.ID
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id, s.caller).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/accept", nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("accepted", response.Status)
		s.Nil(response.OTP)
	})

	s.Run("error: 409 ALREADY_ASSIGNED when another partner won", func() {
		s.mockCommands.EXPECT().AcceptBooking(gomock.Any(), id, s.caller.ID).
			Return(nil, errs.Mark(errs.New("booking update affected no rows"), booking.ErrAlreadyAssigned))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/accept", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "booking already has a partner assigned")
		s.Contains(rec.Body.String(), "ALREADY_ASSIGNED")
	})
}

func (s *BookingHandlerTestSuite) TestRejectAndCancel_RequireReason() {
	id := uuid.New()

	for _, action := range []string{"reject", "cancel"} {
		s.Run(action, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/"+action, map[string]any{}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid request format")
		})
	}

	s.Run("cancel: 409 once the window has passed", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.caller.ID, "changed plans").
			Return(nil, booking.ErrWindowExpired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel",
			map[string]any{"reason": "changed plans"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cancellation window has passed")
		s.Contains(rec.Body.String(), "CANCELLATION_WINDOW_EXPIRED")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	id := uuid.New()
	s.caller.Role = user.RolePartner
	remark := "replaced capacitor"

	s.Run("success", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id, s.caller.ID, commands.CompleteBookingRequest{
			OTP:    "246810",
			Remark: &remark,
		}).Return(nil, nil)
		view := bookingView(id, uuid.New())
		view.Status = "completed"
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id, s.caller).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete",
			map[string]any{"otp": "246810", "remark": remark}, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 422 on wrong otp", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id, s.caller.ID, gomock.Any()).
			Return(nil, booking.ErrInvalidOtp)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete",
			map[string]any{"otp": "000000"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "otp does not match")
	})

	s.Run("error: 409 when otp already used", func() {
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), id, s.caller.ID, gomock.Any()).
			Return(nil, booking.ErrOtpInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/complete",
			map[string]any{"otp": "246810"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "otp is not active")
	})
}
