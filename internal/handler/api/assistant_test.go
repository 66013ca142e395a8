//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"ticket-booking/internal/handler/api"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/handler/middleware"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/assistant"
	"ticket-booking/internal/usecase/shared"
	"ticket-booking/tests/common/builder"
	"ticket-booking/tests/common/httptest"
	assistantmock "ticket-booking/tests/mock/assistant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssistantHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	assistant *assistantmock.MockAssistant
}

func (s *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.assistant = assistantmock.NewMockAssistant(s.mockCtrl)
	h := api.NewAssistantHandler(s.assistant)

	s.router.POST("/api/ai/chat", h.Chat)
	s.router.POST("/api/ai/book/:eventId", h.BookWithText)
	s.router.POST("/api/ai/recommendations", h.Recommend)
}

func (s *AssistantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssistantHandlerSuite(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

func (s *AssistantHandlerTestSuite) TestChat() {
	s.Run("success: answer is wrapped in response", func() {
		s.assistant.EXPECT().TranslateSearchQuery(gomock.Any(), "any rock concerts?").
			Return("Here are the concerts").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/chat",
			map[string]string{"message": "any rock concerts?"}, "")

		var body resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Here are the concerts", body.Response)
	})

	s.Run("success: fallback message still answers 200", func() {
		s.assistant.EXPECT().TranslateSearchQuery(gomock.Any(), gomock.Any()).
			Return(assistant.FallbackMessage).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/chat",
			map[string]string{"message": "hello"}, "")

		var body resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(assistant.FallbackMessage, body.Response)
	})

	s.Run("error: missing message returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/chat", map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *AssistantHandlerTestSuite) TestBookWithText() {
	ev := builder.NewEventBuilder().MustBuildDomain()
	b, err := builder.NewBookingBuilder().BuildDomain(ev)
	s.Require().NoError(err)
	details := &shared.BookingDetails{Booking: b, Event: ev}
	url := "/api/ai/book/" + ev.ID().String()
	msg := map[string]string{"message": "Book 3 tickets for Ann, ann@example.com"}

	s.Run("success: returns 201 with the booking", func() {
		s.assistant.EXPECT().TranslateBookingText(gomock.Any(), msg["message"], ev.ID()).
			Return(details, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, msg, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(3, body.NumberOfTickets)
		s.Equal(resdto.MessageBookingConfirmed, body.Message)
	})

	s.Run("error: malformed event id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/book/xyz", msg, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event id")
	})

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "missing field names the field",
			err:        errs.Wrap(&errs.MissingFieldError{Field: "customerEmail"}, "extract booking"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "customerEmail is required",
		},
		{
			name:       "oracle outage",
			err:        errs.Wrap(errs.ErrOracleUnavailable, "extract booking"),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "temporarily unavailable",
		},
		{
			name:       "unreadable oracle answer",
			err:        errs.Wrap(errs.ErrMalformedOracleResponse, "extract booking"),
			expectCode: http.StatusBadGateway,
			expectMsg:  "unreadable answer",
		},
		{
			name:       "sold out",
			err:        &errs.InsufficientInventoryError{Requested: 3, Available: 0},
			expectCode: http.StatusConflict,
			expectMsg:  "Available: 0",
		},
		{
			name:       "unknown event",
			err:        errs.Wrapf(errs.ErrEventNotFound, "event %s", uuid.Nil),
			expectCode: http.StatusNotFound,
			expectMsg:  "Event not found",
		},
	}
	for _, tt := range tests {
		s.Run("error: "+tt.name, func() {
			s.assistant.EXPECT().TranslateBookingText(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, msg, "")
			httptest.AssertErrorResponse(s.T(), rec, tt.expectCode, tt.expectMsg)
		})
	}

	s.Run("error: missing field detail carries the field name", func() {
		s.assistant.EXPECT().TranslateBookingText(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &errs.MissingFieldError{Field: "customerName"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, msg, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "customerName is required")
		httptest.AssertErrorDetail(s.T(), body, map[string]any{"field": "customerName"})
	})
}

func (s *AssistantHandlerTestSuite) TestRecommend() {
	s.Run("success", func() {
		s.assistant.EXPECT().Recommend(gomock.Any(), "jazz on weekends").Return("Try the jazz festival").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/recommendations",
			map[string]string{"preferences": "jazz on weekends"}, "")

		var body resdto.RecommendationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Try the jazz festival", body.Recommendations)
	})

	s.Run("error: missing preferences returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/ai/recommendations",
			map[string]string{"message": "wrong key"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
