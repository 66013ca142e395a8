//go:build e2e

package assistant_test

import (
	"net/http"
	"strings"
	"testing"

	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/usecase/assistant"
	"ticket-booking/tests/common/builder"
	"ticket-booking/tests/common/httptest"
	"ticket-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AssistantE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAssistantE2ESuite(t *testing.T) {
	suite.Run(t, new(AssistantE2ETestSuite))
}

func (s *AssistantE2ETestSuite) createEvent(seats int) resdto.EventResponse {
	req := builder.NewEventBuilder().WithSeats(seats).BuildCreateRequestDTO()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/events", req, s.AdminToken())

	var ev resdto.EventResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &ev)
	return ev
}

func (s *AssistantE2ETestSuite) TestBookWithText() {
	ev := s.createEvent(20)
	url := "/api/ai/book/" + ev.ID.String()
	msg := map[string]string{"message": "Two tickets for Erin please, erin@example.com"}

	s.Run("extracted fields become a confirmed booking", func() {
		s.Oracle.Reply(func(_, _ string) (int, string) {
			return http.StatusOK, "```json\n{\"eventName\":null,\"numberOfTickets\":2,\"customerName\":\"Erin\",\"customerEmail\":\"erin@example.com\"}\n```"
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, msg, "")

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(2, res.NumberOfTickets)
		s.Equal("Erin", res.CustomerName)
		s.True(strings.HasPrefix(res.BookingReference, "BK-"))
	})

	s.Run("missing email is refused without touching inventory", func() {
		s.Oracle.Reply(func(_, _ string) (int, string) {
			return http.StatusOK, `{"numberOfTickets":2,"customerName":"Erin","customerEmail":null}`
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, msg, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "customerEmail is required")
	})

	s.Run("unreadable reply is a bad gateway", func() {
		s.Oracle.Reply(func(_, _ string) (int, string) {
			return http.StatusOK, "Sure! Erin wants two tickets."
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, msg, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unreadable")
	})

	s.Run("provider outage is service unavailable", func() {
		s.Oracle.Reply(func(_, _ string) (int, string) {
			return http.StatusInternalServerError, ""
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, msg, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

func (s *AssistantE2ETestSuite) TestChat() {
	s.createEvent(20)

	s.Run("classified search feeds the catalog listing to the answer", func() {
		var answerPayload string
		s.Oracle.Reply(func(system, user string) (int, string) {
			if strings.Contains(system, "searchType") {
				return http.StatusOK, `{"searchType":"CATEGORY","searchValue":"concert"}`
			}
			answerPayload = user
			return http.StatusOK, "The Legends play in 15 days."
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/ai/chat",
			map[string]string{"message": "any concerts?"}, "")

		var res resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("The Legends play in 15 days.", res.Response)
		s.Contains(answerPayload, "Rock Concert: The Legends")
		s.Equal(2, s.Oracle.Calls())
	})

	s.Run("outage degrades to the apology", func() {
		s.Oracle.Reply(func(_, _ string) (int, string) {
			return http.StatusServiceUnavailable, ""
		})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/ai/chat",
			map[string]string{"message": "any concerts?"}, "")

		var res resdto.ChatResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(assistant.FallbackMessage, res.Response)
	})
}
