package api

import (
	"net/http"

	reqdto "ticket-booking/internal/handler/dto/request"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/usecase/assistant"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistant assistant.Assistant
}

func NewAssistantHandler(a assistant.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: a}
}

// @Summary Chat about events
// @Description Answer a free-text question about the catalog. Upstream failures degrade to an apology, never an error status.
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.ChatRequest true "Question"
// @Success 200 {object} resdto.ChatResponse
// @Failure 400 {object} httperr.Response
// @Router /api/ai/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req reqdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	answer := h.assistant.TranslateSearchQuery(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, resdto.ChatResponse{Response: answer})
}

// @Summary Book from free text
// @Description Extract customer name, email and ticket count from a message and book the event
// @Tags assistant
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param request body reqdto.BookWithTextRequest true "Booking message"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/ai/book/{eventId} [post]
func (h *AssistantHandler) BookWithText(c *gin.Context) {
	id, ok := pathEventID(c, "eventId")
	if !ok {
		return
	}
	var req reqdto.BookWithTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	details, err := h.assistant.TranslateBookingText(c.Request.Context(), req.Message, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingDetails(details, resdto.MessageBookingConfirmed))
}

// @Summary Recommend events
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body reqdto.RecommendationRequest true "Preferences"
// @Success 200 {object} resdto.RecommendationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/ai/recommendations [post]
func (h *AssistantHandler) Recommend(c *gin.Context) {
	var req reqdto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	answer := h.assistant.Recommend(c.Request.Context(), req.Preferences)
	c.JSON(http.StatusOK, resdto.RecommendationResponse{Recommendations: answer})
}
