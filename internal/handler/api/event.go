package api

import (
	"context"
	"net/http"
	"strings"

	"ticket-booking/internal/domain/event"
	reqdto "ticket-booking/internal/handler/dto/request"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/handler/httperr"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	cmds  commands.EventCommands
	q     queries.EventQueries
	audit queries.AuditQueries
}

func NewEventHandler(cmds commands.EventCommands, q queries.EventQueries, audit queries.AuditQueries) *EventHandler {
	return &EventHandler{cmds: cmds, q: q, audit: audit}
}

// @Summary List events
// @Description List every event ordered by date
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	h.respondList(c, h.q.ListAll)
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathEventID(c, "id")
	if !ok {
		return
	}
	ev, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvent(ev))
}

// @Summary Search events by name
// @Tags events
// @Produce json
// @Param name query string true "Case-insensitive name fragment"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Router /api/events/search [get]
func (h *EventHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Validationf("name query parameter is required"),
			"name query parameter is required", nil)
		return
	}
	h.respondList(c, func(ctx context.Context) ([]*event.Event, error) {
		return h.q.SearchByName(ctx, name)
	})
}

// @Summary List events by category
// @Tags events
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} resdto.EventResponse
// @Router /api/events/category/{category} [get]
func (h *EventHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	h.respondList(c, func(ctx context.Context) ([]*event.Event, error) {
		return h.q.ListByCategory(ctx, category)
	})
}

// @Summary Search events by venue
// @Tags events
// @Produce json
// @Param venue path string true "Case-insensitive venue fragment"
// @Success 200 {array} resdto.EventResponse
// @Router /api/events/venue/{venue} [get]
func (h *EventHandler) ByVenue(c *gin.Context) {
	venue := c.Param("venue")
	h.respondList(c, func(ctx context.Context) ([]*event.Event, error) {
		return h.q.SearchByVenue(ctx, venue)
	})
}

// @Summary List upcoming events
// @Description Events in the next three months
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /api/events/upcoming [get]
func (h *EventHandler) Upcoming(c *gin.Context) {
	h.respondList(c, h.q.ListUpcoming)
}

// @Summary List events with seats left
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /api/events/available [get]
func (h *EventHandler) Available(c *gin.Context) {
	h.respondList(c, h.q.ListAvailable)
}

// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	ev, err := h.cmds.CreateEvent(c.Request.Context(), req.ToParams())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/events/"+ev.ID().String())
	c.JSON(http.StatusCreated, resdto.FromEvent(ev))
}

// @Summary Update event details
// @Description Descriptive details only; capacity and seat counters are kept
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathEventID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	ev, err := h.cmds.UpdateEvent(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEvent(ev))
}

// @Summary Audit seat inventory
// @Description Compare the seat counter with confirmed bookings
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.InventoryAuditResponse
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/audit [get]
func (h *EventHandler) Audit(c *gin.Context) {
	id, ok := pathEventID(c, "id")
	if !ok {
		return
	}
	audit, err := h.audit.AuditEvent(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryAudit(audit))
}

func (h *EventHandler) respondList(c *gin.Context, list func(ctx context.Context) ([]*event.Event, error)) {
	evs, err := list(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventList(evs))
}

func pathEventID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return uuid.Nil, false
	}
	return id, true
}
