package api

import (
	"net/http"

	"ticket-booking/internal/domain/booking"
	reqdto "ticket-booking/internal/handler/dto/request"
	resdto "ticket-booking/internal/handler/dto/response"
	"ticket-booking/internal/handler/httperr"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve seats for an event and record a confirmed booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	details, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/reference/"+details.Booking.Reference().String())
	c.JSON(http.StatusCreated, resdto.FromBookingDetails(details, resdto.MessageBookingConfirmed))
}

// @Summary Get booking
// @Description Look up a booking by its reference
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/reference/{reference} [get]
func (h *BookingHandler) GetByReference(c *gin.Context) {
	ref, ok := h.reference(c)
	if !ok {
		return
	}
	details, err := h.q.GetByReference(c.Request.Context(), ref)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetails(details, ""))
}

// @Summary List bookings by email
// @Description List every booking made with an email address, newest first
// @Tags bookings
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings/email/{email} [get]
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	list, err := h.q.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking and return its seats
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/reference/{reference} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	ref, ok := h.reference(c)
	if !ok {
		return
	}
	details, err := h.cmds.CancelBooking(c.Request.Context(), ref)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetails(details, resdto.MessageBookingCancelled))
}

func (h *BookingHandler) reference(c *gin.Context) (booking.Reference, bool) {
	raw := c.Param("reference")
	ref, ok := booking.ParseReference(raw)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.Validationf("malformed booking reference %q", raw), "Invalid booking reference", nil)
		return "", false
	}
	return ref, true
}
