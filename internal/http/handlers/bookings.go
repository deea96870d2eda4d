package handlers

import (
	"net/http"
	"strconv"

	intconfig "backend/internal/config"
	"backend/internal/http/middleware"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

var strictBooking bool

// SetStrictBooking toggles the compare-and-set booking guard; called once
// from the router based on STRICT_BOOKING.
func SetStrictBooking(v bool) { strictBooking = v }

// POST /api/bookings/:playgroundId
//
// Creates the payment record and flips the playground to Occupied in one
// transaction. 404 when the playground is missing, 409 only in strict mode.
func CreateBooking(c *gin.Context) {
	playgroundID, err := strconv.ParseInt(c.Param("playgroundId"), 10, 64)
	if err != nil || playgroundID <= 0 {
		RespondError(c, http.StatusBadRequest, "playgroundId tidak valid", err)
		return
	}

	var in services.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	in.UserID = middleware.GetUserID(c)

	svc := services.BookingService{
		Cache:     intconfig.Redis,
		Strict:    strictBooking,
		RequestID: middleware.GetRequestID(c),
	}

	result, err := svc.Book(c.Request.Context(), playgroundID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
