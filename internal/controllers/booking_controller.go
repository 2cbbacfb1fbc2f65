package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transconnect/internal/middleware"
	"transconnect/internal/models"
)

type bookInput struct {
	RouteName string `json:"route_name" binding:"required"`
	Date      string `json:"date"`
}

// BookSeat reserves one seat on the named route for the authenticated
// rider. Routes are offered to clients by display name, so booking
// resolves by name too. The date stamp defaults to the server's
// current date when the client omits it.
func (h *Handler) BookSeat(c *gin.Context) {
	var input bookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := middleware.AccountEmail(c)
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}

	booking, err := h.Ledger.BookSeat(email, input.RouteName, input.Date)
	if err != nil {
		logrus.WithError(err).WithField("email", email).Warn("BookSeat: booking failed")
		respondLedgerError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"email": email,
		"route": booking.RouteName,
	}).Info("BookSeat: booking confirmed")
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// MyBookings lists the authenticated rider's bookings, oldest first.
func (h *Handler) MyBookings(c *gin.Context) {
	email := middleware.AccountEmail(c)

	bookings, err := h.Ledger.MyBookings(email)
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
