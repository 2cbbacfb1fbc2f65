package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transconnect/internal/models"
)

// AllBookings maps every rider to their bookings, for oversight.
func (h *Handler) AllBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Ledger.AllBookings()})
}

// ListRiders returns every registered rider account.
func (h *Handler) ListRiders(c *gin.Context) {
	riders := h.Ledger.Riders()
	if riders == nil {
		riders = []models.Account{}
	}
	c.JSON(http.StatusOK, gin.H{"data": riders})
}

// SetRouteSeats replaces a route's seat counter with an exact value.
func (h *Handler) SetRouteSeats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route id"})
		return
	}

	var input struct {
		Seats *int `json:"seats" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Ledger.SetSeats(uint(id), *input.Seats); err != nil {
		logrus.WithError(err).Warn("SetRouteSeats: override rejected")
		respondLedgerError(c, err)
		return
	}

	route, err := h.Ledger.Route(uint(id))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": toRouteResponse(route)})
}
