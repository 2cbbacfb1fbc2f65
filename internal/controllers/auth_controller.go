package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"transconnect/internal/ledger"
	"transconnect/internal/middleware"
)

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a rider account and hands back a token so the
// client can start booking right away.
func (h *Handler) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acct, err := h.Ledger.Register(input.Name, input.Email, input.Password)
	if err != nil {
		logrus.WithError(err).Warn("Signup: registration rejected")
		respondLedgerError(c, err)
		return
	}

	token, err := middleware.GenerateToken(acct.Email, acct.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	logrus.WithField("email", acct.Email).Info("Signup: account created")
	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"account": acct,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acct, err := h.Ledger.Authenticate(body.Email, body.Password)
	if err != nil {
		// Unknown account and wrong password collapse to one message so
		// login failures do not reveal which emails are registered.
		if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrInvalidCredential) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
			return
		}
		respondLedgerError(c, err)
		return
	}

	token, err := middleware.GenerateToken(acct.Email, acct.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"account": acct,
	})
}
