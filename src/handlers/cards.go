package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/techmagnet/seacheck/src/cards"
	"github.com/techmagnet/seacheck/src/middleware"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/services"
)

// CardHandler handles card-type detection and balance checks
type CardHandler struct {
	giftCardService *services.GiftCardService
	balanceChecker  *services.BalanceChecker
}

// NewCardHandler creates a new card handler
func NewCardHandler(giftCardService *services.GiftCardService, balanceChecker *services.BalanceChecker) *CardHandler {
	return &CardHandler{
		giftCardService: giftCardService,
		balanceChecker:  balanceChecker,
	}
}

// DetectCardTypeRequest represents the request body for card-type detection
type DetectCardTypeRequest struct {
	Code string `json:"code"`
}

// HandleDetectCardType classifies a code without checking or storing anything
func (ch *CardHandler) HandleDetectCardType(c *gin.Context) {
	var req DetectCardTypeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code is required"})
		return
	}
	if req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detectedType": cards.DetectCardType(req.Code),
	})
}

// CheckBalanceRequest represents the request body for a balance check
type CheckBalanceRequest struct {
	CardCode string `json:"cardCode"`
	CardType string `json:"cardType"`
	CardName string `json:"cardName"`
}

// CheckBalanceResponse represents a successful balance check
type CheckBalanceResponse struct {
	Balance  float64 `json:"balance"`
	CardType string  `json:"cardType"`
	CardName string  `json:"cardName"`
	Message  string  `json:"message"`
}

// HandleCheckBalance runs the simulated real-time lookup and persists the
// result. The submitted type is re-detected when absent or Other.
func (ch *CardHandler) HandleCheckBalance(c *gin.Context) {
	var req CheckBalanceRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card code is required"})
		return
	}
	if req.CardCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card code is required"})
		return
	}

	cardType := req.CardType
	if cardType == "" || cardType == models.CardTypeOther {
		cardType = cards.DetectCardType(req.CardCode)
	}

	balance, err := ch.balanceChecker.Check(c.Request.Context(), cardType, req.CardCode)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Real-time balance check failed"})
		return
	}

	record, err := ch.giftCardService.CreateRecord(c.Request.Context(), cardType, req.CardName, req.CardCode, balance)
	if err != nil {
		log.Error().Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("failed to persist balance check")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Real-time balance check failed"})
		return
	}

	log.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Str("card_type", cardType).
		Float64("balance", balance).
		Str("code", truncateCode(req.CardCode)).
		Msg("balance checked")

	c.JSON(http.StatusOK, CheckBalanceResponse{
		Balance:  balance,
		CardType: record.CardType,
		CardName: record.CardName,
		Message:  "Real-time balance check completed successfully",
	})
}

// truncateCode shortens a card code for log output; full codes never reach
// the logs.
func truncateCode(code string) string {
	if len(code) <= 8 {
		return code
	}
	return code[:8] + "..."
}
