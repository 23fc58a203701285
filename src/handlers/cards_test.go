package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/techmagnet/seacheck/src/cards"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories/mock"
	"github.com/techmagnet/seacheck/src/services"
)

func newCardRouter(repo *mock.GiftCardRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCardHandler(
		services.NewGiftCardServiceWithRepo(repo),
		services.NewBalanceChecker(0, 0),
	)

	router := gin.New()
	router.POST("/detect-card-type", handler.HandleDetectCardType)
	router.POST("/check-balance", handler.HandleCheckBalance)
	return router
}

func TestHandleDetectCardType(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		router := newCardRouter(mock.NewGiftCardRepository())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/detect-card-type", map[string]string{}))

		assertStatusCode(t, w, http.StatusBadRequest)
		assertJSONError(t, w, "Code is required")
	})

	t.Run("detects visa", func(t *testing.T) {
		router := newCardRouter(mock.NewGiftCardRepository())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/detect-card-type", map[string]string{
			"code": "4111111111111111",
		}))

		assertStatusCode(t, w, http.StatusOK)
		response := parseJSONBody(t, w)
		if response["detectedType"] != models.CardTypeVisa {
			t.Errorf("expected detectedType Visa, got %v", response["detectedType"])
		}
	})

	t.Run("unknown code falls back to Other", func(t *testing.T) {
		router := newCardRouter(mock.NewGiftCardRepository())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/detect-card-type", map[string]string{
			"code": "???",
		}))

		assertStatusCode(t, w, http.StatusOK)
		response := parseJSONBody(t, w)
		if response["detectedType"] != models.CardTypeOther {
			t.Errorf("expected detectedType Other, got %v", response["detectedType"])
		}
	})
}

func TestHandleCheckBalance(t *testing.T) {
	t.Run("missing card code", func(t *testing.T) {
		router := newCardRouter(mock.NewGiftCardRepository())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/check-balance", map[string]string{
			"cardName": "No code",
		}))

		assertStatusCode(t, w, http.StatusBadRequest)
		assertJSONError(t, w, "Card code is required")
	})

	t.Run("checks and persists", func(t *testing.T) {
		repo := mock.NewGiftCardRepository()
		router := newCardRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/check-balance", map[string]string{
			"cardCode": "4111111111111111",
			"cardType": models.CardTypeVisa,
			"cardName": "Test Visa",
		}))

		assertStatusCode(t, w, http.StatusOK)
		response := parseJSONBody(t, w)

		want := cards.ComputeBalance(models.CardTypeVisa, "4111111111111111")
		if response["balance"] != want {
			t.Errorf("expected balance %v, got %v", want, response["balance"])
		}
		if response["cardType"] != models.CardTypeVisa {
			t.Errorf("expected cardType Visa, got %v", response["cardType"])
		}
		if response["cardName"] != "Test Visa" {
			t.Errorf("expected cardName to be echoed, got %v", response["cardName"])
		}
		if response["message"] != "Real-time balance check completed successfully" {
			t.Errorf("unexpected message %v", response["message"])
		}

		if len(repo.Calls["Insert"]) != 1 {
			t.Fatalf("expected 1 persisted record, got %d", len(repo.Calls["Insert"]))
		}
		record := repo.Calls["Insert"][0].(*models.GiftCardRecord)
		if record.FullCode != "4111111111111111" {
			t.Errorf("expected verbatim code stored, got %s", record.FullCode)
		}
		if record.Balance != want {
			t.Errorf("expected stored balance %v, got %v", want, record.Balance)
		}
	})

	t.Run("re-detects type when Other is submitted", func(t *testing.T) {
		repo := mock.NewGiftCardRepository()
		router := newCardRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/check-balance", map[string]string{
			"cardCode": "TEST123456789012",
			"cardType": models.CardTypeOther,
		}))

		assertStatusCode(t, w, http.StatusOK)
		response := parseJSONBody(t, w)
		if response["cardType"] != models.CardTypeITunes {
			t.Errorf("expected re-detected type iTunes, got %v", response["cardType"])
		}
		if response["cardName"] != models.DefaultCardName {
			t.Errorf("expected default card name, got %v", response["cardName"])
		}
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		repo := mock.NewGiftCardRepository()
		repo.InsertFunc = func(ctx context.Context, record *models.GiftCardRecord) error {
			return context.DeadlineExceeded
		}
		router := newCardRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/check-balance", map[string]string{
			"cardCode": "4111111111111111",
		}))

		assertStatusCode(t, w, http.StatusInternalServerError)
		assertJSONError(t, w, "Real-time balance check failed")
	})
}
