package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/repositories/mock"
	"github.com/techmagnet/seacheck/src/services"
)

func newHealthRouter(repo *mock.GiftCardRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(database.NewUnavailable(), services.NewGiftCardServiceWithRepo(repo))

	router := gin.New()
	router.GET("/health", handler.HandleHealth)
	router.GET("/ready", handler.HandleReady)
	return router
}

func TestHandleHealth(t *testing.T) {
	t.Run("reports status and record count", func(t *testing.T) {
		repo := mock.NewGiftCardRepository()
		repo.CountFunc = func(ctx context.Context) (int, error) {
			return 7, nil
		}
		router := newHealthRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assertStatusCode(t, w, http.StatusOK)
		response := parseJSONBody(t, w)
		if response["status"] != "OK" {
			t.Errorf("expected status OK, got %v", response["status"])
		}
		if response["database"] != "PostgreSQL" {
			t.Errorf("expected database PostgreSQL, got %v", response["database"])
		}
		if response["records"] != float64(7) {
			t.Errorf("expected 7 records, got %v", response["records"])
		}
		if response["version"] != Version {
			t.Errorf("expected version %s, got %v", Version, response["version"])
		}
		featureList, ok := response["features"].([]interface{})
		if !ok || len(featureList) != len(features) {
			t.Errorf("unexpected features %v", response["features"])
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo := mock.NewGiftCardRepository()
		repo.CountFunc = func(ctx context.Context) (int, error) {
			return 0, errors.New("connection refused")
		}
		router := newHealthRouter(repo)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assertStatusCode(t, w, http.StatusInternalServerError)
		response := parseJSONBody(t, w)
		if response["status"] != "Error" {
			t.Errorf("expected status Error, got %v", response["status"])
		}
		assertJSONError(t, w, "database unavailable")
	})
}

func TestHandleReady(t *testing.T) {
	// the unavailable store fails its health probe, so readiness is 503
	router := newHealthRouter(mock.NewGiftCardRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assertStatusCode(t, w, http.StatusServiceUnavailable)
	if parseJSONBody(t, w)["ready"] != false {
		t.Error("expected ready false")
	}
}
