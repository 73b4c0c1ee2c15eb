package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"roomgrid/models"
)

// stubAvailability returns fixed grids or a fixed error.
type stubAvailability struct {
	elite   *models.EliteGrid
	comfort *models.ComfortGrid
	err     error
}

func (s *stubAvailability) GetEliteGrid(ctx context.Context, clubID int, date string) (*models.EliteGrid, error) {
	return s.elite, s.err
}

func (s *stubAvailability) GetComfortGrid(ctx context.Context, clubID int, date string) (*models.ComfortGrid, error) {
	return s.comfort, s.err
}

func gridRouter(stub *stubAvailability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(stub)
	r.GET("/api/availability/elite", h.EliteGridHandler)
	r.GET("/api/availability/comfort", h.ComfortGridHandler)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestEliteGridHandler_OK(t *testing.T) {
	stub := &stubAvailability{elite: &models.EliteGrid{Date: "2025-01-20"}}
	w := doGet(t, gridRouter(stub), "/api/availability/elite?date=2025-01-20")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var grid models.EliteGrid
	if err := json.Unmarshal(w.Body.Bytes(), &grid); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if grid.Date != "2025-01-20" {
		t.Fatalf("unexpected grid date %q", grid.Date)
	}
}

func TestGridHandlers_MissingDate(t *testing.T) {
	stub := &stubAvailability{}
	r := gridRouter(stub)
	for _, url := range []string{"/api/availability/elite", "/api/availability/comfort"} {
		if w := doGet(t, r, url); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 without date, got %d", url, w.Code)
		}
	}
}

func TestGridHandlers_InvalidClubID(t *testing.T) {
	stub := &stubAvailability{}
	w := doGet(t, gridRouter(stub), "/api/availability/elite?date=2025-01-20&club_id=zero")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad club_id, got %d", w.Code)
	}
}

func TestGridHandlers_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid date", &models.InvalidDateError{Input: "x"}, http.StatusBadRequest},
		{"upstream", &models.UpstreamError{ServiceID: 3101, RoomID: 101, Status: 503}, http.StatusBadGateway},
		{"missing mapping", &models.MissingServiceMappingError{Path: "elite.weekday.day"}, http.StatusInternalServerError},
		{"config", &models.ConfigError{Detail: "no rooms configured"}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		stub := &stubAvailability{err: tc.err}
		w := doGet(t, gridRouter(stub), "/api/availability/comfort?date=2025-01-20")
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d (%s)", tc.name, tc.want, w.Code, w.Body.String())
		}
	}
}
