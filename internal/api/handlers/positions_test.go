package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/api/handlers"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/service"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/testutil"
)

// populatedStore builds a store with one VOO ledger of three rows and wraps
// it in an upload service.
func populatedStore(t *testing.T) (*handlers.PositionHandler, string) {
	t.Helper()

	path := testutil.SetupTestStore(t)
	testutil.NewFund("VOO").Build(t, path)
	testutil.NewLedger("VOO").
		WithEntry("01-01-2023", 1000, 1000).
		WithEntry("01-02-2023", 0, 1010).
		WithEntry("01-03-2023", 0, 1050).
		Build(t, path)

	uploads, token := testutil.NewTestUploads(t, path)
	return handlers.NewPositionHandler(uploads, service.NewPositionService()), token
}

func TestPositionHandler_Position(t *testing.T) {
	t.Run("returns the rounded series", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/VOO", "VOO", token, "Total")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var rows []handlers.PositionRow
		if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}

		first, last := rows[0], rows[2]
		if first.Date != "2023-01-01" {
			t.Errorf("First row date = %s, want 2023-01-01", first.Date)
		}
		if first.DollarDelta != nil || first.PercDelta != nil {
			t.Errorf("First row deltas should be null, got %+v", first)
		}
		if first.Percentage == nil || *first.Percentage != 0.00 {
			t.Errorf("First row percentage = %v, want 0.00", first.Percentage)
		}
		if last.Percentage == nil || *last.Percentage != 5.00 {
			t.Errorf("Last row percentage = %v, want 5.00", last.Percentage)
		}
		if last.DollarDelta == nil || *last.DollarDelta != 40.00 {
			t.Errorf("Last row dollarDelta = %v, want 40.00", last.DollarDelta)
		}
		if last.CumCredit != 1000.00 {
			t.Errorf("Last row cumCredit = %v, want 1000.00", last.CumCredit)
		}
	})

	t.Run("defaults to the unfiltered series without a duration parameter", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/VOO", "VOO", token, "")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var rows []handlers.PositionRow
		if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("Expected the full series, got %d rows", len(rows))
		}
	})

	t.Run("returns an empty array for an empty ledger", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		testutil.NewFund("EMPTY").Build(t, path)
		uploads, token := testutil.NewTestUploads(t, path)
		handler := handlers.NewPositionHandler(uploads, service.NewPositionService())

		req := testutil.NewSeriesRequest("/api/position/EMPTY", "EMPTY", token, "1MO")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var rows []handlers.PositionRow
		if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("Expected empty array, got %d rows", len(rows))
		}
	})

	t.Run("returns 404 for an unknown fund", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/QQQ", "QQQ", token, "Total")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for an unknown duration token", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/VOO", "VOO", token, "6MO")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for a bad store token", func(t *testing.T) {
		handler, _ := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/VOO", "VOO", "not-a-token", "Total")
		rec := httptest.NewRecorder()
		handler.Position(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestPositionHandler_Summary(t *testing.T) {
	t.Run("summarizes the requested window", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/VOO/summary", "VOO", token, "Total")
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var summary service.WindowSummary
		if err := json.NewDecoder(rec.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if summary.Fund != "VOO" {
			t.Errorf("Fund = %s, want VOO", summary.Fund)
		}
		if summary.StartDate != "2023-01-01" || summary.EndDate != "2023-01-03" {
			t.Errorf("Window = %s..%s", summary.StartDate, summary.EndDate)
		}
		if summary.FinalValue != 1050.00 {
			t.Errorf("FinalValue = %v, want 1050.00", summary.FinalValue)
		}
		if summary.EarnedValue != 50.00 {
			t.Errorf("EarnedValue = %v, want 50.00", summary.EarnedValue)
		}
	})

	t.Run("reports the empty state with 200, not an error", func(t *testing.T) {
		path := testutil.SetupTestStore(t)
		testutil.NewFund("EMPTY").Build(t, path)
		uploads, token := testutil.NewTestUploads(t, path)
		handler := handlers.NewPositionHandler(uploads, service.NewPositionService())

		req := testutil.NewSeriesRequest("/api/position/EMPTY/summary", "EMPTY", token, "Total")
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body map[string]any
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body["fund"] != "EMPTY" || body["empty"] != true {
			t.Errorf("Unexpected empty-state body: %v", body)
		}
	})

	t.Run("returns 400 for an invalid fund code", func(t *testing.T) {
		handler, token := populatedStore(t)

		req := testutil.NewSeriesRequest("/api/position/1VOO/summary", "1VOO", token, "Total")
		rec := httptest.NewRecorder()
		handler.Summary(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}
