package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"canoesite/internal/domain"
	"canoesite/internal/infra"
)

// fakeSheetsAPI emulates the small slice of the Sheets REST API the store
// touches, with enough state to verify idempotence.
type fakeSheetsAPI struct {
	sheetID       int64
	hasTab        bool
	headerWritten bool
	appended      [][]any

	addSheetCalls int
	updateCalls   int
	formatCalls   int

	failAll bool
}

func (f *fakeSheetsAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.failAll {
			http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusInternalServerError)
			return
		}

		path := r.URL.Path
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":batchUpdate"):
			f.handleBatchUpdate(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(path, ":append"):
			var body struct {
				Values [][]any `json:"values"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.appended = append(f.appended, body.Values...)
			writeJSON(w, map[string]any{})
		case r.Method == http.MethodPut && strings.Contains(path, "/values/"):
			f.updateCalls++
			f.headerWritten = true
			writeJSON(w, map[string]any{})
		case r.Method == http.MethodGet && strings.Contains(path, "/values/"):
			resp := map[string]any{}
			if f.headerWritten {
				resp["values"] = [][]string{domain.Headers}
			}
			writeJSON(w, resp)
		case r.Method == http.MethodGet:
			resp := map[string]any{}
			if f.hasTab {
				resp["sheets"] = []map[string]any{
					{"properties": map[string]any{"sheetId": f.sheetID, "title": domain.SheetName}},
				}
			}
			writeJSON(w, resp)
		default:
			http.NotFound(w, r)
		}
	}
}

func (f *fakeSheetsAPI) handleBatchUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Requests []struct {
			AddSheet   json.RawMessage `json:"addSheet"`
			RepeatCell json.RawMessage `json:"repeatCell"`
		} `json:"requests"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	for _, req := range body.Requests {
		if req.AddSheet != nil {
			f.addSheetCalls++
			f.hasTab = true
			writeJSON(w, map[string]any{
				"replies": []map[string]any{
					{"addSheet": map[string]any{"properties": map[string]any{"sheetId": f.sheetID, "title": domain.SheetName}}},
				},
			})
			return
		}
		if req.RepeatCell != nil {
			f.formatCalls++
		}
	}
	writeJSON(w, map[string]any{"replies": []map[string]any{}})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestStore(t *testing.T, api *fakeSheetsAPI, spreadsheetID string) *Store {
	t.Helper()
	ts := httptest.NewServer(api.handler())
	t.Cleanup(ts.Close)

	cfg := &infra.Config{SpreadsheetID: spreadsheetID}
	store, err := NewStore(context.Background(), cfg,
		option.WithEndpoint(ts.URL+"/"),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	return store
}

func TestEnsureInitializedCreatesTabAndHeaders(t *testing.T) {
	api := &fakeSheetsAPI{sheetID: 42}
	store := newTestStore(t, api, "doc-1")

	sheetID, err := store.EnsureInitialized(context.Background())
	if err != nil {
		t.Fatalf("EnsureInitialized returned error: %v", err)
	}
	if sheetID != 42 {
		t.Fatalf("sheet id mismatch: got %d want 42", sheetID)
	}
	if api.addSheetCalls != 1 {
		t.Fatalf("addSheet calls: got %d want 1", api.addSheetCalls)
	}
	if api.updateCalls != 1 {
		t.Fatalf("header update calls: got %d want 1", api.updateCalls)
	}
	if api.formatCalls != 1 {
		t.Fatalf("format calls: got %d want 1", api.formatCalls)
	}
}

func TestEnsureInitializedIsIdempotent(t *testing.T) {
	api := &fakeSheetsAPI{sheetID: 7}
	store := newTestStore(t, api, "doc-1")

	for i := 0; i < 2; i++ {
		if _, err := store.EnsureInitialized(context.Background()); err != nil {
			t.Fatalf("EnsureInitialized call %d returned error: %v", i+1, err)
		}
	}
	if api.addSheetCalls != 1 {
		t.Fatalf("addSheet calls after second run: got %d want 1", api.addSheetCalls)
	}
	if api.updateCalls != 1 {
		t.Fatalf("header update calls after second run: got %d want 1", api.updateCalls)
	}
}

func TestEnsureInitializedSkipsExistingHeaders(t *testing.T) {
	api := &fakeSheetsAPI{sheetID: 9, hasTab: true, headerWritten: true}
	store := newTestStore(t, api, "doc-1")

	sheetID, err := store.EnsureInitialized(context.Background())
	if err != nil {
		t.Fatalf("EnsureInitialized returned error: %v", err)
	}
	if sheetID != 9 {
		t.Fatalf("sheet id mismatch: got %d want 9", sheetID)
	}
	if api.addSheetCalls != 0 || api.updateCalls != 0 || api.formatCalls != 0 {
		t.Fatalf("expected no mutations, got addSheet=%d update=%d format=%d",
			api.addSheetCalls, api.updateCalls, api.formatCalls)
	}
}

func TestAppendWritesOrderedRow(t *testing.T) {
	api := &fakeSheetsAPI{sheetID: 1, hasTab: true, headerWritten: true}
	store := newTestStore(t, api, "doc-1")

	donation := &domain.Donation{
		Timestamp: "2026-09-01T12:00:00Z",
		Name:      "A",
		Email:     "a@b.com",
		Phone:     "5551234567",
		Materials: "wood",
		Quantity:  "5",
		Status:    domain.StatusPending,
	}
	if err := store.Append(context.Background(), donation); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if len(api.appended) != 1 {
		t.Fatalf("appended rows: got %d want 1", len(api.appended))
	}
	row := api.appended[0]
	if len(row) != len(domain.Headers) {
		t.Fatalf("row width: got %d want %d", len(row), len(domain.Headers))
	}
	if row[1] != "A" || row[2] != "a@b.com" || row[9] != domain.StatusPending {
		t.Fatalf("row content mismatch: %#v", row)
	}
	// Optional fields stay as empty cells, never shift columns.
	if row[4] != "" || row[7] != "" || row[8] != "" {
		t.Fatalf("optional cells should be empty: %#v", row)
	}
}

func TestMissingSpreadsheetID(t *testing.T) {
	api := &fakeSheetsAPI{}
	store := newTestStore(t, api, "")

	if _, err := store.EnsureInitialized(context.Background()); !errors.Is(err, domain.ErrMissingSpreadsheetID) {
		t.Fatalf("EnsureInitialized error = %v, want ErrMissingSpreadsheetID", err)
	}
	if err := store.Append(context.Background(), &domain.Donation{}); !errors.Is(err, domain.ErrMissingSpreadsheetID) {
		t.Fatalf("Append error = %v, want ErrMissingSpreadsheetID", err)
	}
}

func TestAppendSurfacesAPIError(t *testing.T) {
	api := &fakeSheetsAPI{failAll: true}
	store := newTestStore(t, api, "doc-1")

	err := store.Append(context.Background(), &domain.Donation{Status: domain.StatusPending})
	if err == nil {
		t.Fatalf("Append expected error from failing API")
	}
	if !strings.Contains(err.Error(), "append donation row") {
		t.Fatalf("error should name the failed operation, got %v", err)
	}
}
