package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"canoesite/internal/domain"
	"canoesite/internal/infra"
)

// App carries the handler dependencies: the donation store behind its
// interface and the service logger. Now is injectable so tests can pin the
// server-assigned timestamp.
type App struct {
	Store domain.DonationStore
	Log   infra.Logger
	Now   func() time.Time
}

func NewApp(store domain.DonationStore, log infra.Logger) *App {
	return &App{Store: store, Log: log, Now: time.Now}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the uniform failure envelope. The underlying error text is
// included for diagnostics when present.
func (a *App) fail(w http.ResponseWriter, code int, message string, err error) {
	body := map[string]any{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	a.json(w, code, body)
}

// MethodNotAllowed answers any request whose method does not match the route,
// before any body parsing.
func (a *App) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.fail(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
