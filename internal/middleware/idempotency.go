package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const IdempotencyHeader = "X-Idempotency-Key"

// Idempotency suppresses duplicate submissions that carry the same
// idempotency key within the window. The donate form generates a fresh key
// per submit attempt, so only accidental double-fires of the same attempt
// (rapid re-clicks, browser retries) are caught. Requests without a key pass
// through untouched. State is per-process.
func Idempotency(window time.Duration) func(http.Handler) http.Handler {
	var mu sync.Mutex
	seen := make(map[string]time.Time)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			mu.Lock()
			if expiry, ok := seen[key]; ok && now.Before(expiry) {
				mu.Unlock()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Duplicate submission",
				})
				return
			}
			seen[key] = now.Add(window)
			for k, expiry := range seen {
				if now.After(expiry) {
					delete(seen, k)
				}
			}
			mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
