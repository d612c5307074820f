package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"canoesite/internal/domain"
	"canoesite/internal/validate"
)

// isoTimestamp matches the millisecond ISO-8601 format the sheet has always
// carried.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

type donationRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	Materials      string `json:"materials"`
	Quantity       string `json:"quantity"`
	EstimatedValue string `json:"estimatedValue"`
	Comments       string `json:"comments"`
}

func (req *donationRequest) fields() map[string]string {
	return map[string]string{
		"name":      req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"materials": req.Materials,
		"quantity":  req.Quantity,
	}
}

// SubmitDonation validates a material donation payload, stamps it server-side
// and appends it to the donation store.
func (a *App) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "Invalid request body - expected JSON", nil)
		return
	}

	if missing := validate.MissingFields(req.fields()); len(missing) > 0 {
		a.fail(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "), nil)
		return
	}
	if !validate.ValidEmail(req.Email) {
		a.fail(w, http.StatusBadRequest, "Invalid email format", nil)
		return
	}
	if !validate.ValidPhone(req.Phone) {
		a.fail(w, http.StatusBadRequest, "Phone number must have at least 10 digits", nil)
		return
	}

	donation := &domain.Donation{
		Timestamp:      a.Now().UTC().Format(isoTimestamp),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Materials:      req.Materials,
		Quantity:       req.Quantity,
		EstimatedValue: req.EstimatedValue,
		Comments:       req.Comments,
		Status:         domain.StatusPending,
	}

	if err := a.Store.Append(r.Context(), donation); err != nil {
		a.Log.Error().Err(err).Msg("donation append failed")
		a.fail(w, http.StatusInternalServerError, "Failed to submit material donation", err)
		return
	}

	a.Log.Info().Str("email", donation.Email).Msg("material donation recorded")
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Material donation submitted successfully",
		"data":    donation,
	})
}

// InitializeSheet idempotently prepares the donation sheet: tab, header row,
// header styling. Run once per deployment or on demand.
func (a *App) InitializeSheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := a.Store.EnsureInitialized(r.Context())
	if err != nil {
		a.Log.Error().Err(err).Msg("sheet initialization failed")
		a.fail(w, http.StatusInternalServerError, "Failed to initialize sheet", err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Material Donations sheet has been successfully initialized",
		"sheetId": sheetID,
	})
}
