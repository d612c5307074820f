// Package sheets implements the donation store on top of the Google Sheets
// API, authenticated with a service-account JWT.
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"canoesite/internal/domain"
	"canoesite/internal/infra"
)

const (
	scopeSpreadsheets = "https://www.googleapis.com/auth/spreadsheets"
	tokenURL          = "https://oauth2.googleapis.com/token"
)

// Store appends donation rows to a fixed spreadsheet document.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewStore builds a Sheets-backed donation store. Extra client options are
// appended after the credential option; tests use them to point the client at
// a local server.
func NewStore(ctx context.Context, cfg *infra.Config, extra ...option.ClientOption) (*Store, error) {
	opts := []option.ClientOption{credentialOption(ctx, cfg.Google)}
	opts = append(opts, extra...)

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Store{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// credentialOption turns the env-sourced bundle into an authenticated HTTP
// client. An incomplete bundle falls back to no authentication; the first API
// call then fails with the provider's own error, which the handlers surface
// as a store failure.
func credentialOption(ctx context.Context, creds infra.GoogleCredentials) option.ClientOption {
	if !creds.Complete() {
		return option.WithoutAuthentication()
	}
	conf := &jwt.Config{
		Email:        creds.ClientEmail,
		PrivateKey:   []byte(creds.PrivateKey),
		PrivateKeyID: creds.PrivateKeyID,
		Scopes:       []string{scopeSpreadsheets},
		TokenURL:     tokenURL,
	}
	return option.WithHTTPClient(conf.Client(ctx))
}

// EnsureInitialized makes sure the donation tab exists with its styled header
// row and returns the tab's sheet id. Safe to call any number of times.
func (s *Store) EnsureInitialized(ctx context.Context) (int64, error) {
	if s.spreadsheetID == "" {
		return 0, domain.ErrMissingSpreadsheetID
	}

	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("get spreadsheet: %w", err)
	}

	sheetID, found := findSheet(doc, domain.SheetName)
	if !found {
		sheetID, err = s.addSheet(ctx)
		if err != nil {
			return 0, err
		}
	}

	headerRange := fmt.Sprintf("%s!A1:J1", domain.SheetName)
	existing, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("read header row: %w", err)
	}
	if len(existing.Values) > 0 {
		return sheetID, nil
	}

	if err := s.writeHeaders(ctx, headerRange); err != nil {
		return 0, err
	}
	if err := s.formatHeaders(ctx, sheetID); err != nil {
		return 0, err
	}
	return sheetID, nil
}

// Append writes one donation after the last existing row.
func (s *Store) Append(ctx context.Context, donation *domain.Donation) error {
	if s.spreadsheetID == "" {
		return domain.ErrMissingSpreadsheetID
	}

	vr := &gsheets.ValueRange{Values: [][]any{toCells(donation.Row())}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, domain.SheetName, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append donation row: %w", err)
	}
	return nil
}

func (s *Store) addSheet(ctx context.Context) (int64, error) {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: domain.SheetName},
			},
		}},
	}
	resp, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("create donation sheet: %w", err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, fmt.Errorf("create donation sheet: malformed reply")
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

func (s *Store) writeHeaders(ctx context.Context, headerRange string) error {
	vr := &gsheets.ValueRange{Values: [][]any{toCells(domain.Headers)}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, headerRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

// formatHeaders applies the header style: bold white text on dark blue, first
// row frozen.
func (s *Store) formatHeaders(ctx context.Context, sheetID int64) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				RepeatCell: &gsheets.RepeatCellRequest{
					Range: &gsheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   int64(len(domain.Headers)),
					},
					Cell: &gsheets.CellData{
						UserEnteredFormat: &gsheets.CellFormat{
							BackgroundColor: &gsheets.Color{Red: 0.0, Green: 0.27, Blue: 0.6},
							TextFormat: &gsheets.TextFormat{
								Bold:            true,
								ForegroundColor: &gsheets.Color{Red: 1.0, Green: 1.0, Blue: 1.0},
							},
						},
					},
					Fields: "userEnteredFormat(backgroundColor,textFormat)",
				},
			},
			{
				UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
					Properties: &gsheets.SheetProperties{
						SheetId:        sheetID,
						GridProperties: &gsheets.GridProperties{FrozenRowCount: 1},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
		},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("format header row: %w", err)
	}
	return nil
}

func findSheet(doc *gsheets.Spreadsheet, title string) (int64, bool) {
	for _, sheet := range doc.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, true
		}
	}
	return 0, false
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
