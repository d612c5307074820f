package domain

import "errors"

var (
	ErrMissingSpreadsheetID = errors.New("spreadsheet id is required")
	ErrStoreFailure         = errors.New("store failure")
)
