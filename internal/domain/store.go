package domain

import (
	"context"
	"strings"
)

// CellRef addresses a single cell, e.g. "Sheet1!A1"
type CellRef string

// Split returns the sheet and cell parts. A ref without "!" has an empty sheet.
func (r CellRef) Split() (sheet, cell string) {
	if s, c, ok := strings.Cut(string(r), "!"); ok {
		return strings.Trim(s, "'"), c
	}
	return "", string(r)
}

// CellValue is the raw content of one cell. Present is false for cells with no data.
type CellValue struct {
	Value   string
	Present bool
}

// SheetStore is the spreadsheet-backed store used for submissions and subscribers.
type SheetStore interface {
	// Append adds one row after the table found at rangeHint, using "entered as typed" semantics.
	Append(ctx context.Context, storeID, rangeHint string, row []string) error
	// BatchRead returns one value per ref, in request order.
	BatchRead(ctx context.Context, storeID string, refs []CellRef) ([]CellValue, error)
}
