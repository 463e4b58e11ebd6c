package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-form-relay/config"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/metrics"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const driverName = "google"

// Values are parsed as if typed into the UI, so "42" becomes a number.
const valueInputUserEntered = "USER_ENTERED"

type sheetStore struct {
	svc *sheets.Service
}

// NewSheetStore builds a Google Sheets backed store from the service account in cfg.
// Without GOOGLE_CREDENTIALS the client falls back to application default credentials.
func NewSheetStore(ctx context.Context, cfg *config.Config) (domain.SheetStore, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentials != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.GoogleCredentials), sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("invalid GOOGLE_CREDENTIALS: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	} else {
		opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))
	}
	if cfg.SheetsEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.SheetsEndpoint))
	}
	return NewSheetStoreWithOptions(ctx, opts...)
}

// NewSheetStoreWithOptions builds the store from raw client options.
func NewSheetStoreWithOptions(ctx context.Context, opts ...option.ClientOption) (domain.SheetStore, error) {
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &sheetStore{svc: svc}, nil
}

func (s *sheetStore) Append(ctx context.Context, storeID, rangeHint string, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(storeID, rangeHint, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		se := storeErr("append", err)
		metrics.ObserveStoreCall(driverName, "append", string(se.Kind))
		return se
	}
	metrics.ObserveStoreCall(driverName, "append", "ok")
	return nil
}

func (s *sheetStore) BatchRead(ctx context.Context, storeID string, refs []domain.CellRef) ([]domain.CellValue, error) {
	ranges := make([]string, len(refs))
	for i, ref := range refs {
		ranges[i] = string(ref)
	}

	resp, err := s.svc.Spreadsheets.Values.
		BatchGet(storeID).
		Ranges(ranges...).
		Context(ctx).
		Do()
	if err != nil {
		se := storeErr("batch_read", err)
		metrics.ObserveStoreCall(driverName, "batch_read", string(se.Kind))
		return nil, se
	}
	metrics.ObserveStoreCall(driverName, "batch_read", "ok")

	// Value ranges come back in request order; cells without data carry no values.
	out := make([]domain.CellValue, len(refs))
	for i := range out {
		if i >= len(resp.ValueRanges) {
			break
		}
		vr := resp.ValueRanges[i]
		if vr == nil || len(vr.Values) == 0 || len(vr.Values[0]) == 0 || vr.Values[0][0] == nil {
			continue
		}
		out[i] = domain.CellValue{Value: fmt.Sprint(vr.Values[0][0]), Present: true}
	}
	return out, nil
}

// storeErr maps API errors: a bad request or unknown spreadsheet is an invalid range,
// anything else means the service could not be used.
func storeErr(op string, err error) *domain.StoreError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusBadRequest, http.StatusNotFound:
			return domain.NewStoreError(op, domain.StoreInvalidRange, err)
		}
	}
	return domain.NewStoreError(op, domain.StoreUnreachable, err)
}
