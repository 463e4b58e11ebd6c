package gsheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"go-form-relay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// fakeSheetsAPI serves the two Sheets v4 endpoints used by the store.
type fakeSheetsAPI struct {
	mu          sync.Mutex
	appends     []appendCall
	batchGets   [][]string
	cells       map[string]string
	failStatus  int
	failMessage string
	delay       time.Duration
}

type appendCall struct {
	path             string
	valueInputOption string
	values           [][]interface{}
}

func (f *fakeSheetsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-r.Context().Done():
			return
		}
	}
	if f.failStatus != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.failStatus)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": f.failStatus, "message": f.failMessage},
		})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
		var body struct {
			Values [][]interface{} `json:"values"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.appends = append(f.appends, appendCall{
			path:             r.URL.Path,
			valueInputOption: r.URL.Query().Get("valueInputOption"),
			values:           body.Values,
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-1"}`))

	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/values:batchGet"):
		ranges := r.URL.Query()["ranges"]
		f.batchGets = append(f.batchGets, ranges)
		var valueRanges []map[string]interface{}
		for _, rg := range ranges {
			vr := map[string]interface{}{"range": rg, "majorDimension": "ROWS"}
			if v, ok := f.cells[rg]; ok {
				vr["values"] = [][]string{{v}}
			}
			valueRanges = append(valueRanges, vr)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"spreadsheetId": "sheet-1", "valueRanges": valueRanges})

	default:
		http.NotFound(w, r)
	}
}

func newTestStore(t *testing.T, api *fakeSheetsAPI) domain.SheetStore {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	store, err := NewSheetStoreWithOptions(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return store
}

func TestAppendUsesUserEnteredValues(t *testing.T) {
	api := &fakeSheetsAPI{}
	store := newTestStore(t, api)

	err := store.Append(context.Background(), "sheet-1", "Sheet1!B2", []string{"Ada", "", "42"})
	require.NoError(t, err)

	require.Len(t, api.appends, 1)
	call := api.appends[0]
	assert.Contains(t, call.path, "/v4/spreadsheets/sheet-1/values/")
	assert.Equal(t, "USER_ENTERED", call.valueInputOption)
	assert.Equal(t, [][]interface{}{{"Ada", "", "42"}}, call.values)
}

func TestBatchReadPreservesOrderAndAbsence(t *testing.T) {
	api := &fakeSheetsAPI{cells: map[string]string{
		"Sheet1!A1": "a@x.com",
		"Sheet1!A3": "not-an-email",
	}}
	store := newTestStore(t, api)

	refs := []domain.CellRef{"Sheet1!A1", "Sheet1!A2", "Sheet1!A3"}
	got, err := store.BatchRead(context.Background(), "sheet-1", refs)
	require.NoError(t, err)

	assert.Equal(t, []domain.CellValue{
		{Value: "a@x.com", Present: true},
		{},
		{Value: "not-an-email", Present: true},
	}, got)
	assert.Equal(t, [][]string{{"Sheet1!A1", "Sheet1!A2", "Sheet1!A3"}}, api.batchGets)
}

func TestBadRangeMapsToInvalidRange(t *testing.T) {
	api := &fakeSheetsAPI{failStatus: http.StatusBadRequest, failMessage: "Unable to parse range: Nope!A1"}
	store := newTestStore(t, api)

	_, err := store.BatchRead(context.Background(), "sheet-1", []domain.CellRef{"Nope!A1"})

	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, domain.StoreInvalidRange, se.Kind)
	assert.Equal(t, "batch_read", se.Op)
}

func TestServerErrorMapsToUnreachable(t *testing.T) {
	api := &fakeSheetsAPI{failStatus: http.StatusServiceUnavailable, failMessage: "backend unavailable"}
	store := newTestStore(t, api)

	err := store.Append(context.Background(), "sheet-1", "Sheet1!B2", []string{"x"})

	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, domain.StoreUnreachable, se.Kind)
	assert.Equal(t, "append", se.Op)
}

func TestDeadlineMapsToTimeout(t *testing.T) {
	api := &fakeSheetsAPI{delay: time.Second}
	store := newTestStore(t, api)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := store.Append(ctx, "sheet-1", "Sheet1!B2", []string{"x"})

	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, domain.StoreTimeout, se.Kind)
}

func TestClosedServerMapsToUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	client := srv.Client()
	srv.Close()

	store, err := NewSheetStoreWithOptions(context.Background(),
		option.WithEndpoint(url+"/"),
		option.WithHTTPClient(client),
	)
	require.NoError(t, err)

	_, err = store.BatchRead(context.Background(), "sheet-1", []domain.CellRef{"Sheet1!A1"})
	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, domain.StoreUnreachable, se.Kind)
}
