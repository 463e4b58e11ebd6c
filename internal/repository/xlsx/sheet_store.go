package xlsx

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go-form-relay/internal/domain"
	"go-form-relay/pkg/metrics"

	"github.com/xuri/excelize/v2"
)

const driverName = "xlsx"

const defaultSheet = "Sheet1"

// sheetStore keeps each store as <dir>/<storeID>.xlsx. It is meant for local
// development; appends are serialized within this process only.
type sheetStore struct {
	dir string
	mu  sync.Mutex
}

// NewSheetStore creates the workbook directory if needed
func NewSheetStore(dir string) (domain.SheetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create xlsx store dir: %w", err)
	}
	return &sheetStore{dir: dir}, nil
}

func (s *sheetStore) Append(ctx context.Context, storeID, rangeHint string, row []string) error {
	err := s.append(ctx, storeID, rangeHint, row)
	observe("append", err)
	return err
}

func (s *sheetStore) append(ctx context.Context, storeID, rangeHint string, row []string) error {
	if err := ctx.Err(); err != nil {
		return domain.NewStoreError("append", domain.StoreUnreachable, err)
	}
	path, err := s.workbookPath(storeID)
	if err != nil {
		return domain.NewStoreError("append", domain.StoreInvalidRange, err)
	}
	sheet, cell := domain.CellRef(rangeHint).Split()
	if sheet == "" {
		sheet = defaultSheet
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return domain.NewStoreError("append", domain.StoreInvalidRange, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := openOrCreate(path)
	if err != nil {
		return domain.NewStoreError("append", domain.StoreUnreachable, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return domain.NewStoreError("append", domain.StoreInvalidRange, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return domain.NewStoreError("append", domain.StoreInvalidRange, err)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.NewStoreError("append", domain.StoreUnreachable, err)
	}
	target := nextRow(rows, startCol, len(row), startRow)

	for i, v := range row {
		name, err := excelize.CoordinatesToCellName(startCol+i, target)
		if err != nil {
			return domain.NewStoreError("append", domain.StoreInvalidRange, err)
		}
		if err := f.SetCellValue(sheet, name, userEntered(v)); err != nil {
			return domain.NewStoreError("append", domain.StoreUnreachable, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return domain.NewStoreError("append", domain.StoreUnreachable, err)
	}
	return nil
}

func (s *sheetStore) BatchRead(ctx context.Context, storeID string, refs []domain.CellRef) ([]domain.CellValue, error) {
	out, err := s.batchRead(ctx, storeID, refs)
	observe("batch_read", err)
	return out, err
}

func (s *sheetStore) batchRead(ctx context.Context, storeID string, refs []domain.CellRef) ([]domain.CellValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewStoreError("batch_read", domain.StoreUnreachable, err)
	}
	path, err := s.workbookPath(storeID)
	if err != nil {
		return nil, domain.NewStoreError("batch_read", domain.StoreInvalidRange, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewStoreError("batch_read", domain.StoreInvalidRange, err)
		}
		return nil, domain.NewStoreError("batch_read", domain.StoreUnreachable, err)
	}
	defer f.Close()

	out := make([]domain.CellValue, len(refs))
	for i, ref := range refs {
		sheet, cell := ref.Split()
		if sheet == "" {
			sheet = defaultSheet
		}
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return nil, domain.NewStoreError("batch_read", domain.StoreInvalidRange, err)
		}
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, domain.NewStoreError("batch_read", domain.StoreInvalidRange, err)
		}
		if v != "" {
			out[i] = domain.CellValue{Value: v, Present: true}
		}
	}
	return out, nil
}

func (s *sheetStore) workbookPath(storeID string) (string, error) {
	if storeID == "" || storeID != filepath.Base(storeID) || strings.HasPrefix(storeID, ".") {
		return "", fmt.Errorf("invalid store id %q", storeID)
	}
	return filepath.Join(s.dir, storeID+".xlsx"), nil
}

func openOrCreate(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return excelize.NewFile(), nil
}

// nextRow finds the first row at or after startRow below the last row that has
// data in the target columns.
func nextRow(rows [][]string, startCol, width, startRow int) int {
	for r := len(rows) - 1; r >= 0; r-- {
		for c := startCol - 1; c < startCol-1+width && c < len(rows[r]); c++ {
			if rows[r][c] != "" {
				if r+2 > startRow {
					return r + 2
				}
				return startRow
			}
		}
	}
	return startRow
}

// userEntered converts a raw string the way a spreadsheet does for typed input.
func userEntered(v string) interface{} {
	if strings.HasPrefix(v, "'") {
		return strings.TrimPrefix(v, "'")
	}
	switch strings.ToUpper(v) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	trimmed := strings.TrimSpace(v)
	if trimmed != "" && !strings.ContainsAny(trimmed, "xXpP_") {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n
		}
	}
	return v
}

func observe(op string, err error) {
	if err == nil {
		metrics.ObserveStoreCall(driverName, op, "ok")
		return
	}
	var se *domain.StoreError
	if errors.As(err, &se) {
		metrics.ObserveStoreCall(driverName, op, string(se.Kind))
	}
}
