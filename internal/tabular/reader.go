// Package tabular parses uploaded product tables into ProductRecords.
// CSV, XLSX and Parquet inputs are supported; the column layout matches the
// workbook format the service writes back out.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/lighthouse-data/enricher/internal/models"
)

// ColumnMPN is the only required input column.
const ColumnMPN = "mfg_part_number"

// ParseFile parses data into product records based on the file extension.
func ParseFile(filename string, data []byte) ([]models.ProductRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return parseCSV(data)
	case ".xlsx":
		return parseXLSX(data)
	case ".parquet":
		return parseParquet(data)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .xlsx, .parquet)", ext)
	}
}

func parseCSV(data []byte) ([]models.ProductRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file has no header row")
	}

	return recordsFromRows(rows[0], rows[1:])
}

func parseXLSX(data []byte) ([]models.ProductRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input file has no header row")
	}

	return recordsFromRows(rows[0], rows[1:])
}

// parquetRow mirrors the input columns for parquet decoding.
type parquetRow struct {
	MPN          string `parquet:"mfg_part_number"`
	Manufacturer string `parquet:"manufacturer_name,optional"`
	Category     string `parquet:"category,optional"`
	Subcategory  string `parquet:"subcategory,optional"`
	Attributes   string `parquet:"attributes_to_extract,optional"`
}

func parseParquet(data []byte) ([]models.ProductRecord, error) {
	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet input opened", "num_rows", pf.NumRows(), "row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[parquetRow](pf)
	defer reader.Close()

	var records []models.ProductRecord
	buf := make([]parquetRow, 128)
	for {
		n, err := reader.Read(buf)
		for _, row := range buf[:n] {
			if strings.TrimSpace(row.MPN) == "" {
				continue
			}
			records = append(records, models.ProductRecord{
				MPN:          strings.TrimSpace(row.MPN),
				Manufacturer: strings.TrimSpace(row.Manufacturer),
				Category:     strings.TrimSpace(row.Category),
				Subcategory:  strings.TrimSpace(row.Subcategory),
				Attributes:   splitAttributes(row.Attributes),
			})
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no rows with a %s value found", ColumnMPN)
	}
	return records, nil
}

// recordsFromRows builds records from a header row and data rows. Header
// matching is case-insensitive; category_gen/sub_category_gen are accepted as
// aliases since pre-categorized exports use those names.
func recordsFromRows(header []string, rows [][]string) ([]models.ProductRecord, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	mpnCol, ok := cols[ColumnMPN]
	if !ok {
		return nil, fmt.Errorf("missing required column: %s", ColumnMPN)
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []models.ProductRecord
	for _, row := range rows {
		if mpnCol >= len(row) || strings.TrimSpace(row[mpnCol]) == "" {
			continue
		}

		category := cell(row, "category")
		if category == "" {
			category = cell(row, "category_gen")
		}
		subcategory := cell(row, "subcategory")
		if subcategory == "" {
			subcategory = cell(row, "sub_category_gen")
		}

		records = append(records, models.ProductRecord{
			MPN:          strings.TrimSpace(row[mpnCol]),
			Manufacturer: cell(row, "manufacturer_name"),
			Category:     category,
			Subcategory:  subcategory,
			Attributes:   splitAttributes(cell(row, "attributes_to_extract")),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no rows with a %s value found", ColumnMPN)
	}
	return records, nil
}

func splitAttributes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	attrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			attrs = append(attrs, p)
		}
	}
	return attrs
}
