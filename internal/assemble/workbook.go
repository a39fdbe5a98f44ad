// Package assemble turns a finished task aggregate into the downloadable
// output artifact: an XLSX workbook with one row per input record and a
// totals row appended.
package assemble

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lighthouse-data/enricher/internal/models"
)

const sheetName = "Enrichment"

var baseHeaders = []string{
	"mfg_part_number",
	"manufacturer_name",
	"category",
	"subcategory",
	"attributes_json",
	"confidence",
	"image_url",
	"requested_attributes",
	"processing_time_seconds",
	"input_tokens",
	"output_tokens",
	"total_tokens",
	"cost_inr",
	"error",
}

// Workbook renders the task result as XLSX bytes. Requested attributes also
// get their own attr_<name> columns so downstream spreadsheets can filter on
// individual values.
func Workbook(result models.TaskResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := append([]string{}, baseHeaders...)
	attrCols := attributeColumns(result.Rows)
	for _, name := range attrCols {
		headers = append(headers, "attr_"+columnName(name))
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheetName, cell, v)
	}

	for i, h := range headers {
		write(i+1, 1, h)
	}

	rowNum := 2
	for _, r := range result.Rows {
		attributesJSON := ""
		if r.Attributes != nil {
			if b, err := json.Marshal(r.Attributes); err == nil {
				attributesJSON = string(b)
			}
		}

		write(1, rowNum, r.MPN)
		write(2, rowNum, r.Manufacturer)
		write(3, rowNum, r.Category)
		write(4, rowNum, r.Subcategory)
		write(5, rowNum, attributesJSON)
		write(6, rowNum, string(r.Confidence))
		write(7, rowNum, r.ImageURL)
		write(8, rowNum, strings.Join(r.RequestedAttributes, ","))
		write(9, rowNum, r.ProcessingSeconds)
		write(10, rowNum, r.TokenUsage.InputTokens)
		write(11, rowNum, r.TokenUsage.OutputTokens)
		write(12, rowNum, r.TokenUsage.TotalTokens)
		write(13, rowNum, r.TokenUsage.CostINR)
		write(14, rowNum, r.Error)

		for j, name := range attrCols {
			if v, ok := r.Attributes[name]; ok {
				write(len(baseHeaders)+j+1, rowNum, v)
			}
		}
		rowNum++
	}

	// Totals row, mirroring the summary the logs report.
	write(1, rowNum, "SUMMARY")
	write(10, rowNum, result.Totals.InputTokens)
	write(11, rowNum, result.Totals.OutputTokens)
	write(12, rowNum, result.Totals.TotalTokens)
	write(13, rowNum, result.Totals.CostINR)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// attributeColumns collects requested attribute names across all rows,
// preserving first-seen order.
func attributeColumns(rows []models.EnrichmentResult) []string {
	var names []string
	seen := make(map[string]bool)
	for _, r := range rows {
		for _, name := range r.RequestedAttributes {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func columnName(attr string) string {
	return strings.ReplaceAll(strings.ToLower(attr), " ", "_")
}
