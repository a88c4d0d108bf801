package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adiouf/finsight/internal/domain/models"
)

// Bundled copy of the reporting spreadsheet so the service works with no
// external data source configured.
//
//go:embed financial_data.csv
var defaultCSV []byte

const (
	companyColumn = "Company"
	yearColumn    = "Fiscal Year"
)

// Default builds a Store from the embedded dataset.
func Default() (*Store, error) {
	return FromCSV(bytes.NewReader(defaultCSV))
}

// FromCSVFile builds a Store from a CSV file on disk.
func FromCSVFile(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer file.Close()

	return FromCSV(file)
}

// FromCSV builds a Store from CSV content. The expected header is a Company
// column, a Fiscal Year column and one column per metric, with the metric
// name optionally suffixed by a unit such as "($M)".
func FromCSV(r io.Reader) (*Store, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset csv: %w", err)
	}

	records, err := ParseTable(rows)
	if err != nil {
		return nil, err
	}
	return New(records)
}

// ParseTable converts a rectangular header+rows table into financial
// records. It is shared by the CSV loader and the Google Sheets source.
func ParseTable(rows [][]string) ([]models.FinancialRecord, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("dataset needs a header and at least one row, got %d rows", len(rows))
	}

	header := rows[0]
	companyIdx, yearIdx := -1, -1
	metricCols := make(map[int]models.Metric)

	for i, cell := range header {
		name := strings.TrimSpace(cell)
		switch {
		case strings.EqualFold(name, companyColumn):
			companyIdx = i
		case strings.EqualFold(name, yearColumn):
			yearIdx = i
		default:
			if metric, ok := models.ParseMetric(stripUnit(name)); ok {
				metricCols[i] = metric
			}
			// Unrecognized columns are skipped.
		}
	}

	if companyIdx < 0 || yearIdx < 0 {
		return nil, fmt.Errorf("dataset header must contain %q and %q columns", companyColumn, yearColumn)
	}
	if len(metricCols) == 0 {
		return nil, fmt.Errorf("dataset header contains no recognized metric columns")
	}

	var records []models.FinancialRecord
	for rowIdx, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		if companyIdx >= len(row) || yearIdx >= len(row) {
			return nil, fmt.Errorf("row %d: too few columns", rowIdx+2)
		}

		company, ok := models.ParseCompany(row[companyIdx])
		if !ok {
			return nil, fmt.Errorf("row %d: unknown company %q", rowIdx+2, row[companyIdx])
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid fiscal year %q", rowIdx+2, row[yearIdx])
		}

		for colIdx, metric := range metricCols {
			if colIdx >= len(row) {
				continue
			}
			value, err := parseAmount(row[colIdx])
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s value %q", rowIdx+2, metric, row[colIdx])
			}
			records = append(records, models.FinancialRecord{
				Company: company,
				Metric:  metric,
				Year:    year,
				Value:   value,
			})
		}
	}

	return records, nil
}

// stripUnit removes a trailing parenthesized unit, e.g.
// "Total Revenue ($M)" -> "Total Revenue".
func stripUnit(name string) string {
	if idx := strings.LastIndex(name, "("); idx > 0 {
		return strings.TrimSpace(name[:idx])
	}
	return name
}

// parseAmount reads a numeric cell, tolerating thousands separators.
func parseAmount(cell string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	return decimal.NewFromString(cleaned)
}
