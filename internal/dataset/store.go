package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/adiouf/finsight/internal/domain/models"
)

// ErrNotFound indicates the requested (company, metric, year) triple is not
// present in the dataset.
var ErrNotFound = errors.New("no data for the requested company, metric and year")

// ErrUndefinedGrowth indicates a growth rate cannot be computed, either
// because the prior fiscal year is missing or its value is zero.
var ErrUndefinedGrowth = errors.New("growth rate is undefined")

// ErrDuplicateRecord indicates the input data contains the same
// (company, metric, year) triple more than once.
var ErrDuplicateRecord = errors.New("duplicate financial record")

// Store is an immutable lookup table of financial figures. It is built once
// from a record slice and never mutated, so it is safe for concurrent reads
// without locking. Inject it wherever figures are needed; there is no
// package-level instance.
type Store struct {
	values map[models.Company]map[int]map[models.Metric]decimal.Decimal
	years  map[models.Company][]int
}

// New builds a Store from raw records. It rejects duplicate triples and
// records naming an unknown company or metric.
func New(records []models.FinancialRecord) (*Store, error) {
	s := &Store{
		values: make(map[models.Company]map[int]map[models.Metric]decimal.Decimal),
		years:  make(map[models.Company][]int),
	}

	for _, r := range records {
		if _, ok := models.ParseCompany(string(r.Company)); !ok {
			return nil, fmt.Errorf("unknown company %q", r.Company)
		}
		if _, ok := models.ParseMetric(string(r.Metric)); !ok {
			return nil, fmt.Errorf("unknown metric %q", r.Metric)
		}

		byYear, ok := s.values[r.Company]
		if !ok {
			byYear = make(map[int]map[models.Metric]decimal.Decimal)
			s.values[r.Company] = byYear
		}

		byMetric, ok := byYear[r.Year]
		if !ok {
			byMetric = make(map[models.Metric]decimal.Decimal)
			byYear[r.Year] = byMetric
		}

		if _, exists := byMetric[r.Metric]; exists {
			return nil, fmt.Errorf("%w: %s %s FY%d", ErrDuplicateRecord, r.Company, r.Metric, r.Year)
		}
		byMetric[r.Metric] = r.Value
	}

	for company, byYear := range s.values {
		years := make([]int, 0, len(byYear))
		for year := range byYear {
			years = append(years, year)
		}
		sort.Ints(years)
		s.years[company] = years
	}

	return s, nil
}

// Value returns the stored figure for the given triple.
func (s *Store) Value(company models.Company, metric models.Metric, year int) (decimal.Decimal, error) {
	byYear, ok := s.values[company]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	byMetric, ok := byYear[year]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	value, ok := byMetric[metric]
	if !ok {
		return decimal.Decimal{}, ErrNotFound
	}
	return value, nil
}

// Growth returns the year-over-year change of a metric as a fraction:
// (value[year] - value[year-1]) / value[year-1]. It returns ErrNotFound when
// the requested year itself has no data and ErrUndefinedGrowth when the
// prior year is missing or its value is zero.
func (s *Store) Growth(company models.Company, metric models.Metric, year int) (decimal.Decimal, error) {
	current, err := s.Value(company, metric, year)
	if err != nil {
		return decimal.Decimal{}, err
	}

	prior, err := s.Value(company, metric, year-1)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: no data for FY%d", ErrUndefinedGrowth, year-1)
	}
	if prior.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: FY%d value is zero", ErrUndefinedGrowth, year-1)
	}

	return current.Sub(prior).Div(prior), nil
}

// Snapshot returns every stored metric for a company and year in canonical
// metric order.
func (s *Store) Snapshot(company models.Company, year int) ([]models.FinancialRecord, error) {
	byYear, ok := s.values[company]
	if !ok {
		return nil, ErrNotFound
	}
	byMetric, ok := byYear[year]
	if !ok {
		return nil, ErrNotFound
	}

	records := make([]models.FinancialRecord, 0, len(byMetric))
	for _, metric := range models.Metrics() {
		value, ok := byMetric[metric]
		if !ok {
			continue
		}
		records = append(records, models.FinancialRecord{
			Company: company,
			Metric:  metric,
			Year:    year,
			Value:   value,
		})
	}
	return records, nil
}

// Companies returns the companies present in the dataset in display order.
func (s *Store) Companies() []models.Company {
	companies := make([]models.Company, 0, len(s.values))
	for _, c := range models.Companies() {
		if _, ok := s.values[c]; ok {
			companies = append(companies, c)
		}
	}
	return companies
}

// Years returns the fiscal years available for a company, ascending.
func (s *Store) Years(company models.Company) []int {
	years := s.years[company]
	out := make([]int, len(years))
	copy(out, years)
	return out
}

// HasYear reports whether the company has any data for the given year.
func (s *Store) HasYear(company models.Company, year int) bool {
	byYear, ok := s.values[company]
	if !ok {
		return false
	}
	_, ok = byYear[year]
	return ok
}

// LatestYear returns the most recent fiscal year available for a company.
func (s *Store) LatestYear(company models.Company) (int, bool) {
	years := s.years[company]
	if len(years) == 0 {
		return 0, false
	}
	return years[len(years)-1], true
}

// YearRange returns the earliest and latest fiscal years across all
// companies. The second return value is false for an empty store.
func (s *Store) YearRange() (int, int, bool) {
	first := true
	var earliest, latest int
	for _, years := range s.years {
		if len(years) == 0 {
			continue
		}
		if first || years[0] < earliest {
			earliest = years[0]
		}
		if first || years[len(years)-1] > latest {
			latest = years[len(years)-1]
		}
		first = false
	}
	return earliest, latest, !first
}
