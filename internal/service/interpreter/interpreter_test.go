package interpreter

import (
	"testing"

	"github.com/adiouf/finsight/internal/domain/models"
)

func TestInterpret(t *testing.T) {
	svc := NewService(nil)

	cases := []struct {
		name    string
		query   string
		kind    models.RequestKind
		company models.Company
		metrics []models.Metric
		year    int
	}{
		{
			name:    "value with year",
			query:   "What is Apple's revenue for 2023?",
			kind:    models.RequestValue,
			company: models.CompanyApple,
			metrics: []models.Metric{models.MetricTotalRevenue},
			year:    2023,
		},
		{
			name:    "growth without year",
			query:   "Tell me about Microsoft's net income growth.",
			kind:    models.RequestGrowth,
			company: models.CompanyMicrosoft,
			metrics: []models.Metric{models.MetricNetIncome},
		},
		{
			name:    "summary",
			query:   "Summarise Tesla's performance for 2023.",
			kind:    models.RequestSummary,
			company: models.CompanyTesla,
			year:    2023,
		},
		{
			name:    "summary via financial health",
			query:   "how is tesla's financial health",
			kind:    models.RequestSummary,
			company: models.CompanyTesla,
		},
		{
			name:    "profit maps to net income",
			query:   "apple profit 2024",
			kind:    models.RequestValue,
			company: models.CompanyApple,
			metrics: []models.Metric{models.MetricNetIncome},
			year:    2024,
		},
		{
			name:    "operating cash flow",
			query:   "what was Tesla's operating cash flow in 2022",
			kind:    models.RequestValue,
			company: models.CompanyTesla,
			metrics: []models.Metric{models.MetricOperatingCashFlow},
			year:    2022,
		},
		{
			name:    "multiple metrics in canonical order",
			query:   "tesla liabilities and revenue for 2023",
			kind:    models.RequestValue,
			company: models.CompanyTesla,
			metrics: []models.Metric{models.MetricTotalRevenue, models.MetricTotalLiabilities},
			year:    2023,
		},
		{
			name:    "uppercase input",
			query:   "APPLE TOTAL ASSETS 2022",
			kind:    models.RequestValue,
			company: models.CompanyApple,
			metrics: []models.Metric{models.MetricTotalAssets},
			year:    2022,
		},
		{
			name:    "out of range year is kept",
			query:   "microsoft revenue 2021",
			kind:    models.RequestValue,
			company: models.CompanyMicrosoft,
			metrics: []models.Metric{models.MetricTotalRevenue},
			year:    2021,
		},
		{
			name:    "company without metric",
			query:   "tell me something about Tesla",
			kind:    models.RequestUnknown,
			company: models.CompanyTesla,
		},
		{
			name:  "no company",
			query: "what is the revenue for 2023",
			kind:  models.RequestUnknown,
			year:  2023,
		},
		{
			name:  "nothing recognizable",
			query: "hello there",
			kind:  models.RequestUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := svc.Interpret(tc.query)

			if req.Kind != tc.kind {
				t.Errorf("kind: expected %s, got %s", tc.kind, req.Kind)
			}
			if req.Company != tc.company {
				t.Errorf("company: expected %q, got %q", tc.company, req.Company)
			}
			if req.Year != tc.year {
				t.Errorf("year: expected %d, got %d", tc.year, req.Year)
			}
			if req.Raw != tc.query {
				t.Errorf("raw: expected %q, got %q", tc.query, req.Raw)
			}

			if len(req.Metrics) != len(tc.metrics) {
				t.Fatalf("metrics: expected %v, got %v", tc.metrics, req.Metrics)
			}
			for i, m := range tc.metrics {
				if req.Metrics[i] != m {
					t.Errorf("metrics[%d]: expected %s, got %s", i, m, req.Metrics[i])
				}
			}
		})
	}
}

func TestInterpretAmbiguousCompanies(t *testing.T) {
	svc := NewService(nil)

	req := svc.Interpret("compare Apple and Microsoft revenue")
	if req.Kind != models.RequestUnknown {
		t.Errorf("expected unknown kind, got %s", req.Kind)
	}
	if req.Company != "" {
		t.Errorf("expected no single company, got %q", req.Company)
	}
	if len(req.Ambiguous) != 2 {
		t.Fatalf("expected 2 ambiguous companies, got %v", req.Ambiguous)
	}
	if req.Ambiguous[0] != models.CompanyMicrosoft || req.Ambiguous[1] != models.CompanyApple {
		t.Errorf("unexpected ambiguous companies: %v", req.Ambiguous)
	}
}

func TestInterpretDoesNotDoubleCountSynonyms(t *testing.T) {
	svc := NewService(nil)

	req := svc.Interpret("apple cash flow from operating activities 2023")
	if len(req.Metrics) != 1 || req.Metrics[0] != models.MetricOperatingCashFlow {
		t.Errorf("expected single operating cash flow metric, got %v", req.Metrics)
	}
}
