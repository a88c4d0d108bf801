package responder

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adiouf/finsight/internal/dataset"
	"github.com/adiouf/finsight/internal/domain/models"
)

func defaultStore(t *testing.T) *dataset.Store {
	t.Helper()
	store, err := dataset.Default()
	if err != nil {
		t.Fatalf("failed to load default dataset: %v", err)
	}
	return store
}

func TestRespondValue(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestValue,
		Company: models.CompanyApple,
		Metrics: []models.Metric{models.MetricTotalRevenue},
		Year:    2023,
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	if !strings.Contains(answer.Text, "Apple's Total Revenue for FY2023 was $383,285M.") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
	if !strings.Contains(answer.Text, "net income or revenue growth") {
		t.Errorf("expected revenue follow-up, got: %s", answer.Text)
	}
}

func TestRespondValueDefaultsToLatestYear(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestValue,
		Company: models.CompanyMicrosoft,
		Metrics: []models.Metric{models.MetricTotalAssets},
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	if !strings.Contains(answer.Text, "Microsoft's Total Assets for FY2024 were $512,163M.") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
}

func TestRespondValueMultipleMetrics(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestValue,
		Company: models.CompanyTesla,
		Metrics: []models.Metric{models.MetricTotalRevenue, models.MetricNetIncome},
		Year:    2022,
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	if !strings.Contains(answer.Text, "Tesla's Total Revenue for FY2022 was $81,462M.") ||
		!strings.Contains(answer.Text, "Tesla's Net Income for FY2022 was $12,556M.") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
}

func TestRespondValueYearOutsideRange(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestValue,
		Company: models.CompanyApple,
		Metrics: []models.Metric{models.MetricTotalRevenue},
		Year:    2025,
	})

	if answer.Code != models.AnswerNotFound {
		t.Fatalf("expected not_found, got %s (%s)", answer.Code, answer.Text)
	}
	if !strings.Contains(answer.Text, "FY2025") || !strings.Contains(answer.Text, "2022 to 2024") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
}

func TestRespondGrowth(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestGrowth,
		Company: models.CompanyMicrosoft,
		Metrics: []models.Metric{models.MetricTotalRevenue},
		Year:    2023,
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	// (211915 - 198270) / 198270 = 6.88%
	if !strings.Contains(answer.Text, "Microsoft's Total Revenue growth for FY2023 was 6.88%.") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
}

func TestRespondGrowthNegative(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestGrowth,
		Company: models.CompanyTesla,
		Metrics: []models.Metric{models.MetricNetIncome},
		Year:    2024,
	})

	// (7091 - 14997) / 14997 = -52.72%
	if !strings.Contains(answer.Text, "-52.72%") {
		t.Errorf("expected negative growth, got: %s", answer.Text)
	}
}

func TestRespondGrowthAtEarliestYear(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestGrowth,
		Company: models.CompanyApple,
		Metrics: []models.Metric{models.MetricTotalRevenue},
		Year:    2022,
	})

	if answer.Code != models.AnswerUndefined {
		t.Fatalf("expected undefined, got %s (%s)", answer.Code, answer.Text)
	}
	if !strings.Contains(answer.Text, "requires the prior fiscal year's data") {
		t.Errorf("unexpected answer: %s", answer.Text)
	}
}

func TestRespondGrowthZeroBase(t *testing.T) {
	store, err := dataset.New([]models.FinancialRecord{
		{Company: models.CompanyTesla, Metric: models.MetricNetIncome, Year: 2022, Value: decimal.Zero},
		{Company: models.CompanyTesla, Metric: models.MetricNetIncome, Year: 2023, Value: decimal.NewFromInt(40)},
	})
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	svc := NewService(store, nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestGrowth,
		Company: models.CompanyTesla,
		Metrics: []models.Metric{models.MetricNetIncome},
		Year:    2023,
	})

	if answer.Code != models.AnswerUndefined {
		t.Fatalf("expected undefined on zero base, got %s (%s)", answer.Code, answer.Text)
	}
}

func TestRespondSummary(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestSummary,
		Company: models.CompanyTesla,
		Year:    2023,
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	for _, fragment := range []string{
		"summary of Tesla's financial performance for FY2023",
		"Total Revenue: $96,773M",
		"Net Income: $14,997M",
		"Total Assets: $106,618M",
		"Total Liabilities: $43,009M",
		"Cash Flow from Operating Activities: $13,256M",
		"Total Revenue Growth (YoY):",
		"Net Income Growth (YoY):",
	} {
		if !strings.Contains(answer.Text, fragment) {
			t.Errorf("summary missing %q:\n%s", fragment, answer.Text)
		}
	}
}

func TestRespondSummaryEarliestYearHasNoGrowth(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	answer := svc.Respond(models.Request{
		Kind:    models.RequestSummary,
		Company: models.CompanyApple,
		Year:    2022,
	})

	if answer.Code != models.AnswerOK {
		t.Fatalf("expected ok, got %s (%s)", answer.Code, answer.Text)
	}
	if strings.Contains(answer.Text, "Growth (YoY)") {
		t.Errorf("did not expect growth lines for the earliest year:\n%s", answer.Text)
	}
	if !strings.Contains(answer.Text, "Growth figures for FY2022 are not available") {
		t.Errorf("expected growth unavailability note:\n%s", answer.Text)
	}
}

func TestRespondClarifications(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	cases := []struct {
		name     string
		req      models.Request
		fragment string
	}{
		{
			name:     "no company",
			req:      models.Request{Kind: models.RequestUnknown},
			fragment: "I need a company name (Microsoft, Tesla, or Apple)",
		},
		{
			name:     "company without metric",
			req:      models.Request{Kind: models.RequestUnknown, Company: models.CompanyTesla},
			fragment: "I'm not sure how to answer that about Tesla",
		},
		{
			name: "ambiguous companies",
			req: models.Request{
				Kind:      models.RequestUnknown,
				Ambiguous: []models.Company{models.CompanyMicrosoft, models.CompanyApple},
			},
			fragment: "more than one company",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer := svc.Respond(tc.req)
			if answer.Code != models.AnswerNotUnderstood {
				t.Fatalf("expected not_understood, got %s (%s)", answer.Code, answer.Text)
			}
			if !strings.Contains(answer.Text, tc.fragment) {
				t.Errorf("expected %q in answer:\n%s", tc.fragment, answer.Text)
			}
		})
	}
}

func TestBuildDigest(t *testing.T) {
	svc := NewService(defaultStore(t), nil)

	now := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	digest := svc.BuildDigest(now)

	if len(digest.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(digest.Sections))
	}
	for _, section := range digest.Sections {
		if section.FiscalYear != 2024 {
			t.Errorf("%s: expected FY2024, got %d", section.Company, section.FiscalYear)
		}
		if !strings.Contains(section.Summary, "financial performance for FY2024") {
			t.Errorf("%s: unexpected summary: %s", section.Company, section.Summary)
		}
	}
	if !digest.Date.Equal(now) {
		t.Errorf("expected digest date %s, got %s", now, digest.Date)
	}
}

func TestFormatMillions(t *testing.T) {
	cases := []struct {
		value    int64
		expected string
	}{
		{0, "$0M"},
		{950, "$950M"},
		{7091, "$7,091M"},
		{198270, "$198,270M"},
		{1234567, "$1,234,567M"},
		{-52000, "-$52,000M"},
	}

	for _, tc := range cases {
		if got := formatMillions(decimal.NewFromInt(tc.value)); got != tc.expected {
			t.Errorf("formatMillions(%d): expected %s, got %s", tc.value, tc.expected, got)
		}
	}
}
