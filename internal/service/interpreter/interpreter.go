package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/domain/models"
)

// Interpreter maps free-text questions to structured requests.
type Interpreter interface {
	Interpret(text string) models.Request
}

// Service is a keyword-matching interpreter over the fixed company and
// metric vocabularies. It performs no lookups and has no side effects; when
// nothing recognizable is found it fails closed with RequestUnknown rather
// than guessing.
type Service struct {
	logger *zap.Logger
}

// NewService constructs an interpreter.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// metricSynonyms maps question phrasing to metrics. Longer phrases come
// first so "net income" wins over "income" and "operating cash flow" over
// "cash flow".
var metricSynonyms = []struct {
	phrase string
	metric models.Metric
}{
	{"cash flow from operating activities", models.MetricOperatingCashFlow},
	{"operating cash flow", models.MetricOperatingCashFlow},
	{"cash flow", models.MetricOperatingCashFlow},
	{"total revenue", models.MetricTotalRevenue},
	{"revenue", models.MetricTotalRevenue},
	{"net income", models.MetricNetIncome},
	{"profit", models.MetricNetIncome},
	{"total assets", models.MetricTotalAssets},
	{"assets", models.MetricTotalAssets},
	{"total liabilities", models.MetricTotalLiabilities},
	{"liabilities", models.MetricTotalLiabilities},
}

var summaryKeywords = []string{
	"summarise",
	"summarize",
	"summary",
	"performance",
	"overview",
	"financial health",
}

// Interpret parses a question into a Request. The result always carries the
// original text in Raw.
func (s *Service) Interpret(text string) models.Request {
	req := models.Request{Kind: models.RequestUnknown, Raw: text}
	query := strings.ToLower(text)

	if m := yearPattern.FindStringSubmatch(query); m != nil {
		// Out-of-range years are kept so the responder can report NotFound
		// instead of silently answering a different year.
		req.Year, _ = strconv.Atoi(m[1])
	}

	matched := matchCompanies(query)
	switch len(matched) {
	case 0:
		return req
	case 1:
		req.Company = matched[0]
	default:
		req.Ambiguous = matched
		return req
	}

	if containsAny(query, summaryKeywords) {
		req.Kind = models.RequestSummary
		s.logRequest(req)
		return req
	}

	req.Metrics = matchMetrics(query)
	if len(req.Metrics) == 0 {
		return req
	}

	if strings.Contains(query, "growth") {
		req.Kind = models.RequestGrowth
	} else {
		req.Kind = models.RequestValue
	}

	s.logRequest(req)
	return req
}

func (s *Service) logRequest(req models.Request) {
	s.logger.Debug("interpreted query",
		zap.String("kind", string(req.Kind)),
		zap.String("company", string(req.Company)),
		zap.Int("year", req.Year),
		zap.Any("metrics", req.Metrics))
}

func matchCompanies(query string) []models.Company {
	var matched []models.Company
	for _, c := range models.Companies() {
		if strings.Contains(query, strings.ToLower(string(c))) {
			matched = append(matched, c)
		}
	}
	return matched
}

// matchMetrics returns the metrics mentioned in the query, deduplicated and
// in canonical reporting order.
func matchMetrics(query string) []models.Metric {
	seen := make(map[models.Metric]bool)
	for _, syn := range metricSynonyms {
		if strings.Contains(query, syn.phrase) {
			seen[syn.metric] = true
		}
	}

	var metrics []models.Metric
	for _, m := range models.Metrics() {
		if seen[m] {
			metrics = append(metrics, m)
		}
	}
	return metrics
}

func containsAny(query string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}
