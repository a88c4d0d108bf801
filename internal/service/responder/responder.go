package responder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/dataset"
	"github.com/adiouf/finsight/internal/domain/models"
)

// Responder turns structured requests into user-facing answers.
type Responder interface {
	Respond(req models.Request) models.Answer
}

// Service answers requests against an injected read-only Store. Every
// failure is recovered locally into plain-language text, so Respond never
// returns an error.
type Service struct {
	store  *dataset.Store
	logger *zap.Logger
}

// NewService constructs a responder over the given store.
func NewService(store *dataset.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Respond produces the reply for a request.
func (s *Service) Respond(req models.Request) models.Answer {
	switch req.Kind {
	case models.RequestValue:
		return s.respondValue(req)
	case models.RequestGrowth:
		return s.respondGrowth(req)
	case models.RequestSummary:
		return s.respondSummary(req)
	default:
		return s.clarify(req)
	}
}

func (s *Service) respondValue(req models.Request) models.Answer {
	year, answer := s.resolveYear(req)
	if answer != nil {
		return *answer
	}

	parts := make([]string, 0, len(req.Metrics))
	for _, metric := range req.Metrics {
		value, err := s.store.Value(req.Company, metric, year)
		if err != nil {
			return s.notFound(req.Company, year)
		}
		parts = append(parts, fmt.Sprintf("%s's %s for FY%d %s %s.",
			req.Company, metric, year, metricVerb(metric), formatMillions(value)))
	}

	text := strings.Join(parts, " ")
	if followUp := valueFollowUp(req.Company, req.Metrics, year); followUp != "" {
		text += "\n" + followUp
	}
	return models.Answer{Text: text, Code: models.AnswerOK}
}

func (s *Service) respondGrowth(req models.Request) models.Answer {
	year, answer := s.resolveYear(req)
	if answer != nil {
		return *answer
	}

	var parts []string
	succeeded := false
	for _, metric := range req.Metrics {
		growth, err := s.store.Growth(req.Company, metric, year)
		switch {
		case errors.Is(err, dataset.ErrUndefinedGrowth):
			parts = append(parts, fmt.Sprintf("%s's %s growth for FY%d is not available (requires the prior fiscal year's data).",
				req.Company, metric, year))
		case err != nil:
			return s.notFound(req.Company, year)
		default:
			succeeded = true
			parts = append(parts, fmt.Sprintf("%s's %s growth for FY%d was %s.",
				req.Company, metric, year, formatPercent(growth)))
		}
	}

	text := strings.Join(parts, " ")
	if !succeeded {
		return models.Answer{Text: text, Code: models.AnswerUndefined}
	}

	text += fmt.Sprintf("\nWould you like to know about %s's other growth metrics or a summary of its financial health for FY%d?",
		req.Company, year)
	return models.Answer{Text: text, Code: models.AnswerOK}
}

func (s *Service) respondSummary(req models.Request) models.Answer {
	year, answer := s.resolveYear(req)
	if answer != nil {
		return *answer
	}

	records, err := s.store.Snapshot(req.Company, year)
	if err != nil {
		return s.notFound(req.Company, year)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's a summary of %s's financial performance for FY%d:\n", req.Company, year)
	for _, r := range records {
		fmt.Fprintf(&b, "- %s: %s\n", r.Metric, formatMillions(r.Value))
	}

	if s.store.HasYear(req.Company, year-1) {
		for _, metric := range []models.Metric{models.MetricTotalRevenue, models.MetricNetIncome} {
			growth, err := s.store.Growth(req.Company, metric, year)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "- %s Growth (YoY): %s\n", metric, formatPercent(growth))
		}
	} else {
		fmt.Fprintf(&b, "Growth figures for FY%d are not available (requires the prior fiscal year's data).\n", year)
	}

	b.WriteString("\nIs there a specific metric you'd like to dive deeper into, or perhaps another year's performance?")
	return models.Answer{Text: b.String(), Code: models.AnswerOK}
}

// clarify handles requests the interpreter could not map to a lookup.
func (s *Service) clarify(req models.Request) models.Answer {
	if len(req.Ambiguous) > 1 {
		names := make([]string, len(req.Ambiguous))
		for i, c := range req.Ambiguous {
			names[i] = string(c)
		}
		text := fmt.Sprintf("I found more than one company in your question (%s). Please ask about one company at a time.",
			strings.Join(names, " and "))
		return models.Answer{Text: text, Code: models.AnswerNotUnderstood}
	}

	if req.Company != "" {
		text := fmt.Sprintf("I'm not sure how to answer that about %s. I can tell you about its %s, or their growth rates. Try asking 'What is %s's revenue for 2023?' or 'Summarise %s's performance for 2022'.",
			req.Company, metricList(), req.Company, req.Company)
		return models.Answer{Text: text, Code: models.AnswerNotUnderstood}
	}

	text := fmt.Sprintf("I need a company name (%s) to provide financial insights.", companyList(s.store.Companies()))
	if earliest, latest, ok := s.store.YearRange(); ok {
		text += fmt.Sprintf(" You can ask about fiscal years %d to %d.", earliest, latest)
	}
	return models.Answer{Text: text, Code: models.AnswerNotUnderstood}
}

// resolveYear picks the fiscal year to answer for: the explicitly requested
// one when present in the data, the company's latest otherwise. A non-nil
// Answer means the request cannot be served.
func (s *Service) resolveYear(req models.Request) (int, *models.Answer) {
	if req.Year != 0 {
		if !s.store.HasYear(req.Company, req.Year) {
			a := s.notFound(req.Company, req.Year)
			return 0, &a
		}
		return req.Year, nil
	}

	year, ok := s.store.LatestYear(req.Company)
	if !ok {
		a := models.Answer{
			Text: fmt.Sprintf("I don't have any data for %s.", req.Company),
			Code: models.AnswerNotFound,
		}
		return 0, &a
	}
	return year, nil
}

func (s *Service) notFound(company models.Company, year int) models.Answer {
	s.logger.Debug("no data for request", zap.String("company", string(company)), zap.Int("year", year))

	text := fmt.Sprintf("I don't have data for %s in FY%d.", company, year)
	if years := s.store.Years(company); len(years) > 0 {
		text += fmt.Sprintf(" I cover fiscal years %d to %d.", years[0], years[len(years)-1])
	}
	return models.Answer{Text: text, Code: models.AnswerNotFound}
}

// BuildDigest assembles the scheduled roundup: one summary per company for
// its latest fiscal year.
func (s *Service) BuildDigest(now time.Time) models.Digest {
	digest := models.Digest{Date: now, CreatedAt: now}

	for _, company := range s.store.Companies() {
		year, ok := s.store.LatestYear(company)
		if !ok {
			continue
		}
		answer := s.Respond(models.Request{Kind: models.RequestSummary, Company: company, Year: year})
		digest.Sections = append(digest.Sections, models.DigestSection{
			Company:    string(company),
			FiscalYear: year,
			Summary:    answer.Text,
		})
	}
	return digest
}

// valueFollowUp mirrors the follow-up suggestions of the original assistant.
func valueFollowUp(company models.Company, metrics []models.Metric, year int) string {
	for _, m := range metrics {
		switch m {
		case models.MetricTotalRevenue:
			return fmt.Sprintf("Would you also like to know about %s's net income or revenue growth for FY%d?", company, year)
		case models.MetricNetIncome:
			return fmt.Sprintf("Perhaps %s's cash flow or net income growth for FY%d next?", company, year)
		case models.MetricTotalAssets, models.MetricTotalLiabilities:
			return fmt.Sprintf("Would you like a summary of %s's overall financial health for FY%d?", company, year)
		}
	}
	return ""
}

func metricVerb(metric models.Metric) string {
	switch metric {
	case models.MetricTotalAssets, models.MetricTotalLiabilities:
		return "were"
	default:
		return "was"
	}
}

func companyList(companies []models.Company) string {
	names := make([]string, len(companies))
	for i, c := range companies {
		names[i] = string(c)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
}

func metricList() string {
	names := make([]string, 0, len(models.Metrics()))
	for _, m := range models.Metrics() {
		names = append(names, strings.ToLower(string(m)))
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
