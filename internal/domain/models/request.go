package models

// RequestKind enumerates the question categories the interpreter can produce.
type RequestKind string

const (
	RequestValue   RequestKind = "value"
	RequestGrowth  RequestKind = "growth"
	RequestSummary RequestKind = "summary"
	RequestUnknown RequestKind = "unknown"
)

// Request is the interpreter's normalized view of a free-text question.
// The zero Year means the user did not name a fiscal year; Ambiguous is
// populated when more than one company was mentioned and the request could
// not be attributed to a single one.
type Request struct {
	Kind      RequestKind
	Company   Company
	Metrics   []Metric
	Year      int
	Ambiguous []Company
	Raw       string
}

// AnswerCode classifies the outcome of answering a request.
type AnswerCode string

const (
	AnswerOK            AnswerCode = "ok"
	AnswerNotFound      AnswerCode = "not_found"
	AnswerUndefined     AnswerCode = "undefined"
	AnswerNotUnderstood AnswerCode = "not_understood"
)

// Answer is the user-facing reply to a single question. Failures are never
// fatal: they are folded into Text with the matching Code.
type Answer struct {
	Text string     `json:"text"`
	Code AnswerCode `json:"code"`
}
