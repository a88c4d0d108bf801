package models

import "time"

// ChatRequest is the inbound payload of the chat endpoint.
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

// Exchange is one archived question/answer pair.
type Exchange struct {
	Query     string    `bson:"query" json:"query"`
	Answer    string    `bson:"answer" json:"answer"`
	Code      string    `bson:"code" json:"code"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Digest is the scheduled roundup of every company's latest fiscal year.
type Digest struct {
	Date      time.Time       `bson:"date" json:"date"`
	Sections  []DigestSection `bson:"sections" json:"sections"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// DigestSection is the per-company portion of a Digest.
type DigestSection struct {
	Company    string `bson:"company" json:"company"`
	FiscalYear int    `bson:"fiscal_year" json:"fiscal_year"`
	Summary    string `bson:"summary" json:"summary"`
}
